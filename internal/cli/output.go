package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
)

// printResult outputs data as JSON with --json, and runs textFn otherwise.
// Only the JSON document goes to stdout in JSON mode.
func (a *app) printResult(data any, textFn func()) error {
	if a.jsonOutput {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	textFn()
	return nil
}

// table creates an aligned table writer. Call Flush when done.
func (a *app) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
}

func (a *app) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
