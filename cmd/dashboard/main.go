// Command dashboard is the terminal admin dashboard and its command line.
package main

import (
	"os"

	"admin-dashboard/internal/cli"
)

var (
	execute  = cli.Execute
	exitFunc = os.Exit
)

func main() {
	if code := execute(os.Args[1:]); code != 0 {
		exitFunc(code)
	}
}
