package cli

import (
	"github.com/spf13/cobra"

	"admin-dashboard/internal/tui"
)

var runDashboard = tui.Run

func (a *app) newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Abrir el panel interactivo (comando por defecto)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd)
		},
	}
}

func (a *app) runTUI(cmd *cobra.Command) error {
	return runDashboard(cmd.Context(), a.deps)
}
