package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"admin-dashboard/internal/section"
)

func (a *app) newAnalyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Resumen de analytics: tarjetas, ventas mensuales, top productos y actividad",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := section.NewAnalytics(a.deps.Client, a.deps.Logger)
			defer s.Close()

			s.Load(cmd.Context())
			state := s.List.State()
			if message, ok := state.Message(); ok {
				return errors.New(message)
			}
			d, _ := state.Data()

			return a.printResult(d, func() {
				w := a.table()
				fmt.Fprintf(w, "Usuarios Totales\t%d\n", d.Summary.NewUsers)
				fmt.Fprintf(w, "Ventas Totales\t$%.2f\n", d.Summary.TotalSales)
				fmt.Fprintf(w, "Pedidos Completados\t%d\n", d.Summary.Orders)
				fmt.Fprintf(w, "Conversión\t%.1f%%\n", d.Summary.Conversion)
				_ = w.Flush()

				a.println("\nVentas y Usuarios")
				w = a.table()
				fmt.Fprintln(w, "MES\tVENTAS\tUSUARIOS")
				for _, p := range d.Chart {
					fmt.Fprintf(w, "%s\t%g\t%g\n", p.Name, p.Ventas, p.Usuarios)
				}
				_ = w.Flush()

				a.println("\nProductos Más Vendidos")
				w = a.table()
				for _, p := range d.TopProducts {
					fmt.Fprintf(w, "%s\t%g\n", p.Name, p.Ventas)
				}
				_ = w.Flush()

				a.println("\nActividad Reciente")
				w = a.table()
				for _, e := range d.Activity {
					fmt.Fprintf(w, "[%s]\t%s\t%s\t%s\t%s\n", e.Initials(), e.User, e.Action, e.Amount, e.Time)
				}
				_ = w.Flush()
			})
		},
	}
}
