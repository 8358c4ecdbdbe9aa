package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"admin-dashboard/internal/section"
)

func (a *app) newSalesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Gestión de ventas (solo lectura)",
	}
	cmd.AddCommand(a.newSalesListCmd())
	return cmd
}

func (a *app) newSalesListCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar ventas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := section.NewSales(a.deps.Client, a.deps.Logger)
			defer s.Close()

			// A failed fetch falls back to the sample sales; there is no
			// error state to report.
			s.Load(cmd.Context())
			s.Search = search
			sales := s.Visible()

			return a.printResult(sales, func() {
				if len(sales) == 0 {
					a.println(section.SalesEmpty)
					return
				}
				w := a.table()
				fmt.Fprintln(w, "PRODUCTO\tCLIENTE\tEMAIL\tMONTO\tFECHA")
				for _, sale := range sales {
					fmt.Fprintf(w, "%s\t%s\t%s\t$%s\t%s\n", sale.Product, sale.Customer, sale.CustomerEmail, sale.Amount, sale.Date)
				}
				_ = w.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by customer name or email")
	return cmd
}
