package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"admin-dashboard/internal/section"
)

var productsResource = crudResource{
	noun:         "producto",
	fields:       section.ProductSchema.Fields,
	deletePrompt: section.ProductsDeletePrompt,
	created:      "Producto creado.",
	updated:      "Producto actualizado.",
	deleted:      "Producto eliminado.",
	open: func(deps section.Deps) crudSection {
		s := section.NewProducts(deps.Client, deps.Logger)
		return crudSection{
			Section: s,
			form:    s.Form,
			edit: func(id int) bool {
				p, ok := s.Find(id)
				if ok {
					s.Form.Edit(p)
				}
				return ok
			},
			failure: func() (string, bool) { return s.List.State().Message() },
		}
	},
}

func (a *app) newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Gestión de productos",
	}
	cmd.AddCommand(
		a.newProductsListCmd(),
		a.newCreateCmd(productsResource),
		a.newEditCmd(productsResource),
		a.newDeleteCmd(productsResource),
	)
	return cmd
}

func (a *app) newProductsListCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar productos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := section.NewProducts(a.deps.Client, a.deps.Logger)
			defer s.Close()

			s.Load(cmd.Context())
			if message, ok := s.List.State().Message(); ok {
				return errors.New(message)
			}
			s.Search = search
			products := s.Visible()

			return a.printResult(products, func() {
				if len(products) == 0 {
					a.println(section.ProductsEmpty)
					return
				}
				w := a.table()
				fmt.Fprintln(w, "ID\tNOMBRE\tPRECIO\tSTOCK")
				for _, p := range products {
					fmt.Fprintf(w, "%d\t%s\t$%s\t%d\n", p.ID, p.Name, p.Price, p.Stock)
				}
				_ = w.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by name")
	return cmd
}
