package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"admin-dashboard/internal/filter"
	"admin-dashboard/internal/section"
)

var usersResource = crudResource{
	noun:         "usuario",
	fields:       section.UserSchema.Fields,
	deletePrompt: section.UsersDeletePrompt,
	created:      "Usuario creado.",
	updated:      "Usuario actualizado.",
	deleted:      "Usuario eliminado.",
	open: func(deps section.Deps) crudSection {
		s := section.NewUsers(deps.Client, deps.Logger)
		return crudSection{
			Section: s,
			form:    s.Form,
			edit: func(id int) bool {
				u, ok := s.Find(id)
				if ok {
					s.Form.Edit(u)
				}
				return ok
			},
			failure: func() (string, bool) { return s.List.State().Message() },
		}
	},
}

func (a *app) newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Gestión de usuarios",
	}
	cmd.AddCommand(
		a.newUsersListCmd(),
		a.newCreateCmd(usersResource),
		a.newEditCmd(usersResource),
		a.newDeleteCmd(usersResource),
	)
	return cmd
}

func (a *app) newUsersListCmd() *cobra.Command {
	var role, search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar usuarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(section.RoleOptions(), role) {
				return fmt.Errorf("invalid role %q", role)
			}
			s := section.NewUsers(a.deps.Client, a.deps.Logger)
			defer s.Close()

			s.Load(cmd.Context())
			if message, ok := s.List.State().Message(); ok {
				return errors.New(message)
			}
			s.Role, s.Search = role, search
			users := s.Visible()

			return a.printResult(users, func() {
				if len(users) == 0 {
					a.println(section.UsersEmpty)
					return
				}
				w := a.table()
				fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tROL\tESTADO\tREGISTRO")
				for _, u := range users {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, u.DisplayStatus(), u.JoinedDate)
				}
				_ = w.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&role, "role", filter.All, "filter by role (Todos, Admin, Moderador, Cliente)")
	cmd.Flags().StringVar(&search, "search", "", "filter by name or email")
	return cmd
}
