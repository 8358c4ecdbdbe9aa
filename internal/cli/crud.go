package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"admin-dashboard/internal/form"
	"admin-dashboard/internal/section"
)

// controller is the write side of a users or products section.
type controller interface {
	Fields() []form.Field
	Get(name string) string
	Set(name, value string) error
	Submit(ctx context.Context) error
	RequestDelete(id int)
	CancelDelete()
	ConfirmDelete(ctx context.Context) error
}

// crudSection is a mounted section with a form.
type crudSection struct {
	section.Section
	form controller
	// edit seeds the form from the snapshot record with id.
	edit    func(id int) bool
	failure func() (string, bool)
}

// crudResource describes the create/edit/delete commands of one resource.
type crudResource struct {
	noun         string
	fields       []form.Field
	deletePrompt string
	created      string
	updated      string
	deleted      string
	open         func(deps section.Deps) crudSection
}

type result struct {
	Message string `json:"message"`
	ID      int    `json:"id,omitempty"`
}

func flagName(f form.Field) string {
	return strings.ReplaceAll(f.Name, "_", "-")
}

func addFieldFlags(cmd *cobra.Command, fields []form.Field, withCreateOnly bool) {
	for _, f := range fields {
		if f.CreateOnly && !withCreateOnly {
			continue
		}
		usage := f.Label
		if len(f.Options) > 0 {
			usage += " (" + strings.Join(f.Options, ", ") + ")"
		}
		cmd.Flags().String(flagName(f), "", usage)
	}
}

// failed prefers the section's operator-facing message over err.
func (s crudSection) failed(err error) error {
	if message, ok := s.failure(); ok {
		return errors.New(message)
	}
	return err
}

// fill binds the changed field flags to the form. Without any, every
// field is asked for interactively, starting from the current draft.
func fill(cmd *cobra.Command, ctl controller, title string) error {
	fields := ctl.Fields()
	changed := false
	for _, f := range fields {
		if !cmd.Flags().Changed(flagName(f)) {
			continue
		}
		changed = true
		v, err := cmd.Flags().GetString(flagName(f))
		if err != nil {
			return err
		}
		if err := ctl.Set(f.Name, v); err != nil {
			return err
		}
	}
	if changed {
		return nil
	}

	values := make(form.Values, len(fields))
	for _, f := range fields {
		values[f.Name] = ctl.Get(f.Name)
	}
	if err := promptFields(title, fields, values); err != nil {
		return err
	}
	for _, f := range fields {
		if err := ctl.Set(f.Name, values[f.Name]); err != nil {
			return err
		}
	}
	return nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func (a *app) newCreateCmd(res crudResource) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Crear %s (interactivo si no se pasan campos)", res.noun),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := res.open(a.deps)
			defer s.Close()

			if err := fill(cmd, s.form, "Nuevo "+res.noun); err != nil {
				return err
			}
			if err := s.form.Submit(cmd.Context()); err != nil {
				return s.failed(err)
			}
			return a.printResult(result{Message: res.created}, func() { a.println(res.created) })
		},
	}
	addFieldFlags(cmd, res.fields, true)
	return cmd
}

func (a *app) newEditCmd(res crudResource) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: fmt.Sprintf("Editar %s (interactivo si no se pasan campos)", res.noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s := res.open(a.deps)
			defer s.Close()

			s.Load(cmd.Context())
			if message, ok := s.failure(); ok {
				return errors.New(message)
			}
			if !s.edit(id) {
				return fmt.Errorf("%s %d no encontrado", res.noun, id)
			}
			if err := fill(cmd, s.form, fmt.Sprintf("Editar %s %d", res.noun, id)); err != nil {
				return err
			}
			if err := s.form.Submit(cmd.Context()); err != nil {
				return s.failed(err)
			}
			return a.printResult(result{Message: res.updated, ID: id}, func() { a.println(res.updated) })
		},
	}
	addFieldFlags(cmd, res.fields, false)
	return cmd
}

func (a *app) newDeleteCmd(res crudResource) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: fmt.Sprintf("Eliminar %s", res.noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s := res.open(a.deps)
			defer s.Close()

			s.form.RequestDelete(id)
			if !yes {
				ok, err := confirmDelete(res.deletePrompt)
				if err != nil || !ok {
					s.form.CancelDelete()
					if err != nil {
						return err
					}
					return a.printResult(result{Message: "Cancelado.", ID: id}, func() { a.println("Cancelado.") })
				}
			}
			if err := s.form.ConfirmDelete(cmd.Context()); err != nil {
				return s.failed(err)
			}
			return a.printResult(result{Message: res.deleted, ID: id}, func() { a.println(res.deleted) })
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation")
	return cmd
}
