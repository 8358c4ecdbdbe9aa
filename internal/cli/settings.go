package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"admin-dashboard/internal/section"
	"admin-dashboard/internal/settings"
)

func (a *app) newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Configuración general y notificaciones",
	}
	cmd.AddCommand(a.newSettingsShowCmd(), a.newSettingsSetCmd())
	return cmd
}

func (a *app) loadSettings(cmd *cobra.Command) (*section.Settings, settings.Settings, error) {
	s := section.NewSettings(a.deps.Settings, a.deps.Logger)
	s.Load(cmd.Context())
	state := s.List.State()
	if message, ok := state.Message(); ok {
		s.Close()
		return nil, settings.Settings{}, errors.New(message)
	}
	st, _ := state.Data()
	return s, st, nil
}

func (a *app) printSettings(st settings.Settings) error {
	return a.printResult(st, func() {
		w := a.table()
		fmt.Fprintf(w, "Nombre de la Empresa\t%s\n", st.CompanyName)
		fmt.Fprintf(w, "Email de Contacto\t%s\n", st.ContactEmail)
		fmt.Fprintf(w, "Zona Horaria\t%s\n", st.Timezone)
		fmt.Fprintf(w, "Notificaciones por Email\t%t\n", st.Notifications.Email)
		fmt.Fprintf(w, "Notificaciones Push\t%t\n", st.Notifications.Push)
		fmt.Fprintf(w, "Reportes Semanales\t%t\n", st.Notifications.WeeklyReports)
		_ = w.Flush()
	})
}

func (a *app) newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Mostrar la configuración",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, st, err := a.loadSettings(cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			return a.printSettings(st)
		},
	}
}

var settingsFlags = []string{"company", "email", "timezone", "notify-email", "notify-push", "weekly-reports"}

func (a *app) newSettingsSetCmd() *cobra.Command {
	var (
		company, email, timezone string
		notifyEmail, notifyPush  bool
		weeklyReports            bool
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Guardar cambios de la configuración",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.ContainsFunc(settingsFlags, cmd.Flags().Changed) {
				return errors.New("nothing to change: pass at least one flag")
			}
			s, st, err := a.loadSettings(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			flags := cmd.Flags()
			if flags.Changed("company") {
				st.CompanyName = company
			}
			if flags.Changed("email") {
				st.ContactEmail = email
			}
			if flags.Changed("timezone") {
				st.Timezone = timezone
			}
			if flags.Changed("notify-email") {
				st.Notifications.Email = notifyEmail
			}
			if flags.Changed("notify-push") {
				st.Notifications.Push = notifyPush
			}
			if flags.Changed("weekly-reports") {
				st.Notifications.WeeklyReports = weeklyReports
			}
			if err := s.Save(cmd.Context(), st); err != nil {
				return fmt.Errorf("%s %w", section.SettingsSaveError, err)
			}
			return a.printSettings(st)
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().StringVar(&timezone, "timezone", "", fmt.Sprintf("timezone %q", settings.Timezones))
	cmd.Flags().BoolVar(&notifyEmail, "notify-email", false, "email notifications")
	cmd.Flags().BoolVar(&notifyPush, "notify-push", false, "push notifications")
	cmd.Flags().BoolVar(&weeklyReports, "weekly-reports", false, "weekly reports")
	return cmd
}
