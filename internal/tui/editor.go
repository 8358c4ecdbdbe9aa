package tui

import (
	"context"
	"sync"

	"admin-dashboard/internal/form"
	"admin-dashboard/internal/section"
	"admin-dashboard/internal/settings"
)

// editor is the part of a form the view drives. form.Controller
// satisfies it for users and products; settingsEditor for the
// configuration section.
type editor interface {
	Fields() []form.Field
	Get(name string) string
	Set(name, value string) error
	Mode() (form.Mode, int)
	Submit(ctx context.Context) error
	Reset()
}

// deleter is the delete gate of a form.
type deleter interface {
	RequestDelete(id int)
	PendingDelete() (int, bool)
	CancelDelete()
	ConfirmDelete(ctx context.Context) error
}

const (
	toggleOn  = "Activado"
	toggleOff = "Desactivado"
)

var toggleOptions = []string{toggleOn, toggleOff}

var settingsFields = []form.Field{
	{Name: "company_name", Label: "Nombre de la Empresa"},
	{Name: "contact_email", Label: "Email de Contacto"},
	{Name: "timezone", Label: "Zona Horaria", Options: settings.Timezones},
	{Name: "email", Label: "Notificaciones por Email", Options: toggleOptions},
	{Name: "push", Label: "Notificaciones Push", Options: toggleOptions},
	{Name: "weekly_reports", Label: "Reportes Semanales", Options: toggleOptions},
}

// settingsEditor edits a draft of the saved settings.
type settingsEditor struct {
	section *section.Settings

	mu    sync.Mutex
	draft form.Values
}

func newSettingsEditor(s *section.Settings) *settingsEditor {
	ed := &settingsEditor{section: s}
	ed.Reset()
	return ed
}

func toggle(on bool) string {
	if on {
		return toggleOn
	}
	return toggleOff
}

func (ed *settingsEditor) Fields() []form.Field { return settingsFields }

func (ed *settingsEditor) Mode() (form.Mode, int) { return form.ModeEdit, 0 }

func (ed *settingsEditor) Get(name string) string {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.draft[name]
}

func (ed *settingsEditor) Set(name, value string) error {
	for _, f := range settingsFields {
		if f.Name == name {
			ed.mu.Lock()
			ed.draft[name] = value
			ed.mu.Unlock()
			return nil
		}
	}
	return form.ErrUnknownField
}

// Reset seeds the draft from the loaded settings, or the defaults when the
// section holds none.
func (ed *settingsEditor) Reset() {
	st, ok := ed.section.List.State().Data()
	if !ok {
		st = settings.Defaults()
	}
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.draft = form.Values{
		"company_name":   st.CompanyName,
		"contact_email":  st.ContactEmail,
		"timezone":       st.Timezone,
		"email":          toggle(st.Notifications.Email),
		"push":           toggle(st.Notifications.Push),
		"weekly_reports": toggle(st.Notifications.WeeklyReports),
	}
}

func (ed *settingsEditor) Submit(ctx context.Context) error {
	ed.mu.Lock()
	st := settings.Settings{
		CompanyName:  ed.draft.Trimmed("company_name"),
		ContactEmail: ed.draft.Trimmed("contact_email"),
		Timezone:     ed.draft["timezone"],
		Notifications: settings.Notifications{
			Email:         ed.draft["email"] == toggleOn,
			Push:          ed.draft["push"] == toggleOn,
			WeeklyReports: ed.draft["weekly_reports"] == toggleOn,
		},
	}
	ed.mu.Unlock()
	return ed.section.Save(ctx, st)
}
