package section

import (
	"context"
	"log/slog"

	"admin-dashboard/internal/liststate"
	"admin-dashboard/internal/settings"
)

const (
	SettingsLoadError = "No se pudo leer la configuración."
	SettingsSaveError = "No se pudo guardar la configuración."
)

// Settings is the configuration section, backed by the local settings file.
type Settings struct {
	Store *settings.Store
	List  *liststate.Controller[settings.Settings]
}

func NewSettings(store *settings.Store, logger *slog.Logger) *Settings {
	return &Settings{
		Store: store,
		List: liststate.New(func(context.Context) (settings.Settings, error) {
			return store.Load()
		},
			liststate.WithErrorMessage[settings.Settings](SettingsLoadError),
			liststate.WithLogger[settings.Settings](logger),
		),
	}
}

func (s *Settings) ID() ID                   { return SettingsID }
func (s *Settings) Load(ctx context.Context) { s.List.Reload(ctx) }
func (s *Settings) Close()                   { s.List.Close() }

// Save writes st and reloads the section. A rejected value leaves the file
// untouched and puts the section in its error state.
func (s *Settings) Save(ctx context.Context, st settings.Settings) error {
	if err := s.Store.Save(st); err != nil {
		s.List.Fail(SettingsSaveError)
		return err
	}
	s.List.Reload(ctx)
	return nil
}
