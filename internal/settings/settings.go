// Package settings persists the configuration section: company details,
// timezone and notification preferences, stored as YAML on the operator's
// machine.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Timezones are the selectable timezones in display order.
var Timezones = []string{
	"UTC-5 (Bogotá)",
	"UTC-6 (México)",
	"UTC-3 (Buenos Aires)",
}

type Notifications struct {
	Email         bool `yaml:"email"`
	Push          bool `yaml:"push"`
	WeeklyReports bool `yaml:"weekly_reports"`
}

type Settings struct {
	CompanyName   string        `yaml:"company_name" validate:"required"`
	ContactEmail  string        `yaml:"contact_email" validate:"required,email"`
	Timezone      string        `yaml:"timezone" validate:"required,timezone_option"`
	Notifications Notifications `yaml:"notifications"`
}

// Defaults returns the settings used until the operator saves any.
func Defaults() Settings {
	return Settings{
		CompanyName:  "Mi Empresa S.A.",
		ContactEmail: "contacto@empresa.com",
		Timezone:     Timezones[0],
		Notifications: Notifications{
			Email:         true,
			Push:          false,
			WeeklyReports: true,
		},
	}
}

// DefaultPath returns <user config dir>/admin-dashboard/settings.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "admin-dashboard", "settings.yaml")
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("timezone_option", func(fl validator.FieldLevel) bool {
		for _, tz := range Timezones {
			if fl.Field().String() == tz {
				return true
			}
		}
		return false
	})
	return v
}

// Store reads and writes one settings file.
type Store struct {
	path     string
	validate *validator.Validate
}

func NewStore(path string) *Store {
	return &Store{path: path, validate: newValidator()}
}

// Path returns the file location.
func (s *Store) Path() string { return s.path }

// Validate checks s against the field rules.
func (s *Store) Validate(st Settings) error {
	return s.validate.Struct(st)
}

// Load returns the saved settings, or Defaults when nothing was saved yet.
// Fields missing from the file keep their default value.
func (s *Store) Load() (Settings, error) {
	st := Defaults()
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("Load: %w", err)
	}
	if err := yaml.Unmarshal(raw, &st); err != nil {
		return Settings{}, fmt.Errorf("Load: %w", err)
	}
	return st, nil
}

// Save validates st and replaces the file.
func (s *Store) Save(st Settings) error {
	if err := s.Validate(st); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	raw, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}
