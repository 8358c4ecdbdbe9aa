package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "settings.yaml"))
	st, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, Defaults(), st)
	require.Equal(t, "Mi Empresa S.A.", st.CompanyName)
	require.True(t, st.Notifications.Email)
	require.False(t, st.Notifications.Push)
	require.True(t, st.Notifications.WeeklyReports)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	s := NewStore(path)

	st := Defaults()
	st.CompanyName = "Litoral S.A."
	st.Timezone = "UTC-3 (Buenos Aires)"
	st.Notifications.Push = true
	require.NoError(t, s.Save(st))

	got, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, st, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "company_name: Litoral S.A.")
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("company_name: Otra\n"), 0o600))
	got, err := NewStore(path).Load()
	require.NoError(t, err)
	require.Equal(t, "Otra", got.CompanyName)
	require.Equal(t, "contacto@empresa.com", got.ContactEmail)
}

func TestSaveRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s := NewStore(path)

	st := Defaults()
	st.ContactEmail = "not-an-email"
	err := s.Save(st)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Equal(t, "ContactEmail", verrs[0].Field())

	st = Defaults()
	st.Timezone = "UTC+9 (Tokio)"
	require.Error(t, s.Save(st))

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("company_name: [\n"), 0o600))
	_, err := NewStore(path).Load()
	require.Error(t, err)
}
