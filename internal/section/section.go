// Package section instantiates the generic controllers for each dashboard
// section and carries the per-section texts, filters and fallback data.
// A section is created when it is mounted and closed when the operator
// navigates away; it owns the only snapshot of its data.
package section

import (
	"context"
	"fmt"
	"log/slog"

	"admin-dashboard/internal/apiclient"
	"admin-dashboard/internal/logging"
	"admin-dashboard/internal/settings"
)

// ID names a section.
type ID string

const (
	AnalyticsID ID = "analytics"
	UsersID     ID = "users"
	ProductsID  ID = "products"
	SalesID     ID = "sales"
	SettingsID  ID = "settings"
)

// MenuItem is one sidebar entry.
type MenuItem struct {
	ID    ID
	Label string
}

// Menu lists the sidebar entries in order. The first is the default.
var Menu = []MenuItem{
	{ID: AnalyticsID, Label: "Analytics"},
	{ID: UsersID, Label: "Usuarios"},
	{ID: ProductsID, Label: "Productos"},
	{ID: SalesID, Label: "Ventas"},
	{ID: SettingsID, Label: "Configuración"},
}

// Title returns the header title of a section.
func Title(id ID) string {
	switch id {
	case AnalyticsID:
		return "Analytics Dashboard"
	case UsersID:
		return "Gestión de Usuarios"
	case ProductsID:
		return "Gestión de Productos"
	case SalesID:
		return "Gestión de Ventas"
	case SettingsID:
		return "Configuración"
	default:
		return "Dashboard"
	}
}

// Section is a mounted section.
type Section interface {
	ID() ID
	// Load fetches the section's data; it blocks until the fetch resolves.
	Load(ctx context.Context)
	// Close cancels in-flight work; later results are dropped.
	Close()
}

// Deps are the collaborators shared by all sections.
type Deps struct {
	Client   *apiclient.Client
	Settings *settings.Store
	Logger   *slog.Logger
}

// Open creates a fresh, not yet loaded section.
func Open(id ID, deps Deps) (Section, error) {
	logger := logging.OrNop(deps.Logger).With("section", string(id))
	switch id {
	case AnalyticsID:
		return NewAnalytics(deps.Client, logger), nil
	case UsersID:
		return NewUsers(deps.Client, logger), nil
	case ProductsID:
		return NewProducts(deps.Client, logger), nil
	case SalesID:
		return NewSales(deps.Client, logger), nil
	case SettingsID:
		return NewSettings(deps.Settings, logger), nil
	}
	return nil, fmt.Errorf("unknown section %q", id)
}
