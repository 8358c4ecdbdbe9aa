package section

import (
	"context"
	"log/slog"

	"admin-dashboard/internal/analytics"
	"admin-dashboard/internal/apiclient"
	"admin-dashboard/internal/liststate"
)

const AnalyticsLoadError = "Error al conectar con la API para cargar gráficos."

// Analytics is the analytics section.
type Analytics struct {
	List *liststate.Controller[analytics.Dashboard]
}

func NewAnalytics(client *apiclient.Client, logger *slog.Logger) *Analytics {
	loader := analytics.NewLoader(client)
	return &Analytics{
		List: liststate.New(loader.Load,
			liststate.WithErrorMessage[analytics.Dashboard](AnalyticsLoadError),
			liststate.WithLogger[analytics.Dashboard](logger),
		),
	}
}

func (s *Analytics) ID() ID                   { return AnalyticsID }
func (s *Analytics) Load(ctx context.Context) { s.List.Reload(ctx) }
func (s *Analytics) Close()                   { s.List.Close() }
