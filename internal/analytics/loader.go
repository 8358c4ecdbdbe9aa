// Package analytics assembles the analytics section from four
// independent endpoints. The load is all-or-nothing: one failed call
// fails the whole dashboard and no partial data is returned.
package analytics

import (
	"context"
	"fmt"

	"admin-dashboard/internal/apiclient"
	"admin-dashboard/internal/model"

	"golang.org/x/sync/errgroup"
)

const (
	SalesDataPath   = "/analytics/sales-data"
	TopProductsPath = "/analytics/top-products"
	ActivityPath    = "/analytics/activity"
	StatsPath       = "/stats"
)

// Summary feeds the stat cards.
type Summary struct {
	TotalSales float64
	NewUsers   int
	Orders     int
	// Conversion is not computed by any endpoint yet and is always 0.
	Conversion float64
}

// Dashboard is the analytics snapshot.
type Dashboard struct {
	Summary     Summary
	Chart       []model.ChartPoint
	TopProducts []model.TopProduct
	Activity    []model.ActivityEntry
}

// Getter is the read side of apiclient.Client.
type Getter interface {
	Get(ctx context.Context, path string, out any) error
}

var _ Getter = (*apiclient.Client)(nil)

// Loader fetches the dashboard.
type Loader struct {
	client Getter
}

func NewLoader(client Getter) *Loader {
	return &Loader{client: client}
}

// Load runs the four fetches concurrently and waits for all of them.
func (l *Loader) Load(ctx context.Context) (Dashboard, error) {
	var (
		chart    []model.ChartPoint
		top      []model.TopProduct
		activity []model.ActivityEntry
		stats    model.Stats
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return l.get(ctx, SalesDataPath, &chart) })
	g.Go(func() error { return l.get(ctx, TopProductsPath, &top) })
	g.Go(func() error { return l.get(ctx, ActivityPath, &activity) })
	g.Go(func() error { return l.get(ctx, StatsPath, &stats) })
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Summary: Summary{
			TotalSales: stats.TotalSales,
			NewUsers:   stats.TotalUsers,
			Orders:     stats.TotalOrders,
			Conversion: 0,
		},
		Chart:       chart,
		TopProducts: top,
		Activity:    activity,
	}, nil
}

func (l *Loader) get(ctx context.Context, path string, out any) error {
	if err := l.client.Get(ctx, path, out); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
