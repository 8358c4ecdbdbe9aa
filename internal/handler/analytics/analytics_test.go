package analytics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"admin-dashboard/internal/cache"
	"admin-dashboard/internal/database"
	"admin-dashboard/internal/model"
	"admin-dashboard/internal/service"
	"admin-dashboard/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func restore() {
	salesChart = store.SalesChart
	topProducts = store.TopProducts
	recentActivity = store.RecentActivity
	summary = store.Summary
}

func serve(t *testing.T, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, h(c))
	return rec
}

func TestListHandlers(t *testing.T) {
	t.Cleanup(restore)
	salesChart = func(context.Context, database.DB) ([]model.ChartPoint, error) {
		return []model.ChartPoint{{Name: "Oct", Ventas: 349.48, Usuarios: 2}}, nil
	}
	topProducts = func(_ context.Context, _ database.DB, limit int) ([]model.TopProduct, error) {
		require.Equal(t, topProductsLimit, limit)
		return []model.TopProduct{{Name: "Widget", Ventas: 3}}, nil
	}
	recentActivity = func(_ context.Context, _ database.DB, limit int) ([]model.ActivityEntry, error) {
		require.Equal(t, activityLimit, limit)
		return []model.ActivityEntry{{ID: 1, Action: "Respaldo", Time: "2025-10-01 09:00"}}, nil
	}

	require.JSONEq(t, `[{"name":"Oct","ventas":349.48,"usuarios":2}]`, serve(t, SalesDataHandler(nil)).Body.String())
	require.JSONEq(t, `[{"name":"Widget","ventas":3}]`, serve(t, TopProductsHandler(nil)).Body.String())
	require.JSONEq(t, `[{"id":1,"user":"","action":"Respaldo","time":"2025-10-01 09:00"}]`, serve(t, ActivityHandler(nil)).Body.String())

	fail := errors.New("db")
	salesChart = func(context.Context, database.DB) ([]model.ChartPoint, error) { return nil, fail }
	topProducts = func(context.Context, database.DB, int) ([]model.TopProduct, error) { return nil, fail }
	recentActivity = func(context.Context, database.DB, int) ([]model.ActivityEntry, error) { return nil, fail }
	require.Equal(t, http.StatusInternalServerError, serve(t, SalesDataHandler(nil)).Code)
	require.Equal(t, http.StatusInternalServerError, serve(t, TopProductsHandler(nil)).Code)
	require.Equal(t, http.StatusInternalServerError, serve(t, ActivityHandler(nil)).Code)
}

func TestStatsHandler(t *testing.T) {
	stats := model.Stats{TotalSales: 349.48, TotalUsers: 4, TotalOrders: 3}
	const want = `{"totalSales":349.48,"totalUsers":4,"totalOrders":3}`

	t.Run("cache hit skips the query", func(t *testing.T) {
		t.Cleanup(restore)
		summary = func(context.Context, database.DB) (model.Stats, error) {
			t.Fatal("summary must not run on a cache hit")
			return model.Stats{}, nil
		}
		cch := &cache.FakeCache{GetFn: func(_ context.Context, key string) *redis.StringCmd {
			require.Equal(t, service.StatsCacheKey, key)
			return redis.NewStringResult(want, nil)
		}}
		rec := serve(t, StatsHandler(nil, cch, time.Minute))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, want, rec.Body.String())
	})

	t.Run("miss computes and stores", func(t *testing.T) {
		t.Cleanup(restore)
		summary = func(context.Context, database.DB) (model.Stats, error) { return stats, nil }
		var stored []byte
		var storedTTL time.Duration
		cch := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("", redis.Nil) },
			SetFn: func(_ context.Context, _ string, v any, ttl time.Duration) *redis.StatusCmd {
				stored = v.([]byte)
				storedTTL = ttl
				return redis.NewStatusResult("OK", nil)
			},
		}
		rec := serve(t, StatsHandler(nil, cch, time.Minute))
		require.JSONEq(t, want, rec.Body.String())
		require.JSONEq(t, want, string(stored))
		require.Equal(t, time.Minute, storedTTL)
	})

	t.Run("cache outage still answers", func(t *testing.T) {
		t.Cleanup(restore)
		summary = func(context.Context, database.DB) (model.Stats, error) { return stats, nil }
		down := errors.New("connection refused")
		cch := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd { return redis.NewStringResult("", down) },
			SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
				return redis.NewStatusResult("", down)
			},
		}
		rec := serve(t, StatsHandler(nil, cch, time.Minute))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, want, rec.Body.String())
	})

	t.Run("query error", func(t *testing.T) {
		t.Cleanup(restore)
		summary = func(context.Context, database.DB) (model.Stats, error) { return model.Stats{}, errors.New("db") }
		cch := &cache.FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		}}
		rec := serve(t, StatsHandler(nil, cch, time.Minute))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
