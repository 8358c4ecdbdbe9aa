package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"admin-dashboard/internal/cache"
	"admin-dashboard/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type nopRecorder struct{}

func (nopRecorder) Record(string, string, string) {}

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, nopRecorder{}, time.Minute)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodGet + " /api/users",
		http.MethodPost + " /api/users",
		http.MethodPut + " /api/users/:id",
		http.MethodDelete + " /api/users/:id",
		http.MethodGet + " /api/products",
		http.MethodPost + " /api/products",
		http.MethodPut + " /api/products/:id",
		http.MethodDelete + " /api/products/:id",
		http.MethodGet + " /api/sales",
		http.MethodGet + " /api/analytics/sales-data",
		http.MethodGet + " /api/analytics/top-products",
		http.MethodGet + " /api/analytics/activity",
		http.MethodGet + " /api/stats",
	}
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestWritesRequireJSON(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, nopRecorder{}, time.Minute)

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader("name=a"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}
