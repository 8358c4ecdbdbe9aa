package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"admin-dashboard/internal/model"

	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return New(ts.URL + "/api/")
}

func TestResourceList(t *testing.T) {
	var calls int
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/users", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[{"id":1,"name":"Ana","email":"ana@example.com","role":"Admin","status":"Activo","joined_date":"2025-01-02"}]`)
	})
	users := NewResource[model.User, model.UserPayload](c, "users")

	got, err := users.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Len(t, got, 1)
	require.Equal(t, "Ana", got[0].Name)
	require.Equal(t, "2025-01-02", got[0].JoinedDate)
}

func TestResourceListNullBody(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `null`)
	})
	got, err := NewResource[model.Product, model.ProductPayload](c, "products").List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestResourceListErrors(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := NewResource[model.User, model.UserPayload](c, "users").List(context.Background())
		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
		require.Equal(t, "fallback", Message(err, "fallback"))
	})

	t.Run("decode", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"not":"an array"}`)
		})
		_, err := NewResource[model.User, model.UserPayload](c, "users").List(context.Background())
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
	})

	t.Run("network", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()
		_, err := NewResource[model.User, model.UserPayload](New(url), "users").List(context.Background())
		var netErr *NetworkError
		require.ErrorAs(t, err, &netErr)
		require.Equal(t, http.MethodGet, netErr.Method)
	})

	t.Run("cancelled", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[]`)
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewResource[model.User, model.UserPayload](c, "users").List(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestResourceCreate(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/products", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, map[string]any{"name": "Widget", "price": 9.99, "stock": float64(5)}, body)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":42,"name":"Widget","price":"9.99","stock":5}`)
	})
	products := NewResource[model.Product, model.ProductPayload](c, "products")

	created, err := products.Create(context.Background(), model.ProductPayload{Name: "Widget", Price: 9.99, Stock: 5})
	require.NoError(t, err)
	require.Equal(t, 42, created.ID)
	require.Equal(t, model.Amount(9.99), created.Price)
}

func TestResourceCreateServerMessage(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"email already registered"}`)
	})
	_, err := NewResource[model.User, model.UserPayload](c, "users").Create(context.Background(), model.UserPayload{Name: "Ana"})
	require.Error(t, err)
	require.True(t, IsValidation(err))
	require.Equal(t, "email already registered", Message(err, "Error al crear usuario"))
}

func TestResourceUpdateAndDelete(t *testing.T) {
	var seen []string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodPut:
			var p model.UserPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
			require.Empty(t, p.Password)
			w.WriteHeader(http.StatusNoContent)
		case http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		}
	})
	users := NewResource[model.User, model.UserPayload](c, "users")

	updated, err := users.Update(context.Background(), 7, model.UserPayload{Name: "Ana", Status: model.StatusInactive})
	require.NoError(t, err)
	require.Zero(t, updated.ID)
	require.NoError(t, users.Delete(context.Background(), 7))
	require.Equal(t, []string{"PUT /api/users/7", "DELETE /api/users/7"}, seen)
}

func TestMessageAndValidation(t *testing.T) {
	require.Equal(t, "x", Message(errors.New("boom"), "x"))
	require.Equal(t, "x", Message(&HTTPError{StatusCode: 500}, "x"))
	require.False(t, IsValidation(&HTTPError{StatusCode: 500}))
	require.True(t, IsValidation(&HTTPError{StatusCode: 422}))
	require.False(t, IsValidation(errors.New("boom")))
	require.Contains(t, (&HTTPError{StatusCode: 404, Message: "missing"}).Error(), "missing")
}

func TestClientGet(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/stats", r.URL.Path)
		_, _ = io.WriteString(w, `{"totalSales":1200.5,"totalUsers":12,"totalOrders":30}`)
	})
	var stats model.Stats
	require.NoError(t, c.Get(context.Background(), "/stats", &stats))
	require.Equal(t, 12, stats.TotalUsers)
	require.Equal(t, "/api", c.BaseURL()[len(c.BaseURL())-4:])
}
