package apiclient

import (
	"context"
	"net/http"
	"strconv"
)

// Resource is one REST collection: T is the record the server returns,
// P the payload sent on create and update.
type Resource[T, P any] struct {
	client *Client
	name   string
}

// NewResource binds a collection name such as "users" to c.
func NewResource[T, P any](c *Client, name string) *Resource[T, P] {
	return &Resource[T, P]{client: c, name: name}
}

// Name returns the collection name.
func (r *Resource[T, P]) Name() string { return r.name }

func (r *Resource[T, P]) collectionPath() string {
	return "/" + r.name
}

func (r *Resource[T, P]) itemPath(id int) string {
	return "/" + r.name + "/" + strconv.Itoa(id)
}

// List fetches the whole collection.
func (r *Resource[T, P]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.do(ctx, http.MethodGet, r.collectionPath(), nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Create posts payload; the server assigns the id.
func (r *Resource[T, P]) Create(ctx context.Context, payload P) (T, error) {
	var created T
	err := r.client.do(ctx, http.MethodPost, r.collectionPath(), payload, &created)
	return created, err
}

// Update replaces record id with payload. An empty success body yields
// the zero record.
func (r *Resource[T, P]) Update(ctx context.Context, id int, payload P) (T, error) {
	var updated T
	err := r.client.do(ctx, http.MethodPut, r.itemPath(id), payload, &updated)
	return updated, err
}

// Delete removes record id.
func (r *Resource[T, P]) Delete(ctx context.Context, id int) error {
	return r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
}
