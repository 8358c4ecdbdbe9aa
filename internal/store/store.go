// Package store holds the SQL of the reference API server. Every function
// takes a database.DB so tests can run against database.FakeDB.
package store

import "errors"

// ErrNotFound is returned when the addressed row does not exist.
var ErrNotFound = errors.New("not found")
