// Package store defines errors shared by document persistence implementations.
package store

import "errors"

// ErrNotFound is returned when a document is not found in the store.
var ErrNotFound = errors.New("document not found")
