// Package media abstracts the external host that durably stores product images.
package media

import (
	"context"
	"errors"
	"io"
)

// ErrUnavailable is returned when the media host cannot store an asset.
var ErrUnavailable = errors.New("media store unavailable")

// Store uploads a binary asset and returns a durable public URL.
// The upload must complete before the caller persists anything referencing it.
type Store interface {
	Upload(ctx context.Context, r io.Reader, suggestedName string) (string, error)
}
