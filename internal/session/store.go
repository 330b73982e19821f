package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by a Store when the session is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Data is what the server remembers for a browser.
type Data struct {
	IsAdmin bool `json:"is_admin"`
}

// Store keeps session data server-side, keyed by the opaque cookie value.
type Store interface {
	Get(ctx context.Context, id string) (Data, error)
	Set(ctx context.Context, id string, data Data, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
