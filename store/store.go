package store

import (
	"context"
	"errors"
)

// ErrTokenNotFound is returned by Load when no token is persisted.
var ErrTokenNotFound = errors.New("token not found")

// TokenStore is durable single-token storage. Implementations must be safe
// for concurrent use and must make Clear idempotent.
type TokenStore interface {
	// Load returns the persisted token, or ErrTokenNotFound when the store
	// is empty. Any other error means the backend itself failed.
	Load(ctx context.Context) (string, error)

	// Save persists token, replacing any previous value.
	Save(ctx context.Context, token string) error

	// Clear removes the persisted token. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}
