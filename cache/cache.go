package cache

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNoEntry      = errors.New("no entry")
	ErrEntryExpired = errors.New("entry expired")
)

// Cacher is a time-boxed key→value store. Entries disappear after their
// ttl or when explicitly forgotten.
type Cacher interface {
	Remember(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (any, error)
	Forget(ctx context.Context, key string) error
}
