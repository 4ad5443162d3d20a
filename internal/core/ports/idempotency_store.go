package ports

import (
	"context"
	"time"
)

// IdempotencyStore remembers the response to a client request key so a
// retried submission is answered without executing it twice.
type IdempotencyStore interface {
	// Get returns the stored value and true, or false when the key is unknown
	// or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores value under key unless the key already exists. It reports
	// whether the value was stored.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)

	// Set stores value under key, replacing any earlier value.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
