package stores

import (
	"context"
	"errors"
	"fmt"
)

// ErrStoreUnavailable marks every failure caused by the backing store being
// unreachable. Callers must never conflate it with "counter does not exist":
// absent counters read as 0, an unreachable store is an error.
var ErrStoreUnavailable = errors.New("counter store unavailable")

//go:generate mockgen -source=counter_store.go -destination=./mocks/counter_store_mock.go -package=mocks
type CounterStore interface {
	// Increment atomically adds delta to the counter at key, creating it with
	// value delta if absent. Delta may be negative (correction events).
	// Safe under unbounded concurrent callers.
	Increment(ctx context.Context, key string, delta int64) (int64, error)

	// Get returns the current counter value, or 0 if the key has never been
	// written. It fails only when the store is unreachable.
	Get(ctx context.Context, key string) (int64, error)

	// GetMany is a batched Get: one round trip, absent keys mapped to 0.
	GetMany(ctx context.Context, keys []string) (map[string]int64, error)

	// Scan returns all keys matching a hierarchical wildcard pattern
	// (e.g. "region:*:complaints_total"), sorted for determinism.
	Scan(ctx context.Context, pattern string) ([]string, error)

	// SetIfAbsent writes value only when the key does not exist yet and
	// reports whether the write happened. Seeding primitive: it never
	// overwrites a live counter.
	SetIfAbsent(ctx context.Context, key string, value int64) (bool, error)

	// Ping probes store connectivity.
	Ping(ctx context.Context) error
}

// unavailableError wraps a backend failure so that errors.Is(err,
// ErrStoreUnavailable) holds while the underlying cause stays readable.
func unavailableError(op string, cause error) error {
	return fmt.Errorf("%s: %w: %s", op, ErrStoreUnavailable, cause)
}
