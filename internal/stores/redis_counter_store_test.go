package stores

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRedisStoreTest starts a miniredis instance and returns a store backed by it.
func setupRedisStoreTest(t *testing.T) (CounterStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCounterStoreFromClient(client), mr
}

func TestRedisCounterStore_Increment_CreatesAndAdds(t *testing.T) {
	t.Parallel()

	store, _ := setupRedisStoreTest(t)
	ctx := context.Background()

	// First increment creates the key with the delta value.
	value, err := store.Increment(ctx, "platform:global:users_total", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), value)

	// Read-after-write: no propagation lag.
	got, err := store.Get(ctx, "platform:global:users_total")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)

	value, err = store.Increment(ctx, "platform:global:users_total", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(6), value)
}

func TestRedisCounterStore_Increment_NegativeDelta(t *testing.T) {
	t.Parallel()

	store, _ := setupRedisStoreTest(t)
	ctx := context.Background()

	_, err := store.Increment(ctx, "platform:global:complaints_total", 10)
	require.NoError(t, err)

	// Corrections are negative increments, still atomic.
	value, err := store.Increment(ctx, "platform:global:complaints_total", -3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), value)
}

func TestRedisCounterStore_Increment_ConcurrentNoLostUpdates(t *testing.T) {
	t.Parallel()

	store, _ := setupRedisStoreTest(t)
	ctx := context.Background()

	const callers = 50
	const perCaller = 20

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perCaller; j++ {
				_, err := store.Increment(ctx, "platform:global:messages_total", 1)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, "platform:global:messages_total")
	require.NoError(t, err)
	assert.Equal(t, int64(callers*perCaller), got)
}

func TestRedisCounterStore_Get_AbsentKeyIsZero(t *testing.T) {
	t.Parallel()

	store, _ := setupRedisStoreTest(t)

	got, err := store.Get(context.Background(), "region:CAI:users_total")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestRedisCounterStore_GetMany_MixedPresence(t *testing.T) {
	t.Parallel()

	store, _ := setupRedisStoreTest(t)
	ctx := context.Background()

	_, err := store.Increment(ctx, "region:CAI:users_total", 12)
	require.NoError(t, err)
	_, err = store.Increment(ctx, "region:CAI:complaints_total", 3)
	require.NoError(t, err)

	values, err := store.GetMany(ctx, []string{
		"region:CAI:users_total",
		"region:CAI:complaints_total",
		"region:CAI:messages_total", // never written
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{
		"region:CAI:users_total":      12,
		"region:CAI:complaints_total": 3,
		"region:CAI:messages_total":   0,
	}, values)
}

func TestRedisCounterStore_GetMany_Empty(t *testing.T) {
	t.Parallel()

	store, _ := setupRedisStoreTest(t)

	values, err := store.GetMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestRedisCounterStore_Scan_PatternAndOrder(t *testing.T) {
	t.Parallel()

	store, _ := setupRedisStoreTest(t)
	ctx := context.Background()

	for _, key := range []string{
		"region:GIZ:complaints_total",
		"region:CAI:complaints_total",
		"region:CAI:users_total",
		"party:wafd:members_total",
	} {
		_, err := store.Increment(ctx, key, 1)
		require.NoError(t, err)
	}

	keys, err := store.Scan(ctx, "region:*:complaints_total")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"region:CAI:complaints_total",
		"region:GIZ:complaints_total",
	}, keys, "scan results must be sorted")

	keys, err = store.Scan(ctx, "region:*:*")
	require.NoError(t, err)
	assert.Len(t, keys, 3)
}

func TestRedisCounterStore_SetIfAbsent_NeverOverwrites(t *testing.T) {
	t.Parallel()

	store, _ := setupRedisStoreTest(t)
	ctx := context.Background()

	written, err := store.SetIfAbsent(ctx, "platform:global:users_total", 1500)
	require.NoError(t, err)
	assert.True(t, written)

	// Live counter must survive a second seed attempt.
	written, err = store.SetIfAbsent(ctx, "platform:global:users_total", 9999)
	require.NoError(t, err)
	assert.False(t, written)

	got, err := store.Get(ctx, "platform:global:users_total")
	require.NoError(t, err)
	assert.Equal(t, int64(1500), got)
}

func TestRedisCounterStore_Unavailable_Propagates(t *testing.T) {
	t.Parallel()

	store, mr := setupRedisStoreTest(t)
	ctx := context.Background()

	_, err := store.Increment(ctx, "platform:global:users_total", 1)
	require.NoError(t, err)

	mr.Close()

	_, err = store.Increment(ctx, "platform:global:users_total", 1)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = store.Get(ctx, "platform:global:users_total")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = store.GetMany(ctx, []string{"platform:global:users_total"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = store.Scan(ctx, "platform:*:*")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = store.SetIfAbsent(ctx, "platform:global:users_total", 1)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	assert.ErrorIs(t, store.Ping(ctx), ErrStoreUnavailable)
}

func TestRedisCounterStore_Get_NonIntegerValue(t *testing.T) {
	t.Parallel()

	store, mr := setupRedisStoreTest(t)
	require.NoError(t, mr.Set("platform:global:users_total", "not-a-number"))

	_, err := store.Get(context.Background(), "platform:global:users_total")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStoreUnavailable, "corrupt value is not an availability failure")
}
