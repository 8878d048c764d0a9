package seeders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"platform-stats/internal/shared/svcerrors"
	"platform-stats/internal/stores"
	storemocks "platform-stats/internal/stores/mocks"
)

func TestSeedDefaults_WritesBaseline(t *testing.T) {
	t.Parallel()
	store := stores.NewMemoryCounterStore()
	seeder := NewSeeder(store)

	result, err := seeder.SeedDefaults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, result.KeysWritten)
	assert.Equal(t, 0, result.KeysSkipped)

	for key, want := range map[string]int64{
		"platform:global:users_total":         1500,
		"platform:global:users_citizen":       1200,
		"platform:global:users_candidate":     200,
		"platform:global:users_member":        100,
		"platform:global:messages_total":      5000,
		"platform:global:complaints_total":    800,
		"platform:global:complaints_resolved": 600,
		"platform:global:ratings_total":       2500,
	} {
		got, err := store.Get(context.Background(), key)
		require.NoError(t, err)
		assert.Equal(t, want, got, key)
	}
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	t.Parallel()
	store := stores.NewMemoryCounterStore()
	seeder := NewSeeder(store)
	ctx := context.Background()

	_, err := seeder.SeedDefaults(ctx)
	require.NoError(t, err)

	result, err := seeder.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.KeysWritten)
	assert.Equal(t, 8, result.KeysSkipped)
}

func TestSeedDefaults_NeverOverwritesLiveCounters(t *testing.T) {
	t.Parallel()
	store := stores.NewMemoryCounterStore()
	seeder := NewSeeder(store)
	ctx := context.Background()

	_, err := store.Increment(ctx, "platform:global:users_total", 42)
	require.NoError(t, err)

	result, err := seeder.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, result.KeysWritten)
	assert.Equal(t, 1, result.KeysSkipped)

	got, err := store.Get(ctx, "platform:global:users_total")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
}

func TestSeedDefaults_StoreUnavailable(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mockStore := storemocks.NewMockCounterStore(ctrl)
	mockStore.EXPECT().
		SetIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, stores.ErrStoreUnavailable)

	seeder := NewSeeder(mockStore)
	_, err := seeder.SeedDefaults(context.Background())

	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "SEED_9000", svcErr.Code)
	assert.True(t, svcErr.IsUnavailableError())
}
