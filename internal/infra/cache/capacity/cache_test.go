package capacity_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HostelService/internal/domain"
	"github.com/m04kA/SMC-HostelService/internal/infra/cache/capacity"
	"github.com/m04kA/SMC-HostelService/internal/testutil"
)

func rng(from, to int) domain.DateRange {
	base := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	return domain.DateRange{Start: base.AddDate(0, 0, from), End: base.AddDate(0, 0, to)}
}

func TestCache_GetSet(t *testing.T) {
	client := testutil.NewTestRedis(t)
	cache := capacity.NewCache(client, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, domain.LocationPueblo, "pueblo_dorm_mixed_8", rng(0, 2))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, domain.LocationPueblo, "pueblo_dorm_mixed_8", rng(0, 2), 5))

	value, ok, err := cache.Get(ctx, domain.LocationPueblo, "pueblo_dorm_mixed_8", rng(0, 2))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, value)

	ttl, err := client.TTL(ctx, "capacity:pueblo_dorm_mixed_8:2026-12-01:2026-12-03").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestCache_InvalidateRoom(t *testing.T) {
	client := testutil.NewTestRedis(t)
	cache := capacity.NewCache(client, time.Minute)
	ctx := context.Background()

	for i := 0; i < 450; i++ {
		require.NoError(t, cache.Set(ctx, domain.LocationHideout, "hideout_suite", rng(i, i+1), 1))
	}
	require.NoError(t, cache.Set(ctx, domain.LocationHideout, "hideout_suite_b", rng(0, 1), 1))

	require.NoError(t, cache.Invalidate(ctx, "hideout_suite"))

	keys, err := client.Keys(ctx, "capacity:*").Result()
	require.NoError(t, err)
	assert.Equal(t, []string{fmt.Sprintf("capacity:%s:2026-12-01:2026-12-02", "hideout_suite_b")}, keys)
}
