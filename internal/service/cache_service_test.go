package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheServiceRoundTripAndInvalidate(t *testing.T) {
	repo := &stubCacheRepo{}
	metrics := NewMetricsService()
	svc := NewCacheService(repo, metrics, time.Minute, nil, true)
	ctx := context.Background()

	var out map[string]int
	hit, err := svc.Get(ctx, "dash:overview:x", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, svc.Set(ctx, "dash:overview:x", map[string]int{"weeks": 52}, 0))
	hit, err = svc.Get(ctx, "dash:overview:x", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 52, out["weeks"])

	require.NoError(t, svc.Invalidate(ctx, DashboardCachePattern))
	hit, _ = svc.Get(ctx, "dash:overview:x", &out)
	assert.False(t, hit)

	snap := metrics.Snapshot()
	assert.Equal(t, uint64(1), snap.CacheHits)
	assert.Equal(t, uint64(2), snap.CacheMisses)
}

func TestCacheServiceDisabledIsNoop(t *testing.T) {
	repo := &stubCacheRepo{}
	svc := NewCacheService(repo, nil, 0, nil, false)
	ctx := context.Background()

	assert.False(t, svc.Enabled())
	require.NoError(t, svc.Set(ctx, "k", 1, 0))
	assert.Equal(t, 0, repo.sets)
	require.NoError(t, svc.Invalidate(ctx, DashboardCachePattern))

	var v int
	hit, err := svc.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, hit)
}
