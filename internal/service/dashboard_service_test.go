package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
	appErrors "github.com/Axton-Industries/Nextgen-work/pkg/errors"
)

func TestDashboardOverviewCaching(t *testing.T) {
	cacheRepo := &stubCacheRepo{}
	metrics := NewMetricsService()
	svc := newDashboardService(t, cacheRepo, metrics)
	ctx := context.Background()
	state := timefilter.NewState(2025)

	first, hit, err := svc.Overview(ctx, state)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Len(t, first.Weeks, 52)
	assert.Equal(t, "Matis_S", first.Writing[0].FullName)
	for i := 1; i < len(first.Writing); i++ {
		assert.GreaterOrEqual(t, first.Writing[i-1].WordCount, first.Writing[i].WordCount)
	}
	require.Len(t, first.Bubbles, 5)
	assert.Equal(t, 201, first.Bubbles[0].ID)
	assert.Equal(t, "#7c3aed", first.Bubbles[0].Color)
	assert.Equal(t, "Pingüino", first.ErrorWords[0].Word)
	assert.Equal(t, "#7c3aed", first.ErrorWords[0].Fill)

	second, hit, err := svc.Overview(ctx, state)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first.Bubbles, second.Bubbles)
	assert.Equal(t, 1, cacheRepo.sets)

	snap := metrics.Snapshot()
	assert.Equal(t, uint64(1), snap.CacheHits)
	assert.Equal(t, uint64(1), snap.CacheMisses)
	assert.Equal(t, uint64(1), snap.ComposeCount)
	assert.Zero(t, snap.LayoutCapped)
}

func TestDashboardStudent(t *testing.T) {
	svc := newDashboardService(t, &stubCacheRepo{}, nil)
	ctx := context.Background()
	state := timefilter.NewState(2025)

	view, hit, err := svc.Student(ctx, "Erik", state)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 4, view.Seed)
	assert.Equal(t, "19min", view.Stats[1].Value)
	assert.Equal(t, 43, view.Charts.Time[0].Student)
	assert.Len(t, view.Charts.Week, 52)
	assert.Len(t, view.Charts.Skills, 3)

	again, hit, err := svc.Student(ctx, " erik ", state)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, view.Charts, again.Charts)

	week, _, err := svc.Student(ctx, "Erik", state.SelectPreset(timefilter.PresetLastWeek))
	require.NoError(t, err)
	assert.Equal(t, 7, week.Seed)
	require.Len(t, week.Weeks, 5)
	assert.Equal(t, "Mon", week.Charts.Week[0].AxisLabel)
}

func TestDashboardStudentErrors(t *testing.T) {
	svc := newDashboardService(t, nil, nil)
	ctx := context.Background()

	_, _, err := svc.Student(ctx, "Nobody", timefilter.NewState(2025))
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrStudentNotFound))

	_, _, err = svc.Student(ctx, "  ", timefilter.NewState(2025))
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestDashboardWithoutCache(t *testing.T) {
	svc := newDashboardService(t, nil, nil)
	ctx := context.Background()

	_, hit, err := svc.Overview(ctx, timefilter.NewState(2025))
	require.NoError(t, err)
	assert.False(t, hit)
	_, hit, err = svc.Overview(ctx, timefilter.NewState(2025))
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestStudentCacheKeyVariesWithFilter(t *testing.T) {
	base := timefilter.NewState(2025)
	assert.Equal(t, StudentCacheKey("Erik", base), StudentCacheKey("ERIK", base))
	assert.NotEqual(t, StudentCacheKey("Erik", base), StudentCacheKey("Erik", base.SelectWeek(2025, 3)))
}
