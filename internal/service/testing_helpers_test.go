package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Axton-Industries/Nextgen-work/internal/repository"
	appErrors "github.com/Axton-Industries/Nextgen-work/pkg/errors"
)

type stubCacheRepo struct {
	store map[string][]byte
	sets  int
}

func (s *stubCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	if s.store == nil {
		return appErrors.ErrCacheMiss
	}
	payload, ok := s.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (s *stubCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if s.store == nil {
		s.store = make(map[string][]byte)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.store[key] = payload
	s.sets++
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(_ context.Context, _ string) error {
	s.store = nil
	return nil
}

var fixedNow = time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

func datasetRepo(t *testing.T) *repository.DatasetRepository {
	t.Helper()
	repo, err := repository.NewDatasetRepository("")
	require.NoError(t, err)
	return repo
}

func newFilterService() *FilterService {
	svc := NewFilterService(FilterServiceConfig{MaxRangeWeeks: 520, MinYear: 2000, MaxYear: 2100}, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func newDashboardService(t *testing.T, cacheRepo CacheRepository, metrics *MetricsService) *DashboardService {
	t.Helper()
	cache := NewCacheService(cacheRepo, metrics, time.Minute, nil, cacheRepo != nil)
	svc := NewDashboardService(DashboardServiceParams{
		Dataset: datasetRepo(t),
		Cache:   cache,
		Metrics: metrics,
	})
	svc.now = func() time.Time { return fixedNow }
	return svc
}
