package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
	"github.com/Axton-Industries/Nextgen-work/pkg/jobs"
)

type recordingQueue struct {
	jobs []jobs.Job
}

func (q *recordingQueue) Enqueue(job jobs.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func newWarmup(t *testing.T, cacheRepo CacheRepository, metrics *MetricsService) *WarmupService {
	t.Helper()
	return NewWarmupService(WarmupServiceParams{
		Students:   datasetRepo(t),
		Dashboards: newDashboardService(t, cacheRepo, metrics),
		Filters:    newFilterService(),
		Metrics:    metrics,
	})
}

func TestWarmupPlan(t *testing.T) {
	svc := newWarmup(t, nil, nil)

	plan, err := svc.Plan(context.Background())
	require.NoError(t, err)
	// Overview plus 18 active students, for each of the 4 presets.
	assert.Len(t, plan, 4*19)
	assert.Empty(t, plan[0].Student)
	assert.Equal(t, timefilter.PresetAcademicYear, plan[0].State.Label)
	for _, p := range plan {
		assert.NotEqual(t, "Max", p.Student)
	}

	q := &recordingQueue{}
	n, err := svc.Enqueue(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 76, n)
	assert.NotEqual(t, q.jobs[0].ID, q.jobs[1].ID)
	assert.Equal(t, warmupJobType, q.jobs[0].Type)
}

func TestWarmupFillsCache(t *testing.T) {
	cacheRepo := &stubCacheRepo{}
	metrics := NewMetricsService()
	svc := newWarmup(t, cacheRepo, metrics)

	queue := jobs.NewQueue("warmup", svc.Handle, jobs.QueueConfig{Workers: 1, MaxRetries: 1, RetryDelay: time.Millisecond})
	queue.Start(context.Background())
	defer queue.Stop()

	n, err := svc.Enqueue(context.Background(), queue)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, queue.Drain(ctx))

	assert.Len(t, cacheRepo.store, n)
	assert.Contains(t, cacheRepo.store, StudentCacheKey("Erik", newFilterService().Default()))
	assert.Equal(t, uint64(n), metrics.Snapshot().WarmupJobs)
	assert.Equal(t, int64(n), queue.Stats().Succeeded)
}

func TestWarmupHandleRejectsForeignPayload(t *testing.T) {
	svc := newWarmup(t, nil, nil)
	assert.NoError(t, svc.Handle(context.Background(), jobs.Job{ID: "x", Payload: "nope"}))
}
