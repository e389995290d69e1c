package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Axton-Industries/Nextgen-work/internal/dto"
	"github.com/Axton-Industries/Nextgen-work/internal/models"
	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
	"github.com/Axton-Industries/Nextgen-work/pkg/jobs"
)

const warmupJobType = "dashboard_warmup"

type jobQueue interface {
	Enqueue(job jobs.Job) error
}

type warmupDashboards interface {
	Overview(ctx context.Context, state timefilter.FilterState) (*dto.OverviewResponse, bool, error)
	Student(ctx context.Context, name string, state timefilter.FilterState) (*dto.StudentDashboardResponse, bool, error)
}

type activeStudentLister interface {
	ListStudents(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error)
}

// WarmupPayload identifies one view to precompute. An empty Student means the overview.
type WarmupPayload struct {
	Student string
	State   timefilter.FilterState
}

// WarmupService precomputes dashboards for every active student and preset so first
// requests hit the cache.
type WarmupService struct {
	students   activeStudentLister
	dashboards warmupDashboards
	filters    *FilterService
	metrics    *MetricsService
	logger     *zap.Logger
}

// WarmupServiceParams groups constructor dependencies.
type WarmupServiceParams struct {
	Students   activeStudentLister
	Dashboards warmupDashboards
	Filters    *FilterService
	Metrics    *MetricsService
	Logger     *zap.Logger
}

// NewWarmupService constructs a WarmupService.
func NewWarmupService(params WarmupServiceParams) *WarmupService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	filters := params.Filters
	if filters == nil {
		filters = NewFilterService(FilterServiceConfig{}, logger)
	}
	return &WarmupService{
		students:   params.Students,
		dashboards: params.Dashboards,
		filters:    filters,
		metrics:    params.Metrics,
		logger:     logger,
	}
}

// Plan lists the views a warmup run computes: the overview and each active student per preset.
func (s *WarmupService) Plan(ctx context.Context) ([]WarmupPayload, error) {
	active := true
	students, _, err := s.students.ListStudents(ctx, models.StudentFilter{Active: &active})
	if err != nil {
		return nil, fmt.Errorf("list active students: %w", err)
	}
	base := s.filters.Default()
	presets := timefilter.Presets()
	plan := make([]WarmupPayload, 0, len(presets)*(len(students)+1))
	for _, preset := range presets {
		state := base.SelectPreset(preset)
		plan = append(plan, WarmupPayload{State: state})
		for _, st := range students {
			plan = append(plan, WarmupPayload{Student: st.FullName, State: state})
		}
	}
	return plan, nil
}

// Enqueue schedules the whole plan on queue and returns how many jobs were queued.
func (s *WarmupService) Enqueue(ctx context.Context, queue jobQueue) (int, error) {
	plan, err := s.Plan(ctx)
	if err != nil {
		return 0, err
	}
	for i, payload := range plan {
		if err := queue.Enqueue(jobs.Job{ID: uuid.NewString(), Type: warmupJobType, Payload: payload}); err != nil {
			return i, fmt.Errorf("enqueue warmup job: %w", err)
		}
	}
	s.logger.Info("dashboard warmup scheduled", zap.Int("jobs", len(plan)))
	return len(plan), nil
}

// Handle is the queue handler computing one planned view.
func (s *WarmupService) Handle(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(WarmupPayload)
	if !ok {
		s.metrics.RecordWarmupJob(false)
		s.logger.Error("unexpected warmup payload", zap.String("job_id", job.ID), zap.String("type", fmt.Sprintf("%T", job.Payload)))
		return nil
	}
	var err error
	if payload.Student == "" {
		_, _, err = s.dashboards.Overview(ctx, payload.State)
	} else {
		_, _, err = s.dashboards.Student(ctx, payload.Student, payload.State)
	}
	s.metrics.RecordWarmupJob(err == nil)
	if err != nil {
		return fmt.Errorf("warm %q %q: %w", payload.Student, payload.State.Label, err)
	}
	return nil
}
