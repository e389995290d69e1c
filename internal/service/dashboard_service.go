package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Axton-Industries/Nextgen-work/internal/dto"
	"github.com/Axton-Industries/Nextgen-work/internal/layout"
	"github.com/Axton-Industries/Nextgen-work/internal/models"
	"github.com/Axton-Industries/Nextgen-work/internal/repository"
	"github.com/Axton-Industries/Nextgen-work/internal/synth"
	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
	appErrors "github.com/Axton-Industries/Nextgen-work/pkg/errors"
)

type dashboardDataset interface {
	FindStudentByName(ctx context.Context, name string) (*models.Student, error)
	SummaryStats(ctx context.Context) []models.StatCard
	WritingOverview(ctx context.Context) []models.WritingOverview
	Engagement(ctx context.Context) []models.EngagementMetric
	Improvement(ctx context.Context) []models.ImprovementStat
	ErrorWords(ctx context.Context) []models.ErrorAnalysis
	TopErrorQuestions(ctx context.Context) []models.ErrorQuestion
	Baselines(ctx context.Context) models.StudentBaselines
}

// DashboardCachePattern matches every cached dashboard view.
const DashboardCachePattern = "dash:*"

const (
	viewOverview = "overview"
	viewStudent  = "student"
)

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL time.Duration
}

// DashboardService composes the overview and student dashboards.
type DashboardService struct {
	data    dashboardDataset
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
	cfg     DashboardServiceConfig
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Dataset dashboardDataset
	Cache   *CacheService
	Metrics *MetricsService
	Logger  *zap.Logger
	Config  DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		data:    params.Dataset,
		cache:   params.Cache,
		metrics: params.Metrics,
		logger:  logger,
		now:     time.Now,
		cfg:     cfg,
	}
}

// Overview returns the class dashboard and whether it came from cache.
// The class data does not vary with the filter; only the plotted weeks do.
func (s *DashboardService) Overview(ctx context.Context, state timefilter.FilterState) (*dto.OverviewResponse, bool, error) {
	key := "dash:overview:" + state.CacheKey()
	var cached dto.OverviewResponse
	if s.tryCache(ctx, key, &cached) {
		return &cached, true, nil
	}

	start := time.Now()
	writing := s.data.WritingOverview(ctx)
	sort.SliceStable(writing, func(i, j int) bool { return writing[i].WordCount > writing[j].WordCount })

	bubbles := layout.QuestionBubbles(s.data.TopErrorQuestions(ctx))
	s.reportCapped(bubbles)

	resp := &dto.OverviewResponse{
		Filter:      state,
		Weeks:       timefilter.Resolve(state),
		Summary:     s.data.SummaryStats(ctx),
		Writing:     writing,
		Engagement:  s.data.Engagement(ctx),
		Improvement: s.data.Improvement(ctx),
		ErrorWords:  layout.RankErrors(s.data.ErrorWords(ctx)),
		Bubbles:     bubbles,
		GeneratedAt: s.now().UTC(),
	}
	s.metrics.ObserveCompose(viewOverview, time.Since(start))

	s.persistCache(ctx, key, resp)
	return resp, false, nil
}

// Student returns one student's dashboard and whether it came from cache.
func (s *DashboardService) Student(ctx context.Context, name string, state timefilter.FilterState) (*dto.StudentDashboardResponse, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "student name is required")
	}
	student, err := s.data.FindStudentByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, false, appErrors.Clone(appErrors.ErrStudentNotFound, fmt.Sprintf("student %q not found", name))
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	key := StudentCacheKey(student.FullName, state)
	var cached dto.StudentDashboardResponse
	if s.tryCache(ctx, key, &cached) {
		return &cached, true, nil
	}

	start := time.Now()
	resp := s.composeStudent(ctx, *student, state)
	s.metrics.ObserveCompose(viewStudent, time.Since(start))

	s.persistCache(ctx, key, resp)
	return resp, false, nil
}

// StudentCacheKey names the cache entry of a student view.
func StudentCacheKey(name string, state timefilter.FilterState) string {
	return fmt.Sprintf("dash:student:%s:%s", strings.ToLower(name), state.CacheKey())
}

func (s *DashboardService) composeStudent(ctx context.Context, student models.Student, state timefilter.FilterState) *dto.StudentDashboardResponse {
	seed := synth.StudentSeed(student.FullName, state.Label)
	return &dto.StudentDashboardResponse{
		Student:     student,
		Filter:      state,
		Seed:        seed,
		Weeks:       timefilter.Resolve(state),
		Stats:       synth.StatCards(student.FullName, seed),
		Summary:     synth.SummaryFor(seed),
		Charts:      synth.StudentCharts(student.FullName, state, s.data.Baselines(ctx)),
		ErrorWords:  layout.RankErrors(s.data.ErrorWords(ctx)),
		GeneratedAt: s.now().UTC(),
	}
}

// tryCache reports a hit. Read failures are logged by the cache service and treated as misses.
func (s *DashboardService) tryCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, dest)
	return err == nil && hit
}

func (s *DashboardService) persistCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *DashboardService) reportCapped(bubbles []layout.Bubble) {
	n := layout.CappedCount(bubbles)
	if n == 0 {
		return
	}
	s.metrics.RecordLayoutCapped(n)
	s.logger.Warn("bubble layout hit attempt limit", zap.Int("capped", n), zap.Int("bubbles", len(bubbles)))
}
