package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Axton-Industries/Nextgen-work/internal/calendar"
	"github.com/Axton-Industries/Nextgen-work/internal/dto"
	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
	appErrors "github.com/Axton-Industries/Nextgen-work/pkg/errors"
)

// FilterServiceConfig bounds what clients may ask the resolver for.
type FilterServiceConfig struct {
	MaxRangeWeeks int
	MinYear       int
	MaxYear       int
}

// FilterService turns client filter input into validated filter states.
type FilterService struct {
	cfg    FilterServiceConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewFilterService constructs a FilterService.
func NewFilterService(cfg FilterServiceConfig, logger *zap.Logger) *FilterService {
	if cfg.MaxRangeWeeks <= 0 {
		cfg.MaxRangeWeeks = 520
	}
	if cfg.MinYear == 0 && cfg.MaxYear == 0 {
		cfg.MinYear, cfg.MaxYear = 2000, 2100
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FilterService{cfg: cfg, logger: logger, now: time.Now}
}

// CurrentYear is the year week-only points and presets are anchored to.
func (s *FilterService) CurrentYear() int {
	return s.now().Year()
}

// Default returns the initial filter state.
func (s *FilterService) Default() timefilter.FilterState {
	return timefilter.NewState(s.CurrentYear())
}

// Build converts query parameters into a filter state.
func (s *FilterService) Build(q dto.FilterQuery) (timefilter.FilterState, error) {
	mode, ok := timefilter.ParseMode(q.Mode)
	if !ok {
		return timefilter.FilterState{}, invalidFilter("unknown mode %q", q.Mode)
	}
	state := s.Default()
	state.Mode = mode
	state.WeekOffset = q.Offset
	if q.Year != 0 {
		state.Year = q.Year
	}

	start, err := s.legacyPoint("start", q.StartYear, q.StartUnit, mode, state.CurrentYear)
	if err != nil {
		return timefilter.FilterState{}, err
	}
	end, err := s.legacyPoint("end", q.EndYear, q.EndUnit, mode, state.CurrentYear)
	if err != nil {
		return timefilter.FilterState{}, err
	}
	if start == nil && end != nil {
		return timefilter.FilterState{}, invalidFilter("end given without start")
	}
	state.Start = start
	state.End = end

	label := strings.TrimSpace(q.Filter)
	if label == "" {
		label = rangeLabel(state)
	}
	state.Label = label

	if err := s.Validate(state); err != nil {
		return timefilter.FilterState{}, err
	}
	return state, nil
}

// Validate checks a state against the configured year and range limits.
func (s *FilterService) Validate(state timefilter.FilterState) error {
	if !state.Mode.Valid() {
		return invalidFilter("unknown mode %q", state.Mode)
	}
	if state.WeekOffset < 0 {
		return invalidFilter("offset must not be negative")
	}
	if limit := s.maxWeekOffset(state.CurrentYear); state.WeekOffset > limit {
		return invalidFilter("offset %d pages past year %d, limit is %d", state.WeekOffset, s.cfg.MaxYear, limit)
	}
	if err := s.checkYear("year", state.Year); err != nil {
		return err
	}
	for _, p := range []*timefilter.RangePoint{state.Start, state.End} {
		if p == nil {
			continue
		}
		if !p.Valid() {
			return invalidFilter("range point %s unit is out of range", p.Kind)
		}
		if err := s.checkYear("range year", p.Year); err != nil {
			return err
		}
	}
	if n := len(timefilter.Resolve(state)); n > s.cfg.MaxRangeWeeks {
		return invalidFilter("range spans %d weeks, limit is %d", n, s.cfg.MaxRangeWeeks)
	}
	return nil
}

// Weeks resolves the query into the weeks to plot.
func (s *FilterService) Weeks(q dto.FilterQuery) (*dto.FilterWeeksResponse, error) {
	state, err := s.Build(q)
	if err != nil {
		return nil, err
	}
	return &dto.FilterWeeksResponse{State: state, Weeks: timefilter.Resolve(state)}, nil
}

// Transition applies one action to a client supplied state.
func (s *FilterService) Transition(req dto.TransitionRequest) (*dto.FilterWeeksResponse, error) {
	state := s.Default()
	if req.State != nil {
		state = *req.State
		if state.CurrentYear == 0 {
			state.CurrentYear = s.CurrentYear()
		}
		if state.Year == 0 {
			state.Year = state.CurrentYear
		}
		if state.Mode == "" {
			state.Mode = timefilter.ModePresets
		}
	}
	next, err := timefilter.Apply(state, req.Action)
	if err != nil {
		if errors.Is(err, timefilter.ErrUnknownAction) || errors.Is(err, timefilter.ErrInvalidUnit) || errors.Is(err, timefilter.ErrInvalidMode) {
			return nil, appErrors.Wrap(err, appErrors.ErrInvalidFilter.Code, appErrors.ErrInvalidFilter.Status, err.Error())
		}
		return nil, err
	}
	if err := s.Validate(next); err != nil {
		return nil, err
	}
	s.logger.Debug("filter transition", zap.String("action", string(req.Action.Type)), zap.String("label", next.Label))
	return &dto.FilterWeeksResponse{State: next, Weeks: timefilter.Resolve(next)}, nil
}

// Presets lists the preset labels, modes and the default state.
func (s *FilterService) Presets() dto.PresetsResponse {
	return dto.PresetsResponse{
		Presets: timefilter.Presets(),
		Modes:   timefilter.Modes(),
		Default: s.Default(),
	}
}

// Calendar returns the month table.
func (s *FilterService) Calendar() dto.CalendarResponse {
	return dto.CalendarResponse{WeeksPerYear: calendar.WeeksPerYear, Months: calendar.Months()}
}

func (s *FilterService) legacyPoint(name string, year, unit *int, mode timefilter.FilterMode, currentYear int) (*timefilter.RangePoint, error) {
	if year == nil && unit == nil {
		return nil, nil
	}
	if year == nil || unit == nil {
		return nil, invalidFilter("%sYear and %sUnit must be given together", name, name)
	}
	p := timefilter.DecodeLegacyPoint(*year, *unit, mode, currentYear)
	if !p.Valid() {
		return nil, invalidFilter("%sUnit %d is out of range", name, *unit)
	}
	return &p, nil
}

// maxWeekOffset is the largest offset whose pagination window still ends within MaxYear.
func (s *FilterService) maxWeekOffset(currentYear int) int {
	limit := (s.cfg.MaxYear-currentYear+1)*calendar.WeeksPerYear - timefilter.PageSize
	if limit > timefilter.MaxWeekOffset {
		return timefilter.MaxWeekOffset
	}
	if limit < 0 {
		return 0
	}
	return limit
}

func (s *FilterService) checkYear(field string, year int) error {
	if year < s.cfg.MinYear || year > s.cfg.MaxYear {
		return invalidFilter("%s %d outside %d..%d", field, year, s.cfg.MinYear, s.cfg.MaxYear)
	}
	return nil
}

// rangeLabel replays the range clicks to get the label the dashboard would show.
func rangeLabel(state timefilter.FilterState) string {
	if state.Start == nil {
		if state.Mode == timefilter.ModePresets {
			return timefilter.PresetAcademicYear
		}
		return state.Label
	}
	replay := timefilter.NewState(state.CurrentYear)
	replay = selectPoint(replay, *state.Start)
	if state.End != nil && state.End.Kind == state.Start.Kind {
		replay = selectPoint(replay, *state.End)
	}
	return replay.Label
}

func selectPoint(s timefilter.FilterState, p timefilter.RangePoint) timefilter.FilterState {
	if p.IsWeek() {
		return s.SelectWeek(p.Year, p.Week)
	}
	return s.SelectMonth(p.Year, p.Month)
}

func invalidFilter(format string, args ...interface{}) error {
	return appErrors.Clone(appErrors.ErrInvalidFilter, fmt.Sprintf(format, args...))
}
