// Package timefilter models the dashboard's time filter and resolves it into plotted weeks.
//
// FilterState is a value type. Every transition returns a new state and never mutates the
// points referenced by the previous one.
package timefilter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Axton-Industries/Nextgen-work/internal/calendar"
)

// FilterMode selects how the filter is chosen in the UI.
type FilterMode string

const (
	ModePresets FilterMode = "presets"
	ModeMonths  FilterMode = "months"
	ModeWeeks   FilterMode = "weeks"
)

// Valid reports whether m is one of the known modes.
func (m FilterMode) Valid() bool {
	switch m {
	case ModePresets, ModeMonths, ModeWeeks:
		return true
	}
	return false
}

// Modes lists the filter modes in tab order.
func Modes() []FilterMode {
	return []FilterMode{ModePresets, ModeMonths, ModeWeeks}
}

// ParseMode converts raw text into a FilterMode. Empty input means presets.
func ParseMode(raw string) (FilterMode, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ModePresets, true
	}
	mode := FilterMode(raw)
	return mode, mode.Valid()
}

// Preset labels, in the order the dashboard lists them.
const (
	PresetAcademicYear    = "Current academic year"
	PresetCurrentSemester = "Current semester"
	PresetLastMonth       = "Last month"
	PresetLastWeek        = "Last week"
)

var presets = []string{PresetAcademicYear, PresetCurrentSemester, PresetLastMonth, PresetLastWeek}

// Presets returns the preset labels in display order.
func Presets() []string {
	out := make([]string, len(presets))
	copy(out, presets)
	return out
}

// PresetIndex returns the position of label in Presets, or -1.
func PresetIndex(label string) int {
	for i, p := range presets {
		if p == label {
			return i
		}
	}
	return -1
}

// FilterState is the complete time filter selection.
type FilterState struct {
	Label       string      `json:"label"`
	Mode        FilterMode  `json:"mode"`
	Start       *RangePoint `json:"start,omitempty"`
	End         *RangePoint `json:"end,omitempty"`
	WeekOffset  int         `json:"weekOffset"`
	Year        int         `json:"year"`
	CurrentYear int         `json:"currentYear"`
}

// NewState returns the initial filter: the whole academic year on the presets tab.
func NewState(currentYear int) FilterState {
	return FilterState{
		Label:       PresetAcademicYear,
		Mode:        ModePresets,
		Year:        currentYear,
		CurrentYear: currentYear,
	}
}

// HasRange reports whether an explicit range start is set.
func (s FilterState) HasRange() bool { return s.Start != nil }

// CacheKey is a stable textual identity of everything that affects resolution and synthesis.
func (s FilterState) CacheKey() string {
	return fmt.Sprintf("%s|%s|%s|%s|%d|%d|%d",
		strconv.Quote(s.Label), s.Mode, pointKey(s.Start), pointKey(s.End), s.WeekOffset, s.Year, s.CurrentYear)
}

func pointKey(p *RangePoint) string {
	if p == nil {
		return "-"
	}
	return p.String()
}

// SelectPreset switches to a preset and clears any explicit range.
func (s FilterState) SelectPreset(label string) FilterState {
	next := s
	next.Label = label
	next.Mode = ModePresets
	next.Start = nil
	next.End = nil
	return next
}

// SetMode switches tab without touching the current range or label.
func (s FilterState) SetMode(mode FilterMode) FilterState {
	next := s
	next.Mode = mode
	return next
}

// SelectMonth records a month click: the first click starts a range, the second closes it.
func (s FilterState) SelectMonth(year, month int) FilterState {
	next := s
	next.Mode = ModeMonths
	point := MonthPoint(year, month)
	if s.Start == nil || s.End != nil || !s.Start.IsMonth() {
		next.Start = &point
		next.End = nil
		next.Label = fmt.Sprintf("%s %d", calendar.MonthName(month), year)
		return next
	}
	start := *s.Start
	next.Start = &start
	next.End = &point
	first, last := start, point
	if last.Before(first) {
		first, last = last, first
	}
	next.Label = fmt.Sprintf("%s %d - %s %d",
		calendar.MonthAbbrev(first.Month), first.Year, calendar.MonthAbbrev(last.Month), last.Year)
	return next
}

// SelectWeek records a week click. A completed week range is stored in chronological order.
func (s FilterState) SelectWeek(year, week int) FilterState {
	next := s
	next.Mode = ModeWeeks
	point := WeekPoint(year, week)
	if s.Start == nil || s.End != nil || !s.Start.IsWeek() {
		next.Start = &point
		next.End = nil
		next.Label = fmt.Sprintf("Week %d", week)
		return next
	}
	first, last := *s.Start, point
	if last.Before(first) {
		first, last = last, first
	}
	next.Start = &first
	next.End = &last
	if first.Year == last.Year {
		next.Label = fmt.Sprintf("W%d - W%d", first.Week, last.Week)
	} else {
		next.Label = fmt.Sprintf("W%d %d - W%d %d", first.Week, first.Year, last.Week, last.Year)
	}
	return next
}

// ShiftYear moves the months tab by delta years.
func (s FilterState) ShiftYear(delta int) FilterState {
	next := s
	next.Year += delta
	return next
}

// PageWeeks moves the week pagination window by delta pages. The offset saturates
// within 0..MaxWeekOffset.
func (s FilterState) PageWeeks(delta int) FilterState {
	next := s
	limit := MaxWeekOffset/PageSize + 1
	if delta > limit {
		delta = limit
	} else if delta < -limit {
		delta = -limit
	}
	next.WeekOffset = clampOffset(clampOffset(s.WeekOffset) + delta*PageSize)
	return next
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > MaxWeekOffset {
		return MaxWeekOffset
	}
	return offset
}

// ActionType names a filter transition.
type ActionType string

const (
	ActionSelectPreset ActionType = "select_preset"
	ActionSetMode      ActionType = "set_mode"
	ActionSelectMonth  ActionType = "select_month"
	ActionSelectWeek   ActionType = "select_week"
	ActionShiftYear    ActionType = "shift_year"
	ActionPageWeeks    ActionType = "page_weeks"
	ActionReset        ActionType = "reset"
)

// Action is a serialisable filter transition.
type Action struct {
	Type  ActionType `json:"type"`
	Label string     `json:"label,omitempty"`
	Mode  FilterMode `json:"mode,omitempty"`
	Year  int        `json:"year,omitempty"`
	Unit  int        `json:"unit,omitempty"`
	Delta int        `json:"delta,omitempty"`
}

var (
	ErrUnknownAction = errors.New("unknown filter action")
	ErrInvalidUnit   = errors.New("calendar unit out of range")
	ErrInvalidMode   = errors.New("unknown filter mode")
)

// Apply dispatches action to the matching transition.
func Apply(s FilterState, action Action) (FilterState, error) {
	switch action.Type {
	case ActionSelectPreset:
		return s.SelectPreset(action.Label), nil
	case ActionSetMode:
		if !action.Mode.Valid() {
			return s, fmt.Errorf("%w: %q", ErrInvalidMode, action.Mode)
		}
		return s.SetMode(action.Mode), nil
	case ActionSelectMonth:
		if !MonthPoint(action.Year, action.Unit).Valid() {
			return s, fmt.Errorf("%w: month %d", ErrInvalidUnit, action.Unit)
		}
		return s.SelectMonth(action.Year, action.Unit), nil
	case ActionSelectWeek:
		if !WeekPoint(action.Year, action.Unit).Valid() {
			return s, fmt.Errorf("%w: week %d", ErrInvalidUnit, action.Unit)
		}
		return s.SelectWeek(action.Year, action.Unit), nil
	case ActionShiftYear:
		return s.ShiftYear(action.Delta), nil
	case ActionPageWeeks:
		return s.PageWeeks(action.Delta), nil
	case ActionReset:
		return NewState(s.CurrentYear), nil
	}
	return s, fmt.Errorf("%w: %q", ErrUnknownAction, action.Type)
}
