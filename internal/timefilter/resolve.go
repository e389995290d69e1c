package timefilter

import (
	"fmt"

	"github.com/Axton-Industries/Nextgen-work/internal/calendar"
)

// PageSize is the number of weeks in one pagination window.
const PageSize = 12

// MaxWeekOffset is the largest pagination offset Resolve honours, a thousand school years.
const MaxWeekOffset = 1000 * calendar.WeeksPerYear

// weekdays are the X-axis ticks of the "Last week" preset.
var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// semesterMonths is the number of leading months "Current semester" covers.
const semesterMonths = 4

// lastMonthIndex is the reference month "Last month" resolves to.
const lastMonthIndex = 0

// WeekDescriptor identifies one tick on a time-series axis.
// Exactly one of Week or Day is set.
type WeekDescriptor struct {
	Year int    `json:"year"`
	Week int    `json:"week,omitempty"`
	Day  string `json:"day,omitempty"`
}

// IsDay reports whether the descriptor is a day label.
func (d WeekDescriptor) IsDay() bool { return d.Day != "" }

// Label is the axis text for the descriptor.
func (d WeekDescriptor) Label() string {
	if d.IsDay() {
		return d.Day
	}
	return fmt.Sprintf("W%d", d.Week)
}

// Resolve expands a filter state into the ordered weeks (or days) to plot.
// The result is never empty.
func Resolve(s FilterState) []WeekDescriptor {
	if s.Start != nil {
		return resolveRange(*s.Start, s.End)
	}
	if s.Mode == ModePresets {
		if weeks, ok := resolvePreset(s.Label, s.CurrentYear); ok {
			return weeks
		}
	}
	return paginated(s.WeekOffset, s.CurrentYear)
}

// PaginationWeeks returns count consecutive week ordinals starting after offset.
func PaginationWeeks(offset, count int) []int {
	if count <= 0 {
		return nil
	}
	weeks := make([]int, count)
	for i := range weeks {
		weeks[i] = offset + i + 1
	}
	return weeks
}

func resolveRange(start RangePoint, end *RangePoint) []WeekDescriptor {
	last := start
	if end != nil && end.Kind == start.Kind {
		last = *end
	}
	if last.Before(start) {
		start, last = last, start
	}
	if start.IsWeek() {
		return weekSpan(start, last)
	}
	return monthSpan(start, last)
}

func weekSpan(start, end RangePoint) []WeekDescriptor {
	var out []WeekDescriptor
	stop := end.key()
	year, week := start.Year, start.Week
	for year*100+week <= stop {
		out = append(out, WeekDescriptor{Year: year, Week: week})
		week++
		if week > calendar.WeeksPerYear {
			week = 1
			year++
		}
	}
	return out
}

func monthSpan(start, end RangePoint) []WeekDescriptor {
	var out []WeekDescriptor
	for k := start.key(); k <= end.key(); k++ {
		year, month := k/calendar.MonthsPerYear, k%calendar.MonthsPerYear
		out = appendMonth(out, year, month)
	}
	if len(out) == 0 {
		out = paginated(0, start.Year)
	}
	return out
}

func resolvePreset(label string, year int) ([]WeekDescriptor, bool) {
	switch label {
	case PresetLastWeek:
		out := make([]WeekDescriptor, 0, len(weekdays))
		for _, day := range weekdays {
			out = append(out, WeekDescriptor{Year: year, Day: day})
		}
		return out, true
	case PresetLastMonth:
		return appendMonth(nil, year, lastMonthIndex), true
	case PresetCurrentSemester:
		var out []WeekDescriptor
		for m := 0; m < semesterMonths; m++ {
			out = appendMonth(out, year, m)
		}
		return out, true
	case PresetAcademicYear:
		out := make([]WeekDescriptor, 0, calendar.WeeksPerYear)
		for w := 1; w <= calendar.WeeksPerYear; w++ {
			out = append(out, WeekDescriptor{Year: year, Week: w})
		}
		return out, true
	}
	return nil, false
}

func appendMonth(out []WeekDescriptor, year, month int) []WeekDescriptor {
	for _, w := range calendar.WeeksInMonth(month) {
		out = append(out, WeekDescriptor{Year: year, Week: w})
	}
	return out
}

// paginated maps the pagination window onto real weeks; ordinals past 52 spill into later years.
func paginated(offset, year int) []WeekDescriptor {
	offset = clampOffset(offset)
	ordinals := PaginationWeeks(offset, PageSize)
	out := make([]WeekDescriptor, 0, len(ordinals))
	for _, n := range ordinals {
		out = append(out, WeekDescriptor{
			Year: year + (n-1)/calendar.WeeksPerYear,
			Week: (n-1)%calendar.WeeksPerYear + 1,
		})
	}
	return out
}
