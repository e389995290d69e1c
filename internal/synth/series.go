package synth

import (
	"github.com/Axton-Industries/Nextgen-work/internal/models"
	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
)

const (
	minAssignmentMinutes = 5
	minWeekMinutes       = 2
	minStudentScore      = 30
	maxScore             = 100
	maxSkillLevel        = 10
)

// AssignmentTime is one bar pair of the time-per-assignment chart.
type AssignmentTime struct {
	Name    string `json:"name"`
	Student int    `json:"student"`
	Class   int    `json:"class"`
}

// WeekActivity is one point of the weekly minutes chart.
type WeekActivity struct {
	timefilter.WeekDescriptor
	AxisLabel string `json:"label"`
	Student   int    `json:"student"`
	Average   int    `json:"average"`
}

// Performance is one point of the score trend chart.
type Performance struct {
	timefilter.WeekDescriptor
	AxisLabel string `json:"label"`
	Student   int    `json:"student"`
	Class     int    `json:"class"`
}

// SkillLevel is one axis of the skills radar.
type SkillLevel struct {
	Subject string `json:"subject"`
	Student int    `json:"student"`
	Average int    `json:"average"`
}

// Charts bundles every series of the student view.
type Charts struct {
	Time        []AssignmentTime `json:"time"`
	Week        []WeekActivity   `json:"week"`
	Performance []Performance    `json:"performance"`
	Skills      []SkillLevel     `json:"skills"`
}

// AssignmentTimes perturbs the student's minutes per assignment; class averages pass through.
func AssignmentTimes(seed int, baselines []models.AssignmentBaseline) []AssignmentTime {
	out := make([]AssignmentTime, 0, len(baselines))
	for i, b := range baselines {
		delta := (seed+13*i)%12 - 6
		out = append(out, AssignmentTime{
			Name:    b.Name,
			Student: maxInt(minAssignmentMinutes, b.Student+delta),
			Class:   b.Class,
		})
	}
	return out
}

// WeekActivitySeries produces minutes on the app for every resolved week.
// Weeks without a baseline get values synthesized from the seed alone.
func WeekActivitySeries(seed int, weeks []timefilter.WeekDescriptor, baselines []models.WeekActivityBaseline) []WeekActivity {
	byWeek := make(map[int]models.WeekActivityBaseline, len(baselines))
	for _, b := range baselines {
		byWeek[b.Week] = b
	}
	out := make([]WeekActivity, 0, len(weeks))
	for _, w := range weeks {
		ws := weekSeed(seed, w)
		point := WeekActivity{WeekDescriptor: w, AxisLabel: w.Label()}
		if b, ok := lookup(byWeek, w); ok {
			point.Student = maxInt(minWeekMinutes, b.Student+ws%10-5)
			point.Average = b.Average
		} else {
			point.Student = maxInt(minWeekMinutes, 5+ws%21)
			point.Average = 15 + classSeed(w)%11
		}
		out = append(out, point)
	}
	return out
}

// PerformanceSeries produces the score trend for every resolved week.
func PerformanceSeries(seed int, weeks []timefilter.WeekDescriptor, baselines []models.PerformanceBaseline) []Performance {
	byWeek := make(map[int]models.PerformanceBaseline, len(baselines))
	for _, b := range baselines {
		byWeek[b.Week] = b
	}
	out := make([]Performance, 0, len(weeks))
	for _, w := range weeks {
		ws := weekSeed(seed, w)
		point := Performance{WeekDescriptor: w, AxisLabel: w.Label()}
		if b, ok := lookup(byWeek, w); ok {
			point.Student = clamp(b.Student+ws%30-15, minStudentScore, maxScore)
			point.Class = b.Class
		} else {
			point.Student = clamp(40+ws%55, minStudentScore, maxScore)
			point.Class = clamp(40+classSeed(w)%40, 0, maxScore)
		}
		out = append(out, point)
	}
	return out
}

// SkillLevels perturbs each skill baseline, bounded by its floor and 10.
func SkillLevels(seed int, baselines []models.SkillBaseline) []SkillLevel {
	out := make([]SkillLevel, 0, len(baselines))
	for i, b := range baselines {
		delta := (seed+17*i)%4 - 2
		out = append(out, SkillLevel{
			Subject: b.Subject,
			Student: clamp(b.Student+delta, b.Floor, maxSkillLevel),
			Average: b.Average,
		})
	}
	return out
}

// StudentCharts resolves the filter and derives every student series.
func StudentCharts(name string, state timefilter.FilterState, baselines models.StudentBaselines) Charts {
	seed := StudentSeed(name, state.Label)
	weeks := timefilter.Resolve(state)
	return Charts{
		Time:        AssignmentTimes(seed, baselines.Assignments),
		Week:        WeekActivitySeries(seed, weeks, baselines.WeekActivity),
		Performance: PerformanceSeries(seed, weeks, baselines.Performance),
		Skills:      SkillLevels(seed, baselines.Skills),
	}
}

// ordinal is the week number, or the character code sum of a day label.
func ordinal(w timefilter.WeekDescriptor) int {
	if w.IsDay() {
		return charCodeSum(w.Day)
	}
	return w.Week
}

func weekSeed(seed int, w timefilter.WeekDescriptor) int {
	return (seed + 7*ordinal(w) + w.Year) % 100
}

// classSeed ignores the student so class series agree across students.
func classSeed(w timefilter.WeekDescriptor) int {
	return (7*ordinal(w) + w.Year) % 100
}

func lookup[T any](byWeek map[int]T, w timefilter.WeekDescriptor) (T, bool) {
	if w.IsDay() {
		var zero T
		return zero, false
	}
	b, ok := byWeek[w.Week]
	return b, ok
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
