package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Axton-Industries/Nextgen-work/internal/models"
	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
)

func sampleBaselines() models.StudentBaselines {
	return models.StudentBaselines{
		Assignments: []models.AssignmentBaseline{
			{Name: "Dictation: Médico...", Student: 45, Class: 38},
			{Name: "Writing: Vacaciones...", Student: 40, Class: 35},
			{Name: "Fill: Meses...", Student: 6, Class: 30},
		},
		WeekActivity: []models.WeekActivityBaseline{
			{Week: 21, Student: 5, Average: 18},
			{Week: 22, Student: 8, Average: 25},
		},
		Performance: []models.PerformanceBaseline{
			{Week: 25, Student: 40, Class: 60},
			{Week: 28, Student: 91, Class: 64},
		},
		Skills: []models.SkillBaseline{
			{Subject: "Reading", Student: 9, Average: 6, Floor: 2},
			{Subject: "Listening", Student: 6, Average: 8, Floor: 2},
			{Subject: "Vocabulary", Student: 7, Average: 4, Floor: 0},
		},
	}
}

func TestStudentSeed(t *testing.T) {
	assert.Equal(t, 4, StudentSeed("Erik", timefilter.PresetAcademicYear))
	assert.Equal(t, 7, StudentSeed("Erik", timefilter.PresetLastWeek))
	// Labels outside the preset list contribute their length.
	assert.Equal(t, 4+len("W3 - W9"), StudentSeed("Erik", "W3 - W9"))
	// Names are measured in UTF-16 units, not bytes.
	assert.Equal(t, 6, StudentSeed("Andrés", timefilter.PresetAcademicYear))
}

func TestAssignmentTimes(t *testing.T) {
	times := AssignmentTimes(4, sampleBaselines().Assignments)
	require.Len(t, times, 3)
	assert.Equal(t, 43, times[0].Student, "(4+0) mod 12 - 6 = -2")
	assert.Equal(t, 38, times[0].Class)
	assert.Equal(t, 39, times[1].Student, "(4+13) mod 12 - 6 = -1")
	// (4+26) mod 12 - 6 = 0, and the floor of five minutes holds.
	assert.Equal(t, 6, times[2].Student)

	floored := AssignmentTimes(0, []models.AssignmentBaseline{{Name: "x", Student: 3, Class: 3}})
	assert.Equal(t, 5, floored[0].Student)
}

func TestWeekActivitySeries(t *testing.T) {
	weeks := []timefilter.WeekDescriptor{
		{Year: 2025, Week: 21},
		{Year: 2025, Week: 40},
		{Year: 2025, Day: "Mon"},
	}
	series := WeekActivitySeries(4, weeks, sampleBaselines().WeekActivity)
	require.Len(t, series, 3)

	assert.Equal(t, 6, series[0].Student)
	assert.Equal(t, 18, series[0].Average)
	assert.Equal(t, "W21", series[0].AxisLabel)

	assert.Equal(t, 14, series[1].Student)
	assert.Equal(t, 20, series[1].Average)

	assert.Equal(t, "Mon", series[2].AxisLabel)
	assert.Equal(t, 20, series[2].Student)
	assert.Equal(t, 15, series[2].Average)

	for _, p := range series {
		assert.GreaterOrEqual(t, p.Student, 2)
	}
}

func TestPerformanceSeriesBounds(t *testing.T) {
	weeks := timefilter.Resolve(timefilter.NewState(2025))
	for seed := 0; seed < 40; seed++ {
		series := PerformanceSeries(seed, weeks, sampleBaselines().Performance)
		require.Len(t, series, len(weeks))
		for _, p := range series {
			assert.GreaterOrEqual(t, p.Student, 30)
			assert.LessOrEqual(t, p.Student, 100)
			assert.GreaterOrEqual(t, p.Class, 0)
			assert.LessOrEqual(t, p.Class, 100)
		}
	}

	series := PerformanceSeries(4, []timefilter.WeekDescriptor{{Year: 2025, Week: 25}}, sampleBaselines().Performance)
	assert.Equal(t, 30, series[0].Student, "40 + (2204 mod 30) - 15 = 29, clamped to 30")
	assert.Equal(t, 60, series[0].Class)
}

func TestClassSeriesIndependentOfStudent(t *testing.T) {
	weeks := []timefilter.WeekDescriptor{{Year: 2025, Week: 40}, {Year: 2025, Day: "Wed"}}
	a := WeekActivitySeries(StudentSeed("Erik", "Last week"), weeks, nil)
	b := WeekActivitySeries(StudentSeed("Valeria", "Last week"), weeks, nil)
	for i := range weeks {
		assert.Equal(t, a[i].Average, b[i].Average)
	}
}

func TestSkillLevels(t *testing.T) {
	skills := SkillLevels(4, sampleBaselines().Skills)
	require.Len(t, skills, 3)
	assert.Equal(t, 7, skills[0].Student)
	assert.Equal(t, 5, skills[1].Student)
	assert.Equal(t, 7, skills[2].Student)

	high := SkillLevels(2, []models.SkillBaseline{{Subject: "Reading", Student: 10, Floor: 2}})
	assert.LessOrEqual(t, high[0].Student, 10)
	low := SkillLevels(0, []models.SkillBaseline{{Subject: "Listening", Student: 2, Floor: 2}})
	assert.Equal(t, 2, low[0].Student)
}

func TestSummaryAndStatCards(t *testing.T) {
	assert.Equal(t, Summary{MinutesPerDay: 19, ScorePct: 69, CompletionPct: 74}, SummaryFor(4))

	cards := StatCards("Erik", 4)
	require.Len(t, cards, 4)
	assert.Equal(t, "Erik", cards[0].Value)
	assert.Equal(t, "19min", cards[1].Value)
	assert.Equal(t, "69%", cards[2].Value)
	assert.Equal(t, "74%", cards[3].Value)
}

func TestStudentChartsIsIdempotent(t *testing.T) {
	states := []timefilter.FilterState{
		timefilter.NewState(2025),
		timefilter.NewState(2025).SelectPreset(timefilter.PresetLastWeek),
		timefilter.NewState(2025).SelectWeek(2025, 20).SelectWeek(2025, 30),
		timefilter.NewState(2025).SelectMonth(2025, 4),
	}
	for _, state := range states {
		first := StudentCharts("Erik", state, sampleBaselines())
		second := StudentCharts("Erik", state, sampleBaselines())
		assert.Equal(t, first, second, state.Label)
		assert.Len(t, first.Week, len(timefilter.Resolve(state)))
	}
}

func TestStudentChartsVaryByFilter(t *testing.T) {
	year := StudentCharts("Erik", timefilter.NewState(2025), sampleBaselines())
	week := StudentCharts("Erik", timefilter.NewState(2025).SelectPreset(timefilter.PresetLastMonth), sampleBaselines())
	assert.NotEqual(t, year.Time, week.Time)
}
