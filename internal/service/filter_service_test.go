package service

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Axton-Industries/Nextgen-work/internal/dto"
	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
	appErrors "github.com/Axton-Industries/Nextgen-work/pkg/errors"
)

func intPtr(v int) *int { return &v }

func TestFilterBuildDefaults(t *testing.T) {
	svc := newFilterService()

	state, err := svc.Build(dto.FilterQuery{})
	require.NoError(t, err)
	assert.Equal(t, timefilter.NewState(2025), state)

	state, err = svc.Build(dto.FilterQuery{Filter: "Last week"})
	require.NoError(t, err)
	assert.Len(t, timefilter.Resolve(state), 5)
}

func TestFilterBuildLegacyPoints(t *testing.T) {
	svc := newFilterService()

	state, err := svc.Build(dto.FilterQuery{Mode: "weeks", StartYear: intPtr(-1), StartUnit: intPtr(3), EndYear: intPtr(-1), EndUnit: intPtr(9)})
	require.NoError(t, err)
	assert.Equal(t, "W3 - W9", state.Label)
	require.NotNil(t, state.Start)
	assert.Equal(t, timefilter.WeekPoint(2025, 3), *state.Start)
	assert.Len(t, timefilter.Resolve(state), 7)

	state, err = svc.Build(dto.FilterQuery{Mode: "months", StartYear: intPtr(2024), StartUnit: intPtr(10), EndYear: intPtr(2025), EndUnit: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, "Nov 2024 - Mar 2025", state.Label)

	state, err = svc.Build(dto.FilterQuery{Mode: "months", Filter: "Custom", StartYear: intPtr(2025), StartUnit: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, "Custom", state.Label)
	assert.Len(t, timefilter.Resolve(state), 4)
}

func TestFilterBuildRejectsBadInput(t *testing.T) {
	svc := newFilterService()
	cases := map[string]dto.FilterQuery{
		"half point":   {StartYear: intPtr(2025)},
		"end only":     {EndYear: intPtr(2025), EndUnit: intPtr(1)},
		"bad month":    {Mode: "months", StartYear: intPtr(2025), StartUnit: intPtr(12)},
		"bad week":     {Mode: "weeks", StartYear: intPtr(2025), StartUnit: intPtr(53)},
		"old year":     {Mode: "months", StartYear: intPtr(1990), StartUnit: intPtr(1)},
		"unknown mode": {Mode: "days"},
		"year bounds":  {Year: 3000},
		"too long":     {Mode: "weeks", StartYear: intPtr(2000), StartUnit: intPtr(1), EndYear: intPtr(2020), EndUnit: intPtr(1)},
	}
	for name, q := range cases {
		_, err := svc.Build(q)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, appErrors.ErrInvalidFilter), name)
	}
}

func TestFilterTransition(t *testing.T) {
	svc := newFilterService()

	first, err := svc.Transition(dto.TransitionRequest{Action: timefilter.Action{Type: timefilter.ActionSelectWeek, Year: 2025, Unit: 9}})
	require.NoError(t, err)
	assert.Equal(t, "Week 9", first.State.Label)

	second, err := svc.Transition(dto.TransitionRequest{State: &first.State, Action: timefilter.Action{Type: timefilter.ActionSelectWeek, Year: 2025, Unit: 3}})
	require.NoError(t, err)
	assert.Equal(t, "W3 - W9", second.State.Label)
	assert.Len(t, second.Weeks, 7)

	partial := timefilter.FilterState{Label: "Last month"}
	third, err := svc.Transition(dto.TransitionRequest{State: &partial, Action: timefilter.Action{Type: timefilter.ActionPageWeeks, Delta: 1}})
	require.NoError(t, err)
	assert.Equal(t, 2025, third.State.CurrentYear)
	assert.Equal(t, timefilter.ModePresets, third.State.Mode)
	assert.Equal(t, 12, third.State.WeekOffset)
}

func TestFilterTransitionErrors(t *testing.T) {
	svc := newFilterService()

	_, err := svc.Transition(dto.TransitionRequest{Action: timefilter.Action{Type: "explode"}})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidFilter))

	_, err = svc.Transition(dto.TransitionRequest{Action: timefilter.Action{Type: timefilter.ActionSelectMonth, Year: 2025, Unit: 14}})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidFilter))

	_, err = svc.Transition(dto.TransitionRequest{Action: timefilter.Action{Type: timefilter.ActionShiftYear, Delta: 500}})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidFilter))
}

func TestFilterPresetsAndCalendar(t *testing.T) {
	svc := newFilterService()

	presets := svc.Presets()
	assert.Equal(t, timefilter.Presets(), presets.Presets)
	assert.Len(t, presets.Modes, 3)
	assert.Equal(t, 2025, presets.Default.CurrentYear)

	cal := svc.Calendar()
	assert.Equal(t, 52, cal.WeeksPerYear)
	require.Len(t, cal.Months, 12)
	assert.Equal(t, []int{9, 10, 11, 12, 13}, cal.Months[2].Weeks)
}

func TestFilterOffsetBoundedByMaxYear(t *testing.T) {
	svc := newFilterService()

	// 2025..2100 holds 76 school years; the last full window starts 12 weeks before the end.
	resp, err := svc.Weeks(dto.FilterQuery{Mode: "weeks", Offset: 76*52 - 12})
	require.NoError(t, err)
	last := resp.Weeks[len(resp.Weeks)-1]
	assert.Equal(t, timefilter.WeekDescriptor{Year: 2100, Week: 52}, last)

	for _, offset := range []int{76*52 - 11, 260000, math.MaxInt} {
		_, err = svc.Build(dto.FilterQuery{Mode: "weeks", Offset: offset})
		assert.True(t, errors.Is(err, appErrors.ErrInvalidFilter), "offset %d", offset)
	}
}

func TestFilterTransitionPagingSaturates(t *testing.T) {
	svc := newFilterService()
	state := svc.Default()
	state.Mode = timefilter.ModeWeeks

	_, err := svc.Transition(dto.TransitionRequest{State: &state, Action: timefilter.Action{Type: timefilter.ActionPageWeeks, Delta: math.MaxInt}})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidFilter))

	resp, err := svc.Transition(dto.TransitionRequest{State: &state, Action: timefilter.Action{Type: timefilter.ActionPageWeeks, Delta: math.MinInt}})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.State.WeekOffset)
}
