package dto

import (
	"github.com/Axton-Industries/Nextgen-work/internal/calendar"
	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
)

// FilterQuery is the time filter as carried in query strings. Range points use the
// legacy {year, unit} pair; a year of -1 marks a week of the current year.
type FilterQuery struct {
	Filter    string `form:"filter"`
	Mode      string `form:"mode" binding:"omitempty,filtermode"`
	StartYear *int   `form:"startYear"`
	StartUnit *int   `form:"startUnit"`
	EndYear   *int   `form:"endYear"`
	EndUnit   *int   `form:"endUnit"`
	Offset    int    `form:"offset" binding:"min=0"`
	Year      int    `form:"year"`
}

// ExportQuery adds the output format to the filter parameters.
type ExportQuery struct {
	FilterQuery
	Format string `form:"format" binding:"required,exportformat"`
}

// TransitionRequest applies one action to a filter state. A missing state starts from the default.
type TransitionRequest struct {
	State  *timefilter.FilterState `json:"state"`
	Action timefilter.Action       `json:"action"`
}

// FilterWeeksResponse pairs a filter with the weeks it resolves to.
type FilterWeeksResponse struct {
	State timefilter.FilterState      `json:"state"`
	Weeks []timefilter.WeekDescriptor `json:"weeks"`
}

// PresetsResponse lists the preset labels and filter modes.
type PresetsResponse struct {
	Presets []string                `json:"presets"`
	Modes   []timefilter.FilterMode `json:"modes"`
	Default timefilter.FilterState  `json:"default"`
}

// CalendarResponse is the month table of the 52-week school year.
type CalendarResponse struct {
	WeeksPerYear int              `json:"weeksPerYear"`
	Months       []calendar.Month `json:"months"`
}
