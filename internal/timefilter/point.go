package timefilter

import (
	"encoding/json"
	"fmt"

	"github.com/Axton-Industries/Nextgen-work/internal/calendar"
)

// LegacyWeekYear marks a stored {year, unit} pair as a week of the current year.
const LegacyWeekYear = -1

// PointKind tags which calendar unit a RangePoint carries.
type PointKind string

const (
	KindMonth PointKind = "month"
	KindWeek  PointKind = "week"
)

// RangePoint is one end of an explicit range: either a month of a year or a week of a year.
// Build values with MonthPoint or WeekPoint.
type RangePoint struct {
	Kind  PointKind
	Year  int
	Month int
	Week  int
}

// MonthPoint builds a month range point. month is 0-based.
func MonthPoint(year, month int) RangePoint {
	return RangePoint{Kind: KindMonth, Year: year, Month: month}
}

// WeekPoint builds a week range point. week is 1-based.
func WeekPoint(year, week int) RangePoint {
	return RangePoint{Kind: KindWeek, Year: year, Week: week}
}

// IsWeek reports whether the point carries a week.
func (p RangePoint) IsWeek() bool { return p.Kind == KindWeek }

// IsMonth reports whether the point carries a month.
func (p RangePoint) IsMonth() bool { return p.Kind == KindMonth }

// Valid reports whether the unit lies inside the calendar.
func (p RangePoint) Valid() bool {
	switch p.Kind {
	case KindMonth:
		return p.Month >= 0 && p.Month < calendar.MonthsPerYear
	case KindWeek:
		return p.Week >= 1 && p.Week <= calendar.WeeksPerYear
	default:
		return false
	}
}

// key orders points of the same kind chronologically.
func (p RangePoint) key() int {
	if p.Kind == KindWeek {
		return p.Year*100 + p.Week
	}
	return p.Year*calendar.MonthsPerYear + p.Month
}

// Before reports whether p is chronologically earlier than o. Both must share a kind.
func (p RangePoint) Before(o RangePoint) bool {
	return p.key() < o.key()
}

func (p RangePoint) String() string {
	if p.Kind == KindWeek {
		return fmt.Sprintf("W%d %d", p.Week, p.Year)
	}
	return fmt.Sprintf("%s %d", calendar.MonthAbbrev(p.Month), p.Year)
}

type monthJSON struct {
	Kind  PointKind `json:"kind"`
	Year  int       `json:"year"`
	Month int       `json:"month"`
}

type weekJSON struct {
	Kind PointKind `json:"kind"`
	Year int       `json:"year"`
	Week int       `json:"week"`
}

// MarshalJSON writes only the unit that belongs to the point's kind.
func (p RangePoint) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case KindMonth:
		return json.Marshal(monthJSON{Kind: p.Kind, Year: p.Year, Month: p.Month})
	case KindWeek:
		return json.Marshal(weekJSON{Kind: p.Kind, Year: p.Year, Week: p.Week})
	default:
		return nil, fmt.Errorf("range point: unknown kind %q", p.Kind)
	}
}

// UnmarshalJSON decodes a tagged point and rejects unknown kinds.
func (p *RangePoint) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind  PointKind `json:"kind"`
		Year  int       `json:"year"`
		Month int       `json:"month"`
		Week  int       `json:"week"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Kind {
	case KindMonth:
		*p = MonthPoint(raw.Year, raw.Month)
	case KindWeek:
		*p = WeekPoint(raw.Year, raw.Week)
	default:
		return fmt.Errorf("range point: unknown kind %q", raw.Kind)
	}
	return nil
}

// DecodeLegacyPoint interprets the overloaded {year, unit} shape the dashboard used to store.
// A year of -1 always means a week of currentYear; otherwise the mode decides:
// weeks mode reads unit as a week number, any other mode reads it as a month index.
func DecodeLegacyPoint(year, unit int, mode FilterMode, currentYear int) RangePoint {
	if year == LegacyWeekYear {
		return WeekPoint(currentYear, unit)
	}
	if mode == ModeWeeks {
		return WeekPoint(year, unit)
	}
	return MonthPoint(year, unit)
}
