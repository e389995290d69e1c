// Package calendar maps the dashboard's 52-week school year onto months.
//
// Each quarter is split 4-4-5 weeks, so every third month carries five weeks.
package calendar

const (
	// WeeksPerYear is the number of weeks the dashboard plots for one year.
	WeeksPerYear = 52
	// MonthsPerYear is the number of months in the calendar table.
	MonthsPerYear = 12
)

var monthLengths = [MonthsPerYear]int{4, 4, 5, 4, 4, 5, 4, 4, 5, 4, 4, 5}

var monthNames = [MonthsPerYear]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// lastWeek[m] is the final week number belonging to month m.
var lastWeek = func() [MonthsPerYear]int {
	var out [MonthsPerYear]int
	total := 0
	for i, length := range monthLengths {
		total += length
		out[i] = total
	}
	return out
}()

// MonthIndexForWeek returns the month index (0..11) that contains week.
// The week must already be within [1,52].
func MonthIndexForWeek(week int) int {
	for month, last := range lastWeek {
		if week <= last {
			return month
		}
	}
	return MonthsPerYear - 1
}

// WeeksInMonth lists the weeks of month in ascending order.
func WeeksInMonth(month int) []int {
	if month < 0 || month >= MonthsPerYear {
		return nil
	}
	first := 1
	if month > 0 {
		first = lastWeek[month-1] + 1
	}
	weeks := make([]int, 0, monthLengths[month])
	for w := first; w <= lastWeek[month]; w++ {
		weeks = append(weeks, w)
	}
	return weeks
}

// MonthLength returns how many weeks month spans.
func MonthLength(month int) int {
	if month < 0 || month >= MonthsPerYear {
		return 0
	}
	return monthLengths[month]
}

// MonthName returns the English month name, or "" when out of range.
func MonthName(month int) string {
	if month < 0 || month >= MonthsPerYear {
		return ""
	}
	return monthNames[month]
}

// MonthAbbrev returns the three letter month abbreviation used in range labels.
func MonthAbbrev(month int) string {
	name := MonthName(month)
	if len(name) < 3 {
		return name
	}
	return name[:3]
}

// Month describes one row of the calendar table.
type Month struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
	Weeks []int  `json:"weeks" yaml:"weeks"`
}

// Months returns the full calendar table.
func Months() []Month {
	out := make([]Month, 0, MonthsPerYear)
	for i := 0; i < MonthsPerYear; i++ {
		out = append(out, Month{Index: i, Name: monthNames[i], Weeks: WeeksInMonth(i)})
	}
	return out
}
