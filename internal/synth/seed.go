// Package synth derives repeatable per-student dashboard numbers from the canned baselines.
//
// Every function is pure: the output depends only on the student name, the filter label,
// the resolved weeks and the baselines. The arithmetic is a fixed hash-like perturbation,
// not a random source.
package synth

import (
	"fmt"

	"github.com/Axton-Industries/Nextgen-work/internal/models"
	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
)

// textLength counts UTF-16 code units, the unit the dashboard measures names in.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// charCodeSum adds the UTF-16 code units of s.
func charCodeSum(s string) int {
	sum := 0
	for _, r := range s {
		if r >= 0x10000 {
			r -= 0x10000
			sum += 0xD800 + int(r>>10)
			sum += 0xDC00 + int(r&0x3FF)
			continue
		}
		sum += int(r)
	}
	return sum
}

// FilterIndex is the preset position of label, or its length when it is not a preset.
func FilterIndex(label string) int {
	if idx := timefilter.PresetIndex(label); idx >= 0 {
		return idx
	}
	return textLength(label)
}

// StudentSeed combines the student name and the filter label into the perturbation seed.
func StudentSeed(name, filterLabel string) int {
	return textLength(name) + FilterIndex(filterLabel)
}

// Summary holds the headline figures of a student view.
type Summary struct {
	MinutesPerDay int `json:"minutesPerDay"`
	ScorePct      int `json:"scorePct"`
	CompletionPct int `json:"completionPct"`
}

// SummaryFor derives the headline figures from a seed.
func SummaryFor(seed int) Summary {
	return Summary{
		MinutesPerDay: 15 + seed%10,
		ScorePct:      65 + seed%25,
		CompletionPct: 70 + seed%15,
	}
}

// StatCards renders the student headline figures as dashboard cards.
func StatCards(name string, seed int) []models.StatCard {
	s := SummaryFor(seed)
	return []models.StatCard{
		{Title: "Student Name", Value: name},
		{Title: "Time spent on the app", Value: fmt.Sprintf("%dmin", s.MinutesPerDay), Subtext: "+5% from last week"},
		{Title: "Avg score in the assignments", Value: fmt.Sprintf("%d%%", s.ScorePct), Subtext: "+10% from last week"},
		{Title: "Avg completion per assignment", Value: fmt.Sprintf("%d%%", s.CompletionPct), Subtext: "-8% from last week"},
	}
}
