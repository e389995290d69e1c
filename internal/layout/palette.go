package layout

import (
	"sort"

	"github.com/Axton-Industries/Nextgen-work/internal/models"
)

// Palette is the intensity scale, darkest first.
var Palette = []string{"#7c3aed", "#8b5cf6", "#a78bfa", "#c4b5fd", "#ddd6fe", "#ede9fe"}

// ColorForRank maps a zero-based rank to the palette; ranks past the end share the lightest color.
func ColorForRank(rank int) string {
	if rank < 0 {
		rank = 0
	}
	if rank >= len(Palette) {
		rank = len(Palette) - 1
	}
	return Palette[rank]
}

// RankErrors returns a copy of entries ordered by occurrence count, highest first, with
// Fill set from the rank. Ties keep their input order.
func RankErrors(entries []models.ErrorAnalysis) []models.ErrorAnalysis {
	out := make([]models.ErrorAnalysis, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurrenceCount > out[j].OccurrenceCount })
	for i := range out {
		out[i].Fill = ColorForRank(i)
	}
	return out
}
