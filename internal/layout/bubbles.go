package layout

import (
	"sort"

	"github.com/Axton-Industries/Nextgen-work/internal/models"
)

// Bubble is a placed question bubble ready for rendering.
type Bubble struct {
	ID       int     `json:"id"`
	Question string  `json:"question"`
	Errors   int     `json:"errors"`
	Radius   float64 `json:"radius"`
	Diameter float64 `json:"diameter"`
	Color    string  `json:"color"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Capped   bool    `json:"capped,omitempty"`
}

// Diameter sizes a bubble from its error count.
func Diameter(errors int) float64 {
	return float64(errors)*1.8 + 20
}

// QuestionBubbles sizes, colors and packs the question bubbles, most errors first.
func QuestionBubbles(questions []models.ErrorQuestion) []Bubble {
	ranked := make([]models.ErrorQuestion, len(questions))
	copy(ranked, questions)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Errors > ranked[j].Errors })

	circles := make([]Circle, len(ranked))
	for i, q := range ranked {
		circles[i] = Circle{ID: i, Label: q.Question, Radius: Diameter(q.Errors) / 2}
	}

	bubbles := make([]Bubble, 0, len(ranked))
	for _, p := range Pack(circles) {
		q := ranked[p.ID]
		bubbles = append(bubbles, Bubble{
			ID:       q.ID,
			Question: q.Question,
			Errors:   q.Errors,
			Radius:   p.Radius,
			Diameter: p.Radius * 2,
			Color:    ColorForRank(p.ID),
			X:        p.X,
			Y:        p.Y,
			Capped:   p.Capped,
		})
	}
	return bubbles
}

// CappedCount reports how many bubbles hit the attempt limit.
func CappedCount(bubbles []Bubble) int {
	n := 0
	for _, b := range bubbles {
		if b.Capped {
			n++
		}
	}
	return n
}
