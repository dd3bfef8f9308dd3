package score

import (
	"fmt"
	"math"
	"sort"

	"github.com/matzehuels/roomplan/pkg/plan"
)

// Ranked ties a candidate's original index to its score and breakdown.
type Ranked struct {
	Index     int       `json:"index" bson:"index"`
	Score     float64   `json:"score" bson:"score"`
	Breakdown Breakdown `json:"breakdown" bson:"breakdown"`
}

// CompareLayouts scores every candidate and returns the ranking sorted by
// score descending. The sort is stable: equal scores keep their input
// order, so ranking the same batch twice produces the same order.
func CompareLayouts(results []plan.Result, room plan.Room, opts Options) []Ranked {
	ranked := make([]Ranked, len(results))
	for i := range results {
		s, b := Score(&results[i], room, opts)
		ranked[i] = Ranked{Index: i, Score: s, Breakdown: b}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// BestLayout returns the top-ranked entry, or the zero Ranked when the
// input is empty. Callers that must distinguish "empty input" from "first
// candidate scored zero" check len(results) themselves.
func BestLayout(results []plan.Result, room plan.Room, opts Options) Ranked {
	if len(results) == 0 {
		return Ranked{}
	}
	return CompareLayouts(results, room, opts)[0]
}

// Report is the detailed evaluation of one layout produced by Analyze.
type Report struct {
	TotalScore      float64   `json:"total_score" bson:"total_score"`
	Breakdown       Breakdown `json:"breakdown" bson:"breakdown"`
	SeatsPlaced     int       `json:"seats_placed" bson:"seats_placed"`
	AreaPerPersonM2 float64   `json:"area_per_person_m2" bson:"area_per_person_m2"`
	RoomAreaM2      float64   `json:"room_area_m2" bson:"room_area_m2"`
	Suggestions     []string  `json:"suggestions,omitempty" bson:"suggestions,omitempty"`
	Grade           string    `json:"grade" bson:"grade"`
}

// Analyze expands one layout into a graded report with improvement
// suggestions. The grade compares the total against the maximum possible
// under the resolved profile, so an A means the same thing under every
// preset.
func Analyze(res *plan.Result, room plan.Room, opts Options) Report {
	total, b := Score(res, room, opts)

	seats := 0
	if res != nil {
		seats = res.SeatsPlaced
	}
	perPerson := 0.0
	if seats > 0 {
		perPerson = float64(room.Area()) / float64(seats)
	}

	var suggestions []string
	if b.PassageWidth < 0.5 {
		suggestions = append(suggestions, "Passages are narrow; keep main aisles at 1200mm or wider.")
	}
	if b.NaturalLight < 0.3 {
		suggestions = append(suggestions, "Daylight is poor; consider moving seats toward the window walls.")
	}
	if b.DeskSpacing < 0.5 {
		suggestions = append(suggestions, "Desks sit close together; keep at least 900mm between rows.")
	}
	if seats > 0 && perPerson < areaPerPersonMin {
		suggestions = append(suggestions,
			fmt.Sprintf("Only %.1fm² per person; the sanitation floor is 4m².", perPerson/1_000_000))
	}
	if b.FaceToFaceBonus < 0.3 {
		suggestions = append(suggestions, "A face-to-face block would help team communication.")
	}

	return Report{
		TotalScore:      total,
		Breakdown:       b,
		SeatsPlaced:     seats,
		AreaPerPersonM2: round2(perPerson / 1_000_000),
		RoomAreaM2:      round2(float64(room.Area()) / 1_000_000),
		Suggestions:     suggestions,
		Grade:           grade(total, ResolveWeights(opts.Weights, opts.Preset)),
	}
}

// grade buckets the score ratio into school grades A through F.
func grade(total float64, w Weights) string {
	maxPossible := w.Sum()
	if maxPossible <= 0 {
		return "F"
	}
	ratio := total / maxPossible
	switch {
	case ratio >= 0.9:
		return "A"
	case ratio >= 0.8:
		return "B"
	case ratio >= 0.7:
		return "C"
	case ratio >= 0.6:
		return "D"
	case ratio >= 0.5:
		return "E"
	}
	return "F"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
