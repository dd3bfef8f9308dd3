package score

import (
	"sort"
	"testing"

	"github.com/matzehuels/roomplan/pkg/plan"
)

func candidateSet() []plan.Result {
	good := wallLayout()

	partial := wallLayout()
	partial.OK = false
	partial.SeatsPlaced = 2

	face := wallLayout()
	face.Pattern = "face_to_face_center"

	return []plan.Result{partial, good, face}
}

func TestCompareLayoutsOrderAndPermutation(t *testing.T) {
	results := candidateSet()
	ranked := CompareLayouts(results, testRoom, Options{})

	if len(ranked) != len(results) {
		t.Fatalf("ranking has %d entries, want %d", len(ranked), len(results))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("ranking not descending at %d: %g then %g", i, ranked[i-1].Score, ranked[i].Score)
		}
	}

	indices := make([]int, len(ranked))
	for i, r := range ranked {
		indices[i] = r.Index
	}
	sort.Ints(indices)
	for i, idx := range indices {
		if idx != i {
			t.Fatalf("ranking indices %v are not a permutation of the input", indices)
		}
	}

	// The infeasible candidate (input index 0) scores zero and ranks last.
	if last := ranked[len(ranked)-1]; last.Index != 0 || last.Score != 0 {
		t.Errorf("infeasible candidate ranked %+v, want index 0 with score 0", last)
	}
}

func TestCompareLayoutsStableOnTies(t *testing.T) {
	a := wallLayout()
	b := wallLayout()
	ranked := CompareLayouts([]plan.Result{a, b}, testRoom, Options{})

	if ranked[0].Index != 0 || ranked[1].Index != 1 {
		t.Errorf("tie order = [%d %d], want input order [0 1]", ranked[0].Index, ranked[1].Index)
	}
}

func TestBestLayout(t *testing.T) {
	results := candidateSet()
	best := BestLayout(results, testRoom, Options{})

	ranked := CompareLayouts(results, testRoom, Options{})
	if best != ranked[0] {
		t.Errorf("BestLayout = %+v, want first ranked entry %+v", best, ranked[0])
	}
}

func TestBestLayoutEmpty(t *testing.T) {
	best := BestLayout(nil, testRoom, Options{})
	if best.Index != 0 || best.Score != 0 || best.Breakdown != (Breakdown{}) {
		t.Errorf("BestLayout(nil) = %+v, want zero value", best)
	}
}

func TestAnalyzeGradeAndSuggestions(t *testing.T) {
	res := wallLayout()
	report := Analyze(&res, testRoom, Options{})

	if report.SeatsPlaced != 4 {
		t.Errorf("SeatsPlaced = %d, want 4", report.SeatsPlaced)
	}
	if report.RoomAreaM2 != 20 {
		t.Errorf("RoomAreaM2 = %g, want 20", report.RoomAreaM2)
	}
	if report.AreaPerPersonM2 != 5 {
		t.Errorf("AreaPerPersonM2 = %g, want 5", report.AreaPerPersonM2)
	}
	switch report.Grade {
	case "A", "B", "C", "D", "E", "F":
	default:
		t.Errorf("Grade = %q, want A-F", report.Grade)
	}

	// A wall layout has no face-to-face block, so that suggestion must
	// appear.
	found := false
	for _, s := range report.Suggestions {
		if s == "A face-to-face block would help team communication." {
			found = true
		}
	}
	if !found {
		t.Errorf("missing face-to-face suggestion in %q", report.Suggestions)
	}
}

func TestGradeBuckets(t *testing.T) {
	w := DefaultWeights()
	tests := []struct {
		ratio float64
		want  string
	}{
		{0.95, "A"},
		{0.85, "B"},
		{0.75, "C"},
		{0.65, "D"},
		{0.55, "E"},
		{0.10, "F"},
	}
	for _, tt := range tests {
		if got := grade(tt.ratio*w.Sum(), w); got != tt.want {
			t.Errorf("grade(ratio %g) = %q, want %q", tt.ratio, got, tt.want)
		}
	}
}
