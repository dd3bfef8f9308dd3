package score

import (
	"math"
	"testing"

	"github.com/matzehuels/roomplan/pkg/geometry"
	"github.com/matzehuels/roomplan/pkg/plan"
)

// wallLayout builds a feasible double-wall style result in a 5000x4000
// room: two desks on the left wall, two on the right, chairs inward.
func wallLayout() plan.Result {
	return plan.Result{
		OK:            true,
		SeatsPlaced:   4,
		SeatsRequired: 4,
		WSType:        "ws_1200x600",
		Pattern:       "double_wall",
		Items: []plan.Item{
			{Kind: plan.KindDesk, Label: "WS1_D", Rect: geometry.Rect{X: 0, Y: 0, W: 600, D: 1200}},
			{Kind: plan.KindChair, Label: "WS1_C", Rect: geometry.Rect{X: 605, Y: 250, W: 700, D: 700}, Back: plan.SideRight},
			{Kind: plan.KindDesk, Label: "WS2_D", Rect: geometry.Rect{X: 4400, Y: 0, W: 600, D: 1200}},
			{Kind: plan.KindChair, Label: "WS2_C", Rect: geometry.Rect{X: 3695, Y: 250, W: 700, D: 700}, Back: plan.SideLeft},
			{Kind: plan.KindDesk, Label: "WS3_D", Rect: geometry.Rect{X: 0, Y: 1200, W: 600, D: 1200}},
			{Kind: plan.KindChair, Label: "WS3_C", Rect: geometry.Rect{X: 605, Y: 1450, W: 700, D: 700}, Back: plan.SideRight},
			{Kind: plan.KindDesk, Label: "WS4_D", Rect: geometry.Rect{X: 4400, Y: 1200, W: 600, D: 1200}},
			{Kind: plan.KindChair, Label: "WS4_C", Rect: geometry.Rect{X: 3695, Y: 1450, W: 700, D: 700}, Back: plan.SideLeft},
		},
	}
}

var testRoom = plan.Room{W: 5000, D: 4000}

func TestScoreBreakdownRanges(t *testing.T) {
	res := wallLayout()
	total, b := Score(&res, testRoom, Options{})

	fields := map[string]float64{
		"seat_count":         b.SeatCount,
		"passage_width":      b.PassageWidth,
		"natural_light":      b.NaturalLight,
		"traffic_flow":       b.TrafficFlow,
		"face_to_face_bonus": b.FaceToFaceBonus,
		"space_efficiency":   b.SpaceEfficiency,
		"desk_spacing":       b.DeskSpacing,
		"area_per_person":    b.AreaPerPerson,
	}
	for name, v := range fields {
		if v < 0 || v > 1 {
			t.Errorf("%s = %g, want within [0,1]", name, v)
		}
	}
	if total != b.Total {
		t.Errorf("returned total %g != breakdown total %g", total, b.Total)
	}
	if total <= 0 {
		t.Errorf("total = %g, want positive for a feasible layout", total)
	}
}

func TestScoreInfeasibleIsZero(t *testing.T) {
	res := wallLayout()
	res.OK = false

	total, b := Score(&res, testRoom, Options{})
	if total != 0 {
		t.Errorf("total = %g, want 0 for OK=false", total)
	}
	if b != (Breakdown{}) {
		t.Errorf("breakdown = %+v, want zero value", b)
	}
}

func TestSeatCountSaturates(t *testing.T) {
	// 5000x4000 = 20m², theoretical capacity 2 seats. Four seats must
	// clamp at 1.0.
	res := wallLayout()
	if got := seatCountScore(&res, testRoom); got != 1.0 {
		t.Errorf("seatCountScore = %g, want 1.0", got)
	}

	res.SeatsPlaced = 1
	if got := seatCountScore(&res, testRoom); got != 0.5 {
		t.Errorf("seatCountScore with 1 of 2 = %g, want 0.5", got)
	}

	res.SeatsPlaced = 0
	if got := seatCountScore(&res, testRoom); got != 0 {
		t.Errorf("seatCountScore with no seats = %g, want 0", got)
	}
}

func TestPassageScoreEmptyRoom(t *testing.T) {
	res := plan.Result{OK: true, Pattern: "double_wall"}
	if got := passageScore(&res, testRoom); got != 1.0 {
		t.Errorf("passageScore without desks = %g, want 1.0", got)
	}
}

func TestAisleScoreCurve(t *testing.T) {
	tests := []struct {
		gap  int
		want float64
	}{
		{1500, 1.0},
		{2000, 1.0},
		{1200, 0.7},
		{900, 0.4},
		{600, 0.2},
		{599, 0.0},
		{0, 0.0},
	}
	for _, tt := range tests {
		if got := aisleScore(tt.gap); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("aisleScore(%d) = %g, want %g", tt.gap, got, tt.want)
		}
	}
}

func TestFaceToFaceBonusBinary(t *testing.T) {
	tests := []struct {
		pattern string
		want    float64
	}{
		{"face_to_face_center", 1.0},
		{"mixed", 1.0},
		{"double_wall", 0.0},
		{"single_wall_L", 0.0},
	}
	for _, tt := range tests {
		res := plan.Result{OK: true, Pattern: tt.pattern}
		if got := faceToFaceBonus(&res); got != tt.want {
			t.Errorf("faceToFaceBonus(%q) = %g, want %g", tt.pattern, got, tt.want)
		}
	}
}

func TestTrafficFlowNoDoor(t *testing.T) {
	res := wallLayout()
	if got := trafficFlowScore(&res, nil); got != 1.0 {
		t.Errorf("trafficFlowScore without door = %g, want 1.0", got)
	}
}

func TestTrafficFlowCrossingPenalty(t *testing.T) {
	// Two seats stacked in a column; the door tip sits below both, so the
	// upper seat's path must cross the lower seat's clearance zone.
	res := plan.Result{
		OK:          true,
		SeatsPlaced: 2,
		Pattern:     "single_wall_L",
		Items: []plan.Item{
			{Kind: plan.KindDesk, Rect: geometry.Rect{X: 2000, Y: 0, W: 1200, D: 600}},
			{Kind: plan.KindChair, Rect: geometry.Rect{X: 2250, Y: 700, W: 700, D: 700}, Back: plan.SideTop},
			{Kind: plan.KindDesk, Rect: geometry.Rect{X: 2000, Y: 2000, W: 1200, D: 600}},
			{Kind: plan.KindChair, Rect: geometry.Rect{X: 2250, Y: 2700, W: 700, D: 700}, Back: plan.SideTop},
		},
	}
	tip := &geometry.Point{X: 2600, Y: 3900}

	got := trafficFlowScore(&res, tip)
	want := (0.5 + 1.0) / 2 // upper seat crosses once, lower seat is free
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("trafficFlowScore = %g, want %g", got, want)
	}
}

func TestDeskSpacingSingleDesk(t *testing.T) {
	res := plan.Result{
		OK: true,
		Items: []plan.Item{
			{Kind: plan.KindDesk, Rect: geometry.Rect{X: 0, Y: 0, W: 1200, D: 600}},
		},
	}
	if got := deskSpacingScore(&res); got != 1.0 {
		t.Errorf("deskSpacingScore with one desk = %g, want 1.0", got)
	}
}

func TestDeskSpacingCurve(t *testing.T) {
	mk := func(gap int) plan.Result {
		return plan.Result{
			OK: true,
			Items: []plan.Item{
				{Kind: plan.KindDesk, Rect: geometry.Rect{X: 0, Y: 0, W: 1200, D: 600}},
				{Kind: plan.KindDesk, Rect: geometry.Rect{X: 0, Y: 600 + gap, W: 1200, D: 600}},
			},
		}
	}
	tests := []struct {
		gap  int
		want float64
	}{
		{1200, 1.0},
		{900, 0.6},
		{600, 0.3},
	}
	for _, tt := range tests {
		res := mk(tt.gap)
		if got := deskSpacingScore(&res); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("deskSpacingScore(gap=%d) = %g, want %g", tt.gap, got, tt.want)
		}
	}
}

func TestAreaPerPersonScore(t *testing.T) {
	// 5000x4000 = 20m². Two seats give 10m² each, exactly optimal.
	res := plan.Result{OK: true, SeatsPlaced: 2}
	if got := areaPerPersonScore(&res, testRoom); got != 1.0 {
		t.Errorf("areaPerPersonScore at 10m² = %g, want 1.0", got)
	}

	// Eight seats give 2.5m² each, under the 4m² floor.
	res.SeatsPlaced = 8
	if got := areaPerPersonScore(&res, testRoom); got >= 0.3 {
		t.Errorf("areaPerPersonScore at 2.5m² = %g, want below 0.3", got)
	}

	res.SeatsPlaced = 0
	if got := areaPerPersonScore(&res, testRoom); got != 0 {
		t.Errorf("areaPerPersonScore with no seats = %g, want 0", got)
	}
}

func TestPresetShiftsSeatContribution(t *testing.T) {
	res := wallLayout()

	_, bMax := Score(&res, testRoom, Options{Preset: PresetMaxSeats})
	_, bComfort := Score(&res, testRoom, Options{Preset: PresetComfort})

	wMax := ResolveWeights(nil, PresetMaxSeats)
	wComfort := ResolveWeights(nil, PresetComfort)

	relMax := bMax.SeatCount * wMax.SeatCount / bMax.Total
	relComfort := bComfort.SeatCount * wComfort.SeatCount / bComfort.Total
	if relMax <= relComfort {
		t.Errorf("seat term share under max_seats (%g) must exceed comfort (%g)", relMax, relComfort)
	}
}

func TestResolveWeights(t *testing.T) {
	explicit := Weights{SeatCount: 9}
	if got := ResolveWeights(&explicit, PresetComfort); got != explicit {
		t.Errorf("explicit weights must win over preset, got %+v", got)
	}

	if got := ResolveWeights(nil, "no_such_preset"); got != DefaultWeights() {
		t.Errorf("unknown preset must fall back to default, got %+v", got)
	}
	if got := ResolveWeights(nil, ""); got != DefaultWeights() {
		t.Errorf("empty preset must resolve to default, got %+v", got)
	}

	got := ResolveWeights(nil, PresetMaxSeats)
	if got.SeatCount != 2.0 {
		t.Errorf("max_seats seat_count = %g, want 2.0", got.SeatCount)
	}
	got = ResolveWeights(nil, PresetComfort)
	if got.SeatCount != 0.5 {
		t.Errorf("comfort seat_count = %g, want 0.5", got.SeatCount)
	}
}

func TestFromMap(t *testing.T) {
	w := FromMap(map[string]float64{
		"seat_count": 3.0,
		"bogus":      7.0,
	})
	if w.SeatCount != 3.0 {
		t.Errorf("seat_count = %g, want 3.0", w.SeatCount)
	}
	if w.PassageWidth != DefaultWeights().PassageWidth {
		t.Errorf("untouched field changed: passage_width = %g", w.PassageWidth)
	}
}
