package score

import (
	"github.com/matzehuels/roomplan/pkg/geometry"
	"github.com/matzehuels/roomplan/pkg/plan"
)

// Breakdown holds the normalized per-criterion values of one scored
// layout. Every field except Total lies in [0, 1]; Total is the weighted
// sum under the resolved profile.
type Breakdown struct {
	SeatCount       float64 `json:"seat_count" bson:"seat_count"`
	PassageWidth    float64 `json:"passage_width" bson:"passage_width"`
	NaturalLight    float64 `json:"natural_light" bson:"natural_light"`
	TrafficFlow     float64 `json:"traffic_flow" bson:"traffic_flow"`
	FaceToFaceBonus float64 `json:"face_to_face_bonus" bson:"face_to_face_bonus"`
	SpaceEfficiency float64 `json:"space_efficiency" bson:"space_efficiency"`
	DeskSpacing     float64 `json:"desk_spacing" bson:"desk_spacing"`
	AreaPerPerson   float64 `json:"area_per_person" bson:"area_per_person"`
	Total           float64 `json:"total" bson:"total"`
}

// Options carries the scoring context shared by a batch of candidates.
//
// Weights beats Preset when both are set. DoorTip feeds the traffic-flow
// criterion; nil means the room has no door and every path is free.
// Windows names the glazed walls for the natural-light criterion, top and
// right when empty.
type Options struct {
	Weights *Weights
	Preset  string
	DoorTip *geometry.Point
	Windows []plan.Side
}

// Score evaluates one layout. Infeasible layouts (OK=false) score zero
// with a zero breakdown: a plan that cannot seat everyone never outranks
// one that can.
func Score(res *plan.Result, room plan.Room, opts Options) (float64, Breakdown) {
	if res == nil || !res.OK {
		return 0.0, Breakdown{}
	}
	w := ResolveWeights(opts.Weights, opts.Preset)

	b := Breakdown{
		SeatCount:       seatCountScore(res, room),
		PassageWidth:    passageScore(res, room),
		NaturalLight:    naturalLightScore(res, room, opts.Windows),
		TrafficFlow:     trafficFlowScore(res, opts.DoorTip),
		FaceToFaceBonus: faceToFaceBonus(res),
		SpaceEfficiency: spaceEfficiencyScore(res, room),
		DeskSpacing:     deskSpacingScore(res),
		AreaPerPerson:   areaPerPersonScore(res, room),
	}
	b.Total = b.SeatCount*w.SeatCount +
		b.PassageWidth*w.PassageWidth +
		b.NaturalLight*w.NaturalLight +
		b.TrafficFlow*w.TrafficFlow +
		b.FaceToFaceBonus*w.FaceToFaceBonus +
		b.SpaceEfficiency*w.SpaceEfficiency +
		b.DeskSpacing*w.DeskSpacing +
		b.AreaPerPerson*w.AreaPerPerson

	return b.Total, b
}
