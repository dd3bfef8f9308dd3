package arrange

import (
	"math"

	"github.com/matzehuels/roomplan/pkg/catalog"
	"github.com/matzehuels/roomplan/pkg/config"
	"github.com/matzehuels/roomplan/pkg/geometry"
	"github.com/matzehuels/roomplan/pkg/plan"
)

// Pattern names carried on generator results.
const (
	PatternDoubleWall          = "double_wall"
	PatternDoubleWallTopBottom = "double_wall_top_bottom"
	PatternFaceToFace          = "face_to_face_center"
	PatternMixed               = "mixed"

	// Single-wall results append the wall side, as in "single_wall_L".
	patternSingleWallPrefix = "single_wall_"
)

// SingleWallPattern returns the result pattern name of a one-wall layout.
func SingleWallPattern(side plan.Side) string {
	return patternSingleWallPrefix + string(side)
}

// Params carries the inputs shared by the workstation generators.
//
// Unit is the resolved catalog footprint of WSType: W runs along the desk
// face, D is the full depth the unit claims from its wall, chair pull
// included. Blocks holds the door buffer and the pillars; units committed
// during a run are tracked separately. A nil DoorTip disables every door
// keep-out check, matching a room without a door.
type Params struct {
	Room   plan.Room
	Config *config.Config

	WSType string
	Unit   catalog.Spec

	Seats int // seat quota
	Gap   int // extra spacing between consecutive units along the walk

	Blocks   []geometry.Rect
	DoorTip  *geometry.Point
	DoorRect *geometry.Rect
	DoorSide plan.Side
}

// NewParams bundles generator inputs from a prepared obstacle set.
func NewParams(room plan.Room, wsType string, unit catalog.Spec, seats, gap int, blocks plan.Blocks, cfg *config.Config) Params {
	tip := blocks.DoorTip
	rect := blocks.DoorRect
	return Params{
		Room:     room,
		Config:   cfg,
		WSType:   wsType,
		Unit:     unit,
		Seats:    seats,
		Gap:      gap,
		Blocks:   blocks.Rects,
		DoorTip:  &tip,
		DoorRect: &rect,
		DoorSide: blocks.DoorSide,
	}
}

// run is the mutable state of one generator pass: committed footprints,
// emitted items, and the next seat number.
type run struct {
	p      Params
	placed []geometry.Rect
	items  []plan.Item
	seat   int
}

func newRun(p Params) *run {
	placed := make([]geometry.Rect, len(p.Blocks), len(p.Blocks)+p.Seats)
	copy(placed, p.Blocks)
	return &run{p: p, placed: placed, seat: 1}
}

// need reports whether the seat quota still wants units.
func (st *run) need() bool { return st.seat <= st.p.Seats }

func (st *run) seatsPlaced() int { return st.seat - 1 }

// tryWallUnit commits one wall-anchored unit when its footprint, desk, and
// chair all fit. pos runs along the wall, along and depth size the unit,
// radius is the door keep-out applied to the full unit footprint, chair
// pull zone included. The desk and chair are checked against the original
// blocks only; the footprint check against the committed set already
// separates units from each other.
func (st *run) tryWallUnit(wall plan.Side, pos int, unit geometry.Rect, along, depth, radius int) bool {
	if !st.need() {
		return false
	}
	if !geometry.CanPlace(unit, st.p.Room.W, st.p.Room.D, st.placed) {
		return false
	}
	if !clearOfTip(unit, st.p.DoorTip, radius) {
		return false
	}
	desk, chair, back := WallUnit(wallSpan(st.p.Room, wall), st.p.WSType, wall, pos, along, depth, st.p.Config)
	if !CanPlaceUnit(st.p.Room, desk, chair, st.p.Blocks) {
		return false
	}
	st.placed = append(st.placed, unit)
	st.items = appendUnit(st.items, st.seat, desk, chair, back, 0)
	st.seat++
	return true
}

// result freezes the pass into a plan.Result. checkDoor additionally gates
// OK on the nearest desk keeping its door approach distance.
func (st *run) result(pattern string, checkDoor bool) plan.Result {
	seats := st.seatsPlaced()
	ok := seats >= st.p.Seats
	if ok && checkDoor {
		ok = doorApproachOK(st.items, st.p.DoorTip, st.p.Config)
	}
	return plan.Result{
		OK:            ok,
		SeatsPlaced:   seats,
		SeatsRequired: st.p.Seats,
		WSType:        st.p.WSType,
		Pattern:       pattern,
		Items:         st.items,
	}
}

// wallSpan returns the room extent perpendicular to the wall.
func wallSpan(room plan.Room, wall plan.Side) int {
	if wall.Horizontal() {
		return room.D
	}
	return room.W
}

// clearOfTip applies the door keep-out radius to one rectangle. A nil tip
// always passes.
func clearOfTip(r geometry.Rect, tip *geometry.Point, radius int) bool {
	if tip == nil {
		return true
	}
	return geometry.ClearOfPoint(r, *tip, radius)
}

// doorApproachOK checks that the desk nearest the door tip keeps its
// step-in distance: the full clear radius when the door looks at the
// desk's long edge, the reduced face radius when it looks at the narrow
// end.
func doorApproachOK(items []plan.Item, tip *geometry.Point, cfg *config.Config) bool {
	if tip == nil {
		return true
	}
	best := math.Inf(1)
	var nearest geometry.Rect
	for _, it := range items {
		if it.Kind != plan.KindDesk {
			continue
		}
		if d := geometry.DistanceToPoint(it.Rect, *tip); d < best {
			best = d
			nearest = it.Rect
		}
	}
	if math.IsInf(best, 1) {
		return true
	}
	required := cfg.Door.ClearRadius
	if facingSide(nearest, *tip) == min(nearest.W, nearest.D) {
		required = cfg.Door.FaceRadius
	}
	return best >= float64(required)
}

// facingSide returns the length of the desk edge the tip looks at, picked
// by the dominant axis gap. A tip inside the desk reports the short edge.
func facingSide(r geometry.Rect, tip geometry.Point) int {
	var dx, dy float64
	if tip.X < float64(r.X) {
		dx = float64(r.X) - tip.X
	} else if tip.X > float64(r.X2()) {
		dx = tip.X - float64(r.X2())
	}
	if tip.Y < float64(r.Y) {
		dy = float64(r.Y) - tip.Y
	} else if tip.Y > float64(r.Y2()) {
		dy = tip.Y - float64(r.Y2())
	}
	switch {
	case dx == 0 && dy == 0:
		return min(r.W, r.D)
	case dx >= dy:
		return r.D
	default:
		return r.W
	}
}
