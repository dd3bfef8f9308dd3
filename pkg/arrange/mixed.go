package arrange

import (
	"github.com/matzehuels/roomplan/pkg/catalog"
	"github.com/matzehuels/roomplan/pkg/geometry"
	"github.com/matzehuels/roomplan/pkg/plan"
)

// Mixed seats up to wallSeats units along one wall, then fills the rest of
// the quota with face-to-face pairs on the room's center band. Wall units
// become obstacles for the rows, keeping the two regions disjoint. An empty
// wallSide defaults to the left wall. The OK flag reflects the seat quota
// alone.
func Mixed(p Params, wallSide plan.Side, wallSeats int) plan.Result {
	wsW, wsD := p.Unit.W, p.Unit.D
	if wallSide == "" {
		wallSide = plan.SideLeft
	}

	var unitW, unitD int
	if wallSide.Horizontal() {
		unitW, unitD = wsW, wsD
	} else {
		unitW, unitD = wsD, wsW
	}
	radius := p.Config.Door.ClearRadius

	st := newRun(p)
	if wallSide.Horizontal() {
		y := 0
		if wallSide == plan.SideBottom {
			y = p.Room.D - unitD
		}
		for w := newWalk(0, p.Room.W-unitW, unitW, wallSeats); w.live() && st.need(); {
			unit := geometry.Rect{X: w.pos, Y: y, W: unitW, D: unitD}
			n := 0
			if st.tryWallUnit(wallSide, w.pos, unit, unitW, unitD, radius) {
				n++
			}
			w = w.advance(n)
		}
	} else {
		x := 0
		if wallSide == plan.SideRight {
			x = p.Room.W - unitW
		}
		for w := newWalk(0, p.Room.D-unitD, unitD, wallSeats); w.live() && st.need(); {
			unit := geometry.Rect{X: x, Y: w.pos, W: unitW, D: unitD}
			n := 0
			if st.tryWallUnit(wallSide, w.pos, unit, unitD, unitW, radius) {
				n++
			}
			w = w.advance(n)
		}
	}

	if remaining := p.Seats - st.seatsPlaced(); remaining > 0 {
		faceW := wsW
		faceD := wsD * 2
		if p.Room.D < faceD {
			return st.result(PatternMixed, false)
		}

		pairsNeeded := (remaining + 1) / 2
		y0 := p.Room.D/2 - faceD/2

		xStart := 0
		if wallSide == plan.SideLeft {
			// Clear the wall column plus a fixed 100mm seam.
			xStart = unitW + 100
		}
		deskDepth := min(catalog.DeskDepth(p.WSType, p.Config.Placement.DefaultDeskDepth), wsD)
		faceRadius := p.Config.Door.FaceRadius

		// A blocked column consumes a pair attempt; the row never
		// extends past its planned width.
		for w := newWalk(xStart, p.Room.W-faceW, faceW, pairsNeeded); w.live() && st.need(); w = w.advance(1) {
			unit := geometry.Rect{X: w.pos, Y: y0, W: faceW, D: faceD}
			if !geometry.CanPlace(unit, p.Room.W, p.Room.D, st.placed) || !clearOfTip(unit, p.DoorTip, faceRadius) {
				continue
			}
			st.placed = append(st.placed, unit)

			desk := geometry.Rect{X: w.pos, Y: y0, W: wsW, D: deskDepth}
			st.items = AppendFreeUnit(st.items, st.seat, desk, plan.SideTop, p.Config)
			st.seat++
			if st.need() {
				desk = geometry.Rect{X: w.pos, Y: y0 + faceD - deskDepth, W: wsW, D: deskDepth}
				st.items = AppendFreeUnit(st.items, st.seat, desk, plan.SideBottom, p.Config)
				st.seat++
			}
		}
	}
	return st.result(PatternMixed, false)
}
