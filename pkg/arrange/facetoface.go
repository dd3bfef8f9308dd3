package arrange

import (
	"strconv"

	"github.com/matzehuels/roomplan/pkg/catalog"
	"github.com/matzehuels/roomplan/pkg/geometry"
	"github.com/matzehuels/roomplan/pkg/plan"
)

// FaceToFace builds mirrored desk rows inside a horizontal band two unit
// depths tall, chairs facing outward. Pair units are added left to right
// with the whole row centered on the room; a door shifts the row away from
// its wall and the band off its buffer. Desks sit nose to nose on the band
// center line. Odd quotas get one rotated desk attached to an end of the
// row; when no end can take it the layout reports OK=false.
//
// The unit footprints use the reduced face radius around the door tip
// because the band is set back from every wall; the rotated end seat and
// the final approach check keep the full clear radius.
func FaceToFace(p Params) plan.Result {
	wsW, wsD := p.Unit.W, p.Unit.D

	infeasible := plan.Result{
		SeatsRequired: p.Seats,
		WSType:        p.WSType,
		Pattern:       PatternFaceToFace,
	}
	if p.Room.D < wsD*2 {
		return infeasible
	}

	pairs := p.Seats / 2
	hasSingle := p.Seats%2 == 1

	unitW := wsW
	unitD := wsD * 2
	totalW := pairs*unitW + max(0, pairs-1)*p.Gap
	if totalW > p.Room.W {
		return infeasible
	}

	xStart := (p.Room.W - totalW) / 2
	centerLine := p.Room.D / 2
	y0 := centerLine - unitD/2
	switch p.DoorSide {
	case plan.SideLeft:
		xStart = p.Room.W - totalW
	case plan.SideRight:
		xStart = 0
	case plan.SideTop:
		y0 = p.Room.D - unitD
	case plan.SideBottom:
		y0 = 0
	}

	deskDepth := min(catalog.DeskDepth(p.WSType, p.Config.Placement.DefaultDeskDepth), wsD)
	if hasSingle {
		// The rotated end seat fixes both rows at the default surface
		// depth and narrows the band to match.
		deskDepth = p.Config.Placement.DefaultDeskDepth
		unitD = deskDepth * 2
		y0 = centerLine - unitD/2
	}

	// Both band sides keep at least the chair pull zone, and never less
	// than 850mm, to the nearest wall.
	chairSpace := p.Config.Chair.Size + p.Config.Chair.DeskGap
	minBack := max(chairSpace, 850)
	y0Max := p.Room.D - unitD - minBack
	if y0Max < minBack {
		return infeasible
	}
	y0 = max(minBack, min(y0Max, y0))

	// A side door overlapping the band pushes it below the buffer, or
	// above when below does not fit. An unresolvable overlap keeps the
	// band in place and lets the footprint checks reject the units.
	if p.DoorRect != nil && (p.DoorSide == plan.SideLeft || p.DoorSide == plan.SideRight) {
		dr := *p.DoorRect
		if !(y0+unitD <= dr.Y || y0 >= dr.Y2()) {
			down := dr.Y2()
			up := dr.Y - unitD
			switch {
			case down >= 0 && down+unitD <= p.Room.D:
				y0 = down
			case up >= 0 && up+unitD <= p.Room.D:
				y0 = up
			}
		}
	}
	if p.DoorRect != nil && p.DoorSide.Horizontal() {
		xStart = 0
	}

	st := newRun(p)
	var rowUnits []geometry.Rect
	bandCenter := y0 + unitD/2
	faceRadius := p.Config.Door.FaceRadius

	for w := newWalk(xStart, p.Room.W-unitW, unitW+p.Gap, pairs); w.live(); {
		unit := geometry.Rect{X: w.pos, Y: y0, W: unitW, D: unitD}
		if !geometry.CanPlace(unit, p.Room.W, p.Room.D, st.placed) || !clearOfTip(unit, p.DoorTip, faceRadius) {
			w = w.advance(0)
			continue
		}
		st.placed = append(st.placed, unit)
		rowUnits = append(rowUnits, unit)

		if st.need() {
			desk := geometry.Rect{X: w.pos, Y: bandCenter - deskDepth, W: wsW, D: deskDepth}
			st.items = AppendFreeUnit(st.items, st.seat, desk, plan.SideTop, p.Config)
			st.seat++
		}
		if st.need() {
			desk := geometry.Rect{X: w.pos, Y: bandCenter, W: wsW, D: deskDepth}
			st.items = AppendFreeUnit(st.items, st.seat, desk, plan.SideBottom, p.Config)
			st.seat++
		}
		w = w.advance(1)
	}

	if hasSingle && st.need() && len(rowUnits) > 0 {
		if !st.attachEndSeat(rowUnits, bandCenter) {
			return plan.Result{
				SeatsPlaced:   st.seatsPlaced(),
				SeatsRequired: p.Seats,
				WSType:        p.WSType,
				Pattern:       PatternFaceToFace,
				Items:         st.items,
			}
		}
	}

	st.appendRowDims(bandCenter, deskDepth)
	return st.result(PatternFaceToFace, true)
}

// attachEndSeat hangs the rotated odd seat on an end of the row, trying the
// end away from the door first. The end seat keeps at least 1000mm to its
// outer wall and the full clear radius to the door tip. Reports success.
func (st *run) attachEndSeat(rowUnits []geometry.Rect, bandCenter int) bool {
	rotW := st.p.Config.Placement.DefaultDeskDepth
	rotD := rotW * 2
	leftmost := rowUnits[0]
	rightmost := rowUnits[len(rowUnits)-1]

	type candidate struct {
		side plan.Side
		unit geometry.Rect
	}
	order := []candidate{{plan.SideRight, rightmost}, {plan.SideLeft, leftmost}}
	if st.p.DoorSide == plan.SideRight {
		order = []candidate{{plan.SideLeft, leftmost}, {plan.SideRight, rightmost}}
	}

	for _, c := range order {
		var deskX int
		if c.side == plan.SideRight {
			deskX = c.unit.X2()
			if st.p.Room.W-(deskX+rotW) < 1000 {
				continue
			}
		} else {
			deskX = c.unit.X - rotW
			if deskX < 1000 {
				continue
			}
		}
		desk := geometry.Rect{X: deskX, Y: bandCenter - rotD/2, W: rotW, D: rotD}
		if !geometry.CanPlace(desk, st.p.Room.W, st.p.Room.D, st.placed) {
			continue
		}
		if !clearOfTip(desk, st.p.DoorTip, st.p.Config.Door.ClearRadius) {
			continue
		}
		st.items = AppendSideUnit(st.items, st.seat, desk, c.side, st.p.Config)
		st.seat++
		return true
	}
	return false
}

// appendRowDims appends the two vertical wall-to-row measurements, aligned
// on the leftmost desk's center column. No desks, no markers.
func (st *run) appendRowDims(bandCenter, deskDepth int) {
	found := false
	var left geometry.Rect
	for _, it := range st.items {
		if it.Kind != plan.KindDesk {
			continue
		}
		if !found || it.Rect.X < left.X {
			left = it.Rect
			found = true
		}
	}
	if !found {
		return
	}

	const wallHalf = 5 // half the drawn wall stroke
	dimX := max(60, min(st.p.Room.W-60, left.X+left.W/2))
	innerTop := wallHalf
	innerBottom := st.p.Room.D - wallHalf
	topGap := max(0, bandCenter-deskDepth-innerTop)
	bottomGap := max(0, innerBottom-(bandCenter+deskDepth))

	st.items = append(st.items,
		plan.Item{
			Kind:  plan.KindMarker,
			Type:  "dim_v",
			Label: strconv.Itoa(topGap),
			Rect:  geometry.Rect{X: dimX, Y: innerTop, W: 0, D: topGap},
		},
		plan.Item{
			Kind:  plan.KindMarker,
			Type:  "dim_v",
			Label: strconv.Itoa(bottomGap),
			Rect:  geometry.Rect{X: dimX, Y: innerBottom - bottomGap, W: 0, D: bottomGap},
		},
	)
}
