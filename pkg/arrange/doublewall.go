package arrange

import (
	"github.com/matzehuels/roomplan/pkg/geometry"
	"github.com/matzehuels/roomplan/pkg/plan"
)

// DoubleWall fills the left and right walls with workstation rows, walking
// the room top to bottom and offering each step to the left wall first.
func DoubleWall(p Params) plan.Result {
	unitW := p.Unit.D // claimed from the wall into the room
	unitD := p.Unit.W // along the wall
	radius := p.Config.Door.ClearRadius

	st := newRun(p)
	for w := newWalk(0, p.Room.D-unitD, unitD+p.Gap, p.Seats); w.live(); {
		n := 0
		left := geometry.Rect{X: 0, Y: w.pos, W: unitW, D: unitD}
		if st.tryWallUnit(plan.SideLeft, w.pos, left, unitD, unitW, radius) {
			n++
		}
		right := geometry.Rect{X: p.Room.W - unitW, Y: w.pos, W: unitW, D: unitD}
		if st.tryWallUnit(plan.SideRight, w.pos, right, unitD, unitW, radius) {
			n++
		}
		w = w.advance(n)
	}
	return st.result(PatternDoubleWall, true)
}

// DoubleWallTopBottom fills the top and bottom walls, walking from the
// corner named by startFrom (left unless SideRight) and offering each step
// to the top wall first.
func DoubleWallTopBottom(p Params, startFrom plan.Side) plan.Result {
	unitW := p.Unit.W
	unitD := p.Unit.D
	radius := p.Config.Door.ClearRadius

	st := newRun(p)
	for w := wallWalk(p.Room.W-unitW, unitW+p.Gap, p.Seats, startFrom); w.live(); {
		n := 0
		top := geometry.Rect{X: w.pos, Y: 0, W: unitW, D: unitD}
		if st.tryWallUnit(plan.SideTop, w.pos, top, unitW, unitD, radius) {
			n++
		}
		bottom := geometry.Rect{X: w.pos, Y: p.Room.D - unitD, W: unitW, D: unitD}
		if st.tryWallUnit(plan.SideBottom, w.pos, bottom, unitW, unitD, radius) {
			n++
		}
		w = w.advance(n)
	}
	return st.result(PatternDoubleWallTopBottom, true)
}
