package arrange

import (
	"github.com/matzehuels/roomplan/pkg/geometry"
	"github.com/matzehuels/roomplan/pkg/plan"
)

// SingleWall fills one side wall top to bottom. Sides other than
// SideLeft anchor to the right wall.
func SingleWall(p Params, side plan.Side) plan.Result {
	unitW := p.Unit.D
	unitD := p.Unit.W
	radius := p.Config.Door.ClearRadius

	wall := plan.SideLeft
	x := 0
	if side != plan.SideLeft {
		wall = plan.SideRight
		x = p.Room.W - unitW
	}

	st := newRun(p)
	for w := newWalk(0, p.Room.D-unitD, unitD+p.Gap, p.Seats); w.live(); {
		unit := geometry.Rect{X: x, Y: w.pos, W: unitW, D: unitD}
		n := 0
		if st.tryWallUnit(wall, w.pos, unit, unitD, unitW, radius) {
			n++
		}
		w = w.advance(n)
	}
	return st.result(SingleWallPattern(wall), true)
}

// SingleWallTopBottom fills the top or bottom wall, walking from the corner
// named by startFrom. Sides other than SideTop anchor to the bottom wall.
// When the door sits on the opposite half of the room the door keep-out is
// waived for this wall.
func SingleWallTopBottom(p Params, side plan.Side, startFrom plan.Side) plan.Result {
	unitW := p.Unit.W
	unitD := p.Unit.D

	wall := plan.SideTop
	y := 0
	if side != plan.SideTop {
		wall = plan.SideBottom
		y = p.Room.D - unitD
	}

	radius := p.Config.Door.ClearRadius
	if p.DoorTip != nil {
		doorTop := p.DoorTip.Y < float64(p.Room.D)/2
		if (doorTop && wall == plan.SideBottom) || (!doorTop && wall == plan.SideTop) {
			radius = 0
		}
	}

	st := newRun(p)
	for w := wallWalk(p.Room.W-unitW, unitW+p.Gap, p.Seats, startFrom); w.live(); {
		unit := geometry.Rect{X: w.pos, Y: y, W: unitW, D: unitD}
		n := 0
		if st.tryWallUnit(wall, w.pos, unit, unitW, unitD, radius) {
			n++
		}
		w = w.advance(n)
	}
	return st.result(SingleWallPattern(wall), true)
}
