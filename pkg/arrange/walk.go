package arrange

import "github.com/matzehuels/roomplan/pkg/plan"

// walk is the cursor fold shared by the pattern generators: an offset along
// a wall plus the remaining unit quota. Values are immutable; advance
// returns the successor state, so liveness depends only on the current
// value.
type walk struct {
	pos       int // offset along the wall
	step      int // signed advance per attempt
	limit     int // largest admissible offset
	remaining int // units still wanted
}

// newWalk starts a cursor at start. The walk stays live while the offset
// remains inside [0, limit] and quota remains.
func newWalk(start, limit, step, quota int) walk {
	return walk{pos: start, step: step, limit: limit, remaining: quota}
}

// wallWalk picks the starting corner: forward from zero, or backward from
// the far limit when from names the right-hand corner.
func wallWalk(limit, step, quota int, from plan.Side) walk {
	if from == plan.SideRight {
		return newWalk(limit, limit, -step, quota)
	}
	return newWalk(0, limit, step, quota)
}

// live reports whether the cursor may attempt another placement.
func (w walk) live() bool {
	return w.remaining > 0 && w.pos >= 0 && w.pos <= w.limit
}

// advance returns the state after one attempt that committed n units.
func (w walk) advance(n int) walk {
	w.remaining -= n
	w.pos += w.step
	return w
}
