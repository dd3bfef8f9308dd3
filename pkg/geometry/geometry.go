// Package geometry provides the axis-aligned rectangle model and the
// placement predicates used by every layout component.
//
// All coordinates are integer millimeters. The origin sits at the room's
// top-left corner with x growing right and y growing down, matching the
// floorplan drawing convention.
package geometry

import "math"

// Rect is an axis-aligned rectangle in integer millimeters.
// W is the horizontal extent, D the vertical one (depth on a floorplan).
// A valid Rect has W > 0 and D > 0; zero-size rects are only used as
// dimension markers by renderers.
type Rect struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
	W int `json:"w" bson:"w"`
	D int `json:"d" bson:"d"`
}

// X2 returns the exclusive right edge (X + W).
func (r Rect) X2() int { return r.X + r.W }

// Y2 returns the exclusive bottom edge (Y + D).
func (r Rect) Y2() int { return r.Y + r.D }

// Area returns W*D in square millimeters.
func (r Rect) Area() int { return r.W * r.D }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: float64(r.X) + float64(r.W)/2, Y: float64(r.Y) + float64(r.D)/2}
}

// Inflate grows the rectangle by margin on every side. A negative margin
// shrinks it; callers must keep the result positive-sized themselves.
func (r Rect) Inflate(margin int) Rect {
	return Rect{X: r.X - margin, Y: r.Y - margin, W: r.W + 2*margin, D: r.D + 2*margin}
}

// Point is a position in millimeters. Float64 because derived points
// (centers, door tips) may fall between grid lines.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Intersects reports whether a and b overlap with positive area.
// Rectangles that merely share an edge or a corner do NOT intersect,
// so furniture may sit flush against walls and against other items.
func Intersects(a, b Rect) bool {
	return !(a.X2() <= b.X || a.X >= b.X2() || a.Y2() <= b.Y || a.Y >= b.Y2())
}

// InsideRoom reports whether r lies entirely within a roomW x roomD room.
// Touching the walls is allowed.
func InsideRoom(r Rect, roomW, roomD int) bool {
	return r.X >= 0 && r.Y >= 0 && r.X2() <= roomW && r.Y2() <= roomD
}

// IntersectsAny reports whether r overlaps any rectangle in blocks.
func IntersectsAny(r Rect, blocks []Rect) bool {
	for _, b := range blocks {
		if Intersects(r, b) {
			return true
		}
	}
	return false
}

// CanPlace reports whether r fits in the room without overlapping any block.
// Adding blocks can only turn a true result false, never the reverse.
func CanPlace(r Rect, roomW, roomD int, blocks []Rect) bool {
	if !InsideRoom(r, roomW, roomD) {
		return false
	}
	return !IntersectsAny(r, blocks)
}

// DistanceToPoint returns the Euclidean distance from p to the closest point
// of r. The distance is zero when p lies inside or on the boundary of r.
func DistanceToPoint(r Rect, p Point) float64 {
	var dx, dy float64
	if p.X < float64(r.X) {
		dx = float64(r.X) - p.X
	} else if p.X > float64(r.X2()) {
		dx = p.X - float64(r.X2())
	}
	if p.Y < float64(r.Y) {
		dy = float64(r.Y) - p.Y
	} else if p.Y > float64(r.Y2()) {
		dy = p.Y - float64(r.Y2())
	}
	return math.Sqrt(dx*dx + dy*dy)
}

// ClearOfPoint reports whether every point of r keeps at least radius
// millimeters of distance to p. A radius of zero or less always passes.
func ClearOfPoint(r Rect, p Point, radius int) bool {
	if radius <= 0 {
		return true
	}
	return DistanceToPoint(r, p) >= float64(radius)
}

// SegmentIntersectsRect reports whether the segment from a to b passes
// through the interior of r. Consistent with Intersects, a segment that only
// grazes an edge or a corner does not count.
//
// Implemented as Liang-Barsky clipping: the segment is parameterized as
// a + t*(b-a) for t in [0,1] and clipped against each rect side; a crossing
// exists iff a positive-length parameter interval survives all four clips.
func SegmentIntersectsRect(a, b Point, r Rect) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	t0, t1 := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			// Parallel to this side: inside only if strictly past it,
			// so a segment running along the boundary is excluded.
			return q > 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}

	if !clip(-dx, a.X-float64(r.X)) {
		return false
	}
	if !clip(dx, float64(r.X2())-a.X) {
		return false
	}
	if !clip(-dy, a.Y-float64(r.Y)) {
		return false
	}
	if !clip(dy, float64(r.Y2())-a.Y) {
		return false
	}
	return t0 < t1
}
