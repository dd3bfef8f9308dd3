package arrange

import (
	"fmt"
	"math"
	"slices"

	"github.com/matzehuels/roomplan/pkg/catalog"
	"github.com/matzehuels/roomplan/pkg/config"
	"github.com/matzehuels/roomplan/pkg/geometry"
	"github.com/matzehuels/roomplan/pkg/plan"
)

// Wall scan origins.
const (
	scanStart = "start"
	scanEnd   = "end"
)

// equipmentScanStep is the offset increment when sliding a piece along a
// wall looking for a free spot.
const equipmentScanStep = 50

// EquipmentParams configures wall-mounted equipment placement around an
// existing layout.
//
// Clearance is the keep-out strip depth added along the wall on both sides
// of every placed piece and doubles as the gap to the next piece. The
// solver runs with zero clearance so equipment packs tight once desks have
// claimed the walls; Config.Placement.EquipmentClearance is the standalone
// default. XOverride pins every piece to the left wall when at most half
// the room width, else to the right wall.
type EquipmentParams struct {
	Room       plan.Room
	Config     *config.Config
	Catalog    *catalog.Catalog
	Equipment  []string
	Blocks     []geometry.Rect
	DoorSide   plan.Side
	DoorOffset *int
	XOverride  *int
	Clearance  int
}

// PlaceEquipment adds wall-mounted equipment around the base layout and
// returns a copy with the placed items appended and the equipment counters
// set. Pieces slide along each wall in 50mm steps, longest edge flush to
// the wall; walls are tried left, right, top, bottom with the door wall
// last. On a wall holding desks a piece keeps the side clearance to each of
// them; on other walls it keeps the radial desk keep-out instead. A piece
// with a catalog front clearance only commits where that strip is free,
// and the strip then joins the obstacle set. Pieces that fit nowhere are
// skipped, never failing the layout.
func PlaceEquipment(base plan.Result, p EquipmentParams) (plan.Result, error) {
	if len(p.Equipment) == 0 {
		return base, nil
	}

	furniture := base.FurnitureRects()
	placed := make([]geometry.Rect, 0, len(p.Blocks)+len(furniture)+2*len(p.Equipment))
	placed = append(placed, p.Blocks...)
	placed = append(placed, furniture...)

	var centers []geometry.Point
	byWall := map[plan.Side][]geometry.Rect{}
	for _, it := range base.Items {
		if it.Kind != plan.KindDesk {
			continue
		}
		centers = append(centers, it.Rect.Center())
		for _, s := range flushWalls(it.Rect, p.Room) {
			byWall[s] = append(byWall[s], it.Rect)
		}
	}

	walls := wallOrder(p.DoorSide)
	if p.XOverride != nil {
		if float64(*p.XOverride) <= float64(p.Room.W)/2 {
			walls = []plan.Side{plan.SideLeft}
		} else {
			walls = []plan.Side{plan.SideRight}
		}
	}

	er := &eqRun{room: p.Room, cat: p.Catalog, placed: placed, next: 1}
	remaining := slices.Clone(p.Equipment)
	var eqItems []plan.Item

	for _, wall := range walls {
		if len(remaining) == 0 {
			break
		}

		sameWall := byWall[wall]
		avoidCenters := centers
		avoidRadius := p.Config.Placement.DeskClearRadius
		if len(sameWall) > 0 {
			avoidCenters, avoidRadius = nil, 0
		}

		origin := scanStart
		if wall == p.DoorSide {
			span := p.Room.D
			if wall.Horizontal() {
				span = p.Room.W
			}
			if p.DoorOffset == nil || float64(*p.DoorOffset) < float64(span)/2 {
				origin = scanEnd
			}
		}

		items, err := er.scanWall(wall, origin, remaining, avoidCenters, avoidRadius, sameWall,
			p.Config.Placement.DeskSideClearance, p.Clearance)
		if err != nil {
			return plan.Result{}, err
		}
		eqItems = append(eqItems, items...)
		remaining = removeTypes(remaining, items)
	}

	out := base
	out.Items = make([]plan.Item, 0, len(base.Items)+len(eqItems))
	out.Items = append(out.Items, base.Items...)
	out.Items = append(out.Items, eqItems...)
	out.EquipmentTarget = len(p.Equipment)
	out.EquipmentPlaced = len(eqItems)
	return out, nil
}

// eqRun carries the obstacle set and the label counter across wall scans.
type eqRun struct {
	room   plan.Room
	cat    *catalog.Catalog
	placed []geometry.Rect
	next   int
}

// scanWall slides the remaining pieces along one wall and commits every one
// that finds a free spot, longest edge flush. Committed pieces and their
// clearance strips join the obstacle set. Returns the placed items.
func (er *eqRun) scanWall(wall plan.Side, origin string, keys []string, avoidCenters []geometry.Point, avoidRadius int, sameWallDesks []geometry.Rect, deskClearance, clearance int) ([]plan.Item, error) {
	vertical := !wall.Horizontal()
	var out []plan.Item
	cursor := 0

	for _, key := range keys {
		spec, err := er.cat.Lookup(key)
		if err != nil {
			return nil, err
		}
		along := max(spec.W, spec.D)
		depth := min(spec.W, spec.D)

		var fixed, maxPos int
		if vertical {
			if wall == plan.SideRight {
				fixed = er.room.W - depth
			}
			maxPos = er.room.D - along
		} else {
			if wall == plan.SideBottom {
				fixed = er.room.D - depth
			}
			maxPos = er.room.W - along
		}

		pos, step := cursor, equipmentScanStep
		if origin == scanEnd {
			pos, step = maxPos, -equipmentScanStep
		}

		for ; pos >= 0 && pos <= maxPos; pos += step {
			r := geometry.Rect{X: fixed, Y: pos, W: depth, D: along}
			if !vertical {
				r = geometry.Rect{X: pos, Y: fixed, W: along, D: depth}
			}
			if tooClose(r, avoidCenters, avoidRadius) {
				continue
			}
			if !wallGapOK(r, sameWallDesks, vertical, deskClearance) {
				continue
			}
			if !geometry.CanPlace(r, er.room.W, er.room.D, er.placed) {
				continue
			}
			front, needFront := frontStrip(r, wall, spec.ClearFront, er.room)
			if needFront && !clearOf(front, er.placed) {
				continue
			}

			out = append(out, plan.Item{
				Kind:  spec.Kind,
				Type:  key,
				Label: fmt.Sprintf("EQ%d", er.next),
				Rect:  r,
			})
			er.placed = append(er.placed, r)
			if needFront {
				er.placed = append(er.placed, front)
			}
			if clearance > 0 {
				er.placed = append(er.placed, clearanceStrip(r, vertical, clearance))
			}
			er.next++
			cursor = pos + along + clearance
			break
		}
	}
	return out, nil
}

// tooClose reports whether the rect center sits within radius of any point.
func tooClose(r geometry.Rect, centers []geometry.Point, radius int) bool {
	if len(centers) == 0 || radius <= 0 {
		return false
	}
	c := r.Center()
	for _, p := range centers {
		if math.Hypot(c.X-p.X, c.Y-p.Y) <= float64(radius) {
			return true
		}
	}
	return false
}

// wallGapOK checks the along-wall gap between r and every desk on the same
// wall. Overlapping spans count as zero gap.
func wallGapOK(r geometry.Rect, desks []geometry.Rect, vertical bool, clearance int) bool {
	if clearance <= 0 || len(desks) == 0 {
		return true
	}
	for _, d := range desks {
		gap := 0
		if vertical {
			switch {
			case r.Y >= d.Y2():
				gap = r.Y - d.Y2()
			case d.Y >= r.Y2():
				gap = d.Y - r.Y2()
			}
		} else {
			switch {
			case r.X >= d.X2():
				gap = r.X - d.X2()
			case d.X >= r.X2():
				gap = d.X - r.X2()
			}
		}
		if gap < clearance {
			return false
		}
	}
	return true
}

// frontStrip builds the access strip a piece keeps free in front of
// itself, extending from its room-facing edge by the catalog clearance and
// clamped to the room. Reports false when the piece claims no clearance.
func frontStrip(r geometry.Rect, wall plan.Side, clear int, room plan.Room) (geometry.Rect, bool) {
	if clear <= 0 {
		return geometry.Rect{}, false
	}
	var s geometry.Rect
	switch wall {
	case plan.SideLeft:
		s = geometry.Rect{X: r.X2(), Y: r.Y, W: clear, D: r.D}
	case plan.SideRight:
		s = geometry.Rect{X: r.X - clear, Y: r.Y, W: clear, D: r.D}
	case plan.SideTop:
		s = geometry.Rect{X: r.X, Y: r.Y2(), W: r.W, D: clear}
	default:
		s = geometry.Rect{X: r.X, Y: r.Y - clear, W: r.W, D: clear}
	}
	if s.X < 0 {
		s.W += s.X
		s.X = 0
	}
	if s.Y < 0 {
		s.D += s.Y
		s.Y = 0
	}
	s.W = min(s.W, room.W-s.X)
	s.D = min(s.D, room.D-s.Y)
	if s.W <= 0 || s.D <= 0 {
		return geometry.Rect{}, false
	}
	return s, true
}

// clearOf reports the rect free of every obstacle.
func clearOf(r geometry.Rect, obstacles []geometry.Rect) bool {
	for _, o := range obstacles {
		if geometry.Intersects(r, o) {
			return false
		}
	}
	return true
}

// clearanceStrip pads a placed piece along the wall by the clearance on
// both ends.
func clearanceStrip(r geometry.Rect, vertical bool, c int) geometry.Rect {
	if vertical {
		return geometry.Rect{X: r.X, Y: r.Y - c, W: r.W, D: r.D + 2*c}
	}
	return geometry.Rect{X: r.X - c, Y: r.Y, W: r.W + 2*c, D: r.D}
}

// flushWalls names the walls the rect touches.
func flushWalls(r geometry.Rect, room plan.Room) []plan.Side {
	var sides []plan.Side
	if r.X == 0 {
		sides = append(sides, plan.SideLeft)
	}
	if r.X2() == room.W {
		sides = append(sides, plan.SideRight)
	}
	if r.Y == 0 {
		sides = append(sides, plan.SideTop)
	}
	if r.Y2() == room.D {
		sides = append(sides, plan.SideBottom)
	}
	return sides
}

// wallOrder lists the walls to try, moving the door wall to the back.
func wallOrder(door plan.Side) []plan.Side {
	out := make([]plan.Side, 0, 4)
	for _, s := range []plan.Side{plan.SideLeft, plan.SideRight, plan.SideTop, plan.SideBottom} {
		if s != door {
			out = append(out, s)
		}
	}
	if door.Valid() {
		out = append(out, door)
	}
	return out
}

// removeTypes subtracts the placed item types from keys, one occurrence
// per item.
func removeTypes(keys []string, placed []plan.Item) []string {
	rest := slices.Clone(keys)
	for _, it := range placed {
		if it.Type == "" {
			continue
		}
		if i := slices.Index(rest, it.Type); i >= 0 {
			rest = slices.Delete(rest, i, i+1)
		}
	}
	return rest
}
