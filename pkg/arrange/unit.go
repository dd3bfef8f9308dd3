package arrange

import (
	"fmt"

	"github.com/matzehuels/roomplan/pkg/catalog"
	"github.com/matzehuels/roomplan/pkg/config"
	"github.com/matzehuels/roomplan/pkg/geometry"
	"github.com/matzehuels/roomplan/pkg/plan"
)

// ChairRect places the square chair on the given side of a desk, centered
// along that edge and offset by the configured pull gap. Centering
// truncates toward the desk origin on odd remainders.
func ChairRect(desk geometry.Rect, side plan.Side, cfg *config.Config) geometry.Rect {
	size := cfg.Chair.Size
	gap := cfg.Chair.DeskGap
	switch side {
	case plan.SideTop:
		return geometry.Rect{X: centered(desk.X, desk.W, size), Y: desk.Y - gap - size, W: size, D: size}
	case plan.SideBottom:
		return geometry.Rect{X: centered(desk.X, desk.W, size), Y: desk.Y2() + gap, W: size, D: size}
	case plan.SideLeft:
		return geometry.Rect{X: desk.X - gap - size, Y: centered(desk.Y, desk.D, size), W: size, D: size}
	default:
		return geometry.Rect{X: desk.X2() + gap, Y: centered(desk.Y, desk.D, size), W: size, D: size}
	}
}

// centered aligns a span of the given size on the middle of
// [origin, origin+extent], truncating toward zero.
func centered(origin, extent, size int) int {
	return int(float64(origin) + float64(extent)/2.0 - float64(size)/2.0)
}

// WallUnit derives the desk rect, chair rect, and chair side for a unit
// anchored to a wall. span is the room extent perpendicular to the wall,
// pos the offset along it, along the unit's extent along the wall, and
// depth the room space the unit claims in front of the wall. The desk
// keeps its cataloged surface depth; the chair takes the inward side.
func WallUnit(span int, wsType string, wall plan.Side, pos, along, depth int, cfg *config.Config) (desk, chair geometry.Rect, back plan.Side) {
	deskDepth := min(catalog.DeskDepth(wsType, cfg.Placement.DefaultDeskDepth), depth)
	switch wall {
	case plan.SideTop:
		desk = geometry.Rect{X: pos, Y: 0, W: along, D: deskDepth}
	case plan.SideBottom:
		desk = geometry.Rect{X: pos, Y: span - deskDepth, W: along, D: deskDepth}
	case plan.SideLeft:
		desk = geometry.Rect{X: 0, Y: pos, W: deskDepth, D: along}
	default:
		desk = geometry.Rect{X: span - deskDepth, Y: pos, W: deskDepth, D: along}
	}
	back = wall.Opposite()
	return desk, ChairRect(desk, back, cfg), back
}

// CanPlaceUnit reports whether the desk and its chair both lie inside the
// room and clear of every obstacle. One failing rectangle rejects the unit
// as a whole.
func CanPlaceUnit(room plan.Room, desk, chair geometry.Rect, obstacles []geometry.Rect) bool {
	return geometry.CanPlace(desk, room.W, room.D, obstacles) &&
		geometry.CanPlace(chair, room.W, room.D, obstacles)
}

// AppendWallUnit appends the desk and chair of seat n anchored to a wall.
func AppendWallUnit(items []plan.Item, n, span int, wsType string, wall plan.Side, pos, along, depth int, cfg *config.Config) []plan.Item {
	desk, chair, back := WallUnit(span, wsType, wall, pos, along, depth, cfg)
	return appendUnit(items, n, desk, chair, back, 0)
}

// AppendFreeUnit appends a free-standing row seat; the chair sits above or
// below the desk.
func AppendFreeUnit(items []plan.Item, n int, desk geometry.Rect, back plan.Side, cfg *config.Config) []plan.Item {
	return appendUnit(items, n, desk, ChairRect(desk, back, cfg), back, 0)
}

// AppendSideUnit appends the rotated end seat of an odd row; the chair
// sits left or right of the desk and is drawn turned a quarter turn.
func AppendSideUnit(items []plan.Item, n int, desk geometry.Rect, back plan.Side, cfg *config.Config) []plan.Item {
	return appendUnit(items, n, desk, ChairRect(desk, back, cfg), back, 90)
}

// appendUnit emits the desk item then the chair item of seat n.
func appendUnit(items []plan.Item, n int, desk, chair geometry.Rect, back plan.Side, rotation int) []plan.Item {
	items = append(items, plan.Item{
		Kind:  plan.KindDesk,
		Label: fmt.Sprintf("WS%d_D", n),
		Rect:  desk,
	})
	return append(items, plan.Item{
		Kind:     plan.KindChair,
		Label:    fmt.Sprintf("WS%d_C", n),
		Rect:     chair,
		Back:     back,
		Rotation: rotation,
	})
}
