package plan

import (
	"github.com/matzehuels/roomplan/pkg/config"
	"github.com/matzehuels/roomplan/pkg/errors"
	"github.com/matzehuels/roomplan/pkg/geometry"
)

// Blocks is the forbidden-zone set for one solve run: the door's access
// buffer first, then the pillars in input order. Built once by BuildBlocks
// and read-only afterwards.
type Blocks struct {
	Rects    []geometry.Rect `json:"rects" bson:"rects"`
	DoorRect geometry.Rect   `json:"door_rect" bson:"door_rect"`
	DoorSide Side            `json:"door_side" bson:"door_side"`
	DoorTip  geometry.Point  `json:"door_tip" bson:"door_tip"`
}

// BuildBlocks computes the forbidden zones of a room: the door's access
// buffer along its wall plus any pillars. The door side defaults to the top
// wall and its width to the configured default; a nil offset centers the
// door, explicit offsets are clamped to the wall span.
//
// DoorTip is the point where the buffer reaches into the room, anchored at
// the buffer corner nearest the wall origin. Generators keep a radius of
// one door width around it free.
func BuildBlocks(room Room, door Door, pillars []geometry.Rect, cfg *config.Config) (Blocks, error) {
	if err := errors.ValidateRoom(room.W, room.D, cfg.Room.MinDim, cfg.Room.MaxDim); err != nil {
		return Blocks{}, err
	}

	side := door.Side
	if side == "" {
		side = SideTop
	}
	if !side.Valid() {
		return Blocks{}, errors.New(errors.ErrCodeInvalidDoor, "unknown door side %q", side)
	}

	width := door.Width
	if width == 0 {
		width = cfg.Door.Width
	}
	if err := errors.ValidateDoorWidth(width); err != nil {
		return Blocks{}, err
	}
	depth := cfg.Door.BufferDepth

	var rect geometry.Rect
	if side.Horizontal() {
		maxOffset := max(0, room.W-width)
		x := maxOffset / 2
		if door.Offset != nil {
			x = clamp(*door.Offset, 0, maxOffset)
		}
		y := 0
		if side == SideBottom {
			y = room.D - depth
		}
		rect = geometry.Rect{X: x, Y: y, W: width, D: depth}
	} else {
		maxOffset := max(0, room.D-width)
		y := maxOffset / 2
		if door.Offset != nil {
			y = clamp(*door.Offset, 0, maxOffset)
		}
		x := 0
		if side == SideRight {
			x = room.W - depth
		}
		rect = geometry.Rect{X: x, Y: y, W: depth, D: width}
	}

	rects := make([]geometry.Rect, 0, len(pillars)+1)
	rects = append(rects, rect)
	rects = append(rects, pillars...)

	return Blocks{
		Rects:    rects,
		DoorRect: rect,
		DoorSide: side,
		DoorTip:  doorTip(room, rect, side, width),
	}, nil
}

// doorTip places the clearance point one door width into the room from the
// door wall, aligned with the buffer corner nearest the wall origin.
func doorTip(room Room, rect geometry.Rect, side Side, radius int) geometry.Point {
	switch side {
	case SideTop:
		return geometry.Point{X: float64(rect.X), Y: float64(radius)}
	case SideBottom:
		return geometry.Point{X: float64(rect.X), Y: float64(room.D - radius)}
	case SideLeft:
		return geometry.Point{X: float64(radius), Y: float64(rect.Y)}
	default: // SideRight
		return geometry.Point{X: float64(room.W - radius), Y: float64(rect.Y)}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
