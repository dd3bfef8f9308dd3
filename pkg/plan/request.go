package plan

import (
	"github.com/matzehuels/roomplan/pkg/config"
	"github.com/matzehuels/roomplan/pkg/errors"
	"github.com/matzehuels/roomplan/pkg/geometry"
)

// Placement priorities accepted by the solver. The priority picks the
// lexicographic candidate-comparison order: equipment-first runs prefer
// layouts that fit all storage, desk-first runs prefer desk area.
const (
	PriorityEquipment = "equipment"
	PriorityDesk      = "desk"
	PriorityDesk1200  = "desk_1200"
)

// Room is the rectangular floor outline in millimeters (W along x, D along y).
type Room struct {
	W int `json:"w" bson:"w"`
	D int `json:"d" bson:"d"`
}

// Area returns the floor area in square millimeters.
func (r Room) Area() int {
	return r.W * r.D
}

// Door locates the single entrance on a wall. Width 0 takes the configured
// default; a nil Offset centers the door on its wall.
type Door struct {
	Side   Side `json:"side,omitempty" bson:"side,omitempty"`
	Width  int  `json:"width,omitempty" bson:"width,omitempty"`
	Offset *int `json:"offset,omitempty" bson:"offset,omitempty"`
}

// Request carries every input of a solve run.
//
// WSTypes lists acceptable desk catalog keys in preference order; empty
// means the solver's default candidate list for the requested priority.
// Patterns optionally restricts which generators run. Windows names the
// walls treated as glazed by the natural-light criterion (default top and
// right).
type Request struct {
	Room      Room            `json:"room" bson:"room"`
	Door      Door            `json:"door" bson:"door"`
	Pillars   []geometry.Rect `json:"pillars,omitempty" bson:"pillars,omitempty"`
	Seats     int             `json:"seats" bson:"seats"`
	WSTypes   []string        `json:"ws_types,omitempty" bson:"ws_types,omitempty"`
	Equipment []string        `json:"equipment,omitempty" bson:"equipment,omitempty"`
	Priority  string          `json:"priority,omitempty" bson:"priority,omitempty"`
	Preset    string          `json:"preset,omitempty" bson:"preset,omitempty"`
	Patterns  []string        `json:"patterns,omitempty" bson:"patterns,omitempty"`
	Windows   []Side          `json:"windows,omitempty" bson:"windows,omitempty"`

	// EquipmentX pins equipment to one side wall: values up to half the
	// room width select the left wall, larger ones the right. Nil lets the
	// placer try every wall.
	EquipmentX *int `json:"equipment_x,omitempty" bson:"equipment_x,omitempty"`
}

// Validate checks the request against the configured limits. Catalog keys
// and pattern names are validated by the solver, which owns those
// registries.
func (req *Request) Validate(cfg *config.Config) error {
	if err := errors.ValidateRoom(req.Room.W, req.Room.D, cfg.Room.MinDim, cfg.Room.MaxDim); err != nil {
		return err
	}
	if err := errors.ValidateSeats(req.Seats); err != nil {
		return err
	}
	if req.Door.Side != "" && !req.Door.Side.Valid() {
		return errors.New(errors.ErrCodeInvalidDoor, "unknown door side %q", req.Door.Side)
	}
	if req.Door.Width < 0 {
		return errors.New(errors.ErrCodeInvalidDoor, "door width must not be negative, got %d", req.Door.Width)
	}
	switch req.Priority {
	case "", PriorityEquipment, PriorityDesk, PriorityDesk1200:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown priority %q", req.Priority)
	}
	for _, w := range req.Windows {
		if !w.Valid() {
			return errors.New(errors.ErrCodeInvalidInput, "unknown window side %q", w)
		}
	}
	for _, key := range req.WSTypes {
		if err := errors.ValidateFurnitureKey(key); err != nil {
			return err
		}
	}
	for _, key := range req.Equipment {
		if err := errors.ValidateFurnitureKey(key); err != nil {
			return err
		}
	}
	return nil
}
