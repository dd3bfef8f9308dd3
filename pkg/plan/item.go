package plan

import (
	"github.com/matzehuels/roomplan/pkg/geometry"
)

// ItemKind discriminates the placed-item variants. Renderers and scorers
// switch exhaustively over these values.
type ItemKind string

// Item kinds.
const (
	KindDesk      ItemKind = "desk"
	KindChair     ItemKind = "chair"
	KindStorage   ItemKind = "storage"
	KindEquipment ItemKind = "equipment"
	KindMeeting   ItemKind = "meeting"

	// KindMarker is a dimension annotation (wall-to-desk measurement),
	// drawn by renderers but ignored by all placement and scoring math.
	KindMarker ItemKind = "dim"
)

// Furniture reports whether the kind occupies floor space. Markers do not.
func (k ItemKind) Furniture() bool {
	switch k {
	case KindDesk, KindChair, KindStorage, KindEquipment, KindMeeting:
		return true
	}
	return false
}

// Item is one placed element of a layout.
//
// Type carries the catalog key for storage/equipment/meeting items
// ("storage_S", "mfp", ...) so renderers and exports can distinguish
// subtypes; desks and chairs leave it empty. Back and Rotation are set on
// chairs only: Back is the desk side the chair sits on, Rotation is 0 or 90
// degrees for the rotated end seat of a face-to-face row.
type Item struct {
	Kind     ItemKind      `json:"kind" bson:"kind"`
	Type     string        `json:"type,omitempty" bson:"type,omitempty"`
	Label    string        `json:"label,omitempty" bson:"label,omitempty"`
	Rect     geometry.Rect `json:"rect" bson:"rect"`
	Back     Side          `json:"back,omitempty" bson:"back,omitempty"`
	Rotation int           `json:"rotation,omitempty" bson:"rotation,omitempty"`
}

// IsDesk reports whether the item is a desk.
func (it *Item) IsDesk() bool { return it.Kind == KindDesk }

// IsChair reports whether the item is a chair.
func (it *Item) IsChair() bool { return it.Kind == KindChair }

// DisplayType returns the catalog key if set, otherwise the kind.
func (it *Item) DisplayType() string {
	if it.Type != "" {
		return it.Type
	}
	return string(it.Kind)
}
