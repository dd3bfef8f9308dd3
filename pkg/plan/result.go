package plan

import (
	"github.com/matzehuels/roomplan/pkg/geometry"
)

// Result is the outcome of one pattern generator run.
//
// A generator never fails on infeasibility: when the seat quota cannot be
// met it returns its best partial layout with OK=false. Results are built
// append-only by exactly one generator call and frozen afterwards.
type Result struct {
	OK              bool   `json:"ok" bson:"ok"`
	SeatsPlaced     int    `json:"seats_placed" bson:"seats_placed"`
	SeatsRequired   int    `json:"seats_required" bson:"seats_required"`
	EquipmentPlaced int    `json:"equipment_placed,omitempty" bson:"equipment_placed,omitempty"`
	EquipmentTarget int    `json:"equipment_target,omitempty" bson:"equipment_target,omitempty"`
	WSType          string `json:"ws_type,omitempty" bson:"ws_type,omitempty"`
	Pattern         string `json:"pattern" bson:"pattern"`
	Items           []Item `json:"items" bson:"items"`
}

// Desks returns the desk items in placement order.
func (r *Result) Desks() []Item {
	return r.ItemsOfKind(KindDesk)
}

// Chairs returns the chair items in placement order.
func (r *Result) Chairs() []Item {
	return r.ItemsOfKind(KindChair)
}

// ItemsOfKind returns all items of the given kind in placement order.
func (r *Result) ItemsOfKind(k ItemKind) []Item {
	var out []Item
	for _, it := range r.Items {
		if it.Kind == k {
			out = append(out, it)
		}
	}
	return out
}

// FurnitureRects returns the rects of all space-occupying items, in order.
// Markers are excluded. The returned slice is freshly allocated.
func (r *Result) FurnitureRects() []geometry.Rect {
	var out []geometry.Rect
	for _, it := range r.Items {
		if it.Kind.Furniture() {
			out = append(out, it.Rect)
		}
	}
	return out
}
