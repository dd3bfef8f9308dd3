package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/matzehuels/roomplan/pkg/geometry"
	"github.com/matzehuels/roomplan/pkg/plan"
)

// jsonOutput is the machine-readable floor plan payload.
type jsonOutput struct {
	Room     plan.Room      `json:"room"`
	DoorSide plan.Side      `json:"door_side,omitempty"`
	DoorRect *geometry.Rect `json:"door_rect,omitempty"`
	OK       bool           `json:"ok"`
	Seats    int            `json:"seats_placed"`
	Pattern  string         `json:"pattern,omitempty"`
	Items    []plan.Item    `json:"items"`
}

// RenderJSON encodes the layout as an indented JSON floor plan: the room,
// the door zone, and every placed item with its rect in millimeters.
func RenderJSON(room plan.Room, blocks plan.Blocks, res *plan.Result) ([]byte, error) {
	out := jsonOutput{Room: room}
	if blocks.DoorSide.Valid() {
		out.DoorSide = blocks.DoorSide
		rect := blocks.DoorRect
		out.DoorRect = &rect
	}
	if res != nil {
		out.OK = res.OK
		out.Seats = res.SeatsPlaced
		out.Pattern = res.Pattern
		out.Items = res.Items
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encode floor plan: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderCSV writes the item schedule: one row per placed item with its
// position and size in millimeters. Dimension markers are skipped.
func RenderCSV(res *plan.Result) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"label", "kind", "type", "x", "y", "w", "d", "rotation"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if res != nil {
		for _, it := range res.Items {
			if it.Kind == plan.KindMarker {
				continue
			}
			row := []string{
				it.Label,
				string(it.Kind),
				it.Type,
				strconv.Itoa(it.Rect.X),
				strconv.Itoa(it.Rect.Y),
				strconv.Itoa(it.Rect.W),
				strconv.Itoa(it.Rect.D),
				strconv.Itoa(it.Rotation),
			}
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
