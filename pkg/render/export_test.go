package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
)

func TestRenderJSON(t *testing.T) {
	room, blocks, res := testLayout(t)

	data, err := RenderJSON(room, blocks, res)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Room != room {
		t.Errorf("Room = %+v, want %+v", out.Room, room)
	}
	if out.DoorSide != blocks.DoorSide {
		t.Errorf("DoorSide = %q, want %q", out.DoorSide, blocks.DoorSide)
	}
	if out.DoorRect == nil || *out.DoorRect != blocks.DoorRect {
		t.Errorf("DoorRect = %v, want %v", out.DoorRect, blocks.DoorRect)
	}
	if !out.OK || out.Seats != 1 {
		t.Errorf("OK/Seats = %v/%d, want true/1", out.OK, out.Seats)
	}
	if len(out.Items) != len(res.Items) {
		t.Errorf("Items count = %d, want %d", len(out.Items), len(res.Items))
	}
}

func TestRenderJSONNilResult(t *testing.T) {
	room, blocks, _ := testLayout(t)

	data, err := RenderJSON(room, blocks, nil)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.OK || len(out.Items) != 0 {
		t.Errorf("nil result encoded as OK=%v with %d items", out.OK, len(out.Items))
	}
}

func TestRenderCSV(t *testing.T) {
	_, _, res := testLayout(t)

	data, err := RenderCSV(res)
	if err != nil {
		t.Fatalf("RenderCSV() error: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("csv.ReadAll() error: %v", err)
	}

	// Header plus three furniture items; the dimension marker is skipped.
	if len(rows) != 4 {
		t.Fatalf("row count = %d, want 4", len(rows))
	}
	if rows[0][0] != "label" || rows[0][3] != "x" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "WS1_D" || rows[1][1] != "desk" {
		t.Errorf("first row = %v", rows[1])
	}
	if rows[3][2] != "storage_M" {
		t.Errorf("storage type = %q, want storage_M", rows[3][2])
	}
	for _, row := range rows[1:] {
		if row[1] == "dim" {
			t.Error("RenderCSV() emitted a dimension marker row")
		}
	}
}
