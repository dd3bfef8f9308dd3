package arrange

import (
	"testing"

	"github.com/matzehuels/roomplan/pkg/config"
	"github.com/matzehuels/roomplan/pkg/geometry"
	"github.com/matzehuels/roomplan/pkg/plan"
)

func TestChairRect(t *testing.T) {
	cfg := config.Default()
	desk := geometry.Rect{X: 1000, Y: 2000, W: 1200, D: 600}

	tests := []struct {
		name string
		side plan.Side
		want geometry.Rect
	}{
		{"Top", plan.SideTop, geometry.Rect{X: 1250, Y: 1295, W: 700, D: 700}},
		{"Bottom", plan.SideBottom, geometry.Rect{X: 1250, Y: 2605, W: 700, D: 700}},
		{"Left", plan.SideLeft, geometry.Rect{X: 295, Y: 1950, W: 700, D: 700}},
		{"Right", plan.SideRight, geometry.Rect{X: 2205, Y: 1950, W: 700, D: 700}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChairRect(desk, tt.side, cfg); got != tt.want {
				t.Errorf("ChairRect = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestChairRectTruncatesCentering(t *testing.T) {
	cfg := config.Default()
	desk := geometry.Rect{X: 0, Y: 0, W: 1001, D: 600}

	got := ChairRect(desk, plan.SideBottom, cfg)
	if got.X != 150 {
		t.Errorf("chair X = %d, want 150", got.X)
	}
}

func TestWallUnit(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name      string
		span      int
		wall      plan.Side
		wantDesk  geometry.Rect
		wantChair geometry.Rect
		wantBack  plan.Side
	}{
		{
			name: "Top", span: 4000, wall: plan.SideTop,
			wantDesk:  geometry.Rect{X: 400, Y: 0, W: 1200, D: 600},
			wantChair: geometry.Rect{X: 650, Y: 605, W: 700, D: 700},
			wantBack:  plan.SideBottom,
		},
		{
			name: "Bottom", span: 4000, wall: plan.SideBottom,
			wantDesk:  geometry.Rect{X: 400, Y: 3400, W: 1200, D: 600},
			wantChair: geometry.Rect{X: 650, Y: 2695, W: 700, D: 700},
			wantBack:  plan.SideTop,
		},
		{
			name: "Left", span: 5000, wall: plan.SideLeft,
			wantDesk:  geometry.Rect{X: 0, Y: 400, W: 600, D: 1200},
			wantChair: geometry.Rect{X: 605, Y: 650, W: 700, D: 700},
			wantBack:  plan.SideRight,
		},
		{
			name: "Right", span: 5000, wall: plan.SideRight,
			wantDesk:  geometry.Rect{X: 4400, Y: 400, W: 600, D: 1200},
			wantChair: geometry.Rect{X: 3695, Y: 650, W: 700, D: 700},
			wantBack:  plan.SideLeft,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desk, chair, back := WallUnit(tt.span, "ws_1200x600", tt.wall, 400, 1200, 1200, cfg)
			if desk != tt.wantDesk {
				t.Errorf("desk = %+v, want %+v", desk, tt.wantDesk)
			}
			if chair != tt.wantChair {
				t.Errorf("chair = %+v, want %+v", chair, tt.wantChair)
			}
			if back != tt.wantBack {
				t.Errorf("back = %v, want %v", back, tt.wantBack)
			}
		})
	}
}

func TestWallUnitDeskDepth(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name   string
		wsType string
		depth  int
		want   int
	}{
		{"Cataloged", "ws_1200x600", 1200, 600},
		{"ShallowUnitClamps", "ws_1200x600", 500, 500},
		{"UnparseableKeyDefaults", "meet2p", 1200, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desk, _, _ := WallUnit(4000, tt.wsType, plan.SideTop, 0, 1200, tt.depth, cfg)
			if desk.D != tt.want {
				t.Errorf("desk depth = %d, want %d", desk.D, tt.want)
			}
		})
	}
}

func TestCanPlaceUnit(t *testing.T) {
	room := plan.Room{W: 5000, D: 4000}
	desk := geometry.Rect{X: 0, Y: 400, W: 600, D: 1200}
	chair := geometry.Rect{X: 605, Y: 650, W: 700, D: 700}

	if !CanPlaceUnit(room, desk, chair, nil) {
		t.Error("open room: CanPlaceUnit = false, want true")
	}

	pillar := geometry.Rect{X: 700, Y: 700, W: 200, D: 200}
	if CanPlaceUnit(room, desk, chair, []geometry.Rect{pillar}) {
		t.Error("pillar on chair: CanPlaceUnit = true, want false")
	}

	narrow := plan.Room{W: 1300, D: 4000}
	if CanPlaceUnit(narrow, desk, chair, nil) {
		t.Error("chair past wall: CanPlaceUnit = true, want false")
	}
}

func TestAppendWallUnit(t *testing.T) {
	cfg := config.Default()

	items := AppendWallUnit(nil, 3, 4000, "ws_1200x600", plan.SideTop, 400, 1200, 1200, cfg)
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	desk, chair := items[0], items[1]
	if desk.Kind != plan.KindDesk || desk.Label != "WS3_D" {
		t.Errorf("desk = %s %q, want desk WS3_D", desk.Kind, desk.Label)
	}
	if chair.Kind != plan.KindChair || chair.Label != "WS3_C" {
		t.Errorf("chair = %s %q, want chair WS3_C", chair.Kind, chair.Label)
	}
	if chair.Back != plan.SideBottom {
		t.Errorf("chair back = %v, want B", chair.Back)
	}
	if chair.Rotation != 0 {
		t.Errorf("chair rotation = %d, want 0", chair.Rotation)
	}
}

func TestAppendSideUnitRotates(t *testing.T) {
	cfg := config.Default()
	desk := geometry.Rect{X: 4200, Y: 1900, W: 600, D: 1200}

	items := AppendSideUnit(nil, 7, desk, plan.SideRight, cfg)
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[1].Rotation != 90 {
		t.Errorf("chair rotation = %d, want 90", items[1].Rotation)
	}
	if items[1].Back != plan.SideRight {
		t.Errorf("chair back = %v, want R", items[1].Back)
	}
	if items[0].Label != "WS7_D" || items[1].Label != "WS7_C" {
		t.Errorf("labels = %q, %q, want WS7_D, WS7_C", items[0].Label, items[1].Label)
	}
}
