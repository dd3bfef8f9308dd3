package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/roomplan/pkg/config"
	"github.com/matzehuels/roomplan/pkg/geometry"
	"github.com/matzehuels/roomplan/pkg/plan"
)

func testLayout(t *testing.T) (plan.Room, plan.Blocks, *plan.Result) {
	t.Helper()
	room := plan.Room{W: 4000, D: 3000}
	blocks, err := plan.BuildBlocks(room, plan.Door{Side: plan.SideTop}, nil, config.Default())
	if err != nil {
		t.Fatalf("BuildBlocks() error: %v", err)
	}
	res := &plan.Result{
		OK:          true,
		SeatsPlaced: 1,
		Pattern:     "single_wall_B",
		Items: []plan.Item{
			{Kind: plan.KindDesk, Label: "WS1_D", Rect: geometry.Rect{X: 0, Y: 2400, W: 1200, D: 600}},
			{Kind: plan.KindChair, Label: "WS1_C", Rect: geometry.Rect{X: 250, Y: 1695, W: 700, D: 700}},
			{Kind: plan.KindStorage, Type: "storage_M", Label: "EQ1", Rect: geometry.Rect{X: 3550, Y: 0, W: 450, D: 900}},
			{Kind: plan.KindMarker, Label: "750", Rect: geometry.Rect{X: 1250, Y: 2700, W: 750, D: 0}},
		},
	}
	return room, blocks, res
}

func TestRenderSVGFloorPlan(t *testing.T) {
	room, blocks, res := testLayout(t)

	svg := string(RenderSVG(room, blocks, res))

	// 4000x3000 room plus margins at 100 px/m.
	if !strings.Contains(svg, `viewBox="0 0 460.0 360.0"`) {
		t.Errorf("viewBox missing or wrong scale:\n%s", svg[:120])
	}
	for _, want := range []string{
		"<svg xmlns=",
		DefaultTheme().Fill[plan.KindDesk],
		DefaultTheme().Fill[plan.KindStorage],
		">WS1_D</text>",
		">EQ1</text>",
		">750</text>",
		"stroke-dasharray", // door buffer outline
		`<path d="M `,      // door swing arc
		"</svg>",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG() output missing %q", want)
		}
	}

	// Chairs are drawn but never labeled.
	if strings.Contains(svg, "WS1_C") {
		t.Error("RenderSVG() labeled a chair")
	}
}

func TestRenderSVGEmptyRoom(t *testing.T) {
	room, blocks, _ := testLayout(t)

	svg := string(RenderSVG(room, blocks, nil))

	if !strings.Contains(svg, "<svg xmlns=") || !strings.Contains(svg, "</svg>") {
		t.Fatal("RenderSVG() with nil result is not a complete document")
	}
	if strings.Contains(svg, "WS1_D") {
		t.Error("RenderSVG() with nil result drew items")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	room, blocks, res := testLayout(t)

	svg := string(RenderSVG(room, blocks, res,
		WithTheme(BlueprintTheme()),
		WithScale(200),
		WithoutGrid(),
		WithoutLabels(),
		WithTitle("Room <12>"),
	))

	if !strings.Contains(svg, `viewBox="0 0 920.0 720.0"`) {
		t.Error("WithScale(200) did not double the canvas")
	}
	if !strings.Contains(svg, BlueprintTheme().Background) {
		t.Error("WithTheme() did not apply the blueprint background")
	}
	if strings.Contains(svg, "WS1_D") {
		t.Error("WithoutLabels() still drew item labels")
	}
	if !strings.Contains(svg, "Room &lt;12&gt;") {
		t.Error("WithTitle() did not escape and draw the caption")
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		th, ok := ThemeByName(name)
		if !ok {
			t.Fatalf("ThemeByName(%q) not found", name)
		}
		if th.Name != name {
			t.Errorf("ThemeByName(%q).Name = %q", name, th.Name)
		}
	}
	if _, ok := ThemeByName("sepia"); ok {
		t.Error("ThemeByName() accepted an unknown name")
	}
}
