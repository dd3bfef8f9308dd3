package flow

import (
	"strings"
	"testing"

	"github.com/matzehuels/roomplan/pkg/config"
	"github.com/matzehuels/roomplan/pkg/geometry"
	"github.com/matzehuels/roomplan/pkg/plan"
)

func testLayout(t *testing.T) (plan.Blocks, *plan.Result) {
	t.Helper()
	blocks, err := plan.BuildBlocks(plan.Room{W: 5000, D: 4000}, plan.Door{Side: plan.SideLeft}, nil, config.Default())
	if err != nil {
		t.Fatalf("BuildBlocks() error: %v", err)
	}
	res := &plan.Result{
		OK:          true,
		SeatsPlaced: 2,
		Items: []plan.Item{
			{Kind: plan.KindDesk, Label: "WS1_D", Rect: geometry.Rect{X: 0, Y: 0, W: 1200, D: 600}},
			{Kind: plan.KindChair, Label: "WS1_C", Rect: geometry.Rect{X: 250, Y: 605, W: 700, D: 700}},
			{Kind: plan.KindDesk, Label: "WS2_D", Rect: geometry.Rect{X: 1400, Y: 0, W: 1200, D: 600}},
			{Kind: plan.KindChair, Label: "WS2_C", Rect: geometry.Rect{X: 1650, Y: 605, W: 700, D: 700}},
			{Kind: plan.KindStorage, Type: "storage_M", Label: "EQ1", Rect: geometry.Rect{X: 4550, Y: 0, W: 450, D: 900}},
			{Kind: plan.KindMarker, Label: "750", Rect: geometry.Rect{X: 0, Y: 3000, W: 750, D: 0}},
		},
	}
	return blocks, res
}

func TestToDOT(t *testing.T) {
	blocks, res := testLayout(t)

	dot := ToDOT(blocks, res, Options{})

	for _, want := range []string{
		"digraph circulation {",
		`"entrance" [label="Door (L)", shape=diamond`,
		`"entrance" -> "WS1_D";`,
		`"entrance" -> "WS2_D";`,
		`"entrance" -> "EQ1";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}

	// Chairs and dimension markers fold into their workstation.
	if strings.Contains(dot, "WS1_C") || strings.Contains(dot, `"750"`) {
		t.Errorf("ToDOT() emitted a chair or marker node:\n%s", dot)
	}

	// Shared pieces are drawn dashed.
	if !strings.Contains(dot, `"EQ1" [label="EQ1", style="rounded,filled,dashed"`) {
		t.Errorf("ToDOT() storage node not dashed:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	blocks, res := testLayout(t)

	dot := ToDOT(blocks, res, Options{Detailed: true})

	if !strings.Contains(dot, "walk: ") {
		t.Errorf("ToDOT(Detailed) missing walking distances:\n%s", dot)
	}
	if !strings.Contains(dot, "type: storage_M") {
		t.Errorf("ToDOT(Detailed) missing catalog type:\n%s", dot)
	}
}

func TestToDOTNilResult(t *testing.T) {
	blocks, _ := testLayout(t)

	dot := ToDOT(blocks, nil, Options{})

	if !strings.Contains(dot, `"entrance"`) || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("ToDOT(nil) not a complete graph:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Errorf("ToDOT(nil) emitted edges:\n%s", dot)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	blocks, res := testLayout(t)

	if ToDOT(blocks, res, Options{Detailed: true}) != ToDOT(blocks, res, Options{Detailed: true}) {
		t.Error("ToDOT() is not deterministic")
	}
}
