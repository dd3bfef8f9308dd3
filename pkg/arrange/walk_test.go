package arrange

import (
	"testing"

	"github.com/matzehuels/roomplan/pkg/plan"
)

func TestWalkForward(t *testing.T) {
	w := newWalk(0, 2800, 1200, 8)

	var got []int
	for ; w.live(); w = w.advance(1) {
		got = append(got, w.pos)
	}

	want := []int{0, 1200, 2400}
	if len(got) != len(want) {
		t.Fatalf("positions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pos[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if w.remaining != 5 {
		t.Errorf("remaining = %d, want 5", w.remaining)
	}
}

func TestWalkQuota(t *testing.T) {
	w := newWalk(0, 100000, 1000, 4)

	steps := 0
	for ; w.live(); w = w.advance(2) {
		steps++
	}

	if steps != 2 {
		t.Errorf("steps = %d, want 2", steps)
	}
	if w.remaining != 0 {
		t.Errorf("remaining = %d, want 0", w.remaining)
	}
}

func TestWalkDeadStates(t *testing.T) {
	tests := []struct {
		name string
		w    walk
	}{
		{"ZeroQuota", newWalk(0, 1000, 100, 0)},
		{"StartBeyondLimit", newWalk(1200, 1100, 100, 3)},
		{"NegativeStart", newWalk(-1, 1000, 100, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.w.live() {
				t.Errorf("live() = true, want false")
			}
		})
	}
}

func TestWalkAdvanceIsPure(t *testing.T) {
	w := newWalk(0, 5000, 500, 3)
	_ = w.advance(1)

	if w.pos != 0 || w.remaining != 3 {
		t.Errorf("walk mutated in place: pos=%d remaining=%d", w.pos, w.remaining)
	}
}

func TestWallWalkReverse(t *testing.T) {
	w := wallWalk(3800, 1200, 3, plan.SideRight)

	var got []int
	for ; w.live(); w = w.advance(1) {
		got = append(got, w.pos)
	}

	want := []int{3800, 2600, 1400}
	if len(got) != len(want) {
		t.Fatalf("positions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pos[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestWallWalkForwardDefault(t *testing.T) {
	for _, from := range []plan.Side{plan.SideLeft, plan.SideTop, ""} {
		w := wallWalk(3800, 1200, 2, from)
		if w.pos != 0 || w.step != 1200 {
			t.Errorf("wallWalk(from=%q): pos=%d step=%d, want 0, 1200", from, w.pos, w.step)
		}
	}
}

func TestWallWalkReverseRunsOut(t *testing.T) {
	// A reverse walk dies by crossing zero, not by quota.
	w := wallWalk(2000, 900, 100, plan.SideRight)

	var last int
	steps := 0
	for ; w.live(); w = w.advance(0) {
		last = w.pos
		steps++
	}

	if steps != 3 {
		t.Errorf("steps = %d, want 3", steps)
	}
	if last != 200 {
		t.Errorf("last pos = %d, want 200", last)
	}
}
