package geometry

import (
	"math/rand"
	"testing"
)

func TestRectAccessors(t *testing.T) {
	r := Rect{X: 100, Y: 200, W: 300, D: 400}
	if r.X2() != 400 {
		t.Errorf("X2 = %d, want 400", r.X2())
	}
	if r.Y2() != 600 {
		t.Errorf("Y2 = %d, want 600", r.Y2())
	}
	if r.Area() != 120000 {
		t.Errorf("Area = %d, want 120000", r.Area())
	}
	c := r.Center()
	if c.X != 250 || c.Y != 400 {
		t.Errorf("Center = %+v, want (250, 400)", c)
	}
	inflated := r.Inflate(50)
	want := Rect{X: 50, Y: 150, W: 400, D: 500}
	if inflated != want {
		t.Errorf("Inflate(50) = %+v, want %+v", inflated, want)
	}
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    Rect{X: 0, Y: 0, W: 100, D: 100},
			b:    Rect{X: 50, Y: 50, W: 100, D: 100},
			want: true,
		},
		{
			name: "identical",
			a:    Rect{X: 10, Y: 10, W: 50, D: 50},
			b:    Rect{X: 10, Y: 10, W: 50, D: 50},
			want: true,
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, W: 1000, D: 1000},
			b:    Rect{X: 100, Y: 100, W: 100, D: 100},
			want: true,
		},
		{
			name: "disjoint",
			a:    Rect{X: 0, Y: 0, W: 100, D: 100},
			b:    Rect{X: 500, Y: 500, W: 100, D: 100},
			want: false,
		},
		{
			name: "vertical edge touch",
			a:    Rect{X: 0, Y: 0, W: 100, D: 100},
			b:    Rect{X: 100, Y: 0, W: 100, D: 100},
			want: false,
		},
		{
			name: "horizontal edge touch",
			a:    Rect{X: 0, Y: 0, W: 100, D: 100},
			b:    Rect{X: 0, Y: 100, W: 100, D: 100},
			want: false,
		},
		{
			name: "corner touch",
			a:    Rect{X: 0, Y: 0, W: 100, D: 100},
			b:    Rect{X: 100, Y: 100, W: 100, D: 100},
			want: false,
		},
		{
			name: "one millimeter overlap",
			a:    Rect{X: 0, Y: 0, W: 100, D: 100},
			b:    Rect{X: 99, Y: 99, W: 100, D: 100},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, tt.b); got != tt.want {
				t.Errorf("Intersects(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Symmetry must hold for every pair.
			if got := Intersects(tt.b, tt.a); got != tt.want {
				t.Errorf("Intersects(%+v, %+v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func randomRect(rng *rand.Rand) Rect {
	return Rect{
		X: rng.Intn(5000) - 1000,
		Y: rng.Intn(5000) - 1000,
		W: 1 + rng.Intn(2000),
		D: 1 + rng.Intn(2000),
	}
}

func TestIntersectsSymmetryRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a := randomRect(rng)
		b := randomRect(rng)
		if Intersects(a, b) != Intersects(b, a) {
			t.Fatalf("symmetry violated for a=%+v b=%+v", a, b)
		}
	}
}

func TestInsideRoom(t *testing.T) {
	tests := []struct {
		name         string
		r            Rect
		roomW, roomD int
		want         bool
	}{
		{"fits with margin", Rect{X: 100, Y: 100, W: 500, D: 500}, 1000, 1000, true},
		{"flush against walls", Rect{X: 0, Y: 0, W: 1000, D: 1000}, 1000, 1000, true},
		{"over right wall", Rect{X: 600, Y: 0, W: 500, D: 500}, 1000, 1000, false},
		{"over bottom wall", Rect{X: 0, Y: 600, W: 500, D: 500}, 1000, 1000, false},
		{"negative x", Rect{X: -1, Y: 0, W: 100, D: 100}, 1000, 1000, false},
		{"negative y", Rect{X: 0, Y: -1, W: 100, D: 100}, 1000, 1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsideRoom(tt.r, tt.roomW, tt.roomD); got != tt.want {
				t.Errorf("InsideRoom(%+v, %d, %d) = %v, want %v", tt.r, tt.roomW, tt.roomD, got, tt.want)
			}
		})
	}
}

func TestInsideRoomRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		r := randomRect(rng)
		roomW := 1 + rng.Intn(10000)
		roomD := 1 + rng.Intn(10000)
		want := r.X >= 0 && r.Y >= 0 && r.X+r.W <= roomW && r.Y+r.D <= roomD
		if got := InsideRoom(r, roomW, roomD); got != want {
			t.Fatalf("InsideRoom(%+v, %d, %d) = %v, want %v", r, roomW, roomD, got, want)
		}
	}
}

func TestCanPlace(t *testing.T) {
	roomW, roomD := 5000, 4000
	blocks := []Rect{{X: 2000, Y: 0, W: 850, D: 900}}

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"free corner", Rect{X: 0, Y: 0, W: 600, D: 1200}, true},
		{"hits door buffer", Rect{X: 1800, Y: 500, W: 600, D: 600}, false},
		{"flush below buffer", Rect{X: 2000, Y: 900, W: 600, D: 600}, true},
		{"outside room", Rect{X: 4800, Y: 0, W: 600, D: 600}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanPlace(tt.r, roomW, roomD, blocks); got != tt.want {
				t.Errorf("CanPlace(%+v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

// Adding a block may only remove placements, never enable them.
func TestCanPlaceMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	roomW, roomD := 8000, 6000
	for i := 0; i < 500; i++ {
		var blocks []Rect
		for j := 0; j < rng.Intn(5); j++ {
			blocks = append(blocks, randomRect(rng))
		}
		r := randomRect(rng)
		before := CanPlace(r, roomW, roomD, blocks)
		blocks = append(blocks, randomRect(rng))
		after := CanPlace(r, roomW, roomD, blocks)
		if !before && after {
			t.Fatalf("adding a block enabled placement: r=%+v blocks=%+v", r, blocks)
		}
	}
}

func TestDistanceToPoint(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 200, D: 200}

	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"inside", Point{X: 150, Y: 150}, 0},
		{"on edge", Point{X: 100, Y: 150}, 0},
		{"left of rect", Point{X: 50, Y: 150}, 50},
		{"above rect", Point{X: 150, Y: 40}, 60},
		{"diagonal 3-4-5", Point{X: 70, Y: 60}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistanceToPoint(r, tt.p); got != tt.want {
				t.Errorf("DistanceToPoint = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClearOfPoint(t *testing.T) {
	tests := []struct {
		name   string
		r      Rect
		p      Point
		radius int
		want   bool
	}{
		{"far away", Rect{X: 2000, Y: 0, W: 600, D: 600}, Point{X: 0, Y: 0}, 900, true},
		{"exactly at radius", Rect{X: 900, Y: 0, W: 600, D: 600}, Point{X: 0, Y: 0}, 900, true},
		{"inside radius", Rect{X: 500, Y: 0, W: 600, D: 600}, Point{X: 0, Y: 0}, 900, false},
		{"point inside rect", Rect{X: 0, Y: 0, W: 600, D: 600}, Point{X: 300, Y: 300}, 900, false},
		{"zero radius always clear", Rect{X: 0, Y: 0, W: 600, D: 600}, Point{X: 300, Y: 300}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClearOfPoint(tt.r, tt.p, tt.radius); got != tt.want {
				t.Errorf("ClearOfPoint(%+v, %+v, %d) = %v, want %v", tt.r, tt.p, tt.radius, got, tt.want)
			}
		})
	}
}

func TestSegmentIntersectsRect(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 200, D: 200}

	tests := []struct {
		name string
		a, b Point
		want bool
	}{
		{"crosses through", Point{X: 0, Y: 200}, Point{X: 400, Y: 200}, true},
		{"misses entirely", Point{X: 0, Y: 0}, Point{X: 400, Y: 0}, false},
		{"endpoint inside", Point{X: 200, Y: 200}, Point{X: 600, Y: 600}, true},
		{"both endpoints inside", Point{X: 150, Y: 150}, Point{X: 250, Y: 250}, true},
		{"runs along top edge", Point{X: 0, Y: 100}, Point{X: 400, Y: 100}, false},
		{"grazes corner", Point{X: 0, Y: 200}, Point{X: 200, Y: 0}, false},
		{"stops at edge", Point{X: 0, Y: 200}, Point{X: 100, Y: 200}, false},
		{"diagonal through", Point{X: 0, Y: 0}, Point{X: 400, Y: 400}, true},
		{"vertical through", Point{X: 200, Y: 0}, Point{X: 200, Y: 400}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentIntersectsRect(tt.a, tt.b, r); got != tt.want {
				t.Errorf("SegmentIntersectsRect(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := SegmentIntersectsRect(tt.b, tt.a, r); got != tt.want {
				t.Errorf("SegmentIntersectsRect(%+v, %+v) = %v, want %v (reversed)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}
