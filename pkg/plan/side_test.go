package plan

import "testing"

func TestParseSide(t *testing.T) {
	tests := []struct {
		in      string
		want    Side
		wantErr bool
	}{
		{"T", SideTop, false},
		{"t", SideTop, false},
		{"top", SideTop, false},
		{"Bottom", SideBottom, false},
		{"b", SideBottom, false},
		{"L", SideLeft, false},
		{"LEFT", SideLeft, false},
		{"right", SideRight, false},
		{" R ", SideRight, false},
		{"", "", true},
		{"north", "", true},
		{"TB", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSide(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSide(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSide(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSide(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSideOpposite(t *testing.T) {
	pairs := map[Side]Side{
		SideTop:    SideBottom,
		SideBottom: SideTop,
		SideLeft:   SideRight,
		SideRight:  SideLeft,
	}

	for s, want := range pairs {
		if got := s.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, want %s", s, got, want)
		}
		if got := s.Opposite().Opposite(); got != s {
			t.Errorf("%s.Opposite().Opposite() = %s, want %s", s, got, s)
		}
	}
}

func TestSideHorizontal(t *testing.T) {
	if !SideTop.Horizontal() || !SideBottom.Horizontal() {
		t.Error("top and bottom walls must be horizontal")
	}
	if SideLeft.Horizontal() || SideRight.Horizontal() {
		t.Error("left and right walls must not be horizontal")
	}
}

func TestSideValid(t *testing.T) {
	for _, s := range []Side{SideTop, SideBottom, SideLeft, SideRight} {
		if !s.Valid() {
			t.Errorf("%s.Valid() = false", s)
		}
	}
	if Side("X").Valid() || Side("").Valid() {
		t.Error("invalid sides must not report Valid()")
	}
}
