package plan

import (
	"strings"

	"github.com/matzehuels/roomplan/pkg/errors"
)

// Side identifies one wall of the room.
//
// The single-letter form is the wire format used in requests, config files,
// and stored plans.
type Side string

// The four walls.
const (
	SideTop    Side = "T"
	SideBottom Side = "B"
	SideLeft   Side = "L"
	SideRight  Side = "R"
)

// ParseSide normalizes a wall-side token. Single letters and full names are
// accepted case-insensitively ("t", "T", "top" all parse to SideTop).
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "T", "TOP":
		return SideTop, nil
	case "B", "BOTTOM":
		return SideBottom, nil
	case "L", "LEFT":
		return SideLeft, nil
	case "R", "RIGHT":
		return SideRight, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown wall side %q", s)
}

// Valid reports whether s is one of the four wall sides.
func (s Side) Valid() bool {
	switch s {
	case SideTop, SideBottom, SideLeft, SideRight:
		return true
	}
	return false
}

// Opposite returns the facing wall. It doubles as the inward normal: a desk
// anchored to a wall has its chair on the Opposite side.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return s
}

// Horizontal reports whether the wall runs along the x axis (top or bottom).
func (s Side) Horizontal() bool {
	return s == SideTop || s == SideBottom
}

func (s Side) String() string {
	return string(s)
}
