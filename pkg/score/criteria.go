package score

import (
	"math"
	"strings"

	"github.com/matzehuels/roomplan/pkg/geometry"
	"github.com/matzehuels/roomplan/pkg/plan"
)

// Planning thresholds, in millimeters unless noted. The aisle and area
// figures follow JOIFA guidance and the Japanese office sanitation rules.
const (
	mainAisleMin     = 1200
	mainAisleOptimal = 1500
	subAisleMin      = 900
	onePersonMin     = 600

	chairClearanceMin     = 800
	chairClearanceOptimal = 1100

	deskRowSpacingMin     = 900
	deskRowSpacingOptimal = 1200

	areaPerPersonMin     = 4_000_000  // mm², legal floor
	areaPerPersonOptimal = 10_000_000 // mm²
	areaPerPersonMax     = 15_000_000 // mm²

	windowProximityOptimal = 2000
	windowProximityMax     = 5000

	// seatClearance pads a chair rect into the zone a straight walking
	// path must not cross.
	seatClearance = 200
)

// seatCountScore rates seats placed against the room's theoretical
// capacity at the recommended area per person.
func seatCountScore(res *plan.Result, room plan.Room) float64 {
	if res.SeatsPlaced == 0 {
		return 0.0
	}
	theoreticalMax := max(1, room.Area()/areaPerPersonOptimal)
	return math.Min(float64(res.SeatsPlaced)/float64(theoreticalMax), 1.0)
}

// passageScore rates the widest central corridor between the left-half and
// right-half desk groups, averaged with the mean free space behind chairs.
// A layout without desks scores 1.0: the whole room is passage.
func passageScore(res *plan.Result, room plan.Room) float64 {
	desks := res.Desks()
	if len(desks) == 0 {
		return 1.0
	}

	var leftEdge, rightEdge = 0, room.W
	haveLeft, haveRight := false, false
	for _, d := range desks {
		if d.Rect.Center().X < float64(room.W)/2 {
			haveLeft = true
			leftEdge = max(leftEdge, d.Rect.X2())
		} else {
			haveRight = true
			rightEdge = min(rightEdge, d.Rect.X)
		}
	}
	centerGap := room.W
	if haveLeft && haveRight {
		centerGap = rightEdge - leftEdge
	}

	scores := []float64{aisleScore(centerGap)}

	if gaps := chairBackGaps(res, room); len(gaps) > 0 {
		sum := 0
		for _, g := range gaps {
			sum += g
		}
		avg := float64(sum) / float64(len(gaps))
		switch {
		case avg >= chairClearanceOptimal:
			scores = append(scores, 1.0)
		case avg >= chairClearanceMin:
			scores = append(scores, 0.5+0.5*(avg-chairClearanceMin)/(chairClearanceOptimal-chairClearanceMin))
		default:
			scores = append(scores, math.Max(0, avg/chairClearanceMin*0.5))
		}
	}

	total := 0.0
	for _, s := range scores {
		total += s
	}
	return total / float64(len(scores))
}

// aisleScore maps a corridor width onto the piecewise aisle curve.
func aisleScore(gap int) float64 {
	g := float64(gap)
	switch {
	case g >= mainAisleOptimal:
		return 1.0
	case g >= mainAisleMin:
		return 0.7 + 0.3*(g-mainAisleMin)/(mainAisleOptimal-mainAisleMin)
	case g >= subAisleMin:
		return 0.4 + 0.3*(g-subAisleMin)/(mainAisleMin-subAisleMin)
	case g >= onePersonMin:
		return 0.2 + 0.2*(g-onePersonMin)/(subAisleMin-onePersonMin)
	}
	return 0.0
}

// chairBackGaps measures, per chair, the distance from the chair's back
// side to the wall it faces.
func chairBackGaps(res *plan.Result, room plan.Room) []int {
	var gaps []int
	for _, c := range res.Chairs() {
		switch c.Back {
		case plan.SideTop:
			gaps = append(gaps, c.Rect.Y)
		case plan.SideBottom:
			gaps = append(gaps, room.D-c.Rect.Y2())
		case plan.SideLeft:
			gaps = append(gaps, c.Rect.X)
		case plan.SideRight:
			gaps = append(gaps, room.W-c.Rect.X2())
		}
	}
	return gaps
}

// naturalLightScore rates mean desk proximity to the window walls.
// Windows default to the top and right walls. 0.5 without desks.
func naturalLightScore(res *plan.Result, room plan.Room, windows []plan.Side) float64 {
	desks := res.Desks()
	if len(desks) == 0 {
		return 0.5
	}
	if len(windows) == 0 {
		windows = []plan.Side{plan.SideTop, plan.SideRight}
	}

	total := 0.0
	for _, d := range desks {
		c := d.Rect.Center()
		minDist := math.Inf(1)
		for _, w := range windows {
			var dist float64
			switch w {
			case plan.SideTop:
				dist = c.Y
			case plan.SideBottom:
				dist = float64(room.D) - c.Y
			case plan.SideLeft:
				dist = c.X
			case plan.SideRight:
				dist = float64(room.W) - c.X
			}
			minDist = math.Min(minDist, dist)
		}

		switch {
		case minDist <= windowProximityOptimal:
			total += 1.0
		case minDist <= windowProximityMax:
			total += 0.3 + 0.7*(windowProximityMax-minDist)/(windowProximityMax-windowProximityOptimal)
		default:
			total += math.Max(0, 0.3*(1.0-(minDist-windowProximityMax)/windowProximityMax))
		}
	}
	return total / float64(len(desks))
}

// trafficFlowScore penalizes seats whose straight path to the door crosses
// another seat's clearance zone (the chair rect padded by seatClearance).
// Each seat contributes 1/(1+crossings); the mean is the score. 1.0 without
// a door, 0.5 without desks.
func trafficFlowScore(res *plan.Result, doorTip *geometry.Point) float64 {
	chairs := res.Chairs()
	if len(res.Desks()) == 0 {
		return 0.5
	}
	if doorTip == nil {
		return 1.0
	}

	zones := make([]geometry.Rect, len(chairs))
	for i, c := range chairs {
		zones[i] = c.Rect.Inflate(seatClearance)
	}

	total := 0.0
	for i, c := range chairs {
		crossings := 0
		from := c.Rect.Center()
		for j, z := range zones {
			if j == i {
				continue
			}
			if geometry.SegmentIntersectsRect(from, *doorTip, z) {
				crossings++
			}
		}
		total += 1.0 / float64(1+crossings)
	}
	if len(chairs) == 0 {
		return 0.5
	}
	return total / float64(len(chairs))
}

// faceToFaceBonus is binary: face-to-face and mixed patterns earn the full
// bonus, every other pattern none.
func faceToFaceBonus(res *plan.Result) float64 {
	p := strings.ToLower(res.Pattern)
	if strings.Contains(p, "face") || strings.Contains(p, "mixed") {
		return 1.0
	}
	return 0.0
}

// spaceEfficiencyScore rates the furniture footprint against the floor
// area; 25-45% usage is the ideal band, everything else is passage or
// crowding.
func spaceEfficiencyScore(res *plan.Result, room plan.Room) float64 {
	if len(res.Items) == 0 {
		return 0.0
	}
	furnitureArea := 0
	for _, it := range res.Items {
		if it.Kind.Furniture() {
			furnitureArea += it.Rect.Area()
		}
	}
	if room.Area() == 0 {
		return 0.0
	}
	ratio := float64(furnitureArea) / float64(room.Area())

	switch {
	case ratio >= 0.25 && ratio <= 0.45:
		return 1.0
	case ratio < 0.15:
		return ratio / 0.15 * 0.5
	case ratio < 0.25:
		return 0.5 + (ratio-0.15)/0.10*0.5
	case ratio <= 0.55:
		return 1.0 - (ratio-0.45)/0.10*0.3
	}
	return math.Max(0.3, 0.7-(ratio-0.55)/0.20*0.4)
}

// deskSpacingScore rates the narrowest gap between desk pairs adjacent on
// one axis. Fewer than two desks cannot crowd each other.
func deskSpacingScore(res *plan.Result) float64 {
	desks := res.Desks()
	if len(desks) < 2 {
		return 1.0
	}

	minDistance := math.MaxInt
	for i, a := range desks {
		for _, b := range desks[i+1:] {
			dx, dy := axisGaps(a.Rect, b.Rect)
			// Only pairs aligned on one axis form a row or column gap.
			if dx == 0 || dy == 0 {
				if d := max(dx, dy); d > 0 {
					minDistance = min(minDistance, d)
				}
			}
		}
	}
	if minDistance == math.MaxInt {
		return 1.0
	}

	d := float64(minDistance)
	switch {
	case d >= deskRowSpacingOptimal:
		return 1.0
	case d >= deskRowSpacingMin:
		return 0.6 + 0.4*(d-deskRowSpacingMin)/(deskRowSpacingOptimal-deskRowSpacingMin)
	case d >= onePersonMin:
		return 0.3 + 0.3*(d-onePersonMin)/(deskRowSpacingMin-onePersonMin)
	}
	return math.Max(0, d/onePersonMin*0.3)
}

// axisGaps returns the separation of two rects along each axis; zero when
// their projections overlap on that axis.
func axisGaps(a, b geometry.Rect) (dx, dy int) {
	switch {
	case a.X2() <= b.X:
		dx = b.X - a.X2()
	case b.X2() <= a.X:
		dx = a.X - b.X2()
	}
	switch {
	case a.Y2() <= b.Y:
		dy = b.Y - a.Y2()
	case b.Y2() <= a.Y:
		dy = a.Y - b.Y2()
	}
	return dx, dy
}

// areaPerPersonScore rates floor area per seat: 10-15m² is ideal, under
// 4m² violates the sanitation floor, far above 15m² wastes space.
func areaPerPersonScore(res *plan.Result, room plan.Room) float64 {
	if res.SeatsPlaced == 0 {
		return 0.0
	}
	perPerson := float64(room.Area()) / float64(res.SeatsPlaced)

	switch {
	case perPerson >= areaPerPersonOptimal && perPerson <= areaPerPersonMax:
		return 1.0
	case perPerson < areaPerPersonMin:
		return math.Max(0, perPerson/areaPerPersonMin*0.3)
	case perPerson < areaPerPersonOptimal:
		return 0.3 + 0.7*(perPerson-areaPerPersonMin)/(areaPerPersonOptimal-areaPerPersonMin)
	}
	excess := perPerson - areaPerPersonMax
	return math.Max(0.5, 1.0-excess/areaPerPersonMax*0.5)
}

