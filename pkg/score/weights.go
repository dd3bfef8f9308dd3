package score

// Criterion names, used as map keys in config overrides and as field
// labels in reports.
const (
	CriterionSeatCount       = "seat_count"
	CriterionPassageWidth    = "passage_width"
	CriterionNaturalLight    = "natural_light"
	CriterionTrafficFlow     = "traffic_flow"
	CriterionFaceToFaceBonus = "face_to_face_bonus"
	CriterionSpaceEfficiency = "space_efficiency"
	CriterionDeskSpacing     = "desk_spacing"
	CriterionAreaPerPerson   = "area_per_person"
)

// Weights assigns one non-negative factor to every scoring criterion.
type Weights struct {
	SeatCount       float64 `json:"seat_count" toml:"seat_count"`
	PassageWidth    float64 `json:"passage_width" toml:"passage_width"`
	NaturalLight    float64 `json:"natural_light" toml:"natural_light"`
	TrafficFlow     float64 `json:"traffic_flow" toml:"traffic_flow"`
	FaceToFaceBonus float64 `json:"face_to_face_bonus" toml:"face_to_face_bonus"`
	SpaceEfficiency float64 `json:"space_efficiency" toml:"space_efficiency"`
	DeskSpacing     float64 `json:"desk_spacing" toml:"desk_spacing"`
	AreaPerPerson   float64 `json:"area_per_person" toml:"area_per_person"`
}

// DefaultWeights returns the balanced default profile.
func DefaultWeights() Weights {
	return Weights{
		SeatCount:       1.0,
		PassageWidth:    0.8,
		NaturalLight:    0.5,
		TrafficFlow:     0.6,
		FaceToFaceBonus: 0.3,
		SpaceEfficiency: 0.4,
		DeskSpacing:     0.7,
		AreaPerPerson:   0.6,
	}
}

// Preset names accepted by ResolveWeights.
const (
	PresetMaxSeats      = "max_seats"
	PresetComfort       = "comfort"
	PresetCollaboration = "collaboration"
	PresetBalanced      = "balanced"
	PresetErgonomic     = "ergonomic"
)

// presets are the named profiles, each a targeted override of the default.
var presets = map[string]func(w *Weights){
	PresetMaxSeats: func(w *Weights) {
		w.SeatCount = 2.0
		w.SpaceEfficiency = 0.6
		w.AreaPerPerson = 0.3
	},
	PresetComfort: func(w *Weights) {
		w.SeatCount = 0.5
		w.PassageWidth = 1.2
		w.DeskSpacing = 1.0
		w.AreaPerPerson = 1.0
		w.NaturalLight = 0.8
	},
	PresetCollaboration: func(w *Weights) {
		w.FaceToFaceBonus = 1.5
		w.TrafficFlow = 0.8
		w.SeatCount = 0.8
	},
	PresetBalanced: func(w *Weights) {},
	PresetErgonomic: func(w *Weights) {
		w.PassageWidth = 1.1
		w.NaturalLight = 1.0
		w.DeskSpacing = 1.2
		w.AreaPerPerson = 0.9
		w.FaceToFaceBonus = 0.2
	},
}

// PresetNames lists the known preset names in display order.
func PresetNames() []string {
	return []string{PresetBalanced, PresetMaxSeats, PresetComfort, PresetCollaboration, PresetErgonomic}
}

// ResolveWeights picks the profile for one scoring call: an explicit
// Weights value wins, then a named preset, then the default profile.
// Unknown preset names resolve to the default, never to an error.
func ResolveWeights(explicit *Weights, preset string) Weights {
	if explicit != nil {
		return *explicit
	}
	w := DefaultWeights()
	if apply, ok := presets[preset]; ok {
		apply(&w)
	}
	return w
}

// FromMap overlays named criterion weights onto the default profile.
// Unknown names are ignored. Used for the optional [weights] table in the
// config file.
func FromMap(m map[string]float64) Weights {
	w := DefaultWeights()
	for name, v := range m {
		switch name {
		case CriterionSeatCount:
			w.SeatCount = v
		case CriterionPassageWidth:
			w.PassageWidth = v
		case CriterionNaturalLight:
			w.NaturalLight = v
		case CriterionTrafficFlow:
			w.TrafficFlow = v
		case CriterionFaceToFaceBonus:
			w.FaceToFaceBonus = v
		case CriterionSpaceEfficiency:
			w.SpaceEfficiency = v
		case CriterionDeskSpacing:
			w.DeskSpacing = v
		case CriterionAreaPerPerson:
			w.AreaPerPerson = v
		}
	}
	return w
}

// Sum returns the total of all factors, the maximum achievable score
// under this profile.
func (w Weights) Sum() float64 {
	return w.SeatCount + w.PassageWidth + w.NaturalLight + w.TrafficFlow +
		w.FaceToFaceBonus + w.SpaceEfficiency + w.DeskSpacing + w.AreaPerPerson
}
