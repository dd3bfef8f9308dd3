// Package config holds the numeric placement constants and their TOML
// loader.
//
// Every dimension is an integer millimeter value. A Config is constructed
// once (Default or Load), validated, and passed read-only into generators
// and the solver; nothing in this package mutates state after construction.
//
// The defaults encode common Japanese office-planning clearances (JOIFA
// guidance): 1200 mm minimum passage, 900 mm door clearance, 700 mm chairs.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/roomplan/pkg/errors"
)

// Config is the full set of placement constants. Values are grouped the way
// the TOML file is: [room], [door], [chair], [placement], [passage],
// [weights].
type Config struct {
	Room      Room               `toml:"room"`
	Door      Door               `toml:"door"`
	Chair     Chair              `toml:"chair"`
	Placement Placement          `toml:"placement"`
	Passage   Passage            `toml:"passage"`
	Weights   map[string]float64 `toml:"weights"` // optional explicit criterion weights
}

// Room bounds accepted by validation.
type Room struct {
	MinDim int `toml:"min_dim"`
	MaxDim int `toml:"max_dim"`
}

// Door clearance constants.
//
// FaceRadius is the reduced door clearance used by the face-to-face and
// mixed generators: their center rows sit far from the walls, so the full
// ClearRadius would reject layouts whose approach path is in fact clear.
// The value is planning policy, not derived geometry.
type Door struct {
	Width       int `toml:"width"`
	BufferDepth int `toml:"buffer_depth"`
	ClearRadius int `toml:"clear_radius"`
	FaceRadius  int `toml:"face_radius"`
}

// Chair geometry. Chairs are square.
type Chair struct {
	Size    int `toml:"size"`
	DeskGap int `toml:"desk_gap"`
}

// Placement clearances and steps.
type Placement struct {
	DefaultDeskDepth   int `toml:"default_desk_depth"`
	DeskSideClearance  int `toml:"desk_side_clearance"`
	EquipmentClearance int `toml:"equipment_clearance"`
	DeskClearRadius    int `toml:"desk_clear_radius"`
	BackToBack         int `toml:"back_to_back"`
	GridStep           int `toml:"grid_step"`
}

// Passage width thresholds.
type Passage struct {
	Min         int `toml:"min"`
	Recommended int `toml:"recommended"`
	MinAisle    int `toml:"min_aisle"`
}

// Default returns the built-in constants.
func Default() *Config {
	return &Config{
		Room: Room{
			MinDim: 2000,
			MaxDim: 50000,
		},
		Door: Door{
			Width:       850,
			BufferDepth: 900,
			ClearRadius: 900,
			FaceRadius:  200,
		},
		Chair: Chair{
			Size:    700,
			DeskGap: 5,
		},
		Placement: Placement{
			DefaultDeskDepth:   600,
			DeskSideClearance:  200,
			EquipmentClearance: 100,
			DeskClearRadius:    1225,
			BackToBack:         1600,
			GridStep:           500,
		},
		Passage: Passage{
			Min:         1200,
			Recommended: 1500,
			MinAisle:    600,
		},
	}
}

// Load reads a TOML config file. Keys absent from the file keep their
// default values; the merged result is validated before return.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects non-positive dimensions, inverted bounds, and negative
// weights.
func (c *Config) Validate() error {
	dims := []struct {
		name  string
		value int
	}{
		{"room.min_dim", c.Room.MinDim},
		{"room.max_dim", c.Room.MaxDim},
		{"door.width", c.Door.Width},
		{"door.buffer_depth", c.Door.BufferDepth},
		{"door.clear_radius", c.Door.ClearRadius},
		{"door.face_radius", c.Door.FaceRadius},
		{"chair.size", c.Chair.Size},
		{"placement.default_desk_depth", c.Placement.DefaultDeskDepth},
		{"placement.desk_clear_radius", c.Placement.DeskClearRadius},
		{"placement.back_to_back", c.Placement.BackToBack},
		{"placement.grid_step", c.Placement.GridStep},
		{"passage.min", c.Passage.Min},
		{"passage.recommended", c.Passage.Recommended},
		{"passage.min_aisle", c.Passage.MinAisle},
	}
	for _, d := range dims {
		if d.value <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %d", d.name, d.value)
		}
	}

	// Gap and clearance values may legitimately be zero.
	gaps := []struct {
		name  string
		value int
	}{
		{"chair.desk_gap", c.Chair.DeskGap},
		{"placement.desk_side_clearance", c.Placement.DeskSideClearance},
		{"placement.equipment_clearance", c.Placement.EquipmentClearance},
	}
	for _, g := range gaps {
		if g.value < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must not be negative, got %d", g.name, g.value)
		}
	}

	if c.Room.MinDim > c.Room.MaxDim {
		return errors.New(errors.ErrCodeInvalidConfig,
			"room.min_dim %d exceeds room.max_dim %d", c.Room.MinDim, c.Room.MaxDim)
	}

	for name, w := range c.Weights {
		if w < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "weight %s must not be negative, got %g", name, w)
		}
	}

	return nil
}
