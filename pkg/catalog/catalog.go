// Package catalog provides the furniture dimension catalog.
//
// Every placeable piece is identified by a key ("ws_1200x600", "storage_M",
// "mfp") mapping to a [Spec] with its footprint and required front
// clearance. Desk specs describe the full placement unit: the desk plus the
// chair pull-out zone behind it, so "ws_1200x600" (a 1200x600 desktop)
// occupies 1200x1200.
//
// The built-in catalog covers the common JOIFA sizes; Load reads a TOML
// file for custom furniture. Lookups of unknown keys are errors, never
// silent defaults.
package catalog

import (
	"encoding/json"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/roomplan/pkg/errors"
	"github.com/matzehuels/roomplan/pkg/plan"
)

// Spec is the footprint of one catalog entry, in millimeters.
//
// W runs along the anchoring wall and D away from it. ClearFront is the
// keep-free strip in front of the item (zero for desks, whose chair zone is
// already folded into D).
type Spec struct {
	W          int           `toml:"w" json:"w"`
	D          int           `toml:"d" json:"d"`
	ClearFront int           `toml:"clear_front" json:"clear_front,omitempty"`
	Kind       plan.ItemKind `toml:"-" json:"kind"`
}

// Area returns the footprint area in square millimeters.
func (s Spec) Area() int {
	return s.W * s.D
}

// Catalog maps furniture keys to specs. Immutable after construction.
type Catalog struct {
	specs map[string]Spec
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{specs: map[string]Spec{
		// Seat units: desk plus 800mm chair pull-out.
		"ws_1200x700": {W: 1200, D: 1300, Kind: plan.KindDesk},
		"ws_1200x600": {W: 1200, D: 1200, Kind: plan.KindDesk},
		"ws_1000x600": {W: 1000, D: 1200, Kind: plan.KindDesk},

		// Storage in three depth classes.
		"storage_S": {W: 900, D: 350, ClearFront: 600, Kind: plan.KindStorage},
		"storage_M": {W: 900, D: 450, ClearFront: 600, Kind: plan.KindStorage},
		"storage_D": {W: 900, D: 600, ClearFront: 600, Kind: plan.KindStorage},

		// Multifunction printer wants standing room in front.
		"mfp": {W: 600, D: 650, ClearFront: 900, Kind: plan.KindEquipment},

		// Two-person meeting spot.
		"meet2p": {W: 750, D: 750, ClearFront: 600, Kind: plan.KindMeeting},
	}}
}

// catalogFile is the TOML shape: entries grouped by section, the section
// naming the kind.
type catalogFile struct {
	Desks     map[string]Spec `toml:"desks"`
	Storage   map[string]Spec `toml:"storage"`
	Equipment map[string]Spec `toml:"equipment"`
	Meeting   map[string]Spec `toml:"meeting"`
}

// Load reads a TOML catalog file. The file fully replaces the built-in
// catalog; a file without entries is an error, not a fallback.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "read catalog %s", path)
	}

	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "parse catalog %s", path)
	}

	specs := make(map[string]Spec)
	sections := []struct {
		entries map[string]Spec
		kind    plan.ItemKind
	}{
		{file.Desks, plan.KindDesk},
		{file.Storage, plan.KindStorage},
		{file.Equipment, plan.KindEquipment},
		{file.Meeting, plan.KindMeeting},
	}
	for _, sec := range sections {
		for key, spec := range sec.entries {
			if err := errors.ValidateFurnitureKey(key); err != nil {
				return nil, err
			}
			if spec.W <= 0 || spec.D <= 0 {
				return nil, errors.New(errors.ErrCodeInvalidCatalog,
					"catalog entry %s has non-positive size %dx%d", key, spec.W, spec.D)
			}
			if spec.ClearFront < 0 {
				return nil, errors.New(errors.ErrCodeInvalidCatalog,
					"catalog entry %s has negative clear_front %d", key, spec.ClearFront)
			}
			spec.Kind = sec.kind
			specs[key] = spec
		}
	}

	if len(specs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "catalog %s defines no furniture", path)
	}

	return &Catalog{specs: specs}, nil
}

// Lookup returns the spec for a key. Unknown keys are an error.
func (c *Catalog) Lookup(key string) (Spec, error) {
	spec, ok := c.specs[key]
	if !ok {
		return Spec{}, errors.New(errors.ErrCodeFurnitureNotFound, "furniture %q not in catalog", key)
	}
	return spec, nil
}

// Has reports whether the key exists.
func (c *Catalog) Has(key string) bool {
	_, ok := c.specs[key]
	return ok
}

// Keys returns all catalog keys, sorted.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.specs))
	for k := range c.specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// KeysOfKind returns the sorted keys of one kind.
func (c *Catalog) KeysOfKind(kind plan.ItemKind) []string {
	var keys []string
	for k, spec := range c.specs {
		if spec.Kind == kind {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.specs)
}

// MarshalJSON encodes the catalog as a key-to-spec object with sorted
// keys, so equal catalogs always encode identically.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.specs)
}

// DeskDepth parses the desktop depth out of a desk key: "ws_1200x600" is a
// 600mm-deep desktop. Unparseable keys fall back to def.
func DeskDepth(wsType string, def int) int {
	s := strings.TrimPrefix(wsType, "ws_")
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return def
	}
	d, err := strconv.Atoi(parts[1])
	if err != nil {
		return def
	}
	return d
}

// DeskArea parses the desktop area out of a desk key: "ws_1200x600" is
// 720000 mm². Unparseable keys are 0, ranking them below any real desk.
func DeskArea(wsType string) int {
	s := strings.TrimPrefix(wsType, "ws_")
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return 0
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	d, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return w * d
}
