// Package cache provides caching for the layout pipeline.
//
// The pipeline caches at three stages: solved layouts (expensive pattern
// search), score reports, and rendered artifacts. Each stage has its own
// key namespace so entries can be invalidated independently.
//
// # Backends
//
//   - FileCache: file-based cache for CLI usage
//   - RedisCache: Redis-backed cache for server deployments
//   - NullCache: no-op cache for testing or disabled caching
//
// # Keys
//
// Keys are produced by a Keyer so callers never concatenate strings
// themselves. The DefaultKeyer hashes the request payload together with
// the options that change the outcome (config, catalog, weights, render
// format). ScopedKeyer prefixes every key for namespace isolation.
package cache

import (
	"context"
	"time"
)

// Stage TTLs. Solved layouts are pure functions of their inputs and keep
// for a week; scores and artifacts are cheaper to recompute.
const (
	TTLSolve    = 7 * 24 * time.Hour
	TTLScore    = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return reports a hit; a miss is
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL stores forever;
	// a negative one stores an already-expired entry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// SolveKeyOpts are the inputs beyond the request that change a solve
// outcome.
type SolveKeyOpts struct {
	ConfigHash  string // hash of the effective configuration
	CatalogHash string // hash of the furniture catalog
}

// ScoreKeyOpts are the inputs beyond the layout that change a score.
type ScoreKeyOpts struct {
	Preset      string // weight preset name, if any
	WeightsHash string // hash of explicit weight overrides
}

// ArtifactKeyOpts are the inputs that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format string // svg, pdf, png, json, csv, dot
	Theme  string // color theme name
	Scale  int    // output pixels per meter, 0 for the default
	Title  string // caption drawn above the room
	NoGrid bool   // suppress the background grid
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// SolveKey generates a key for a solved layout.
	SolveKey(requestHash string, opts SolveKeyOpts) string

	// ScoreKey generates a key for a score report.
	ScoreKey(layoutHash string, opts ScoreKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SolveKey generates a key for a solved layout.
func (k *DefaultKeyer) SolveKey(requestHash string, opts SolveKeyOpts) string {
	return hashKey("solve", requestHash, opts)
}

// ScoreKey generates a key for a score report.
func (k *DefaultKeyer) ScoreKey(layoutHash string, opts ScoreKeyOpts) string {
	return hashKey("score", layoutHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
