// Package pipeline provides the core layout pipeline for Roomplan.
//
// This package implements the complete solve → score → render pipeline that
// can be used by CLI, API, and worker components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Solve: Run the pattern generators over the request and pick the best layout
//  2. Score: Expand the winning layout into a graded evaluation report
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, CSV, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, cache, nil, logger, 0)
//	opts := pipeline.Options{
//	    Request: plan.Request{
//	        Room:  plan.Room{W: 5000, D: 4000},
//	        Seats: 8,
//	    },
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Solve only
//	sol, err := runner.Solve(ctx, opts)
//
//	// Score an existing solution
//	report, err := runner.Analyze(ctx, sol, opts)
//
//	// Render an existing solution
//	artifacts, err := runner.Render(ctx, sol, opts)
package pipeline

import (
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roomplan/pkg/cache"
	"github.com/matzehuels/roomplan/pkg/errors"
	"github.com/matzehuels/roomplan/pkg/plan"
	"github.com/matzehuels/roomplan/pkg/render"
	"github.com/matzehuels/roomplan/pkg/score"
	"github.com/matzehuels/roomplan/pkg/solve"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatCSV:  true,
	FormatDOT:  true,
}

// DefaultTheme is the default floor plan color theme.
const DefaultTheme = "default"

// DefaultPNGScale is the resolution multiplier for PNG output.
const DefaultPNGScale = 2.0

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Solve options
	Request plan.Request `json:"request"`
	Refresh bool         `json:"refresh,omitempty"`

	// Score options. Preset and Weights override the request's preset for
	// the report; the solve stage always scores with the request's own.
	Preset  string             `json:"preset,omitempty"`
	Weights map[string]float64 `json:"weights,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Theme   string   `json:"theme,omitempty"`
	Scale   int      `json:"scale,omitempty"` // pixels per meter, 0 for default
	Title   string   `json:"title,omitempty"`
	NoGrid  bool     `json:"no_grid,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Solution is the solved layout with its candidate ranking.
	Solution *solve.Solution

	// SolutionHash is the content hash of the solution.
	SolutionHash string

	// Report is the graded evaluation of the winning layout.
	Report score.Report

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeatsPlaced int
	ItemCount   int
	Candidates  int
	SolveTime   time.Duration
	ScoreTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SolveHit  bool // Whether the solution came from cache
	ScoreHit  bool // Whether the report came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, csv, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTheme checks that a floor plan theme is known.
func ValidateTheme(theme string) error {
	if _, ok := render.ThemeByName(theme); !ok {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid theme: %q (known: %v)", theme, render.ThemeNames())
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetSolveDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetSolveDefaults sets default values for the solve stage. Request
// validation proper happens inside the solver, which owns the limits.
func (o *Options) SetSolveDefaults() {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateTheme(o.Theme)
}

// ScoreOptions resolves the scoring context for the report stage: pipeline
// overrides first, then the solution's own request context.
func (o *Options) ScoreOptions(sol *solve.Solution) score.Options {
	opts := score.Options{
		Preset:  sol.Request.Preset,
		DoorTip: &sol.Blocks.DoorTip,
		Windows: sol.Request.Windows,
	}
	if o.Preset != "" {
		opts.Preset = o.Preset
	}
	if len(o.Weights) > 0 {
		w := score.FromMap(o.Weights)
		opts.Weights = &w
	}
	return opts
}

// SolveKeyOpts returns cache key options for the solve stage.
func (o *Options) SolveKeyOpts(configHash, catalogHash string) cache.SolveKeyOpts {
	return cache.SolveKeyOpts{
		ConfigHash:  configHash,
		CatalogHash: catalogHash,
	}
}

// ScoreKeyOpts returns cache key options for the score stage.
func (o *Options) ScoreKeyOpts() cache.ScoreKeyOpts {
	opts := cache.ScoreKeyOpts{Preset: o.Preset}
	if len(o.Weights) > 0 {
		data, _ := json.Marshal(o.Weights)
		opts.WeightsHash = cache.Hash(data)
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Theme:  o.Theme,
		Scale:  o.Scale,
		Title:  o.Title,
		NoGrid: o.NoGrid,
	}
}

// RequestHash computes the content hash of the solve request.
func (o *Options) RequestHash() string {
	data, _ := json.Marshal(o.Request)
	return cache.Hash(data)
}
