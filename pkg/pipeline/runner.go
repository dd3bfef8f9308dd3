package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roomplan/pkg/cache"
	"github.com/matzehuels/roomplan/pkg/catalog"
	"github.com/matzehuels/roomplan/pkg/config"
	"github.com/matzehuels/roomplan/pkg/observability"
	"github.com/matzehuels/roomplan/pkg/score"
	"github.com/matzehuels/roomplan/pkg/solve"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Solver  *solve.Solver
	Catalog *catalog.Catalog
	Config  *config.Config
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger

	configHash  string
	catalogHash string
}

// NewRunner creates a runner over the given catalog and configuration.
// Nil catalog or config take the built-in defaults.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// workers <= 0 takes the solver default.
func NewRunner(cat *catalog.Catalog, cfg *config.Config, c cache.Cache, keyer cache.Keyer, logger *log.Logger, workers int) *Runner {
	if cat == nil {
		cat = catalog.Default()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}

	cfgData, _ := json.Marshal(cfg)
	catData, _ := json.Marshal(cat)

	return &Runner{
		Solver:      solve.New(cat, cfg, logger, workers),
		Catalog:     cat,
		Config:      cfg,
		Cache:       c,
		Keyer:       keyer,
		Logger:      logger,
		configHash:  cache.Hash(cfgData),
		catalogHash: cache.Hash(catData),
	}
}

// Execute runs the complete solve → score → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Solve
	solveStart := time.Now()
	observability.Pipeline().OnSolveStart(ctx, opts.Request.Seats)
	sol, solveHit, err := r.SolveWithCacheInfo(ctx, opts)
	if err != nil {
		observability.Pipeline().OnSolveComplete(ctx, "", 0, time.Since(solveStart), err)
		return nil, fmt.Errorf("solve: %w", err)
	}
	observability.Pipeline().OnSolveComplete(ctx, sol.Best.Pattern, sol.Best.SeatsPlaced, time.Since(solveStart), nil)
	result.Solution = sol
	result.Stats.SolveTime = time.Since(solveStart)
	result.Stats.SeatsPlaced = sol.Best.SeatsPlaced
	result.Stats.ItemCount = len(sol.Best.Items)
	result.Stats.Candidates = len(sol.Candidates)
	result.CacheInfo.SolveHit = solveHit

	// Compute solution hash for cache keys and API responses
	if data, err := json.Marshal(sol); err == nil {
		result.SolutionHash = cache.Hash(data)
	}

	r.Logger.Info("solved layout",
		"pattern", sol.Best.Pattern,
		"seats", sol.Best.SeatsPlaced,
		"ok", sol.Best.OK,
		"duration", result.Stats.SolveTime)

	// Stage 2: Score
	scoreStart := time.Now()
	observability.Pipeline().OnScoreStart(ctx, sol.Best.Pattern)
	report, scoreHit, err := r.AnalyzeWithCacheInfo(ctx, sol, opts)
	if err != nil {
		observability.Pipeline().OnScoreComplete(ctx, sol.Best.Pattern, 0, time.Since(scoreStart), err)
		return nil, fmt.Errorf("score: %w", err)
	}
	observability.Pipeline().OnScoreComplete(ctx, sol.Best.Pattern, report.TotalScore, time.Since(scoreStart), nil)
	result.Report = report
	result.Stats.ScoreTime = time.Since(scoreStart)
	result.CacheInfo.ScoreHit = scoreHit

	r.Logger.Info("scored layout",
		"total", report.TotalScore,
		"grade", report.Grade,
		"duration", result.Stats.ScoreTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, sol, opts)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
		return nil, fmt.Errorf("render: %w", err)
	}
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), nil)
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// SolveWithCacheInfo solves the request with caching and returns cache hit info.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, opts Options) (*solve.Solution, bool, error) {
	opts.SetSolveDefaults()
	r.applyLogger(&opts)

	cacheKey := r.Keyer.SolveKey(opts.RequestHash(), opts.SolveKeyOpts(r.configHash, r.catalogHash))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var sol solve.Solution
			if err := json.Unmarshal(data, &sol); err == nil {
				observability.Cache().OnCacheHit(ctx, "solve")
				return &sol, true, nil // Cache hit
			}
		}
	}
	observability.Cache().OnCacheMiss(ctx, "solve")

	// Solve
	sol, err := r.Solver.Solve(ctx, opts.Request)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if data, err := json.Marshal(sol); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLSolve)
		observability.Cache().OnCacheSet(ctx, "solve", len(data))
	}

	return sol, false, nil // Cache miss
}

// Solve is a convenience wrapper that calls SolveWithCacheInfo and discards the cache hit info.
func (r *Runner) Solve(ctx context.Context, opts Options) (*solve.Solution, error) {
	sol, _, err := r.SolveWithCacheInfo(ctx, opts)
	return sol, err
}

// AnalyzeWithCacheInfo grades a solution with caching and returns cache hit info.
func (r *Runner) AnalyzeWithCacheInfo(ctx context.Context, sol *solve.Solution, opts Options) (score.Report, bool, error) {
	r.applyLogger(&opts)

	data, err := json.Marshal(sol)
	if err != nil {
		return score.Report{}, false, fmt.Errorf("serialize solution for cache key: %w", err)
	}
	cacheKey := r.Keyer.ScoreKey(cache.Hash(data), opts.ScoreKeyOpts())

	// Try cache first
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var cached score.Report
		if err := json.Unmarshal(data, &cached); err == nil {
			observability.Cache().OnCacheHit(ctx, "score")
			return cached, true, nil // Cache hit
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "score")

	report := score.Analyze(&sol.Best, sol.Request.Room, opts.ScoreOptions(sol))

	// Cache the result
	if data, err := json.Marshal(report); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLScore)
		observability.Cache().OnCacheSet(ctx, "score", len(data))
	}

	return report, false, nil // Cache miss
}

// Analyze is a convenience wrapper that calls AnalyzeWithCacheInfo and discards the cache hit info.
func (r *Runner) Analyze(ctx context.Context, sol *solve.Solution, opts Options) (score.Report, error) {
	report, _, err := r.AnalyzeWithCacheInfo(ctx, sol, opts)
	return report, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, sol *solve.Solution, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	data, err := json.Marshal(sol)
	if err != nil {
		return nil, false, fmt.Errorf("serialize solution for cache key: %w", err)
	}
	solutionHash := cache.Hash(data)

	// Try to get all formats from cache (unless refresh requested)
	if !opts.Refresh {
		allCached := true
		artifacts := make(map[string][]byte)

		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(solutionHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}

		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil // All artifacts from cache
		}
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	rendered, err := Render(ctx, sol, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(solutionHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, sol *solve.Solution, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, sol, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
