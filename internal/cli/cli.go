// Package cli implements the roomplan command-line interface.
//
// This package provides commands for solving office furniture layouts,
// scoring and rendering solved plans, browsing the furniture catalog, and
// running the HTTP API server. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - solve: Compute a furniture layout for a room
//   - score: Grade a solved layout and print the criterion breakdown
//   - render: Generate SVG, PDF, PNG, JSON, CSV, or DOT artifacts
//   - pick: Interactively choose among ranked layout candidates
//   - plans: Manage saved plans
//   - serve: Run the HTTP API server
//   - cache: Manage the local result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/roomplan/pkg/buildinfo"
	"github.com/matzehuels/roomplan/pkg/cache"
	"github.com/matzehuels/roomplan/pkg/catalog"
	"github.com/matzehuels/roomplan/pkg/config"
	"github.com/matzehuels/roomplan/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "roomplan"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath  string
	catalogPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "roomplan",
		Short:        "Roomplan arranges office furniture in rectangular rooms",
		Long:         `Roomplan computes workstation layouts for rectangular offices, scores them across comfort and capacity criteria, and renders floor plans.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML config file (default: built-in)")
	root.PersistentFlags().StringVar(&c.catalogPath, "catalog", "", "path to a TOML furniture catalog (default: built-in)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.scoreCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.patternsCommand())
	root.AddCommand(c.plansCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// loadConfig resolves the run config from --config or the built-in default.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(c.configPath)
}

// loadCatalog resolves the furniture catalog from --catalog or the built-in
// default.
func (c *CLI) loadCatalog() (*catalog.Catalog, error) {
	if c.catalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(c.catalogPath)
}

// newRunner creates a pipeline runner for CLI use. With noCache the runner
// recomputes everything; otherwise results land in the XDG cache directory.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	cat, err := c.loadCatalog()
	if err != nil {
		return nil, err
	}
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cat, cfg, store, nil, c.Logger, 0), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/roomplan/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Flag Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// parseList splits a comma-separated flag value, dropping empty entries.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
