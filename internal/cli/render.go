package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roomplan/pkg/pipeline"
)

// renderCommand creates the render command for generating artifacts from a
// solved plan.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		formats string
		theme   string
		scale   int
		title   string
		noGrid  bool
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "render [solution.json]",
		Short: "Render a solved plan to SVG, PNG, PDF, JSON, CSV, or DOT",
		Long: `Render a solved plan to one or more artifact formats.

The render command takes a solution file (produced by 'solve') and
generates floor plan artifacts without re-running the solver:

  roomplan render plan.solution.json
  roomplan render plan.solution.json -f svg,png,csv
  roomplan render plan.solution.json -f dot             # circulation diagram
  roomplan render plan.solution.json --theme blueprint

PNG and PDF conversion require rsvg-convert on PATH. Artifacts are
cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sol, err := loadSolution(args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			opts := pipeline.Options{
				Request: sol.Request,
				Refresh: refresh,
				Formats: parseFormats(formats),
				Theme:   theme,
				Scale:   scale,
				Title:   title,
				NoGrid:  noGrid,
				Logger:  c.Logger,
			}

			artifacts, cached, err := runner.RenderWithCacheInfo(cmd.Context(), sol, opts)
			if err != nil {
				return err
			}

			base := output
			if base == "" {
				base = strings.TrimSuffix(args[0], ".json")
				base = strings.TrimSuffix(base, ".solution")
			}

			paths, err := writeArtifacts(base, artifacts)
			if err != nil {
				return err
			}

			printSuccess("Rendered %d artifact(s)", len(paths))
			for _, p := range paths {
				printFile(p)
			}
			printStats(sol.Best.SeatsPlaced, len(sol.Best.Items), 0, cached)
			if hasFormat(opts.Formats, pipeline.FormatSVG) {
				printNewline()
				printNextStep("Open", filepath.Clean(base+".svg"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: derived from input)")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "artifact format(s): svg (default), png, pdf, json, csv, dot (comma-separated)")
	cmd.Flags().StringVar(&theme, "theme", "", "render theme: default, blueprint")
	cmd.Flags().IntVar(&scale, "scale", 0, "render scale in pixels per meter")
	cmd.Flags().StringVar(&title, "title", "", "floor plan title")
	cmd.Flags().BoolVar(&noGrid, "no-grid", false, "omit the background grid")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-render even on a cache hit")

	return cmd
}

// hasFormat reports whether the format list contains format.
func hasFormat(formats []string, format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}
