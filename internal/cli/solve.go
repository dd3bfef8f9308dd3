package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roomplan/pkg/io"
	"github.com/matzehuels/roomplan/pkg/pipeline"
	"github.com/matzehuels/roomplan/pkg/plan"
	"github.com/matzehuels/roomplan/pkg/score"
	"github.com/matzehuels/roomplan/pkg/solve"
)

// solveFlags holds the command-line flags for the solve command.
type solveFlags struct {
	room      string // room dimensions "WxD" in millimeters
	door      string // door spec "SIDE[:WIDTH[@OFFSET]]"
	seats     int
	wsTypes   string // comma-separated desk type keys
	equipment string // comma-separated equipment keys
	priority  string
	preset    string
	patterns  string // comma-separated pattern filter
	windows   string // comma-separated window sides

	output  string
	formats string
	theme   string
	scale   int
	title   string
	noGrid  bool
	noCache bool
	refresh bool
}

// solveCommand creates the solve command for computing furniture layouts.
func (c *CLI) solveCommand() *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "solve [request.json]",
		Short: "Compute a furniture layout for a room",
		Long: `Compute a furniture layout for a room.

The room can be described either by a request JSON file or by flags:

  roomplan solve request.json
  roomplan solve --room 5000x4000 --door L --seats 8

The solver tries every placement pattern compatible with the door wall,
ranks the results, and writes the solved plan plus any requested render
artifacts. Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := resolveRequest(args, &flags)
			if err != nil {
				return err
			}
			return c.runSolve(cmd.Context(), req, &flags)
		},
	}

	cmd.Flags().StringVar(&flags.room, "room", "", "room dimensions in mm, e.g. 5000x4000")
	cmd.Flags().StringVar(&flags.door, "door", "", "door wall and size, e.g. L, T:850, B:850@1200")
	cmd.Flags().IntVar(&flags.seats, "seats", 0, "number of seats to place")
	cmd.Flags().StringVar(&flags.wsTypes, "ws", "", "acceptable desk types in preference order (comma-separated)")
	cmd.Flags().StringVar(&flags.equipment, "equipment", "", "equipment keys to place (comma-separated)")
	cmd.Flags().StringVar(&flags.priority, "priority", "", "placement priority: equipment, desk, desk_1200")
	cmd.Flags().StringVar(&flags.preset, "preset", "", "scoring preset: "+strings.Join(score.PresetNames(), ", "))
	cmd.Flags().StringVar(&flags.patterns, "patterns", "", "restrict to these placement patterns (comma-separated)")
	cmd.Flags().StringVar(&flags.windows, "windows", "", "glazed walls, e.g. T,R")

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output base path (default: plan)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "artifact format(s): svg (default), png, pdf, json, csv, dot (comma-separated)")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "render theme: default, blueprint")
	cmd.Flags().IntVar(&flags.scale, "scale", 0, "render scale in pixels per meter")
	cmd.Flags().StringVar(&flags.title, "title", "", "floor plan title")
	cmd.Flags().BoolVar(&flags.noGrid, "no-grid", false, "omit the background grid")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "recompute even on a cache hit")

	return cmd
}

// resolveRequest builds the solve request from a JSON file or from flags.
// A file argument wins; flags describe the room inline.
func resolveRequest(args []string, flags *solveFlags) (plan.Request, error) {
	if len(args) == 1 {
		return io.ImportRequest(args[0])
	}

	room, err := parseRoom(flags.room)
	if err != nil {
		return plan.Request{}, err
	}
	door, err := parseDoor(flags.door)
	if err != nil {
		return plan.Request{}, err
	}
	windows, err := parseSides(flags.windows)
	if err != nil {
		return plan.Request{}, err
	}

	return plan.Request{
		Room:      room,
		Door:      door,
		Seats:     flags.seats,
		WSTypes:   parseList(flags.wsTypes),
		Equipment: parseList(flags.equipment),
		Priority:  flags.priority,
		Preset:    flags.preset,
		Patterns:  parseList(flags.patterns),
		Windows:   windows,
	}, nil
}

// runSolve executes the pipeline and writes the solution plus artifacts.
func (c *CLI) runSolve(ctx context.Context, req plan.Request, flags *solveFlags) error {
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{
		Request: req,
		Refresh: flags.refresh,
		Preset:  flags.preset,
		Formats: parseFormats(flags.formats),
		Theme:   flags.theme,
		Scale:   flags.scale,
		Title:   flags.title,
		NoGrid:  flags.noGrid,
		Logger:  c.Logger,
	}

	spinner := newSpinnerWithContext(ctx, "Arranging furniture...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Solve failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := flags.output
	if base == "" {
		base = "plan"
	}

	solutionPath := base + ".solution.json"
	if err := io.ExportSolution(result.Solution, solutionPath); err != nil {
		return fmt.Errorf("write solution %s: %w", solutionPath, err)
	}

	paths, err := writeArtifacts(base, result.Artifacts)
	if err != nil {
		return err
	}

	best := &result.Solution.Best
	if best.OK {
		printSuccess("Placed %d/%d seats with %s", best.SeatsPlaced, best.SeatsRequired, best.Pattern)
	} else {
		printWarning("Partial layout: %d/%d seats with %s", best.SeatsPlaced, best.SeatsRequired, best.Pattern)
	}
	printFile(solutionPath)
	for _, p := range paths {
		printFile(p)
	}
	printStats(best.SeatsPlaced, len(best.Items), result.Stats.Candidates, result.CacheInfo.SolveHit)
	printNewline()
	printGrade(result.Report.Grade)
	printNewline()
	printNextStep("Inspect the ranking", "roomplan pick "+solutionPath)

	return nil
}

// writeArtifacts writes each rendered artifact next to the base path, named
// by its format extension. Returns the written paths sorted by format.
func writeArtifacts(base string, artifacts map[string][]byte) ([]string, error) {
	formats := make([]string, 0, len(artifacts))
	for format := range artifacts {
		formats = append(formats, format)
	}
	sort.Strings(formats)

	var paths []string
	for _, format := range formats {
		path := base + "." + format
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, fmt.Errorf("write artifact %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// =============================================================================
// Flag Parsing
// =============================================================================

// parseRoom parses "WxD" in millimeters into a Room.
func parseRoom(s string) (plan.Room, error) {
	if s == "" {
		return plan.Room{}, fmt.Errorf("missing --room (e.g. --room 5000x4000) or a request file")
	}
	w, d, ok := strings.Cut(s, "x")
	if !ok {
		return plan.Room{}, fmt.Errorf("invalid room %q: want WxD in millimeters", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return plan.Room{}, fmt.Errorf("invalid room width %q", w)
	}
	depth, err := strconv.Atoi(d)
	if err != nil {
		return plan.Room{}, fmt.Errorf("invalid room depth %q", d)
	}
	return plan.Room{W: width, D: depth}, nil
}

// parseDoor parses "SIDE[:WIDTH[@OFFSET]]" into a Door. An empty spec
// returns the zero Door, which centers a default-width door on the top wall.
func parseDoor(s string) (plan.Door, error) {
	if s == "" {
		return plan.Door{}, nil
	}

	sideStr, rest, hasSize := strings.Cut(s, ":")
	side, err := plan.ParseSide(sideStr)
	if err != nil {
		return plan.Door{}, fmt.Errorf("invalid door %q: %w", s, err)
	}
	door := plan.Door{Side: side}
	if !hasSize {
		return door, nil
	}

	widthStr, offsetStr, hasOffset := strings.Cut(rest, "@")
	door.Width, err = strconv.Atoi(widthStr)
	if err != nil {
		return plan.Door{}, fmt.Errorf("invalid door width %q", widthStr)
	}
	if hasOffset {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return plan.Door{}, fmt.Errorf("invalid door offset %q", offsetStr)
		}
		door.Offset = &offset
	}
	return door, nil
}

// parseSides parses a comma-separated side list ("T,R") into Side values.
func parseSides(s string) ([]plan.Side, error) {
	var sides []plan.Side
	for _, token := range parseList(s) {
		side, err := plan.ParseSide(token)
		if err != nil {
			return nil, fmt.Errorf("invalid wall %q: %w", token, err)
		}
		sides = append(sides, side)
	}
	return sides, nil
}

// loadSolution reads a solved plan from disk for score/render/pick.
func loadSolution(path string) (*solve.Solution, error) {
	sol, err := io.ImportSolution(path)
	if err != nil {
		return nil, fmt.Errorf("load solution %s: %w", filepath.Clean(path), err)
	}
	return sol, nil
}
