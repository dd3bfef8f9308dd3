package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/roomplan/pkg/cache"
	"github.com/matzehuels/roomplan/pkg/errors"
	"github.com/matzehuels/roomplan/pkg/plan"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"csv", false},
		{"dot", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

// Client-supplied formats and themes come straight off API requests, so
// rejections have to carry the INVALID_FORMAT code for the HTTP layer to
// turn them into a 400 instead of a 500.
func TestValidateFormatErrorCode(t *testing.T) {
	if err := ValidateFormat("bmp"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat error = %v, want code %s", err, errors.ErrCodeInvalidFormat)
	}
	if err := ValidateTheme("neon"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ValidateTheme error = %v, want code %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateTheme(t *testing.T) {
	tests := []struct {
		theme   string
		wantErr bool
	}{
		{"default", false},
		{"blueprint", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateTheme(tt.theme)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTheme(%q) error = %v, wantErr %v", tt.theme, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{
		Request: plan.Request{Room: plan.Room{W: 5000, D: 4000}, Seats: 4},
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("Valid options should pass: %v", err)
	}

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should default to [svg], got %v", opts.Formats)
	}
	if opts.Theme != DefaultTheme {
		t.Errorf("Theme should default to %q, got %q", DefaultTheme, opts.Theme)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func testOptions(seats int, formats ...string) Options {
	return Options{
		Request: plan.Request{
			Room:  plan.Room{W: 5000, D: 4000},
			Door:  plan.Door{Side: plan.SideLeft},
			Seats: seats,
		},
		Formats: formats,
	}
}

func TestExecuteFullPipeline(t *testing.T) {
	runner := NewRunner(nil, nil, nil, nil, nil, 0)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), testOptions(4, "svg", "json", "csv", "dot"))
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Solution == nil || !result.Solution.Best.OK {
		t.Fatal("Execute() did not solve the room")
	}
	if result.SolutionHash == "" {
		t.Error("SolutionHash is empty")
	}
	if result.Report.Grade == "" {
		t.Error("Report was not computed")
	}
	if result.Stats.SeatsPlaced != 4 || result.Stats.Candidates == 0 {
		t.Errorf("Stats = %+v", result.Stats)
	}

	for _, format := range []string{"svg", "json", "csv", "dot"} {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("Artifacts[%q] is empty", format)
		}
	}
	if !strings.Contains(string(result.Artifacts["svg"]), "<svg") {
		t.Error("svg artifact is not an SVG document")
	}
	if !strings.Contains(string(result.Artifacts["dot"]), "digraph") {
		t.Error("dot artifact is not a DOT graph")
	}
}

func TestExecuteCachesStages(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	runner := NewRunner(nil, nil, fc, nil, nil, 0)
	defer runner.Close()

	opts := testOptions(4, "svg", "json")

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() first run error: %v", err)
	}
	if first.CacheInfo.SolveHit || first.CacheInfo.ScoreHit || first.CacheInfo.RenderHit {
		t.Errorf("first run hit the cache: %+v", first.CacheInfo)
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() second run error: %v", err)
	}
	if !second.CacheInfo.SolveHit || !second.CacheInfo.ScoreHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run missed the cache: %+v", second.CacheInfo)
	}
	if string(first.Artifacts["svg"]) != string(second.Artifacts["svg"]) {
		t.Error("cached svg differs from rendered svg")
	}

	// Refresh bypasses the solve cache.
	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() refresh run error: %v", err)
	}
	if third.CacheInfo.SolveHit {
		t.Error("refresh run hit the solve cache")
	}
}

func TestExecuteInvalidFormat(t *testing.T) {
	runner := NewRunner(nil, nil, nil, nil, nil, 0)
	defer runner.Close()

	if _, err := runner.Execute(context.Background(), testOptions(4, "tiff")); err == nil {
		t.Error("Execute() accepted an unknown format")
	}
}

func TestAnalyzeOverridesPreset(t *testing.T) {
	runner := NewRunner(nil, nil, nil, nil, nil, 0)
	defer runner.Close()

	opts := testOptions(4, "svg")
	sol, err := runner.Solve(context.Background(), opts)
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}

	base, err := runner.Analyze(context.Background(), sol, opts)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	opts.Weights = map[string]float64{"seat_count": 10}
	weighted, err := runner.Analyze(context.Background(), sol, opts)
	if err != nil {
		t.Fatalf("Analyze() with weights error: %v", err)
	}

	if base.TotalScore == weighted.TotalScore {
		t.Error("weight override did not change the total score")
	}
}

func TestRenderScaleChangesArtifact(t *testing.T) {
	runner := NewRunner(nil, nil, nil, nil, nil, 0)
	defer runner.Close()

	opts := testOptions(4, "svg")
	sol, err := runner.Solve(context.Background(), opts)
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}

	small, err := runner.Render(context.Background(), sol, opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	opts.Scale = 200
	large, err := runner.Render(context.Background(), sol, opts)
	if err != nil {
		t.Fatalf("Render() scaled error: %v", err)
	}

	if string(small["svg"]) == string(large["svg"]) {
		t.Error("scale option did not change the svg artifact")
	}
}
