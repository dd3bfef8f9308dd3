package solve

import (
	"context"
	"io"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/roomplan/pkg/arrange"
	"github.com/matzehuels/roomplan/pkg/catalog"
	"github.com/matzehuels/roomplan/pkg/config"
	"github.com/matzehuels/roomplan/pkg/errors"
	"github.com/matzehuels/roomplan/pkg/plan"
	"github.com/matzehuels/roomplan/pkg/score"
)

// DefaultWorkers bounds the concurrent generator runs per batch.
const DefaultWorkers = 4

// Solver runs layout requests against one catalog and configuration.
type Solver struct {
	catalog *catalog.Catalog
	config  *config.Config
	logger  *log.Logger
	workers int
}

// New creates a solver. A nil logger discards all output; workers <= 0
// takes DefaultWorkers.
func New(cat *catalog.Catalog, cfg *config.Config, logger *log.Logger, workers int) *Solver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Solver{catalog: cat, config: cfg, logger: logger, workers: workers}
}

// Solution is the complete outcome of one solve run.
type Solution struct {
	RunID      string          `json:"run_id" bson:"run_id"`
	Request    plan.Request    `json:"request" bson:"request"`
	Blocks     plan.Blocks     `json:"blocks" bson:"blocks"`
	Best       plan.Result     `json:"best" bson:"best"`
	BestScore  float64         `json:"best_score" bson:"best_score"`
	Breakdown  score.Breakdown `json:"breakdown" bson:"breakdown"`
	Candidates []plan.Result   `json:"candidates" bson:"candidates"`
	Ranking    []score.Ranked  `json:"ranking" bson:"ranking"`
}

// ScoreOptions returns the scoring context matching the solved request.
func (s *Solution) ScoreOptions(cfg *config.Config) score.Options {
	opts := score.Options{
		Preset:  s.Request.Preset,
		DoorTip: &s.Blocks.DoorTip,
		Windows: s.Request.Windows,
	}
	if cfg != nil && len(cfg.Weights) > 0 {
		w := score.FromMap(cfg.Weights)
		opts.Weights = &w
	}
	return opts
}

// Solve validates the request, runs every admissible pattern over the desk
// candidates, and returns the solution. Infeasibility is never an error:
// when no candidate meets the quota the best partial layout is returned
// with Best.OK=false.
func (s *Solver) Solve(ctx context.Context, req plan.Request) (*Solution, error) {
	if err := req.Validate(s.config); err != nil {
		return nil, err
	}
	if err := s.checkKeys(&req); err != nil {
		return nil, err
	}

	blocks, err := plan.BuildBlocks(req.Room, req.Door, req.Pillars, s.config)
	if err != nil {
		return nil, err
	}

	families, err := patternFamilies(req.Patterns)
	if err != nil {
		return nil, err
	}

	wallTypes, faceTypes := s.deskCandidates(&req)
	run := &runState{
		solver: s,
		req:    &req,
		blocks: blocks,
	}

	if families.wall {
		if err := run.wallPlan(ctx, wallTypes); err != nil {
			return nil, err
		}
	}
	if families.face {
		if err := run.batch(ctx, faceTypes, func(p arrange.Params) plan.Result {
			return arrange.FaceToFace(p)
		}); err != nil {
			return nil, err
		}
	}
	if families.mixed {
		wallSide := plan.SideLeft
		if blocks.DoorSide == plan.SideLeft || blocks.DoorSide == plan.SideTop {
			wallSide = plan.SideRight
		}
		wallSeats := min(2, req.Seats)
		if err := run.batch(ctx, faceTypes, func(p arrange.Params) plan.Result {
			return arrange.Mixed(p, wallSide, wallSeats)
		}); err != nil {
			return nil, err
		}
	}

	sol := &Solution{
		RunID:      uuid.NewString(),
		Request:    req,
		Blocks:     blocks,
		Best:       run.best,
		Candidates: run.candidates,
	}
	if len(run.candidates) == 0 {
		// Every family was filtered out; report the empty outcome.
		sol.Best = plan.Result{SeatsRequired: req.Seats}
		return sol, nil
	}

	opts := sol.ScoreOptions(s.config)
	sol.Ranking = score.CompareLayouts(run.candidates, req.Room, opts)
	sol.BestScore, sol.Breakdown = score.Score(&sol.Best, req.Room, opts)

	s.logger.Info("solve finished",
		"run", sol.RunID,
		"pattern", sol.Best.Pattern,
		"seats", sol.Best.SeatsPlaced,
		"ok", sol.Best.OK,
		"candidates", len(sol.Candidates))
	return sol, nil
}

// checkKeys fails fast on catalog keys the run would need later. Desk keys
// must name desks; equipment keys may be storage, equipment, or meeting
// pieces.
func (s *Solver) checkKeys(req *plan.Request) error {
	for _, key := range req.WSTypes {
		spec, err := s.catalog.Lookup(key)
		if err != nil {
			return err
		}
		if spec.Kind != plan.KindDesk {
			return errors.New(errors.ErrCodeInvalidInput, "%q is not a desk type", key)
		}
	}
	for _, key := range req.Equipment {
		spec, err := s.catalog.Lookup(key)
		if err != nil {
			return err
		}
		if spec.Kind == plan.KindDesk {
			return errors.New(errors.ErrCodeInvalidInput, "%q is a desk, not equipment", key)
		}
	}
	return nil
}

// deskCandidates resolves the desk-type preference lists. An explicit
// request list is used verbatim for every family; defaults depend on the
// priority and skip keys absent from the catalog.
func (s *Solver) deskCandidates(req *plan.Request) (wall, face []string) {
	if len(req.WSTypes) > 0 {
		return req.WSTypes, req.WSTypes
	}
	if req.Priority == plan.PriorityDesk1200 {
		wall = []string{"ws_1200x600", "ws_1200x700"}
		face = []string{"ws_1200x600", "ws_1200x700"}
	} else {
		wall = []string{"ws_1200x600", "ws_1000x600", "ws_1200x700"}
		face = []string{"ws_1000x600", "ws_1200x600", "ws_1200x700"}
	}
	return s.known(wall), s.known(face)
}

func (s *Solver) known(keys []string) []string {
	var out []string
	for _, k := range keys {
		if s.catalog.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// families tracks which plan families a pattern filter admits.
type families struct {
	wall  bool
	face  bool
	mixed bool
}

// wallPatternNames are the result pattern names produced by the wall
// generators; any of them selects the wall family.
var wallPatternNames = map[string]bool{
	arrange.PatternDoubleWall:          true,
	arrange.PatternDoubleWallTopBottom: true,
	"single_wall_L":                    true,
	"single_wall_R":                    true,
	"single_wall_T":                    true,
	"single_wall_B":                    true,
}

// PatternNames returns every name a request's pattern filter accepts,
// sorted.
func PatternNames() []string {
	names := make([]string, 0, len(wallPatternNames)+2)
	for name := range wallPatternNames {
		names = append(names, name)
	}
	names = append(names, arrange.PatternFaceToFace, arrange.PatternMixed)
	sort.Strings(names)
	return names
}

// patternFamilies interprets the request's pattern filter. An empty filter
// runs everything; unknown names are an error.
func patternFamilies(filter []string) (families, error) {
	if len(filter) == 0 {
		return families{wall: true, face: true, mixed: true}, nil
	}
	var f families
	for _, name := range filter {
		switch {
		case wallPatternNames[name]:
			f.wall = true
		case name == arrange.PatternFaceToFace:
			f.face = true
		case name == arrange.PatternMixed:
			f.mixed = true
		default:
			return families{}, errors.New(errors.ErrCodeInvalidPattern, "unknown pattern %q", name)
		}
	}
	return f, nil
}
