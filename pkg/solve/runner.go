package solve

import (
	"context"
	"sync"

	"github.com/matzehuels/roomplan/pkg/arrange"
	"github.com/matzehuels/roomplan/pkg/catalog"
	"github.com/matzehuels/roomplan/pkg/plan"
)

// runState accumulates candidates and the tuple-best layout across the
// plan families of one solve call.
type runState struct {
	solver *Solver
	req    *plan.Request
	blocks plan.Blocks

	candidates []plan.Result
	best       plan.Result
	haveBest   bool
}

// job is one generator invocation: a desk type and the pattern to run.
type job struct {
	wsType string
	gen    func(arrange.Params) plan.Result
}

// wallPlan runs the wall-pattern family: per desk type, the generators
// matching the door side, stopping early once an equipment-priority run is
// fully satisfied.
func (r *runState) wallPlan(ctx context.Context, wsTypes []string) error {
	for _, wsType := range wsTypes {
		jobs, err := r.wallJobs(wsType)
		if err != nil {
			return err
		}
		results, err := r.execute(ctx, jobs)
		if err != nil {
			return err
		}
		bestForWS, ok := r.commit(results)
		if !ok {
			continue
		}

		r.solver.logger.Debug("wall plan candidate",
			"ws", wsType, "pattern", bestForWS.Pattern,
			"seats", bestForWS.SeatsPlaced, "ok", bestForWS.OK)

		// Equipment-priority runs stop at the first fully satisfied
		// layout; desk-priority runs keep looking for bigger desks.
		if bestForWS.OK && r.priority() == plan.PriorityEquipment &&
			bestForWS.EquipmentPlaced >= len(r.req.Equipment) {
			r.best = bestForWS
			break
		}
	}
	return nil
}

// wallJobs picks the wall generators for the door side: a side door sends
// desks to the long walls walking away from the door, a top or bottom door
// fills the opposite wall, and an unspecified door side tries all four
// wall arrangements.
func (r *runState) wallJobs(wsType string) ([]job, error) {
	doorSide := r.req.Door.Side
	switch doorSide {
	case plan.SideLeft, plan.SideRight:
		startFrom := plan.SideLeft
		if doorSide == plan.SideLeft {
			startFrom = plan.SideRight
		}
		return []job{{wsType, func(p arrange.Params) plan.Result {
			return arrange.DoubleWallTopBottom(p, startFrom)
		}}}, nil
	case plan.SideTop, plan.SideBottom:
		side := doorSide.Opposite()
		startFrom := plan.SideLeft
		if r.req.Door.Offset != nil && *r.req.Door.Offset < r.req.Room.W/2 {
			startFrom = plan.SideRight
		}
		return []job{{wsType, func(p arrange.Params) plan.Result {
			return arrange.SingleWallTopBottom(p, side, startFrom)
		}}}, nil
	default:
		return []job{
			{wsType, arrange.DoubleWall},
			{wsType, func(p arrange.Params) plan.Result {
				return arrange.DoubleWallTopBottom(p, plan.SideLeft)
			}},
			{wsType, func(p arrange.Params) plan.Result {
				return arrange.SingleWall(p, plan.SideLeft)
			}},
			{wsType, func(p arrange.Params) plan.Result {
				return arrange.SingleWall(p, plan.SideRight)
			}},
		}, nil
	}
}

// batch runs one generator across the desk-type candidates.
func (r *runState) batch(ctx context.Context, wsTypes []string, gen func(arrange.Params) plan.Result) error {
	jobs := make([]job, len(wsTypes))
	for i, wsType := range wsTypes {
		jobs[i] = job{wsType: wsType, gen: gen}
	}
	results, err := r.execute(ctx, jobs)
	if err != nil {
		return err
	}
	r.commit(results)
	return nil
}

// execute fans the jobs out over the worker pool and returns the results
// in job order. Equipment placement runs inside each worker so a candidate
// arrives complete.
func (r *runState) execute(ctx context.Context, jobs []job) ([]plan.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]plan.Result, len(jobs))
	errs := make([]error, len(jobs))
	sem := make(chan struct{}, r.solver.workers)
	var wg sync.WaitGroup

	for i, j := range jobs {
		wg.Add(1)
		go func(i int, j job) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i], errs[i] = r.runJob(j)
		}(i, j)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// runJob resolves the desk spec, runs the generator, and adds equipment.
func (r *runState) runJob(j job) (plan.Result, error) {
	unit, err := r.solver.catalog.Lookup(j.wsType)
	if err != nil {
		return plan.Result{}, err
	}

	params := arrange.NewParams(r.req.Room, j.wsType, unit, r.req.Seats, 0, r.blocks, r.solver.config)
	res := j.gen(params)

	if len(r.req.Equipment) > 0 {
		res, err = arrange.PlaceEquipment(res, arrange.EquipmentParams{
			Room:       r.req.Room,
			Config:     r.solver.config,
			Catalog:    r.solver.catalog,
			Equipment:  r.req.Equipment,
			Blocks:     r.blocks.Rects,
			DoorSide:   r.blocks.DoorSide,
			DoorOffset: r.req.Door.Offset,
			XOverride:  r.req.EquipmentX,
			Clearance:  0,
		})
		if err != nil {
			return plan.Result{}, err
		}
	}
	return res, nil
}

// commit appends the batch results to the candidate list and updates the
// tuple-best. It returns the batch's own best for early-exit checks; ok is
// false for an empty batch.
func (r *runState) commit(results []plan.Result) (plan.Result, bool) {
	if len(results) == 0 {
		return plan.Result{}, false
	}
	r.candidates = append(r.candidates, results...)

	bestForBatch := results[0]
	anyOK := false
	for _, res := range results {
		if res.OK {
			anyOK = true
		}
	}
	for _, res := range results[1:] {
		if anyOK {
			if priorityTuple(&res, r.priority()).greater(priorityTuple(&bestForBatch, r.priority())) {
				bestForBatch = res
			}
		} else if fallbackTuple(&res).greater(fallbackTuple(&bestForBatch)) {
			bestForBatch = res
		}
	}

	if !r.haveBest || priorityTuple(&bestForBatch, r.priority()).greater(priorityTuple(&r.best, r.priority())) {
		r.best = bestForBatch
		r.haveBest = true
	}
	return bestForBatch, true
}

func (r *runState) priority() string {
	if r.req.Priority == "" {
		return plan.PriorityEquipment
	}
	return r.req.Priority
}

// tuple is a lexicographic comparison key; earlier fields dominate.
type tuple [4]int

func (t tuple) greater(o tuple) bool {
	for i := range t {
		if t[i] != o[i] {
			return t[i] > o[i]
		}
	}
	return false
}

// priorityTuple ranks a candidate under the requested priority: desk
// priorities prefer desk area over equipment, the default prefers
// equipment coverage.
func priorityTuple(res *plan.Result, priority string) tuple {
	ok := 0
	if res.OK {
		ok = 1
	}
	area := catalog.DeskArea(res.WSType)
	if priority == plan.PriorityDesk || priority == plan.PriorityDesk1200 {
		return tuple{ok, res.SeatsPlaced, area, res.EquipmentPlaced}
	}
	return tuple{ok, res.SeatsPlaced, res.EquipmentPlaced, area}
}

// fallbackTuple ranks candidates when none is feasible: most seats, then
// most equipment.
func fallbackTuple(res *plan.Result) tuple {
	return tuple{res.SeatsPlaced, res.EquipmentPlaced, 0, 0}
}
