// Package pkg provides the core libraries for roomplan office layout planning.
//
// # Overview
//
// Roomplan arranges desks, chairs, storage, and shared equipment in
// rectangular office rooms, then scores and renders the result. The pkg
// directory is organized into four main areas:
//
//  1. Domain core - geometry, obstacle model, placement patterns, scoring
//  2. Drivers - the solver fan-out and the staged pipeline
//  3. Infrastructure - caching, plan storage, configuration, catalog
//  4. Output - SVG/PDF/PNG floor plans, JSON/CSV export, circulation diagrams
//
// # Architecture
//
// The typical data flow through roomplan:
//
//	plan.Request (room, door, seats, furniture preferences)
//	         ↓
//	    [plan] package (forbidden-zone model from door and pillars)
//	         ↓
//	    [arrange] package (constructive placement patterns)
//	         ↓
//	    [score] package (criterion breakdown + ranking)
//	         ↓
//	    [render] package (floor plan artifacts)
//
// The [solve] package drives arrange across every compatible pattern and
// desk type concurrently and keeps the ranked candidates. The [pipeline]
// package wraps solve, score, and render into cached stages shared by the
// CLI and the HTTP API.
//
// # Quick Start
//
// Solve and render a small office:
//
//	solver := solve.New(catalog.Default(), config.Default(), nil, 0)
//	sol, err := solver.Solve(ctx, plan.Request{
//	    Room:  plan.Room{W: 5000, D: 4000},
//	    Door:  plan.Door{Side: plan.SideLeft},
//	    Seats: 8,
//	})
//	if err != nil {
//	    return err
//	}
//	svg := render.RenderSVG(sol.Request.Room, sol.Blocks, &sol.Best)
//
// # Units and Coordinates
//
// All dimensions are integer millimeters. The coordinate origin is the
// room's top-left corner with x growing right and y growing down, matching
// the SVG output.
package pkg
