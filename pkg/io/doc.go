// Package io provides JSON import and export for solve requests and
// solutions.
//
// # Overview
//
// This package enables serialization of room descriptions and solved
// layouts to and from JSON files. The format is designed for:
//
//   - Describing rooms in files instead of command-line flags
//   - Integration with external tools that produce or consume layouts
//   - Round-trip preservation: solve, export, and re-import identically
//
// # Request Format
//
// A request file is the JSON encoding of [plan.Request]:
//
//	{
//	  "room": {"w": 5000, "d": 4000},
//	  "door": {"side": "L", "offset": 1575},
//	  "seats": 8,
//	  "equipment": ["storage_M", "mfp"]
//	}
//
// All dimensions are millimeters. Only the room and seat count are
// required; every other field has a solver default.
//
// # Import
//
// Use [ImportRequest] to read a request from a file path, or [ReadRequest]
// to read from any io.Reader:
//
//	req, err := io.ImportRequest("room.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions validate the JSON structure and the presence of room
// dimensions. Full limit checks happen inside the solver, which owns the
// configured bounds.
//
// # Export
//
// Use [ExportSolution] to write a solution to a file, or [WriteSolution]
// to write to any io.Writer:
//
//	err := io.ExportSolution(sol, "layout.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The export includes the full solution: the request, the forbidden
// zones, the winning layout, every candidate, and the ranking. This
// enables full round-trip fidelity via [ImportSolution]: re-score or
// re-render a layout without solving again.
//
// [plan.Request]: github.com/matzehuels/roomplan/pkg/plan.Request
package io
