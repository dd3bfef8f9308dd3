// Package solve drives the layout engine end to end: it validates a
// request, builds the obstacle set, fans the pattern generators out over
// the desk-type candidates, places equipment on every candidate, and picks
// the best layout by the requested priority.
//
// # Plans
//
// One solve run produces up to three plan families, mirroring the classic
// A/B/C comparison:
//
//   - the wall plan, from the wall generator matching the door side
//   - the face-to-face plan
//   - the mixed plan (two wall seats, the rest face to face)
//
// Every candidate layout is kept on the [Solution] so callers can rank,
// render, or offer the full set interactively.
//
// # Selection
//
// Candidates are compared by a lexicographic tuple: feasibility first,
// then seats placed, then desk area or equipment placed depending on the
// priority token. The weighted multi-criteria ranking is computed on the
// side and carried on the Solution; it informs callers but does not drive
// selection.
//
// # Concurrency
//
// Generators are pure functions, so the per-desk-type pattern batch runs
// concurrently over a small worker pool. Results are collected in input
// order; a solve with the same request always returns the same solution.
package solve
