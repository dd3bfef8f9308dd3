package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/roomplan/pkg/plan"
	"github.com/matzehuels/roomplan/pkg/solve"
)

// WriteSolution encodes a solution as indented JSON and writes it to w.
// The output includes the request, forbidden zones, the winning layout,
// every candidate, and the ranking.
// This format can be re-imported with [ReadSolution] for round-trip processing.
func WriteSolution(sol *solve.Solution, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sol); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportSolution writes a solution to a JSON file at path.
// This is a convenience wrapper around [WriteSolution] for file-based output.
func ExportSolution(sol *solve.Solution, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSolution(sol, f)
}

// WriteRequest encodes a request as indented JSON and writes it to w.
func WriteRequest(req plan.Request, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(req); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportRequest writes a request to a JSON file at path. Useful for
// turning a set of flags into a reusable room description.
func ExportRequest(req plan.Request, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteRequest(req, f)
}
