package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/roomplan/pkg/errors"
	"github.com/matzehuels/roomplan/pkg/plan"
	"github.com/matzehuels/roomplan/pkg/solve"
)

// ReadRequest decodes a JSON room description from r into a request.
//
// The input must be a JSON object in the [plan.Request] shape; unknown
// fields are an error so typos in room files surface instead of silently
// falling back to defaults. ReadRequest checks that room dimensions are
// present; the configured limits are enforced later by the solver.
//
// The returned request is independent of r and can be modified safely
// after ReadRequest returns. ReadRequest does not close r.
func ReadRequest(r io.Reader) (plan.Request, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var req plan.Request
	if err := dec.Decode(&req); err != nil {
		return plan.Request{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}
	if req.Room.W <= 0 || req.Room.D <= 0 {
		return plan.Request{}, errors.New(errors.ErrCodeInvalidInput, "room dimensions are required")
	}
	return req, nil
}

// ImportRequest reads a JSON file at path and returns the decoded request.
//
// ImportRequest opens the file, decodes it using [ReadRequest], and closes
// the file. Errors wrap the underlying cause with the file path for
// context.
func ImportRequest(path string) (plan.Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return plan.Request{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadRequest(f)
}

// ReadSolution decodes a JSON solution from r, as written by
// [WriteSolution]. A solution without a solved request is an error, which
// catches the common mistake of feeding a request file where a solution
// file is expected.
func ReadSolution(r io.Reader) (*solve.Solution, error) {
	var sol solve.Solution
	if err := json.NewDecoder(r).Decode(&sol); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode solution")
	}
	if sol.Request.Room.W <= 0 || sol.Request.Room.D <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "solution has no solved request")
	}
	return &sol, nil
}

// ImportSolution reads a JSON file at path and returns the decoded
// solution.
func ImportSolution(path string) (*solve.Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSolution(f)
}
