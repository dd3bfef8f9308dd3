package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/roomplan/pkg/cache"
	"github.com/matzehuels/roomplan/pkg/errors"
	"github.com/matzehuels/roomplan/pkg/observability"
	"github.com/matzehuels/roomplan/pkg/pipeline"
	"github.com/matzehuels/roomplan/pkg/plan"
	"github.com/matzehuels/roomplan/pkg/score"
	"github.com/matzehuels/roomplan/pkg/solve"
	"github.com/matzehuels/roomplan/pkg/store"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// solveRequest is the POST /solve body.
type solveRequest struct {
	Request plan.Request       `json:"request"`
	Preset  string             `json:"preset,omitempty"`
	Weights map[string]float64 `json:"weights,omitempty"`
	Refresh bool               `json:"refresh,omitempty"`
}

// solveResponse pairs the solution with its graded report.
type solveResponse struct {
	Solution     *solve.Solution    `json:"solution"`
	SolutionHash string             `json:"solution_hash"`
	Report       score.Report       `json:"report"`
	CacheInfo    pipeline.CacheInfo `json:"cache_info"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var body solveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode solve request"))
		return
	}

	opts := pipeline.Options{
		Request: body.Request,
		Preset:  body.Preset,
		Weights: body.Weights,
		Refresh: body.Refresh,
		Logger:  s.logger,
	}

	sol, solveHit, err := s.runner.SolveWithCacheInfo(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	report, scoreHit, err := s.runner.AnalyzeWithCacheInfo(r.Context(), sol, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := solveResponse{
		Solution:  sol,
		Report:    report,
		CacheInfo: pipeline.CacheInfo{SolveHit: solveHit, ScoreHit: scoreHit},
	}
	if data, err := json.Marshal(sol); err == nil {
		resp.SolutionHash = cache.Hash(data)
	}
	writeJSON(w, http.StatusOK, resp)
}

// scoreRequest is the POST /score body: a previously solved layout plus
// optional profile overrides.
type scoreRequest struct {
	Solution *solve.Solution    `json:"solution"`
	Preset   string             `json:"preset,omitempty"`
	Weights  map[string]float64 `json:"weights,omitempty"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var body scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode score request"))
		return
	}
	if body.Solution == nil || body.Solution.Request.Room.Area() == 0 {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "solution with a solved request is required"))
		return
	}

	opts := pipeline.Options{Preset: body.Preset, Weights: body.Weights, Logger: s.logger}
	report, _, err := s.runner.AnalyzeWithCacheInfo(r.Context(), body.Solution, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.runner.Catalog)
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"patterns": solve.PatternNames()})
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"presets": score.PresetNames()})
}

// savePlanRequest is the POST /plans body.
type savePlanRequest struct {
	Name     string          `json:"name"`
	Solution *solve.Solution `json:"solution"`
}

func (s *Server) handleSavePlan(w http.ResponseWriter, r *http.Request) {
	st, ok := s.requireStore(w)
	if !ok {
		return
	}

	var body savePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode save request"))
		return
	}
	if body.Solution == nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "solution is required"))
		return
	}

	start := time.Now()
	saved, err := st.Save(r.Context(), body.Name, body.Solution)
	observability.Store().OnStoreOp(r.Context(), "save", time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	st, ok := s.requireStore(w)
	if !ok {
		return
	}

	start := time.Now()
	plans, err := st.List(r.Context())
	observability.Store().OnStoreOp(r.Context(), "list", time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"plans": plans})
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	st, ok := s.requireStore(w)
	if !ok {
		return
	}

	start := time.Now()
	saved, err := st.Get(r.Context(), chi.URLParam(r, "id"))
	observability.Store().OnStoreOp(r.Context(), "get", time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// renamePlanRequest is the PATCH /plans/{id} body.
type renamePlanRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleRenamePlan(w http.ResponseWriter, r *http.Request) {
	st, ok := s.requireStore(w)
	if !ok {
		return
	}

	var body renamePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode rename request"))
		return
	}
	if body.Name == "" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "name is required"))
		return
	}

	id := chi.URLParam(r, "id")
	start := time.Now()
	err := st.Rename(r.Context(), id, body.Name)
	observability.Store().OnStoreOp(r.Context(), "rename", time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "name": body.Name})
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	st, ok := s.requireStore(w)
	if !ok {
		return
	}

	start := time.Now()
	err := st.Delete(r.Context(), chi.URLParam(r, "id"))
	observability.Store().OnStoreOp(r.Context(), "delete", time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePlanFloorplan renders a saved plan as an SVG floor plan. Theme,
// scale, and title come from query parameters.
func (s *Server) handlePlanFloorplan(w http.ResponseWriter, r *http.Request) {
	st, ok := s.requireStore(w)
	if !ok {
		return
	}

	start := time.Now()
	saved, err := st.Get(r.Context(), chi.URLParam(r, "id"))
	observability.Store().OnStoreOp(r.Context(), "get", time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}

	opts := pipeline.Options{
		Formats: []string{pipeline.FormatSVG},
		Theme:   r.URL.Query().Get("theme"),
		Title:   r.URL.Query().Get("title"),
		Logger:  s.logger,
	}
	if opts.Title == "" {
		opts.Title = saved.Name
	}

	artifacts, err := s.runner.Render(r.Context(), saved.Solution, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(artifacts[pipeline.FormatSVG])
}

// requireStore responds 503 when no plan store is configured.
func (s *Server) requireStore(w http.ResponseWriter) (store.Store, bool) {
	if s.store == nil {
		writeError(w, errors.New(errors.ErrCodeUnavailable, "plan store not configured"))
		return nil, false
	}
	return s.store, true
}
