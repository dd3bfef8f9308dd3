package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/roomplan/pkg/errors"
	"github.com/matzehuels/roomplan/pkg/solve"
)

// FileStore is a file-based plan store for CLI usage.
// Plans are stored as JSON files in a directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based plan store.
// If baseDir is empty, defaults to ~/.config/roomplan/plans/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "roomplan", "plans")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create plan dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) planPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

// Save persists a solution under a new ID.
func (s *FileStore) Save(ctx context.Context, name string, sol *solve.Solution) (*SavedPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan := newSavedPlan(name, sol)
	if err := s.write(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Get retrieves a plan by ID.
func (s *FileStore) Get(ctx context.Context, id string) (*SavedPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(id)
}

// List returns plan summaries, newest first.
func (s *FileStore) List(ctx context.Context) ([]PlanSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read plan dir: %w", err)
	}

	var out []PlanSummary
	for _, e := range entries {
		id, ok := strings.CutSuffix(e.Name(), ".json")
		if e.IsDir() || !ok {
			continue
		}
		plan, err := s.read(id)
		if err != nil {
			continue // skip corrupt entries
		}
		out = append(out, summarize(plan))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Rename updates a plan's name.
func (s *FileStore) Rename(ctx context.Context, id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, err := s.read(id)
	if err != nil {
		return err
	}
	plan.Name = name
	plan.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)
	return s.write(plan)
}

// Delete removes a plan.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.planPath(id))
	if os.IsNotExist(err) {
		return errors.New(errors.ErrCodePlanNotFound, "plan %s not found", id)
	}
	return err
}

// Close does nothing for the file store.
func (s *FileStore) Close(ctx context.Context) error {
	return nil
}

func (s *FileStore) read(id string) (*SavedPlan, error) {
	data, err := os.ReadFile(s.planPath(id))
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodePlanNotFound, "plan %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}

	var plan SavedPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", id, err)
	}
	return &plan, nil
}

func (s *FileStore) write(plan *SavedPlan) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return os.WriteFile(s.planPath(plan.ID), data, 0600)
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
