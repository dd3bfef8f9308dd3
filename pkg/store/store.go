// Package store persists solved floor plans.
//
// A saved plan wraps one solve outcome with a name and timestamps so it
// can be listed, reloaded, re-rendered, and deleted later. Two backends
// implement the Store interface:
//   - MongoStore: MongoDB-backed storage for server deployments
//   - FileStore: JSON files under a directory for CLI usage
//
// # Usage
//
//	st, err := store.NewFileStore("")  // ~/.config/roomplan/plans/
//	if err != nil {
//	    return err
//	}
//	saved, err := st.Save(ctx, "7th floor east", sol)
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/roomplan/pkg/solve"
)

// SavedPlan is one persisted solve outcome.
type SavedPlan struct {
	ID        string          `json:"id" bson:"_id"`
	Name      string          `json:"name" bson:"name"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" bson:"updated_at"`
	Solution  *solve.Solution `json:"solution" bson:"solution"`
}

// PlanSummary is the listing view of a saved plan, without the full
// solution payload.
type PlanSummary struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	Pattern     string    `json:"pattern" bson:"pattern"`
	SeatsPlaced int       `json:"seats_placed" bson:"seats_placed"`
	OK          bool      `json:"ok" bson:"ok"`
	Score       float64   `json:"score" bson:"score"`
}

// Store is the interface for plan storage backends.
type Store interface {
	// Save persists a solution under a new ID and returns the stored plan.
	Save(ctx context.Context, name string, sol *solve.Solution) (*SavedPlan, error)

	// Get retrieves a plan by ID. A missing plan is a PLAN_NOT_FOUND error.
	Get(ctx context.Context, id string) (*SavedPlan, error)

	// List returns plan summaries, newest first.
	List(ctx context.Context) ([]PlanSummary, error)

	// Rename updates a plan's name. A missing plan is a PLAN_NOT_FOUND error.
	Rename(ctx context.Context, id, name string) error

	// Delete removes a plan. A missing plan is a PLAN_NOT_FOUND error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// newSavedPlan stamps a solution for storage.
func newSavedPlan(name string, sol *solve.Solution) *SavedPlan {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &SavedPlan{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Solution:  sol,
	}
}

// summarize builds the listing view of a plan.
func summarize(p *SavedPlan) PlanSummary {
	s := PlanSummary{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
	if p.Solution != nil {
		s.Pattern = p.Solution.Best.Pattern
		s.SeatsPlaced = p.Solution.Best.SeatsPlaced
		s.OK = p.Solution.Best.OK
		s.Score = p.Solution.BestScore
	}
	return s
}
