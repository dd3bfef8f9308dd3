//go:build integration

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/matzehuels/roomplan/pkg/errors"
)

// mongoURI resolves the test MongoDB instance, defaulting to a local one.
func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	return "mongodb://localhost:27017"
}

func newTestMongoStore(t *testing.T, ctx context.Context) *MongoStore {
	t.Helper()
	st, err := NewMongoStore(ctx, MongoConfig{
		URI:        mongoURI(),
		Database:   "roomplan_test",
		Collection: "plans_integration",
	})
	if err != nil {
		t.Fatalf("NewMongoStore: %v", err)
	}
	return st
}

func TestMongoStoreLifecycle_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st := newTestMongoStore(t, ctx)
	defer st.Close(ctx)

	saved, err := st.Save(ctx, "7th floor east", testSolution("double_wall", 6))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("saved plan has no ID")
	}
	defer st.Delete(ctx, saved.ID)

	got, err := st.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "7th floor east" {
		t.Errorf("Name = %q, want 7th floor east", got.Name)
	}
	if got.Solution == nil || got.Solution.Best.Pattern != "double_wall" {
		t.Errorf("Solution = %+v, want the saved layout back", got.Solution)
	}

	if err := st.Rename(ctx, saved.ID, "final"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	got, err = st.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get after rename: %v", err)
	}
	if got.Name != "final" {
		t.Errorf("Name = %q, want final", got.Name)
	}

	plans, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := false
	for _, p := range plans {
		if p.ID == saved.ID {
			found = true
			if p.Pattern != "double_wall" || p.SeatsPlaced != 6 {
				t.Errorf("summary = %+v, want pattern and seats from the solution", p)
			}
		}
	}
	if !found {
		t.Errorf("List did not include plan %s", saved.ID)
	}

	if err := st.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := st.Get(ctx, saved.ID); !errors.Is(err, errors.ErrCodePlanNotFound) {
		t.Errorf("Get after delete: err = %v, want PLAN_NOT_FOUND", err)
	}
}

func TestMongoStoreMissingPlan_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st := newTestMongoStore(t, ctx)
	defer st.Close(ctx)

	if _, err := st.Get(ctx, "nope"); !errors.Is(err, errors.ErrCodePlanNotFound) {
		t.Errorf("Get missing: err = %v, want PLAN_NOT_FOUND", err)
	}
	if err := st.Delete(ctx, "nope"); !errors.Is(err, errors.ErrCodePlanNotFound) {
		t.Errorf("Delete missing: err = %v, want PLAN_NOT_FOUND", err)
	}
	if err := st.Rename(ctx, "nope", "x"); !errors.Is(err, errors.ErrCodePlanNotFound) {
		t.Errorf("Rename missing: err = %v, want PLAN_NOT_FOUND", err)
	}
}
