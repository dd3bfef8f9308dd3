package store

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/roomplan/pkg/errors"
	"github.com/matzehuels/roomplan/pkg/solve"
)

// MongoStore persists plans in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	URI        string // connection string, e.g. mongodb://localhost:27017
	Database   string // defaults to "roomplan"
	Collection string // defaults to "plans"
}

// NewMongoStore connects to MongoDB, verifies the connection, and ensures
// the listing index.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "roomplan"
	}
	if cfg.Collection == "" {
		cfg.Collection = "plans"
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, err, "mongo connect")
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeUnavailable, err, "mongo ping")
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)
	_, err = coll.Indexes().CreateOne(connectCtx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeUnavailable, err, "mongo create index")
	}

	return &MongoStore{client: client, coll: coll}, nil
}

// Save persists a solution under a new ID.
func (s *MongoStore) Save(ctx context.Context, name string, sol *solve.Solution) (*SavedPlan, error) {
	plan := newSavedPlan(name, sol)
	if _, err := s.coll.InsertOne(ctx, plan); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, err, "mongo insert plan")
	}
	return plan, nil
}

// Get retrieves a plan by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*SavedPlan, error) {
	var plan SavedPlan
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New(errors.ErrCodePlanNotFound, "plan %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, err, "mongo find plan")
	}
	return &plan, nil
}

// List returns plan summaries, newest first.
func (s *MongoStore) List(ctx context.Context) ([]PlanSummary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, err, "mongo list plans")
	}
	defer cur.Close(ctx)

	var out []PlanSummary
	for cur.Next(ctx) {
		var plan SavedPlan
		if err := cur.Decode(&plan); err != nil {
			return nil, errors.Wrap(errors.ErrCodeUnavailable, err, "mongo decode plan")
		}
		out = append(out, summarize(&plan))
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, err, "mongo cursor")
	}
	return out, nil
}

// Rename updates a plan's name.
func (s *MongoStore) Rename(ctx context.Context, id, name string) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"name": name, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeUnavailable, err, "mongo rename plan")
	}
	if res.MatchedCount == 0 {
		return errors.New(errors.ErrCodePlanNotFound, "plan %s not found", id)
	}
	return nil
}

// Delete removes a plan.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeUnavailable, err, "mongo delete plan")
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodePlanNotFound, "plan %s not found", id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
