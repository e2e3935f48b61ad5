// internal/app/store/plans/planstore.go
package planstore

import (
	"context"
	"time"

	"github.com/jvetere1999/passion-os/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the daily_plans collection.
// One document per (user_id, date); the plan service owns writes, this app
// mostly reads.
type Store struct {
	c *mongo.Collection
}

// New creates a new plans Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("daily_plans")}
}

// EnsureIndexes creates the (user_id, date) lookup index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("idx_plans_user_date").SetUnique(true),
		},
	})
	return err
}

// ForDate returns the user's plan for the given date (YYYY-MM-DD), or nil
// when none exists.
func (s *Store) ForDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.DailyPlan, error) {
	var plan models.DailyPlan
	err := s.c.FindOne(ctx, bson.M{"user_id": userID, "date": date}).Decode(&plan)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Upsert writes a plan document for (user_id, date). The plan service owns
// writes in production; counters are recomputed from the items.
func (s *Store) Upsert(ctx context.Context, plan models.DailyPlan) error {
	now := time.Now().UTC()
	completed := 0
	for _, it := range plan.Items {
		if it.Completed {
			completed++
		}
	}

	filter := bson.M{"user_id": plan.UserID, "date": plan.Date}
	update := bson.M{
		"$set": bson.M{
			"plan_id":         plan.PlanID,
			"items":           plan.Items,
			"completed_count": completed,
			"total_count":     len(plan.Items),
			"updated_at":      now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"user_id":    plan.UserID,
			"date":       plan.Date,
			"created_at": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}
