// internal/app/store/quests/queststore.go
package queststore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides the quest signals for the Today dashboard.
type Store struct {
	c *mongo.Collection
}

// New creates a new quests Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("user_quest_progress")}
}

// EnsureIndexes creates the per-user lookup index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "completed", Value: 1}},
			Options: options.Index().SetName("idx_quest_progress_user"),
		},
	})
	return err
}

// ActiveCount counts unexpired, uncompleted quests for the user.
func (s *Store) ActiveCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	now := time.Now().UTC()
	filter := bson.M{
		"user_id":   userID,
		"completed": false,
		"$or": bson.A{
			bson.M{"expires_at": bson.M{"$exists": false}},
			bson.M{"expires_at": nil},
			bson.M{"expires_at": bson.M{"$gt": now}},
		},
	}
	return s.c.CountDocuments(ctx, filter)
}
