// internal/app/store/habits/habitstore.go
package habitstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides the habit signals for the Today dashboard. Habit CRUD is
// owned by the habits service; this app only counts.
type Store struct {
	habits      *mongo.Collection
	completions *mongo.Collection
}

// New creates a new habits Store.
func New(db *mongo.Database) *Store {
	return &Store{
		habits:      db.Collection("habits"),
		completions: db.Collection("habit_completions"),
	}
}

// EnsureIndexes creates the per-user lookup indexes.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if _, err := s.habits.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "is_active", Value: 1}},
			Options: options.Index().SetName("idx_habits_user_active"),
		},
	}); err != nil {
		return err
	}
	_, err := s.completions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "habit_id", Value: 1}, {Key: "completed_at", Value: -1}},
			Options: options.Index().SetName("idx_habit_completions_habit"),
		},
	})
	return err
}

// HasActiveStreak reports whether any active habit carries a streak.
func (s *Store) HasActiveStreak(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"user_id":        userID,
		"is_active":      true,
		"current_streak": bson.M{"$gt": 0},
	}
	count, err := s.habits.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// PendingToday counts active habits without a completion recorded today.
func (s *Store) PendingToday(ctx context.Context, userID primitive.ObjectID, now time.Time) (int64, error) {
	active, err := s.habits.Distinct(ctx, "_id", bson.M{"user_id": userID, "is_active": true})
	if err != nil {
		return 0, err
	}
	if len(active) == 0 {
		return 0, nil
	}

	dayStart := now.UTC().Truncate(24 * time.Hour)
	done, err := s.completions.Distinct(ctx, "habit_id", bson.M{
		"habit_id":     bson.M{"$in": active},
		"completed_at": bson.M{"$gte": dayStart},
	})
	if err != nil {
		return 0, err
	}

	return int64(len(active) - len(done)), nil
}
