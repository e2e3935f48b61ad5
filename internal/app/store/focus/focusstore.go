// internal/app/store/focus/focusstore.go
package focusstore

import (
	"context"
	"time"

	"github.com/jvetere1999/passion-os/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the focus_sessions collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new focus Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("focus_sessions")}
}

// EnsureIndexes creates indexes for the active-session and resume-last
// queries.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_focus_user_status"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "ended_at", Value: -1}},
			Options: options.Index().SetName("idx_focus_user_ended"),
		},
	})
	return err
}

// HasActive reports whether the user has an unexpired active session.
func (s *Store) HasActive(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	now := time.Now().UTC()
	filter := bson.M{
		"user_id": userID,
		"status":  models.FocusStatusActive,
		"$or": bson.A{
			bson.M{"expires_at": bson.M{"$exists": false}},
			bson.M{"expires_at": nil},
			bson.M{"expires_at": bson.M{"$gt": now}},
		},
	}
	count, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// LastCompleted returns the most recently completed session, or nil when
// the user has never finished one.
func (s *Store) LastCompleted(ctx context.Context, userID primitive.ObjectID) (*models.FocusSession, error) {
	filter := bson.M{"user_id": userID, "status": models.FocusStatusCompleted}
	opts := options.FindOne().SetSort(bson.D{{Key: "ended_at", Value: -1}})

	var sess models.FocusSession
	err := s.c.FindOne(ctx, filter, opts).Decode(&sess)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// Start opens a new active session. Any session left active for this user
// is abandoned first so at most one is ever running.
func (s *Store) Start(ctx context.Context, userID primitive.ObjectID, mode string, expiresAt *time.Time) (models.FocusSession, error) {
	now := time.Now().UTC()

	_, _ = s.c.UpdateMany(ctx,
		bson.M{"user_id": userID, "status": models.FocusStatusActive},
		bson.M{"$set": bson.M{"status": models.FocusStatusAbandoned, "ended_at": now}},
	)

	sess := models.FocusSession{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Status:    models.FocusStatusActive,
		Mode:      mode,
		StartedAt: now,
		ExpiresAt: expiresAt,
	}
	if _, err := s.c.InsertOne(ctx, sess); err != nil {
		return models.FocusSession{}, err
	}
	return sess, nil
}

// Finish closes a session with the given status and computes its duration.
func (s *Store) Finish(ctx context.Context, sessionID primitive.ObjectID, status string) error {
	now := time.Now().UTC()

	var sess models.FocusSession
	if err := s.c.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&sess); err != nil {
		return err
	}

	duration := int64(now.Sub(sess.StartedAt).Seconds())
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": sessionID},
		bson.M{"$set": bson.M{
			"status":        status,
			"ended_at":      now,
			"duration_secs": duration,
		}},
	)
	return err
}
