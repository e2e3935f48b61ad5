// internal/app/store/usersettings/settingsstore.go
package settingsstore

import (
	"context"
	"time"

	"github.com/jvetere1999/passion-os/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the user_settings collection.
// One document per user_id.
type Store struct {
	c *mongo.Collection
}

// New creates a new settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("user_settings")}
}

// Get returns the settings for a user. If no document exists, defaults are
// returned instead of an error.
func (s *Store) Get(ctx context.Context, userID primitive.ObjectID) (models.UserSettings, error) {
	var settings models.UserSettings
	err := s.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return models.UserSettings{
			UserID:               userID,
			NudgeIntensity:       models.DefaultNudgeIntensity,
			FocusDurationMinutes: models.DefaultFocusDurationMinutes,
			GamificationVisible:  true,
		}, nil
	}
	if err != nil {
		return models.UserSettings{}, err
	}
	return settings, nil
}

// Save upserts the settings document for a user.
func (s *Store) Save(ctx context.Context, userID primitive.ObjectID, settings models.UserSettings) error {
	now := time.Now().UTC()
	settings.UpdatedAt = &now
	settings.UserID = userID

	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"user_id":                userID,
			"nudge_intensity":        settings.NudgeIntensity,
			"focus_duration_minutes": settings.FocusDurationMinutes,
			"gamification_visible":   settings.GamificationVisible,
			"interests":              settings.Interests,
			"updated_at":             settings.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}
