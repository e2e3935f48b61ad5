// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"time"

	"github.com/jvetere1999/passion-os/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides read access to the users collection. Account writes are
// owned by the auth service; the one exception is the activity timestamp,
// which this app touches on every dashboard load.
type Store struct {
	c *mongo.Collection
}

// New creates a new users Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Get returns the account record for the given user.
func (s *Store) Get(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// TouchActivity stamps last_activity_at with the current time. Called after
// the gap signal is computed so today's visit doesn't mask yesterday's gap.
func (s *Store) TouchActivity(ctx context.Context, userID primitive.ObjectID) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"last_activity_at": now}},
	)
	return err
}
