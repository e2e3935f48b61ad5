// internal/app/store/inbox/inboxstore.go
package inboxstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides the inbox signals for the Today dashboard.
type Store struct {
	c *mongo.Collection
}

// New creates a new inbox Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("inbox_items")}
}

// EnsureIndexes creates the per-user unread lookup index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "is_read", Value: 1}},
			Options: options.Index().SetName("idx_inbox_user_read"),
		},
	})
	return err
}

// UnreadCount counts unread inbox items for the user.
func (s *Store) UnreadCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"user_id": userID, "is_read": false})
}
