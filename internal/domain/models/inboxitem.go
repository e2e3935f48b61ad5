// internal/domain/models/inboxitem.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InboxItem is a notification or nudge delivered to the user's inbox.
type InboxItem struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`

	ItemType string `bson:"item_type" json:"item_type"`
	Title    string `bson:"title" json:"title"`
	IsRead   bool   `bson:"is_read" json:"is_read"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
