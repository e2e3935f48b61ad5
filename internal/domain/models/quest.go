// internal/domain/models/quest.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestProgress tracks a user's progress on one quest.
// Quest definitions live in the quests service; this app only needs
// enough to count active quests for the dashboard.
type QuestProgress struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  primitive.ObjectID `bson:"user_id" json:"user_id"`
	QuestID primitive.ObjectID `bson:"quest_id" json:"quest_id"`

	Completed bool       `bson:"completed" json:"completed"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty" json:"expires_at,omitempty"`

	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
