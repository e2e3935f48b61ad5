// internal/domain/models/focussession.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Focus session statuses.
const (
	FocusStatusActive    = "active"
	FocusStatusCompleted = "completed"
	FocusStatusAbandoned = "abandoned"
)

// FocusSession tracks one timed focus block for a user.
type FocusSession struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`

	Status string `bson:"status" json:"status"` // active | completed | abandoned
	Mode   string `bson:"mode,omitempty" json:"mode,omitempty"`

	// Timing
	StartedAt time.Time  `bson:"started_at" json:"started_at"`
	EndedAt   *time.Time `bson:"ended_at,omitempty" json:"ended_at,omitempty"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty" json:"expires_at,omitempty"`

	DurationSecs int64 `bson:"duration_secs,omitempty" json:"duration_secs,omitempty"`
}
