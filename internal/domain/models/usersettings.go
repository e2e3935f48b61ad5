// internal/domain/models/usersettings.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserSettings holds per-user personalization that shapes the Today page.
// One document per user_id.
type UserSettings struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID primitive.ObjectID `bson:"user_id" json:"-"`

	NudgeIntensity       string   `bson:"nudge_intensity,omitempty" json:"nudgeIntensity"`
	FocusDurationMinutes int      `bson:"focus_duration_minutes,omitempty" json:"focusDuration"`
	GamificationVisible  bool     `bson:"gamification_visible" json:"gamificationVisible"`
	Interests            []string `bson:"interests,omitempty" json:"interests"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"-"`
}

// Defaults applied when a user has no settings document.
const (
	DefaultNudgeIntensity       = "standard"
	DefaultFocusDurationMinutes = 25
)
