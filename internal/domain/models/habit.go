// internal/domain/models/habit.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Habit is a recurring activity the user tracks day to day.
type Habit struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`

	Name          string `bson:"name" json:"name"`
	IsActive      bool   `bson:"is_active" json:"is_active"`
	CurrentStreak int    `bson:"current_streak" json:"current_streak"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// HabitCompletion records one check-off of a habit.
type HabitCompletion struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HabitID     primitive.ObjectID `bson:"habit_id" json:"habit_id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	CompletedAt time.Time          `bson:"completed_at" json:"completed_at"`
}
