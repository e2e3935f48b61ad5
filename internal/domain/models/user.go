// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account record. Authentication lives in the auth service;
// this app reads users only for dashboard signals (first day, activity gap).
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"display_name,omitempty" json:"display_name,omitempty"`

	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
	LastActivityAt *time.Time `bson:"last_activity_at,omitempty" json:"last_activity_at,omitempty"`
}
