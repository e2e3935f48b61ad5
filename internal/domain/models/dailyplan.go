// internal/domain/models/dailyplan.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemType classifies what kind of activity a plan item points at.
// Unknown values coming from older documents are tolerated by consumers
// (they fall back to the focus CTA) but are never written by this app.
type ItemType string

const (
	ItemTypeFocus    ItemType = "focus"
	ItemTypeQuest    ItemType = "quest"
	ItemTypeWorkout  ItemType = "workout"
	ItemTypeLearning ItemType = "learning"
	ItemTypeHabit    ItemType = "habit"
)

// IsValid reports whether t is one of the known item types.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeFocus, ItemTypeQuest, ItemTypeWorkout, ItemTypeLearning, ItemTypeHabit:
		return true
	}
	return false
}

// PlanItem is one actionable entry in a daily plan.
// Items are an immutable snapshot from the plan service; this app reads
// them but never mutates them.
type PlanItem struct {
	ID        string   `bson:"id" json:"id"` // UUID assigned by the plan service
	Type      ItemType `bson:"type" json:"type"`
	Title     string   `bson:"title" json:"title"`
	ActionURL string   `bson:"action_url" json:"actionUrl"`
	Completed bool     `bson:"completed" json:"completed"`
	Priority  int      `bson:"priority" json:"priority"` // lower = more urgent
}

// DailyPlan is the ordered set of items a user intends to complete on one day.
// One document per (user_id, date).
type DailyPlan struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID primitive.ObjectID `bson:"user_id" json:"-"`

	PlanID string     `bson:"plan_id" json:"id"` // stable external identifier
	Date   string     `bson:"date" json:"date"`  // YYYY-MM-DD
	Items  []PlanItem `bson:"items" json:"items"`

	CompletedCount int `bson:"completed_count" json:"completedCount"`
	TotalCount     int `bson:"total_count" json:"totalCount"`

	CreatedAt time.Time `bson:"created_at" json:"-"`
	UpdatedAt time.Time `bson:"updated_at" json:"-"`
}

// HasIncompleteItems reports whether at least one item is not completed.
func (p *DailyPlan) HasIncompleteItems() bool {
	for _, it := range p.Items {
		if !it.Completed {
			return true
		}
	}
	return false
}
