// Package testutil provides shared helpers for handler and store tests.
package testutil

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jvetere1999/passion-os/internal/domain/models"
)

// PlanItem builds a valid plan item of the given type. Priority defaults to
// the item's position when plans are built with Plan.
func PlanItem(itemType models.ItemType, title, actionURL string) models.PlanItem {
	return models.PlanItem{
		ID:        uuid.NewString(),
		Type:      itemType,
		Title:     title,
		ActionURL: actionURL,
	}
}

// Plan builds a daily plan for today with the given items. Priorities are
// assigned in author order and counters are derived from the items.
func Plan(userID primitive.ObjectID, items ...models.PlanItem) *models.DailyPlan {
	now := time.Now().UTC()
	if items == nil {
		items = []models.PlanItem{}
	}
	completed := 0
	for i := range items {
		items[i].Priority = i
		if items[i].Completed {
			completed++
		}
	}
	return &models.DailyPlan{
		ID:             primitive.NewObjectID(),
		UserID:         userID,
		PlanID:         uuid.NewString(),
		Date:           now.Format("2006-01-02"),
		Items:          items,
		CompletedCount: completed,
		TotalCount:     len(items),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Completed marks a plan item as done.
func Completed(it models.PlanItem) models.PlanItem {
	it.Completed = true
	return it
}
