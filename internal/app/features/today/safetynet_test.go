package today

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/jvetere1999/passion-os/internal/domain/models"
	"github.com/jvetere1999/passion-os/internal/testutil"
)

func TestValidateDailyPlan(t *testing.T) {
	userID := primitive.NewObjectID()
	good := testutil.Plan(userID, testutil.PlanItem(models.ItemTypeFocus, "x", "/focus/1"))
	noID := testutil.Plan(userID, testutil.PlanItem(models.ItemTypeFocus, "x", "/focus/1"))
	noID.PlanID = ""
	nilItems := testutil.Plan(userID)
	nilItems.Items = nil

	tests := []struct {
		name    string
		plan    *models.DailyPlan
		wantNil bool
	}{
		{"nil plan", nil, true},
		{"missing plan id", noID, true},
		{"nil items", nilItems, true},
		{"empty items is usable", testutil.Plan(userID), false},
		{"well formed plan", good, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateDailyPlan(tt.plan)
			if (got == nil) != tt.wantNil {
				t.Errorf("ValidateDailyPlan: got %v, wantNil %v", got, tt.wantNil)
			}
		})
	}
}

func TestIsValidPlanItem(t *testing.T) {
	tests := []struct {
		name string
		item models.PlanItem
		want bool
	}{
		{"complete item", models.PlanItem{ID: "a", ActionURL: "/focus"}, true},
		{"missing id", models.PlanItem{ActionURL: "/focus"}, false},
		{"missing action url", models.PlanItem{ID: "a"}, false},
		{"empty item", models.PlanItem{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPlanItem(tt.item); got != tt.want {
				t.Errorf("IsValidPlanItem: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidPlanItemsDropsInvalid(t *testing.T) {
	userID := primitive.NewObjectID()
	plan := testutil.Plan(userID,
		testutil.PlanItem(models.ItemTypeFocus, "keep", "/focus/1"),
		models.PlanItem{Title: "no id or url"},
		testutil.PlanItem(models.ItemTypeQuest, "keep too", "/quests/1"),
	)

	got := ValidPlanItems(plan)
	if len(got) != 2 {
		t.Fatalf("len: got %d, want 2", len(got))
	}
	if got[0].Title != "keep" || got[1].Title != "keep too" {
		t.Errorf("wrong items survived: %+v", got)
	}
	if len(plan.Items) != 3 {
		t.Errorf("source plan mutated: %d items", len(plan.Items))
	}
}

func TestWithFallbackRecoversPanic(t *testing.T) {
	fallback := DefaultVisibility()
	got := WithFallback(zap.NewNop(), "visibility", fallback, func() TodayVisibility {
		panic("rule exploded")
	})
	if got != fallback {
		t.Errorf("got %+v, want fallback %+v", got, fallback)
	}
}

func TestWithFallbackPassesThrough(t *testing.T) {
	got := WithFallback(zap.NewNop(), "value", 0, func() int { return 42 })
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestWithFallbackAsync(t *testing.T) {
	ctx := context.Background()

	t.Run("error degrades to fallback", func(t *testing.T) {
		got := WithFallbackAsync(ctx, zap.NewNop(), "fetch", "fallback", func(context.Context) (string, error) {
			return "", errors.New("store down")
		})
		if got != "fallback" {
			t.Errorf("got %q, want %q", got, "fallback")
		}
	})

	t.Run("panic degrades to fallback", func(t *testing.T) {
		got := WithFallbackAsync(ctx, zap.NewNop(), "fetch", "fallback", func(context.Context) (string, error) {
			panic("boom")
		})
		if got != "fallback" {
			t.Errorf("got %q, want %q", got, "fallback")
		}
	})

	t.Run("success passes through", func(t *testing.T) {
		got := WithFallbackAsync(ctx, zap.NewNop(), "fetch", "fallback", func(context.Context) (string, error) {
			return "fresh", nil
		})
		if got != "fresh" {
			t.Errorf("got %q, want %q", got, "fresh")
		}
	})
}

func TestValidateVisibilityAppliesFloor(t *testing.T) {
	got := ValidateVisibility(TodayVisibility{})
	if !got.ShowStarterBlock {
		t.Error("ShowStarterBlock: got false, want true")
	}
}
