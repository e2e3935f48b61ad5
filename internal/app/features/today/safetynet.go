// internal/app/features/today/safetynet.go

// Safety-net validators shared by the Today resolvers. External data (plans,
// items) is validated defensively and malformed shapes collapse into safe
// absences; rule evaluation is isolated behind WithFallback so one failing
// rule can never blank the dashboard.
package today

import (
	"context"

	"github.com/jvetere1999/passion-os/internal/domain/models"
	"go.uber.org/zap"
)

// ValidateDailyPlan collapses malformed plans into "no plan". A usable plan
// has an identifier and an items array (possibly empty); anything else is
// treated as absent rather than surfaced as an error.
func ValidateDailyPlan(plan *models.DailyPlan) *models.DailyPlan {
	if plan == nil {
		return nil
	}
	if plan.PlanID == "" || plan.Items == nil {
		return nil
	}
	return plan
}

// IsValidPlanItem reports whether an item is complete enough to act on:
// a non-empty id and a non-empty action URL.
func IsValidPlanItem(it models.PlanItem) bool {
	return it.ID != "" && it.ActionURL != ""
}

// ValidPlanItems filters a plan's items to the actionable ones. Invalid
// items are dropped silently; the plan itself is never mutated.
func ValidPlanItems(plan *models.DailyPlan) []models.PlanItem {
	if plan == nil {
		return nil
	}
	items := make([]models.PlanItem, 0, len(plan.Items))
	for _, it := range plan.Items {
		if IsValidPlanItem(it) {
			items = append(items, it)
		}
	}
	return items
}

// ValidateVisibility applies the minimum-visibility floor to an already
// resolved visibility, for callers holding a visibility of unknown origin.
func ValidateVisibility(v TodayVisibility) TodayVisibility {
	return EnsureMinimumVisibility(v)
}

// WithFallback runs fn and converts a panic into the supplied fallback plus
// a diagnostic log entry tagged with tag. This is the general protective
// wrapper between rule evaluation and the response payload.
func WithFallback[T any](logger *zap.Logger, tag string, fallback T, fn func() T) (result T) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("resolver panicked, using fallback",
				zap.String("context", tag),
				zap.Any("panic", rec))
			result = fallback
		}
	}()
	return fn()
}

// WithFallbackAsync is WithFallback for context-bound work that can also
// fail with an error. Both errors and panics degrade to the fallback.
func WithFallbackAsync[T any](ctx context.Context, logger *zap.Logger, tag string, fallback T, fn func(context.Context) (T, error)) (result T) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("resolver panicked, using fallback",
				zap.String("context", tag),
				zap.Any("panic", rec))
			result = fallback
		}
	}()
	out, err := fn(ctx)
	if err != nil {
		logger.Warn("resolver failed, using fallback",
			zap.String("context", tag),
			zap.Error(err))
		return fallback
	}
	return out
}
