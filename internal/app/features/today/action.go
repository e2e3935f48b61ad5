// internal/app/features/today/action.go
package today

import (
	"sort"
	"strings"

	"github.com/jvetere1999/passion-os/internal/app/system/htmlsanitize"
	"github.com/jvetere1999/passion-os/internal/app/system/navigation"
	"github.com/jvetere1999/passion-os/internal/domain/models"
)

// fallbackLabel replaces empty labels during output validation.
const fallbackLabel = "Continue"

// FallbackAction is the CTA of last resort, substituted whenever resolver
// output fails validation.
func FallbackAction() ResolvedAction {
	return ResolvedAction{
		Href:   navigation.FallbackRoute,
		Label:  fallbackLabel,
		Reason: ReasonNoPlanFallback,
		Type:   models.ItemTypeFocus,
	}
}

// focusFallback is the CTA shown when the plan offers nothing actionable.
func focusFallback(reason ActionReason) ResolvedAction {
	return ResolvedAction{
		Href:   navigation.FallbackRoute,
		Label:  "Start Focus",
		Reason: reason,
		Type:   models.ItemTypeFocus,
	}
}

// ResolveStarterAction picks the single primary CTA from the daily plan.
//
// Priority chain:
//  1. plan with ≥1 incomplete item → most urgent item (lowest Priority;
//     equal priorities keep plan author order via stable sort)
//  2. plan exists, fully complete  → focus fallback (plan_complete_fallback)
//  3. no plan / malformed plan     → focus fallback (no_plan_fallback)
//
// The result is deterministic: identical plans resolve to structurally
// identical actions.
func ResolveStarterAction(plan *models.DailyPlan) ResolvedAction {
	plan = ValidateDailyPlan(plan)
	if plan == nil {
		return focusFallback(ReasonNoPlanFallback)
	}

	incomplete := make([]models.PlanItem, 0, len(plan.Items))
	for _, it := range ValidPlanItems(plan) {
		if !it.Completed {
			incomplete = append(incomplete, it)
		}
	}
	if len(incomplete) == 0 {
		return focusFallback(ReasonPlanCompleteFallback)
	}

	sort.SliceStable(incomplete, func(i, j int) bool {
		return incomplete[i].Priority < incomplete[j].Priority
	})
	it := incomplete[0]

	return ResolvedAction{
		Href:      navigation.SafeActionRoute(it.ActionURL, ""),
		Label:     actionLabel(it.Type),
		Reason:    ReasonPlanIncompleteItem,
		Type:      normalizeItemType(it.Type),
		EntityID:  it.ID,
		ItemTitle: htmlsanitize.PlainText(it.Title),
	}
}

// ValidateResolverOutput is the last gate before an action reaches the
// renderer. An unroutable href swaps in the full fallback action; an empty
// label is patched while the rest of the action is preserved.
func ValidateResolverOutput(a ResolvedAction) ResolvedAction {
	if !navigation.IsValidActionRoute(a.Href) {
		return FallbackAction()
	}
	if strings.TrimSpace(a.Label) == "" {
		a.Label = fallbackLabel
	}
	if !a.Reason.IsValid() {
		a.Reason = ReasonNoop
	}
	a.Type = normalizeItemType(a.Type)
	return a
}

// actionLabel maps an item type to its CTA wording. Unknown types get the
// neutral label rather than leaking raw type strings to the UI.
func actionLabel(t models.ItemType) string {
	switch t {
	case models.ItemTypeFocus:
		return "Start Focus"
	case models.ItemTypeQuest:
		return "Continue Quest"
	case models.ItemTypeWorkout:
		return "Start Workout"
	case models.ItemTypeLearning:
		return "Continue Learning"
	case models.ItemTypeHabit:
		return "Check Habit"
	default:
		return fallbackLabel
	}
}

// normalizeItemType collapses unknown types onto focus, the type of the
// fallback CTA.
func normalizeItemType(t models.ItemType) models.ItemType {
	if t.IsValid() {
		return t
	}
	return models.ItemTypeFocus
}
