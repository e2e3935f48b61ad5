// internal/app/features/today/types.go
package today

import (
	"github.com/jvetere1999/passion-os/internal/domain/models"
)

// TodayUserState is the per-load signal set the visibility rules run over.
// It is computed fresh on every request by the Aggregator and never stored.
type TodayUserState struct {
	PlanExists             bool `json:"planExists"`
	HasIncompletePlanItems bool `json:"hasIncompletePlanItems"`
	ReturningAfterGap      bool `json:"returningAfterGap"`
	FirstDay               bool `json:"firstDay"`
	FocusActive            bool `json:"focusActive"`
	ActiveStreak           bool `json:"activeStreak"`
}

// ResolvedState names which visibility rule won for a given user state.
type ResolvedState string

const (
	StateReducedMode    ResolvedState = "reduced_mode"
	StateFirstDay       ResolvedState = "first_day"
	StateFocusActive    ResolvedState = "focus_active"
	StatePlanInProgress ResolvedState = "plan_in_progress"
	StateDefault        ResolvedState = "default"
)

// TodayVisibility says which dashboard sections render and in what posture.
// It is a pure derivation of TodayUserState; recomputed on every call.
type TodayVisibility struct {
	ShowStarterBlock        bool `json:"showStarterBlock"`
	ShowReducedModeBanner   bool `json:"showReducedModeBanner"`
	ShowDailyPlan           bool `json:"showDailyPlan"`
	ForceDailyPlanCollapsed bool `json:"forceDailyPlanCollapsed"`
	ShowExplore             bool `json:"showExplore"`
	ForceExploreCollapsed   bool `json:"forceExploreCollapsed"`
	HideExplore             bool `json:"hideExplore"`
	ShowRewards             bool `json:"showRewards"`

	ResolvedState ResolvedState `json:"resolvedState"`
}

// ActionReason records why the resolver chose a particular CTA.
type ActionReason string

const (
	ReasonPlanIncompleteItem   ActionReason = "plan_incomplete_item"
	ReasonPlanCompleteFallback ActionReason = "plan_complete_fallback"
	ReasonNoPlanFallback       ActionReason = "no_plan_fallback"
	ReasonNoop                 ActionReason = "noop"
)

// IsValid reports whether r is one of the known reasons.
func (r ActionReason) IsValid() bool {
	switch r {
	case ReasonPlanIncompleteItem, ReasonPlanCompleteFallback, ReasonNoPlanFallback, ReasonNoop:
		return true
	}
	return false
}

// ResolvedAction is the single primary CTA the renderer shows.
type ResolvedAction struct {
	Href      string          `json:"href"`
	Label     string          `json:"label"`
	Reason    ActionReason    `json:"reason"`
	Type      models.ItemType `json:"type"`
	EntityID  string          `json:"entityId,omitempty"`
	ItemTitle string          `json:"itemTitle,omitempty"`
}

// PlanSummary is the condensed plan view included in the Today payload.
type PlanSummary struct {
	PlanExists             bool      `json:"planExists"`
	HasIncompletePlanItems bool      `json:"hasIncompletePlanItems"`
	NextIncompleteItem     *NextItem `json:"nextIncompleteItem"`
	TotalCount             int       `json:"totalCount"`
	CompletedCount         int       `json:"completedCount"`
}

// NextItem points at the first incomplete plan item.
type NextItem struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Priority  int             `json:"priority"`
	ActionURL string          `json:"actionUrl"`
	Type      models.ItemType `json:"type"`
}

// QuickPick is a shortcut into a module with pending work.
type QuickPick struct {
	Module string `json:"module"`
	Route  string `json:"route"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

// ResumeLast points back at the most recently finished activity.
type ResumeLast struct {
	Module   string `json:"module"`
	Route    string `json:"route"`
	Label    string `json:"label"`
	LastUsed string `json:"lastUsed"` // RFC 3339
}

// DynamicUIData carries the activity-driven portions of the page.
type DynamicUIData struct {
	QuickPicks []QuickPick `json:"quickPicks"`
	ResumeLast *ResumeLast `json:"resumeLast"`
}

// Personalization carries per-user display preferences with safe defaults.
type Personalization struct {
	Interests           []string `json:"interests"`
	NudgeIntensity      string   `json:"nudgeIntensity"`
	FocusDuration       int      `json:"focusDuration"`
	GamificationVisible bool     `json:"gamificationVisible"`
}
