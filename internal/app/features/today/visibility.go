// internal/app/features/today/visibility.go
package today

// DefaultVisibility is the baseline every resolution starts from: all
// sections visible, nothing forced or hidden.
func DefaultVisibility() TodayVisibility {
	return TodayVisibility{
		ShowStarterBlock: true,
		ShowDailyPlan:    true,
		ShowExplore:      true,
		ShowRewards:      true,
		ResolvedState:    StateDefault,
	}
}

// ResolveVisibility derives section visibility from the user state.
//
// Rules are a first-match priority chain; exactly one fires per call:
//
//  1. returning after a gap  → reduced-mode banner, plan + explore collapsed
//  2. first day              → starter block only, explore hidden
//  3. focus session active   → no starter block, explore collapsed
//  4. plan with open items   → no starter block, plan expanded
//  5. otherwise              → baseline unchanged
//
// The minimum-visibility floor is applied to every result, so the output
// always carries at least one CTA-bearing section.
func ResolveVisibility(state TodayUserState) TodayVisibility {
	v := DefaultVisibility()

	switch {
	case state.ReturningAfterGap:
		v.ShowReducedModeBanner = true
		v.ForceDailyPlanCollapsed = true
		v.ForceExploreCollapsed = true
		v.ResolvedState = StateReducedMode

	case state.FirstDay:
		v.ShowStarterBlock = true
		v.ShowDailyPlan = false
		v.HideExplore = true
		v.ResolvedState = StateFirstDay

	case state.FocusActive:
		v.ShowStarterBlock = false
		v.ForceExploreCollapsed = true
		v.ResolvedState = StateFocusActive

	case state.PlanExists && state.HasIncompletePlanItems:
		v.ShowStarterBlock = false
		v.ForceDailyPlanCollapsed = false
		v.ResolvedState = StatePlanInProgress
	}

	return EnsureMinimumVisibility(v)
}

// EnsureMinimumVisibility is the safety net under the rule chain: when no
// CTA-bearing flag survived, the starter block is forced on. The dashboard
// must never render empty.
func EnsureMinimumVisibility(v TodayVisibility) TodayVisibility {
	if !HasVisibleCTA(v) {
		v.ShowStarterBlock = true
	}
	return v
}

// HasVisibleCTA reports whether at least one section that can carry the
// primary call-to-action is visible.
func HasVisibleCTA(v TodayVisibility) bool {
	if v.ShowStarterBlock {
		return true
	}
	if v.ShowDailyPlan {
		return true
	}
	if v.ShowExplore && !v.HideExplore {
		return true
	}
	return false
}
