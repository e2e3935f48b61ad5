package today

import (
	"testing"
)

func TestResolveVisibilityRuleChain(t *testing.T) {
	tests := []struct {
		name  string
		state TodayUserState
		want  TodayVisibility
	}{
		{
			name:  "default baseline",
			state: TodayUserState{},
			want: TodayVisibility{
				ShowStarterBlock: true,
				ShowDailyPlan:    true,
				ShowExplore:      true,
				ShowRewards:      true,
				ResolvedState:    StateDefault,
			},
		},
		{
			name:  "returning after gap enters reduced mode",
			state: TodayUserState{ReturningAfterGap: true},
			want: TodayVisibility{
				ShowStarterBlock:        true,
				ShowReducedModeBanner:   true,
				ShowDailyPlan:           true,
				ForceDailyPlanCollapsed: true,
				ShowExplore:             true,
				ForceExploreCollapsed:   true,
				ShowRewards:             true,
				ResolvedState:           StateReducedMode,
			},
		},
		{
			name:  "first day shows starter only",
			state: TodayUserState{FirstDay: true},
			want: TodayVisibility{
				ShowStarterBlock: true,
				ShowDailyPlan:    false,
				ShowExplore:      true,
				HideExplore:      true,
				ShowRewards:      true,
				ResolvedState:    StateFirstDay,
			},
		},
		{
			name:  "active focus session hides starter and collapses explore",
			state: TodayUserState{FocusActive: true},
			want: TodayVisibility{
				ShowStarterBlock:      false,
				ShowDailyPlan:         true,
				ShowExplore:           true,
				ForceExploreCollapsed: true,
				ShowRewards:           true,
				ResolvedState:         StateFocusActive,
			},
		},
		{
			name:  "plan in progress expands the plan",
			state: TodayUserState{PlanExists: true, HasIncompletePlanItems: true},
			want: TodayVisibility{
				ShowStarterBlock: false,
				ShowDailyPlan:    true,
				ShowExplore:      true,
				ShowRewards:      true,
				ResolvedState:    StatePlanInProgress,
			},
		},
		{
			name:  "fully completed plan falls through to default",
			state: TodayUserState{PlanExists: true, HasIncompletePlanItems: false},
			want: TodayVisibility{
				ShowStarterBlock: true,
				ShowDailyPlan:    true,
				ShowExplore:      true,
				ShowRewards:      true,
				ResolvedState:    StateDefault,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveVisibility(tt.state)
			if got != tt.want {
				t.Errorf("ResolveVisibility(%+v):\n got %+v\nwant %+v", tt.state, got, tt.want)
			}
		})
	}
}

func TestResolveVisibilityRulePriority(t *testing.T) {
	tests := []struct {
		name  string
		state TodayUserState
		want  ResolvedState
	}{
		{
			name: "gap beats everything",
			state: TodayUserState{
				ReturningAfterGap:      true,
				FirstDay:               true,
				FocusActive:            true,
				PlanExists:             true,
				HasIncompletePlanItems: true,
			},
			want: StateReducedMode,
		},
		{
			name: "first day beats focus and plan",
			state: TodayUserState{
				FirstDay:               true,
				FocusActive:            true,
				PlanExists:             true,
				HasIncompletePlanItems: true,
			},
			want: StateFirstDay,
		},
		{
			name: "focus beats plan",
			state: TodayUserState{
				FocusActive:            true,
				PlanExists:             true,
				HasIncompletePlanItems: true,
			},
			want: StateFocusActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveVisibility(tt.state)
			if got.ResolvedState != tt.want {
				t.Errorf("ResolvedState: got %q, want %q", got.ResolvedState, tt.want)
			}
		})
	}
}

// Every possible input state must resolve to at least one visible
// CTA-bearing section.
func TestResolveVisibilityNeverBlank(t *testing.T) {
	for mask := 0; mask < 64; mask++ {
		state := TodayUserState{
			PlanExists:             mask&1 != 0,
			HasIncompletePlanItems: mask&2 != 0,
			ReturningAfterGap:      mask&4 != 0,
			FirstDay:               mask&8 != 0,
			FocusActive:            mask&16 != 0,
			ActiveStreak:           mask&32 != 0,
		}
		v := ResolveVisibility(state)
		if !HasVisibleCTA(v) {
			t.Errorf("state %+v resolved with no visible CTA: %+v", state, v)
		}
	}
}

func TestResolveVisibilityDeterministic(t *testing.T) {
	state := TodayUserState{PlanExists: true, HasIncompletePlanItems: true, ActiveStreak: true}
	first := ResolveVisibility(state)
	for i := 0; i < 5; i++ {
		if got := ResolveVisibility(state); got != first {
			t.Fatalf("run %d differed: got %+v, want %+v", i, got, first)
		}
	}
}

func TestEnsureMinimumVisibility(t *testing.T) {
	tests := []struct {
		name        string
		in          TodayVisibility
		wantStarter bool
	}{
		{
			name:        "all hidden forces starter on",
			in:          TodayVisibility{},
			wantStarter: true,
		},
		{
			name:        "explore hidden with nothing else forces starter on",
			in:          TodayVisibility{ShowExplore: true, HideExplore: true},
			wantStarter: true,
		},
		{
			name:        "visible plan satisfies the floor",
			in:          TodayVisibility{ShowDailyPlan: true},
			wantStarter: false,
		},
		{
			name:        "visible explore satisfies the floor",
			in:          TodayVisibility{ShowExplore: true},
			wantStarter: false,
		},
		{
			name:        "collapsed sections still count as visible",
			in:          TodayVisibility{ShowDailyPlan: true, ForceDailyPlanCollapsed: true},
			wantStarter: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnsureMinimumVisibility(tt.in)
			if got.ShowStarterBlock != tt.wantStarter {
				t.Errorf("ShowStarterBlock: got %v, want %v", got.ShowStarterBlock, tt.wantStarter)
			}
			if !HasVisibleCTA(got) {
				t.Errorf("result has no visible CTA: %+v", got)
			}
		})
	}
}
