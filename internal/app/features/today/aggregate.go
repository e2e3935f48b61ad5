// internal/app/features/today/aggregate.go
package today

import (
	"context"
	"time"

	"github.com/jvetere1999/passion-os/internal/app/system/navigation"
	"github.com/jvetere1999/passion-os/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Source interfaces implemented by the mongo stores. The aggregator only
// depends on these, so handler tests run against in-memory fakes.

// PlanSource supplies the user's daily plan.
type PlanSource interface {
	ForDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.DailyPlan, error)
}

// FocusSource supplies focus-session signals.
type FocusSource interface {
	HasActive(ctx context.Context, userID primitive.ObjectID) (bool, error)
	LastCompleted(ctx context.Context, userID primitive.ObjectID) (*models.FocusSession, error)
}

// HabitSource supplies habit signals.
type HabitSource interface {
	HasActiveStreak(ctx context.Context, userID primitive.ObjectID) (bool, error)
	PendingToday(ctx context.Context, userID primitive.ObjectID, now time.Time) (int64, error)
}

// QuestSource supplies the active quest count.
type QuestSource interface {
	ActiveCount(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

// InboxSource supplies the unread inbox count.
type InboxSource interface {
	UnreadCount(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

// UserSource supplies the account record for first-day/gap signals and
// receives the activity stamp each dashboard load leaves behind.
type UserSource interface {
	Get(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	TouchActivity(ctx context.Context, userID primitive.ObjectID) error
}

// SettingsSource supplies per-user personalization.
type SettingsSource interface {
	Get(ctx context.Context, userID primitive.ObjectID) (models.UserSettings, error)
}

// Aggregator computes the per-load TodayUserState and the supporting page
// data from the collaborating services. Every signal degrades to its zero
// value on error; an unreachable store dims a section, it never fails the
// page.
type Aggregator struct {
	Plans    PlanSource
	Focus    FocusSource
	Habits   HabitSource
	Quests   QuestSource
	Inbox    InboxSource
	Users    UserSource
	Settings SettingsSource

	// GapDays is how many days of inactivity count as "returning after a
	// gap". Zero means the default of 3.
	GapDays int

	Log *zap.Logger

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

func (a *Aggregator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *Aggregator) gap() time.Duration {
	days := a.GapDays
	if days <= 0 {
		days = 3
	}
	return time.Duration(days) * 24 * time.Hour
}

// PlanToday fetches and validates today's plan. Malformed documents and
// store errors both collapse to nil ("no plan").
func (a *Aggregator) PlanToday(ctx context.Context, userID primitive.ObjectID) *models.DailyPlan {
	date := a.now().UTC().Format("2006-01-02")
	plan, err := a.Plans.ForDate(ctx, userID, date)
	if err != nil {
		a.Log.Warn("plan fetch failed", zap.String("date", date), zap.Error(err))
		return nil
	}
	return ValidateDailyPlan(plan)
}

// UserState derives the visibility input signals. The plan is passed in so
// one fetch serves both the state and the action resolution.
func (a *Aggregator) UserState(ctx context.Context, userID primitive.ObjectID, plan *models.DailyPlan) TodayUserState {
	state := TodayUserState{}

	if plan != nil {
		state.PlanExists = true
		state.HasIncompletePlanItems = plan.HasIncompleteItems()
	}

	if active, err := a.Focus.HasActive(ctx, userID); err != nil {
		a.Log.Warn("focus signal failed", zap.Error(err))
	} else {
		state.FocusActive = active
	}

	if streak, err := a.Habits.HasActiveStreak(ctx, userID); err != nil {
		a.Log.Warn("streak signal failed", zap.Error(err))
	} else {
		state.ActiveStreak = streak
	}

	user, err := a.Users.Get(ctx, userID)
	if err != nil {
		a.Log.Warn("user signal failed", zap.Error(err))
		return state
	}

	now := a.now().UTC()
	state.FirstDay = sameDay(user.CreatedAt.UTC(), now)
	if user.LastActivityAt != nil && now.Sub(user.LastActivityAt.UTC()) > a.gap() {
		state.ReturningAfterGap = true
	}
	return state
}

// RecordActivity stamps the user's activity timestamp. Runs after the gap
// signal is computed, so today's visit can't mask yesterday's gap.
func (a *Aggregator) RecordActivity(ctx context.Context, userID primitive.ObjectID) {
	if err := a.Users.TouchActivity(ctx, userID); err != nil {
		a.Log.Warn("activity stamp failed", zap.Error(err))
	}
}

// PlanSummaryFor condenses a validated plan for the payload.
func PlanSummaryFor(plan *models.DailyPlan) PlanSummary {
	if plan == nil {
		return PlanSummary{}
	}
	s := PlanSummary{
		PlanExists:     true,
		TotalCount:     len(plan.Items),
		CompletedCount: 0,
	}
	for _, it := range plan.Items {
		if it.Completed {
			s.CompletedCount++
		}
	}
	s.HasIncompletePlanItems = s.CompletedCount < s.TotalCount
	for _, it := range ValidPlanItems(plan) {
		if !it.Completed {
			s.NextIncompleteItem = &NextItem{
				ID:        it.ID,
				Title:     it.Title,
				Priority:  it.Priority,
				ActionURL: it.ActionURL,
				Type:      it.Type,
			}
			break
		}
	}
	return s
}

// DynamicUI builds quick picks and the resume-last pointer from current
// activity. Only modules with pending work show up.
func (a *Aggregator) DynamicUI(ctx context.Context, userID primitive.ObjectID) DynamicUIData {
	ui := DynamicUIData{QuickPicks: []QuickPick{}}

	if pending, err := a.Habits.PendingToday(ctx, userID, a.now()); err != nil {
		a.Log.Warn("pending habits failed", zap.Error(err))
	} else if pending > 0 {
		ui.QuickPicks = append(ui.QuickPicks, QuickPick{
			Module: "habits",
			Route:  "/habits",
			Label:  "Check habits",
			Count:  int(pending),
		})
	}

	if quests, err := a.Quests.ActiveCount(ctx, userID); err != nil {
		a.Log.Warn("active quests failed", zap.Error(err))
	} else if quests > 0 {
		ui.QuickPicks = append(ui.QuickPicks, QuickPick{
			Module: "quests",
			Route:  "/quests",
			Label:  "Continue quests",
			Count:  int(quests),
		})
	}

	if unread, err := a.Inbox.UnreadCount(ctx, userID); err != nil {
		a.Log.Warn("unread inbox failed", zap.Error(err))
	} else if unread > 0 {
		ui.QuickPicks = append(ui.QuickPicks, QuickPick{
			Module: "inbox",
			Route:  "/inbox",
			Label:  "Check inbox",
			Count:  int(unread),
		})
	}

	if last, err := a.Focus.LastCompleted(ctx, userID); err != nil {
		a.Log.Warn("resume-last failed", zap.Error(err))
	} else if last != nil && last.EndedAt != nil {
		label := "Resume Focus"
		if last.Mode != "" {
			label = "Resume " + last.Mode
		}
		ui.ResumeLast = &ResumeLast{
			Module:   "focus",
			Route:    navigation.FallbackRoute,
			Label:    label,
			LastUsed: last.EndedAt.UTC().Format(time.RFC3339),
		}
	}

	return ui
}

// Personalization loads per-user settings with safe defaults when no
// document exists or the store is unreachable.
func (a *Aggregator) Personalization(ctx context.Context, userID primitive.ObjectID) Personalization {
	p := Personalization{
		Interests:           []string{},
		NudgeIntensity:      models.DefaultNudgeIntensity,
		FocusDuration:       models.DefaultFocusDurationMinutes,
		GamificationVisible: true,
	}

	settings, err := a.Settings.Get(ctx, userID)
	if err != nil {
		a.Log.Warn("settings fetch failed", zap.Error(err))
		return p
	}
	if settings.NudgeIntensity != "" {
		p.NudgeIntensity = settings.NudgeIntensity
	}
	if settings.FocusDurationMinutes > 0 {
		p.FocusDuration = settings.FocusDurationMinutes
	}
	p.GamificationVisible = settings.GamificationVisible
	if len(settings.Interests) > 0 {
		p.Interests = settings.Interests
	}
	return p
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
