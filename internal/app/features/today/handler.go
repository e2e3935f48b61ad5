// internal/app/features/today/handler.go
package today

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jvetere1999/passion-os/internal/app/system/auth"
	"github.com/jvetere1999/passion-os/internal/app/system/sessionstate"
	"github.com/jvetere1999/passion-os/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves the Today dashboard API.
type Handler struct {
	Agg        *Aggregator
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

// NewHandler constructs a today Handler.
func NewHandler(agg *Aggregator, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Agg: agg, SessionMgr: sessionMgr, Log: logger}
}

// todayResponse is the single-request dashboard payload.
type todayResponse struct {
	UserState       TodayUserState  `json:"userState"`
	Visibility      TodayVisibility `json:"visibility"`
	Action          ResolvedAction  `json:"action"`
	Momentum        MomentumState   `json:"momentum"`
	SoftLanding     softLandingView `json:"softLanding"`
	PlanSummary     PlanSummary     `json:"planSummary"`
	DynamicUI       DynamicUIData   `json:"dynamicUi"`
	Personalization Personalization `json:"personalization"`
}

// softLandingView combines the persisted tracker state with the soft-mode
// parameters of the current request.
type softLandingView struct {
	State   SoftLandingState  `json:"state"`
	Source  SoftLandingSource `json:"source,omitempty"`
	Request SoftLandingParams `json:"request"`
}

// momentumResponse is the body for the momentum tracker endpoints.
type momentumResponse struct {
	Momentum MomentumState `json:"momentum"`
}

// softLandingResponse is the body for the soft-landing tracker endpoints.
type softLandingResponse struct {
	State  SoftLandingState  `json:"state"`
	Source SoftLandingSource `json:"source,omitempty"`
}

// ServeToday handles GET /api/today.
//
// Everything the dashboard needs arrives in one response. Visibility and
// the CTA pass through the safety-net wrappers, so even a panicking rule or
// a dead database yields the generic focus CTA with all sections visible,
// never a blank page.
func (h *Handler) ServeToday(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requestUser(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	plan := h.Agg.PlanToday(ctx, userID)
	state := h.Agg.UserState(ctx, userID, plan)

	visibility := WithFallback(h.Log, "visibility", DefaultVisibility(), func() TodayVisibility {
		return ResolveVisibility(state)
	})
	visibility = EnsureMinimumVisibility(visibility)

	action := WithFallback(h.Log, "action", FallbackAction(), func() ResolvedAction {
		return ResolveStarterAction(plan)
	})
	action = ValidateResolverOutput(action)

	store := h.sessionStore(w, r)
	soft := NewSoftLandingTracker(store)
	softSource, _ := soft.Source()

	resp := todayResponse{
		UserState:  state,
		Visibility: visibility,
		Action:     action,
		Momentum:   NewMomentumTracker(store).State(),
		SoftLanding: softLandingView{
			State:   soft.State(),
			Source:  softSource,
			Request: ParseSoftLandingParams(r.URL.Query()),
		},
		PlanSummary:     PlanSummaryFor(plan),
		DynamicUI:       h.Agg.DynamicUI(ctx, userID),
		Personalization: h.Agg.Personalization(ctx, userID),
	}

	h.Agg.RecordActivity(ctx, userID)

	writeJSON(w, resp)
}

// ServeMomentumShown handles POST /api/today/momentum/shown.
// Tracker endpoints are silent-fail: storage trouble degrades to the
// default state, the client always gets 200 with the resulting state.
func (h *Handler) ServeMomentumShown(w http.ResponseWriter, r *http.Request) {
	tracker := NewMomentumTracker(h.sessionStore(w, r))
	writeJSON(w, momentumResponse{Momentum: tracker.MarkShown()})
}

// ServeMomentumDismiss handles POST /api/today/momentum/dismiss.
func (h *Handler) ServeMomentumDismiss(w http.ResponseWriter, r *http.Request) {
	tracker := NewMomentumTracker(h.sessionStore(w, r))
	writeJSON(w, momentumResponse{Momentum: tracker.Dismiss()})
}

// activateRequest is the JSON body for soft-landing activation.
type activateRequest struct {
	Source string `json:"source"`
}

// ServeSoftLandingActivate handles POST /api/today/soft-landing/activate.
// An unrecognized source is a 400; everything else follows the
// first-activation-wins transition table.
func (h *Handler) ServeSoftLandingActivate(w http.ResponseWriter, r *http.Request) {
	var req activateRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	source, ok := ParseSoftLandingSource(req.Source)
	if !ok {
		http.Error(w, "unknown soft landing source", http.StatusBadRequest)
		return
	}

	tracker := NewSoftLandingTracker(h.sessionStore(w, r))
	state := tracker.Activate(source)
	recorded, _ := tracker.Source()
	writeJSON(w, softLandingResponse{State: state, Source: recorded})
}

// ServeSoftLandingClear handles POST /api/today/soft-landing/clear.
func (h *Handler) ServeSoftLandingClear(w http.ResponseWriter, r *http.Request) {
	tracker := NewSoftLandingTracker(h.sessionStore(w, r))
	state := tracker.Clear()
	recorded, _ := tracker.Source()
	writeJSON(w, softLandingResponse{State: state, Source: recorded})
}

// requestUser extracts the signed-in user's object ID. RequireSignedIn runs
// before these handlers, so a missing user means middleware misconfiguration
// rather than an anonymous visitor.
func (h *Handler) requestUser(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		h.Log.Warn("session carried malformed user id", zap.String("user_id", u.ID))
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return primitive.NilObjectID, false
	}
	return oid, true
}

// sessionStore binds the tracker slots to this request's session cookie.
func (h *Handler) sessionStore(w http.ResponseWriter, r *http.Request) sessionstate.Store {
	return sessionstate.NewCookie(w, r, h.SessionMgr.Store(), h.SessionMgr.Name(), h.Log)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
