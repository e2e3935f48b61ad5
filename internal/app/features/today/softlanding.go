// internal/app/features/today/softlanding.go
package today

import (
	"fmt"
	"net/url"

	"github.com/jvetere1999/passion-os/internal/app/system/sessionstate"
)

// SoftLandingState is the reduced-mode lifecycle. Unlike momentum, the
// cleared state is distinguishable from never-activated so that a second
// activation in the same session stays a no-op.
type SoftLandingState string

const (
	SoftLandingInactive SoftLandingState = "inactive"
	SoftLandingActive   SoftLandingState = "active"
	SoftLandingCleared  SoftLandingState = "cleared"
)

// Slot values for the soft-landing state.
const (
	softLandingSlotActive  = "1"
	softLandingSlotCleared = "0"
)

// SoftLandingSource names the flow that triggered reduced mode.
type SoftLandingSource string

const (
	SourceFocus SoftLandingSource = "focus"
	SourceQuest SoftLandingSource = "quest"
)

// ParseSoftLandingSource validates a raw source string.
func ParseSoftLandingSource(raw string) (SoftLandingSource, bool) {
	switch SoftLandingSource(raw) {
	case SourceFocus:
		return SourceFocus, true
	case SourceQuest:
		return SourceQuest, true
	}
	return "", false
}

// SoftLandingTracker drives the reduced-mode state machine over an injected
// session store.
//
// Transition table for Activate:
//
//	inactive → active   (slot + source written)
//	active   → active   (no-op)
//	cleared  → cleared  (no-op)
//
// Clear always writes cleared. At most one reduced-mode trigger happens per
// browser session.
type SoftLandingTracker struct {
	store sessionstate.Store
}

// NewSoftLandingTracker creates a tracker over the given session store.
func NewSoftLandingTracker(store sessionstate.Store) *SoftLandingTracker {
	return &SoftLandingTracker{store: store}
}

// State distinguishes inactive (slot absent) from active and cleared.
// Unrecognized slot values read as inactive.
func (t *SoftLandingTracker) State() SoftLandingState {
	v, ok := t.store.Get(sessionstate.KeySoftLanding)
	if !ok {
		return SoftLandingInactive
	}
	switch v {
	case softLandingSlotActive:
		return SoftLandingActive
	case softLandingSlotCleared:
		return SoftLandingCleared
	default:
		return SoftLandingInactive
	}
}

// Active reports whether reduced mode is currently on.
func (t *SoftLandingTracker) Active() bool {
	return t.State() == SoftLandingActive
}

// Source returns the recorded activation source, ok=false when the slot is
// absent or holds an unrecognized value.
func (t *SoftLandingTracker) Source() (SoftLandingSource, bool) {
	v, ok := t.store.Get(sessionstate.KeySoftLandingSource)
	if !ok {
		return "", false
	}
	return ParseSoftLandingSource(v)
}

// Activate turns reduced mode on, first-activation-wins. Once any value has
// been written (active or cleared) further activations are no-ops, so the
// original source survives the whole session.
func (t *SoftLandingTracker) Activate(source SoftLandingSource) SoftLandingState {
	switch t.State() {
	case SoftLandingInactive:
		t.store.Set(sessionstate.KeySoftLanding, softLandingSlotActive)
		t.store.Set(sessionstate.KeySoftLandingSource, string(source))
		return t.State()
	default:
		return t.State()
	}
}

// Clear records that the user expanded a collapsed section. Unconditional,
// and terminal with respect to Activate.
func (t *SoftLandingTracker) Clear() SoftLandingState {
	t.store.Set(sessionstate.KeySoftLanding, softLandingSlotCleared)
	return t.State()
}

/* ----------------------------- URL protocol ----------------------------- */

// SoftLandingParams is the parsed form of the soft-landing URL contract.
type SoftLandingParams struct {
	IsSoftMode bool              `json:"isSoftMode"`
	Source     SoftLandingSource `json:"source,omitempty"` // empty when absent or unrecognized
	Status     string            `json:"status,omitempty"` // complete | abandon (passthrough)
}

// BuildSoftLandingURL builds the redirect target used by action-completion
// flows: /today?mode=soft&from={source}&status={status}. Parameter order is
// part of the contract, so the query string is assembled by hand.
func BuildSoftLandingURL(source SoftLandingSource, status string) string {
	return fmt.Sprintf("/today?mode=soft&from=%s&status=%s",
		url.QueryEscape(string(source)), url.QueryEscape(status))
}

// IsSoftLandingURL reports whether the given URL requests soft mode.
// Unparseable URLs are not soft-landing URLs.
func IsSoftLandingURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Query().Get("mode") == "soft"
}

// ParseSoftLandingParams extracts the soft-landing contract from query
// parameters. The source comes back empty unless it is a recognized value.
func ParseSoftLandingParams(q url.Values) SoftLandingParams {
	p := SoftLandingParams{
		IsSoftMode: q.Get("mode") == "soft",
		Status:     q.Get("status"),
	}
	if src, ok := ParseSoftLandingSource(q.Get("from")); ok {
		p.Source = src
	}
	return p
}
