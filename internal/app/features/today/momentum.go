// internal/app/features/today/momentum.go
package today

import (
	"github.com/jvetere1999/passion-os/internal/app/system/sessionstate"
)

// MomentumState is the lifecycle of the one-shot momentum acknowledgment:
// pending → shown → dismissed. Transitions are monotonic; dismissed is
// terminal.
type MomentumState string

const (
	MomentumPending   MomentumState = "pending"
	MomentumShown     MomentumState = "shown"
	MomentumDismissed MomentumState = "dismissed"
)

// MomentumTracker drives the momentum banner state machine over an injected
// session store. A missing or unrecognized slot value reads as pending.
type MomentumTracker struct {
	store sessionstate.Store
}

// NewMomentumTracker creates a tracker over the given session store.
func NewMomentumTracker(store sessionstate.Store) *MomentumTracker {
	return &MomentumTracker{store: store}
}

// State reads the current momentum state.
func (t *MomentumTracker) State() MomentumState {
	v, ok := t.store.Get(sessionstate.KeyMomentum)
	if !ok {
		return MomentumPending
	}
	switch MomentumState(v) {
	case MomentumShown:
		return MomentumShown
	case MomentumDismissed:
		return MomentumDismissed
	default:
		return MomentumPending
	}
}

// MarkShown records that the banner was rendered. Once dismissed, the state
// never regresses: the guard lives here, not with the caller.
func (t *MomentumTracker) MarkShown() MomentumState {
	if t.State() == MomentumDismissed {
		return MomentumDismissed
	}
	t.store.Set(sessionstate.KeyMomentum, string(MomentumShown))
	return t.State()
}

// Dismiss moves the banner to its terminal state unconditionally.
func (t *MomentumTracker) Dismiss() MomentumState {
	t.store.Set(sessionstate.KeyMomentum, string(MomentumDismissed))
	return t.State()
}
