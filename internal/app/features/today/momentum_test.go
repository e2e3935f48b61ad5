package today

import (
	"testing"

	"github.com/jvetere1999/passion-os/internal/app/system/sessionstate"
)

func TestMomentumTrackerInitialState(t *testing.T) {
	tracker := NewMomentumTracker(sessionstate.NewMemory())
	if got := tracker.State(); got != MomentumPending {
		t.Errorf("State: got %q, want %q", got, MomentumPending)
	}
}

func TestMomentumTrackerTransitions(t *testing.T) {
	tests := []struct {
		name string
		ops  []string
		want MomentumState
	}{
		{"shown", []string{"shown"}, MomentumShown},
		{"shown is idempotent", []string{"shown", "shown"}, MomentumShown},
		{"dismissed", []string{"shown", "dismiss"}, MomentumDismissed},
		{"dismiss without show", []string{"dismiss"}, MomentumDismissed},
		{"dismissed never regresses", []string{"shown", "dismiss", "shown"}, MomentumDismissed},
		{"dismiss is idempotent", []string{"dismiss", "dismiss", "shown"}, MomentumDismissed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewMomentumTracker(sessionstate.NewMemory())
			var last MomentumState
			for _, op := range tt.ops {
				switch op {
				case "shown":
					last = tracker.MarkShown()
				case "dismiss":
					last = tracker.Dismiss()
				}
			}
			if last != tt.want {
				t.Errorf("returned state: got %q, want %q", last, tt.want)
			}
			if got := tracker.State(); got != tt.want {
				t.Errorf("State: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMomentumTrackerUnrecognizedSlotValue(t *testing.T) {
	store := sessionstate.NewMemory()
	store.Set(sessionstate.KeyMomentum, "garbage")

	tracker := NewMomentumTracker(store)
	if got := tracker.State(); got != MomentumPending {
		t.Errorf("State: got %q, want %q", got, MomentumPending)
	}
}
