package today

import (
	"net/url"
	"testing"

	"github.com/jvetere1999/passion-os/internal/app/system/sessionstate"
)

func TestSoftLandingTrackerInitialState(t *testing.T) {
	tracker := NewSoftLandingTracker(sessionstate.NewMemory())
	if got := tracker.State(); got != SoftLandingInactive {
		t.Errorf("State: got %q, want %q", got, SoftLandingInactive)
	}
	if tracker.Active() {
		t.Error("Active: got true, want false")
	}
	if _, ok := tracker.Source(); ok {
		t.Error("Source: got ok=true, want false")
	}
}

func TestSoftLandingTrackerActivate(t *testing.T) {
	tracker := NewSoftLandingTracker(sessionstate.NewMemory())

	if got := tracker.Activate(SourceFocus); got != SoftLandingActive {
		t.Fatalf("Activate: got %q, want %q", got, SoftLandingActive)
	}
	if !tracker.Active() {
		t.Error("Active: got false, want true")
	}
	src, ok := tracker.Source()
	if !ok || src != SourceFocus {
		t.Errorf("Source: got (%q, %v), want (%q, true)", src, ok, SourceFocus)
	}
}

func TestSoftLandingTrackerFirstActivationWins(t *testing.T) {
	tracker := NewSoftLandingTracker(sessionstate.NewMemory())

	tracker.Activate(SourceFocus)
	if got := tracker.Activate(SourceQuest); got != SoftLandingActive {
		t.Errorf("second Activate: got %q, want %q", got, SoftLandingActive)
	}
	src, ok := tracker.Source()
	if !ok || src != SourceFocus {
		t.Errorf("Source after second activation: got (%q, %v), want (%q, true)", src, ok, SourceFocus)
	}
}

func TestSoftLandingTrackerClearIsTerminal(t *testing.T) {
	tracker := NewSoftLandingTracker(sessionstate.NewMemory())

	tracker.Activate(SourceFocus)
	if got := tracker.Clear(); got != SoftLandingCleared {
		t.Fatalf("Clear: got %q, want %q", got, SoftLandingCleared)
	}

	// A later trigger in the same session must not re-enter reduced mode.
	if got := tracker.Activate(SourceQuest); got != SoftLandingCleared {
		t.Errorf("Activate after Clear: got %q, want %q", got, SoftLandingCleared)
	}
	if tracker.Active() {
		t.Error("Active after Clear: got true, want false")
	}

	// The original source survives.
	src, ok := tracker.Source()
	if !ok || src != SourceFocus {
		t.Errorf("Source: got (%q, %v), want (%q, true)", src, ok, SourceFocus)
	}
}

func TestSoftLandingTrackerClearWithoutActivate(t *testing.T) {
	tracker := NewSoftLandingTracker(sessionstate.NewMemory())
	if got := tracker.Clear(); got != SoftLandingCleared {
		t.Errorf("Clear: got %q, want %q", got, SoftLandingCleared)
	}
	if got := tracker.Activate(SourceFocus); got != SoftLandingCleared {
		t.Errorf("Activate after standalone Clear: got %q, want %q", got, SoftLandingCleared)
	}
}

func TestParseSoftLandingSource(t *testing.T) {
	tests := []struct {
		raw    string
		want   SoftLandingSource
		wantOK bool
	}{
		{"focus", SourceFocus, true},
		{"quest", SourceQuest, true},
		{"", "", false},
		{"Focus", "", false},
		{"workout", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseSoftLandingSource(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseSoftLandingSource(%q): got (%q, %v), want (%q, %v)",
				tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestBuildSoftLandingURL(t *testing.T) {
	tests := []struct {
		source SoftLandingSource
		status string
		want   string
	}{
		{SourceFocus, "complete", "/today?mode=soft&from=focus&status=complete"},
		{SourceFocus, "abandon", "/today?mode=soft&from=focus&status=abandon"},
		{SourceQuest, "complete", "/today?mode=soft&from=quest&status=complete"},
	}

	for _, tt := range tests {
		if got := BuildSoftLandingURL(tt.source, tt.status); got != tt.want {
			t.Errorf("BuildSoftLandingURL(%q, %q): got %q, want %q",
				tt.source, tt.status, got, tt.want)
		}
	}
}

func TestSoftLandingURLRoundTrip(t *testing.T) {
	raw := BuildSoftLandingURL(SourceQuest, "abandon")

	if !IsSoftLandingURL(raw) {
		t.Fatalf("IsSoftLandingURL(%q): got false, want true", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("url.Parse(%q): %v", raw, err)
	}
	got := ParseSoftLandingParams(u.Query())
	want := SoftLandingParams{IsSoftMode: true, Source: SourceQuest, Status: "abandon"}
	if got != want {
		t.Errorf("ParseSoftLandingParams: got %+v, want %+v", got, want)
	}
}

func TestParseSoftLandingParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  SoftLandingParams
	}{
		{"no params", "", SoftLandingParams{}},
		{"soft mode only", "mode=soft", SoftLandingParams{IsSoftMode: true}},
		{"unknown source dropped", "mode=soft&from=workout&status=complete",
			SoftLandingParams{IsSoftMode: true, Status: "complete"}},
		{"other mode ignored", "mode=hard&from=focus",
			SoftLandingParams{Source: SourceFocus}},
		{"status passthrough", "mode=soft&from=focus&status=anything",
			SoftLandingParams{IsSoftMode: true, Source: SourceFocus, Status: "anything"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery(%q): %v", tt.query, err)
			}
			if got := ParseSoftLandingParams(q); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIsSoftLandingURL(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"/today?mode=soft&from=focus&status=complete", true},
		{"/today", false},
		{"/today?mode=hard", false},
		{"://bad url", false},
	}

	for _, tt := range tests {
		if got := IsSoftLandingURL(tt.raw); got != tt.want {
			t.Errorf("IsSoftLandingURL(%q): got %v, want %v", tt.raw, got, tt.want)
		}
	}
}
