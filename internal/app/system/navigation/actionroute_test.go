package navigation

import "testing"

func TestIsValidActionRoute(t *testing.T) {
	tests := []struct {
		href string
		want bool
	}{
		{"/focus", true},
		{"/quests/7", true},
		{"/today?mode=soft&from=focus&status=complete", true},
		{"", false},
		{"focus", false},
		{"https://example.com/focus", false},
		{"//example.com/focus", true},
		{"javascript:alert(1)", false},
		{"/go?next=javascript:alert(1)", false},
		{"/go?next=JAVASCRIPT:alert(1)", false},
		{"data:text/html,x", false},
		{"/view?src=data:text/html,x", false},
	}

	for _, tt := range tests {
		if got := IsValidActionRoute(tt.href); got != tt.want {
			t.Errorf("IsValidActionRoute(%q): got %v, want %v", tt.href, got, tt.want)
		}
	}
}

func TestSafeActionRoute(t *testing.T) {
	tests := []struct {
		name     string
		href     string
		fallback string
		want     string
	}{
		{"valid passes through", "/quests/7", "/habits", "/quests/7"},
		{"invalid uses fallback", "javascript:alert(1)", "/habits", "/habits"},
		{"invalid with empty fallback uses default", "", "", FallbackRoute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeActionRoute(tt.href, tt.fallback); got != tt.want {
				t.Errorf("SafeActionRoute(%q, %q): got %q, want %q", tt.href, tt.fallback, got, tt.want)
			}
		})
	}
}
