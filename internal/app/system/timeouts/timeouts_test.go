package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()

	if got := Ping(); got != DefaultPing {
		t.Errorf("Ping: got %v, want %v", got, DefaultPing)
	}
	if got := Short(); got != DefaultShort {
		t.Errorf("Short: got %v, want %v", got, DefaultShort)
	}
	if got := Medium(); got != DefaultMedium {
		t.Errorf("Medium: got %v, want %v", got, DefaultMedium)
	}
}

func TestConfigureOverrides(t *testing.T) {
	defer Reset()

	Configure(Config{Ping: 1 * time.Second, Medium: 30 * time.Second})

	if got := Ping(); got != 1*time.Second {
		t.Errorf("Ping: got %v, want %v", got, 1*time.Second)
	}
	if got := Medium(); got != 30*time.Second {
		t.Errorf("Medium: got %v, want %v", got, 30*time.Second)
	}
	// Unset fields keep their defaults.
	if got := Short(); got != DefaultShort {
		t.Errorf("Short: got %v, want %v", got, DefaultShort)
	}
}
