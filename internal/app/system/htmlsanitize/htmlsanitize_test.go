package htmlsanitize

import "testing"

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Write the report", "Write the report"},
		{"tags stripped", "<b>Deep</b> work", "Deep work"},
		{"script content removed", `<script>alert("x")</script>Morning pages`, "Morning pages"},
		{"attributes removed", `<a href="https://evil.example">link</a>`, "link"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.in); got != tt.want {
				t.Errorf("PlainText(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
