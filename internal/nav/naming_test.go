package nav

import "testing"

func TestHumanize(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"empty", "", ""},
		{"single letter", "a", "A"},
		{"two words", "service-accounts", "Service Accounts"},
		{"acronym kept", "ping-aic", "Ping Aic"},
		{"already capitalized", "Linux", "Linux"},
		{"rest untouched", "node-JS-notes", "Node JS Notes"},
		{"double hyphen", "a--b", "A  B"},
		{"trailing hyphen", "notes-", "Notes "},
		{"digits", "2024-review", "2024 Review"},
		{"spaces not split", "my notes", "My notes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Humanize(tt.input); got != tt.want {
				t.Errorf("Humanize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHumanizeIdempotentWithoutHyphens(t *testing.T) {
	for _, s := range []string{"Service Accounts", "Linux", "Ping AIC"} {
		if got := Humanize(Humanize(s)); got != Humanize(s) {
			t.Errorf("Humanize not idempotent on %q: %q", s, got)
		}
		if got := Humanize(s); got != s {
			t.Errorf("Humanize(%q) = %q, want unchanged", s, got)
		}
	}
}
