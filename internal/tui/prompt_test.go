package tui

import (
	"bytes"
	"strings"
	"testing"
)

func withAccessiblePrompt(t *testing.T, input string) *bytes.Buffer {
	t.Helper()
	stubEnvironment(t, true, map[string]string{AccessibleEnv: "1"})

	origIn, origOut := promptIn, promptOut
	t.Cleanup(func() { promptIn, promptOut = origIn, origOut })

	var out bytes.Buffer
	promptIn = strings.NewReader(input)
	promptOut = &out
	return &out
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"long yes", "yes\n", true},
		{"no", "n\n", false},
		{"empty defaults to no", "\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := withAccessiblePrompt(t, tt.input)

			got, err := Confirm("Migrate to Parcel?", "Files are rewritten in place.")
			if err != nil {
				t.Fatalf("Confirm() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "Migrate to Parcel?") {
				t.Errorf("prompt title not rendered: %q", out.String())
			}
		})
	}
}
