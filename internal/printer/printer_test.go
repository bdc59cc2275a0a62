package printer

import (
	"bytes"
	"strings"
	"testing"
)

// captureOutput redirects normal output to a buffer for the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := out
	out = &buf
	t.Cleanup(func() { out = orig })
	return &buf
}

func plain(t *testing.T) {
	t.Helper()
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })
}

func TestPrintLines(t *testing.T) {
	plain(t)

	tests := []struct {
		name  string
		print func(string)
		input string
		want  string
	}{
		{"step", PrintStep, "Ejecting jest config...", "Ejecting jest config...\n"},
		{"note is indented", PrintNote, "Detected babel macros. Added babel.config.json", "  Detected babel macros. Added babel.config.json\n"},
		{"command echo", PrintFaint, "$ npm rm react-scripts", "$ npm rm react-scripts\n"},
		{"warning", PrintWarning, "Migration cancelled.", "Migration cancelled.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOutput(t)
			tt.print(tt.input)
			if got := buf.String(); got != tt.want {
				t.Errorf("printed %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSuccess_NoColor(t *testing.T) {
	plain(t)
	if got := Success("npm start"); got != "npm start" {
		t.Errorf("Success() = %q, want plain text", got)
	}
}

func TestSuccess_EmptyInput(t *testing.T) {
	got := Success("")
	if strings.TrimSpace(stripANSI(got)) != "" {
		t.Errorf("Success(\"\") = %q, want no visible text", got)
	}
}

func TestPrintBanner(t *testing.T) {
	plain(t)
	withEnv(t, "windows", nil)
	buf := captureOutput(t)

	PrintBanner("Successfully migrated from Create React App to Parcel!")

	want := "√ Successfully migrated from Create React App to Parcel!\n"
	if got := buf.String(); got != want {
		t.Errorf("PrintBanner() printed %q, want %q", got, want)
	}
}

// stripANSI drops CSI escape sequences.
func stripANSI(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
