package tui

import (
	"testing"
)

func stubEnvironment(t *testing.T, tty bool, env map[string]string) {
	t.Helper()
	origGetenv, origIsTerminal := getenv, isTerminal
	t.Cleanup(func() {
		getenv, isTerminal = origGetenv, origIsTerminal
	})
	getenv = func(key string) string { return env[key] }
	isTerminal = func() bool { return tty }
}

func TestIsInteractive(t *testing.T) {
	tests := []struct {
		name string
		tty  bool
		env  map[string]string
		want bool
	}{
		{"terminal outside CI", true, nil, true},
		{"not a terminal", false, nil, false},
		{"generic CI", true, map[string]string{"CI": "true"}, false},
		{"github actions", true, map[string]string{"GITHUB_ACTIONS": "true"}, false},
		{"azure pipelines", true, map[string]string{"TF_BUILD": "True"}, false},
		{"unrelated variable", true, map[string]string{"HOME": "/root"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubEnvironment(t, tt.tty, tt.env)
			if got := IsInteractive(); got != tt.want {
				t.Errorf("IsInteractive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTTY(t *testing.T) {
	stubEnvironment(t, true, nil)
	if !IsTTY() {
		t.Error("IsTTY() = false, want true")
	}
	stubEnvironment(t, false, nil)
	if IsTTY() {
		t.Error("IsTTY() = true, want false")
	}
}
