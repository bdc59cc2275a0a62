package precheck

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/indaco/cra2parcel/internal/core"
	"github.com/indaco/cra2parcel/internal/resolve"
)

const validManifest = `{
  "dependencies": {"react": "^18.2.0", "react-scripts": "5.0.1"},
  "scripts": {
    "start": "react-scripts start",
    "build": "react-scripts build",
    "test": "react-scripts test"
  }
}`

func newProject(manifestJSON string, installed bool, lockfile string) *core.MockFileSystem {
	fs := core.NewMockFileSystem()
	fs.SetFile("/app/package.json", []byte(manifestJSON))
	if installed {
		fs.SetFile("/app/node_modules/react-scripts/package.json", []byte(`{"name":"react-scripts"}`))
	}
	if lockfile != "" {
		fs.SetFile("/app/"+lockfile, []byte(""))
	}
	return fs
}

func newChecker(fs core.FileSystem) *Checker {
	r := resolve.NewResolver(fs).WithEnv(func(string) string { return "" })
	return NewChecker(fs, r, "/app")
}

func TestCheck_Valid(t *testing.T) {
	fs := newProject(validManifest, true, "package-lock.json")
	if err := newChecker(fs).Check(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fs.Writes) != 0 {
		t.Errorf("Check() must not write, wrote %v", fs.Writes)
	}
}

func TestCheck_Violations(t *testing.T) {
	tests := []struct {
		name      string
		manifest  string
		installed bool
		lockfile  string
		wantMsg   string
	}{
		{
			name:      "missing dependency",
			manifest:  `{"dependencies": {"react": "18"}, "scripts": {"start": "react-scripts start"}}`,
			installed: true,
			wantMsg:   "Not a Create React App project. react-scripts was not found as a dependency.",
		},
		{
			name:      "no dependencies at all",
			manifest:  `{}`,
			installed: true,
			wantMsg:   "Not a Create React App project.",
		},
		{
			name:      "empty dependency value",
			manifest:  `{"dependencies": {"react-scripts": ""}}`,
			installed: true,
			wantMsg:   "Not a Create React App project.",
		},
		{
			name: "custom start",
			manifest: `{"dependencies": {"react-scripts": "5"}, "scripts": {
				"start": "craco start", "build": "react-scripts build", "test": "react-scripts test"}}`,
			installed: true,
			wantMsg:   `Unexpected "start" script. Expected "react-scripts start". Cannot complete migration.`,
		},
		{
			name: "custom build",
			manifest: `{"dependencies": {"react-scripts": "5"}, "scripts": {
				"start": "react-scripts start", "build": "react-scripts build --stats", "test": "react-scripts test"}}`,
			installed: true,
			wantMsg:   `Unexpected "build" script. Expected "react-scripts build". Cannot complete migration.`,
		},
		{
			name: "missing test",
			manifest: `{"dependencies": {"react-scripts": "5"}, "scripts": {
				"start": "react-scripts start", "build": "react-scripts build"}}`,
			installed: true,
			wantMsg:   `Unexpected "test" script. Expected "react-scripts test". Cannot complete migration.`,
		},
		{
			name:     "not installed with yarn",
			manifest: validManifest,
			lockfile: "yarn.lock",
			wantMsg:  "react-scripts is not installed. Run yarn first.",
		},
		{
			name:     "not installed and no lockfile",
			manifest: validManifest,
			wantMsg:  "No known package manager lockfile detected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newProject(tt.manifest, tt.installed, tt.lockfile)

			err := newChecker(fs).Check(context.Background())

			var pErr *Error
			if !errors.As(err, &pErr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if !strings.HasPrefix(pErr.Message, tt.wantMsg) {
				t.Errorf("message = %q, want prefix %q", pErr.Message, tt.wantMsg)
			}
			if len(fs.Writes) != 0 {
				t.Errorf("Check() must not write, wrote %v", fs.Writes)
			}
		})
	}
}

func TestCheck_MissingManifest(t *testing.T) {
	fs := core.NewMockFileSystem()

	err := newChecker(fs).Check(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var pErr *Error
	if errors.As(err, &pErr) {
		t.Errorf("missing manifest should be a generic failure, got precondition error %q", pErr.Message)
	}
}
