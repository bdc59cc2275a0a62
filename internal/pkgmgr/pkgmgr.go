// Package pkgmgr detects the package manager governing a project from its
// lockfile and drives it to swap dependencies.
package pkgmgr

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/indaco/cra2parcel/internal/core"
)

// Manager names a supported package manager binary.
type Manager string

const (
	// NPM is selected by package-lock.json.
	NPM Manager = "npm"

	// Yarn is selected by yarn.lock.
	Yarn Manager = "yarn"

	// PNPM is selected by pnpm-lock.yaml.
	PNPM Manager = "pnpm"
)

// ErrUnknownManager is returned when none of the known lockfiles exist.
var ErrUnknownManager = errors.New("No known package manager lockfile detected")

// lockfiles is checked in order; the first hit wins.
var lockfiles = []struct {
	name    string
	manager Manager
}{
	{"package-lock.json", NPM},
	{"yarn.lock", Yarn},
	{"pnpm-lock.yaml", PNPM},
}

// String returns the binary name.
func (m Manager) String() string {
	return string(m)
}

// Lockfile returns the lockfile name that identifies m.
func (m Manager) Lockfile() string {
	for _, l := range lockfiles {
		if l.manager == m {
			return l.name
		}
	}
	return ""
}

// RemoveArgs returns the arguments that uninstall pkg.
func (m Manager) RemoveArgs(pkg string) []string {
	if m == NPM {
		return []string{"rm", pkg}
	}
	return []string{"remove", pkg}
}

// AddArgs returns the arguments that install pkg.
func (m Manager) AddArgs(pkg string) []string {
	if m == NPM {
		return []string{"install", pkg}
	}
	return []string{"add", pkg}
}

// Detect returns the manager whose lockfile is present in dir.
func Detect(ctx context.Context, fs core.FileSystem, dir string) (Manager, error) {
	for _, l := range lockfiles {
		if core.Exists(ctx, fs, filepath.Join(dir, l.name)) {
			return l.manager, nil
		}
	}
	return "", ErrUnknownManager
}
