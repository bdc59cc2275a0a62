// Package resolve locates installed npm packages the way Node's require does:
// node_modules directories from the requesting directory up to the filesystem
// root, then NODE_PATH, then the legacy global folders under $HOME.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/indaco/cra2parcel/internal/core"
)

// ErrNotFound is returned when no candidate location holds the request.
var ErrNotFound = errors.New("module not found")

// Resolver resolves package-relative requests such as "react-scripts/package.json".
type Resolver struct {
	fs     core.FileSystem
	getenv func(string) string
}

// NewResolver creates a Resolver reading NODE_PATH and HOME from the process environment.
func NewResolver(fs core.FileSystem) *Resolver {
	return &Resolver{fs: fs, getenv: os.Getenv}
}

// WithEnv replaces the environment lookup, mainly for tests.
func (r *Resolver) WithEnv(getenv func(string) string) *Resolver {
	r.getenv = getenv
	return r
}

// Resolve returns the path of request as seen from a module living in fromDir.
// request must be a bare package specifier optionally followed by a subpath.
func (r *Resolver) Resolve(ctx context.Context, fromDir, request string) (string, error) {
	if request == "" || strings.HasPrefix(request, ".") || filepath.IsAbs(request) {
		return "", fmt.Errorf("invalid package request %q", request)
	}

	abs, err := filepath.Abs(fromDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", fromDir, err)
	}

	for _, dir := range r.lookupPaths(abs) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		candidate := filepath.Join(dir, filepath.FromSlash(request))
		info, err := r.fs.Stat(ctx, candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("cannot find %q from %q: %w", request, fromDir, ErrNotFound)
}

// PackageDir returns the directory of the installed package name, located
// through its package.json.
func (r *Resolver) PackageDir(ctx context.Context, fromDir, name string) (string, error) {
	pkgJSON, err := r.Resolve(ctx, fromDir, name+"/package.json")
	if err != nil {
		return "", err
	}
	return filepath.Dir(pkgJSON), nil
}

// lookupPaths lists candidate node_modules directories in lookup order.
func (r *Resolver) lookupPaths(from string) []string {
	var paths []string

	dir := from
	for {
		if filepath.Base(dir) != "node_modules" {
			paths = append(paths, filepath.Join(dir, "node_modules"))
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if nodePath := r.getenv("NODE_PATH"); nodePath != "" {
		for _, p := range filepath.SplitList(nodePath) {
			if p != "" {
				paths = append(paths, p)
			}
		}
	}

	if home := r.getenv("HOME"); home != "" {
		paths = append(paths,
			filepath.Join(home, ".node_modules"),
			filepath.Join(home, ".node_libraries"),
		)
	}

	return paths
}
