// Package walker enumerates the regular files of a directory tree and lets the
// visitor cut the traversal short once it has seen enough.
package walker

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/indaco/cra2parcel/internal/core"
)

// Action tells Walk whether to keep going after a file has been visited.
type Action int

const (
	// Continue visits the remaining files.
	Continue Action = iota

	// Stop abandons the rest of the traversal, including sibling directories
	// that have not been entered yet.
	Stop
)

// String returns a human-readable representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case Stop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// VisitFunc is called once per regular file with its path joined onto the root.
type VisitFunc func(path string) (Action, error)

// Walk visits every regular file under root depth first, in the order ReadDir
// reports entries. Entries that are neither directories nor regular files
// (symlinks, devices, sockets) are skipped. It returns Stop when a visitor
// asked to stop, so callers can tell an early exit from a complete walk.
func Walk(ctx context.Context, fsys core.FileSystem, root string, visit VisitFunc) (Action, error) {
	if err := ctx.Err(); err != nil {
		return Stop, err
	}

	entries, err := fsys.ReadDir(ctx, root)
	if err != nil {
		return Stop, fmt.Errorf("failed to read directory %q: %w", root, err)
	}

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())

		switch {
		case entry.IsDir():
			action, err := Walk(ctx, fsys, path, visit)
			if err != nil || action == Stop {
				return Stop, err
			}
		case entry.Type().IsRegular():
			action, err := visit(path)
			if err != nil {
				return Stop, fmt.Errorf("visit %q: %w", path, err)
			}
			if action == Stop {
				return Stop, nil
			}
		}
	}

	return Continue, nil
}

// Any reports whether match returns true for at least one visited file,
// stopping at the first hit.
func Any(ctx context.Context, fsys core.FileSystem, root string, match func(path string) (bool, error)) (bool, error) {
	action, err := Walk(ctx, fsys, root, func(path string) (Action, error) {
		ok, err := match(path)
		if err != nil {
			return Stop, err
		}
		if ok {
			return Stop, nil
		}
		return Continue, nil
	})
	if err != nil {
		return false, err
	}
	return action == Stop, nil
}
