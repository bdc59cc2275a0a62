package emit

import (
	"context"
	"fmt"

	"github.com/indaco/cra2parcel/internal/core"
)

// GitignoreEntries is appended verbatim; running twice appends twice.
const GitignoreEntries = "\n.parcel-cache\ndist"

// AppendGitignore adds Parcel's cache and output directories to .gitignore.
// The file must already exist.
func (e *Emitter) AppendGitignore(ctx context.Context) error {
	path := e.path(GitignoreFile)
	data, err := e.fs.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", path, err)
	}

	data = append(data, GitignoreEntries...)
	if err := e.fs.WriteFile(ctx, path, data, core.PermFile); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}
	return nil
}
