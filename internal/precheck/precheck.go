// Package precheck refuses to start a migration unless the project is an
// unmodified Create React App setup with its toolchain installed.
package precheck

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/indaco/cra2parcel/internal/core"
	"github.com/indaco/cra2parcel/internal/manifest"
	"github.com/indaco/cra2parcel/internal/pkgmgr"
	"github.com/indaco/cra2parcel/internal/resolve"
)

// Toolchain is the package every migrated project must depend on.
const Toolchain = "react-scripts"

// ExpectedScripts lists the lifecycle scripts that must be untouched, in check order.
var ExpectedScripts = []struct {
	Name    string
	Command string
}{
	{"start", "react-scripts start"},
	{"build", "react-scripts build"},
	{"test", "react-scripts test"},
}

// Error is a precondition violation. Its message is meant for the user as is.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Checker validates a project directory before any mutation.
type Checker struct {
	fs       core.FileSystem
	resolver *resolve.Resolver
	dir      string
}

// NewChecker creates a Checker for the project rooted at dir.
func NewChecker(fs core.FileSystem, resolver *resolve.Resolver, dir string) *Checker {
	return &Checker{fs: fs, resolver: resolver, dir: dir}
}

// Check returns the first violated precondition as an *Error. File access and
// parse failures are returned wrapped, not as *Error. It never writes.
func (c *Checker) Check(ctx context.Context) error {
	pkg, err := manifest.Load(ctx, c.fs, filepath.Join(c.dir, manifest.Filename))
	if err != nil {
		return err
	}

	if !pkg.HasDependency(Toolchain) {
		return &Error{Message: "Not a Create React App project. react-scripts was not found as a dependency."}
	}

	for _, s := range ExpectedScripts {
		if pkg.Script(s.Name) != s.Command {
			return &Error{Message: fmt.Sprintf(
				"Unexpected %q script. Expected %q. Cannot complete migration.", s.Name, s.Command)}
		}
	}

	if _, err := c.resolver.Resolve(ctx, c.dir, Toolchain+"/package.json"); err != nil {
		if !errors.Is(err, resolve.ErrNotFound) {
			return err
		}
		manager, detectErr := pkgmgr.Detect(ctx, c.fs, c.dir)
		if detectErr != nil {
			return &Error{Message: detectErr.Error()}
		}
		return &Error{Message: fmt.Sprintf("react-scripts is not installed. Run %s first.", manager)}
	}

	return nil
}
