// Package emit writes the configuration files and source edits that make a
// Create React App project build with Parcel. Each emitter is a no-op when
// its trigger is absent.
package emit

import (
	"context"
	"path/filepath"

	"github.com/indaco/cra2parcel/internal/core"
	"github.com/indaco/cra2parcel/internal/manifest"
)

// Project file names, relative to the project directory.
const (
	JestConfigFile  = "jest.config.json"
	JestSupportDir  = "config/jest"
	ParcelRCFile    = ".parcelrc"
	PostCSSRCFile   = ".postcssrc"
	BabelConfigFile = "babel.config.json"
	TailwindConfig  = "tailwind.config.js"
	GitignoreFile   = ".gitignore"
	HTMLEntryFile   = "public/index.html"
	SourceDir       = "src"
)

// Emitter performs file generation for the project rooted at dir.
type Emitter struct {
	fs  core.FileSystem
	dir string
}

// New creates an Emitter.
func New(fs core.FileSystem, dir string) *Emitter {
	return &Emitter{fs: fs, dir: dir}
}

// path joins a slash-separated project-relative name onto the project dir.
func (e *Emitter) path(rel string) string {
	return filepath.Join(e.dir, filepath.FromSlash(rel))
}

// loadManifest re-reads package.json so edits from previous steps are seen.
func (e *Emitter) loadManifest(ctx context.Context) (*manifest.Manifest, error) {
	return manifest.Load(ctx, e.fs, e.path(manifest.Filename))
}

// exists reports whether a project-relative path exists.
func (e *Emitter) exists(ctx context.Context, rel string) bool {
	return core.Exists(ctx, e.fs, e.path(rel))
}
