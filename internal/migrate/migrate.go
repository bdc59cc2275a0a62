// Package migrate runs the Create React App to Parcel migration as a fixed
// sequence of steps over a single project directory.
package migrate

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/indaco/cra2parcel/internal/core"
	"github.com/indaco/cra2parcel/internal/emit"
	"github.com/indaco/cra2parcel/internal/fscopy"
	"github.com/indaco/cra2parcel/internal/manifest"
	"github.com/indaco/cra2parcel/internal/pkgmgr"
	"github.com/indaco/cra2parcel/internal/precheck"
	"github.com/indaco/cra2parcel/internal/printer"
	"github.com/indaco/cra2parcel/internal/resolve"
	"github.com/indaco/cra2parcel/internal/rewrite"
	"github.com/indaco/cra2parcel/internal/walker"
)

// Bundler is the package installed in place of the toolchain.
const Bundler = "parcel"

// PackageManager swaps dependencies using the project's package manager.
type PackageManager interface {
	Manager() pkgmgr.Manager
	Swap(remove, add string) error
}

// Detection records the project features that drive optional output.
type Detection struct {
	SVGComponents   bool
	ImportNormalize bool
	Tailwind        bool
	Macros          bool
}

// Report summarises a completed run.
type Report struct {
	// Manager is the package manager used for the dependency swap.
	Manager pkgmgr.Manager

	// Entry is the script injected into the HTML entry.
	Entry string

	// Detection is the final feature state.
	Detection Detection

	// DevDependencies lists the test tooling pinned from the toolchain.
	DevDependencies []string

	// RewrittenSources lists source files whose SVG imports changed.
	RewrittenSources []string

	// Written lists generated or edited project files, in write order, relative
	// to the project directory. Source rewrites are listed separately.
	Written []string
}

func (r *Report) wrote(rel ...string) {
	r.Written = append(r.Written, rel...)
}

// Migrator converts one project.
type Migrator struct {
	fs         core.FileSystem
	dir        string
	resolver   *resolve.Resolver
	copier     core.FileCopier
	jest       emit.JestFactory
	emitter    *emit.Emitter
	newManager func(m pkgmgr.Manager, dir string) PackageManager
	spin       func(title string, action func() error) error
}

// New creates a Migrator for the project rooted at dir using the real
// package manager, node and file copier.
func New(fs core.FileSystem, dir string) *Migrator {
	return &Migrator{
		fs:       fs,
		dir:      dir,
		resolver: resolve.NewResolver(fs),
		copier:   fscopy.NewOSFileCopier(),
		jest:     emit.NewNodeJestFactory(),
		emitter:  emit.New(fs, dir),
		newManager: func(m pkgmgr.Manager, dir string) PackageManager {
			return pkgmgr.NewAdapter(m, dir)
		},
		spin: func(_ string, action func() error) error {
			return action()
		},
	}
}

// WithSpinner shows long-running steps through spin.
func (m *Migrator) WithSpinner(spin func(title string, action func() error) error) *Migrator {
	m.spin = spin
	return m
}

// Run executes every step in order and stops at the first failure. Files
// written by earlier steps are left in place.
func (m *Migrator) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	steps := []func(context.Context, *Report) error{
		m.precheck,
		m.ejectJest,
		m.migratePackage,
		m.migratePublic,
		m.migrateSVG,
		m.migrateCSS,
		m.migrateMacros,
		m.addGitignore,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := step(ctx, report); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (m *Migrator) precheck(ctx context.Context, _ *Report) error {
	return precheck.NewChecker(m.fs, m.resolver, m.dir).Check(ctx)
}

func (m *Migrator) ejectJest(ctx context.Context, report *Report) error {
	printer.PrintStep("Ejecting jest config...")

	toolchainDir, err := m.resolver.PackageDir(ctx, m.dir, precheck.Toolchain)
	if err != nil {
		return fmt.Errorf("failed to locate %s: %w", precheck.Toolchain, err)
	}

	var result emit.JestResult
	err = m.spin("Creating Jest config", func() error {
		var ejectErr error
		result, ejectErr = m.emitter.EjectJest(ctx, m.jest, m.copier, toolchainDir)
		return ejectErr
	})
	if err != nil {
		return err
	}
	report.DevDependencies = result.DevDependencies
	report.wrote(result.Files...)
	return nil
}

func (m *Migrator) migratePackage(ctx context.Context, report *Report) error {
	printer.PrintStep("Updating dependencies...")

	manager, err := pkgmgr.Detect(ctx, m.fs, m.dir)
	if err != nil {
		return err
	}
	report.Manager = manager
	if err := m.newManager(manager, m.dir).Swap(precheck.Toolchain, Bundler); err != nil {
		return err
	}

	printer.PrintStep("Updating package.json scripts...")
	if err := m.emitter.RewriteScripts(ctx); err != nil {
		return err
	}
	report.wrote(manifest.Filename)
	return nil
}

func (m *Migrator) migratePublic(ctx context.Context, report *Report) error {
	printer.PrintStep("Updating public/index.html...")

	entry, err := m.emitter.MigrateHTML(ctx)
	if err != nil {
		return err
	}
	report.Entry = entry
	report.wrote(emit.HTMLEntryFile)
	return nil
}

func (m *Migrator) migrateSVG(ctx context.Context, report *Report) error {
	printer.PrintStep("Migrating SVG imports...")

	var rw rewrite.Rewriter = rewrite.SVGComponentRewriter{}
	_, err := walker.Walk(ctx, m.fs, m.sourceDir(), func(path string) (walker.Action, error) {
		if !rewrite.IsSourceFile(path) {
			return walker.Continue, nil
		}
		src, err := m.fs.ReadFile(ctx, path)
		if err != nil {
			return walker.Stop, fmt.Errorf("failed to read file %q: %w", path, err)
		}
		out, changed := rw.Rewrite(src)
		if !changed {
			return walker.Continue, nil
		}
		if err := m.fs.WriteFile(ctx, path, out, core.PermFile); err != nil {
			return walker.Stop, fmt.Errorf("failed to write file %q: %w", path, err)
		}
		report.RewrittenSources = append(report.RewrittenSources, m.rel(path))
		return walker.Continue, nil
	})
	if err != nil {
		return err
	}

	report.Detection.SVGComponents = len(report.RewrittenSources) > 0
	if !report.Detection.SVGComponents {
		return nil
	}

	printer.PrintNote("Detected SVG component imports. Added " + emit.SVGTransformer + " to " + emit.ParcelRCFile)
	if _, err := m.emitter.WriteParcelRC(ctx, true); err != nil {
		return err
	}
	report.wrote(emit.ParcelRCFile)
	return nil
}

func (m *Migrator) migrateCSS(ctx context.Context, report *Report) error {
	printer.PrintStep("Migrating CSS...")

	found, err := m.detect(ctx, rewrite.IsStyleFile, rewrite.NormalizeDetector)
	if err != nil {
		return err
	}
	report.Detection.ImportNormalize = found
	if found {
		printer.PrintNote("Detected " + rewrite.NormalizeDirective + ". Added " + emit.NormalizePlugin + " to " + emit.PostCSSRCFile)
	}

	result, err := m.emitter.MigratePostCSS(ctx, found)
	if err != nil {
		return err
	}
	report.Detection.Tailwind = result.Tailwind
	if result.Tailwind {
		printer.PrintNote("Detected " + emit.TailwindConfig + ". Added to " + emit.PostCSSRCFile)
		report.wrote(manifest.Filename)
	}
	if result.Written {
		report.wrote(emit.PostCSSRCFile)
	}
	return nil
}

func (m *Migrator) migrateMacros(ctx context.Context, report *Report) error {
	printer.PrintStep("Migrating JS...")

	found, err := m.detect(ctx, rewrite.IsSourceFile, rewrite.MacroDetector)
	if err != nil {
		return err
	}
	report.Detection.Macros = found
	if !found {
		return nil
	}

	printer.PrintNote("Detected babel macros. Added " + emit.BabelConfigFile)
	if _, err := m.emitter.WriteBabelConfig(ctx, true); err != nil {
		return err
	}
	report.wrote(emit.BabelConfigFile)
	return nil
}

func (m *Migrator) addGitignore(ctx context.Context, report *Report) error {
	printer.PrintStep("Adding Parcel files to .gitignore")

	if err := m.emitter.AppendGitignore(ctx); err != nil {
		return err
	}
	report.wrote(emit.GitignoreFile)
	return nil
}

// detect reports whether any file under src accepted by filter matches d.
// It stops reading at the first match.
func (m *Migrator) detect(ctx context.Context, filter func(string) bool, d rewrite.Detector) (bool, error) {
	return walker.Any(ctx, m.fs, m.sourceDir(), func(path string) (bool, error) {
		if !filter(path) {
			return false, nil
		}
		src, err := m.fs.ReadFile(ctx, path)
		if err != nil {
			return false, fmt.Errorf("failed to read file %q: %w", path, err)
		}
		return d.Detect(src), nil
	})
}

func (m *Migrator) sourceDir() string {
	return filepath.Join(m.dir, emit.SourceDir)
}

func (m *Migrator) rel(path string) string {
	if rel, err := filepath.Rel(m.dir, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}
