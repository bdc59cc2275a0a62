package emit

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"github.com/indaco/cra2parcel/internal/core"
	"github.com/indaco/cra2parcel/internal/manifest"
)

// SVGComponentMapper maps jsx:-prefixed SVG imports to a stub under Jest.
const (
	SVGComponentMapperKey   = `^jsx:.+\.svg`
	SVGComponentMapperValue = "<rootDir>/config/jest/SvgComponent.js"
)

// EjectedDevDependencies are copied from the toolchain's own dependencies so
// tests and linting keep working once react-scripts is removed.
var EjectedDevDependencies = []string{
	"jest",
	"jest-watch-typeahead",
	"babel-jest",
	"babel-preset-react-app",
	"identity-obj-proxy",
	"eslint",
	"eslint-config-react-app",
}

const fileTransformJS = `'use strict';

const path = require('path');

// This is a custom Jest transformer turning file imports into filenames.
// http://facebook.github.io/jest/docs/en/webpack.html

module.exports = {
  process(src, filename) {
    const assetFilename = JSON.stringify(path.basename(filename));
    return ` + "`module.exports = ${assetFilename};`" + `;
  },
};
`

const svgComponentJS = `export default function SvgComponent() {
  return null;
}
`

// JestFactory produces the Jest configuration the toolchain would use.
type JestFactory interface {
	// Create returns the configuration as a JSON object.
	Create(ctx context.Context, projectDir string) ([]byte, error)
}

// createJestConfigScript asks react-scripts for its Jest config with
// <rootDir>-relative paths and prints it as JSON.
const createJestConfigScript = `
const path = require('path');
const { createRequire } = require('module');
const req = createRequire(path.join(process.cwd(), 'index'));
const createJestConfig = req('react-scripts/scripts/utils/createJestConfig');
const config = createJestConfig(
  (filePath) => path.posix.join('<rootDir>', filePath),
  null,
  true
);
process.stdout.write(JSON.stringify(config));
`

// NodeJestFactory evaluates react-scripts' createJestConfig with node.
type NodeJestFactory struct {
	node        string
	execCommand func(name string, arg ...string) *exec.Cmd
}

// NewNodeJestFactory creates a factory running the node binary on PATH.
func NewNodeJestFactory() *NodeJestFactory {
	return &NodeJestFactory{
		node:        "node",
		execCommand: exec.Command,
	}
}

// Verify NodeJestFactory implements JestFactory.
var _ JestFactory = (*NodeJestFactory)(nil)

func (f *NodeJestFactory) Create(ctx context.Context, projectDir string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cmd := f.execCommand(f.node, "-e", createJestConfigScript)
	cmd.Dir = projectDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return nil, fmt.Errorf("createJestConfig failed: %s: %w", stderrMsg, err)
		}
		return nil, fmt.Errorf("createJestConfig failed: %w", err)
	}

	return stdout.Bytes(), nil
}

// JestResult reports what EjectJest wrote.
type JestResult struct {
	// Files lists the written files relative to the project, in write order.
	Files []string

	// DevDependencies lists the packages added to devDependencies.
	DevDependencies []string
}

// EjectJest writes the toolchain's Jest config and support files into the
// project and pins the test tooling as devDependencies. toolchainDir is the
// installed react-scripts directory.
func (e *Emitter) EjectJest(ctx context.Context, factory JestFactory, copier core.FileCopier, toolchainDir string) (JestResult, error) {
	var result JestResult

	raw, err := factory.Create(ctx, e.dir)
	if err != nil {
		return result, err
	}
	cfg, err := manifest.Parse(raw)
	if err != nil {
		return result, fmt.Errorf("invalid Jest config from react-scripts: %w", err)
	}

	// setupFiles only polyfilled fetch.
	if err := cfg.Delete("setupFiles"); err != nil {
		return result, err
	}
	if err := cfg.Set(manifest.Key("moduleNameMapper", SVGComponentMapperKey), SVGComponentMapperValue); err != nil {
		return result, err
	}
	if err := cfg.WriteTo(ctx, e.fs, e.path(JestConfigFile)); err != nil {
		return result, err
	}
	result.Files = append(result.Files, JestConfigFile)

	supportDir := e.path(JestSupportDir)
	if err := e.fs.MkdirAll(ctx, supportDir, core.PermDir); err != nil {
		return result, fmt.Errorf("failed to create %q: %w", supportDir, err)
	}
	copied, err := copier.CopyDir(ctx, filepath.Join(toolchainDir, "config", "jest"), supportDir)
	if err != nil {
		return result, err
	}
	for _, rel := range copied {
		result.Files = append(result.Files, path.Join(JestSupportDir, rel))
	}
	for _, f := range []struct{ name, content string }{
		{"fileTransform.js", fileTransformJS},
		{"SvgComponent.js", svgComponentJS},
	} {
		rel := path.Join(JestSupportDir, f.name)
		if err := e.fs.WriteFile(ctx, e.path(rel), []byte(f.content), core.PermFile); err != nil {
			return result, fmt.Errorf("failed to write file %q: %w", e.path(rel), err)
		}
		result.Files = append(result.Files, rel)
	}

	toolchain, err := manifest.ReadDocument(ctx, e.fs, filepath.Join(toolchainDir, manifest.Filename))
	if err != nil {
		return result, err
	}
	pkg, err := e.loadManifest(ctx)
	if err != nil {
		return result, err
	}
	for _, dep := range EjectedDevDependencies {
		version := toolchain.Get(manifest.Key("dependencies", dep))
		if !version.Exists() {
			continue
		}
		if err := pkg.SetDevDependency(dep, version.String()); err != nil {
			return result, err
		}
		result.DevDependencies = append(result.DevDependencies, dep)
	}
	if err := pkg.Save(ctx, e.fs); err != nil {
		return result, err
	}
	result.Files = append(result.Files, manifest.Filename)

	return result, nil
}
