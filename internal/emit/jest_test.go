package emit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/indaco/cra2parcel/internal/fscopy"
	"github.com/indaco/cra2parcel/internal/manifest"
)

const toolchainDir = "/app/node_modules/react-scripts"

const toolchainManifest = `{
  "name": "react-scripts",
  "version": "5.0.1",
  "dependencies": {
    "babel-jest": "^27.4.2",
    "babel-preset-react-app": "^10.0.1",
    "eslint": "^8.3.0",
    "eslint-config-react-app": "^7.0.1",
    "identity-obj-proxy": "^3.0.0",
    "jest": "^27.4.3",
    "webpack": "^5.64.4"
  }
}
`

const createdJestConfig = `{
  "roots": ["<rootDir>/src"],
  "setupFiles": ["react-app-polyfill/jsdom"],
  "testEnvironment": "jsdom",
  "moduleNameMapper": {
    "^react-native$": "react-native-web",
    "^.+\\.module\\.(css|sass|scss)$": "identity-obj-proxy"
  }
}`

type stubJestFactory struct {
	config []byte
	err    error
	dir    string
}

func (f *stubJestFactory) Create(_ context.Context, projectDir string) ([]byte, error) {
	f.dir = projectDir
	return f.config, f.err
}

func TestEjectJest(t *testing.T) {
	e, fs := newTestEmitter(t)
	fs.SetFile(filepath.Join(toolchainDir, manifest.Filename), []byte(toolchainManifest))
	factory := &stubJestFactory{config: []byte(createdJestConfig)}

	var copied [][2]string
	copier := &fscopy.MockFileCopier{
		CopyDirFunc: func(_ context.Context, src, dst string) ([]string, error) {
			copied = append(copied, [2]string{src, dst})
			return []string{"babelTransform.js", "cssTransform.js"}, nil
		},
	}

	result, err := e.EjectJest(context.Background(), factory, copier, toolchainDir)
	if err != nil {
		t.Fatalf("EjectJest() error: %v", err)
	}
	if factory.dir != projectDir {
		t.Errorf("factory called with %q, want %q", factory.dir, projectDir)
	}

	cfg := readDoc(t, fs, JestConfigFile)
	if cfg.Has("setupFiles") {
		t.Error("setupFiles should be removed")
	}
	if got := cfg.Get(manifest.Key("moduleNameMapper", SVGComponentMapperKey)).String(); got != SVGComponentMapperValue {
		t.Errorf("svg mapper = %q, want %q", got, SVGComponentMapperValue)
	}
	if got := cfg.Get(manifest.Key("moduleNameMapper", `^.+\.module\.(css|sass|scss)$`)).String(); got != "identity-obj-proxy" {
		t.Errorf("existing mapper lost, got %q", got)
	}
	if got := cfg.Get("testEnvironment").String(); got != "jsdom" {
		t.Errorf("testEnvironment = %q", got)
	}

	wantCopy := [][2]string{{filepath.Join(toolchainDir, "config", "jest"), filepath.Join(projectDir, "config", "jest")}}
	if diff := cmp.Diff(wantCopy, copied); diff != "" {
		t.Errorf("CopyDir calls mismatch (-want +got):\n%s", diff)
	}

	transform, ok := fs.GetFile(filepath.Join(projectDir, "config", "jest", "fileTransform.js"))
	if !ok || !strings.Contains(string(transform), "module.exports = ${assetFilename};") {
		t.Errorf("fileTransform.js not written correctly:\n%s", transform)
	}
	stub, ok := fs.GetFile(filepath.Join(projectDir, "config", "jest", "SvgComponent.js"))
	if !ok || !strings.HasPrefix(string(stub), "export default function SvgComponent()") {
		t.Errorf("SvgComponent.js not written correctly:\n%s", stub)
	}

	wantFiles := []string{
		"jest.config.json",
		"config/jest/babelTransform.js",
		"config/jest/cssTransform.js",
		"config/jest/fileTransform.js",
		"config/jest/SvgComponent.js",
		"package.json",
	}
	if diff := cmp.Diff(wantFiles, result.Files); diff != "" {
		t.Errorf("Files mismatch (-want +got):\n%s", diff)
	}

	wantDeps := []string{"jest", "babel-jest", "babel-preset-react-app", "identity-obj-proxy", "eslint", "eslint-config-react-app"}
	if diff := cmp.Diff(wantDeps, result.DevDependencies); diff != "" {
		t.Errorf("DevDependencies mismatch (-want +got):\n%s", diff)
	}
	pkg := readDoc(t, fs, manifest.Filename)
	if got := pkg.Get("devDependencies.jest").String(); got != "^27.4.3" {
		t.Errorf("devDependencies.jest = %q", got)
	}
	if pkg.Has(manifest.Key("devDependencies", "jest-watch-typeahead")) {
		t.Error("missing toolchain dependency should be skipped")
	}
	if pkg.Has("devDependencies.webpack") {
		t.Error("only test and lint tooling should be copied")
	}
}

func TestEjectJest_Errors(t *testing.T) {
	factoryErr := errors.New("node missing")
	copyErr := errors.New("copy failed")

	tests := []struct {
		name    string
		factory *stubJestFactory
		copyErr error
		want    error
	}{
		{"factory failure", &stubJestFactory{err: factoryErr}, nil, factoryErr},
		{"invalid config", &stubJestFactory{config: []byte("[]")}, nil, nil},
		{"copy failure", &stubJestFactory{config: []byte(createdJestConfig)}, copyErr, copyErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, fs := newTestEmitter(t)
			fs.SetFile(filepath.Join(toolchainDir, manifest.Filename), []byte(toolchainManifest))
			copier := &fscopy.MockFileCopier{
				CopyDirFunc: func(context.Context, string, string) ([]string, error) { return nil, tt.copyErr },
			}

			_, err := e.EjectJest(context.Background(), tt.factory, copier, toolchainDir)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

// TestHelperProcess stands in for node when re-executed by fakeNode.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	if os.Getenv("HELPER_FAIL") == "1" {
		fmt.Fprint(os.Stderr, "Cannot find module 'react-scripts/scripts/utils/createJestConfig'")
		os.Exit(1)
	}
	fmt.Fprint(os.Stdout, `{"testEnvironment":"jsdom"}`)
	os.Exit(0)
}

func fakeNode(fail bool, gotArgs *[]string) func(string, ...string) *exec.Cmd {
	return func(name string, args ...string) *exec.Cmd {
		*gotArgs = append([]string{name}, args...)
		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.Command(os.Args[0], cs...)
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1")
		if fail {
			cmd.Env = append(cmd.Env, "HELPER_FAIL=1")
		}
		return cmd
	}
}

func TestNodeJestFactory_Create(t *testing.T) {
	var args []string
	f := NewNodeJestFactory()
	f.execCommand = fakeNode(false, &args)

	out, err := f.Create(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if string(out) != `{"testEnvironment":"jsdom"}` {
		t.Errorf("Create() = %q", out)
	}
	if len(args) != 3 || args[0] != "node" || args[1] != "-e" {
		t.Errorf("unexpected invocation %q", args)
	}
	if !strings.Contains(args[2], "createJestConfig") {
		t.Error("script should call createJestConfig")
	}
}

func TestNodeJestFactory_CreateFailure(t *testing.T) {
	var args []string
	f := NewNodeJestFactory()
	f.execCommand = fakeNode(true, &args)

	_, err := f.Create(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Cannot find module") {
		t.Errorf("stderr not included in error: %v", err)
	}
}

func TestNodeJestFactory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewNodeJestFactory().Create(ctx, t.TempDir()); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
