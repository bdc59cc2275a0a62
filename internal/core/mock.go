package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// Directories are implied by the files stored beneath them and may also be
// created explicitly with MkdirAll.
type MockFileSystem struct {
	mu       sync.Mutex
	files    map[string][]byte
	dirs     map[string]bool
	symlinks map[string]bool

	// ReadErrors and WriteErrors inject failures keyed by cleaned path.
	ReadErrors  map[string]error
	WriteErrors map[string]error

	// Writes records every path passed to WriteFile, in call order.
	Writes []string
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:       make(map[string][]byte),
		dirs:        make(map[string]bool),
		symlinks:    make(map[string]bool),
		ReadErrors:  make(map[string]error),
		WriteErrors: make(map[string]error),
	}
}

// Verify MockFileSystem implements FileSystem.
var _ FileSystem = (*MockFileSystem)(nil)

// SetFile stores data at path without recording a write.
func (m *MockFileSystem) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = data
}

// SetSymlink registers path as a symbolic link entry.
func (m *MockFileSystem) SetSymlink(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.symlinks[filepath.Clean(path)] = true
}

// GetFile returns the stored contents of path.
func (m *MockFileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[filepath.Clean(path)]
	return data, ok
}

// WriteCount returns how many times path was written.
func (m *MockFileSystem) WriteCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	clean := filepath.Clean(path)
	n := 0
	for _, w := range m.Writes {
		if w == clean {
			n++
		}
	}
	return n
}

func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clean := filepath.Clean(path)
	if err, ok := m.ReadErrors[clean]; ok {
		return nil, err
	}
	data, ok := m.files[clean]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, path string, data []byte, _ os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clean := filepath.Clean(path)
	if err, ok := m.WriteErrors[clean]; ok {
		return err
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[clean] = stored
	m.Writes = append(m.Writes, clean)
	return nil
}

func (m *MockFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clean := filepath.Clean(path)
	if data, ok := m.files[clean]; ok {
		return mockInfo{name: filepath.Base(clean), size: int64(len(data))}, nil
	}
	if m.symlinks[clean] {
		return mockInfo{name: filepath.Base(clean), mode: fs.ModeSymlink}, nil
	}
	if m.isDirLocked(clean) {
		return mockInfo{name: filepath.Base(clean), mode: fs.ModeDir | PermDir}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (m *MockFileSystem) MkdirAll(ctx context.Context, path string, _ os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[filepath.Clean(path)] = true
	return nil
}

func (m *MockFileSystem) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clean := filepath.Clean(path)
	if _, ok := m.files[clean]; !ok {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	delete(m.files, clean)
	return nil
}

func (m *MockFileSystem) RemoveAll(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clean := filepath.Clean(path)
	prefix := clean + string(filepath.Separator)
	for p := range m.files {
		if p == clean || strings.HasPrefix(p, prefix) {
			delete(m.files, p)
		}
	}
	for p := range m.dirs {
		if p == clean || strings.HasPrefix(p, prefix) {
			delete(m.dirs, p)
		}
	}
	return nil
}

func (m *MockFileSystem) ReadDir(ctx context.Context, path string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clean := filepath.Clean(path)
	if err, ok := m.ReadErrors[clean]; ok {
		return nil, err
	}
	if !m.isDirLocked(clean) {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	children := make(map[string]fs.FileMode)
	collect := func(p string, mode fs.FileMode) {
		rel, ok := childOf(clean, p)
		if !ok {
			return
		}
		name, rest, nested := strings.Cut(rel, string(filepath.Separator))
		if nested && rest != "" {
			children[name] = fs.ModeDir
			return
		}
		if _, seen := children[name]; !seen {
			children[name] = mode
		}
	}
	for p := range m.files {
		collect(p, 0)
	}
	for p := range m.dirs {
		collect(p, fs.ModeDir)
	}
	for p := range m.symlinks {
		collect(p, fs.ModeSymlink)
	}

	names := make([]string, 0, len(children))
	for name := range children {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]os.DirEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, fs.FileInfoToDirEntry(mockInfo{name: name, mode: children[name]}))
	}
	return entries, nil
}

// isDirLocked reports whether path is an explicit or implied directory.
func (m *MockFileSystem) isDirLocked(path string) bool {
	if path == "." || m.dirs[path] {
		return true
	}
	for _, set := range []map[string]bool{m.dirs, m.symlinks} {
		for p := range set {
			if _, ok := childOf(path, p); ok {
				return true
			}
		}
	}
	for p := range m.files {
		if _, ok := childOf(path, p); ok {
			return true
		}
	}
	return false
}

// childOf returns p relative to dir when p lies strictly beneath dir.
func childOf(dir, p string) (string, bool) {
	if dir == "." {
		if filepath.IsAbs(p) || p == "." {
			return "", false
		}
		return p, true
	}
	prefix := dir + string(filepath.Separator)
	if dir == string(filepath.Separator) {
		prefix = dir
	}
	if !strings.HasPrefix(p, prefix) {
		return "", false
	}
	return strings.TrimPrefix(p, prefix), true
}

type mockInfo struct {
	name string
	size int64
	mode fs.FileMode
}

func (i mockInfo) Name() string       { return i.name }
func (i mockInfo) Size() int64        { return i.size }
func (i mockInfo) Mode() fs.FileMode  { return i.mode }
func (i mockInfo) ModTime() time.Time { return time.Time{} }
func (i mockInfo) IsDir() bool        { return i.mode.IsDir() }
func (i mockInfo) Sys() any           { return nil }
