// Package fscopy copies directory trees from installed packages into the project.
package fscopy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/indaco/cra2parcel/internal/core"
)

// ErrorKind classifies a failed copy.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindPermission
	KindNotFound
	KindDiskFull
)

func (k ErrorKind) String() string {
	switch k {
	case KindPermission:
		return "permission denied"
	case KindNotFound:
		return "not found"
	case KindDiskFull:
		return "no space left on device"
	default:
		return "failed"
	}
}

// CopyError describes a failed copy of Src to Dst.
type CopyError struct {
	Op   string // "open", "create", "copy" or "mkdir"
	Src  string
	Dst  string
	Kind ErrorKind
	Err  error
}

func (e *CopyError) Error() string {
	if e.Kind == KindOther {
		return fmt.Sprintf("failed to %s %q to %q: %v", e.Op, e.Src, e.Dst, e.Err)
	}
	return fmt.Sprintf("cannot %s %q to %q: %s: %v", e.Op, e.Src, e.Dst, e.Kind, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// OSFileCopier implements core.FileCopier on the real filesystem.
type OSFileCopier struct {
	walkDir     func(root string, fn fs.WalkDirFunc) error
	mkdirAll    func(path string, perm os.FileMode) error
	openSrcFile func(name string) (*os.File, error)
	openDstFile func(name string, flag int, perm os.FileMode) (*os.File, error)
	copyFn      func(dst io.Writer, src io.Reader) (int64, error)
	readlink    func(name string) (string, error)
	symlink     func(oldname, newname string) error
	remove      func(name string) error
}

// NewOSFileCopier creates an OSFileCopier with default OS implementations.
func NewOSFileCopier() *OSFileCopier {
	return &OSFileCopier{
		walkDir:     filepath.WalkDir,
		mkdirAll:    os.MkdirAll,
		openSrcFile: os.Open,
		openDstFile: os.OpenFile,
		copyFn:      io.Copy,
		readlink:    os.Readlink,
		symlink:     os.Symlink,
		remove:      os.Remove,
	}
}

// Verify OSFileCopier implements core.FileCopier.
var _ core.FileCopier = (*OSFileCopier)(nil)

// CopyDir copies the regular files and symlinks under src into dst, creating
// directories as needed. Files already in dst are kept unless src has the
// same name. Relative symlink targets are resolved against src. skipNames
// entries are not copied.
func (c *OSFileCopier) CopyDir(ctx context.Context, src, dst string) ([]string, error) {
	var copied []string

	err := c.walkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return classify(err, "open", path, dst)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, skip := skipNames[d.Name()]; skip && path != src {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path from %q to %q: %w", src, path, err)
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			if err := c.mkdirAll(target, core.PermDir); err != nil {
				return classify(err, "mkdir", path, target)
			}
		case d.Type().IsRegular():
			info, err := d.Info()
			if err != nil {
				return classify(err, "open", path, target)
			}
			if err := c.CopyFile(path, target, info.Mode().Perm()); err != nil {
				return err
			}
			copied = append(copied, filepath.ToSlash(rel))
		case d.Type()&fs.ModeSymlink != 0:
			if err := c.copySymlink(path, target); err != nil {
				return err
			}
			copied = append(copied, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return copied, err
	}
	return copied, nil
}

// copySymlink recreates the link at src as dst, replacing whatever dst holds.
func (c *OSFileCopier) copySymlink(src, dst string) error {
	link, err := c.readlink(src)
	if err != nil {
		return classify(err, "open", src, dst)
	}
	if !filepath.IsAbs(link) {
		link = filepath.Join(filepath.Dir(src), link)
	}
	if err := c.remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return classify(err, "create", src, dst)
	}
	if err := c.symlink(link, dst); err != nil {
		return classify(err, "create", src, dst)
	}
	return nil
}

// CopyFile copies a single file from src to dst with the given permissions.
func (c *OSFileCopier) CopyFile(src, dst string, perm core.FileMode) error {
	in, err := c.openSrcFile(src)
	if err != nil {
		return classify(err, "open", src, dst)
	}
	defer in.Close()

	out, err := c.openDstFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return classify(err, "create", src, dst)
	}
	defer out.Close()

	if _, err := c.copyFn(out, in); err != nil {
		return classify(err, "copy", src, dst)
	}
	return out.Close()
}

// classify wraps err in a *CopyError with its recognizable cause.
func classify(err error, op, src, dst string) error {
	kind := KindOther
	switch {
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermission
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, syscall.ENOSPC),
		strings.Contains(strings.ToLower(err.Error()), "disk full"):
		kind = KindDiskFull
	}
	return &CopyError{Op: op, Src: src, Dst: dst, Kind: kind, Err: err}
}

// skipNames are never copied out of an installed package.
var skipNames = map[string]struct{}{
	".DS_Store":    {},
	"node_modules": {},
}
