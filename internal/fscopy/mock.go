package fscopy

import (
	"context"

	"github.com/indaco/cra2parcel/internal/core"
)

// MockFileCopier is a mock implementation of core.FileCopier for testing.
type MockFileCopier struct {
	CopyDirFunc func(ctx context.Context, src, dst string) ([]string, error)
}

// Verify MockFileCopier implements core.FileCopier.
var _ core.FileCopier = (*MockFileCopier)(nil)

func (m *MockFileCopier) CopyDir(ctx context.Context, src, dst string) ([]string, error) {
	if m.CopyDirFunc != nil {
		return m.CopyDirFunc(ctx, src, dst)
	}
	return nil, nil
}
