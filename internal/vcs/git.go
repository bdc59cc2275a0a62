// Package vcs inspects the project's git working tree.
package vcs

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotRepository is returned when dir is not inside a git work tree or git
// is not installed.
var ErrNotRepository = errors.New("not a git repository")

// GitWorkTree queries git through the git binary.
type GitWorkTree struct {
	execCommand func(name string, arg ...string) *exec.Cmd
}

// NewGitWorkTree creates a GitWorkTree with the default exec.Command.
func NewGitWorkTree() *GitWorkTree {
	return &GitWorkTree{
		execCommand: exec.Command,
	}
}

// Changes lists the paths git reports as modified or untracked under dir.
func (g *GitWorkTree) Changes(dir string) ([]string, error) {
	cmd := g.execCommand("git", "-C", dir, "status", "--porcelain")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: git not found", ErrNotRepository)
		}
		stderrMsg := strings.TrimSpace(stderr.String())
		if strings.Contains(stderrMsg, "not a git repository") {
			return nil, ErrNotRepository
		}
		if stderrMsg != "" {
			return nil, fmt.Errorf("%s: %w", stderrMsg, err)
		}
		return nil, fmt.Errorf("git status failed: %w", err)
	}

	var changes []string
	for _, line := range strings.Split(stdout.String(), "\n") {
		// "XY path" where XY is the two-letter status code
		if len(line) > 3 {
			changes = append(changes, line[3:])
		}
	}
	return changes, nil
}

// Dirty reports whether dir has uncommitted changes.
func (g *GitWorkTree) Dirty(dir string) (bool, error) {
	changes, err := g.Changes(dir)
	if err != nil {
		return false, err
	}
	return len(changes) > 0, nil
}
