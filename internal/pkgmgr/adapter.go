package pkgmgr

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/indaco/cra2parcel/internal/printer"
)

// CommandError reports a package manager invocation that exited unsuccessfully.
type CommandError struct {
	Command  string
	Args     []string
	ExitCode int    // -1 when the process was terminated by a signal
	State    string // process state as reported by the OS, e.g. "signal: killed"
	Err      error
}

func (e *CommandError) Error() string {
	switch {
	case e.ExitCode >= 0:
		return fmt.Sprintf("%s failed with exit code %d", e.Command, e.ExitCode)
	case e.State != "":
		return fmt.Sprintf("%s failed with %s", e.Command, e.State)
	default:
		return fmt.Sprintf("%s failed: %v", e.Command, e.Err)
	}
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Adapter runs package manager commands interactively in the project directory.
type Adapter struct {
	manager     Manager
	dir         string
	execCommand func(name string, arg ...string) *exec.Cmd
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
}

// NewAdapter creates an Adapter that inherits the current process' standard streams.
func NewAdapter(manager Manager, dir string) *Adapter {
	return &Adapter{
		manager:     manager,
		dir:         dir,
		execCommand: exec.Command,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
}

// Manager returns the package manager driven by the adapter.
func (a *Adapter) Manager() Manager {
	return a.manager
}

// Run echoes and executes the manager with args, blocking until it exits.
func (a *Adapter) Run(args ...string) error {
	name := a.manager.String()
	printer.PrintFaint("$ " + strings.Join(append([]string{name}, args...), " "))

	cmd := a.execCommand(name, args...)
	cmd.Dir = a.dir
	cmd.Stdin = a.stdin
	cmd.Stdout = a.stdout
	cmd.Stderr = a.stderr

	if err := cmd.Run(); err != nil {
		cmdErr := &CommandError{Command: name, Args: args, ExitCode: -1, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
			cmdErr.State = exitErr.ProcessState.String()
		}
		return cmdErr
	}

	fmt.Fprintln(a.stdout)
	return nil
}

// Swap uninstalls remove and then installs add. The install never runs if
// the uninstall fails.
func (a *Adapter) Swap(remove, add string) error {
	if err := a.Run(a.manager.RemoveArgs(remove)...); err != nil {
		return err
	}
	return a.Run(a.manager.AddArgs(add)...)
}
