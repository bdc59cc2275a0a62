package tui

import (
	"github.com/charmbracelet/huh/spinner"
)

// runSpinner is swapped in tests; the real spinner needs a terminal.
var runSpinner = func(title string, action func()) error {
	return spinner.New().
		Title(title).
		Action(action).
		Run()
}

// Spin runs action behind a spinner titled title. Without an interactive
// terminal action runs directly with no output.
func Spin(title string, action func() error) error {
	if !IsInteractive() {
		return action()
	}

	var actionErr error
	if err := runSpinner(title, func() { actionErr = action() }); err != nil {
		return err
	}
	return actionErr
}
