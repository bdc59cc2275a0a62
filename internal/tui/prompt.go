package tui

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
)

// AccessibleEnv switches prompts to plain line-based input for screen readers.
const AccessibleEnv = "ACCESSIBLE"

// Prompt streams. Only the accessible renderer reads them.
var (
	promptIn  io.Reader = os.Stdin
	promptOut io.Writer = os.Stdout
)

// Confirm shows a yes/no prompt using the current theme. Aborting the prompt
// with ctrl+c or esc counts as "no".
func Confirm(title, description string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Migrate").
				Negative("Cancel").
				Value(&ok),
		),
	).WithTheme(currentThemeOrDefault()).WithShowHelp(false)

	if getenv(AccessibleEnv) != "" {
		form = form.WithAccessible(true).WithInput(promptIn).WithOutput(promptOut)
	}

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}
