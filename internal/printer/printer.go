// Package printer renders the migration's console output.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	commandStyle = lipgloss.NewStyle().Faint(true)
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	bannerStyle  = successStyle.Bold(true)
	fatalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Destinations for normal and error output. Tests swap them.
var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// SetNoColor switches lipgloss to the ASCII profile, or back to the
// profile detected from the environment.
func SetNoColor(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

func line(w io.Writer, style lipgloss.Style, text string) {
	fmt.Fprintln(w, style.Render(text))
}

// Success renders text green without printing it.
func Success(text string) string {
	return successStyle.Render(text)
}

// PrintStep announces a migration step in cyan.
func PrintStep(text string) {
	line(out, stepStyle, text)
}

// PrintNote prints an indented detail line under the current step.
func PrintNote(text string) {
	fmt.Fprintln(out, "  "+text)
}

// PrintFaint echoes an external command before it runs.
func PrintFaint(text string) {
	line(out, commandStyle, text)
}

// PrintWarning prints text in yellow.
func PrintWarning(text string) {
	line(out, warningStyle, text)
}

// PrintBanner prints the success banner prefixed by the success symbol.
func PrintBanner(text string) {
	line(out, bannerStyle, SuccessSymbol()+" "+text)
}

// PrintFatal writes a red error line prefixed by the error symbol to stderr.
func PrintFatal(text string) {
	line(errOut, fatalStyle, ErrorSymbol()+" "+text)
}
