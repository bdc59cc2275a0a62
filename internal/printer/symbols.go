package printer

import (
	"os"
	"runtime"
)

// Symbols used when the terminal cannot render emoji come from code page 437.
const (
	successEmoji    = "✨"
	errorEmoji      = "🚨"
	successFallback = "√"
	errorFallback   = "×"
)

// getenv and goos are swapped in tests.
var (
	getenv = os.Getenv
	goos   = runtime.GOOS
)

// SupportsUnicode reports whether the terminal is expected to render emoji.
// Outside Windows only the Linux kernel console is ruled out; on Windows
// only terminals known to cope qualify.
func SupportsUnicode() bool {
	if goos != "windows" {
		return getenv("TERM") != "linux"
	}

	switch {
	case getenv("CI") != "",
		getenv("WT_SESSION") != "", // Windows Terminal
		getenv("ConEmuTask") == "{cmd::Cmder}",
		getenv("TERM_PROGRAM") == "vscode",
		getenv("TERM") == "xterm-256color",
		getenv("TERM") == "alacritty":
		return true
	}
	return false
}

// SuccessSymbol returns the symbol printed before the success banner.
func SuccessSymbol() string {
	if SupportsUnicode() {
		return successEmoji
	}
	return successFallback
}

// ErrorSymbol returns the symbol printed before fatal errors.
func ErrorSymbol() string {
	if SupportsUnicode() {
		return errorEmoji
	}
	return errorFallback
}
