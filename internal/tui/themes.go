package tui

import (
	"github.com/charmbracelet/huh"
)

// DefaultTheme is used when no theme, or an unknown one, is configured.
const DefaultTheme = "parcel"

// ValidThemes lists the accepted theme names, default first.
var ValidThemes = []string{DefaultTheme, "base", "base16", "catppuccin", "charm", "dracula"}

var themeBuilders = map[string]func() *huh.Theme{
	DefaultTheme: parcelTheme,
	"base":       huh.ThemeBase,
	"base16":     huh.ThemeBase16,
	"catppuccin": huh.ThemeCatppuccin,
	"charm":      huh.ThemeCharm,
	"dracula":    huh.ThemeDracula,
}

// currentTheme is applied to prompts; nil selects parcelTheme.
var currentTheme *huh.Theme

// IsValidTheme reports whether name is a known theme.
func IsValidTheme(name string) bool {
	_, ok := themeBuilders[name]
	return ok
}

// GetTheme builds the named theme, or returns nil for an unknown name.
func GetTheme(name string) *huh.Theme {
	build, ok := themeBuilders[name]
	if !ok {
		return nil
	}
	return build()
}

// SetTheme selects the prompt theme by name and reports whether it was
// recognized. Empty and unknown names fall back to the default.
func SetTheme(name string) bool {
	currentTheme = GetTheme(name)
	return currentTheme != nil
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return parcelTheme()
	}
	return currentTheme
}

func resetTheme() {
	currentTheme = nil
}
