package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette for the default prompt theme, warm tones on a neutral base.
var (
	parcelAmberPrimary = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f59e0b"}
	parcelAmberBright  = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}
	parcelRedAccent    = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}

	parcelTextStrong = lipgloss.AdaptiveColor{Light: "#1c1917", Dark: "#fafaf9"}
	parcelTextNormal = lipgloss.AdaptiveColor{Light: "#44403c", Dark: "#d6d3d1"}
	parcelTextMuted  = lipgloss.AdaptiveColor{Light: "#78716c", Dark: "#a8a29e"}
	parcelTextFaint  = lipgloss.AdaptiveColor{Light: "#a8a29e", Dark: "#57534e"}

	parcelBorderFocused = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#f59e0b"}
	parcelBorderNormal  = lipgloss.AdaptiveColor{Light: "#d6d3d1", Dark: "#44403c"}

	parcelButtonBg          = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f59e0b"}
	parcelButtonBgBlurred   = lipgloss.AdaptiveColor{Light: "#e7e5e4", Dark: "#292524"}
	parcelButtonText        = lipgloss.AdaptiveColor{Light: "#fffbeb", Dark: "#1c1917"}
	parcelButtonTextBlurred = lipgloss.AdaptiveColor{Light: "#44403c", Dark: "#d6d3d1"}
)

// parcelTheme is the default prompt theme.
func parcelTheme() *huh.Theme {
	t := huh.ThemeBase()

	button := lipgloss.NewStyle().Padding(0, 1).MarginRight(1).Bold(true)

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(parcelBorderFocused)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(parcelAmberPrimary).Bold(true)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(parcelAmberPrimary).Bold(true).MarginBottom(1)
	t.Focused.Description = t.Focused.Description.Foreground(parcelTextMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(parcelRedAccent)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(parcelRedAccent)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(parcelAmberBright)
	t.Focused.Option = t.Focused.Option.Foreground(parcelTextNormal)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(parcelTextStrong)
	t.Focused.FocusedButton = button.Foreground(parcelButtonText).Background(parcelButtonBg)
	t.Focused.BlurredButton = button.Foreground(parcelButtonTextBlurred).Background(parcelButtonBgBlurred)
	t.Focused.Next = t.Focused.FocusedButton
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(parcelTextFaint)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderForeground(parcelBorderNormal)
	t.Blurred.Card = t.Blurred.Base
	t.Blurred.Title = t.Blurred.Title.Foreground(parcelTextMuted)
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	t.Help.ShortKey = t.Help.ShortKey.Foreground(parcelTextMuted)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(parcelTextFaint)
	t.Help.ShortSeparator = t.Help.ShortSeparator.Foreground(parcelTextFaint)
	t.Help.FullKey = t.Help.FullKey.Foreground(parcelTextMuted)
	t.Help.FullDesc = t.Help.FullDesc.Foreground(parcelTextFaint)
	t.Help.FullSeparator = t.Help.FullSeparator.Foreground(parcelTextFaint)

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description
	return t
}
