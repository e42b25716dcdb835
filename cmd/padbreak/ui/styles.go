// Package ui provides the visual styling for the padbreak report.
// Styles are bound to a lipgloss renderer for the output writer, so piping
// the report to a file or a test buffer yields plain text.
package ui

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	LightPrimary = lipgloss.Color("#101F38")
	LightMuted   = lipgloss.Color("#6b7380")

	DarkPrimary = lipgloss.Color("#8BC34A")
	DarkMuted   = lipgloss.Color("#8a94a6")

	// Semantic Colors (same in both modes)
	Success = lipgloss.Color("#8BC34A")
	Warning = lipgloss.Color("#FFC107")
	Info    = lipgloss.Color("#2196F3")
)

// Theme holds the current color scheme
type Theme struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	IsDark  bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{Primary: LightPrimary, Muted: LightMuted}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{Primary: DarkPrimary, Muted: DarkMuted, IsDark: true}
}

// DetectTheme picks the dark theme when COLORFGBG reports a dark
// background or PADBREAK_DARK_MODE=1, and the light theme otherwise.
func DetectTheme() Theme {
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
		}
	}
	if os.Getenv("PADBREAK_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Divider lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Byte    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles creates styles for the given theme, rendered for w.
func NewStyles(w io.Writer, theme Theme) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Divider: r.NewStyle().Foreground(theme.Muted),
		Label:   r.NewStyle().Foreground(theme.Primary).Bold(true),
		Muted:   r.NewStyle().Foreground(theme.Muted),
		Byte:    r.NewStyle().Foreground(Info),
		Success: r.NewStyle().Foreground(Success).Bold(true),
		Warning: r.NewStyle().Foreground(Warning),
	}
}
