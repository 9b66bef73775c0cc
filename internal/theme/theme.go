// Package theme provides color themes and styling for dockpane.
package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and standard terminal colors will be used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	ok := tint.SetTintID(themeName)
	if !ok {
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Pane border colors
func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#808090")
	}
	return t.BrightBlack
}

func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	return t.BrightCyan
}

func BorderMaximised() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AAFFAA")
	}
	return t.BrightGreen
}

func BorderFloating() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd00cd")
	}
	return t.Purple
}

// Tab strip colors
func TabActiveFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Black
}

func TabActiveBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cdcd")
	}
	return t.Cyan
}

func TabInactiveFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#a0a0a8")
	}
	return t.White
}

func TabInactiveBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

// Title bar colors
func TitleFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

func TitleBg() color.Color {
	return lipgloss.Color("#1a1a2e")
}

// Pane body colors
func PaneFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

func PaneBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Bg
}

// Help overlay colors
func HelpTitle() color.Color {
	return lipgloss.Color("14")
}

func HelpKey() color.Color {
	return lipgloss.Color("11")
}

func HelpText() color.Color {
	return lipgloss.Color("7")
}

func HelpBorder() color.Color {
	return lipgloss.Color("14")
}

func HelpBg() color.Color {
	return lipgloss.Color("#1a1a2e")
}

// Status bar colors
func StatusFg() color.Color {
	return lipgloss.Color("#a0a0b0")
}

func StatusBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

func StatusHighlight() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}
