// Package theme holds the dark/light switch and the colour tokens derived from it.
package theme

import "github.com/charmbracelet/lipgloss"

// Accent colours shared by both themes.
const (
	Cyan   = lipgloss.Color("#00d4ff")
	Violet = lipgloss.Color("#7c3aed")
	Green  = lipgloss.Color("#4ade80")
)

// State is the session-lived theme flag. The zero value is dark.
type State struct {
	light bool
}

// Dark reports whether the dark theme is active.
func (s State) Dark() bool {
	return !s.light
}

// Toggle switches between dark and light.
func (s *State) Toggle() {
	s.light = !s.light
}

// Name returns "dark" or "light".
func (s State) Name() string {
	if s.light {
		return "light"
	}
	return "dark"
}

// Palette returns the tokens for the active theme.
func (s State) Palette() Palette {
	return For(s.Dark())
}

// Palette is the full set of theme-dependent colour tokens.
type Palette struct {
	Name       string
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Text       lipgloss.Color
	Heading    lipgloss.Color
	Muted      lipgloss.Color
	Faint      lipgloss.Color
	NavBar     lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Toggle     string
}

// For is a pure function from the dark flag to its palette.
func For(dark bool) Palette {
	if dark {
		return Palette{
			Name:       "dark",
			Background: lipgloss.Color("#060810"),
			Surface:    lipgloss.Color("#0d1117"),
			Border:     lipgloss.Color("#1e2433"),
			Text:       lipgloss.Color("#9ca3af"),
			Heading:    lipgloss.Color("#ffffff"),
			Muted:      lipgloss.Color("#6b7280"),
			Faint:      lipgloss.Color("#374151"),
			NavBar:     lipgloss.Color("#0b0e17"),
			Accent:     Cyan,
			Secondary:  Violet,
			Success:    Green,
			Toggle:     "🌙",
		}
	}
	return Palette{
		Name:       "light",
		Background: lipgloss.Color("#f0f4ff"),
		Surface:    lipgloss.Color("#ffffff"),
		Border:     lipgloss.Color("#e5e7eb"),
		Text:       lipgloss.Color("#4b5563"),
		Heading:    lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#9ca3af"),
		Faint:      lipgloss.Color("#d1d5db"),
		NavBar:     lipgloss.Color("#e6ecfb"),
		Accent:     lipgloss.Color("#0099bb"),
		Secondary:  Violet,
		Success:    lipgloss.Color("#16a34a"),
		Toggle:     "☀",
	}
}
