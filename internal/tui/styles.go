package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ajeetyadav1111/termfolio/internal/theme"
)

// styles is derived from a palette and nothing else.
type styles struct {
	palette theme.Palette

	heading lipgloss.Style
	title   lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	faint   lipgloss.Style
	accent  lipgloss.Style
	success lipgloss.Style
	eyebrow lipgloss.Style

	card        lipgloss.Style
	button      lipgloss.Style
	buttonGhost lipgloss.Style

	navItem   lipgloss.Style
	navBorder lipgloss.Style
	glow      lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	card := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(p.Border)
	return styles{
		palette: p,
		heading: lipgloss.NewStyle().Foreground(p.Heading).Bold(true),
		title:   lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		text:    lipgloss.NewStyle().Foreground(p.Text),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
		faint:   lipgloss.NewStyle().Foreground(p.Faint),
		accent:  lipgloss.NewStyle().Foreground(p.Accent),
		success: lipgloss.NewStyle().Foreground(p.Success),
		eyebrow: lipgloss.NewStyle().Foreground(p.Accent).Faint(true),

		card: card,
		button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(p.Accent).
			Bold(true).
			Padding(0, 2),
		buttonGhost: lipgloss.NewStyle().
			Foreground(p.Heading).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(p.Border).
			Padding(0, 1),

		navItem:   lipgloss.NewStyle().Foreground(p.Text),
		navBorder: lipgloss.NewStyle().Foreground(p.Border),
		glow:      lipgloss.NewStyle().Foreground(p.Background).Background(p.Accent),
	}
}

// paintBody applies the page background to a whole frame, the way a
// body-level class colours everything that does not set its own background.
func paintBody(frame string, bg lipgloss.Color, width int) string {
	open := backgroundSeq(bg)
	const reset = "\x1b[0m"
	lines := strings.Split(frame, "\n")
	for i, line := range lines {
		if pad := width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		if open != "" {
			line = open + strings.ReplaceAll(line, reset, reset+open) + reset
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// backgroundSeq returns the escape sequence that starts bg, or "" when the
// colour profile renders no colours.
func backgroundSeq(bg lipgloss.Color) string {
	probe := lipgloss.NewStyle().Background(bg).Render(" ")
	idx := strings.Index(probe, " ")
	if idx <= 0 {
		return ""
	}
	return probe[:idx]
}
