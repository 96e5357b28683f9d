package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayGlow restyles the cell at (x, y) of frame so the pointer position is
// visible. The character underneath is kept.
func overlayGlow(frame string, x, y int, glow lipgloss.Style) string {
	lines := strings.Split(frame, "\n")
	if y < 0 || y >= len(lines) || x < 0 {
		return frame
	}
	line := lines[y]
	if w := ansi.StringWidth(line); w <= x {
		line += strings.Repeat(" ", x-w+1)
	}
	// A wide glyph under x is kept whole, so start may be left of x.
	left := ansi.Truncate(line, x, "")
	start := ansi.StringWidth(left)
	cell, width := ansi.FirstGraphemeCluster(ansi.Strip(ansi.TruncateLeft(line, start, "")), ansi.GraphemeWidth)
	if cell == "" || width == 0 {
		cell, width = " ", 1
	}
	right := ansi.TruncateLeft(line, start+width, "")
	lines[y] = left + glow.Render(cell) + right
	return strings.Join(lines, "\n")
}
