package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ajeetyadav1111/termfolio/internal/tracker"
)

type zoneKind int

const (
	zoneNav zoneKind = iota
	zoneToggle
	zoneMenu
	zoneCopy
	zoneLink
	zoneJump
	zoneSkill
	zoneProject
)

// zone is a clickable or hoverable rectangle. Rows are page rows for content
// zones and screen rows for navbar zones.
type zone struct {
	kind   zoneKind
	target string
	index  int
	block  string
	top    int
	left   int
	width  int
	height int
}

func (z zone) contains(x, y int) bool {
	return x >= z.left && x < z.left+z.width && y >= z.top && y < z.top+z.height
}

// canvas accumulates rendered lines with the blocks, anchors and zones found
// along the way.
type canvas struct {
	lines   []string
	blocks  []tracker.Block
	anchors map[string]int
	zones   []zone
}

func newCanvas() *canvas {
	return &canvas{anchors: map[string]int{}}
}

// row is the index of the next line to be written.
func (c *canvas) row() int {
	return len(c.lines)
}

// add appends a rendered fragment and returns the row it starts at.
func (c *canvas) add(fragment string) int {
	start := c.row()
	c.lines = append(c.lines, strings.Split(fragment, "\n")...)
	return start
}

func (c *canvas) blank(n int) {
	for i := 0; i < n; i++ {
		c.lines = append(c.lines, "")
	}
}

func (c *canvas) anchor(id string) {
	c.anchors[id] = c.row()
}

// block appends a fragment registered for reveal.
func (c *canvas) block(id, fragment string) int {
	start := c.add(fragment)
	c.mark(id, start, c.row()-start)
	return start
}

// mark registers rows that were already written as a reveal block.
func (c *canvas) mark(id string, top, height int) {
	c.blocks = append(c.blocks, tracker.Block{ID: id, Top: top, Height: height})
}

// embed copies another canvas below the current rows, shifted right by left.
func (c *canvas) embed(sub *canvas, left int) {
	offset := c.row()
	prefix := strings.Repeat(" ", left)
	for _, line := range sub.lines {
		c.lines = append(c.lines, prefix+line)
	}
	for _, b := range sub.blocks {
		b.Top += offset
		c.blocks = append(c.blocks, b)
	}
	for id, row := range sub.anchors {
		c.anchors[id] = row + offset
	}
	for _, z := range sub.zones {
		z.top += offset
		z.left += left
		c.zones = append(c.zones, z)
	}
}

func (c *canvas) zone(z zone) {
	c.zones = append(c.zones, z)
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// center pads s so it sits in the middle of width cells and returns the
// left padding used.
func center(s string, width int) (string, int) {
	w := lipgloss.Width(s)
	if w >= width {
		return s, 0
	}
	pad := (width - w) / 2
	return indent(s, pad), pad
}

func indent(s string, n int) string {
	if n <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// placeholder keeps the footprint of a block that has not been revealed yet.
func placeholder(width, height int) string {
	if height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", max(width, 0))
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
