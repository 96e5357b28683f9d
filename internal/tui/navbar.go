package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ajeetyadav1111/termfolio/internal/model"
)

// compactWidth is the terminal width below which nav links collapse into a menu.
const compactWidth = 80

type navbar struct {
	st       styles
	content  model.Content
	width    int
	margin   int
	scrolled bool
	menuOpen bool
	active   string
}

func (n navbar) compact() bool {
	return n.width < compactWidth
}

// render returns the bar and its zones in screen coordinates. The bar is two
// rows tall, plus one row per entry while the compact menu is open.
func (n navbar) render() (string, []zone) {
	st := n.st
	var zones []zone
	inner := n.width - 2*n.margin

	logo := renderLogo(st, n.content.Profile.Initials)
	zones = append(zones, zone{kind: zoneNav, target: anchorAbout, left: n.margin, width: lipgloss.Width(logo), height: 1})

	toggle := st.accent.Render("[" + st.palette.Toggle + "]")
	var right []string
	col := 0
	if !n.compact() {
		for _, label := range n.content.Nav {
			item := n.navLabel(label)
			right = append(right, item)
			zones = append(zones, zone{kind: zoneNav, target: strings.ToLower(label), left: col, width: lipgloss.Width(item), height: 1})
			col += lipgloss.Width(item) + 3
		}
	}
	right = append(right, toggle)
	zones = append(zones, zone{kind: zoneToggle, left: col, width: lipgloss.Width(toggle), height: 1})
	col += lipgloss.Width(toggle) + 3
	if n.compact() {
		menu := st.heading.Render("≡")
		if n.menuOpen {
			menu = st.accent.Render("×")
		}
		right = append(right, menu)
		zones = append(zones, zone{kind: zoneMenu, left: col, width: 1, height: 1})
	} else {
		hire := st.accent.Render("Hire Me")
		right = append(right, hire)
		zones = append(zones, zone{kind: zoneLink, target: mailto(n.content.Profile.Email), left: col, width: lipgloss.Width(hire), height: 1})
	}
	links := strings.Join(right, "   ")

	// Right-hand zones were measured from the start of links.
	linksLeft := n.margin + max(inner-lipgloss.Width(links), lipgloss.Width(logo)+1)
	for i := 1; i < len(zones); i++ {
		zones[i].left += linksLeft
	}
	top := strings.Repeat(" ", n.margin) + logo + strings.Repeat(" ", linksLeft-n.margin-lipgloss.Width(logo)) + links

	lines := []string{top}
	if n.compact() && n.menuOpen {
		for _, label := range n.content.Nav {
			item := n.navLabel(label)
			zones = append(zones, zone{kind: zoneNav, target: strings.ToLower(label), top: len(lines), left: n.margin + 2, width: lipgloss.Width(item), height: 1})
			lines = append(lines, strings.Repeat(" ", n.margin+2)+item)
		}
	}
	if n.scrolled {
		lines = append(lines, st.navBorder.Render(strings.Repeat("─", n.width)))
	} else {
		lines = append(lines, "")
	}
	bar := strings.Join(lines, "\n")
	if n.scrolled {
		bar = paintBody(bar, st.palette.NavBar, n.width)
	}
	return bar, zones
}

func (n navbar) navLabel(label string) string {
	if strings.ToLower(label) == n.active {
		return n.st.accent.Underline(true).Render(label)
	}
	return n.st.navItem.Render(label)
}
