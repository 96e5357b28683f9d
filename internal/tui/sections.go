package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ajeetyadav1111/termfolio/internal/avatar"
	"github.com/ajeetyadav1111/termfolio/internal/model"
)

const (
	wideLayout    = 90
	mediumLayout  = 60
	avatarWidth   = 24
	avatarHeight  = 12
	heroMinHeight = 18
)

// Section anchors, in page order.
const (
	anchorAbout    = "about"
	anchorSkills   = "skills"
	anchorProjects = "projects"
	anchorContact  = "contact"
)

var anchorOrder = []string{anchorAbout, anchorSkills, anchorProjects, anchorContact}

// view is the read-only input of the page renderer. Every fragment is a pure
// function of it.
type view struct {
	st      styles
	content model.Content
	avatar  avatar.Avatar
	width   int
	height  int

	typed        string
	copied       bool
	hoverSkill   int
	hoverProject int
	focusProject int
	showLevels   bool
	visible      func(id string) bool
}

func (v view) isVisible(id string) bool {
	if v.visible == nil {
		return true
	}
	return v.visible(id)
}

// renderPage lays out every section top to bottom.
func renderPage(v view) *canvas {
	c := newCanvas()
	c.anchor(anchorAbout)
	c.embed(renderHero(v), 0)
	c.blank(2)
	c.anchor(anchorSkills)
	renderSkills(c, v)
	c.blank(2)
	c.anchor(anchorProjects)
	renderProjects(c, v)
	c.blank(2)
	c.anchor(anchorContact)
	renderContact(c, v)
	c.blank(1)
	renderFooter(c, v)
	return c
}

func renderHero(v view) *canvas {
	st := v.st
	profile := v.content.Profile
	wide := v.width >= wideLayout
	leftWidth := v.width
	if wide {
		leftWidth = v.width - avatarWidth - 4
	}

	left := newCanvas()
	left.blank(1)
	left.add(st.accent.Render("● " + profile.Badge))
	left.blank(1)
	left.add(st.muted.Render("Hi, I'm"))
	left.add(renderName(st, profile.Name))
	left.add(st.accent.Render("> "+v.typed) + st.accent.Blink(true).Render("▌"))
	left.blank(1)
	for _, line := range wrapText(profile.Summary, min(leftWidth, 64)) {
		left.add(st.text.Render(line))
	}
	left.blank(1)

	primary := st.button.Render("View Projects →")
	ghost := st.buttonGhost.Render("Get In Touch")
	row := left.add(primary + "  " + ghost)
	left.zone(zone{kind: zoneJump, target: anchorProjects, block: "hero", top: row, width: lipgloss.Width(primary), height: 1})
	left.zone(zone{kind: zoneLink, target: mailto(profile.Email), block: "hero", top: row, left: lipgloss.Width(primary) + 2, width: lipgloss.Width(ghost), height: 1})
	left.blank(1)

	var socials []string
	col := 0
	for _, s := range v.content.Socials {
		item := st.faint.Render("["+s.Icon+"]") + " " + st.muted.Render(s.Label)
		left.zone(zone{kind: zoneLink, target: s.URL, block: "hero", top: left.row(), left: col, width: lipgloss.Width(item), height: 1})
		socials = append(socials, item)
		col += lipgloss.Width(item) + 3
	}
	left.add(strings.Join(socials, "   "))

	pic := v.avatar.Render(st.palette, profile.Initials, profile.Label, avatarWidth, avatarHeight)
	hero := newCanvas()
	if wide {
		body := lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(leftWidth).Render(left.String()),
			"    ",
			pic,
		)
		start := hero.add(body)
		for _, z := range left.zones {
			z.top += start
			hero.zone(z)
		}
	} else {
		hero.embed(left, 0)
		hero.blank(1)
		centered, _ := center(pic, v.width)
		hero.add(centered)
	}

	minHeight := max(v.height, heroMinHeight)
	if pad := minHeight - hero.row() - 2; pad > 0 {
		hero.blank(pad)
	}
	scroll, _ := center(st.faint.Render("SCROLL ↓"), v.width)
	hero.add(scroll)
	hero.blank(1)

	if !v.isVisible("hero") {
		hidden := newCanvas()
		hidden.add(placeholder(v.width, hero.row()))
		hidden.mark("hero", 0, hidden.row())
		hidden.zones = hero.zones
		return hidden
	}
	hero.mark("hero", 0, hero.row())
	return hero
}

func renderName(st styles, name string) string {
	fields := strings.Fields(strings.ToUpper(name))
	if len(fields) < 2 {
		return st.heading.Render(strings.Join(fields, " "))
	}
	last := fields[len(fields)-1]
	first := strings.Join(fields[:len(fields)-1], " ")
	return st.heading.Render(first) + " " + st.title.Render(last)
}

// renderHeader draws a centered section heading: eyebrow, title with an
// accented last word, and a subtitle.
func renderHeader(c *canvas, v view, id, eyebrow, title, accent, subtitle string) {
	st := v.st
	var lines []string
	e, _ := center(st.eyebrow.Render(eyebrow), v.width)
	lines = append(lines, e)
	t, _ := center(st.heading.Render(title)+" "+st.title.Render(accent), v.width)
	lines = append(lines, t)
	for _, line := range wrapText(subtitle, min(v.width, 64)) {
		s, _ := center(st.muted.Render(line), v.width)
		lines = append(lines, s)
	}
	fragment := strings.Join(lines, "\n")
	if !v.isVisible(id) {
		fragment = placeholder(v.width, len(lines))
	}
	c.block(id, fragment)
}

func gridColumns(width, wide, medium int) int {
	switch {
	case width >= wideLayout:
		return wide
	case width >= mediumLayout:
		return medium
	default:
		return 1
	}
}

func renderSkills(c *canvas, v view) {
	renderHeader(c, v, "skills:head", "02. SKILLS", "Tech", "Stack",
		"Tools and technologies I use to build modern, scalable applications.")
	c.blank(1)

	skills := v.content.Skills
	cols := gridColumns(v.width, 3, 2)
	cardWidth := (v.width - (cols - 1)) / cols
	for start := 0; start < len(skills); start += cols {
		end := min(start+cols, len(skills))
		cards := make([]string, 0, end-start)
		ids := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			id := skillBlockID(i)
			card := renderSkillCard(v, skills[i], i == v.hoverSkill, cardWidth)
			if !v.isVisible(id) {
				card = placeholder(cardWidth, lipgloss.Height(card))
			}
			cards = append(cards, card)
			ids = append(ids, id)
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, withGaps(cards)...)
		top := c.add(row)
		height := lipgloss.Height(row)
		for n, id := range ids {
			c.mark(id, top, height)
			c.zone(zone{kind: zoneSkill, index: start + n, block: id, top: top, left: n * (cardWidth + 1), width: cardWidth, height: height})
		}
	}
}

func skillBlockID(i int) string {
	return fmt.Sprintf("skill:%d", i)
}

func projectBlockID(i int) string {
	return fmt.Sprintf("project:%d", i)
}

func withGaps(cards []string) []string {
	out := make([]string, 0, len(cards)*2)
	for i, card := range cards {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, card)
	}
	return out
}

func renderSkillCard(v view, skill model.Skill, hovered bool, width int) string {
	st := v.st
	inner := max(width-4, 4)
	color := lipgloss.Color(skill.Color)
	name := st.heading.Render(skill.Name)
	border := st.card
	if hovered {
		name = st.title.Render(skill.Name)
		border = st.card.BorderForeground(color)
	}
	level := 30
	label := st.faint.Render("—")
	if hovered || v.showLevels {
		level = skill.Level
		label = lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%d%%", skill.Level))
	}
	filled := inner * level / 100
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		st.faint.Render(strings.Repeat("░", inner-filled))
	body := strings.Join([]string{
		truncate(skill.Icon+" ", inner) + name,
		bar,
		label,
	}, "\n")
	return border.Width(width - 2).Render(body)
}

func renderProjects(c *canvas, v view) {
	renderHeader(c, v, "projects:head", "03. PROJECTS", "Featured", "Work",
		"A selection of projects that showcase my skills.")
	c.blank(1)

	projects := v.content.Projects
	cols := gridColumns(v.width, 2, 2)
	cardWidth := (v.width - (cols - 1)) / cols
	for start := 0; start < len(projects); start += cols {
		end := min(start+cols, len(projects))
		bodies := make([]string, 0, end-start)
		rowHeight := 0
		for i := start; i < end; i++ {
			body := projectBody(v, projects[i], i, cardWidth-4)
			bodies = append(bodies, body)
			rowHeight = max(rowHeight, lipgloss.Height(body))
		}
		cards := make([]string, 0, len(bodies))
		for n, body := range bodies {
			i := start + n
			border := v.st.card
			if i == v.hoverProject || i == v.focusProject {
				border = v.st.card.BorderForeground(lipgloss.Color(projects[i].Color))
			}
			card := border.Width(cardWidth - 2).Height(rowHeight).Render(body)
			if !v.isVisible(projectBlockID(i)) {
				card = placeholder(cardWidth, lipgloss.Height(card))
			}
			cards = append(cards, card)
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, withGaps(cards)...)
		top := c.add(row)
		height := lipgloss.Height(row)
		for n := range cards {
			i := start + n
			id := projectBlockID(i)
			c.mark(id, top, height)
			c.zone(zone{kind: zoneProject, index: i, target: projects[i].Link, block: id, top: top, left: n * (cardWidth + 1), width: cardWidth, height: height})
		}
		if end < len(projects) {
			c.blank(1)
		}
	}
}

func projectBody(v view, p model.Project, index, width int) string {
	st := v.st
	width = max(width, 8)
	color := lipgloss.Color(p.Color)
	active := index == v.hoverProject || index == v.focusProject

	link := st.faint.Render("·")
	if p.HasLink() {
		link = st.muted.Render("↗")
		if active {
			link = st.accent.Render("↗")
		}
	}
	iconWidth := lipgloss.Width(p.Icon)
	head := p.Icon + strings.Repeat(" ", max(width-iconWidth-1, 1)) + link

	title := st.heading
	if active {
		title = st.title
	}
	lines := []string{head}
	for _, line := range wrapText(p.Title, width) {
		lines = append(lines, title.Render(line))
	}
	lines = append(lines, "")
	for _, line := range wrapText(p.Desc, width) {
		lines = append(lines, st.text.Render(line))
	}
	lines = append(lines, "")

	tag := lipgloss.NewStyle().Foreground(color)
	var row []string
	rowWidth := 0
	for _, t := range p.Tech {
		item := "[" + t + "]"
		w := lipgloss.Width(item)
		if rowWidth > 0 && rowWidth+1+w > width {
			lines = append(lines, strings.Join(row, " "))
			row = nil
			rowWidth = 0
		}
		row = append(row, tag.Render(truncate(item, width)))
		if rowWidth > 0 {
			rowWidth++
		}
		rowWidth += w
	}
	if len(row) > 0 {
		lines = append(lines, strings.Join(row, " "))
	}
	if index == v.focusProject && p.HasLink() {
		lines = append(lines, st.muted.Render("enter: open"))
	}
	return strings.Join(lines, "\n")
}

func renderContact(c *canvas, v view) {
	st := v.st
	profile := v.content.Profile
	renderHeader(c, v, "contact:head", "04. CONTACT", "Let's", "Connect",
		"Have a project in mind or want to collaborate? I'd love to hear from you.")
	c.blank(1)

	cardWidth := min(v.width, 60)
	inner := cardWidth - 4

	email := st.heading.Render("✉ " + profile.Email)
	copyBtn := st.muted.Render("[⧉ copy]")
	if v.copied {
		copyBtn = st.accent.Render("[✓]")
	}
	emailLine := email + "  " + copyBtn
	emailPad := max((inner-lipgloss.Width(emailLine))/2, 0)
	notice := ""
	if v.copied {
		notice = st.accent.Render("✓ Email copied!")
	}
	send := st.button.Render("Send Me an Email →")
	sendPad := max((inner-lipgloss.Width(send))/2, 0)
	noticeLine, _ := center(notice, inner)

	body := strings.Join([]string{
		"",
		strings.Repeat(" ", emailPad) + emailLine,
		noticeLine,
		strings.Repeat(" ", sendPad) + send,
		"",
	}, "\n")
	card := st.card.BorderForeground(st.palette.Secondary).Width(cardWidth - 2).Render(body)

	cardLeft := (v.width - cardWidth) / 2
	visible := v.isVisible("contact:card")
	if !visible {
		card = placeholder(cardWidth, lipgloss.Height(card))
	}
	top := c.block("contact:card", indent(card, cardLeft))
	// Border and padding put the body two cells in and one row down.
	bodyLeft := cardLeft + 2
	c.zone(zone{kind: zoneLink, target: mailto(profile.Email), block: "contact:card", top: top + 2, left: bodyLeft + emailPad, width: lipgloss.Width(email), height: 1})
	c.zone(zone{kind: zoneCopy, block: "contact:card", top: top + 2, left: bodyLeft + emailPad + lipgloss.Width(email) + 2, width: lipgloss.Width(copyBtn), height: 1})
	c.zone(zone{kind: zoneLink, target: mailto(profile.Email), block: "contact:card", top: top + 4, left: bodyLeft + sendPad, width: lipgloss.Width(send), height: 1})

	c.blank(1)
	for _, line := range wrapText("● "+profile.Available, v.width) {
		badge, _ := center(st.success.Render(line), v.width)
		c.add(badge)
	}
}

func renderFooter(c *canvas, v view) {
	st := v.st
	profile := v.content.Profile
	c.add(st.navBorder.Render(strings.Repeat("─", v.width)))
	logo := renderLogo(st, profile.Initials)
	note := st.muted.Render(profile.Footer)
	email := st.muted.Render(profile.Email)
	if v.width < mediumLayout {
		for _, part := range []string{logo, note, email} {
			line, _ := center(part, v.width)
			c.add(line)
		}
		return
	}
	used := lipgloss.Width(logo) + lipgloss.Width(note) + lipgloss.Width(email)
	gap := max(v.width-used, 2)
	leftGap := gap / 2
	line := logo + strings.Repeat(" ", leftGap) + note + strings.Repeat(" ", gap-leftGap) + email
	top := c.add(line)
	c.zone(zone{kind: zoneJump, target: anchorAbout, top: top, width: lipgloss.Width(logo), height: 1})
	c.zone(zone{kind: zoneLink, target: mailto(profile.Email), top: top, left: lipgloss.Width(line) - lipgloss.Width(email), width: lipgloss.Width(email), height: 1})
}

func renderLogo(st styles, initials string) string {
	return st.accent.Render("<") + st.heading.Render(initials) + st.accent.Render("/>")
}

func mailto(email string) string {
	return "mailto:" + email
}
