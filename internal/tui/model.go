// Package tui provides the Bubble Tea portfolio interface.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"

	"github.com/ajeetyadav1111/termfolio/internal/avatar"
	"github.com/ajeetyadav1111/termfolio/internal/clipboard"
	"github.com/ajeetyadav1111/termfolio/internal/model"
	"github.com/ajeetyadav1111/termfolio/internal/theme"
	"github.com/ajeetyadav1111/termfolio/internal/tracker"
	"github.com/ajeetyadav1111/termfolio/internal/typing"
)

const maxContentWidth = 100

// Options wires a Model to its collaborators. Zero values get defaults.
type Options struct {
	Config    model.Config
	Content   model.Content
	Avatar    avatar.Avatar
	Clipboard clipboard.Writer
	Open      Opener
	Log       logrus.FieldLogger
}

// Model implements the Bubble Tea portfolio UI. It owns the theme and passes
// it down to every fragment as a palette value.
type Model struct {
	config  model.Config
	content model.Content
	avatar  avatar.Avatar
	open    Opener
	log     logrus.FieldLogger

	keys keyMap
	help help.Model
	vp   viewport.Model

	theme    theme.State
	scroll   *tracker.Scroll
	pointer  tracker.Pointer
	reveal   *tracker.Reveal
	typing   typing.Model
	feedback *clipboard.Feedback

	width  int
	height int
	ready  bool

	menuOpen     bool
	hoverSkill   int
	hoverProject int
	focusProject int

	page     *canvas
	navZones []zone
	navRows  int
}

// NewModel constructs a portfolio TUI model.
func NewModel(opts Options) *Model {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	writer := opts.Clipboard
	if writer == nil {
		writer = clipboard.System{Log: log}
	}
	open := opts.Open
	if open == nil {
		open = SystemOpener
	}
	m := &Model{
		config:       opts.Config,
		content:      opts.Content,
		avatar:       opts.Avatar,
		open:         open,
		log:          log,
		keys:         defaultKeyMap(),
		help:         help.New(),
		vp:           viewport.New(0, 0),
		scroll:       tracker.NewScroll(opts.Config.ScrollThreshold),
		reveal:       tracker.NewReveal(opts.Config.RevealThreshold),
		typing:       typing.New(opts.Content.Phrases, opts.Config.TypingSpeed),
		feedback:     clipboard.NewFeedback(opts.Content.Profile.Email, writer, log),
		hoverSkill:   -1,
		hoverProject: -1,
		focusProject: -1,
	}
	m.applyHelpStyles()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.typing.Init()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
	case tea.KeyMsg:
		var quit bool
		cmd, quit = m.handleKey(msg)
		if quit {
			m.reveal.Dispose()
			return m, tea.Quit
		}
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case tea.BlurMsg:
		m.pointer.Forget()
		m.hoverSkill, m.hoverProject = -1, -1
	case typing.TickMsg:
		m.typing, cmd = m.typing.Update(msg)
	case clipboard.ExpiredMsg:
		m.feedback.Expire(msg)
	case linkOpenedMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).WithField("target", msg.target).Warn("failed to open link")
		} else {
			m.log.WithField("target", msg.target).Info("opened link")
		}
		return m, nil
	default:
		return m, nil
	}
	m.refresh()
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready || m.page == nil {
		return ""
	}
	nav, _ := m.navbar().render()
	frame := nav + "\n" + m.vp.View() + "\n" + m.helpView()
	if x, y, ok := m.pointer.Position(); ok && m.config.Mouse {
		frame = overlayGlow(frame, x, y, m.styles().glow)
	}
	return paintBody(frame, m.theme.Palette().Background, m.width)
}

// Theme returns the active theme name.
func (m *Model) Theme() string {
	return m.theme.Name()
}

// ToggleTheme is the setter handed to fragments that switch the theme.
func (m *Model) ToggleTheme() {
	m.theme.Toggle()
	m.applyHelpStyles()
	m.log.WithField("theme", m.theme.Name()).Debug("theme toggled")
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Theme):
		m.ToggleTheme()
	case key.Matches(msg, m.keys.Copy):
		return m.copyEmail(), false
	case key.Matches(msg, m.keys.Email):
		return openLink(m.open, mailto(m.content.Profile.Email)), false
	case key.Matches(msg, m.keys.Jump):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(anchorOrder) {
			m.jump(anchorOrder[idx])
		}
	case key.Matches(msg, m.keys.NextProject):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevProject):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Open):
		return m.openFocused(), false
	case key.Matches(msg, m.keys.Menu):
		m.menuOpen = !m.menuOpen
		m.resize()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case key.Matches(msg, m.keys.Top):
		m.vp.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.vp.GotoBottom()
	default:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return cmd, false
	}
	return nil, false
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.config.Mouse {
		return nil
	}
	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return cmd
	}
	m.pointer.Move(msg.X, msg.Y)
	z, ok := m.zoneAt(msg.X, msg.Y)
	m.hoverSkill, m.hoverProject = -1, -1
	if ok {
		switch z.kind {
		case zoneSkill:
			m.hoverSkill = z.index
		case zoneProject:
			m.hoverProject = z.index
		}
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || !ok {
		return nil
	}
	return m.click(z)
}

func (m *Model) click(z zone) tea.Cmd {
	switch z.kind {
	case zoneNav, zoneJump:
		m.jump(z.target)
	case zoneToggle:
		m.ToggleTheme()
	case zoneMenu:
		m.menuOpen = !m.menuOpen
		m.resize()
	case zoneCopy:
		return m.copyEmail()
	case zoneLink:
		return openLink(m.open, z.target)
	case zoneProject:
		m.focusProject = z.index
		return m.openFocused()
	}
	return nil
}

func (m *Model) copyEmail() tea.Cmd {
	cmd := m.feedback.Trigger()
	m.log.WithFields(logrus.Fields{
		"text":       m.feedback.Text(),
		"generation": m.feedback.Generation(),
	}).Debug("copied to clipboard")
	return cmd
}

// helpView renders the key help clipped to the terminal width. The full help
// adds a column even when it does not fit, so every line is cut to size.
func (m *Model) helpView() string {
	out := m.help.View(m.keys)
	if m.width <= 0 {
		return out
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, m.width, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) openFocused() tea.Cmd {
	if m.focusProject < 0 || m.focusProject >= len(m.content.Projects) {
		return nil
	}
	p := m.content.Projects[m.focusProject]
	if !p.HasLink() {
		return nil
	}
	return openLink(m.open, p.Link)
}

// jump scrolls the page so the anchor sits at the top. Selecting an entry
// closes the compact menu.
func (m *Model) jump(anchor string) {
	if m.menuOpen {
		m.menuOpen = false
		m.resize()
	}
	if m.page == nil {
		return
	}
	row, ok := m.page.anchors[anchor]
	if !ok {
		return
	}
	m.vp.SetYOffset(row)
}

func (m *Model) moveFocus(delta int) {
	count := len(m.content.Projects)
	if count == 0 {
		return
	}
	next := m.focusProject + delta
	if m.focusProject < 0 && delta < 0 {
		next = count - 1
	}
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.focusProject = next
	if m.page == nil {
		return
	}
	for _, b := range m.page.blocks {
		if b.ID != projectBlockID(next) {
			continue
		}
		if b.Top < m.vp.YOffset || b.Top+b.Height > m.vp.YOffset+m.vp.Height {
			m.vp.SetYOffset(max(b.Top-1, 0))
		}
		return
	}
}

// zoneAt maps a screen cell to the zone under it.
func (m *Model) zoneAt(x, y int) (zone, bool) {
	if y < m.navRows {
		for _, z := range m.navZones {
			if z.contains(x, y) {
				return z, true
			}
		}
		return zone{}, false
	}
	if m.page == nil || y >= m.navRows+m.vp.Height {
		return zone{}, false
	}
	row := y - m.navRows + m.vp.YOffset
	col := x - m.margin()
	for _, z := range m.page.zones {
		if z.block != "" && !m.reveal.Visible(z.block) {
			continue
		}
		if z.contains(col, row) {
			return z, true
		}
	}
	return zone{}, false
}

func (m *Model) contentWidth() int {
	return max(min(m.width-4, maxContentWidth), 20)
}

func (m *Model) margin() int {
	return max((m.width-m.contentWidth())/2, 0)
}

func (m *Model) styles() styles {
	return newStyles(m.theme.Palette())
}

func (m *Model) navbar() navbar {
	return navbar{
		st:       m.styles(),
		content:  m.content,
		width:    m.width,
		margin:   m.margin(),
		scrolled: m.scroll.Scrolled(),
		menuOpen: m.menuOpen,
		active:   m.activeSection(),
	}
}

// resize recomputes the viewport around the navbar and help line.
func (m *Model) resize() {
	if !m.ready {
		return
	}
	m.help.Width = m.width
	bar, zones := m.navbar().render()
	m.navZones = zones
	m.navRows = lipgloss.Height(bar)
	helpRows := lipgloss.Height(m.helpView())
	m.vp.Width = m.width
	m.vp.Height = max(m.height-m.navRows-helpRows, 1)
}

func (m *Model) view() view {
	return view{
		st:           m.styles(),
		content:      m.content,
		avatar:       m.avatar,
		width:        m.contentWidth(),
		height:       m.vp.Height,
		typed:        m.typing.View(),
		copied:       m.feedback.Copied(),
		hoverSkill:   m.hoverSkill,
		hoverProject: m.hoverProject,
		focusProject: m.focusProject,
		visible:      m.reveal.Visible,
	}
}

// refresh re-renders the page, registers reveal blocks after the first
// layout, runs intersection checks against the viewport and records the
// scroll offset.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	page := renderPage(m.view())
	if !m.reveal.Sealed() {
		for _, b := range page.blocks {
			m.reveal.Register(b.ID)
		}
		m.reveal.Seal()
	}
	win := tracker.Window{Top: m.vp.YOffset, Height: m.vp.Height}
	if fresh := m.reveal.Observe(page.blocks, win); len(fresh) > 0 {
		m.log.WithField("blocks", fresh).Debug("revealed")
		page = renderPage(m.view())
	}
	m.page = page

	offset := m.vp.YOffset
	m.vp.SetContent(indent(page.String(), m.margin()))
	m.vp.SetYOffset(offset)
	m.scroll.Observe(m.vp.YOffset)
	_, m.navZones = m.navbar().render()
}

func (m *Model) activeSection() string {
	if m.page == nil {
		return ""
	}
	active := ""
	for _, id := range anchorOrder {
		row, ok := m.page.anchors[id]
		if ok && row <= m.vp.YOffset+1 {
			active = id
		}
	}
	return active
}

func (m *Model) applyHelpStyles() {
	p := m.theme.Palette()
	keyStyle := lipgloss.NewStyle().Foreground(p.Accent)
	descStyle := lipgloss.NewStyle().Foreground(p.Muted)
	sepStyle := lipgloss.NewStyle().Foreground(p.Faint)
	m.help.Styles.ShortKey = keyStyle
	m.help.Styles.ShortDesc = descStyle
	m.help.Styles.ShortSeparator = sepStyle
	m.help.Styles.FullKey = keyStyle
	m.help.Styles.FullDesc = descStyle
	m.help.Styles.FullSeparator = sepStyle
	m.help.Styles.Ellipsis = sepStyle
}

// Render draws a static, fully revealed frame of the page at the given width,
// without navbar or help. It is used for non-interactive output.
func Render(c model.Content, a avatar.Avatar, dark bool, width int) string {
	var st theme.State
	if !dark {
		st.Toggle()
	}
	v := view{
		st:           newStyles(st.Palette()),
		content:      c,
		avatar:       a,
		width:        width,
		typed:        firstPhrase(c.Phrases),
		hoverSkill:   -1,
		hoverProject: -1,
		focusProject: -1,
		showLevels:   true,
	}
	reveal := tracker.NewReveal(tracker.DefaultRevealThreshold)
	for _, b := range renderPage(v).blocks {
		reveal.Register(b.ID)
	}
	reveal.Seal()
	reveal.RevealAll()
	v.visible = reveal.Visible
	page := renderPage(v)
	return strings.TrimRight(page.String(), "\n")
}

func firstPhrase(phrases []string) string {
	if len(phrases) == 0 {
		return ""
	}
	return phrases[0]
}
