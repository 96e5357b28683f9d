package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/ajeetyadav1111/termfolio/internal/clipboard"
	"github.com/ajeetyadav1111/termfolio/internal/content"
	"github.com/ajeetyadav1111/termfolio/internal/model"
	"github.com/ajeetyadav1111/termfolio/internal/tracker"
)

type fakeClipboard struct {
	writes []string
}

func (f *fakeClipboard) Write(text string) error {
	f.writes = append(f.writes, text)
	return nil
}

type harness struct {
	m      *Model
	clip   *fakeClipboard
	opened []string
}

func newHarness(t *testing.T, width, height int) *harness {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	h := &harness{clip: &fakeClipboard{}}
	h.m = NewModel(Options{
		Config: model.Config{
			TypingSpeed:     time.Millisecond,
			ScrollThreshold: 2,
			RevealThreshold: 0.1,
			Mouse:           true,
		},
		Content:   content.Default(),
		Clipboard: h.clip,
		Open: func(target string) error {
			h.opened = append(h.opened, target)
			return nil
		},
		Log: log,
	})
	h.send(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	_, cmd := h.m.Update(msg)
	return cmd
}

func (h *harness) press(keys string) tea.Cmd {
	switch keys {
	case "tab":
		return h.send(tea.KeyMsg{Type: tea.KeyTab})
	case "enter":
		return h.send(tea.KeyMsg{Type: tea.KeyEnter})
	}
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
}

func (h *harness) findZone(t *testing.T, kind zoneKind, index int) zone {
	t.Helper()
	for _, z := range h.m.page.zones {
		if z.kind == kind && z.index == index {
			return z
		}
	}
	t.Fatalf("no zone of kind %d at index %d", kind, index)
	return zone{}
}

// screen converts a page zone to the terminal cell at its top-left corner.
func (h *harness) screen(z zone) (int, int) {
	return z.left + h.m.margin(), z.top - h.m.vp.YOffset + h.m.navRows
}

func TestModelStartsDarkAndTogglesWithKey(t *testing.T) {
	h := newHarness(t, 100, 30)
	require.Equal(t, "dark", h.m.Theme())

	h.press("t")
	require.Equal(t, "light", h.m.Theme())

	h.press("t")
	require.Equal(t, "dark", h.m.Theme())
}

func TestViewIsEmptyBeforeFirstSize(t *testing.T) {
	m := NewModel(Options{Content: content.Default()})
	require.Equal(t, "", m.View())
}

func TestViewShowsHero(t *testing.T) {
	h := newHarness(t, 100, 30)
	out := h.m.View()
	require.Contains(t, out, "AJEET")
	require.Contains(t, out, "YADAV")
	require.Contains(t, out, "SCROLL ↓")
	require.Contains(t, out, "Hire Me")
}

func TestJumpScrollsToSectionAndMarksScrolled(t *testing.T) {
	h := newHarness(t, 100, 30)
	require.False(t, h.m.scroll.Scrolled())

	h.press("3")
	require.Equal(t, h.m.page.anchors[anchorProjects], h.m.vp.YOffset)
	require.True(t, h.m.scroll.Scrolled())
	require.Equal(t, anchorProjects, h.m.activeSection())

	h.press("g")
	require.Equal(t, 0, h.m.vp.YOffset)
	require.False(t, h.m.scroll.Scrolled())
}

func TestRevealIsMonotonicAcrossScrolling(t *testing.T) {
	h := newHarness(t, 100, 30)
	require.True(t, h.m.reveal.Visible("hero"))
	require.False(t, h.m.reveal.Visible("contact:card"))
	require.False(t, h.m.reveal.Visible("skills:head"))

	h.press("G")
	require.True(t, h.m.reveal.Visible("contact:card"))

	h.press("g")
	require.True(t, h.m.reveal.Visible("contact:card"))
	require.True(t, h.m.reveal.Visible("hero"))
}

func TestUnrevealedBlocksKeepTheirHeight(t *testing.T) {
	h := newHarness(t, 100, 30)
	before := len(h.m.page.lines)
	h.press("G")
	require.Equal(t, before, len(h.m.page.lines))
}

func TestCopyEmailShowsConfirmationUntilExpiry(t *testing.T) {
	h := newHarness(t, 100, 30)
	cmd := h.press("c")
	require.NotNil(t, cmd)
	require.Equal(t, []string{"ajeety4969@gmail.com"}, h.clip.writes)
	require.True(t, h.m.feedback.Copied())

	h.press("G")
	require.Contains(t, h.m.View(), "Email copied!")

	h.send(clipboard.ExpiredMsg{Generation: h.m.feedback.Generation()})
	require.False(t, h.m.feedback.Copied())
	require.NotContains(t, h.m.View(), "Email copied!")
}

func TestCopyAgainKeepsConfirmationAlive(t *testing.T) {
	h := newHarness(t, 100, 30)
	h.press("c")
	first := h.m.feedback.Generation()
	h.press("c")

	h.send(clipboard.ExpiredMsg{Generation: first})
	require.True(t, h.m.feedback.Copied())
	require.Len(t, h.clip.writes, 2)
}

func TestTypingTickAdvancesHeadline(t *testing.T) {
	h := newHarness(t, 100, 30)
	cmd := h.m.Init()
	require.NotNil(t, cmd)

	h.send(cmd())
	require.Equal(t, "F", h.m.typing.View())
	require.Contains(t, h.m.View(), "> F")
}

func TestHoverSkillShowsLevel(t *testing.T) {
	h := newHarness(t, 100, 30)
	h.press("2")
	z := h.findZone(t, zoneSkill, 0)
	x, y := h.screen(z)

	h.send(tea.MouseMsg{X: x + 1, Y: y + 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	require.Equal(t, 0, h.m.hoverSkill)
	require.Contains(t, h.m.View(), "95%")

	h.send(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	require.Equal(t, -1, h.m.hoverSkill)
	require.NotContains(t, h.m.View(), "95%")
}

func TestPointerIsTrackedOnMotion(t *testing.T) {
	h := newHarness(t, 100, 30)
	_, _, ok := h.m.pointer.Position()
	require.False(t, ok)

	h.send(tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	x, y, ok := h.m.pointer.Position()
	require.True(t, ok)
	require.Equal(t, 12, x)
	require.Equal(t, 7, y)
}

func TestMouseIgnoredWhenDisabled(t *testing.T) {
	h := newHarness(t, 100, 30)
	h.m.config.Mouse = false
	h.send(tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	_, _, ok := h.m.pointer.Position()
	require.False(t, ok)
}

func TestClickToggleSwitchesTheme(t *testing.T) {
	h := newHarness(t, 100, 30)
	var toggle zone
	for _, z := range h.m.navZones {
		if z.kind == zoneToggle {
			toggle = z
		}
	}
	require.NotZero(t, toggle.width)

	h.send(tea.MouseMsg{X: toggle.left, Y: toggle.top, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, "light", h.m.Theme())
}

func TestClickCopyButton(t *testing.T) {
	h := newHarness(t, 100, 30)
	h.press("G")
	z := h.findZone(t, zoneCopy, 0)
	x, y := h.screen(z)

	cmd := h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	require.Equal(t, []string{"ajeety4969@gmail.com"}, h.clip.writes)
}

func TestCompactMenuOpensAndClosesOnJump(t *testing.T) {
	h := newHarness(t, 60, 30)
	nav, _ := h.m.navbar().render()
	require.NotContains(t, nav, "Projects")
	require.Equal(t, 2, h.m.navRows)

	h.press("m")
	require.True(t, h.m.menuOpen)
	require.Equal(t, 2+len(h.m.content.Nav), h.m.navRows)
	nav, _ = h.m.navbar().render()
	require.Contains(t, nav, "Projects")

	h.press("2")
	require.False(t, h.m.menuOpen)
	require.Equal(t, 2, h.m.navRows)
	require.Equal(t, h.m.page.anchors[anchorSkills], h.m.vp.YOffset)
}

func TestWideNavbarShowsLinks(t *testing.T) {
	h := newHarness(t, 120, 30)
	nav, zones := h.m.navbar().render()
	for _, label := range h.m.content.Nav {
		require.Contains(t, nav, label)
	}
	var targets []string
	for _, z := range zones {
		if z.kind == zoneNav {
			targets = append(targets, z.target)
		}
	}
	require.Equal(t, []string{"about", "about", "skills", "projects", "contact"}, targets)
}

func TestNavbarBorderAppearsWhenScrolled(t *testing.T) {
	h := newHarness(t, 100, 30)
	nav, _ := h.m.navbar().render()
	require.NotContains(t, nav, "───")

	h.press("2")
	nav, _ = h.m.navbar().render()
	require.Contains(t, nav, "───")
}

func TestFocusAndOpenProject(t *testing.T) {
	h := newHarness(t, 100, 30)
	h.press("tab")
	require.Equal(t, 0, h.m.focusProject)
	require.Contains(t, h.m.View(), "enter: open")

	cmd := h.press("enter")
	require.NotNil(t, cmd)
	msg := cmd()
	h.send(msg)
	require.Len(t, h.opened, 1)
	require.True(t, strings.HasPrefix(h.opened[0], "https://crown-hotel"))

	h.press("tab")
	require.Equal(t, 1, h.m.focusProject)
	require.Nil(t, h.press("enter"))
}

func TestPrevProjectWraps(t *testing.T) {
	h := newHarness(t, 100, 30)
	h.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, len(h.m.content.Projects)-1, h.m.focusProject)
}

func TestEmailKeyOpensMailto(t *testing.T) {
	h := newHarness(t, 100, 30)
	cmd := h.press("e")
	require.NotNil(t, cmd)
	h.send(cmd())
	require.Equal(t, []string{"mailto:ajeety4969@gmail.com"}, h.opened)
}

func TestQuitDisposesReveal(t *testing.T) {
	h := newHarness(t, 100, 30)
	cmd := h.press("q")
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())

	h.m.reveal.Observe([]tracker.Block{{ID: "contact:card", Top: 0, Height: 1}}, tracker.Window{Top: 0, Height: 10})
	require.False(t, h.m.reveal.Visible("contact:card"))
}

func TestBlurHidesPointer(t *testing.T) {
	h := newHarness(t, 100, 30)
	h.send(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	h.send(tea.BlurMsg{})
	_, _, ok := h.m.pointer.Position()
	require.False(t, ok)
}

func TestFullHelpFitsNarrowTerminal(t *testing.T) {
	for _, width := range []int{40, 60} {
		h := newHarness(t, width, 24)
		h.press("?")
		require.True(t, h.m.help.ShowAll)

		lines := strings.Split(h.m.View(), "\n")
		require.Len(t, lines, 24, "width=%d", width)
		for i, line := range lines {
			require.LessOrEqual(t, ansi.StringWidth(line), width, "width=%d line %d: %q", width, i, line)
		}
	}
}

func TestCopyLogsGeneration(t *testing.T) {
	var logs strings.Builder
	log := logrus.New()
	log.SetOutput(&logs)
	log.SetLevel(logrus.DebugLevel)
	m := NewModel(Options{Content: content.Default(), Clipboard: &fakeClipboard{}, Log: log})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	require.Contains(t, logs.String(), "generation=1")
}
