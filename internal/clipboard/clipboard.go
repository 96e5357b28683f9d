// Package clipboard copies text to the system clipboard and tracks the
// transient "copied" confirmation.
package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	atotto "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// ResetDelay is how long the confirmation stays visible after a copy.
const ResetDelay = 2 * time.Second

// Writer puts text on a clipboard.
type Writer interface {
	Write(text string) error
}

// System writes through the OS clipboard and falls back to an OSC 52 escape
// sequence on Out when no clipboard utility is available (SSH sessions,
// headless hosts). The fallback is logged to Log at warn level.
type System struct {
	Out io.Writer
	Log logrus.FieldLogger
}

var systemWrite = atotto.WriteAll

// Write implements Writer.
func (s System) Write(text string) error {
	err := systemWrite(text)
	if err == nil {
		return nil
	}
	out := s.Out
	if out == nil {
		out = os.Stderr
	}
	seq := osc52.New(text)
	if isTmux() {
		seq = seq.Tmux()
	}
	if _, oerr := seq.WriteTo(out); oerr != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	if s.Log != nil {
		s.Log.WithError(err).Warn("system clipboard unavailable, sent OSC 52 sequence")
	}
	return nil
}

func isTmux() bool {
	return os.Getenv("TMUX") != "" ||
		strings.HasPrefix(os.Getenv("TERM"), "tmux") ||
		strings.HasPrefix(os.Getenv("TERM"), "screen")
}

// ExpiredMsg clears the confirmation if it belongs to the latest copy.
type ExpiredMsg struct {
	Generation int
}

// Feedback is the copy action plus its confirmation flag. Every trigger
// restarts the reset timer; an older timer firing late does not clear a newer
// confirmation.
type Feedback struct {
	text       string
	writer     Writer
	log        logrus.FieldLogger
	copied     bool
	generation int
}

// NewFeedback returns feedback that copies text with w.
func NewFeedback(text string, w Writer, log logrus.FieldLogger) *Feedback {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Feedback{text: text, writer: w, log: log}
}

// Text returns the literal that is copied.
func (f *Feedback) Text() string {
	return f.text
}

// Copied reports whether the confirmation is showing.
func (f *Feedback) Copied() bool {
	return f.copied
}

// Trigger writes the text, shows the confirmation and returns the command that
// expires it after ResetDelay. A failed write is logged and otherwise ignored.
func (f *Feedback) Trigger() tea.Cmd {
	if err := f.writer.Write(f.text); err != nil {
		f.log.WithError(err).Warn("clipboard write failed")
	}
	f.copied = true
	f.generation++
	gen := f.generation
	return tea.Tick(ResetDelay, func(time.Time) tea.Msg {
		return ExpiredMsg{Generation: gen}
	})
}

// Expire handles an ExpiredMsg.
func (f *Feedback) Expire(msg ExpiredMsg) {
	if msg.Generation != f.generation {
		return
	}
	f.copied = false
}

// Generation returns the number of triggers so far.
func (f *Feedback) Generation() int {
	return f.generation
}
