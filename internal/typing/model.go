package typing

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances a typing Model. Ticks addressed to another model, or
// scheduled before the latest reschedule, are dropped.
type TickMsg struct {
	Time time.Time
	ID   int
	tag  int
}

// Model is the Bubble Tea component driving a typing cycle. Only one tick is
// live at a time; a consumed tick cannot be replayed.
type Model struct {
	phrases []string
	speed   time.Duration
	state   State
	id      int
	tag     int
}

// New returns a typing model. A non-positive speed falls back to DefaultSpeed.
func New(phrases []string, speed time.Duration) Model {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return Model{
		phrases: append([]string(nil), phrases...),
		speed:   speed,
		id:      nextID(),
	}
}

// ID returns the model's unique id.
func (m Model) ID() int {
	return m.id
}

// State returns the current cycle snapshot.
func (m Model) State() State {
	return m.state
}

// Init schedules the first tick. It returns nil when there is nothing to type.
func (m Model) Init() tea.Cmd {
	if len(m.phrases) == 0 {
		return nil
	}
	return m.schedule()
}

// Update applies a tick and schedules the next one.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok {
		return m, nil
	}
	if tick.ID != m.id || tick.tag != m.tag {
		return m, nil
	}
	m.state = Step(m.state, m.phrases)
	m.tag++
	return m, m.schedule()
}

// View returns the text displayed so far.
func (m Model) View() string {
	return m.state.Displayed
}

func (m Model) schedule() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(Delay(m.state, m.speed), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id, tag: tag}
	})
}
