// Package typing implements the hero typing animation: a phrase is typed one
// rune at a time, held, erased, and the next phrase follows.
package typing

import "time"

// Phase is the state of the typing cycle.
type Phase int

const (
	Typing Phase = iota
	Dwelling
	Deleting
)

// DwellDelay is how long a completed phrase stays on screen before erasing.
const DwellDelay = 1400 * time.Millisecond

// DefaultSpeed is the per-rune typing interval.
const DefaultSpeed = 80 * time.Millisecond

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case Dwelling:
		return "dwelling"
	case Deleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// State is a snapshot of the cycle. CharIndex counts runes of the current
// phrase and stays within [0, len(phrase)].
type State struct {
	Phase       Phase
	PhraseIndex int
	CharIndex   int
	Displayed   string
}

// Step returns the state after one tick. It does not schedule anything.
func Step(s State, phrases []string) State {
	if len(phrases) == 0 {
		return State{}
	}
	s.PhraseIndex %= len(phrases)
	phrase := []rune(phrases[s.PhraseIndex])
	s.CharIndex = clamp(s.CharIndex, 0, len(phrase))

	switch s.Phase {
	case Typing:
		if s.CharIndex < len(phrase) {
			s.CharIndex++
		}
		if s.CharIndex == len(phrase) {
			s.Phase = Dwelling
		}
	case Dwelling:
		s.Phase = Deleting
	case Deleting:
		if s.CharIndex > 0 {
			s.CharIndex--
		}
		if s.CharIndex == 0 {
			s.Phase = Typing
			s.PhraseIndex = (s.PhraseIndex + 1) % len(phrases)
			s.Displayed = ""
			return s
		}
	}
	s.Displayed = string(phrase[:s.CharIndex])
	return s
}

// Delay is the wait before the tick that follows s.
func Delay(s State, speed time.Duration) time.Duration {
	switch s.Phase {
	case Dwelling:
		return DwellDelay
	case Deleting:
		return speed / 2
	default:
		return speed
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
