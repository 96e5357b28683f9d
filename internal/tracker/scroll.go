// Package tracker derives view state from scroll, pointer and viewport events.
package tracker

// DefaultScrollThreshold is the offset past which the page counts as scrolled.
const DefaultScrollThreshold = 40

// Scroll tracks whether the page has scrolled past a threshold.
type Scroll struct {
	Threshold int

	offset   int
	scrolled bool
}

// NewScroll returns a scroll tracker with the given threshold.
func NewScroll(threshold int) *Scroll {
	return &Scroll{Threshold: threshold}
}

// Observe records an offset and recomputes the scrolled flag.
func (s *Scroll) Observe(offset int) bool {
	s.offset = offset
	s.scrolled = offset > s.Threshold
	return s.scrolled
}

// Scrolled reports whether the last observed offset exceeded the threshold.
func (s *Scroll) Scrolled() bool {
	return s.scrolled
}

// Offset returns the last observed offset.
func (s *Scroll) Offset() int {
	return s.offset
}
