package tracker

// DefaultRevealThreshold is the visible fraction of a block needed to reveal it.
const DefaultRevealThreshold = 0.1

// Block is a registered element's vertical extent in content rows.
type Block struct {
	ID     string
	Top    int
	Height int
}

// Window is the visible range of content rows.
type Window struct {
	Top    int
	Height int
}

// Reveal flips registered blocks to visible the first time enough of them is
// inside the window. A revealed block stays revealed.
type Reveal struct {
	Threshold float64

	registered map[string]struct{}
	revealed   map[string]struct{}
	sealed     bool
	disposed   bool
}

// NewReveal returns a controller. Thresholds outside (0, 1] use the default.
func NewReveal(threshold float64) *Reveal {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultRevealThreshold
	}
	return &Reveal{
		Threshold:  threshold,
		registered: map[string]struct{}{},
		revealed:   map[string]struct{}{},
	}
}

// Register starts observing the given ids. It is a no-op once sealed.
func (r *Reveal) Register(ids ...string) {
	if r.sealed || r.disposed {
		return
	}
	for _, id := range ids {
		r.registered[id] = struct{}{}
	}
}

// Seal closes registration; elements appearing later are never observed.
func (r *Reveal) Seal() {
	r.sealed = true
}

// Sealed reports whether registration is closed.
func (r *Reveal) Sealed() bool {
	return r.sealed
}

// Observe reveals every registered block whose visible fraction reaches the
// threshold and returns the ids revealed by this call.
func (r *Reveal) Observe(blocks []Block, win Window) []string {
	if r.disposed {
		return nil
	}
	var fresh []string
	for _, b := range blocks {
		if _, ok := r.registered[b.ID]; !ok {
			continue
		}
		if _, ok := r.revealed[b.ID]; ok {
			continue
		}
		if VisibleRatio(b, win) >= r.Threshold {
			r.revealed[b.ID] = struct{}{}
			fresh = append(fresh, b.ID)
		}
	}
	return fresh
}

// Visible reports whether id has been revealed.
func (r *Reveal) Visible(id string) bool {
	_, ok := r.revealed[id]
	return ok
}

// RevealAll marks every registered block visible, for static renders.
func (r *Reveal) RevealAll() {
	for id := range r.registered {
		r.revealed[id] = struct{}{}
	}
}

// Dispose stops observation. Revealed state is kept.
func (r *Reveal) Dispose() {
	r.disposed = true
}

// VisibleRatio is the fraction of b's rows that fall inside win.
func VisibleRatio(b Block, win Window) float64 {
	if b.Height <= 0 || win.Height <= 0 {
		return 0
	}
	top := max(b.Top, win.Top)
	bottom := min(b.Top+b.Height, win.Top+win.Height)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(b.Height)
}
