package tracker

// Pointer mirrors the last known pointer cell.
type Pointer struct {
	X, Y  int
	known bool
}

// Move records the pointer position exactly as reported.
func (p *Pointer) Move(x, y int) {
	p.X = x
	p.Y = y
	p.known = true
}

// Forget hides the indicator until the next move, e.g. after the pointer
// leaves the window.
func (p *Pointer) Forget() {
	p.known = false
}

// Position returns the last coordinates and whether any move was seen.
func (p *Pointer) Position() (x, y int, ok bool) {
	return p.X, p.Y, p.known
}
