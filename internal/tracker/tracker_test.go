package tracker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScrollThreshold(t *testing.T) {
	s := NewScroll(DefaultScrollThreshold)
	require.False(t, s.Scrolled())

	require.True(t, s.Observe(50))
	require.True(t, s.Scrolled())
	require.Equal(t, 50, s.Offset())

	require.False(t, s.Observe(10))
	require.False(t, s.Observe(40))
	require.True(t, s.Observe(41))
}

func TestPointerMirrorsPosition(t *testing.T) {
	var p Pointer
	_, _, ok := p.Position()
	require.False(t, ok)

	p.Move(12, 7)
	x, y, ok := p.Position()
	require.True(t, ok)
	require.Equal(t, 12, x)
	require.Equal(t, 7, y)

	p.Forget()
	_, _, ok = p.Position()
	require.False(t, ok)
}

func TestVisibleRatio(t *testing.T) {
	b := Block{ID: "a", Top: 10, Height: 10}
	require.Equal(t, 0.0, VisibleRatio(b, Window{Top: 0, Height: 10}))
	require.Equal(t, 0.1, VisibleRatio(b, Window{Top: 0, Height: 11}))
	require.Equal(t, 1.0, VisibleRatio(b, Window{Top: 5, Height: 30}))
	require.Equal(t, 0.5, VisibleRatio(b, Window{Top: 15, Height: 30}))
	require.Equal(t, 0.0, VisibleRatio(Block{Height: 0}, Window{Height: 10}))
}

func TestRevealIsMonotonic(t *testing.T) {
	r := NewReveal(DefaultRevealThreshold)
	r.Register("a", "b")
	r.Seal()

	blocks := []Block{{ID: "a", Top: 0, Height: 10}, {ID: "b", Top: 50, Height: 10}}
	fresh := r.Observe(blocks, Window{Top: 0, Height: 20})
	require.Equal(t, []string{"a"}, fresh)
	require.True(t, r.Visible("a"))
	require.False(t, r.Visible("b"))

	fresh = r.Observe(blocks, Window{Top: 45, Height: 20})
	require.Equal(t, []string{"b"}, fresh)
	require.True(t, r.Visible("a"))

	require.Empty(t, r.Observe(blocks, Window{Top: 45, Height: 20}))
	require.True(t, r.Visible("b"))
}

func TestRevealNeedsThreshold(t *testing.T) {
	r := NewReveal(0.5)
	r.Register("a")
	blocks := []Block{{ID: "a", Top: 0, Height: 10}}

	require.Empty(t, r.Observe(blocks, Window{Top: 6, Height: 10}))
	require.Equal(t, []string{"a"}, r.Observe(blocks, Window{Top: 5, Height: 10}))
}

func TestRevealIgnoresLateRegistrations(t *testing.T) {
	r := NewReveal(0)
	require.Equal(t, DefaultRevealThreshold, r.Threshold)
	r.Register("a")
	r.Seal()
	r.Register("late")
	require.True(t, r.Sealed())

	blocks := []Block{{ID: "a", Height: 1}, {ID: "late", Height: 1}}
	require.Equal(t, []string{"a"}, r.Observe(blocks, Window{Height: 5}))
	require.False(t, r.Visible("late"))
}

func TestRevealDispose(t *testing.T) {
	r := NewReveal(DefaultRevealThreshold)
	r.Register("a", "b")
	r.Observe([]Block{{ID: "a", Height: 1}}, Window{Height: 1})
	r.Dispose()

	require.Nil(t, r.Observe([]Block{{ID: "b", Height: 1}}, Window{Height: 1}))
	require.True(t, r.Visible("a"))
	require.False(t, r.Visible("b"))
}

func TestRevealAll(t *testing.T) {
	r := NewReveal(DefaultRevealThreshold)
	r.Register("a", "b")
	r.RevealAll()
	require.True(t, r.Visible("a"))
	require.True(t, r.Visible("b"))
	require.False(t, r.Visible("c"))
}
