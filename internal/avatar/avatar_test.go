package avatar

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/ajeetyadav1111/termfolio/internal/theme"
)

func TestLoadMissingFileFallsBack(t *testing.T) {
	a := Load(filepath.Join(t.TempDir(), "Ajeet.png"))
	require.True(t, a.Failed())
	require.Error(t, a.Err())

	var out string
	require.NotPanics(t, func() {
		out = a.Render(theme.For(true), "AY", "FULL STACK", 20, 8)
	})
	require.Contains(t, out, "AY")
	require.Contains(t, out, "FULL STACK")
	require.Equal(t, 8, lipgloss.Height(out))
}

func TestLoadEmptyPath(t *testing.T) {
	a := Load("  ")
	require.True(t, errors.Is(a.Err(), ErrNoImage))
}

func TestLoadCorruptImageFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	a := Load(path)
	require.True(t, a.Failed())
	require.Contains(t, a.Render(theme.For(false), "AY", "FULL STACK", 20, 8), "AY")
}

func TestLoadValidImageRendersHalfBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 0, G: 212, B: 255, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "me.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	a := Load(path)
	require.NoError(t, a.Err())
	require.False(t, a.Failed())

	out := a.Render(theme.For(true), "AY", "FULL STACK", 6, 3)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, 6, strings.Count(lines[0], "▀"))
	require.NotContains(t, out, "AY")
}

func TestRenderZeroSize(t *testing.T) {
	require.Empty(t, Load("").Render(theme.For(true), "AY", "", 0, 4))
}
