// Package avatar renders the profile picture, or an initials badge when the
// image cannot be loaded.
package avatar

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder.
	_ "image/jpeg" // JPEG decoder.
	_ "image/png"  // PNG decoder.
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ajeetyadav1111/termfolio/internal/theme"
)

// ErrNoImage is recorded when no image path is configured.
var ErrNoImage = errors.New("no avatar image configured")

// Avatar is a loaded (or failed) profile image.
type Avatar struct {
	img image.Image
	err error
}

// Load decodes the image at path. It never fails; a broken or missing image
// produces an Avatar that renders the fallback.
func Load(path string) Avatar {
	if strings.TrimSpace(path) == "" {
		return Avatar{err: ErrNoImage}
	}
	file, err := os.Open(path)
	if err != nil {
		return Avatar{err: err}
	}
	defer func() {
		_ = file.Close()
	}()
	img, _, err := image.Decode(file)
	if err != nil {
		return Avatar{err: fmt.Errorf("failed to decode avatar: %w", err)}
	}
	return Avatar{img: img}
}

// Err returns the load error, if any.
func (a Avatar) Err() error {
	return a.err
}

// Failed reports whether the fallback is shown.
func (a Avatar) Failed() bool {
	return a.img == nil
}

// Render draws the avatar into a width x height cell box.
func (a Avatar) Render(p theme.Palette, initials, label string, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	if a.Failed() {
		return Fallback(p, initials, label, width, height)
	}
	return halfBlocks(a.img, width, height)
}

// Fallback draws the initials badge.
func Fallback(p theme.Palette, initials, label string, width, height int) string {
	innerW := max(width-2, 1)
	innerH := max(height-2, 1)
	initialsStyle := lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(p.Muted)
	body := lipgloss.JoinVertical(lipgloss.Center,
		initialsStyle.Render(initials),
		labelStyle.Render(label),
	)
	box := lipgloss.NewStyle().
		Width(innerW).
		Height(innerH).
		Align(lipgloss.Center, lipgloss.Center).
		Background(p.Surface).
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(p.Secondary)
	return box.Render(body)
}

// halfBlocks samples the image so that each cell shows two vertical pixels:
// the foreground paints the top half and the background the bottom half.
func halfBlocks(img image.Image, width, height int) string {
	bounds := img.Bounds()
	rows := make([]string, 0, height)
	pxH := height * 2
	for row := 0; row < height; row++ {
		var b strings.Builder
		for col := 0; col < width; col++ {
			x := bounds.Min.X + col*bounds.Dx()/width
			yTop := bounds.Min.Y + (row*2)*bounds.Dy()/pxH
			yBot := bounds.Min.Y + (row*2+1)*bounds.Dy()/pxH
			cell := lipgloss.NewStyle().
				Foreground(hexColor(img, x, yTop)).
				Background(hexColor(img, x, yBot))
			b.WriteString(cell.Render("▀"))
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

func hexColor(img image.Image, x, y int) lipgloss.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
