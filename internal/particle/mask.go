package particle

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Mask is the alpha raster of the headline, used only to decide which
// pixels particles may rest on.
type Mask struct {
	Width, Height int
	Stride        int
	Alpha         []uint8
	Threshold     uint8
}

// Opaque reports whether (x, y) is part of a glyph. Out-of-range pixels are not.
func (m *Mask) Opaque(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Alpha[y*m.Stride+x] > m.Threshold
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	if m == nil {
		return 0
	}
	n := 0
	for y := 0; y < m.Height; y++ {
		row := m.Alpha[y*m.Stride : y*m.Stride+m.Width]
		for _, a := range row {
			if a > m.Threshold {
				n++
			}
		}
	}
	return n
}

// NewTextMask renders text in bold at the layout's font size, centred
// horizontally with its baseline on the vertical middle, off-screen.
func NewTextMask(text string, layout Layout, threshold uint8) (*Mask, error) {
	if layout.Width <= 0 || layout.Height <= 0 {
		return nil, fmt.Errorf("invalid mask size %dx%d", layout.Width, layout.Height)
	}
	face, err := newFace(layout.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, layout.Width, layout.Height))
	metrics := face.Metrics()
	x := (float64(layout.Width) - measure(face, text)) / 2
	// "middle": центр между верхом и низом глифов
	y := float64(layout.Height)/2 + float64(metrics.Ascent-metrics.Descent)/64/2

	d := font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)

	return &Mask{
		Width:     layout.Width,
		Height:    layout.Height,
		Stride:    img.Stride,
		Alpha:     img.Pix,
		Threshold: threshold,
	}, nil
}

// Position is an integer pixel coordinate on the mask.
type Position struct {
	X, Y int
}

// IntSource is the randomness SampleValidPosition needs.
type IntSource interface {
	Intn(n int) int
}

// SampleValidPosition draws up to maxAttempts uniform pixels and returns
// the first opaque one. It reports false when none was found.
func SampleValidPosition(m *Mask, rng IntSource, maxAttempts int) (Position, bool) {
	if m == nil || m.Width <= 0 || m.Height <= 0 {
		return Position{}, false
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		x := rng.Intn(m.Width)
		y := rng.Intn(m.Height)
		if m.Opaque(x, y) {
			return Position{X: x, Y: y}, true
		}
	}
	return Position{}, false
}
