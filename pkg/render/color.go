// pkg/render/color.go
package render

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Straight converts any color to non-premultiplied 8-bit RGBA.
func Straight(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// ToGG converts a color to gg's straight-alpha float representation.
func ToGG(c color.Color) gg.RGBA {
	n := Straight(c)
	return gg.RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// WithAlpha returns c with its opacity scaled by a in [0, 1].
func WithAlpha(c color.Color, a float64) color.NRGBA {
	n := Straight(c)
	n.A = uint8(float64(n.A) * a)
	return n
}
