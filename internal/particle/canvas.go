// Package particle holds the two decorative particle simulations of the
// landing page: the text field and the call-to-action emitter. Both draw
// through Canvas, so they run the same under Ebitengine, gg and tcell.
package particle

import "image/color"

// Canvas is a drawing surface in pixel coordinates.
type Canvas interface {
	Size() (width, height int)
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
}
