// internal/ui/button.go
package ui

import (
	"math"
	"time"

	"freedom-layer/internal/input"
	"freedom-layer/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
)

// CTAButton draws the particle button over its hit area.
type CTAButton struct {
	Area          *view.CTA
	LastClickTime time.Time
}

// HandleClick starts the press pulse.
func (b *CTAButton) HandleClick() {
	b.LastClickTime = time.Now()
}

// Draw blits the emitter canvas scaled to the button size, shifted up by
// the page scroll.
func (b *CTAButton) Draw(screen, canvas *ebiten.Image, vp input.Viewport, scroll float64) {
	if canvas == nil {
		return
	}
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.1*math.Exp(-elapsed*8)
	size := b.Area.Size * scale

	x, y := b.Area.Rect(vp)
	x -= (size - b.Area.Size) / 2
	y -= (size - b.Area.Size) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(canvas.Bounds().Dx()), size/float64(canvas.Bounds().Dy()))
	op.GeoM.Translate(x, y-scroll)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(canvas, op)
}
