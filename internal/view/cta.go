package view

import (
	"freedom-layer/internal/event"
	"freedom-layer/internal/input"
)

// CTA is the call-to-action hit area anchored to the bottom of the hero.
// Coordinates are page coordinates: the hero occupies the first viewport
// height of the page, so a hit reveals the info panel and scrolls to it.
type CTA struct {
	Size         float64
	BottomOffset float64

	scroll   *Scroll
	viewport func() input.Viewport
	onClick  func()
}

// NewCTA creates the hit area. onClick may be nil.
func NewCTA(size, bottomOffset float64, scroll *Scroll, viewport func() input.Viewport, onClick func()) *CTA {
	return &CTA{
		Size:         size,
		BottomOffset: bottomOffset,
		scroll:       scroll,
		viewport:     viewport,
		onClick:      onClick,
	}
}

// Rect returns the top-left corner of the area in page coordinates.
func (c *CTA) Rect(vp input.Viewport) (x, y float64) {
	return (float64(vp.Width) - c.Size) / 2, float64(vp.Height) - c.BottomOffset - c.Size
}

func (c *CTA) Contains(p input.Point, vp input.Viewport) bool {
	x, y := c.Rect(vp)
	return p.X >= x && p.X < x+c.Size && p.Y >= y && p.Y < y+c.Size
}

// OnEvent implements event.Listener for event.Click.
func (c *CTA) OnEvent(e event.Event) {
	if e.Type != event.Click {
		return
	}
	p, ok := e.Data.(input.Point)
	if !ok {
		return
	}
	vp := c.viewport()
	if !c.Contains(p, vp) {
		return
	}
	if c.onClick != nil {
		c.onClick()
	}
	c.scroll.Reveal()
	c.scroll.ScrollTo(float64(vp.Height))
}
