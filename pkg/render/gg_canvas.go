package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// GGCanvas paints with gg's software rasterizer, for headless snapshots.
type GGCanvas struct {
	dc  *gg.Context
	err error
}

func NewGGCanvas(width, height int) (*GGCanvas, error) {
	c := &GGCanvas{}
	if err := c.Resize(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *GGCanvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

func (c *GGCanvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	if c.dc != nil {
		if c.dc.Width() == width && c.dc.Height() == height {
			return nil
		}
		c.dc.Close()
	}
	c.dc = gg.NewContext(width, height)
	return nil
}

func (c *GGCanvas) Clear(col color.Color) {
	c.dc.ClearWithColor(ToGG(col))
}

func (c *GGCanvas) FillRect(x, y, w, h float64, col color.Color) {
	k := ToGG(col)
	c.dc.SetRGBA(k.R, k.G, k.B, k.A)
	c.dc.DrawRectangle(x, y, w, h)
	if err := c.dc.Fill(); err != nil && c.err == nil {
		c.err = err // первая ошибка всплывёт в SavePNG
	}
}

func (c *GGCanvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the current frame, or the first fill error seen.
func (c *GGCanvas) SavePNG(path string) error {
	if c.err != nil {
		return fmt.Errorf("failed to render frame: %w", c.err)
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func (c *GGCanvas) Close() error {
	return c.dc.Close()
}
