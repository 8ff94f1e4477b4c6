package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas is an off-screen Ebitengine image the animations paint
// into during Update; the host blits it to the screen in Draw.
type EbitenCanvas struct {
	img           *ebiten.Image
	width, height int
}

func NewEbitenCanvas(width, height int) (*EbitenCanvas, error) {
	c := &EbitenCanvas{}
	if err := c.Resize(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *EbitenCanvas) Size() (int, int) { return c.width, c.height }

func (c *EbitenCanvas) Image() *ebiten.Image { return c.img }

// Resize reallocates the backing image. The content is lost.
func (c *EbitenCanvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	if c.img != nil && width == c.width && height == c.height {
		return nil
	}
	if c.img != nil {
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(width, height)
	c.width, c.height = width, height
	return nil
}

func (c *EbitenCanvas) Clear(col color.Color) {
	c.img.Fill(col)
}

func (c *EbitenCanvas) FillRect(x, y, w, h float64, col color.Color) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), col, true)
}
