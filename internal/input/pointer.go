package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return Point{X: x, Y: y}, nil
}

// Viewport is the logical size of the hosting window.
type Viewport struct {
	Width, Height int
}

// Capabilities describes the input hardware of the device.
type Capabilities struct {
	// Touch is set on touch-capable devices. Idle touch devices do not
	// repel particles unless a finger is down.
	Touch bool
}

// PointerCell is the shared pointer state between event handlers (the
// writers) and the animation frame (the reader). Both run on the host's
// loop goroutine, so the cell is not synchronised.
type PointerCell struct {
	pos      Point
	touching bool
}

// Set stores the latest pointer or touch position.
func (c *PointerCell) Set(p Point) {
	c.pos = p
}

// Get returns the position the next frame should react to.
func (c *PointerCell) Get() Point {
	return c.pos
}

// Reset moves the pointer back to the origin so repulsion near the
// top-left corner is the only possible effect.
func (c *PointerCell) Reset() {
	c.Set(Point{})
}

func (c *PointerCell) SetTouching(v bool) {
	c.touching = v
}

func (c *PointerCell) Touching() bool {
	return c.touching
}
