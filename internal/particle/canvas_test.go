package particle

import "image/color"

type rect struct {
	x, y, w, h float64
	c          color.Color
}

// recordCanvas keeps the draw calls of the last frame.
type recordCanvas struct {
	w, h   int
	clears []color.Color
	rects  []rect
}

func newRecordCanvas(w, h int) *recordCanvas {
	return &recordCanvas{w: w, h: h}
}

func (c *recordCanvas) Size() (int, int) { return c.w, c.h }

func (c *recordCanvas) Clear(col color.Color) {
	c.clears = append(c.clears, col)
	c.rects = c.rects[:0]
}

func (c *recordCanvas) FillRect(x, y, w, h float64, col color.Color) {
	c.rects = append(c.rects, rect{x, y, w, h, col})
}

// seqSource replays fixed values for Intn.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}
