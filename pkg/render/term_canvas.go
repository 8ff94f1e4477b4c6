package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

const (
	DotsPerCellX = 2
	DotsPerCellY = 4
)

// brailleBits maps a dot inside a 2x4 cell to its braille pattern bit.
var brailleBits = [DotsPerCellY][DotsPerCellX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// TermCanvas rasterizes into braille cells, each cell holding 2x4 pixels.
type TermCanvas struct {
	cols, rows int
	cells      []uint8
}

func NewTermCanvas(cols, rows int) (*TermCanvas, error) {
	c := &TermCanvas{}
	if err := c.Resize(cols*DotsPerCellX, rows*DotsPerCellY); err != nil {
		return nil, err
	}
	return c, nil
}

// Size reports the size in pixels (dots).
func (c *TermCanvas) Size() (int, int) {
	return c.cols * DotsPerCellX, c.rows * DotsPerCellY
}

// Cells reports the size in terminal cells.
func (c *TermCanvas) Cells() (int, int) {
	return c.cols, c.rows
}

// Resize takes a size in pixels and rounds it down to whole cells.
func (c *TermCanvas) Resize(width, height int) error {
	cols, rows := width/DotsPerCellX, height/DotsPerCellY
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("invalid terminal canvas %dx%d", width, height)
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]uint8, cols*rows)
	return nil
}

// Clear blanks every cell; the terminal background stands in for any colour.
func (c *TermCanvas) Clear(color.Color) {
	for i := range c.cells {
		c.cells[i] = 0
	}
}

// FillRect lights every dot the rectangle touches. Mostly transparent
// fills are skipped.
func (c *TermCanvas) FillRect(x, y, w, h float64, col color.Color) {
	if Straight(col).A < 0x40 {
		return
	}
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1 := int(math.Max(math.Ceil(x+w), float64(x0+1)))
	y1 := int(math.Max(math.Ceil(y+h), float64(y0+1)))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.set(px, py)
		}
	}
}

func (c *TermCanvas) set(px, py int) {
	if px < 0 || py < 0 {
		return
	}
	cx, cy := px/DotsPerCellX, py/DotsPerCellY
	if cx >= c.cols || cy >= c.rows {
		return
	}
	c.cells[cy*c.cols+cx] |= brailleBits[py%DotsPerCellY][px%DotsPerCellX]
}

// Rune returns the braille glyph of a cell, or a space when it is empty.
func (c *TermCanvas) Rune(col, row int) rune {
	bits := c.cells[row*c.cols+col]
	if bits == 0 {
		return ' '
	}
	return rune(0x2800 + int(bits))
}

// Present copies the canvas to the screen with the given style.
func (c *TermCanvas) Present(s tcell.Screen, style tcell.Style) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			s.SetContent(col, row, c.Rune(col, row), nil, style)
		}
	}
	s.Show()
}
