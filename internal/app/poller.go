package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenSource reads input.Source state from Ebitengine.
type ebitenSource struct {
	ids []ebiten.TouchID
}

func (s *ebitenSource) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (s *ebitenSource) AppendTouchIDs(ids []int) []int {
	s.ids = ebiten.AppendTouchIDs(s.ids[:0])
	for _, id := range s.ids {
		ids = append(ids, int(id))
	}
	return ids
}

func (s *ebitenSource) TouchPosition(id int) (int, int) {
	return ebiten.TouchPosition(ebiten.TouchID(id))
}

func (s *ebitenSource) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

func (s *ebitenSource) IsMouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
