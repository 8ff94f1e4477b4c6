// internal/state/landing_state.go
package state

import (
	"freedom-layer/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
)

// LandingState shows the landing page. Entering mounts the animations,
// exiting tears them down.
type LandingState struct {
	sm   *StateMachine
	page interfaces.Page
}

func NewLandingState(sm *StateMachine, page interfaces.Page) *LandingState {
	return &LandingState{sm: sm, page: page}
}

func (s *LandingState) Enter() {
	s.page.Mount()
}

func (s *LandingState) Update(deltaTime float64) {
	s.page.Update(deltaTime)
}

func (s *LandingState) Draw(screen *ebiten.Image) {
	s.page.Draw(screen)
}

func (s *LandingState) Exit() {
	s.page.Teardown()
}
