// internal/interfaces/page.go
package interfaces

import "github.com/hajimehoshi/ebiten/v2"

// Page is a screen whose animations are started by Mount and stopped by
// Teardown.
type Page interface {
	Mount()
	Teardown()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
}
