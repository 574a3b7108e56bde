package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is the visual half of a game object. It owns a Transform distinct
// from the shape's; the owning object moves both each tick.
type Sprite struct {
	Image     *ebiten.Image
	Transform *Transform
	OriginX   float64
	OriginY   float64
	Animation string
	// Layer orders sprites; lower layers draw first.
	Layer int
}

// SetCurrentAnimationID selects the animation the renderer should play.
func (s *Sprite) SetCurrentAnimationID(id string) {
	if s == nil {
		return
	}
	s.Animation = id
}

var SpriteComponent = NewComponent[Sprite]()
