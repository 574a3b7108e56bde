package entity

import (
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/ecs/render"
	"github.com/milk9111/arcade/prefabs"
)

// newSprite builds a sprite with its own Transform from props. The image is a
// placeholder keyed by name and is only created when the spec has a color.
func newSprite(name string, spec prefabs.SpriteSpec, props component.TransformProps) *component.Sprite {
	s := &component.Sprite{
		Transform: component.NewTransform(props),
		OriginX:   spec.OriginX,
		OriginY:   spec.OriginY,
		Layer:     spec.Layer,
	}
	if spec.Color != nil && spec.Color.Color != nil {
		s.Image = render.Placeholder(name, spec.Width, spec.Height, spec.Color.Color)
	}
	return s
}
