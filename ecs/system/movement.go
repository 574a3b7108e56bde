package system

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/movement"
)

// MovementSystem is the per-tick update of every game object with
// Attributes and a Shape: contained objects are clamped into the level
// bounds, then the shape transform and the sprite transform are both
// advanced by the current velocity.
type MovementSystem struct {
	// Resolver, when set, runs after all objects moved.
	Resolver movement.Resolver
}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// gameObject exposes an entity's components as a movement.Object.
type gameObject struct {
	attrs *component.Attributes
	shape component.Shape
}

func (o gameObject) Attributes() *component.Attributes { return o.attrs }
func (o gameObject) Shape() component.Shape            { return o.shape }

func (s *MovementSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	var bounds *component.LevelBounds
	if be, ok := w.First(component.LevelBoundsComponent.Kind()); ok {
		bounds, _ = ecs.Get(w, be, component.LevelBoundsComponent.Kind())
	}

	var moved []movement.Object
	ecs.ForEach2(w, component.AttributesComponent.Kind(), component.ShapeComponent.Kind(),
		func(e ecs.Entity, attrs *component.Attributes, body *component.Body) {
			if body.Shape == nil {
				return
			}
			obj := gameObject{attrs: attrs, shape: body.Shape}

			sprite, hasSprite := ecs.Get(w, e, component.SpriteComponent.Kind())

			if bounds != nil && ecs.Has(w, e, component.ContainedComponent.Kind()) {
				if movement.Boundary(obj, *bounds) {
					// Boundary only moves the shape; carry the clamp over to
					// the sprite so the two stay aligned.
					if hasSprite && sprite.Transform != nil {
						sprite.Transform.SetPosition(body.Shape.Transform().Position())
					}
					w.Events().Push(ecs.Event{Type: ecs.EventBoundaryClamped, Entity: e})
				}
			}

			transforms := []*component.Transform{body.Shape.Transform()}
			if hasSprite {
				transforms = append(transforms, sprite.Transform)
			}
			movement.Advance(attrs, transforms...)
			moved = append(moved, obj)
		})

	if s.Resolver != nil && len(moved) > 0 {
		s.Resolver.Resolve(moved)
	}
}
