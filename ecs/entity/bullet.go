package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

// NewBullet spawns a projectile at pos fired by owner. Bullets are not
// contained by the level bounds; BulletCleanupSystem removes them once they
// leave it.
func NewBullet(w *ecs.World, spec *prefabs.BulletSpec, pos cp.Vector, owner ecs.Entity) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, fmt.Errorf("bullet: nil world or spec")
	}

	props := component.TransformProps{Position: pos, Scale: spec.Scale}
	shape, err := spec.Shape.Build(props)
	if err != nil {
		return 0, fmt.Errorf("bullet: %w", err)
	}

	e := ecs.CreateEntity(w)
	err = addAll(
		func() error {
			return ecs.Add(w, e, component.BulletComponent.Kind(), &component.Bullet{Owner: uint64(owner)})
		},
		func() error {
			return ecs.Add(w, e, component.AttributesComponent.Kind(), component.NewAttributes(spec.Attributes.Props()))
		},
		func() error { return ecs.Add(w, e, component.ShapeComponent.Kind(), &component.Body{Shape: shape}) },
		func() error {
			return ecs.Add(w, e, component.SpriteComponent.Kind(), newSprite(spec.Name, spec.Sprite, props))
		},
		func() error {
			if spec.TTLFrames <= 0 {
				return nil
			}
			return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: spec.TTLFrames})
		},
	)
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("bullet: %w", err)
	}
	return e, nil
}
