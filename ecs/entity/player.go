package entity

import (
	"fmt"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

// NewAirplane spawns the player airplane. The circle shape and the sprite
// are built from the same transform props (scaled by the spec's multiplier)
// but each owns its own Transform.
func NewAirplane(w *ecs.World, spec *prefabs.AirplaneSpec, base component.TransformProps) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, fmt.Errorf("airplane: nil world or spec")
	}

	props := component.TransformProps{
		Position: base.Position,
		Scale:    base.Scale * spec.ScaleMultiplier,
	}

	e := ecs.CreateEntity(w)
	err := addAll(
		func() error { return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}) },
		func() error {
			return ecs.Add(w, e, component.AirplaneComponent.Kind(), &component.Airplane{
				ShotCooldownFrames: spec.ShotCooldownFrames,
				ShotScript:         spec.ShotScript,
			})
		},
		func() error { return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}) },
		func() error {
			return ecs.Add(w, e, component.AttributesComponent.Kind(), component.NewAttributes(spec.Attributes.Props()))
		},
		func() error {
			shape := component.NewCircle(component.CircleProps{Radius: spec.Radius, Transform: props})
			return ecs.Add(w, e, component.ShapeComponent.Kind(), &component.Body{Shape: shape})
		},
		func() error {
			return ecs.Add(w, e, component.SpriteComponent.Kind(), newSprite(spec.Name, spec.Sprite, props))
		},
		func() error { return ecs.Add(w, e, component.ContainedComponent.Kind(), &component.Contained{}) },
	)
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("airplane: %w", err)
	}
	return e, nil
}

func addAll(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
