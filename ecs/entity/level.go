package entity

import (
	"fmt"

	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/prefabs"
)

// NewPlayfield creates the singleton entity holding the level bounds.
func NewPlayfield(w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, fmt.Errorf("playfield: nil world or spec")
	}
	e := ecs.CreateEntity(w)
	bounds := &component.LevelBounds{Width: spec.Width, Height: spec.Height}
	if err := ecs.Add(w, e, component.LevelBoundsComponent.Kind(), bounds); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("playfield: %w", err)
	}
	return e, nil
}

// ResizePlayfield updates the level bounds in place, creating them if needed.
func ResizePlayfield(w *ecs.World, spec *prefabs.GameSpec) error {
	e, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		_, err := NewPlayfield(w, spec)
		return err
	}
	bounds, _ := ecs.Get(w, e, component.LevelBoundsComponent.Kind())
	bounds.Width = spec.Width
	bounds.Height = spec.Height
	return nil
}
