package system

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
)

// BulletCleanupSystem destroys bullets whose shape no longer overlaps the
// level bounds.
type BulletCleanupSystem struct{}

func NewBulletCleanupSystem() *BulletCleanupSystem {
	return &BulletCleanupSystem{}
}

func (s *BulletCleanupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	be, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, ok := ecs.Get(w, be, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	field := bounds.BB()

	ecs.ForEach2(w, component.BulletComponent.Kind(), component.ShapeComponent.Kind(),
		func(e ecs.Entity, _ *component.Bullet, body *component.Body) {
			if body.Shape == nil || body.Shape.BB().Intersects(field) {
				return
			}
			if ecs.DestroyEntity(w, e) {
				w.Events().Push(ecs.Event{Type: ecs.EventDespawned, Entity: e, Data: "out_of_bounds"})
			}
		})
}
