package system

import (
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
)

// TTLSystem counts down TTL components and destroys their entities when the
// count reaches zero.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Frames--
		if ttl.Frames > 0 {
			return
		}
		if ecs.DestroyEntity(w, e) {
			w.Events().Push(ecs.Event{Type: ecs.EventDespawned, Entity: e, Data: "ttl"})
		}
	})
}
