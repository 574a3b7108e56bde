package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
	"github.com/milk9111/arcade/ecs/render"
)

// RenderSystem draws sprites at their own transforms and, when ShowShapes is
// set, every shape's outline through the canvas renderer.
type RenderSystem struct {
	ShowShapes bool
	canvas     *render.Canvas
}

func NewRenderSystem(showShapes bool) *RenderSystem {
	return &RenderSystem{ShowShapes: showShapes, canvas: render.NewCanvas(nil)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := w.Query(component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := spriteLayer(w, entities[i]), spriteLayer(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil || s.Transform == nil {
			continue
		}

		pos := s.Transform.Position()
		scale := s.Transform.Scale()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(s.Image, op)
	}

	if !r.ShowShapes {
		return
	}
	r.canvas.SetTarget(screen)
	ecs.ForEach(w, component.ShapeComponent.Kind(), func(e ecs.Entity, body *component.Body) {
		if body.Shape != nil {
			body.Shape.Render(r.canvas)
		}
	})
}

func spriteLayer(w *ecs.World, e ecs.Entity) int {
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		return s.Layer
	}
	return 0
}
