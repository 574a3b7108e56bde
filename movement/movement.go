// Package movement holds the stateless rules that move game objects: keeping
// a shape inside the level bounds and advancing transforms by velocity.
package movement

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/arcade/ecs/component"
)

// Object is anything that exposes physical attributes and a shape.
type Object interface {
	Attributes() *component.Attributes
	Shape() component.Shape
}

// Resolver is the hook for a collision-response pass run after objects have
// moved. Implementations may read mass, friction and restitution from the
// objects' Attributes and must change velocity only through SetVelocity.
type Resolver interface {
	Resolve(objects []Object)
}

// Boundary clamps the object's shape position so its full extent stays within
// bounds. A circle keeps its effective radius away from every edge; a rect
// is top-left anchored and keeps its effective width and height inside the
// right and bottom edges. Velocity is never touched.
//
// When bounds are smaller than the shape on an axis, the shape is centered on
// that axis. Boundary reports whether the position changed.
func Boundary(obj Object, bounds component.LevelBounds) bool {
	if obj == nil {
		return false
	}
	shape := obj.Shape()
	if shape == nil || shape.Transform() == nil {
		return false
	}

	var minX, maxX, minY, maxY float64
	switch s := shape.(type) {
	case *component.Circle:
		r := s.Radius()
		minX, maxX = bounds.Position.X+r, bounds.Position.X+bounds.Width-r
		minY, maxY = bounds.Position.Y+r, bounds.Position.Y+bounds.Height-r
	default:
		w, h := shape.Extents()
		minX, maxX = bounds.Position.X, bounds.Position.X+bounds.Width-w
		minY, maxY = bounds.Position.Y, bounds.Position.Y+bounds.Height-h
	}

	t := shape.Transform()
	pos := t.Position()
	clamped := cp.Vector{
		X: clampRange(pos.X, minX, maxX),
		Y: clampRange(pos.Y, minY, maxY),
	}
	if clamped == pos {
		return false
	}
	t.SetPosition(clamped)
	return true
}

// Advance moves every transform by the current velocity. Callers pass both
// the shape transform and any sprite transform so they stay in step.
func Advance(attrs *component.Attributes, transforms ...*component.Transform) {
	if attrs == nil {
		return
	}
	v := attrs.Velocity()
	for _, t := range transforms {
		if t != nil {
			t.Translate(v)
		}
	}
}

func clampRange(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
