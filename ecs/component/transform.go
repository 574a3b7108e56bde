package component

import "github.com/jakecoffman/cp"

// MinScale is the floor applied to every scale write. A zero or negative
// scale would collapse shape geometry.
const MinScale = 1e-6

// TransformProps describes the initial state of a Transform.
type TransformProps struct {
	Position cp.Vector
	Scale    float64
}

// Transform stores a position and a uniform scale. Each Shape and Sprite owns
// its own Transform; they are never shared.
type Transform struct {
	position cp.Vector
	scale    float64
}

func NewTransform(props TransformProps) *Transform {
	t := &Transform{position: props.Position}
	t.SetScale(props.Scale)
	return t
}

func (t *Transform) Position() cp.Vector {
	return t.position
}

// SetPosition replaces the position unconditionally.
func (t *Transform) SetPosition(p cp.Vector) {
	t.position = p
}

// Translate moves the position by d.
func (t *Transform) Translate(d cp.Vector) {
	t.position = t.position.Add(d)
}

func (t *Transform) Scale() float64 {
	return t.scale
}

// SetScale stores s, flooring non-positive (and NaN) values at MinScale.
func (t *Transform) SetScale(s float64) {
	if !(s >= MinScale) {
		s = MinScale
	}
	t.scale = s
}
