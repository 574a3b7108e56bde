package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

type CircleProps struct {
	Radius    float64
	Transform TransformProps
}

// Circle is centered on its transform position.
type Circle struct {
	radius    float64
	transform *Transform
}

func NewCircle(props CircleProps) *Circle {
	return &Circle{
		radius:    props.Radius,
		transform: NewTransform(props.Transform),
	}
}

func (c *Circle) Type() ShapeType {
	return ShapeCircle
}

func (c *Circle) Transform() *Transform {
	return c.transform
}

// BaseRadius returns the radius the circle was built with.
func (c *Circle) BaseRadius() float64 {
	return c.radius
}

// Radius returns the effective radius under the current scale.
func (c *Circle) Radius() float64 {
	return c.radius * c.transform.Scale()
}

func (c *Circle) Extents() (float64, float64) {
	d := 2 * c.Radius()
	return d, d
}

func (c *Circle) BB() cp.BB {
	return cp.NewBBForCircle(c.transform.Position(), c.Radius())
}

func (c *Circle) Render(r Renderer) {
	p := c.transform.Position()
	r.BeginPath()
	r.Arc(p.X, p.Y, c.Radius(), 0, 2*math.Pi)
	r.SetLineWidth(OutlineWidth)
	r.SetStrokeStyle(OutlineStyle)
	r.Stroke()
}
