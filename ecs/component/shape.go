package component

import "github.com/jakecoffman/cp"

// ShapeType tags the concrete Shape variant.
type ShapeType string

const (
	ShapeCircle ShapeType = "circle"
	ShapeRect   ShapeType = "rect"
)

// Outline style applied by every shape before its final draw call.
const (
	OutlineWidth = 0.5
	OutlineStyle = "orange"
)

// Renderer is the drawing capability shapes issue commands to. It mirrors a
// 2D canvas context: a path is begun, built and stroked, and line width and
// stroke style are set before the terminal draw call.
type Renderer interface {
	BeginPath()
	Arc(cx, cy, radius, startAngle, endAngle float64)
	StrokeRect(x, y, w, h float64)
	Stroke()
	SetLineWidth(w float64)
	SetStrokeStyle(style string)
}

// Shape is the geometry used for rendering and containment. Stored base
// dimensions never change; every effective dimension is the base multiplied
// by the current Transform scale, computed on each call.
type Shape interface {
	Type() ShapeType
	Transform() *Transform
	// Extents returns the effective width and height of the shape.
	Extents() (width, height float64)
	// BB returns the world-space bounding box of the shape.
	BB() cp.BB
	Render(r Renderer)
}

// Body is the shape component stored on an entity.
type Body struct {
	Shape Shape
}

var ShapeComponent = NewComponent[Body]()
