package component

import "github.com/jakecoffman/cp"

type RectProps struct {
	Width     float64
	Height    float64
	Transform TransformProps
}

// Rect is anchored at its top-left corner on the transform position.
type Rect struct {
	width     float64
	height    float64
	transform *Transform
}

func NewRect(props RectProps) *Rect {
	return &Rect{
		width:     props.Width,
		height:    props.Height,
		transform: NewTransform(props.Transform),
	}
}

func (r *Rect) Type() ShapeType {
	return ShapeRect
}

func (r *Rect) Transform() *Transform {
	return r.transform
}

func (r *Rect) Width() float64 {
	return r.width * r.transform.Scale()
}

func (r *Rect) Height() float64 {
	return r.height * r.transform.Scale()
}

func (r *Rect) Extents() (float64, float64) {
	return r.Width(), r.Height()
}

func (r *Rect) BB() cp.BB {
	p := r.transform.Position()
	return cp.NewBB(p.X, p.Y, p.X+r.Width(), p.Y+r.Height())
}

func (r *Rect) Render(rd Renderer) {
	p := r.transform.Position()
	rd.SetLineWidth(OutlineWidth)
	rd.SetStrokeStyle(OutlineStyle)
	rd.StrokeRect(p.X, p.Y, r.Width(), r.Height())
}
