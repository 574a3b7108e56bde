package render

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

const (
	// arcSegmentLength is the target on-screen length of one arc segment.
	arcSegmentLength = 4.0
	minArcSegments   = 8
	maxArcSegments   = 128
)

// Canvas adapts an ebiten image to component.Renderer. Arcs are collected
// into the current path and drawn as line strips on Stroke.
type Canvas struct {
	dst       *ebiten.Image
	lineWidth float64
	color     color.Color
	paths     [][]cp.Vector
	AntiAlias bool
}

func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{
		dst:       dst,
		lineWidth: 1,
		color:     color.White,
		AntiAlias: true,
	}
}

// SetTarget points the canvas at a new destination, e.g. the frame's screen.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) BeginPath() {
	c.paths = c.paths[:0]
}

func (c *Canvas) Arc(cx, cy, radius, startAngle, endAngle float64) {
	c.paths = append(c.paths, arcPoints(cx, cy, radius, startAngle, endAngle))
}

func (c *Canvas) StrokeRect(x, y, w, h float64) {
	if c.dst == nil {
		return
	}
	vector.StrokeRect(c.dst,
		float32(x), float32(y),
		float32(w), float32(h),
		float32(c.lineWidth), c.color, c.AntiAlias)
}

func (c *Canvas) Stroke() {
	if c.dst == nil {
		return
	}
	for _, pts := range c.paths {
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(c.lineWidth), c.color, c.AntiAlias)
		}
	}
}

func (c *Canvas) SetLineWidth(w float64) {
	if w <= 0 {
		return
	}
	c.lineWidth = w
}

func (c *Canvas) SetStrokeStyle(style string) {
	if clr, ok := ParseStyle(style); ok {
		c.color = clr
	}
}

// ParseStyle resolves an SVG color name ("orange") or a #rrggbb / #rrggbbaa
// hex string.
func ParseStyle(style string) (color.Color, bool) {
	s := strings.ToLower(strings.TrimSpace(style))
	if clr, ok := colornames.Map[s]; ok {
		return clr, true
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return nil, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, false
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

// arcPoints approximates an arc with a polyline whose end points lie exactly
// on startAngle and endAngle.
func arcPoints(cx, cy, radius, startAngle, endAngle float64) []cp.Vector {
	sweep := endAngle - startAngle
	if radius <= 0 || sweep == 0 {
		return nil
	}
	n := int(math.Ceil(math.Abs(sweep) * radius / arcSegmentLength))
	n = max(minArcSegments, min(n, maxArcSegments))
	pts := make([]cp.Vector, 0, n+1)
	for i := 0; i <= n; i++ {
		a := startAngle + sweep*float64(i)/float64(n)
		pts = append(pts, cp.Vector{X: cx + math.Cos(a)*radius, Y: cy + math.Sin(a)*radius})
	}
	return pts
}
