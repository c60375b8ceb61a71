package main

import (
	"image/color"
	"math"
)

type point struct {
	X, Y float64
}

// Shape is anything the canvas can hold and draw.
type Shape interface {
	Kind() string
	ControlPoints() []point
	GeneratedPoints() []point
	OutlineColor() color.Color
	LineWidth() float64
	AddPoint(p point)
	Clone() Shape
}

// Arrowed is implemented by shapes that can carry arrow decorations.
// Renderer and sync depend on this, never on a concrete shape type.
type Arrowed interface {
	Arrows() *ArrowPair
	ControlPoints() []point
	GeneratedPoints() []point
	OutlineColor() color.Color
	LineWidth() float64
}

// LineShape is an open multi-point line, optionally smoothed into a curve.
type LineShape struct {
	Points  []point
	Curve   bool
	Outline color.Color
	Width   float64
	arrows  ArrowPair
}

func NewLineShape(outline color.Color, width float64) *LineShape {
	return &LineShape{
		Outline: outline,
		Width:   width,
		arrows:  NewArrowPair(),
	}
}

func (l *LineShape) Kind() string              { return "line" }
func (l *LineShape) Arrows() *ArrowPair        { return &l.arrows }
func (l *LineShape) OutlineColor() color.Color { return l.Outline }
func (l *LineShape) LineWidth() float64        { return l.Width }

func (l *LineShape) ControlPoints() []point {
	return append([]point(nil), l.Points...)
}

func (l *LineShape) AddPoint(p point) {
	l.Points = append(l.Points, p)
}

// GeneratedPoints is the polyline the line is drawn with. Curves are sampled
// as a Catmull-Rom spline through the control points.
func (l *LineShape) GeneratedPoints() []point {
	if !l.Curve || len(l.Points) < 3 {
		return l.ControlPoints()
	}
	return catmullRom(l.Points, curveSamples)
}

func (l *LineShape) Clone() Shape {
	c := *l
	c.Points = l.ControlPoints()
	return &c
}

// RectShape is an axis-aligned rectangle spanned by two corners. It has no
// endpoints and so no arrows.
type RectShape struct {
	Corners []point
	Outline color.Color
	Width   float64
}

func NewRectShape(outline color.Color, width float64) *RectShape {
	return &RectShape{Outline: outline, Width: width}
}

func (r *RectShape) Kind() string              { return "rect" }
func (r *RectShape) OutlineColor() color.Color { return r.Outline }
func (r *RectShape) LineWidth() float64        { return r.Width }

func (r *RectShape) ControlPoints() []point {
	return append([]point(nil), r.Corners...)
}

// AddPoint places the first corner, then keeps moving the second one.
func (r *RectShape) AddPoint(p point) {
	if len(r.Corners) < 2 {
		r.Corners = append(r.Corners, p)
		return
	}
	r.Corners[1] = p
}

func (r *RectShape) GeneratedPoints() []point {
	if len(r.Corners) < 2 {
		return r.ControlPoints()
	}
	a, b := r.Corners[0], r.Corners[1]
	return []point{a, {X: b.X, Y: a.Y}, b, {X: a.X, Y: b.Y}, a}
}

func (r *RectShape) Clone() Shape {
	c := *r
	c.Corners = r.ControlPoints()
	return &c
}

// catmullRom samples a uniform Catmull-Rom spline through pts, with the end
// points duplicated so the curve passes through them.
func catmullRom(pts []point, samples int) []point {
	out := make([]point, 0, (len(pts)-1)*samples+1)
	at := func(i int) point {
		if i < 0 {
			return pts[0]
		}
		if i >= len(pts) {
			return pts[len(pts)-1]
		}
		return pts[i]
	}
	for i := 0; i < len(pts)-1; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		for s := 0; s < samples; s++ {
			t := float64(s) / float64(samples)
			out = append(out, point{
				X: catmullRomAxis(p0.X, p1.X, p2.X, p3.X, t),
				Y: catmullRomAxis(p0.Y, p1.Y, p2.Y, p3.Y, t),
			})
		}
	}
	return append(out, pts[len(pts)-1])
}

func catmullRomAxis(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

// scaledShape presents an arrowed shape in device pixels.
type scaledShape struct {
	Arrowed
	sx, sy float64
	ox, oy float64
}

func (s scaledShape) ControlPoints() []point {
	return s.scale(s.Arrowed.ControlPoints())
}

func (s scaledShape) GeneratedPoints() []point {
	return s.scale(s.Arrowed.GeneratedPoints())
}

func (s scaledShape) scale(pts []point) []point {
	out := make([]point, len(pts))
	for i, p := range pts {
		out[i] = point{X: (p.X-s.ox)*s.sx + s.sx/2, Y: (p.Y-s.oy)*s.sy + s.sy/2}
	}
	return out
}

func distanceToSegment(p, a, b point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	t = clamp(t, 0, 1)
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
