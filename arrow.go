package main

import (
	"errors"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
)

// Arrow holds the decoration settings for one endpoint of a line shape.
// Numeric fields only change through the clamping setters.
type Arrow struct {
	visible      bool
	size         float64
	angleOffset  float64
	lengthOffset float64
}

func NewArrow() Arrow {
	return Arrow{
		size:         defaultArrowSize,
		angleOffset:  defaultAngleOffset,
		lengthOffset: defaultLengthOffset,
	}
}

func (a Arrow) Visible() bool         { return a.visible }
func (a Arrow) Size() float64         { return a.size }
func (a Arrow) AngleOffset() float64  { return a.angleOffset }
func (a Arrow) LengthOffset() float64 { return a.lengthOffset }

func (a *Arrow) SetVisible(v bool) {
	a.visible = v
}

func (a *Arrow) SetSize(v float64) {
	if math.IsNaN(v) {
		return
	}
	a.size = clamp(v, minArrowSize, maxArrowSize)
}

func (a *Arrow) SetAngleOffset(v float64) {
	if math.IsNaN(v) {
		return
	}
	a.angleOffset = clamp(v, minAngleOffset, maxAngleOffset)
}

func (a *Arrow) SetLengthOffset(v float64) {
	if math.IsNaN(v) {
		return
	}
	a.lengthOffset = clamp(v, minLengthOffset, maxLengthOffset)
}

// SetSizeText parses untrusted text and applies it. On a parse failure the
// size is left as it was and false is returned.
func (a *Arrow) SetSizeText(text string) bool {
	v, ok := parseNumber(text)
	if ok {
		a.SetSize(v)
	}
	return ok
}

func (a *Arrow) SetAngleOffsetText(text string) bool {
	v, ok := parseNumber(text)
	if ok {
		a.SetAngleOffset(v)
	}
	return ok
}

func (a *Arrow) SetLengthOffsetText(text string) bool {
	v, ok := parseNumber(text)
	if ok {
		a.SetLengthOffset(v)
	}
	return ok
}

// ArrowHead is the outline of a drawn arrowhead: two barbs, the tip and the
// endpoint it is anchored on, plus the device-space area it covers.
type ArrowHead struct {
	Points [4]point
	Bounds image.Rectangle
}

// Head computes the arrowhead anchored at `at`, pointing away from `from`.
// It reports false when the two points are too close to define a direction.
func (a Arrow) Head(at, from point, lineWidth float64) (ArrowHead, bool) {
	dx := at.X - from.X
	dy := at.Y - from.Y
	length := math.Hypot(dx, dy)
	if length < minArrowDirection {
		return ArrowHead{}, false
	}
	dx /= length
	dy /= length

	theta := math.Atan2(dy, dx)
	barb := func(degrees float64) point {
		r := theta + degrees*math.Pi/180
		return point{X: at.X + a.size*math.Cos(r), Y: at.Y + a.size*math.Sin(r)}
	}
	reach := a.size + a.lengthOffset

	head := ArrowHead{
		Points: [4]point{
			barb(90 + a.angleOffset),
			{X: at.X + reach*dx, Y: at.Y + reach*dy},
			barb(-90 - a.angleOffset),
			at,
		},
	}
	head.Bounds = polygonBounds(head.Points[:], lineWidth)
	return head, true
}

// Draw fills and strokes the arrowhead in the given colour and returns the
// area it touched. A nil context computes the geometry without painting.
func (a Arrow) Draw(dc *gg.Context, outline color.Color, lineWidth float64, at, from point) (ArrowHead, bool) {
	head, ok := a.Head(at, from, lineWidth)
	if !ok || dc == nil {
		return head, ok
	}

	dc.SetColor(outline)
	dc.SetLineWidth(lineWidth)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.MoveTo(head.Points[0].X, head.Points[0].Y)
	for _, p := range head.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	dc.FillPreserve()
	dc.Stroke()
	return head, true
}

// polygonBounds grows the bounding box of pts by half the stroke width plus
// one pixel for antialiasing, rounded outward to whole pixels.
func polygonBounds(pts []point, lineWidth float64) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	pad := lineWidth/2 + 1
	return image.Rect(
		int(math.Floor(minX-pad)),
		int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad)),
		int(math.Ceil(maxY+pad)),
	)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// parseNumber accepts the same loose input a text field would: surrounding
// whitespace is ignored, NaN is rejected, infinities and values beyond the
// float64 range are left to clamping.
func parseNumber(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func formatNumber(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
