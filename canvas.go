package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

type Canvas struct {
	shapes   []Shape
	selected int
}

func NewCanvas() *Canvas {
	return &Canvas{
		shapes:   make([]Shape, 0),
		selected: -1,
	}
}

func (c *Canvas) Len() int { return len(c.shapes) }

func (c *Canvas) Shape(id int) Shape {
	if id < 0 || id >= len(c.shapes) {
		return nil
	}
	return c.shapes[id]
}

// AddShape appends a shape, selects it and returns its index.
func (c *Canvas) AddShape(s Shape) int {
	c.shapes = append(c.shapes, s)
	c.selected = len(c.shapes) - 1
	return c.selected
}

// InsertShape puts a shape back at id, shifting later shapes up.
func (c *Canvas) InsertShape(id int, s Shape) {
	if id < 0 || id > len(c.shapes) {
		id = len(c.shapes)
	}
	c.shapes = append(c.shapes, nil)
	copy(c.shapes[id+1:], c.shapes[id:])
	c.shapes[id] = s
	c.selected = id
}

func (c *Canvas) ReplaceShape(id int, s Shape) {
	if id < 0 || id >= len(c.shapes) {
		return
	}
	c.shapes[id] = s
}

func (c *Canvas) DeleteShape(id int) Shape {
	if id < 0 || id >= len(c.shapes) {
		return nil
	}
	removed := c.shapes[id]
	c.shapes = append(c.shapes[:id], c.shapes[id+1:]...)
	switch {
	case c.selected == id:
		c.selected = -1
	case c.selected > id:
		c.selected--
	}
	return removed
}

func (c *Canvas) Clear() {
	c.shapes = c.shapes[:0]
	c.selected = -1
}

func (c *Canvas) Select(id int) {
	if id < 0 || id >= len(c.shapes) {
		id = -1
	}
	c.selected = id
}

func (c *Canvas) SelectedIndex() int { return c.selected }

func (c *Canvas) Selected() Shape { return c.Shape(c.selected) }

// SelectedArrows implements SelectionProvider. Shapes without arrow support
// yield nil, the same as no selection.
func (c *Canvas) SelectedArrows() *ArrowPair {
	if a, ok := c.Selected().(Arrowed); ok {
		return a.Arrows()
	}
	return nil
}

// ShapeAt returns the topmost shape passing within half a cell of (x, y),
// or -1.
func (c *Canvas) ShapeAt(x, y int) int {
	p := point{X: float64(x), Y: float64(y)}
	for i := len(c.shapes) - 1; i >= 0; i-- {
		gen := c.shapes[i].GeneratedPoints()
		if len(gen) == 1 && distanceToSegment(p, gen[0], gen[0]) <= 0.5 {
			return i
		}
		for j := 0; j+1 < len(gen); j++ {
			if distanceToSegment(p, gen[j], gen[j+1]) <= 0.5 {
				return i
			}
		}
	}
	return -1
}

// Render draws the canvas into width x height cells, offset by the pan.
func (c *Canvas) Render(width, height, panX, panY, cursorX, cursorY int, showCursor bool) []string {
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	set := func(x, y int, r rune) {
		x -= panX
		y -= panY
		if y >= 0 && y < height && x >= 0 && x < width {
			grid[y][x] = r
		}
	}

	// One cell of slack so rounding at the edges matches the unclipped walk.
	viewMinX, viewMinY := float64(panX-1), float64(panY-1)
	viewMaxX, viewMaxY := float64(panX+width), float64(panY+height)

	for i, s := range c.shapes {
		stroke := '.'
		if i == c.selected {
			stroke = '#'
		}
		gen := s.GeneratedPoints()
		for j := 0; j+1 < len(gen); j++ {
			a, b, visible := clipSegment(gen[j], gen[j+1], viewMinX, viewMinY, viewMaxX, viewMaxY)
			if visible {
				drawCells(a, b, func(x, y int) { set(x, y, stroke) })
			}
		}
		for _, p := range s.ControlPoints() {
			set(cellOf(p.X), cellOf(p.Y), 'o')
		}
		if a, ok := s.(Arrowed); ok && len(gen) > 1 {
			last := len(gen) - 1
			if a.Arrows().Head().Visible() {
				set(cellOf(gen[0].X), cellOf(gen[0].Y), arrowGlyph(gen[0], gen[1]))
			}
			if a.Arrows().Tail().Visible() {
				set(cellOf(gen[last].X), cellOf(gen[last].Y), arrowGlyph(gen[last], gen[last-1]))
			}
		}
	}

	if showCursor {
		set(cursorX+panX, cursorY+panY, '+')
	}

	lines := make([]string, height)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return lines
}

func cellOf(v float64) int {
	return int(math.Round(v))
}

// drawCells walks the cells between two points with Bresenham's algorithm.
func drawCells(a, b point, plot func(x, y int)) {
	x0, y0 := cellOf(a.X), cellOf(a.Y)
	x1, y1 := cellOf(b.X), cellOf(b.Y)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clipSegment trims a-b to the box [minX,maxX] x [minY,maxY] (Liang-Barsky)
// and reports whether any of it is left. Endpoints inside the box come back
// unchanged.
func clipSegment(a, b point, minX, minY, maxX, maxY float64) (point, point, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X - minX},
		{dx, maxX - a.X},
		{-dy, a.Y - minY},
		{dy, maxY - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return a, b, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	ca, cb := a, b
	if t0 > 0 {
		ca = point{X: a.X + t0*dx, Y: a.Y + t0*dy}
	}
	if t1 < 1 {
		cb = point{X: a.X + t1*dx, Y: a.Y + t1*dy}
	}
	return ca, cb, true
}

// arrowGlyph picks the terminal arrow pointing from `from` toward `at`.
// Cells are about twice as tall as wide, so vertical runs count double.
func arrowGlyph(at, from point) rune {
	dx := at.X - from.X
	dy := at.Y - from.Y
	if math.Abs(dx) >= 2*math.Abs(dy) {
		if dx < 0 {
			return '◀'
		}
		return '▶'
	}
	if dy < 0 {
		return '▲'
	}
	return '▼'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// bounds returns the cell extent of every generated point on the canvas.
func (c *Canvas) bounds() (minX, minY, maxX, maxY float64, ok bool) {
	for _, s := range c.shapes {
		for _, p := range s.GeneratedPoints() {
			if !ok {
				minX, minY, maxX, maxY = p.X, p.Y, p.X, p.Y
				ok = true
				continue
			}
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return minX, minY, maxX, maxY, ok
}

// ExportToPNG renders every shape with its arrowheads. The returned rectangle
// is the area covered by arrowheads.
func (c *Canvas) ExportToPNG(filename, caption string) (image.Rectangle, error) {
	minX, minY, maxX, maxY, ok := c.bounds()
	if !ok {
		return image.Rectangle{}, fmt.Errorf("nothing to export")
	}

	minX -= exportMargin
	minY -= exportMargin
	maxX += exportMargin
	maxY += exportMargin + 1 // caption row

	pixelWidth := math.Ceil((maxX - minX + 1) * cellWidth)
	pixelHeight := math.Ceil((maxY - minY + 1) * cellHeight)
	if pixelWidth > maxExportSide || pixelHeight > maxExportSide {
		return image.Rectangle{}, fmt.Errorf("drawing too large to export: %.0fx%.0f pixels (limit %d)",
			pixelWidth, pixelHeight, maxExportSide)
	}
	imageWidth := int(pixelWidth)
	imageHeight := int(pixelHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	var dirty image.Rectangle
	for _, s := range c.shapes {
		view := scaledShape{sx: cellWidth, sy: cellHeight, ox: minX, oy: minY}
		pts := view.scale(s.GeneratedPoints())
		if len(pts) > 1 {
			dc.SetColor(s.OutlineColor())
			dc.SetLineWidth(s.LineWidth())
			dc.MoveTo(pts[0].X, pts[0].Y)
			for _, p := range pts[1:] {
				dc.LineTo(p.X, p.Y)
			}
			dc.Stroke()
		}
		if a, ok := s.(Arrowed); ok {
			view.Arrowed = a
			_, dirty = renderDecorations(dc, view, dirty)
		}
	}

	if caption != "" {
		dc.SetColor(color.Black)
		dc.DrawString(caption, cellWidth, float64(imageHeight)-cellHeight/2)
	}

	if err := dc.SavePNG(filename); err != nil {
		return dirty, fmt.Errorf("save png: %w", err)
	}
	return dirty, nil
}
