package main

import (
	"image"

	"github.com/fogleman/gg"
)

// renderDecorations draws the visible arrowheads of shape and folds their
// areas into dirty, the invalidation region collected so far this frame.
// An empty dirty region is seeded by the first arrowhead. With a nil context
// only the geometry and region are computed.
func renderDecorations(dc *gg.Context, shape Arrowed, dirty image.Rectangle) ([]ArrowHead, image.Rectangle) {
	if shape == nil || len(shape.ControlPoints()) < 2 {
		return nil, dirty
	}
	gen := shape.GeneratedPoints()
	if len(gen) < 2 {
		return nil, dirty
	}

	arrows := shape.Arrows()
	outline := shape.OutlineColor()
	width := shape.LineWidth()
	var heads []ArrowHead

	if head := arrows.Head(); head.Visible() {
		if h, ok := head.Draw(dc, outline, width, gen[0], gen[1]); ok {
			heads = append(heads, h)
			dirty = dirty.Union(h.Bounds)
		}
	}

	if tail := arrows.Tail(); tail.Visible() {
		last := len(gen) - 1
		if h, ok := tail.Draw(dc, outline, width, gen[last], gen[last-1]); ok {
			heads = append(heads, h)
			dirty = dirty.Union(h.Bounds)
		}
	}

	return heads, dirty
}

// decorationRedraw answers redraw requests for the selected shape. It keeps
// the last painted area so that a repaint also invalidates where the old
// arrowheads were.
type decorationRedraw struct {
	canvas   *Canvas
	last     image.Rectangle
	dirty    image.Rectangle
	requests int
}

func newDecorationRedraw(canvas *Canvas) *decorationRedraw {
	return &decorationRedraw{canvas: canvas}
}

func (r *decorationRedraw) RequestRedraw() image.Rectangle {
	r.requests++
	var current image.Rectangle
	if shape, ok := r.canvas.Selected().(Arrowed); ok {
		_, current = renderDecorations(nil, deviceShape(shape), image.Rectangle{})
	}
	r.dirty = r.last.Union(current)
	r.last = current
	return r.dirty
}

// Dirty is the region invalidated by the most recent request.
func (r *decorationRedraw) Dirty() image.Rectangle { return r.dirty }

// deviceShape maps canvas cells onto the pixel grid used for export.
func deviceShape(shape Arrowed) scaledShape {
	return scaledShape{Arrowed: shape, sx: cellWidth, sy: cellHeight}
}
