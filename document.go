package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const documentVersion = 1

var errPointRange = errors.New("point out of range")

type documentFile struct {
	Version int           `yaml:"version"`
	Shapes  []shapeRecord `yaml:"shapes"`
}

type shapeRecord struct {
	Kind    string        `yaml:"kind"`
	Points  []pointRecord `yaml:"points"`
	Curve   bool          `yaml:"curve,omitempty"`
	Outline string        `yaml:"outline"`
	Width   float64       `yaml:"width"`
	Arrows  *arrowsRecord `yaml:"arrows,omitempty"`
}

type pointRecord struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type arrowsRecord struct {
	Head arrowRecord `yaml:"head"`
	Tail arrowRecord `yaml:"tail"`
}

type arrowRecord struct {
	Visible bool    `yaml:"visible"`
	Size    float64 `yaml:"size"`
	Angle   float64 `yaml:"angle"`
	Length  float64 `yaml:"length"`
}

func (c *Canvas) SaveToFile(filename string) error {
	doc := documentFile{Version: documentVersion}
	for _, s := range c.shapes {
		rec := shapeRecord{
			Kind:    s.Kind(),
			Outline: hexColor(s.OutlineColor()),
			Width:   s.LineWidth(),
		}
		for _, p := range s.ControlPoints() {
			rec.Points = append(rec.Points, pointRecord{X: p.X, Y: p.Y})
		}
		if l, ok := s.(*LineShape); ok {
			rec.Curve = l.Curve
			rec.Arrows = &arrowsRecord{
				Head: recordArrow(l.arrows.Head()),
				Tail: recordArrow(l.arrows.Tail()),
			}
		}
		doc.Shapes = append(doc.Shapes, rec)
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode drawing: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write drawing: %w", err)
	}
	return nil
}

// LoadFromFile replaces the canvas contents with the drawing in filename.
// Arrow values are clamped on the way in and the shared fields are taken
// from the head arrow.
func (c *Canvas) LoadFromFile(filename string, defaults *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read drawing: %w", err)
	}

	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode drawing: %w", err)
	}
	if doc.Version != documentVersion {
		return fmt.Errorf("unsupported drawing version %d", doc.Version)
	}

	shapes := make([]Shape, 0, len(doc.Shapes))
	for i, rec := range doc.Shapes {
		outline := defaults.OutlineColor
		if rec.Outline != "" {
			col, err := colorful.Hex(rec.Outline)
			if err != nil {
				return fmt.Errorf("shape %d: outline: %w", i, err)
			}
			outline = col
		}
		width := rec.Width
		if width <= 0 {
			width = defaults.LineWidth
		}

		var s Shape
		switch rec.Kind {
		case "line":
			l := NewLineShape(outline, width)
			l.Curve = rec.Curve
			if rec.Arrows != nil {
				l.arrows = restoreArrowPair(*rec.Arrows)
			}
			s = l
		case "rect":
			s = NewRectShape(outline, width)
		default:
			return fmt.Errorf("shape %d: unknown kind %q", i, rec.Kind)
		}
		for j, p := range rec.Points {
			if !validCoordinate(p.X) || !validCoordinate(p.Y) {
				return fmt.Errorf("shape %d: point %d (%v, %v): %w", i, j, p.X, p.Y, errPointRange)
			}
			s.AddPoint(point{X: p.X, Y: p.Y})
		}
		shapes = append(shapes, s)
	}

	c.Clear()
	c.shapes = append(c.shapes, shapes...)
	return nil
}

// validCoordinate rejects NaN, infinities and anything too far out to draw.
func validCoordinate(v float64) bool {
	return !math.IsNaN(v) && math.Abs(v) <= maxCoordinate
}

func recordArrow(a Arrow) arrowRecord {
	return arrowRecord{
		Visible: a.Visible(),
		Size:    a.Size(),
		Angle:   a.AngleOffset(),
		Length:  a.LengthOffset(),
	}
}

func restoreArrowPair(rec arrowsRecord) ArrowPair {
	pair := NewArrowPair()
	pair.SetHeadVisible(rec.Head.Visible)
	pair.SetTailVisible(rec.Tail.Visible)
	pair.SetSizeBoth(rec.Head.Size)
	pair.SetAngleOffsetBoth(rec.Head.Angle)
	pair.SetLengthOffsetBoth(rec.Head.Length)
	return pair
}

func hexColor(c color.Color) string {
	if c == nil {
		return ""
	}
	col, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return col.Hex()
}
