package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
)

// Presets offered by the field combo boxes, cycled with [ and ].
var fieldPresets = map[ControlID][]string{
	ControlSizeField: {"3", "4", "5", "6", "7", "8", "9", "10", "12", "15", "18",
		"20", "25", "30", "40", "50", "60", "70", "80", "90", "100"},
	ControlAngleField:  {"-30", "-25", "-20", "-15", "-10", "-5", "0", "5", "10", "15", "20", "25", "30"},
	ControlLengthField: {"-30", "-25", "-20", "-15", "-10", "-5", "0", "5", "10", "15", "20", "25", "30"},
}

func initialModel(config *Config) model {
	canvas := NewCanvas()
	surface := NewControlSurface()
	config.applyTo(surface)
	redraw := newDecorationRedraw(canvas)

	m := model{
		buffer: Buffer{
			canvas:    canvas,
			undoStack: []Action{},
			redoStack: []Action{},
		},
		mode:    ModeNormal,
		surface: surface,
		sync:    NewArrowSync(surface, canvas, redraw),
		redraw:  redraw,
		focus:   ControlSizeField,
		config:  config,
	}
	m.sync.BuildToolbar()
	return m
}

// applySurface runs one toolbar event and records it for undo when it
// changed the selected shape's arrows.
func (m *model) applySurface(ev SurfaceEvent) bool {
	canvas := m.getCanvas()
	id := canvas.SelectedIndex()
	pair := canvas.SelectedArrows()
	var before ArrowPair
	if pair != nil {
		before = *pair
	}

	applied := m.sync.ApplyFromSurface(ev)

	if pair != nil && *pair != before {
		data := SetArrowsData{ID: id, Old: before, New: *pair}
		m.recordAction(ActionSetArrows, data, data)
	}
	if m.surface.Group() == GroupHidden && m.mode == ModeFieldEdit {
		m.mode = ModeNormal
	}
	return applied
}

func (m *model) toggleArrow(c ControlID) {
	on := m.surface.HeadShown
	if c == ControlTailToggle {
		on = m.surface.TailShown
	}
	m.applySurface(ToggleEvent(c, !on))
}

// fieldButtons maps each field to its minus and plus stepper.
var fieldButtons = map[ControlID][2]ControlID{
	ControlSizeField:   {ControlSizeMinus, ControlSizePlus},
	ControlAngleField:  {ControlAngleMinus, ControlAnglePlus},
	ControlLengthField: {ControlLengthMinus, ControlLengthPlus},
}

func (m *model) stepFocused(delta int) {
	if m.surface.Group() != GroupShown {
		return
	}
	buttons := fieldButtons[m.focus]
	if delta > 0 {
		m.applySurface(ClickEvent(buttons[1]))
		return
	}
	m.applySurface(ClickEvent(buttons[0]))
}

func (m *model) cycleFocus() {
	for i, c := range fieldControls {
		if c == m.focus {
			m.focus = fieldControls[(i+1)%len(fieldControls)]
			return
		}
	}
	m.focus = fieldControls[0]
}

// cyclePreset moves the focused field to the next or previous preset.
func (m *model) cyclePreset(dir int) {
	if m.surface.Group() != GroupShown {
		return
	}
	presets := fieldPresets[m.focus]
	current := m.surface.Text(m.focus)
	next := 0
	if dir < 0 {
		next = len(presets) - 1
	}
	for i, p := range presets {
		if p == current {
			next = (i + dir + len(presets)) % len(presets)
			break
		}
	}
	m.applySurface(TextEvent(m.focus, presets[next]))
}

func (m *model) typeIntoField(text string) {
	m.applySurface(TextEvent(m.focus, text))
}

func (m *model) newShape(kind string) {
	var s Shape
	switch kind {
	case "rect":
		s = NewRectShape(m.config.OutlineColor, m.config.LineWidth)
	default:
		l := NewLineShape(m.config.OutlineColor, m.config.LineWidth)
		m.sync.SeedArrows(l.Arrows())
		s = l
	}
	x, y := m.worldCoords()
	s.AddPoint(point{X: float64(x), Y: float64(y)})

	id := m.getCanvas().AddShape(s)
	m.recordAction(ActionAddShape, ShapeData{ID: id, Shape: s.Clone()}, ShapeData{ID: id, Shape: s.Clone()})
	m.selectionChanged()
}

func (m *model) addPoint() {
	canvas := m.getCanvas()
	s := canvas.Selected()
	if s == nil {
		m.errorMessage = "No shape selected (n: new line, r: new rectangle)"
		return
	}
	old := s.Clone()
	x, y := m.worldCoords()
	s.AddPoint(point{X: float64(x), Y: float64(y)})
	id := canvas.SelectedIndex()
	m.recordAction(ActionAddPoint,
		EditShapeData{ID: id, Old: old, New: s.Clone()},
		EditShapeData{ID: id, Old: old, New: s.Clone()})
	m.redraw.RequestRedraw()
}

func (m *model) toggleCurve() {
	canvas := m.getCanvas()
	l, ok := canvas.Selected().(*LineShape)
	if !ok {
		return
	}
	old := l.Clone()
	l.Curve = !l.Curve
	id := canvas.SelectedIndex()
	m.recordAction(ActionToggleCurve,
		EditShapeData{ID: id, Old: old, New: l.Clone()},
		EditShapeData{ID: id, Old: old, New: l.Clone()})
	m.redraw.RequestRedraw()
}

func (m *model) deleteShape(id int) {
	canvas := m.getCanvas()
	s := canvas.Shape(id)
	if s == nil {
		return
	}
	canvas.DeleteShape(id)
	m.recordAction(ActionDeleteShape, ShapeData{ID: id, Shape: s.Clone()}, ShapeData{ID: id, Shape: s.Clone()})
	m.selectionChanged()
}

// selectAtCursor selects the shape under the cursor, or cycles to the next
// shape when the cursor is over empty space.
func (m *model) selectAtCursor() {
	canvas := m.getCanvas()
	x, y := m.worldCoords()
	id := canvas.ShapeAt(x, y)
	if id < 0 && canvas.Len() > 0 {
		id = (canvas.SelectedIndex() + 1) % canvas.Len()
	}
	canvas.Select(id)
	m.selectionChanged()
}

func (m *model) deselect() {
	m.getCanvas().Select(-1)
	m.selectionChanged()
}

func (m *model) selectionChanged() {
	log.Printf("selection: %d", m.getCanvas().SelectedIndex())
	m.sync.PushToSurface()
	m.redraw.RequestRedraw()
}

func (m *model) copySettings() error {
	return writeClipboardText(formatArrowSettings(m.surface))
}

func (m *model) pasteSettings() error {
	text, err := readClipboardText()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	events, err := parseArrowSettings(text)
	if err != nil {
		return err
	}
	for _, ev := range events {
		m.applySurface(ev)
	}
	return nil
}

func (m *model) openFile(filename string) error {
	canvas := m.getCanvas()
	if err := canvas.LoadFromFile(filename, m.config); err != nil {
		return err
	}
	m.buffer.filename = filename
	m.buffer.undoStack = m.buffer.undoStack[:0]
	m.buffer.redoStack = m.buffer.redoStack[:0]
	m.buffer.panX, m.buffer.panY = 0, 0
	if canvas.Len() > 0 {
		canvas.Select(0)
	}
	m.selectionChanged()
	return nil
}

// runFileOperation completes the file prompt for the pending operation.
func (m *model) runFileOperation() {
	name := strings.TrimSpace(m.filename)
	if name == "" {
		m.errorMessage = "No filename given"
		return
	}

	var err error
	switch m.fileOp {
	case FileOpSave:
		if filepath.Ext(name) == "" {
			name += ".yaml"
		}
		path := m.config.GetSavePath(name)
		if err = m.getCanvas().SaveToFile(path); err == nil {
			m.buffer.filename = path
			m.successMessage = "Saved " + path
		}
	case FileOpSavePNG:
		if filepath.Ext(name) == "" {
			name += ".png"
		}
		path := m.config.GetSavePath(name)
		if err = m.exportPNG(path); err == nil {
			m.successMessage = "Exported " + path
		}
	case FileOpSaveVisualTXT:
		if filepath.Ext(name) == "" {
			name += ".txt"
		}
		path := m.config.GetSavePath(name)
		if err = m.exportVisualTXT(path); err == nil {
			m.successMessage = "Exported " + path
		}
	case FileOpOpen:
		if err = m.openFile(m.config.GetSavePath(name)); err == nil {
			m.successMessage = "Opened " + name
		}
	}
	if err != nil {
		m.errorMessage = err.Error()
		log.Printf("file operation %d on %s: %v", m.fileOp, name, err)
	}
}
