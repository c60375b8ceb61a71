package main

import "log"

func (m *model) undo() {
	buf := m.getCurrentBuffer()
	if buf == nil || len(buf.undoStack) == 0 {
		return
	}

	lastIndex := len(buf.undoStack) - 1
	action := buf.undoStack[lastIndex]
	buf.undoStack = buf.undoStack[:lastIndex]

	canvas := m.getCanvas()
	switch action.Type {
	case ActionAddShape:
		data := action.Data.(ShapeData)
		canvas.DeleteShape(data.ID)
	case ActionDeleteShape:
		data := action.Inverse.(ShapeData)
		canvas.InsertShape(data.ID, data.Shape.Clone())
	case ActionAddPoint, ActionToggleCurve:
		data := action.Inverse.(EditShapeData)
		canvas.ReplaceShape(data.ID, data.Old.Clone())
		canvas.Select(data.ID)
	case ActionSetArrows:
		data := action.Inverse.(SetArrowsData)
		m.restoreArrows(data.ID, data.Old)
	}

	buf.redoStack = append(buf.redoStack, action)
	m.afterHistoryChange("undo")
}

func (m *model) redo() {
	buf := m.getCurrentBuffer()
	if buf == nil || len(buf.redoStack) == 0 {
		return
	}

	lastIndex := len(buf.redoStack) - 1
	action := buf.redoStack[lastIndex]
	buf.redoStack = buf.redoStack[:lastIndex]

	canvas := m.getCanvas()
	switch action.Type {
	case ActionAddShape:
		data := action.Data.(ShapeData)
		canvas.InsertShape(data.ID, data.Shape.Clone())
	case ActionDeleteShape:
		data := action.Data.(ShapeData)
		canvas.DeleteShape(data.ID)
	case ActionAddPoint, ActionToggleCurve:
		data := action.Data.(EditShapeData)
		canvas.ReplaceShape(data.ID, data.New.Clone())
		canvas.Select(data.ID)
	case ActionSetArrows:
		data := action.Data.(SetArrowsData)
		m.restoreArrows(data.ID, data.New)
	}

	buf.undoStack = append(buf.undoStack, action)
	m.afterHistoryChange("redo")
}

func (m *model) restoreArrows(id int, pair ArrowPair) {
	canvas := m.getCanvas()
	if a, ok := canvas.Shape(id).(Arrowed); ok {
		*a.Arrows() = pair
	}
	canvas.Select(id)
}

// afterHistoryChange re-syncs the toolbar, since the selected shape's arrows
// may have reverted.
func (m *model) afterHistoryChange(op string) {
	log.Printf("%s: selected=%d", op, m.getCanvas().SelectedIndex())
	m.sync.PushToSurface()
	m.redraw.RequestRedraw()
}
