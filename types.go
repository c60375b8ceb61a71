package main

type Buffer struct {
	canvas    *Canvas
	undoStack []Action
	redoStack []Action
	filename  string
	panX      int
	panY      int
}

type model struct {
	width          int
	height         int
	cursorX        int
	cursorY        int
	zPanMode       bool
	buffer         Buffer
	mode           Mode
	help           bool
	helpScroll     int
	surface        *ControlSurface
	sync           *ArrowSync
	redraw         *decorationRedraw
	focus          ControlID
	editFresh      bool
	editBefore     string
	filename       string
	fileOp         FileOperation
	confirmAction  ConfirmAction
	confirmID      int
	errorMessage   string
	successMessage string
	config         *Config
}

type Action struct {
	Type    ActionType
	Data    interface{}
	Inverse interface{}
}

// ShapeData records a whole shape at an index, for add and delete.
type ShapeData struct {
	ID    int
	Shape Shape
}

// EditShapeData records a shape before and after a geometry edit.
type EditShapeData struct {
	ID  int
	Old Shape
	New Shape
}

type SetArrowsData struct {
	ID  int
	Old ArrowPair
	New ArrowPair
}
