package main

const version = "0.4.0"

type Mode int

const (
	ModeNormal Mode = iota
	ModeFieldEdit
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpSavePNG
	FileOpSaveVisualTXT
	FileOpOpen
)

type ConfirmAction int

const (
	ConfirmDeleteShape ConfirmAction = iota
	ConfirmQuit
)

type ActionType int

const (
	ActionAddShape ActionType = iota
	ActionDeleteShape
	ActionAddPoint
	ActionToggleCurve
	ActionSetArrows
)

// Arrow parameter bounds, inclusive.
const (
	minArrowSize     = 1.0
	maxArrowSize     = 100.0
	minAngleOffset   = -89.0
	maxAngleOffset   = 89.0
	minLengthOffset  = -100.0
	maxLengthOffset  = 100.0
	defaultArrowSize = 10.0

	defaultAngleOffset  = 15.0
	defaultLengthOffset = 10.0
)

// Fallbacks used when a control's text does not parse.
const (
	sizeFallback       = 10.0
	sizeDashValue      = 1.0
	angleStepFallback  = 0.0
	lengthStepFallback = 10.0
)

const (
	// Endpoints closer than this have no usable direction.
	minArrowDirection = 0.1

	// Pixels per canvas cell, shared by PNG export and the dirty-region tracker.
	cellWidth  = 8.0
	cellHeight = 16.0

	curveSamples = 8
	exportMargin = 2

	// Loaded drawings must keep every coordinate within this many cells of
	// the origin.
	maxCoordinate = 1e6

	// Largest PNG width or height, in pixels.
	maxExportSide = 16384
)
