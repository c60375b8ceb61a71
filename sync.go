package main

import (
	"image"
	"log"
)

// SelectionProvider hands out the arrow pair of the selected shape, or nil
// when nothing is selected or the selected shape carries no arrows.
type SelectionProvider interface {
	SelectedArrows() *ArrowPair
}

// RedrawRequester repaints the active shape's decorations and returns the
// area that needs invalidating. Callers do not wait on the paint.
type RedrawRequester interface {
	RequestRedraw() image.Rectangle
}

type SurfaceEventKind int

const (
	EventToggle SurfaceEventKind = iota
	EventText
	EventClick
)

// SurfaceEvent is one change coming from a toolbar widget.
type SurfaceEvent struct {
	Kind    SurfaceEventKind
	Control ControlID
	On      bool
	Text    string
}

func ToggleEvent(c ControlID, on bool) SurfaceEvent {
	return SurfaceEvent{Kind: EventToggle, Control: c, On: on}
}

func TextEvent(c ControlID, text string) SurfaceEvent {
	return SurfaceEvent{Kind: EventText, Control: c, Text: text}
}

func ClickEvent(c ControlID) SurfaceEvent {
	return SurfaceEvent{Kind: EventClick, Control: c}
}

// numericField describes how one text field turns input into a value.
type numericField struct {
	lo, hi       float64
	stepFallback float64
	entry        func(text string) (float64, bool)
	set          func(p *ArrowPair, v float64)
	get          func(a Arrow) float64
}

var numericFields = map[ControlID]numericField{
	ControlSizeField: {
		lo: minArrowSize, hi: maxArrowSize,
		stepFallback: sizeFallback,
		entry:        parseSizeEntry,
		set:          (*ArrowPair).SetSizeBoth,
		get:          Arrow.Size,
	},
	ControlAngleField: {
		lo: minAngleOffset, hi: maxAngleOffset,
		stepFallback: angleStepFallback,
		entry:        parseOffsetEntry,
		set:          (*ArrowPair).SetAngleOffsetBoth,
		get:          Arrow.AngleOffset,
	},
	ControlLengthField: {
		lo: minLengthOffset, hi: maxLengthOffset,
		stepFallback: lengthStepFallback,
		entry:        parseOffsetEntry,
		set:          (*ArrowPair).SetLengthOffsetBoth,
		get:          Arrow.LengthOffset,
	},
}

type stepper struct {
	field ControlID
	delta float64
}

var steppers = map[ControlID]stepper{
	ControlSizeMinus:   {ControlSizeField, -1},
	ControlSizePlus:    {ControlSizeField, 1},
	ControlAngleMinus:  {ControlAngleField, -1},
	ControlAnglePlus:   {ControlAngleField, 1},
	ControlLengthMinus: {ControlLengthField, -1},
	ControlLengthPlus:  {ControlLengthField, 1},
}

// parseSizeEntry: empty text waits for input, a lone "-" becomes the
// smallest size, anything else unparsable falls back to the default size.
func parseSizeEntry(text string) (float64, bool) {
	switch text {
	case "":
		return 0, false
	case "-":
		return sizeDashValue, true
	}
	if v, ok := parseNumber(text); ok {
		return v, true
	}
	return sizeFallback, true
}

// parseOffsetEntry ignores empty, "-" and unparsable text until the user
// has typed a number.
func parseOffsetEntry(text string) (float64, bool) {
	if text == "" || text == "-" {
		return 0, false
	}
	return parseNumber(text)
}

// ArrowSync keeps the shared control surface and the selected shape's
// arrow pair consistent. All calls happen on the UI goroutine.
type ArrowSync struct {
	surface   *ControlSurface
	selection SelectionProvider
	redraw    RedrawRequester
}

func NewArrowSync(surface *ControlSurface, selection SelectionProvider, redraw RedrawRequester) *ArrowSync {
	return &ArrowSync{surface: surface, selection: selection, redraw: redraw}
}

func (s *ArrowSync) Surface() *ControlSurface { return s.surface }

func (s *ArrowSync) bound() *ArrowPair {
	if s.selection == nil {
		return nil
	}
	return s.selection.SelectedArrows()
}

// BuildToolbar lays out the arrow section when the tool is activated. The
// secondary group is present from the start if the selected shape already
// shows an arrow.
func (s *ArrowSync) BuildToolbar() []ControlID {
	if pair := s.bound(); pair != nil {
		s.surface.HeadShown = pair.Head().Visible()
		s.surface.TailShown = pair.Tail().Visible()
	}
	if s.surface.HeadShown || s.surface.TailShown {
		s.surface.group = GroupShown
	} else {
		s.surface.group = GroupHidden
	}
	s.surface.layout()
	s.PushToSurface()
	return s.surface.Items()
}

// PushToSurface copies the selected shape's arrow settings into the
// controls. Called after a selection change and after undo or redo.
func (s *ArrowSync) PushToSurface() {
	pair := s.bound()
	if pair == nil {
		return
	}
	head, tail := pair.Head(), pair.Tail()
	s.surface.HeadShown = head.Visible()
	s.surface.TailShown = tail.Visible()
	s.surface.updateGroup()

	// Both ends share these values, so the head speaks for the pair.
	if s.surface.group == GroupShown {
		for c, field := range numericFields {
			*s.surface.fieldText(c) = formatNumber(field.get(head))
		}
	}
}

// ApplyFromSurface applies one widget change. It reports whether a value was
// committed; partial text such as "" or "-" in an offset field is kept on
// display but not applied.
func (s *ArrowSync) ApplyFromSurface(ev SurfaceEvent) bool {
	switch ev.Kind {
	case EventToggle:
		s.applyToggle(ev.Control, ev.On)
		return true
	case EventText:
		return s.applyText(ev.Control, ev.Text)
	case EventClick:
		step, ok := steppers[ev.Control]
		if !ok {
			return false
		}
		return s.applyStep(step)
	}
	return false
}

func (s *ArrowSync) applyToggle(c ControlID, on bool) {
	switch c {
	case ControlHeadToggle:
		s.surface.HeadShown = on
	case ControlTailToggle:
		s.surface.TailShown = on
	default:
		return
	}
	s.surface.updateGroup()

	pair := s.bound()
	if pair == nil {
		return
	}
	if c == ControlHeadToggle {
		pair.SetHeadVisible(on)
	} else {
		pair.SetTailVisible(on)
	}
	s.requestRedraw()
}

func (s *ArrowSync) applyText(c ControlID, text string) bool {
	field, ok := numericFields[c]
	if !ok {
		return false
	}
	display := s.surface.fieldText(c)
	*display = text

	v, ok := field.entry(text)
	if !ok {
		return false
	}
	v = clamp(v, field.lo, field.hi)
	*display = formatNumber(v)

	if pair := s.bound(); pair != nil {
		field.set(pair, v)
		s.requestRedraw()
	}
	return true
}

// applyStep moves a field by one unit. Unparsable text resets the field to
// its step fallback instead of stepping. The result goes through the same
// path as typed text.
func (s *ArrowSync) applyStep(st stepper) bool {
	field := numericFields[st.field]
	v, ok := parseNumber(s.surface.Text(st.field))
	if ok {
		v = clamp(v+st.delta, field.lo, field.hi)
	} else {
		v = field.stepFallback
	}
	return s.applyText(st.field, formatNumber(v))
}

// SeedArrows initialises a new shape's arrows from the controls, the way a
// freshly drawn line picks up whatever the toolbar currently shows. Text that
// does not parse counts as 0 and is clamped like any other value.
func (s *ArrowSync) SeedArrows(pair *ArrowPair) {
	pair.SetHeadVisible(s.surface.HeadShown)
	pair.SetTailVisible(s.surface.TailShown)
	if s.surface.group != GroupShown {
		return
	}
	for c, field := range numericFields {
		v, _ := parseNumber(s.surface.Text(c))
		field.set(pair, v)
	}
}

func (s *ArrowSync) requestRedraw() {
	if s.redraw == nil {
		return
	}
	dirty := s.redraw.RequestRedraw()
	log.Printf("arrow redraw: dirty=%v", dirty)
}
