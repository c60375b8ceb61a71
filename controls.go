package main

import "log"

// ControlID names one widget of the arrow section of the toolbar.
type ControlID int

const (
	ControlSeparator ControlID = iota
	ControlArrowLabel
	ControlHeadToggle
	ControlTailToggle

	ControlSizeLabel
	ControlSizeMinus
	ControlSizeField
	ControlSizePlus
	ControlAngleLabel
	ControlAngleMinus
	ControlAngleField
	ControlAnglePlus
	ControlLengthLabel
	ControlLengthMinus
	ControlLengthField
	ControlLengthPlus
)

var primaryControls = []ControlID{
	ControlSeparator,
	ControlArrowLabel,
	ControlHeadToggle,
	ControlTailToggle,
}

// secondaryControls is inserted and removed as one block, in this order.
var secondaryControls = []ControlID{
	ControlSizeLabel, ControlSizeMinus, ControlSizeField, ControlSizePlus,
	ControlAngleLabel, ControlAngleMinus, ControlAngleField, ControlAnglePlus,
	ControlLengthLabel, ControlLengthMinus, ControlLengthField, ControlLengthPlus,
}

// fieldControls are the focusable text fields of the secondary group.
var fieldControls = []ControlID{ControlSizeField, ControlAngleField, ControlLengthField}

func (c ControlID) Label() string {
	switch c {
	case ControlArrowLabel:
		return "Arrow:"
	case ControlHeadToggle:
		return "1"
	case ControlTailToggle:
		return "2"
	case ControlSizeLabel:
		return "Size:"
	case ControlAngleLabel:
		return "Angle:"
	case ControlLengthLabel:
		return "Length:"
	case ControlSizeMinus, ControlAngleMinus, ControlLengthMinus:
		return "-"
	case ControlSizePlus, ControlAnglePlus, ControlLengthPlus:
		return "+"
	case ControlSeparator:
		return "|"
	}
	return ""
}

// Tooltip mirrors the stepper button hints.
func (c ControlID) Tooltip() string {
	switch c {
	case ControlSizeMinus:
		return "Decrease arrow size"
	case ControlSizePlus:
		return "Increase arrow size"
	case ControlAngleMinus:
		return "Decrease angle offset"
	case ControlAnglePlus:
		return "Increase angle offset"
	case ControlLengthMinus:
		return "Decrease length offset"
	case ControlLengthPlus:
		return "Increase length offset"
	}
	return ""
}

type GroupState int

const (
	GroupHidden GroupState = iota
	GroupShown
)

func (g GroupState) String() string {
	if g == GroupShown {
		return "Shown"
	}
	return "Hidden"
}

// ControlSurface is the single set of arrow controls shared by every shape.
// It only holds what the widgets display; ArrowSync binds it to a shape.
type ControlSurface struct {
	HeadShown bool
	TailShown bool

	SizeText   string
	AngleText  string
	LengthText string

	group GroupState
	items []ControlID
}

func NewControlSurface() *ControlSurface {
	s := &ControlSurface{
		SizeText:   formatNumber(defaultArrowSize),
		AngleText:  formatNumber(defaultAngleOffset),
		LengthText: formatNumber(defaultLengthOffset),
	}
	s.items = append(s.items, primaryControls...)
	return s
}

func (s *ControlSurface) Group() GroupState { return s.group }

// Items returns the widgets currently laid out on the toolbar, in order.
func (s *ControlSurface) Items() []ControlID {
	return append([]ControlID(nil), s.items...)
}

func (s *ControlSurface) Has(c ControlID) bool {
	for _, item := range s.items {
		if item == c {
			return true
		}
	}
	return false
}

// fieldText returns a pointer to the text backing one of the numeric fields.
func (s *ControlSurface) fieldText(c ControlID) *string {
	switch c {
	case ControlSizeField:
		return &s.SizeText
	case ControlAngleField:
		return &s.AngleText
	case ControlLengthField:
		return &s.LengthText
	}
	return nil
}

// Text returns the displayed text of a numeric field.
func (s *ControlSurface) Text(c ControlID) string {
	if p := s.fieldText(c); p != nil {
		return *p
	}
	return ""
}

// updateGroup drives the Hidden/Shown state machine from the OR of the two
// visibility toggles and reports whether a transition happened.
func (s *ControlSurface) updateGroup() bool {
	anyShown := s.HeadShown || s.TailShown
	switch {
	case anyShown && s.group == GroupHidden:
		s.group = GroupShown
		s.items = append(s.items, secondaryControls...)
	case !anyShown && s.group == GroupShown:
		s.group = GroupHidden
		s.items = removeControls(s.items, secondaryControls)
	default:
		return false
	}
	log.Printf("arrow controls: %s -> %s", oppositeGroup(s.group), s.group)
	return true
}

// layout rebuilds the toolbar from scratch for the current group state.
func (s *ControlSurface) layout() {
	s.items = append(s.items[:0], primaryControls...)
	if s.group == GroupShown {
		s.items = append(s.items, secondaryControls...)
	}
}

func oppositeGroup(g GroupState) GroupState {
	if g == GroupShown {
		return GroupHidden
	}
	return GroupShown
}

func removeControls(items, remove []ControlID) []ControlID {
	drop := make(map[ControlID]bool, len(remove))
	for _, c := range remove {
		drop[c] = true
	}
	kept := items[:0]
	for _, c := range items {
		if !drop[c] {
			kept = append(kept, c)
		}
	}
	return kept
}
