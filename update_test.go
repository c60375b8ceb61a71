package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	config := defaultConfig()
	config.Confirmations = false
	m := initialModel(config)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(model)
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(m model, keys ...string) model {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(model)
	}
	return m
}

// drawLine creates a selected two-point line from (0,0) to (5,0).
func drawLine(m model) model {
	return press(m, "n", "l", "l", "l", "l", "l", "a")
}

func selectedPair(t *testing.T, m model) *ArrowPair {
	t.Helper()
	pair := m.getCanvas().SelectedArrows()
	if pair == nil {
		t.Fatal("no selected arrows")
	}
	return pair
}

func TestNewLineTakesToolbarSettings(t *testing.T) {
	m := newTestModel(t)
	m = drawLine(m)

	pair := selectedPair(t, m)
	if pair.AnyVisible() {
		t.Error("new line has visible arrows with toolbar toggles off")
	}
	if got := m.getCanvas().Selected().ControlPoints(); len(got) != 2 || got[1] != (point{5, 0}) {
		t.Errorf("control points = %v", got)
	}

	m = press(m, "2", "tab", "+")
	m = press(m, "esc", "j", "j", "n", "l", "a")
	pair = selectedPair(t, m)
	if pair.Head().Visible() || !pair.Tail().Visible() {
		t.Errorf("second line visibility = (%v, %v)", pair.Head().Visible(), pair.Tail().Visible())
	}
	if pair.Head().AngleOffset() != 16 {
		t.Errorf("second line angle = %v, want 16", pair.Head().AngleOffset())
	}
}

func TestArrowEditsUndoAndRedo(t *testing.T) {
	m := newTestModel(t)
	m = drawLine(m)

	m = press(m, "1")
	pair := selectedPair(t, m)
	if !pair.Head().Visible() || m.surface.Group() != GroupShown {
		t.Fatal("head toggle did not show the arrow controls")
	}

	m = press(m, "+")
	if pair.Head().Size() != 11 || m.surface.SizeText != "11" {
		t.Fatalf("size = %v, field %q", pair.Head().Size(), m.surface.SizeText)
	}

	m = press(m, "u")
	if pair.Head().Size() != 10 || m.surface.SizeText != "10" {
		t.Errorf("undo size = %v, field %q", pair.Head().Size(), m.surface.SizeText)
	}

	m = press(m, "u")
	if pair.Head().Visible() || m.surface.Group() != GroupHidden {
		t.Errorf("undo toggle left visible=%v group=%v", pair.Head().Visible(), m.surface.Group())
	}
	if m.surface.Has(ControlSizeField) {
		t.Error("size field still on the toolbar")
	}

	m = press(m, "ctrl+r", "ctrl+r")
	if !pair.Head().Visible() || pair.Head().Size() != 11 {
		t.Errorf("redo gave visible=%v size=%v", pair.Head().Visible(), pair.Head().Size())
	}
	if m.surface.Group() != GroupShown || m.surface.SizeText != "11" {
		t.Errorf("redo left group=%v field %q", m.surface.Group(), m.surface.SizeText)
	}
}

func TestFieldEditTyping(t *testing.T) {
	m := newTestModel(t)
	m = drawLine(m)
	m = press(m, "1", "tab", "e")
	if m.mode != ModeFieldEdit || m.focus != ControlAngleField {
		t.Fatalf("mode %v focus %v", m.mode, m.focus)
	}
	pair := selectedPair(t, m)

	m = press(m, "-")
	if m.surface.AngleText != "-" || pair.Head().AngleOffset() != defaultAngleOffset {
		t.Errorf("partial input: field %q angle %v", m.surface.AngleText, pair.Head().AngleOffset())
	}

	m = press(m, "9", "5")
	if m.surface.AngleText != "-89" || pair.Tail().AngleOffset() != -89 {
		t.Errorf("clamped input: field %q angle %v", m.surface.AngleText, pair.Tail().AngleOffset())
	}

	m = press(m, "backspace", "backspace")
	if m.surface.AngleText != "-" || pair.Head().AngleOffset() != -8 {
		t.Errorf("after backspace: field %q angle %v", m.surface.AngleText, pair.Head().AngleOffset())
	}

	m = press(m, "enter")
	if m.mode != ModeNormal {
		t.Errorf("mode after enter = %v", m.mode)
	}
	if m.surface.AngleText != "-8" {
		t.Errorf("leaving edit with %q on display, want the applied -8", m.surface.AngleText)
	}
}

func TestFieldEditTabKeepsText(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "1", "e", "2", "5", "tab")
	if m.surface.SizeText != "25" || m.focus != ControlAngleField {
		t.Fatalf("size field %q focus %v", m.surface.SizeText, m.focus)
	}
	if m.surface.AngleText != "15" {
		t.Errorf("tab cleared the angle field to %q", m.surface.AngleText)
	}

	m = press(m, "-", "tab")
	if m.surface.AngleText != "15" {
		t.Errorf("partial angle left as %q, want the previous 15", m.surface.AngleText)
	}
	if m.surface.LengthText != "10" {
		t.Errorf("length field = %q", m.surface.LengthText)
	}

	m = press(m, "enter")
	m = drawLine(m)
	pair := selectedPair(t, m)
	got := [3]float64{pair.Head().Size(), pair.Head().AngleOffset(), pair.Head().LengthOffset()}
	if want := [3]float64{25, 15, 10}; got != want {
		t.Errorf("new line seeded with %v, want %v", got, want)
	}
}

func TestFieldEditFirstKeyReplacesText(t *testing.T) {
	m := newTestModel(t)
	m = drawLine(m)
	m = press(m, "1", "e")
	if m.surface.SizeText != "10" {
		t.Fatalf("entering edit changed the field to %q", m.surface.SizeText)
	}
	m = press(m, "7")
	if m.surface.SizeText != "7" || selectedPair(t, m).Head().Size() != 7 {
		t.Errorf("field %q size %v, want 7", m.surface.SizeText, selectedPair(t, m).Head().Size())
	}
	m = press(m, "enter", "e", "backspace", "enter")
	if m.surface.SizeText != "7" {
		t.Errorf("clearing then leaving shows %q, want the applied 7", m.surface.SizeText)
	}
}

func TestHiddenControlsIgnoreEditKeys(t *testing.T) {
	m := newTestModel(t)
	m = drawLine(m)
	m = press(m, "1", "e")
	if m.mode != ModeFieldEdit {
		t.Fatal("not editing")
	}
	m = press(m, "enter", "1")
	if m.surface.Group() != GroupHidden {
		t.Fatalf("group = %v", m.surface.Group())
	}
	m = press(m, "e", "+")
	if m.mode != ModeNormal {
		t.Error("entered field edit with hidden controls")
	}
	if selectedPair(t, m).Head().Size() != 10 {
		t.Error("stepper ran while the controls were hidden")
	}
}

func TestToolbarWithoutSelectionRecordsNothing(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "1", "+", "+")
	if m.surface.Group() != GroupShown || m.surface.SizeText != "12" {
		t.Errorf("group %v size field %q", m.surface.Group(), m.surface.SizeText)
	}
	if n := len(m.buffer.undoStack); n != 0 {
		t.Errorf("%d undo actions recorded without a selection", n)
	}
}

func TestSelectionChangeLoadsArrows(t *testing.T) {
	m := newTestModel(t)
	m = drawLine(m)
	m = press(m, "2", "tab", "tab", "]")
	if got := selectedPair(t, m).Head().LengthOffset(); got != 15 {
		t.Fatalf("first line length = %v, want the next preset 15", got)
	}

	m = press(m, "esc", "j", "j", "j", "n", "l", "a", "]", "1")
	second := selectedPair(t, m)
	if !second.Head().Visible() || !second.Tail().Visible() || second.Head().LengthOffset() != 20 {
		t.Fatalf("second line = %+v", *second)
	}

	m.getCanvas().Select(0)
	m.selectionChanged()
	if m.surface.LengthText != "15" {
		t.Errorf("length field %q, want 15", m.surface.LengthText)
	}
	if m.surface.HeadShown || !m.surface.TailShown {
		t.Errorf("toggles = (%v, %v)", m.surface.HeadShown, m.surface.TailShown)
	}

	m.getCanvas().Select(1)
	m.selectionChanged()
	if m.surface.LengthText != "20" || !m.surface.HeadShown {
		t.Errorf("back on second line: length %q head %v", m.surface.LengthText, m.surface.HeadShown)
	}
}

func TestDeleteAndUndo(t *testing.T) {
	m := newTestModel(t)
	m = drawLine(m)
	m = press(m, "1")

	m = press(m, "x")
	if m.getCanvas().Len() != 0 {
		t.Fatalf("shape not deleted")
	}

	m = press(m, "u")
	if m.getCanvas().Len() != 1 || m.getCanvas().SelectedIndex() != 0 {
		t.Fatalf("undo delete: len %d selected %d", m.getCanvas().Len(), m.getCanvas().SelectedIndex())
	}
	if !selectedPair(t, m).Head().Visible() || m.surface.Group() != GroupShown {
		t.Error("restored shape lost its arrow")
	}

	m = press(m, "ctrl+r")
	if m.getCanvas().Len() != 0 {
		t.Error("redo did not delete again")
	}
}

func TestUndoPointAndCurve(t *testing.T) {
	m := newTestModel(t)
	m = drawLine(m)
	m = press(m, "j", "a", "c")
	l := m.getCanvas().Selected().(*LineShape)
	if !l.Curve || len(l.Points) != 3 {
		t.Fatalf("curve=%v points=%d", l.Curve, len(l.Points))
	}

	m = press(m, "u")
	l = m.getCanvas().Selected().(*LineShape)
	if l.Curve {
		t.Error("undo did not clear the curve")
	}

	m = press(m, "u")
	l = m.getCanvas().Selected().(*LineShape)
	if len(l.Points) != 2 {
		t.Errorf("undo add point left %d points", len(l.Points))
	}
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	m := initialModel(defaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = drawLine(next.(model))

	m = press(m, "x")
	if m.mode != ModeConfirm {
		t.Fatalf("mode = %v", m.mode)
	}
	m = press(m, "n")
	if m.getCanvas().Len() != 1 {
		t.Error("declined delete removed the shape")
	}
	m = press(m, "x", "y")
	if m.getCanvas().Len() != 0 {
		t.Error("confirmed delete kept the shape")
	}
}

func TestSaveAndOpenThroughPrompt(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t)
	m.config.SaveDirectory = dir
	m = drawLine(m)
	m = press(m, "2")

	m = press(m, "s")
	if m.mode != ModeFileInput {
		t.Fatalf("mode = %v", m.mode)
	}
	m = press(m, "d", "o", "c", "enter")
	if m.errorMessage != "" {
		t.Fatalf("save failed: %s", m.errorMessage)
	}
	if _, err := os.Stat(filepath.Join(dir, "doc.yaml")); err != nil {
		t.Fatalf("drawing not saved: %v", err)
	}

	m = press(m, "E", "o", "u", "t", "enter")
	if _, err := os.Stat(filepath.Join(dir, "out.png")); err != nil {
		t.Errorf("png not exported: %v", err)
	}

	m = press(m, "T", "o", "u", "t", "enter")
	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	if err != nil {
		t.Fatalf("text not exported: %v", err)
	}
	if !strings.Contains(string(data), "▶") {
		t.Error("text export is missing the arrow glyph")
	}

	fresh := newTestModel(t)
	fresh.config.SaveDirectory = dir
	fresh = press(fresh, "o", "d", "o", "c", ".", "y", "a", "m", "l", "enter")
	if fresh.errorMessage != "" {
		t.Fatalf("open failed: %s", fresh.errorMessage)
	}
	if fresh.getCanvas().Len() != 1 || !fresh.surface.TailShown {
		t.Errorf("opened %d shapes, tail toggle %v", fresh.getCanvas().Len(), fresh.surface.TailShown)
	}
}

func TestViewShowsToolbar(t *testing.T) {
	m := newTestModel(t)
	m = drawLine(m)
	if strings.Contains(m.View(), "Size:") {
		t.Error("size controls shown while arrows are hidden")
	}
	m = press(m, "1")
	view := m.View()
	for _, want := range []string{"Arrow:", "Size:", "Angle:", "Length:"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
