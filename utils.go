package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
)

func (m *model) getCurrentBuffer() *Buffer {
	return &m.buffer
}

func (m *model) getCanvas() *Canvas {
	return m.buffer.canvas
}

func (m *model) getPanOffset() (int, int) {
	return m.buffer.panX, m.buffer.panY
}

func (m *model) worldCoords() (int, int) {
	panX, panY := m.getPanOffset()
	return m.cursorX + panX, m.cursorY + panY
}

func (m *model) recordAction(actionType ActionType, data, inverse interface{}) {
	buf := m.getCurrentBuffer()
	action := Action{
		Type:    actionType,
		Data:    data,
		Inverse: inverse,
	}
	buf.undoStack = append(buf.undoStack, action)
	buf.redoStack = buf.redoStack[:0]
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
		if output, err := exec.Command("pbpaste").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// formatArrowSettings writes the control surface as one clipboard line.
func formatArrowSettings(s *ControlSurface) string {
	return fmt.Sprintf("arrows head=%t tail=%t size=%s angle=%s length=%s",
		s.HeadShown, s.TailShown, s.SizeText, s.AngleText, s.LengthText)
}

// parseArrowSettings turns a copied settings line back into the widget
// events that would reproduce it. Toggles come first so the numeric fields
// are on the toolbar when their events arrive.
func parseArrowSettings(text string) ([]SurfaceEvent, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 || fields[0] != "arrows" {
		return nil, fmt.Errorf("clipboard does not hold arrow settings")
	}

	var toggles, values []SurfaceEvent
	for _, f := range fields[1:] {
		key, value, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("malformed arrow setting %q", f)
		}
		switch key {
		case "head", "tail":
			on, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("arrow setting %s: %w", key, err)
			}
			c := ControlHeadToggle
			if key == "tail" {
				c = ControlTailToggle
			}
			toggles = append(toggles, ToggleEvent(c, on))
		case "size":
			values = append(values, TextEvent(ControlSizeField, value))
		case "angle":
			values = append(values, TextEvent(ControlAngleField, value))
		case "length":
			values = append(values, TextEvent(ControlLengthField, value))
		default:
			return nil, fmt.Errorf("unknown arrow setting %q", key)
		}
	}
	return append(toggles, values...), nil
}
