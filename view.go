package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	toolbarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	buttonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	fieldStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("238"))
	focusStyle     = fieldStyle.Copy().Background(lipgloss.Color("25"))
	editStyle      = fieldStyle.Copy().Background(lipgloss.Color("130"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	selectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

const (
	toolbarRows = 1
	statusRows  = 1
	fieldWidth  = 5
)

func (m *model) canvasHeight() int {
	return m.height - toolbarRows - statusRows
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	width := m.width
	if width < 1 {
		width = 1
	}
	height := m.canvasHeight()
	if height < 1 {
		height = 1
	}

	panX, panY := m.getPanOffset()
	rows := m.getCanvas().Render(width, height, panX, panY, m.cursorX, m.cursorY, true)

	var b strings.Builder
	b.WriteString(m.renderToolbar())
	b.WriteString("\n")
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n")
	b.WriteString(m.renderStatus(width))
	return b.String()
}

// renderToolbar draws the widgets in the order the control surface lists them.
func (m model) renderToolbar() string {
	parts := []string{toolbarStyle.Render(m.modeString())}
	for _, c := range m.surface.Items() {
		parts = append(parts, m.renderControl(c))
	}
	return strings.Join(parts, " ")
}

func (m model) renderControl(c ControlID) string {
	switch c {
	case ControlHeadToggle:
		return renderToggle(c.Label(), m.surface.HeadShown)
	case ControlTailToggle:
		return renderToggle(c.Label(), m.surface.TailShown)
	case ControlSizeField, ControlAngleField, ControlLengthField:
		text := fmt.Sprintf("%*s", fieldWidth, m.surface.Text(c))
		switch {
		case c == m.focus && m.mode == ModeFieldEdit:
			return editStyle.Render(text)
		case c == m.focus:
			return focusStyle.Render(text)
		}
		return fieldStyle.Render(text)
	case ControlSizeMinus, ControlSizePlus, ControlAngleMinus, ControlAnglePlus,
		ControlLengthMinus, ControlLengthPlus:
		return buttonStyle.Render("[" + c.Label() + "]")
	}
	return labelStyle.Render(c.Label())
}

func renderToggle(label string, on bool) string {
	mark := " "
	if on {
		mark = "x"
	}
	return buttonStyle.Render("[" + mark + "]" + label)
}

func (m model) renderStatus(width int) string {
	var line string
	switch {
	case m.mode == ModeFileInput:
		line = m.filePrompt() + m.filename + "_"
	case m.mode == ModeConfirm:
		line = m.confirmPrompt()
	case m.errorMessage != "":
		return errorStyle.Render(m.errorMessage)
	case m.successMessage != "":
		return successStyle.Render(m.successMessage)
	default:
		canvas := m.getCanvas()
		selected := "none"
		if s := canvas.Selected(); s != nil {
			selected = selectionStyle.Render(fmt.Sprintf("%s #%d (%d pts)", s.Kind(), canvas.SelectedIndex()+1, len(s.ControlPoints())))
		}
		x, y := m.worldCoords()
		line = fmt.Sprintf("%d,%d  shapes:%d  selected:%s  dirty:%v  ?:help",
			x, y, canvas.Len(), selected, m.redraw.Dirty())
		if m.surface.Group() == GroupShown {
			buttons := fieldButtons[m.focus]
			line += fmt.Sprintf("  -: %s  +: %s", buttons[0].Tooltip(), buttons[1].Tooltip())
		}
	}
	if lipgloss.Width(line) < width {
		line += strings.Repeat(" ", width-lipgloss.Width(line))
	}
	return statusStyle.Render(line)
}

func (m model) filePrompt() string {
	switch m.fileOp {
	case FileOpSave:
		return "Save as: "
	case FileOpSavePNG:
		return "Export PNG: "
	case FileOpSaveVisualTXT:
		return "Export text: "
	default:
		return "Open: "
	}
}

func (m model) confirmPrompt() string {
	if m.confirmAction == ConfirmQuit {
		return "Quit? (y/n)"
	}
	return fmt.Sprintf("Delete shape #%d? (y/n)", m.confirmID+1)
}

func (m model) modeString() string {
	switch m.mode {
	case ModeFieldEdit:
		return "EDIT"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	}
	if m.zPanMode {
		return "PAN"
	}
	return "NORMAL"
}

var helpLines = []string{
	"linetip help",
	"============",
	"",
	"Canvas:",
	"  h/j/k/l, arrows  Move cursor (Shift: 2x)",
	"  z                Toggle pan mode",
	"  n                New line at cursor",
	"  r                New rectangle at cursor",
	"  a                Add point to selected shape",
	"  c                Toggle curve on selected line",
	"  space            Select shape under cursor / next shape",
	"  esc              Deselect",
	"  x                Delete selected shape",
	"  u / ctrl+r       Undo / redo",
	"",
	"Arrows:",
	"  1 / 2            Show arrow at first / last point",
	"  tab              Focus size, angle or length",
	"  - / +            Step focused value",
	"  [ / ]            Previous / next preset",
	"  e                Type into focused field (enter to finish)",
	"  y / p            Copy / paste arrow settings",
	"",
	"Files:",
	"  s                Save drawing (YAML)",
	"  o                Open drawing",
	"  E                Export PNG",
	"  T                Export visible text",
	"  q                Quit",
}

func (m model) helpView() string {
	height := m.height
	if height < 1 {
		height = len(helpLines)
	}
	end := m.helpScroll + height
	if end > len(helpLines) {
		end = len(helpLines)
	}
	return strings.Join(helpLines[m.helpScroll:end], "\n")
}
