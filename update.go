package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}

		if m.help {
			return m.updateHelp(key)
		}

		m.errorMessage = ""
		m.successMessage = ""

		switch m.mode {
		case ModeFieldEdit:
			return m.updateFieldEdit(msg)
		case ModeFileInput:
			return m.updateFileInput(msg)
		case ModeConfirm:
			return m.updateConfirm(key)
		}
		return m.updateNormal(key)
	}
	return m, nil
}

func (m model) updateNormal(key string) (tea.Model, tea.Cmd) {
	if isNavigationKey(key) {
		m.handleNavigation(key, m.getMoveSpeed(key))
		return m, nil
	}

	switch key {
	case "q":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
	case "z":
		m.zPanMode = !m.zPanMode

	case "n":
		m.newShape("line")
	case "r":
		m.newShape("rect")
	case "a":
		m.addPoint()
	case "c":
		m.toggleCurve()
	case " ":
		m.selectAtCursor()
	case "esc":
		m.deselect()
	case "x":
		id := m.getCanvas().SelectedIndex()
		if id < 0 {
			m.errorMessage = "No shape selected"
			return m, nil
		}
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmDeleteShape
			m.confirmID = id
			return m, nil
		}
		m.deleteShape(id)

	case "u":
		m.undo()
	case "ctrl+r":
		m.redo()

	case "1":
		m.toggleArrow(ControlHeadToggle)
	case "2":
		m.toggleArrow(ControlTailToggle)
	case "tab":
		if m.surface.Group() == GroupShown {
			m.cycleFocus()
		}
	case "+", "=":
		m.stepFocused(1)
	case "-":
		m.stepFocused(-1)
	case "]":
		m.cyclePreset(1)
	case "[":
		m.cyclePreset(-1)
	case "e":
		if m.surface.Group() == GroupShown {
			m.mode = ModeFieldEdit
			m.beginFieldEdit()
		}

	case "y":
		if err := m.copySettings(); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "Copied arrow settings"
		}
	case "p":
		if err := m.pasteSettings(); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "Pasted arrow settings"
		}

	case "s":
		m.startFileInput(FileOpSave)
	case "o":
		m.startFileInput(FileOpOpen)
	case "E":
		m.startFileInput(FileOpSavePNG)
	case "T":
		m.startFileInput(FileOpSaveVisualTXT)
	}
	return m, nil
}

// updateFieldEdit feeds every keystroke to the focused field, the way a
// combo box entry reports each change. The field's text starts out selected,
// so the first typed character replaces it.
func (m model) updateFieldEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	text := m.surface.Text(m.focus)
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.mode = ModeNormal
		m.endFieldEdit()
	case tea.KeyTab:
		m.endFieldEdit()
		m.cycleFocus()
		m.beginFieldEdit()
	case tea.KeyBackspace:
		if m.editFresh {
			text = ""
		} else if r := []rune(text); len(r) > 0 {
			text = string(r[:len(r)-1])
		}
		m.editFresh = false
		m.typeIntoField(text)
	case tea.KeyRunes:
		if m.editFresh {
			text = ""
		}
		m.editFresh = false
		m.typeIntoField(text + string(msg.Runes))
	}
	return m, nil
}

func (m *model) beginFieldEdit() {
	m.editFresh = true
	m.editBefore = m.surface.Text(m.focus)
}

// endFieldEdit drops leftover partial input such as "-". With a selection the
// field falls back to the shape's value, otherwise to the text it had before
// editing began.
func (m *model) endFieldEdit() {
	m.editFresh = false
	m.sync.PushToSurface()
	if _, ok := parseNumber(m.surface.Text(m.focus)); !ok {
		m.typeIntoField(m.editBefore)
	}
}

func (m *model) startFileInput(op FileOperation) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.filename = ""
}

func (m model) updateFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = ModeNormal
		m.runFileOperation()
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.filename = ""
	case tea.KeyBackspace:
		if r := []rune(m.filename); len(r) > 0 {
			m.filename = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filename += string(msg.Runes)
	}
	return m, nil
}

func (m model) updateConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y", "enter":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmDeleteShape:
			m.deleteShape(m.confirmID)
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) updateHelp(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		if m.helpScroll < len(helpLines)-1 {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
	return m, nil
}
