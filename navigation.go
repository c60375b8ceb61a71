package main

func (m *model) handleNavigation(key string, speed int) {
	if m.zPanMode {
		m.handlePan(key, speed)
		return
	}
	m.handleCursorMove(key, speed)
}

func (m *model) handlePan(key string, speed int) {
	buf := m.getCurrentBuffer()
	switch key {
	case "h", "left", "H", "shift+left":
		buf.panX -= speed
	case "l", "right", "L", "shift+right":
		buf.panX += speed
	case "k", "up", "K", "shift+up":
		buf.panY -= speed
	case "j", "down", "J", "shift+down":
		buf.panY += speed
	}
}

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	maxY := m.canvasHeight() - 1
	if m.cursorX >= m.width {
		m.cursorX = m.width - 1
	}
	if m.cursorY > maxY {
		m.cursorY = maxY
	}
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
}

func isNavigationKey(key string) bool {
	switch key {
	case "h", "j", "k", "l", "H", "J", "K", "L",
		"left", "right", "up", "down",
		"shift+left", "shift+right", "shift+up", "shift+down":
		return true
	}
	return false
}
