package main

import (
	"fmt"
	"log"
	"os"
)

// exportVisualTXT writes the canvas as it appears in the terminal, without
// the cursor.
func (m *model) exportVisualTXT(filename string) error {
	canvas := m.getCanvas()
	if canvas == nil {
		return fmt.Errorf("no canvas available")
	}

	width := m.width
	if width < 1 {
		width = 80
	}
	height := m.canvasHeight()
	if height < 1 {
		height = 24
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	panX, panY := m.getPanOffset()
	for _, line := range canvas.Render(width, height, panX, panY, 0, 0, false) {
		fmt.Fprintln(file, line)
	}
	return nil
}

// exportPNG renders the drawing with gg and reports the arrowhead area.
func (m *model) exportPNG(filename string) error {
	dirty, err := m.getCanvas().ExportToPNG(filename, m.buffer.filename)
	if err != nil {
		return err
	}
	log.Printf("export %s: arrow region %v", filename, dirty)
	return nil
}
