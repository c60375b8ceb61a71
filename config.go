package main

import (
	"bufio"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type Config struct {
	SaveDirectory string
	Confirmations bool
	ArrowSize     float64
	AngleOffset   float64
	LengthOffset  float64
	LineWidth     float64
	OutlineColor  color.Color
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		Confirmations: true,
		ArrowSize:     defaultArrowSize,
		AngleOffset:   defaultAngleOffset,
		LengthOffset:  defaultLengthOffset,
		LineWidth:     2,
		OutlineColor:  color.Black,
	}
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".linetiprc")
}

// loadConfig reads key=value lines from path. A missing file or bad values
// leave the defaults in place.
func loadConfig(path string) *Config {
	config := defaultConfig()
	if path == "" {
		return config
	}

	file, err := os.Open(path)
	if err != nil {
		return config
	}
	defer file.Close()

	homeDir, _ := os.UserHomeDir()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "arrowsize", "arrow_size", "size":
			if v, ok := parseNumber(value); ok {
				config.ArrowSize = clamp(v, minArrowSize, maxArrowSize)
			}
		case "angleoffset", "angle_offset", "angle":
			if v, ok := parseNumber(value); ok {
				config.AngleOffset = clamp(v, minAngleOffset, maxAngleOffset)
			}
		case "lengthoffset", "length_offset", "length":
			if v, ok := parseNumber(value); ok {
				config.LengthOffset = clamp(v, minLengthOffset, maxLengthOffset)
			}
		case "linewidth", "line_width", "width":
			if v, ok := parseNumber(value); ok && v > 0 {
				config.LineWidth = v
			}
		case "outlinecolor", "outline_color", "color":
			if c, err := colorful.Hex(value); err == nil {
				config.OutlineColor = c
			}
		}
	}

	return config
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

// applyTo seeds the toolbar's numeric fields with the configured values.
func (c *Config) applyTo(s *ControlSurface) {
	s.SizeText = formatNumber(c.ArrowSize)
	s.AngleText = formatNumber(c.AngleOffset)
	s.LengthText = formatNumber(c.LengthOffset)
}
