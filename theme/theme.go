// Package theme contains the colors the board is painted with.
package theme

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Colors maps the shades of the board to colors, such as "#769656".
type Colors struct {
	// BlackTile is the color of the black tiles.
	BlackTile string `yaml:"blackTile"`
	// WhiteTile is the color of the white tiles.
	WhiteTile string `yaml:"whiteTile"`
	// Text is the color tile labels are written with.
	Text string `yaml:"text"`
	// Background is the color behind the board.
	Background string `yaml:"background"`
}

// Default returns the standard green and cream colors.
func Default() Colors {
	c := Colors{
		BlackTile:  "#769656",
		WhiteTile:  "#eeeed2",
		Text:       "#000000",
		Background: "#ffffff",
	}
	return c
}

// Read decodes yaml colors from the reader.  Colors not specified keep their default values.
func Read(r io.Reader) (*Colors, error) {
	c := Default()
	d := yaml.NewDecoder(r)
	d.SetStrict(true)
	if err := d.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding theme: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	return &c, nil
}

// Validate ensures each color is a hex color with three or six digits.
func (c Colors) Validate() error {
	colors := []struct {
		name  string
		value string
	}{
		{"blackTile", c.BlackTile},
		{"whiteTile", c.WhiteTile},
		{"text", c.Text},
		{"background", c.Background},
	}
	for _, color := range colors {
		if !isHexColor(color.value) {
			return fmt.Errorf("%v is not a hex color: %q", color.name, color.value)
		}
	}
	return nil
}

// isHexColor determines if the text is a css hex color, such as #fff or #c0ffee.
func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case '0' <= r && r <= '9', 'a' <= r && r <= 'f', 'A' <= r && r <= 'F':
		default:
			return false
		}
	}
	return true
}
