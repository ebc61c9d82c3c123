package slidekit

import (
	"fmt"
	"strings"
)

// Color represents an ARGB color.
type Color struct {
	ARGB string // 8-character hex string, e.g., "FF000000" for black
}

// Predefined colors.
var (
	ColorBlack = Color{ARGB: "FF000000"}
	ColorWhite = Color{ARGB: "FFFFFFFF"}
	ColorRed   = Color{ARGB: "FFFF0000"}
	// ColorStickyYellow is the classic sticky-note fill.
	ColorStickyYellow = Color{ARGB: "FFFFF599"}
)

// NewColor creates a new Color from an ARGB hex string.
// Accepts 6-char RGB (e.g. "FF0000") or 8-char ARGB (e.g. "FFFF0000").
// A leading "#" is stripped automatically.
func NewColor(argb string) Color {
	argb = strings.TrimPrefix(argb, "#")
	if len(argb) == 6 {
		argb = "FF" + argb
	}
	argb = strings.ToUpper(argb)
	if !isValidARGB(argb) {
		return Color{ARGB: "FF000000"} // fallback to black
	}
	return Color{ARGB: argb}
}

// ParseColor is like NewColor but reports invalid input instead of
// falling back to black.
func ParseColor(argb string) (Color, bool) {
	s := strings.TrimPrefix(argb, "#")
	if len(s) == 6 {
		s = "FF" + s
	}
	s = strings.ToUpper(s)
	if !isValidARGB(s) {
		return Color{}, false
	}
	return Color{ARGB: s}, true
}

// isValidARGB checks that s is exactly 8 hex characters.
func isValidARGB(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// RGB returns the 6-character RRGGBB portion, the form OOXML color
// elements carry in their val attribute.
func (c Color) RGB() string {
	if len(c.ARGB) != 8 {
		return "000000"
	}
	return c.ARGB[2:]
}

// GetRed returns the red component (0-255).
func (c Color) GetRed() uint8 {
	return parseHexByte(c.ARGB, 2)
}

// GetGreen returns the green component (0-255).
func (c Color) GetGreen() uint8 {
	return parseHexByte(c.ARGB, 4)
}

// GetBlue returns the blue component (0-255).
func (c Color) GetBlue() uint8 {
	return parseHexByte(c.ARGB, 6)
}

// GetAlpha returns the alpha component (0-255).
func (c Color) GetAlpha() uint8 {
	return parseHexByte(c.ARGB, 0)
}

// Luminance returns the relative luminance of the color in 0.0–1.0.
// Used to pick a readable text color over a fill.
func (c Color) Luminance() float64 {
	r := float64(c.GetRed()) / 255
	g := float64(c.GetGreen()) / 255
	b := float64(c.GetBlue()) / 255
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastText returns black or white, whichever reads better over c.
func (c Color) ContrastText() Color {
	if c.Luminance() > 0.5 {
		return ColorBlack
	}
	return ColorWhite
}

// Darken returns the color with each channel scaled toward black.
// fraction 0 keeps the color, 1 yields black. Alpha is preserved.
func (c Color) Darken(fraction float64) Color {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	scale := 1 - fraction
	r := uint8(float64(c.GetRed()) * scale)
	g := uint8(float64(c.GetGreen()) * scale)
	b := uint8(float64(c.GetBlue()) * scale)
	return Color{ARGB: fmt.Sprintf("%02X%02X%02X%02X", c.GetAlpha(), r, g, b)}
}

// parseHexByte parses two hex characters at offset into a uint8.
// Returns 0 on any error (out of range, invalid chars).
func parseHexByte(s string, offset int) uint8 {
	if offset+2 > len(s) {
		return 0
	}
	h := hexVal(s[offset])
	l := hexVal(s[offset+1])
	if h < 0 || l < 0 {
		return 0
	}
	return uint8(h<<4 | l)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}
