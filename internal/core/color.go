package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA colour shared by the drawing surfaces and the
// terminal screen buffer.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors for game elements.
var (
	ColorNone  = Color{}
	ColorBlack = RGB(0x00, 0x00, 0x00)
	ColorWhite = RGB(0xff, 0xff, 0xff)
	ColorRed   = RGB(0xff, 0x00, 0x00)
)

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or one of the few named
// colours the game uses ("black", "white", "red").
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return ColorBlack, nil
	case "white":
		return ColorWhite, nil
	case "red":
		return ColorRed, nil
	}

	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Hex formats the colour as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsZero reports whether c is the unset colour.
func (c Color) IsZero() bool {
	return c == ColorNone
}

// RGBA converts to the standard library colour type.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any image colour to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
