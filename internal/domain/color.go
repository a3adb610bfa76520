package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA display color
type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
	A uint8 `json:"a" yaml:"a"`
}

// Opaque colors used by the channel display defaults
var (
	Red   = Color{R: 255, A: 255}
	Green = Color{G: 255, A: 255}
	Blue  = Color{B: 255, A: 255}
	White = Color{R: 255, G: 255, B: 255, A: 255}
)

// RGB builds a fully opaque color
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ColorFromInt32 decodes the signed packed RGBA form used in OME-XML
func ColorFromInt32(v int32) Color {
	u := uint32(v)
	return Color{
		R: uint8(u >> 24),
		G: uint8(u >> 16),
		B: uint8(u >> 8),
		A: uint8(u),
	}
}

// Int32 encodes the color in the signed packed RGBA form
func (c Color) Int32() int32 {
	return int32(uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A))
}

// Hex renders #rrggbbaa
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHex accepts #rrggbb or #rrggbbaa, with or without the leading hash.
// Six-digit forms are opaque.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 6:
		h += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return ColorFromInt32(int32(uint32(v))), nil
}
