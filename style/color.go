// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: style/color.go
// Summary: Terminal color values across the named, indexed and RGB models.

package style

import "strconv"

// ColorMode discriminates the color variants. The zero value means "not
// set": a style layer with an unset color inherits from the layer beneath,
// and an effective style with an unset color uses the terminal default.
type ColorMode uint8

const (
	ColorUnset ColorMode = iota
	ColorNamed           // 16-color ANSI palette, Value 0-15
	ColorIndexed         // xterm 256-color palette, Value 0-255
	ColorRGB             // 24-bit direct color
)

// Color is a tagged variant. Two colors are equal only when mode and
// payload match exactly; there is no implicit ordering or conversion.
type Color struct {
	Mode    ColorMode
	Value   uint8
	R, G, B uint8
}

// The standard ANSI names.
var (
	Black         = Named(0)
	Red           = Named(1)
	Green         = Named(2)
	Yellow        = Named(3)
	Blue          = Named(4)
	Magenta       = Named(5)
	Cyan          = Named(6)
	White         = Named(7)
	BrightBlack   = Named(8)
	BrightRed     = Named(9)
	BrightGreen   = Named(10)
	BrightYellow  = Named(11)
	BrightBlue    = Named(12)
	BrightMagenta = Named(13)
	BrightCyan    = Named(14)
	BrightWhite   = Named(15)
)

// Named returns one of the 16 basic ANSI colors.
func Named(n uint8) Color {
	return Color{Mode: ColorNamed, Value: n & 0x0f}
}

// Indexed returns an xterm 256-palette color.
func Indexed(n uint8) Color {
	return Color{Mode: ColorIndexed, Value: n}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// FromHex parses "#rrggbb" or "rrggbb" into an RGB color.
func FromHex(s string) (Color, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
}

// IsSet reports whether the color carries a value, as opposed to
// inheriting/defaulting.
func (c Color) IsSet() bool {
	return c.Mode != ColorUnset
}
