// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/sgr.go
// Summary: Appends cursor-position and SGR byte sequences for the differ.

package render

import (
	"strconv"

	"github.com/salty-max/briks/style"
)

// appendCUP appends a cursor-position sequence for zero-based (x, y).
func appendCUP(b []byte, x, y int) []byte {
	b = append(b, 0x1b, '[')
	b = strconv.AppendInt(b, int64(y+1), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(x+1), 10)
	return append(b, 'H')
}

// appendSGRTransition appends the attribute changes taking the terminal
// from style `from` to style `to`. Attributes and colors can only be added
// incrementally; when something must be *removed* the whole state is reset
// and rebuilt, which is how every terminal program does it since SGR has no
// "remove one attribute" that is portable.
//
// Both styles must already be downsampled to the device tier so the
// comparison matches what was actually emitted.
func appendSGRTransition(b []byte, from, to style.Style) []byte {
	if from == to {
		return b
	}

	needReset := from.Mods&^to.Mods != 0 ||
		(from.FG.IsSet() && !to.FG.IsSet()) ||
		(from.BG.IsSet() && !to.BG.IsSet())
	var params []string
	if needReset {
		params = append(params, "0")
		from = style.Style{}
	}

	add := to.Mods &^ from.Mods
	if add.Contains(style.Bold) {
		params = append(params, "1")
	}
	if add.Contains(style.Dim) {
		params = append(params, "2")
	}
	if add.Contains(style.Italic) {
		params = append(params, "3")
	}
	if add.Contains(style.Underline) {
		params = append(params, "4")
	}
	if add.Contains(style.Reverse) {
		params = append(params, "7")
	}

	if to.FG != from.FG {
		params = append(params, colorParams(to.FG, false)...)
	}
	if to.BG != from.BG {
		params = append(params, colorParams(to.BG, true)...)
	}

	if len(params) == 0 {
		return b
	}
	b = append(b, 0x1b, '[')
	for i, p := range params {
		if i > 0 {
			b = append(b, ';')
		}
		b = append(b, p...)
	}
	return append(b, 'm')
}

func colorParams(c style.Color, background bool) []string {
	switch c.Mode {
	case style.ColorNamed:
		n := int(c.Value)
		base := 30
		if n >= 8 {
			base, n = 90, n-8
		}
		if background {
			base += 10
		}
		return []string{strconv.Itoa(base + n)}
	case style.ColorIndexed:
		intro := "38"
		if background {
			intro = "48"
		}
		return []string{intro, "5", strconv.Itoa(int(c.Value))}
	case style.ColorRGB:
		intro := "38"
		if background {
			intro = "48"
		}
		return []string{intro, "2",
			strconv.Itoa(int(c.R)), strconv.Itoa(int(c.G)), strconv.Itoa(int(c.B))}
	default:
		// Unset means the terminal default.
		if background {
			return []string{"49"}
		}
		return []string{"39"}
	}
}
