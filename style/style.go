// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: style/style.go
// Summary: Style values (colors plus modifier bits) and their override-merge rule.

package style

// Modifier is the bitset of text attributes. It is a rendering concept,
// entirely separate from keyboard modifiers in the input package.
type Modifier uint8

const (
	Bold Modifier = 1 << iota
	Dim
	Italic
	Underline
	Reverse
)

// Contains reports whether every bit in m is set.
func (mod Modifier) Contains(m Modifier) bool {
	return mod&m == m
}

// Style bundles an optional foreground, optional background and a modifier
// set. The zero value sets nothing and inherits everything.
type Style struct {
	FG   Color
	BG   Color
	Mods Modifier
}

// Foreground returns a copy with the foreground set.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns a copy with the background set.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// With returns a copy with the given modifiers added.
func (s Style) With(m Modifier) Style {
	s.Mods |= m
	return s
}

// Merge layers over on top of s: colors override only when over sets them,
// modifiers accumulate. This is the one composition rule the whole styling
// model uses.
func (s Style) Merge(over Style) Style {
	if over.FG.IsSet() {
		s.FG = over.FG
	}
	if over.BG.IsSet() {
		s.BG = over.BG
	}
	s.Mods |= over.Mods
	return s
}
