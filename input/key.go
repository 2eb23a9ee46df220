// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/key.go
// Summary: Key codes and keyboard modifier bits.

package input

import "strings"

// KeyCode identifies which key was pressed. KeyRune means "a character";
// the character itself travels in KeyEvent.Rune.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyDelete
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyModifiers is the set of modifier keys held during an input event.
// This is a keyboard concept; text attributes live in the style package and
// the two must not be conflated.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota
	ModAlt
	ModCtrl
)

// Contains reports whether every modifier in m is set.
func (k KeyModifiers) Contains(m KeyModifiers) bool {
	return k&m == m
}

func (k KeyModifiers) String() string {
	var parts []string
	if k.Contains(ModShift) {
		parts = append(parts, "shift")
	}
	if k.Contains(ModAlt) {
		parts = append(parts, "alt")
	}
	if k.Contains(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// key builds a plain named-key event.
func key(code KeyCode) KeyEvent {
	return KeyEvent{Code: code}
}

// keyRune builds a character event.
func keyRune(r rune) KeyEvent {
	return KeyEvent{Code: KeyRune, Rune: r}
}
