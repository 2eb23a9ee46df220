// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/mouse.go
// Summary: Mouse buttons, event kinds and the shared button-code decoding.

package input

// MouseButton identifies which button an event refers to.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	WheelUp
	WheelDown
)

// MouseKind distinguishes presses, releases and drag motion.
type MouseKind int

const (
	MousePress MouseKind = iota
	MouseRelease
	MouseMotion
)

// decodeMouseButton unpacks the xterm button code shared by the X10 and SGR
// protocols: low two bits select the button, bit 5 marks motion, bit 6 marks
// the wheel, bits 2-4 carry shift/meta/ctrl.
func decodeMouseButton(code int) (MouseButton, MouseKind, KeyModifiers) {
	var mods KeyModifiers
	if code&4 != 0 {
		mods |= ModShift
	}
	if code&8 != 0 {
		mods |= ModAlt
	}
	if code&16 != 0 {
		mods |= ModCtrl
	}

	if code&64 != 0 {
		if code&1 != 0 {
			return WheelDown, MousePress, mods
		}
		return WheelUp, MousePress, mods
	}

	kind := MousePress
	if code&32 != 0 {
		kind = MouseMotion
	}

	switch code & 3 {
	case 0:
		return ButtonLeft, kind, mods
	case 1:
		return ButtonMiddle, kind, mods
	case 2:
		return ButtonRight, kind, mods
	default:
		// 3 is "release" in the X10 encoding, which does not say which
		// button went up.
		return ButtonNone, MouseRelease, mods
	}
}
