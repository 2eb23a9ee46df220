// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/event.go
// Summary: Typed input events produced by the decoder and consumed by applications.
// Usage: Applications switch on the concrete event type in OnEvent.

package input

// Event is the closed set of things the runtime reports to an application:
// key presses, mouse activity, pasted text and terminal resizes. The
// unexported marker keeps the set closed to this package.
type Event interface {
	event()
}

// KeyEvent is a single key press. For plain characters Code is KeyRune and
// Rune holds the character; for named keys Rune is zero.
type KeyEvent struct {
	Code KeyCode
	Rune rune
	Mods KeyModifiers
}

// MouseEvent reports a button press/release, wheel step or drag motion at a
// zero-based cell position.
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Kind   MouseKind
	Mods   KeyModifiers
}

// PasteEvent carries text delivered through bracketed paste as one unit,
// rather than as a storm of key events.
type PasteEvent struct {
	Text string
}

// ResizeEvent reports new terminal dimensions. It is synthesized by the run
// loop from size polling, not decoded from bytes.
type ResizeEvent struct {
	Width, Height int
}

func (KeyEvent) event()    {}
func (MouseEvent) event()  {}
func (PasteEvent) event()  {}
func (ResizeEvent) event() {}
