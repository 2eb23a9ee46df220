// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/guard.go
// Summary: Scoped acquisition of the terminal: raw mode, alt screen, cursor and mouse modes.
// Usage: The run loop acquires a Guard at startup and defers Restore so every exit path unwinds it.

package term

import "fmt"

// Modes selects the optional terminal modes a Guard negotiates on top of raw
// mode and cursor hiding.
type Modes struct {
	AltScreen      bool
	Mouse          bool
	BracketedPaste bool
}

// Guard owns the terminal session state. Acquire sets everything up,
// Restore tears it down in reverse order. Restore is idempotent, so it is
// safe to both defer it and call it explicitly. Each flag records a step
// that actually succeeded; Restore only undoes those.
type Guard struct {
	dev          Device
	raw          bool
	altScreen    bool
	cursorHidden bool
	mouse        bool
	paste        bool
	restored     bool
}

// Acquire enters raw mode, switches modes per the request and hides the
// cursor. On any failure it unwinds whatever it had already done before
// returning the error, leaving the terminal untouched.
func Acquire(dev Device, modes Modes) (*Guard, error) {
	g := &Guard{dev: dev}

	fail := func(err error) (*Guard, error) {
		g.Restore()
		return nil, err
	}

	if err := dev.EnterRaw(); err != nil {
		return nil, err
	}
	g.raw = true

	if modes.AltScreen {
		if _, err := dev.Write([]byte(seqAltScreenOn)); err != nil {
			return fail(fmt.Errorf("term: enable alt screen: %w", err))
		}
		g.altScreen = true
	}
	if err := dev.HideCursor(); err != nil {
		return fail(err)
	}
	g.cursorHidden = true

	if modes.Mouse {
		if _, err := dev.Write([]byte(seqMouseOn)); err != nil {
			return fail(fmt.Errorf("term: enable mouse reporting: %w", err))
		}
		g.mouse = true
	}
	if modes.BracketedPaste {
		if _, err := dev.Write([]byte(seqPasteOn)); err != nil {
			return fail(fmt.Errorf("term: enable bracketed paste: %w", err))
		}
		g.paste = true
	}
	return g, nil
}

// Restore reverses Acquire in reverse order. Every step runs even if an
// earlier one fails; the first error is reported. Raw mode is left last so
// the restore sequences themselves go out while the device is still usable.
func (g *Guard) Restore() error {
	if g.restored {
		return nil
	}
	g.restored = true

	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}

	if g.paste {
		_, err := g.dev.Write([]byte(seqPasteOff))
		keep(err)
	}
	if g.mouse {
		_, err := g.dev.Write([]byte(seqMouseOff))
		keep(err)
	}
	if g.cursorHidden {
		keep(g.dev.ShowCursor())
	}
	if g.altScreen {
		_, err := g.dev.Write([]byte(seqAltScreenOff))
		keep(err)
	}
	if g.raw {
		keep(g.dev.LeaveRaw())
	}
	return first
}
