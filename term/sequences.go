// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/sequences.go
// Summary: Mode-set/reset escape sequences shared by the guard and devices.

package term

const (
	seqCursorHide = "\x1b[?25l"
	seqCursorShow = "\x1b[?25h"

	seqAltScreenOn  = "\x1b[?1049h"
	seqAltScreenOff = "\x1b[?1049l"

	// Button-event tracking plus SGR extended reporting. X10 coordinates
	// top out at column 223; SGR does not.
	seqMouseOn  = "\x1b[?1000;1006h"
	seqMouseOff = "\x1b[?1006;1000l"

	seqPasteOn  = "\x1b[?2004h"
	seqPasteOff = "\x1b[?2004l"
)
