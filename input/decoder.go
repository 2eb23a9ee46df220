// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/decoder.go
// Summary: Resumable byte-stream state machine turning raw terminal bytes into events.
// Usage: The run loop feeds it every read and expires the ESC window on timeouts.

package input

import (
	"bytes"
	"time"
	"unicode/utf8"
)

const pasteEnd = "\x1b[201~"

// Decoder converts the raw byte stream of a terminal in raw mode into
// events. It is stateful and tied to one session: escape sequences and
// UTF-8 characters may arrive split across reads, so undecoded bytes stay
// buffered between calls. A lone ESC cannot be distinguished from the start
// of a sequence until either more bytes arrive or a timeout passes; the
// timestamp of the pending ESC is kept so the caller can expire it.
type Decoder struct {
	buf       []byte
	pendingAt time.Time
	inPaste   bool
	pasteBuf  []byte

	now func() time.Time // clock hook for tests
}

func NewDecoder() *Decoder {
	return &Decoder{now: time.Now}
}

// Feed appends bytes from a read and returns every event that resolves.
// Incomplete tails stay buffered for the next call.
func (d *Decoder) Feed(p []byte) []Event {
	d.buf = append(d.buf, p...)
	return d.drain()
}

// Pending reports whether the decoder is holding a lone ESC waiting for the
// disambiguation window. The loop shortens its read timeout accordingly.
func (d *Decoder) Pending() bool {
	return !d.pendingAt.IsZero()
}

// ExpireTimeout resolves a pending ESC once the disambiguation window has
// passed without a continuation: the ESC is emitted as a key press and any
// bytes after it are re-decoded as ordinary input.
func (d *Decoder) ExpireTimeout(timeout time.Duration) []Event {
	if d.pendingAt.IsZero() || d.now().Sub(d.pendingAt) < timeout {
		return nil
	}
	d.pendingAt = time.Time{}
	if len(d.buf) == 0 || d.buf[0] != 0x1b {
		return nil
	}
	d.buf = d.buf[1:]
	events := []Event{key(KeyEsc)}
	return append(events, d.drain()...)
}

// drain decodes from the front of the buffer until it empties or an
// incomplete sequence blocks progress.
func (d *Decoder) drain() []Event {
	var events []Event
	for len(d.buf) > 0 {
		if d.inPaste {
			ev, blocked := d.drainPaste()
			if ev != nil {
				events = append(events, ev)
			}
			if blocked {
				break
			}
			continue
		}

		if d.buf[0] == 0x1b {
			evs, n, complete := d.parseEscape()
			if !complete {
				if d.pendingAt.IsZero() {
					d.pendingAt = d.now()
				}
				return events
			}
			d.pendingAt = time.Time{}
			d.buf = d.buf[n:]
			events = append(events, evs...)
			continue
		}

		d.pendingAt = time.Time{}
		ev, n, complete := d.parsePlain()
		if !complete {
			return events
		}
		d.buf = d.buf[n:]
		if ev != nil {
			events = append(events, ev)
		}
	}
	if len(d.buf) == 0 {
		d.pendingAt = time.Time{}
	}
	return events
}

// drainPaste accumulates bytes until the bracketed-paste terminator.
// It returns blocked=true when it must wait for more input.
func (d *Decoder) drainPaste() (Event, bool) {
	if i := bytes.Index(d.buf, []byte(pasteEnd)); i >= 0 {
		d.pasteBuf = append(d.pasteBuf, d.buf[:i]...)
		d.buf = d.buf[i+len(pasteEnd):]
		d.inPaste = false
		text := string(d.pasteBuf)
		d.pasteBuf = nil
		return PasteEvent{Text: text}, false
	}

	// Keep any trailing partial terminator, consume the rest.
	keep := 0
	for k := min(len(pasteEnd)-1, len(d.buf)); k > 0; k-- {
		if bytes.HasSuffix(d.buf, []byte(pasteEnd[:k])) {
			keep = k
			break
		}
	}
	cut := len(d.buf) - keep
	d.pasteBuf = append(d.pasteBuf, d.buf[:cut]...)
	d.buf = d.buf[cut:]
	return nil, true
}

// parsePlain handles everything that does not start with ESC: control bytes
// and UTF-8 text.
func (d *Decoder) parsePlain() (Event, int, bool) {
	b := d.buf[0]
	switch b {
	case '\r', '\n':
		return key(KeyEnter), 1, true
	case '\t':
		return key(KeyTab), 1, true
	case 0x7f, 0x08:
		return key(KeyBackspace), 1, true
	case 0x00:
		return nil, 1, true
	}
	if b < 0x20 {
		if b >= 0x01 && b <= 0x1a {
			return KeyEvent{Code: KeyRune, Rune: rune('a' + b - 1), Mods: ModCtrl}, 1, true
		}
		// FS/GS/RS/US: nothing sensible to report.
		return nil, 1, true
	}

	w := utf8ByteWidth(b)
	if w == 0 {
		// Stray continuation byte; drop it and resync on the next one.
		return nil, 1, true
	}
	if len(d.buf) < w {
		return nil, 0, false
	}
	for j := 1; j < w; j++ {
		if d.buf[j]&0xc0 != 0x80 {
			// Invalid continuation aborts the pending codepoint; the
			// lead byte is dropped and the rest is reinterpreted from
			// scratch, so no byte is silently swallowed.
			return nil, 1, true
		}
	}
	r, _ := utf8.DecodeRune(d.buf[:w])
	if r == utf8.RuneError {
		return nil, 1, true
	}
	return keyRune(r), w, true
}

// parseEscape handles ESC-introduced input: CSI and SS3 sequences, Alt
// chords and the ESC key itself. It never consumes bytes it cannot
// attribute to the sequence.
func (d *Decoder) parseEscape() ([]Event, int, bool) {
	if len(d.buf) < 2 {
		return nil, 0, false
	}
	switch d.buf[1] {
	case '[':
		return d.parseCSI()
	case 'O':
		return d.parseSS3()
	case 0x1b:
		// ESC ESC: resolve the first immediately, re-enter for the second.
		return []Event{key(KeyEsc)}, 1, true
	}

	// ESC <byte> inside the window is an Alt chord.
	b := d.buf[1]
	if b < 0x20 || b == 0x7f {
		return nil, 2, true
	}
	w := utf8ByteWidth(b)
	if w == 0 {
		return nil, 2, true
	}
	if len(d.buf) < 1+w {
		return nil, 0, false
	}
	r, _ := utf8.DecodeRune(d.buf[1 : 1+w])
	if r == utf8.RuneError {
		return nil, 2, true
	}
	return []Event{KeyEvent{Code: KeyRune, Rune: r, Mods: ModAlt}}, 1 + w, true
}

func (d *Decoder) parseSS3() ([]Event, int, bool) {
	if len(d.buf) < 3 {
		return nil, 0, false
	}
	var code KeyCode
	switch d.buf[2] {
	case 'A':
		code = KeyUp
	case 'B':
		code = KeyDown
	case 'C':
		code = KeyRight
	case 'D':
		code = KeyLeft
	case 'H':
		code = KeyHome
	case 'F':
		code = KeyEnd
	case 'P':
		code = KeyF1
	case 'Q':
		code = KeyF2
	case 'R':
		code = KeyF3
	case 'S':
		code = KeyF4
	default:
		return nil, 3, true
	}
	return []Event{key(code)}, 3, true
}

// parseCSI scans ESC [ params intermediates final. The scan consumes
// exactly the bytes of the sequence whether or not it is recognized, so a
// malformed sequence never corrupts what follows it.
func (d *Decoder) parseCSI() ([]Event, int, bool) {
	private := byte(0)
	params := []int{}
	cur, curSet := 0, false
	i := 2
	for ; i < len(d.buf); i++ {
		b := d.buf[i]
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			curSet = true
		case b == ';':
			params = append(params, cur)
			cur, curSet = 0, false
		case b == '<' || b == '>' || b == '?' || b == '=':
			private = b
		case b >= 0x20 && b <= 0x2f:
			// Intermediate bytes; nothing we decode uses them.
		case b >= 0x40 && b <= 0x7e:
			if curSet || len(params) > 0 {
				params = append(params, cur)
			}
			return d.finishCSI(b, private, params, i+1)
		default:
			// Byte that cannot belong to a CSI sequence: treat the
			// sequence as malformed and drop what we scanned.
			return nil, i, true
		}
	}
	return nil, 0, false
}

func (d *Decoder) finishCSI(final, private byte, params []int, n int) ([]Event, int, bool) {
	param := func(i, def int) int {
		if i < len(params) && params[i] != 0 {
			return params[i]
		}
		return def
	}

	if private == '<' && (final == 'M' || final == 'm') {
		if len(params) < 3 {
			return nil, n, true
		}
		button, kind, mods := decodeMouseButton(params[0])
		if final == 'm' {
			kind = MouseRelease
		}
		return []Event{MouseEvent{
			X:      params[1] - 1,
			Y:      params[2] - 1,
			Button: button,
			Kind:   kind,
			Mods:   mods,
		}}, n, true
	}
	if private != 0 {
		// Other private sequences (mode reports, device attributes) are
		// responses we did not ask for; drop them whole.
		return nil, n, true
	}

	switch final {
	case 'A', 'B', 'C', 'D', 'H', 'F':
		mods := modsFromParam(param(1, 1))
		code := map[byte]KeyCode{
			'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
			'H': KeyHome, 'F': KeyEnd,
		}[final]
		return []Event{KeyEvent{Code: code, Mods: mods}}, n, true

	case 'Z':
		return []Event{KeyEvent{Code: KeyTab, Mods: ModShift}}, n, true

	case 'M':
		// Legacy X10 mouse: three raw bytes follow the sequence.
		if len(d.buf) < n+3 {
			return nil, 0, false
		}
		button, kind, mods := decodeMouseButton(int(d.buf[n]) - 32)
		return []Event{MouseEvent{
			X:      int(d.buf[n+1]) - 33,
			Y:      int(d.buf[n+2]) - 33,
			Button: button,
			Kind:   kind,
			Mods:   mods,
		}}, n + 3, true

	case '~':
		mods := modsFromParam(param(1, 1))
		switch param(0, 0) {
		case 1, 7:
			return []Event{KeyEvent{Code: KeyHome, Mods: mods}}, n, true
		case 2:
			return []Event{KeyEvent{Code: KeyInsert, Mods: mods}}, n, true
		case 3:
			return []Event{KeyEvent{Code: KeyDelete, Mods: mods}}, n, true
		case 4, 8:
			return []Event{KeyEvent{Code: KeyEnd, Mods: mods}}, n, true
		case 5:
			return []Event{KeyEvent{Code: KeyPgUp, Mods: mods}}, n, true
		case 6:
			return []Event{KeyEvent{Code: KeyPgDn, Mods: mods}}, n, true
		case 11, 12, 13, 14, 15:
			return []Event{key(KeyF1 + KeyCode(param(0, 0)-11))}, n, true
		case 17, 18, 19, 20, 21:
			return []Event{key(KeyF6 + KeyCode(param(0, 0)-17))}, n, true
		case 23, 24:
			return []Event{key(KeyF11 + KeyCode(param(0, 0)-23))}, n, true
		case 200:
			d.inPaste = true
			return nil, n, true
		case 201:
			// Stray paste terminator without a start marker.
			return nil, n, true
		}
		return nil, n, true
	}

	// Recognized shape, unknown meaning: consume and drop.
	return nil, n, true
}

// modsFromParam decodes the xterm modifier parameter (value minus one is a
// bitset: 1 shift, 2 alt, 4 ctrl).
func modsFromParam(p int) KeyModifiers {
	if p <= 1 {
		return 0
	}
	bits := p - 1
	var mods KeyModifiers
	if bits&1 != 0 {
		mods |= ModShift
	}
	if bits&2 != 0 {
		mods |= ModAlt
	}
	if bits&4 != 0 {
		mods |= ModCtrl
	}
	return mods
}

// utf8ByteWidth returns the encoded length a UTF-8 lead byte declares, or
// zero for bytes that cannot start a character.
func utf8ByteWidth(b byte) int {
	switch {
	case b&0x80 == 0:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	default:
		return 0
	}
}
