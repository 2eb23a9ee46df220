// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/tty.go
// Summary: Real-device implementation of Device on top of /dev/tty.
// Usage: Opened by the run loop when no device override is supplied.

package term

import (
	"fmt"
	"os"
	"time"

	xterm "golang.org/x/term"
)

// TTY drives a real terminal through its controlling tty. Raw mode is
// reference counted so nested EnterRaw/LeaveRaw pairs are safe, and the
// original termios state is kept around until the outermost LeaveRaw.
type TTY struct {
	f        *os.File
	fd       int
	saved    *xterm.State
	rawDepth int
	ownsFile bool
}

// OpenTTY opens /dev/tty directly rather than relying on stdin/stdout, so
// the UI still works when the standard streams are redirected.
func OpenTTY() (*TTY, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("term: open /dev/tty: %w", err)
	}
	t, err := NewTTY(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	t.ownsFile = true
	return t, nil
}

// NewTTY wraps an already-open terminal file, typically the slave end of a
// pty in tests. The caller keeps ownership of the file.
func NewTTY(f *os.File) (*TTY, error) {
	fd := int(f.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	return &TTY{f: f, fd: fd}, nil
}

func (t *TTY) EnterRaw() error {
	if t.rawDepth == 0 {
		state, err := xterm.MakeRaw(t.fd)
		if err != nil {
			return fmt.Errorf("term: enter raw mode: %w", err)
		}
		t.saved = state
	}
	t.rawDepth++
	return nil
}

func (t *TTY) LeaveRaw() error {
	if t.rawDepth == 0 {
		return nil
	}
	t.rawDepth--
	if t.rawDepth > 0 {
		return nil
	}
	err := xterm.Restore(t.fd, t.saved)
	t.saved = nil
	if err != nil {
		return fmt.Errorf("term: restore terminal state: %w", err)
	}
	return nil
}

func (t *TTY) HideCursor() error {
	_, err := t.Write([]byte(seqCursorHide))
	return err
}

func (t *TTY) ShowCursor() error {
	_, err := t.Write([]byte(seqCursorShow))
	return err
}

func (t *TTY) Size() (int, int, error) {
	cols, rows, err := xterm.GetSize(t.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("term: query size: %w", err)
	}
	return cols, rows, nil
}

// Read blocks until bytes arrive or the timeout elapses. The deadline-based
// approach keeps the read interruptible without a reader goroutine.
func (t *TTY) Read(p []byte, timeout time.Duration) (int, error) {
	if timeout > 0 {
		if err := t.f.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return 0, fmt.Errorf("term: set read deadline: %w", err)
		}
		defer t.f.SetReadDeadline(time.Time{})
	}
	n, err := t.f.Read(p)
	if err != nil {
		if os.IsTimeout(err) {
			return 0, ErrNoData
		}
		return 0, fmt.Errorf("term: read: %w", err)
	}
	return n, nil
}

func (t *TTY) Write(p []byte) (int, error) {
	n, err := t.f.Write(p)
	if err != nil {
		return n, fmt.Errorf("term: write: %w", err)
	}
	return n, nil
}

// Close restores raw mode if still active and closes the file when this TTY
// opened it.
func (t *TTY) Close() error {
	if t.rawDepth > 0 {
		t.rawDepth = 1
		if err := t.LeaveRaw(); err != nil {
			return err
		}
	}
	if t.ownsFile {
		return t.f.Close()
	}
	return nil
}
