// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/device.go
// Summary: Defines the terminal device abstraction the rest of the runtime renders through.
// Usage: Implemented by TTY for real terminals and MemDevice for tests.

package term

import (
	"errors"
	"time"
)

var (
	// ErrNoData is returned by Read when the timeout elapses before any
	// bytes arrive. It is not a failure; callers poll again.
	ErrNoData = errors.New("term: no data")

	// ErrNotTerminal is returned when the underlying file descriptor does
	// not refer to a terminal device.
	ErrNotTerminal = errors.New("term: not a terminal")
)

// Device abstracts the terminal the runtime talks to. There are exactly two
// implementations: TTY for a real device and MemDevice for tests. Everything
// above this interface is deterministic.
type Device interface {
	// EnterRaw switches the device to raw mode (no echo, no line
	// buffering). Calls nest: each EnterRaw must be matched by a LeaveRaw
	// and only the outermost pair touches the device.
	EnterRaw() error

	// LeaveRaw undoes one EnterRaw. Calling it with no raw mode active is
	// a no-op, never an error.
	LeaveRaw() error

	HideCursor() error
	ShowCursor() error

	// Size reports the current dimensions in cells (columns, rows).
	Size() (cols, rows int, err error)

	// Read fills p with whatever bytes are available, blocking up to
	// timeout. A zero timeout blocks until data arrives. When the timeout
	// elapses first the error is ErrNoData.
	Read(p []byte, timeout time.Duration) (int, error)

	// Write sends bytes to the device. A write failure (broken pipe,
	// closed device) is fatal for the session.
	Write(p []byte) (int, error)
}
