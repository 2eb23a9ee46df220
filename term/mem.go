// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/mem.go
// Summary: In-memory Device double with scripted input and a recorded call log.
// Usage: Backs the unit tests for the decoder, renderer and run loop.

package term

import (
	"bytes"
	"fmt"
	"time"
)

// MemDevice is the test double for Device. Input is scripted with PushInput,
// everything written is captured, and every call is recorded so tests can
// assert on lifecycle ordering (raw mode pairing, cursor restore).
type MemDevice struct {
	cols, rows int
	input      []byte
	output     bytes.Buffer
	calls      []string
	rawDepth   int

	// FailWrite, when set, is returned by every subsequent Write.
	FailWrite error
	// FailEnterRaw, when set, is returned by EnterRaw.
	FailEnterRaw error
	// FailSize, when set, is returned by Size.
	FailSize error
}

func NewMemDevice(cols, rows int) *MemDevice {
	return &MemDevice{cols: cols, rows: rows}
}

// PushInput appends bytes to the scripted input stream.
func (m *MemDevice) PushInput(p []byte) {
	m.input = append(m.input, p...)
}

// SetSize changes the reported dimensions, simulating a window resize.
func (m *MemDevice) SetSize(cols, rows int) {
	m.cols, m.rows = cols, rows
}

// Output returns everything written so far.
func (m *MemDevice) Output() []byte {
	return m.output.Bytes()
}

// ResetOutput discards captured output, keeping the call log.
func (m *MemDevice) ResetOutput() {
	m.output.Reset()
}

// Calls returns the recorded call log in order.
func (m *MemDevice) Calls() []string {
	return m.calls
}

// CallCount counts recorded calls with the given name.
func (m *MemDevice) CallCount(name string) int {
	n := 0
	for _, c := range m.calls {
		if c == name {
			n++
		}
	}
	return n
}

// RawDepth exposes the raw-mode nesting level for assertions.
func (m *MemDevice) RawDepth() int {
	return m.rawDepth
}

func (m *MemDevice) record(name string) {
	m.calls = append(m.calls, name)
}

func (m *MemDevice) EnterRaw() error {
	m.record("EnterRaw")
	if m.FailEnterRaw != nil {
		return m.FailEnterRaw
	}
	m.rawDepth++
	return nil
}

func (m *MemDevice) LeaveRaw() error {
	m.record("LeaveRaw")
	if m.rawDepth > 0 {
		m.rawDepth--
	}
	return nil
}

func (m *MemDevice) HideCursor() error {
	m.record("HideCursor")
	m.output.WriteString(seqCursorHide)
	return nil
}

func (m *MemDevice) ShowCursor() error {
	m.record("ShowCursor")
	m.output.WriteString(seqCursorShow)
	return nil
}

func (m *MemDevice) Size() (int, int, error) {
	m.record("Size")
	if m.FailSize != nil {
		return 0, 0, m.FailSize
	}
	return m.cols, m.rows, nil
}

// Read drains the scripted input. An empty queue reports ErrNoData
// immediately rather than sleeping out the timeout; tests should not wait.
func (m *MemDevice) Read(p []byte, timeout time.Duration) (int, error) {
	m.record("Read")
	if len(m.input) == 0 {
		return 0, ErrNoData
	}
	n := copy(p, m.input)
	m.input = m.input[n:]
	return n, nil
}

func (m *MemDevice) Write(p []byte) (int, error) {
	m.record(fmt.Sprintf("Write(%d)", len(p)))
	if m.FailWrite != nil {
		return 0, m.FailWrite
	}
	m.output.Write(p)
	return len(p), nil
}
