// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/frame.go
// Summary: The per-pass drawing surface applications write into.
// Usage: The run loop hands a fresh Frame to Application.Draw every cycle.

package render

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/salty-max/briks/style"
)

// Frame wraps the working buffer of one draw pass together with the live
// style stack. A Frame never outlives its pass: the loop diffs its buffer
// and discards it.
type Frame struct {
	buf   *Buffer
	stack *style.Stack
}

func NewFrame(buf *Buffer) *Frame {
	return &Frame{buf: buf, stack: style.NewStack()}
}

// Size returns (columns, rows) of the drawing surface.
func (f *Frame) Size() (int, int) {
	return f.buf.Size()
}

// WriteString draws s starting at (x, y) in the current effective style.
// Text is clipped at the right edge. Double-width runes occupy two cells;
// one that would straddle the edge is clipped entirely.
func (f *Frame) WriteString(x, y int, s string) {
	st := f.stack.Effective()
	w, _ := f.buf.Size()
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		f.buf.Set(x, y, Cell{Rune: r, Style: st})
		if rw == 2 {
			f.buf.Set(x+1, y, Cell{Rune: 0, Style: st})
		}
		x += rw
	}
}

// Fill floods the whole frame with r in the current effective style.
func (f *Frame) Fill(r rune) {
	f.buf.Fill(Cell{Rune: r, Style: f.stack.Effective()})
}

// WithStyle layers st for the duration of fn. The pop happens on the way
// out even if fn panics, so the push/pop pairing cannot be broken by
// application code.
func (f *Frame) WithStyle(st style.Style, fn func(*Frame)) {
	f.stack.Push(st)
	defer f.stack.Pop()
	fn(f)
}

// Buffer exposes the underlying grid to the renderer.
func (f *Frame) Buffer() *Buffer {
	return f.buf
}
