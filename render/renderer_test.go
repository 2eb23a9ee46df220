// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/renderer_test.go

package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/salty-max/briks/style"
	"github.com/salty-max/briks/term"
)

func newTestRenderer(cols, rows int) (*Renderer, *term.MemDevice) {
	dev := term.NewMemDevice(cols, rows)
	r := NewRenderer(dev, term.Capabilities{Colors: term.ColorTrue})
	return r, dev
}

func textBuffer(cols, rows int, lines ...string) *Buffer {
	b := NewBuffer(cols, rows)
	f := NewFrame(b)
	for y, line := range lines {
		f.WriteString(0, y, line)
	}
	return b
}

func TestRenderFirstFrameIsFullRepaint(t *testing.T) {
	r, dev := newTestRenderer(4, 2)
	if err := r.Render(NewBuffer(4, 2)); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[0m\x1b[1;1H    \x1b[2;1H    "
	if got := string(dev.Output()); got != want {
		t.Fatalf("first frame = %q, want %q", got, want)
	}
}

func TestRenderIdenticalFrameWritesNothing(t *testing.T) {
	r, dev := newTestRenderer(10, 1)
	if err := r.Render(textBuffer(10, 1, "hello")); err != nil {
		t.Fatal(err)
	}
	dev.ResetOutput()

	if err := r.Render(textBuffer(10, 1, "hello")); err != nil {
		t.Fatal(err)
	}
	if out := dev.Output(); len(out) != 0 {
		t.Fatalf("identical frame wrote %q, want nothing", out)
	}
}

func TestRenderSingleCellDiff(t *testing.T) {
	r, dev := newTestRenderer(20, 1)
	if err := r.Render(textBuffer(20, 1, "Count: 0")); err != nil {
		t.Fatal(err)
	}
	dev.ResetOutput()

	if err := r.Render(textBuffer(20, 1, "Count: 1")); err != nil {
		t.Fatal(err)
	}
	if got := string(dev.Output()); got != "\x1b[1;8H1" {
		t.Fatalf("diff = %q, want %q", got, "\x1b[1;8H1")
	}
}

func TestRenderCoalescesAdjacentChanges(t *testing.T) {
	r, dev := newTestRenderer(5, 1)
	if err := r.Render(textBuffer(5, 1, "abcde")); err != nil {
		t.Fatal(err)
	}
	dev.ResetOutput()

	if err := r.Render(textBuffer(5, 1, "aXYde")); err != nil {
		t.Fatal(err)
	}
	if got := string(dev.Output()); got != "\x1b[1;2HXY" {
		t.Fatalf("diff = %q, want one run %q", got, "\x1b[1;2HXY")
	}
}

func TestRenderSeparateRunsGetSeparateMoves(t *testing.T) {
	r, dev := newTestRenderer(5, 1)
	if err := r.Render(textBuffer(5, 1, "abcde")); err != nil {
		t.Fatal(err)
	}
	dev.ResetOutput()

	if err := r.Render(textBuffer(5, 1, "XbcYe")); err != nil {
		t.Fatal(err)
	}
	want := "\x1b[1;1HX\x1b[1;4HY"
	if got := string(dev.Output()); got != want {
		t.Fatalf("diff = %q, want %q", got, want)
	}
}

func TestRenderResizeForcesFullRepaint(t *testing.T) {
	r, dev := newTestRenderer(4, 1)
	if err := r.Render(textBuffer(4, 1, "ab")); err != nil {
		t.Fatal(err)
	}
	dev.ResetOutput()

	if err := r.Render(textBuffer(5, 1, "ab")); err != nil {
		t.Fatal(err)
	}
	out := dev.Output()
	if !bytes.HasPrefix(out, []byte("\x1b[0m")) {
		t.Fatalf("resized frame = %q, want a full repaint starting with a reset", out)
	}
}

func TestRenderStyledRunEmitsOneTransition(t *testing.T) {
	r, dev := newTestRenderer(4, 1)

	b := NewBuffer(4, 1)
	f := NewFrame(b)
	f.WithStyle(style.Style{}.Foreground(style.Red).With(style.Bold), func(f *Frame) {
		f.WriteString(0, 0, "AB")
	})
	if err := r.Render(b); err != nil {
		t.Fatal(err)
	}

	want := "\x1b[0m\x1b[1;1H\x1b[1;31mAB\x1b[0m  "
	if got := string(dev.Output()); got != want {
		t.Fatalf("styled frame = %q, want %q", got, want)
	}
}

func TestRenderStyleStateCarriesAcrossPasses(t *testing.T) {
	r, dev := newTestRenderer(2, 1)

	// First pass leaves the terminal with a red foreground active.
	b1 := NewBuffer(2, 1)
	b1.Set(0, 0, Cell{Rune: 'A'})
	b1.Set(1, 0, Cell{Rune: 'B', Style: style.Style{}.Foreground(style.Red)})
	if err := r.Render(b1); err != nil {
		t.Fatal(err)
	}
	if got := string(dev.Output()); got != "\x1b[0m\x1b[1;1HA\x1b[31mB" {
		t.Fatalf("first pass = %q", got)
	}
	dev.ResetOutput()

	// A default-styled change must clear the lingering red, not inherit it.
	b2 := NewBuffer(2, 1)
	b2.Set(0, 0, Cell{Rune: 'C'})
	b2.Set(1, 0, Cell{Rune: 'B', Style: style.Style{}.Foreground(style.Red)})
	if err := r.Render(b2); err != nil {
		t.Fatal(err)
	}
	if got := string(dev.Output()); got != "\x1b[1;1H\x1b[0mC" {
		t.Fatalf("diff = %q, want %q", got, "\x1b[1;1H\x1b[0mC")
	}
}

func TestRenderNoTransitionWhenTerminalAlreadyInStyle(t *testing.T) {
	r, dev := newTestRenderer(2, 1)
	red := style.Style{}.Foreground(style.Red)

	b1 := NewBuffer(2, 1)
	b1.Set(0, 0, Cell{Rune: 'A'})
	b1.Set(1, 0, Cell{Rune: 'B', Style: red})
	if err := r.Render(b1); err != nil {
		t.Fatal(err)
	}
	dev.ResetOutput()

	// The terminal is already red after the previous pass, so a red change
	// needs no SGR at all.
	b2 := NewBuffer(2, 1)
	b2.Set(0, 0, Cell{Rune: 'C', Style: red})
	b2.Set(1, 0, Cell{Rune: 'B', Style: red})
	if err := r.Render(b2); err != nil {
		t.Fatal(err)
	}
	if got := string(dev.Output()); got != "\x1b[1;1HC" {
		t.Fatalf("diff = %q, want %q", got, "\x1b[1;1HC")
	}
}

func TestRenderDownsamplesToDeviceTier(t *testing.T) {
	dev := term.NewMemDevice(2, 1)
	r := NewRenderer(dev, term.Capabilities{Colors: term.Color256})

	b := NewBuffer(2, 1)
	b.Set(0, 0, Cell{Rune: 'R', Style: style.Style{}.Foreground(style.RGB(255, 0, 0))})
	if err := r.Render(b); err != nil {
		t.Fatal(err)
	}

	out := dev.Output()
	if !bytes.Contains(out, []byte("38;5;196")) {
		t.Fatalf("output %q does not use the 256-color palette", out)
	}
	if bytes.Contains(out, []byte("38;2;")) {
		t.Fatalf("output %q leaked direct color past a 256-color device", out)
	}
}

func TestRenderWriteFailureDesyncsAndForcesRepaint(t *testing.T) {
	r, dev := newTestRenderer(4, 1)
	if err := r.Render(textBuffer(4, 1, "ab")); err != nil {
		t.Fatal(err)
	}

	dev.FailWrite = errors.New("broken pipe")
	err := r.Render(textBuffer(4, 1, "cd"))
	if !errors.Is(err, ErrDesync) {
		t.Fatalf("failed write returned %v, want ErrDesync", err)
	}

	// Recovery must repaint everything, even though this frame matches the
	// last grid that was successfully shown.
	dev.FailWrite = nil
	dev.ResetOutput()
	if err := r.Render(textBuffer(4, 1, "ab")); err != nil {
		t.Fatal(err)
	}
	out := dev.Output()
	if !bytes.HasPrefix(out, []byte("\x1b[0m")) || !bytes.Contains(out, []byte("ab")) {
		t.Fatalf("recovery frame = %q, want a full repaint of %q", out, "ab")
	}
}

func TestRenderRunStartingOnShadowCellBacksUp(t *testing.T) {
	r, dev := newTestRenderer(4, 1)

	b1 := NewBuffer(4, 1)
	b1.Set(0, 0, Cell{Rune: '你'})
	b1.Set(1, 0, Cell{Rune: 0})
	if err := r.Render(b1); err != nil {
		t.Fatal(err)
	}
	dev.ResetOutput()

	// Only the shadow half differs; emission must restart at the wide rune
	// that owns it, never in the middle of the glyph.
	b2 := NewBuffer(4, 1)
	b2.Set(0, 0, Cell{Rune: '你'})
	b2.Set(1, 0, Cell{Rune: 0, Style: style.Style{}.With(style.Bold)})
	if err := r.Render(b2); err != nil {
		t.Fatal(err)
	}
	if got := string(dev.Output()); got != "\x1b[1;1H你" {
		t.Fatalf("diff = %q, want %q", got, "\x1b[1;1H你")
	}
}

func TestRenderInvalidate(t *testing.T) {
	r, dev := newTestRenderer(4, 1)
	if err := r.Render(textBuffer(4, 1, "ab")); err != nil {
		t.Fatal(err)
	}
	dev.ResetOutput()

	r.Invalidate()
	if err := r.Render(textBuffer(4, 1, "ab")); err != nil {
		t.Fatal(err)
	}
	if len(dev.Output()) == 0 {
		t.Fatal("invalidated frame wrote nothing, want a full repaint")
	}
}
