// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/renderer.go
// Summary: Diffs the new frame against the previous screen and writes the minimal update.
// Usage: One Renderer per session; it owns the authoritative previous-screen grid.

package render

import (
	"errors"
	"fmt"
	"unicode/utf8"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/salty-max/briks/style"
	"github.com/salty-max/briks/term"
)

// ErrDesync marks a render pass that failed mid-emission. The screen and
// the stored previous grid can no longer be trusted to agree, so the next
// successful pass repaints everything.
var ErrDesync = errors.New("render: screen desynchronized")

// Renderer turns cell-grid differences into terminal bytes. It owns the
// one authoritative copy of what the screen currently shows; frames come
// and go, their grids replacing the stored one wholesale after each
// successful write.
type Renderer struct {
	dev  term.Device
	caps term.Capabilities

	prev  *Buffer
	force bool
	last  style.Style // SGR state the terminal was left in
	out   []byte      // reused emission buffer
}

func NewRenderer(dev term.Device, caps term.Capabilities) *Renderer {
	return &Renderer{dev: dev, caps: caps}
}

// Invalidate forces the next render to repaint every cell.
func (r *Renderer) Invalidate() {
	r.force = true
}

// Render emits the difference between cur and the previous grid, then takes
// ownership of cur as the new previous grid. The swap happens only after
// the write succeeds; on failure the old grid is kept and the pass is
// reported as a desync so the next frame repaints fully.
//
// A frame identical to the previous one writes zero bytes.
func (r *Renderer) Render(cur *Buffer) error {
	cw, ch := cur.Size()
	full := r.force || r.prev == nil
	if !full {
		pw, ph := r.prev.Size()
		full = pw != cw || ph != ch
	}

	out := r.out[:0]
	// The terminal keeps whatever SGR attributes the previous pass last
	// emitted, so style state carries across passes. Cursor position does
	// not: it starts unknown every pass.
	last := r.last
	if full {
		out = append(out, "\x1b[0m"...)
		last = style.Style{}
	}
	cx, cy := -1, -1

	for y := 0; y < ch; y++ {
		x := 0
		for x < cw {
			if !full && cur.At(x, y) == r.prev.At(x, y) {
				x++
				continue
			}

			start := x
			// Never start emission on the shadow half of a wide rune.
			if cur.At(start, y).Rune == 0 && start > 0 {
				start--
			}
			end := x + 1
			for end < cw && (full || cur.At(end, y) != r.prev.At(end, y)) {
				end++
			}

			if cx != start || cy != y {
				out = appendCUP(out, start, y)
				cx, cy = start, y
			}
			for i := start; i < end; i++ {
				c := cur.At(i, y)
				if c.Rune == 0 {
					continue // covered by the wide rune before it
				}
				st := r.normalize(c.Style)
				if st != last {
					out = appendSGRTransition(out, last, st)
					last = st
				}
				out = utf8.AppendRune(out, c.Rune)
				cx += runewidth.RuneWidth(c.Rune)
			}
			x = end
		}
	}
	r.out = out[:0]

	if len(out) == 0 && !full {
		// Nothing changed; still adopt cur so the caller's frame can be
		// discarded either way.
		r.prev = cur
		return nil
	}

	if _, err := r.dev.Write(out); err != nil {
		// How much of the emission reached the terminal is unknown; the
		// forced repaint starts from a fresh reset, so the stale style
		// record does not matter.
		r.force = true
		return fmt.Errorf("%w: %v", ErrDesync, err)
	}
	r.prev = cur
	r.last = last
	r.force = false
	return nil
}

func (r *Renderer) normalize(st style.Style) style.Style {
	st.FG = style.Downsample(st.FG, r.caps.Colors)
	st.BG = style.Downsample(st.BG, r.caps.Colors)
	return st
}
