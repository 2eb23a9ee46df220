// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/buffer_test.go

package render

import (
	"testing"

	"github.com/salty-max/briks/style"
)

func TestBufferStartsBlank(t *testing.T) {
	b := NewBuffer(3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := b.At(x, y); got != blank {
				t.Fatalf("cell (%d,%d) = %+v, want blank", x, y, got)
			}
		}
	}
}

func TestBufferSetAtClip(t *testing.T) {
	b := NewBuffer(3, 2)
	c := Cell{Rune: 'x'}

	b.Set(-1, 0, c)
	b.Set(0, -1, c)
	b.Set(3, 0, c)
	b.Set(0, 2, c)
	if got := b.At(0, 0); got != blank {
		t.Fatalf("out-of-bounds Set leaked into the grid: %+v", got)
	}

	if got := b.At(5, 5); got != blank {
		t.Fatalf("out-of-bounds At = %+v, want blank", got)
	}

	b.Set(2, 1, c)
	if got := b.At(2, 1); got != c {
		t.Fatalf("At(2,1) = %+v, want %+v", got, c)
	}
}

func TestBufferResizePreservesOverlap(t *testing.T) {
	b := NewBuffer(4, 3)
	kept := Cell{Rune: 'k', Style: style.Style{}.With(style.Bold)}
	b.Set(1, 1, kept)
	b.Set(3, 2, Cell{Rune: 'd'})

	b.Resize(2, 2)
	if w, h := b.Size(); w != 2 || h != 2 {
		t.Fatalf("Size = %dx%d, want 2x2", w, h)
	}
	if got := b.At(1, 1); got != kept {
		t.Fatalf("surviving cell = %+v, want %+v", got, kept)
	}

	b.Resize(5, 4)
	if got := b.At(1, 1); got != kept {
		t.Fatalf("cell lost across grow: %+v", got)
	}
	if got := b.At(4, 3); got != blank {
		t.Fatalf("newly exposed cell = %+v, want blank", got)
	}
	// The cell dropped by the shrink must not reappear.
	if got := b.At(3, 2); got != blank {
		t.Fatalf("dropped cell resurrected: %+v", got)
	}
}
