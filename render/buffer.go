// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/buffer.go
// Summary: Rectangular cell grid backing frames and the renderer's previous-screen copy.

package render

// Buffer is a width x height grid of cells. Out-of-bounds access is
// clipped rather than panicking; drawing code clips constantly and should
// not have to pre-check every coordinate.
type Buffer struct {
	width, height int
	cells         [][]Cell
}

func NewBuffer(width, height int) *Buffer {
	b := &Buffer{width: width, height: height}
	b.cells = make([][]Cell, height)
	for y := range b.cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = blank
		}
		b.cells[y] = row
	}
	return b
}

// Size returns (columns, rows).
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Set places a cell, ignoring writes outside the grid.
func (b *Buffer) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y][x] = c
}

// At returns the cell at (x, y), or a blank for out-of-bounds reads.
func (b *Buffer) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return blank
	}
	return b.cells[y][x]
}

// Fill sets every cell to c.
func (b *Buffer) Fill(c Cell) {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = c
		}
	}
}

// Resize grows or shrinks the grid in place, preserving the overlapping
// content and blanking anything newly exposed.
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}
	next := make([][]Cell, height)
	for y := range next {
		row := make([]Cell, width)
		for x := range row {
			row[x] = blank
		}
		if y < b.height {
			copy(row, b.cells[y][:min(b.width, width)])
		}
		next[y] = row
	}
	b.cells = next
	b.width, b.height = width, height
}
