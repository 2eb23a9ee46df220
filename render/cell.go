// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/cell.go
// Summary: The single-cell value type the grid and differ operate on.

package render

import "github.com/salty-max/briks/style"

// Cell is one grid position: a rune plus its style. It is an immutable
// value; writes replace the whole cell. A zero Rune marks the shadow half
// of a double-width rune in the cell to its left.
type Cell struct {
	Rune  rune
	Style style.Style
}

// blank is what cleared cells hold.
var blank = Cell{Rune: ' '}
