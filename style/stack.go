// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: style/stack.go
// Summary: LIFO stack of style layers with memoized effective styles.
// Usage: Owned by a Frame for the duration of one draw pass.

package style

// Stack is the ordered set of style layers active during a draw pass. Each
// slot stores the *effective* style at that depth (the fold of all layers
// below plus its own), so Effective is a constant-time lookup.
//
// The base layer is the zero style and can never be popped: popping past it
// means a push/pop pairing bug in the caller, which is a programming error,
// not a runtime condition.
type Stack struct {
	layers []Style
}

func NewStack() *Stack {
	return &Stack{layers: []Style{{}}}
}

// Push layers st on top of the current effective style.
func (s *Stack) Push(st Style) {
	s.layers = append(s.layers, s.Effective().Merge(st))
}

// Pop removes the top layer. Popping the base layer panics: the scoping
// contract is broken and silently continuing would misattribute styles for
// the rest of the pass.
func (s *Stack) Pop() {
	if len(s.layers) == 1 {
		panic("style: Pop without matching Push")
	}
	s.layers = s.layers[:len(s.layers)-1]
}

// Effective returns the style any write at this point should use.
func (s *Stack) Effective() Style {
	return s.layers[len(s.layers)-1]
}

// Depth returns the number of pushed layers above the base.
func (s *Stack) Depth() int {
	return len(s.layers) - 1
}
