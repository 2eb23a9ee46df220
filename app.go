// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: app.go
// Summary: The application contract the run loop drives.
// Usage: Implement Application on your model type and hand it to Run.

package briks

import (
	"github.com/salty-max/briks/input"
	"github.com/salty-max/briks/render"
)

// Command is an application's instruction back to the run loop.
type Command int

const (
	// CommandNone keeps the loop going.
	CommandNone Command = iota
	// CommandQuit ends the session; the terminal is restored before Run
	// returns.
	CommandQuit
)

// Application is the model-view-update contract. A is the application's
// action type: OnEvent translates terminal events into actions, Update
// applies actions to the model, Draw projects the model onto a frame.
//
// All four methods are called from the single loop goroutine, so the model
// needs no locking.
type Application[A any] interface {
	// Init runs before the terminal is touched. Returning CommandQuit
	// aborts the session without ever entering raw mode.
	Init() Command

	// OnEvent maps a terminal event to an action. Returning ok=false
	// ignores the event.
	OnEvent(ev input.Event) (action A, ok bool)

	// Update applies an action to the model.
	Update(action A) Command

	// Draw renders the model onto a fresh frame. The frame is blank; draw
	// everything, the renderer diffs away what did not change.
	Draw(f *render.Frame)
}
