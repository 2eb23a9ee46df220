// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/counter/counter.go
// Summary: Minimal demo application: a counter driven by +/- keys.
// Usage: briks.Run(counter.New())

package counter

import (
	"fmt"

	briks "github.com/salty-max/briks"
	"github.com/salty-max/briks/input"
	"github.com/salty-max/briks/render"
	"github.com/salty-max/briks/style"
)

// Action is what keyboard input translates into.
type Action int

const (
	Increment Action = iota
	Decrement
	Reset
	Quit
)

// App is the counter model.
type App struct {
	count int
}

func New() *App {
	return &App{}
}

// Count exposes the current value.
func (a *App) Count() int {
	return a.count
}

func (a *App) Init() briks.Command {
	return briks.CommandNone
}

func (a *App) OnEvent(ev input.Event) (Action, bool) {
	k, ok := ev.(input.KeyEvent)
	if !ok {
		return 0, false
	}
	if k.Code == input.KeyEsc {
		return Quit, true
	}
	if k.Code != input.KeyRune {
		return 0, false
	}
	if k.Mods.Contains(input.ModCtrl) {
		if k.Rune == 'c' {
			return Quit, true
		}
		return 0, false
	}
	switch k.Rune {
	case '+', '=':
		return Increment, true
	case '-':
		return Decrement, true
	case 'r':
		return Reset, true
	case 'q':
		return Quit, true
	}
	return 0, false
}

func (a *App) Update(act Action) briks.Command {
	switch act {
	case Increment:
		a.count++
	case Decrement:
		a.count--
	case Reset:
		a.count = 0
	case Quit:
		return briks.CommandQuit
	}
	return briks.CommandNone
}

func (a *App) Draw(f *render.Frame) {
	f.WithStyle(style.Style{}.With(style.Bold), func(f *render.Frame) {
		f.WriteString(2, 1, fmt.Sprintf("Count: %d", a.count))
	})
	f.WithStyle(style.Style{}.Foreground(style.BrightBlack), func(f *render.Frame) {
		f.WriteString(2, 3, "+/- change · r reset · q quit")
	})
}
