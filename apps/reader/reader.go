// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/reader/reader.go
// Summary: Scrollable file viewer with syntax highlighting.
// Usage: app, err := reader.Load(path); briks.Run(app)

package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	runewidth "github.com/mattn/go-runewidth"

	briks "github.com/salty-max/briks"
	"github.com/salty-max/briks/input"
	"github.com/salty-max/briks/render"
	"github.com/salty-max/briks/style"
)

// Action is what input translates into.
type Action int

const (
	ScrollUp Action = iota
	ScrollDown
	PageUp
	PageDown
	Top
	Bottom
	Quit
)

// span is a run of same-styled text within a line.
type span struct {
	text  string
	style style.Style
}

// App is the viewer model: the highlighted lines plus a scroll offset.
type App struct {
	title string
	lines [][]span

	offset   int
	viewRows int // body rows seen by the last Draw, 0 before the first
}

// Load reads and highlights the file at path.
func Load(path string) (*App, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reader: %w", err)
	}
	return NewFromBytes(filepath.Base(path), data), nil
}

// NewFromBytes builds a viewer over in-memory content. name drives language
// detection the same way a filename would.
func NewFromBytes(name string, data []byte) *App {
	return &App{title: name, lines: highlight(name, data)}
}

func (a *App) Init() briks.Command {
	return briks.CommandNone
}

func (a *App) OnEvent(ev input.Event) (Action, bool) {
	switch ev := ev.(type) {
	case input.KeyEvent:
		return a.onKey(ev)
	case input.MouseEvent:
		switch ev.Button {
		case input.WheelUp:
			return ScrollUp, true
		case input.WheelDown:
			return ScrollDown, true
		}
	}
	return 0, false
}

func (a *App) onKey(k input.KeyEvent) (Action, bool) {
	switch k.Code {
	case input.KeyEsc:
		return Quit, true
	case input.KeyUp:
		return ScrollUp, true
	case input.KeyDown:
		return ScrollDown, true
	case input.KeyPgUp:
		return PageUp, true
	case input.KeyPgDn:
		return PageDown, true
	case input.KeyHome:
		return Top, true
	case input.KeyEnd:
		return Bottom, true
	case input.KeyRune:
		if k.Mods.Contains(input.ModCtrl) {
			if k.Rune == 'c' {
				return Quit, true
			}
			return 0, false
		}
		switch k.Rune {
		case 'k':
			return ScrollUp, true
		case 'j':
			return ScrollDown, true
		case 'g':
			return Top, true
		case 'G':
			return Bottom, true
		case 'q':
			return Quit, true
		}
	}
	return 0, false
}

func (a *App) Update(act Action) briks.Command {
	page := a.viewRows
	if page < 1 {
		page = 1
	}
	switch act {
	case ScrollUp:
		a.offset--
	case ScrollDown:
		a.offset++
	case PageUp:
		a.offset -= page
	case PageDown:
		a.offset += page
	case Top:
		a.offset = 0
	case Bottom:
		a.offset = len(a.lines)
	case Quit:
		return briks.CommandQuit
	}
	a.clamp()
	return briks.CommandNone
}

func (a *App) clamp() {
	max := len(a.lines) - a.viewRows
	if max < 0 {
		max = 0
	}
	if a.offset > max {
		a.offset = max
	}
	if a.offset < 0 {
		a.offset = 0
	}
}

func (a *App) Draw(f *render.Frame) {
	w, h := f.Size()
	a.viewRows = h - 1
	a.clamp()

	a.drawTitle(f, w)

	numw := len(strconv.Itoa(len(a.lines)))
	numStyle := style.Style{}.Foreground(style.BrightBlack)
	for row := 0; row < a.viewRows; row++ {
		i := a.offset + row
		if i >= len(a.lines) {
			break
		}
		f.WithStyle(numStyle, func(f *render.Frame) {
			f.WriteString(0, row+1, fmt.Sprintf("%*d ", numw, i+1))
		})
		x := numw + 1
		for _, sp := range a.lines[i] {
			f.WithStyle(sp.style, func(f *render.Frame) {
				f.WriteString(x, row+1, sp.text)
			})
			x += runewidth.StringWidth(sp.text)
		}
	}
}

func (a *App) drawTitle(f *render.Frame, w int) {
	label := fmt.Sprintf(" %s  %d/%d ", a.title, a.offset+1, len(a.lines))
	for len(label) < w {
		label += " "
	}
	f.WithStyle(style.Style{}.With(style.Reverse), func(f *render.Frame) {
		f.WriteString(0, 0, label)
	})
}
