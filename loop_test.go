// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: loop_test.go

package briks_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	briks "github.com/salty-max/briks"
	"github.com/salty-max/briks/input"
	"github.com/salty-max/briks/render"
	"github.com/salty-max/briks/term"
)

// testAction carries the command the handler decided on, so the test app
// can route everything through the real OnEvent/Update split.
type testAction struct {
	cmd briks.Command
}

type testApp struct {
	init   briks.Command
	handle func(input.Event) briks.Command
	draw   func(*render.Frame)
	seen   []input.Event
}

func (a *testApp) Init() briks.Command { return a.init }

func (a *testApp) OnEvent(ev input.Event) (testAction, bool) {
	a.seen = append(a.seen, ev)
	if a.handle == nil {
		return testAction{}, false
	}
	return testAction{cmd: a.handle(ev)}, true
}

func (a *testApp) Update(act testAction) briks.Command { return act.cmd }

func (a *testApp) Draw(f *render.Frame) {
	if a.draw != nil {
		a.draw(f)
	}
}

func quitOnRune(r rune) func(input.Event) briks.Command {
	return func(ev input.Event) briks.Command {
		if k, ok := ev.(input.KeyEvent); ok && k.Code == input.KeyRune && k.Rune == r {
			return briks.CommandQuit
		}
		return briks.CommandNone
	}
}

func runOpts(dev *term.MemDevice, extra ...briks.Option) []briks.Option {
	return append([]briks.Option{
		briks.WithDevice(dev),
		briks.WithColorCapability(term.ColorTrue),
	}, extra...)
}

func TestRunQuitsAndRestoresTerminal(t *testing.T) {
	dev := term.NewMemDevice(20, 5)
	dev.PushInput([]byte("q"))
	app := &testApp{
		handle: quitOnRune('q'),
		draw:   func(f *render.Frame) { f.WriteString(0, 0, "hello") },
	}

	if err := briks.Run(app, runOpts(dev)...); err != nil {
		t.Fatal(err)
	}

	if !bytes.Contains(dev.Output(), []byte("hello")) {
		t.Error("initial frame was never drawn")
	}
	if got := dev.RawDepth(); got != 0 {
		t.Errorf("raw depth after Run = %d, want 0", got)
	}
	for _, call := range []string{"EnterRaw", "LeaveRaw", "HideCursor", "ShowCursor"} {
		if n := dev.CallCount(call); n != 1 {
			t.Errorf("%s called %d times, want 1", call, n)
		}
	}
	// Mode teardown must reach the device before raw mode ends.
	if !bytes.Contains(dev.Output(), []byte("\x1b[?1006;1000l")) {
		t.Error("mouse reporting was not turned off")
	}
	if !bytes.Contains(dev.Output(), []byte("\x1b[?2004l")) {
		t.Error("bracketed paste was not turned off")
	}
	if !bytes.Contains(dev.Output(), []byte("\x1b[?1049l")) {
		t.Error("alternate screen was not left")
	}
}

func TestRunInitQuitNeverTouchesTerminal(t *testing.T) {
	dev := term.NewMemDevice(20, 5)
	app := &testApp{init: briks.CommandQuit}

	if err := briks.Run(app, runOpts(dev)...); err != nil {
		t.Fatal(err)
	}
	if n := dev.CallCount("EnterRaw"); n != 0 {
		t.Errorf("EnterRaw called %d times, want 0", n)
	}
	if out := dev.Output(); len(out) != 0 {
		t.Errorf("aborted session wrote %q", out)
	}
}

func TestRunReportsResize(t *testing.T) {
	dev := term.NewMemDevice(20, 5)
	dev.PushInput([]byte("a"))
	app := &testApp{}
	app.handle = func(ev input.Event) briks.Command {
		switch ev := ev.(type) {
		case input.KeyEvent:
			dev.SetSize(100, 40)
		case input.ResizeEvent:
			if ev.Width != 100 || ev.Height != 40 {
				t.Errorf("resize = %dx%d, want 100x40", ev.Width, ev.Height)
			}
			return briks.CommandQuit
		}
		return briks.CommandNone
	}

	if err := briks.Run(app, runOpts(dev)...); err != nil {
		t.Fatal(err)
	}

	var sawResize bool
	for _, ev := range app.seen {
		if _, ok := ev.(input.ResizeEvent); ok {
			sawResize = true
		}
	}
	if !sawResize {
		t.Fatal("no resize event was delivered")
	}
}

func TestRunRestoresAfterRenderFailure(t *testing.T) {
	dev := term.NewMemDevice(20, 5)
	dev.PushInput([]byte("x"))
	app := &testApp{
		draw: func(f *render.Frame) { f.WriteString(0, 0, "frame") },
	}
	app.handle = func(ev input.Event) briks.Command {
		dev.FailWrite = errors.New("gone")
		return briks.CommandNone
	}

	err := briks.Run(app, runOpts(dev)...)
	if !errors.Is(err, render.ErrDesync) {
		t.Fatalf("Run returned %v, want a desync error", err)
	}
	if n := dev.CallCount("LeaveRaw"); n != 1 {
		t.Errorf("LeaveRaw called %d times, want 1", n)
	}
	if got := dev.RawDepth(); got != 0 {
		t.Errorf("raw depth after failure = %d, want 0", got)
	}
}

func TestRunResolvesLoneEscape(t *testing.T) {
	dev := term.NewMemDevice(20, 5)
	dev.PushInput([]byte{0x1b})
	app := &testApp{}
	app.handle = func(ev input.Event) briks.Command {
		if k, ok := ev.(input.KeyEvent); ok && k.Code == input.KeyEsc {
			return briks.CommandQuit
		}
		return briks.CommandNone
	}

	err := briks.Run(app, runOpts(dev, briks.WithEscTimeout(time.Millisecond))...)
	if err != nil {
		t.Fatal(err)
	}
	if len(app.seen) == 0 {
		t.Fatal("lone ESC never resolved to a key event")
	}
}

func TestRunModeOptionsAreHonored(t *testing.T) {
	dev := term.NewMemDevice(20, 5)
	dev.PushInput([]byte("q"))
	app := &testApp{handle: quitOnRune('q')}

	opts := runOpts(dev,
		briks.WithMouse(false),
		briks.WithBracketedPaste(false),
		briks.WithAltScreen(false),
	)
	if err := briks.Run(app, opts...); err != nil {
		t.Fatal(err)
	}
	out := dev.Output()
	for _, seq := range []string{"?1000", "?2004", "?1049"} {
		if bytes.Contains(out, []byte(seq)) {
			t.Errorf("output negotiates %s despite the mode being off", seq)
		}
	}
}
