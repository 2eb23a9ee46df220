// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: loop.go
// Summary: The single-goroutine session loop: read, decode, update, draw, diff.
// Usage: briks.Run(app) runs the application until it quits or the terminal fails.

package briks

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/salty-max/briks/input"
	"github.com/salty-max/briks/render"
	"github.com/salty-max/briks/term"
)

// Run drives app against the terminal until the application quits or an
// unrecoverable terminal error occurs. Whatever the exit path, the terminal
// is restored before Run returns; a panic in application code still unwinds
// through the restore.
func Run[A any](app Application[A], opts ...Option) (err error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.logPath != "" {
		f, lerr := os.OpenFile(cfg.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if lerr != nil {
			return fmt.Errorf("briks: open log file: %w", lerr)
		}
		defer f.Close()
		prev := log.Writer()
		log.SetOutput(f)
		defer log.SetOutput(prev)
	}

	dev := cfg.dev
	if dev == nil {
		tty, terr := term.OpenTTY()
		if terr != nil {
			return terr
		}
		defer tty.Close()
		dev = tty
	}

	caps := term.DetectCapabilities(os.Getenv)
	if cfg.caps != nil {
		caps = *cfg.caps
	}

	// Init runs before the terminal is touched so a refusal to start never
	// flashes the alternate screen.
	if app.Init() == CommandQuit {
		return nil
	}

	guard, err := term.Acquire(dev, term.Modes{
		AltScreen:      cfg.altScreen,
		Mouse:          cfg.mouse,
		BracketedPaste: cfg.paste,
	})
	if err != nil {
		return err
	}
	defer func() {
		if rerr := guard.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	cols, rows, err := dev.Size()
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(dev, caps)
	dec := input.NewDecoder()

	draw := func() error {
		f := render.NewFrame(render.NewBuffer(cols, rows))
		app.Draw(f)
		return renderer.Render(f.Buffer())
	}
	if err = draw(); err != nil {
		return err
	}

	buf := make([]byte, 4096)
	for {
		// A pending lone ESC shortens the wait so the disambiguation window
		// is honored; otherwise the poll interval bounds resize latency.
		timeout := cfg.pollInterval
		if dec.Pending() && cfg.escTimeout < timeout {
			timeout = cfg.escTimeout
		}

		var events []input.Event
		n, rerr := dev.Read(buf, timeout)
		switch {
		case rerr == nil:
			events = dec.Feed(buf[:n])
		case errors.Is(rerr, term.ErrNoData):
			// Idle pass.
		default:
			return rerr
		}
		events = append(events, dec.ExpireTimeout(cfg.escTimeout)...)

		if c, r, serr := dev.Size(); serr == nil && (c != cols || r != rows) {
			cols, rows = c, r
			events = append(events, input.ResizeEvent{Width: cols, Height: rows})
		}

		for _, ev := range events {
			action, ok := app.OnEvent(ev)
			if !ok {
				continue
			}
			if app.Update(action) == CommandQuit {
				return nil
			}
		}

		if len(events) > 0 {
			if err = draw(); err != nil {
				return err
			}
		}
	}
}
