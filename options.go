// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: options.go
// Summary: Functional options configuring a Run session.

package briks

import (
	"time"

	"github.com/salty-max/briks/term"
)

type config struct {
	dev          term.Device
	caps         *term.Capabilities
	escTimeout   time.Duration
	pollInterval time.Duration
	altScreen    bool
	mouse        bool
	paste        bool
	logPath      string
}

func defaultConfig() config {
	return config{
		escTimeout:   50 * time.Millisecond,
		pollInterval: 30 * time.Millisecond,
		altScreen:    true,
		mouse:        true,
		paste:        true,
	}
}

// Option adjusts a Run session.
type Option func(*config)

// WithDevice substitutes the terminal device. Without it, Run opens the
// controlling terminal.
func WithDevice(dev term.Device) Option {
	return func(c *config) { c.dev = dev }
}

// WithColorCapability pins the color tier instead of detecting it from the
// environment.
func WithColorCapability(colors term.ColorCapability) Option {
	return func(c *config) { c.caps = &term.Capabilities{Colors: colors} }
}

// WithEscTimeout sets how long a lone ESC byte may wait for a continuation
// before it is reported as the Escape key.
func WithEscTimeout(d time.Duration) Option {
	return func(c *config) { c.escTimeout = d }
}

// WithPollInterval sets the idle read timeout, which bounds how quickly
// window resizes are noticed.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) { c.pollInterval = d }
}

// WithAltScreen controls use of the alternate screen. On by default.
func WithAltScreen(on bool) Option {
	return func(c *config) { c.altScreen = on }
}

// WithMouse controls mouse reporting. On by default.
func WithMouse(on bool) Option {
	return func(c *config) { c.mouse = on }
}

// WithBracketedPaste controls bracketed paste. On by default.
func WithBracketedPaste(on bool) Option {
	return func(c *config) { c.paste = on }
}

// WithLogFile redirects the standard logger to the given file for the
// duration of the session. Useful because stderr shares the screen with
// the UI while the session runs.
func WithLogFile(path string) Option {
	return func(c *config) { c.logPath = path }
}
