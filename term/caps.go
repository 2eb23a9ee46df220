// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/caps.go
// Summary: Terminal capability detection from the environment.
// Usage: The renderer consults Capabilities to decide how colors are emitted.

package term

import "strings"

// ColorCapability is the color tier a terminal advertises.
type ColorCapability int

const (
	// ColorNone disables color emission entirely (dumb terminals, NO_COLOR).
	ColorNone ColorCapability = iota
	// Color16 is the basic ANSI palette.
	Color16
	// Color256 is the xterm 256-color palette.
	Color256
	// ColorTrue is 24-bit direct color.
	ColorTrue
)

// Capabilities describes what the attached terminal supports.
type Capabilities struct {
	Colors ColorCapability
}

// DetectCapabilities inspects the environment the way most terminal
// programs do: COLORTERM wins, then the TERM name, with NO_COLOR as a
// global off switch. getenv is injected so tests stay hermetic; pass
// os.Getenv in production.
func DetectCapabilities(getenv func(string) string) Capabilities {
	if getenv("NO_COLOR") != "" {
		return Capabilities{Colors: ColorNone}
	}

	termName := getenv("TERM")
	if termName == "" || termName == "dumb" {
		return Capabilities{Colors: ColorNone}
	}

	switch getenv("COLORTERM") {
	case "truecolor", "24bit":
		return Capabilities{Colors: ColorTrue}
	}
	if strings.Contains(termName, "truecolor") || strings.Contains(termName, "direct") {
		return Capabilities{Colors: ColorTrue}
	}
	if strings.Contains(termName, "256color") {
		return Capabilities{Colors: Color256}
	}
	return Capabilities{Colors: Color16}
}
