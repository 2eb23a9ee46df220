// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: style/palette.go
// Summary: Downsamples colors to whatever tier the attached terminal advertises.
// Usage: The renderer normalizes every style through Downsample before emitting SGR.

package style

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/salty-max/briks/term"
)

// Standard xterm values for the 16 base colors, used only as match targets
// when reducing richer colors for a 16-color terminal.
var base16 = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// cube256 holds the RGB values of palette indices 16-255: a 6x6x6 color
// cube followed by a 24-step grayscale ramp. Indices 0-15 are deliberately
// excluded as match targets because terminals theme them freely.
var cube256 [240][3]uint8

func init() {
	levels := [6]uint8{0, 95, 135, 175, 215, 255}
	i := 0
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				cube256[i] = [3]uint8{levels[r], levels[g], levels[b]}
				i++
			}
		}
	}
	for g := 0; g < 24; g++ {
		v := uint8(8 + 10*g)
		cube256[i] = [3]uint8{v, v, v}
		i++
	}
}

// Downsample reduces c to a color the given capability tier can represent.
// Reduction picks the perceptually nearest palette entry (CIE-Lab
// distance), which behaves far better on ramps and grays than a channel
// distance would. Colors already within the tier pass through unchanged.
func Downsample(c Color, colors term.ColorCapability) Color {
	if !c.IsSet() {
		return c
	}
	switch colors {
	case term.ColorNone:
		return Color{}
	case term.Color16:
		switch c.Mode {
		case ColorNamed:
			return c
		case ColorIndexed:
			if c.Value < 16 {
				return Named(c.Value)
			}
			rgb := cube256[int(c.Value)-16]
			return Named(nearest16(rgb[0], rgb[1], rgb[2]))
		default:
			return Named(nearest16(c.R, c.G, c.B))
		}
	case term.Color256:
		if c.Mode == ColorRGB {
			return Indexed(nearest256(c.R, c.G, c.B))
		}
		return c
	default:
		return c
	}
}

func nearest16(r, g, b uint8) uint8 {
	target := rgbToColorful(r, g, b)
	best, bestDist := 0, -1.0
	for i, v := range base16 {
		d := target.DistanceLab(rgbToColorful(v[0], v[1], v[2]))
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

func nearest256(r, g, b uint8) uint8 {
	target := rgbToColorful(r, g, b)
	best, bestDist := 0, -1.0
	for i, v := range cube256 {
		d := target.DistanceLab(rgbToColorful(v[0], v[1], v[2]))
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best + 16)
}

func rgbToColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}
