// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl implements the HSL colorspace used by the Glaze palette
// recipes, along with the hue / saturation / lightness transforms that
// the palette synthesizer is built from.
//
// All channels are in 0-1, including hue. Conversions follow the
// standard HLS formulation, so a color that round trips through [HSL]
// lands within 1/255 per RGB channel of where it started.
package hsl

import (
	"github.com/chewxy/math32"

	"github.com/glazekit/glaze/colors"
)

// HSL is a color in the HSL colorspace, all channels in 0-1.
type HSL struct {

	// H is the hue as a fraction of the full circle (0-1, not degrees).
	H float32

	// S is the saturation (0 = gray, 1 = fully saturated).
	S float32

	// L is the lightness (0 = black, 1 = white).
	L float32
}

// FromRGB converts the given [colors.RGB] to HSL.
func FromRGB(c colors.RGB) HSL {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255

	max := math32.Max(r, math32.Max(g, b))
	min := math32.Min(r, math32.Min(g, b))
	sum := max + min
	rng := max - min

	l := sum / 2
	if rng == 0 {
		return HSL{H: 0, S: 0, L: l}
	}
	var s float32
	if l <= 0.5 {
		s = rng / sum
	} else {
		s = rng / (2 - sum)
	}
	rc := (max - r) / rng
	gc := (max - g) / rng
	bc := (max - b) / rng
	var h float32
	switch max {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	h = mod1(h / 6)
	return HSL{H: h, S: s, L: l}
}

// FromHex parses the given hex color string into an HSL color.
// It returns an error wrapping [colors.ErrFormat] for malformed input.
func FromHex(hex string) (HSL, error) {
	c, err := colors.FromHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return FromRGB(c), nil
}

// RGB converts the color back to [colors.RGB],
// rounding each channel to the nearest of the 256 levels.
func (h HSL) RGB() colors.RGB {
	r, g, b := h.rgb()
	return colors.RGB{
		R: int(math32.Round(r * 255)),
		G: int(math32.Round(g * 255)),
		B: int(math32.Round(b * 255)),
	}
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (h HSL) Hex() string {
	return h.RGB().Hex()
}

func (h HSL) rgb() (r, g, b float32) {
	if h.S == 0 {
		return h.L, h.L, h.L
	}
	var m2 float32
	if h.L <= 0.5 {
		m2 = h.L * (1 + h.S)
	} else {
		m2 = h.L + h.S - h.L*h.S
	}
	m1 := 2*h.L - m2
	return value(m1, m2, h.H+1.0/3), value(m1, m2, h.H), value(m1, m2, h.H-1.0/3)
}

func value(m1, m2, hue float32) float32 {
	hue = mod1(hue)
	switch {
	case hue < 1.0/6:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < 2.0/3:
		return m1 + (m2-m1)*(2.0/3-hue)*6
	}
	return m1
}

// mod1 wraps the given value into [0, 1), handling negatives.
func mod1(x float32) float32 {
	x = math32.Mod(x, 1)
	if x < 0 {
		x++
	}
	return x
}

// clamp01 clamps the given channel value to the valid 0-1 range.
func clamp01(x float32) float32 {
	return math32.Min(1, math32.Max(0, x))
}
