// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the color algebra underlying the Glaze theme
// system: parsing and formatting of hex color strings and selection of
// readable text colors. The canonical interchange form throughout Glaze
// is a 6-digit lowercase hex string ("#rrggbb"); see [colors/hsl] for
// the HSL transforms built on top of this package.
package colors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat is returned for color strings that are not
// exactly 6 hex digits after an optional leading "#".
var ErrFormat = errors.New("malformed hex color")

// RGB is an sRGB color as an integer triple with each
// channel nominally in 0-255. It is the working form between
// the hex interchange strings and the HSL colorspace.
type RGB struct {
	R, G, B int
}

// FromHex parses the given hex color string, with or without a
// leading #, into an [RGB]. It returns an error wrapping [ErrFormat]
// if the string is not exactly 6 hex digits; see [MustFromHex] for a
// version that panics instead.
func FromHex(hex string) (RGB, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, ErrFormat)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, ErrFormat)
	}
	return RGB{R: int(v >> 16), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, nil
}

// MustFromHex parses the given hex color string and panics on any
// error; see [FromHex] for a version that returns the error.
// It is intended for compile-time constant colors.
func MustFromHex(hex string) RGB {
	c, err := FromHex(hex)
	if err != nil {
		panic("colors.MustFromHex: " + err.Error())
	}
	return c
}

// Hex returns the color as a lowercase, zero-padded "#rrggbb" string.
// Channels are assumed to already be in 0-255; out-of-range values
// follow standard integer formatting, so callers must pre-clamp.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luminance returns the perceptual luminance of the color in 0-1,
// using the Rec. 601 weighting (0.299 R + 0.587 G + 0.114 B).
func (c RGB) Luminance() float32 {
	return (0.299*float32(c.R) + 0.587*float32(c.G) + 0.114*float32(c.B)) / 255
}

// ContrastText returns the text color ("#000000" or "#ffffff") that
// reads best against the given background color: black on light
// backgrounds (luminance > 0.5), white otherwise.
func ContrastText(hex string) (string, error) {
	c, err := FromHex(hex)
	if err != nil {
		return "", err
	}
	if c.Luminance() > 0.5 {
		return "#000000", nil
	}
	return "#ffffff", nil
}
