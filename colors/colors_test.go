// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHex(t *testing.T) {
	c, err := FromHex("#336699")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0x33, G: 0x66, B: 0x99}, c)

	c, err = FromHex("336699")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0x33, G: 0x66, B: 0x99}, c)

	c, err = FromHex("#ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0xab, G: 0xcd, B: 0xef}, c)
	assert.Equal(t, "#abcdef", c.Hex())
}

func TestFromHexErrors(t *testing.T) {
	for _, bad := range []string{"", "#", "#fff", "#12345", "#1234567", "#12345g", "not a color"} {
		_, err := FromHex(bad)
		assert.ErrorIs(t, err, ErrFormat, "input %q", bad)
	}
}

func TestHexRoundTrip(t *testing.T) {
	// hex -> RGB -> hex is exact for every representable color;
	// sample the space on a coarse grid
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				c := RGB{R: r, G: g, B: b}
				back, err := FromHex(c.Hex())
				require.NoError(t, err)
				assert.Equal(t, c, back)
			}
		}
	}
}

func TestMustFromHex(t *testing.T) {
	assert.Equal(t, RGB{R: 255, G: 0, B: 0}, MustFromHex("#ff0000"))
	assert.Panics(t, func() { MustFromHex("bad") })
}

func TestContrastText(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#000000", "#ffffff"},
		{"#ffffff", "#000000"},
		{"#ff0000", "#ffffff"}, // red reads as dark (luminance 0.299)
		{"#ffff00", "#000000"}, // yellow reads as light
		{"#1a1a2e", "#ffffff"},
	}
	for _, tt := range tests {
		got, err := ContrastText(tt.hex)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "background %s", tt.hex)
	}

	_, err := ContrastText("nope")
	assert.ErrorIs(t, err, ErrFormat)
}
