// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePNG writes a generated test image and returns its path.
func writePNG(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestDominantColorSolid(t *testing.T) {
	path := writePNG(t, "solid.png", solid(10, 10, color.RGBA{0x33, 0x66, 0x99, 0xff}))
	got, err := DominantColor(path)
	require.NoError(t, err)
	// #336699 quantized to the 32-level grid
	assert.Equal(t, "#206080", got)
}

func TestDominantColorMajority(t *testing.T) {
	// 3/4 red, 1/4 blue
	img := solid(8, 8, color.RGBA{0xff, 0x00, 0x00, 0xff})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{0x00, 0x00, 0xff, 0xff})
		}
	}
	path := writePNG(t, "majority.png", img)
	got, err := DominantColor(path)
	require.NoError(t, err)
	assert.Equal(t, "#e00000", got)
}

func TestDominantColorTieBreak(t *testing.T) {
	// exactly half black, half white: the tie goes to the lower
	// packed value, which is black
	img := solid(10, 10, color.RGBA{0xff, 0xff, 0xff, 0xff})
	for y := 0; y < 10; y++ {
		for x := 0; x < 5; x++ {
			img.SetRGBA(x, y, color.RGBA{0x00, 0x00, 0x00, 0xff})
		}
	}
	path := writePNG(t, "tie.png", img)
	got, err := DominantColor(path)
	require.NoError(t, err)
	assert.Equal(t, "#000000", got)
}

func TestDominantColorDownsamples(t *testing.T) {
	// larger than the sample bound on one side; a solid color
	// survives the resize untouched
	path := writePNG(t, "wide.png", solid(400, 20, color.RGBA{0x33, 0x66, 0x99, 0xff}))
	got, err := DominantColorSampled(path, 150)
	require.NoError(t, err)
	assert.Equal(t, "#206080", got)
}

func TestDominantColorMissingFile(t *testing.T) {
	_, err := DominantColor(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDominantColorNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("definitely not pixels"), 0o644))
	_, err := DominantColor(path)
	assert.ErrorIs(t, err, ErrNotFound)
}
