// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extract reduces an image to a single representative color,
// which seeds the Glaze palette synthesizer when theming from a
// wallpaper. png, jpeg, gif, tiff, bmp, and webp are supported.
package extract

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"

	"github.com/glazekit/glaze/colors"
)

// ErrNotFound is returned when the image file does not exist
// or cannot be decoded as an image.
var ErrNotFound = errors.New("image not found or not decodable")

// DefaultSampleSize is the downsampling bound used by
// [DominantColor] when no explicit sample size is given.
const DefaultSampleSize = 150

// DominantColor returns the dominant color of the image at the given
// path as a hex string, using [DefaultSampleSize]. It returns an error
// wrapping [ErrNotFound] if the file is missing or not a decodable image.
func DominantColor(imagePath string) (string, error) {
	return DominantColorSampled(imagePath, DefaultSampleSize)
}

// DominantColorSampled is [DominantColor] with an explicit sampling
// bound: the image is first downsized so its longer side is at most
// sampleSize pixels (aspect ratio preserved), which bounds the cost of
// the histogram pass without materially changing the result for
// natural photographs. A sampleSize <= 0 means [DefaultSampleSize].
//
// Each sampled pixel is quantized to 8 levels per channel (a 512-bucket
// grid) so that near-duplicate shades count as one color, and the most
// frequent bucket wins. Equal-frequency buckets tie-break to the lowest
// packed 0xRRGGBB value, which keeps the result deterministic.
func DominantColorSampled(imagePath string, sampleSize int) (string, error) {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	img, err := open(imagePath)
	if err != nil {
		return "", err
	}
	img = downsample(img, sampleSize)

	counts := map[uint32]int{}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			key := quantize(uint8(r>>8))<<16 | quantize(uint8(g>>8))<<8 | quantize(uint8(b>>8))
			counts[key]++
		}
	}

	best := uint32(0)
	bestCount := -1
	for key, n := range counts {
		if n > bestCount || (n == bestCount && key < best) {
			best, bestCount = key, n
		}
	}
	c := colors.RGB{R: int(best >> 16), G: int(best >> 8 & 0xff), B: int(best & 0xff)}
	return c.Hex(), nil
}

// quantize groups a channel into one of 8 levels (multiples of 32).
func quantize(c uint8) uint32 {
	return uint32(c) / 32 * 32
}

// open reads and decodes the image, sniffing the file header first so
// that a present-but-not-an-image file fails the same way as a missing
// one, just with a more specific message.
func open(imagePath string) (image.Image, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("extract: %q: %w: %v", imagePath, ErrNotFound, err)
	}
	defer f.Close()

	head := make([]byte, 261)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("extract: %q: %w: %v", imagePath, ErrNotFound, err)
	}
	if !filetype.IsImage(head[:n]) {
		return nil, fmt.Errorf("extract: %q is not an image file: %w", imagePath, ErrNotFound)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("extract: %q: %w: %v", imagePath, ErrNotFound, err)
	}
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("extract: decoding %q: %w: %v", imagePath, ErrNotFound, err)
	}
	return img, nil
}

// downsample scales the image so its longer side is at most max pixels,
// preserving aspect ratio. Images already within the bound pass through.
func downsample(img image.Image, max int) image.Image {
	sz := img.Bounds().Size()
	if sz.X <= max && sz.Y <= max {
		return img
	}
	w, h := max, max
	if sz.X > sz.Y {
		h = sz.Y * max / sz.X
	} else {
		w = sz.X * max / sz.Y
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return transform.Resize(img, w, h, transform.Linear)
}
