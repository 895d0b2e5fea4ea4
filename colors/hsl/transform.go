// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

// The transforms here all take and return hex color strings, because
// the palette recipes chain them: each step re-quantizes to 8-bit
// channels, and the recipe constants were chosen against exactly that
// behavior. Errors wrap [colors.ErrFormat] and only occur for
// malformed input hex.

// AdjustBrightness multiplies the lightness of the color by factor,
// clamped to 0-1. A factor > 1 brightens, < 1 darkens, 0 gives black.
func AdjustBrightness(hex string, factor float32) (string, error) {
	h, err := FromHex(hex)
	if err != nil {
		return "", err
	}
	h.L = clamp01(h.L * factor)
	return h.Hex(), nil
}

// AdjustSaturation multiplies the saturation of the color by factor,
// clamped to 0-1.
func AdjustSaturation(hex string, factor float32) (string, error) {
	h, err := FromHex(hex)
	if err != nil {
		return "", err
	}
	h.S = clamp01(h.S * factor)
	return h.Hex(), nil
}

// SetSaturation sets the saturation of the color to the given
// absolute value, clamped to 0-1.
func SetSaturation(hex string, saturation float32) (string, error) {
	h, err := FromHex(hex)
	if err != nil {
		return "", err
	}
	h.S = clamp01(saturation)
	return h.Hex(), nil
}

// SetLightness sets the lightness of the color to the given
// absolute value, clamped to 0-1.
func SetLightness(hex string, lightness float32) (string, error) {
	h, err := FromHex(hex)
	if err != nil {
		return "", err
	}
	h.L = clamp01(lightness)
	return h.Hex(), nil
}

// RotateHue rotates the hue of the color by the given number of
// degrees, wrapping around the hue circle in either direction.
func RotateHue(hex string, degrees float32) (string, error) {
	h, err := FromHex(hex)
	if err != nil {
		return "", err
	}
	h.H = mod1(h.H + degrees/360)
	return h.Hex(), nil
}

// BlendHueToward linearly interpolates the hue of the color toward
// the given neutral hue (0-1): factor 0 leaves the hue unchanged,
// factor 1 replaces it entirely. Saturation and lightness are kept.
func BlendHueToward(hex string, neutralHue, factor float32) (string, error) {
	h, err := FromHex(hex)
	if err != nil {
		return "", err
	}
	h.H = h.H*(1-factor) + neutralHue*factor
	return h.Hex(), nil
}
