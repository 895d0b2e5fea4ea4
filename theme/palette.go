// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme provides the Glaze color model: the Material You
// [Palette] synthesized from a seed color, the UI-ready [Theme] derived
// from it, the named color schemes understood by the external matugen
// engine, and the process-wide current theme.
package theme

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/glazekit/glaze/colors/hsl"
)

// ErrValidation is returned for bad or missing caller input, such as
// an unknown scheme name or a generation request with no seed.
var ErrValidation = errors.New("invalid input")

// Palette is a Material You color palette: a fixed set of named color
// roles, each a hex color string. A well-formed Palette has every role
// populated; see [Palette.Validate].
type Palette struct {

	// primary accent, the main color of the theme
	Primary            string `json:"primary" toml:"primary"`
	PrimaryContainer   string `json:"primary_container" toml:"primary_container"`
	OnPrimary          string `json:"on_primary" toml:"on_primary"`
	OnPrimaryContainer string `json:"on_primary_container" toml:"on_primary_container"`

	// secondary accent, analogous at +60 degrees
	Secondary            string `json:"secondary" toml:"secondary"`
	SecondaryContainer   string `json:"secondary_container" toml:"secondary_container"`
	OnSecondary          string `json:"on_secondary" toml:"on_secondary"`
	OnSecondaryContainer string `json:"on_secondary_container" toml:"on_secondary_container"`

	// tertiary accent, split-complementary at -60 degrees
	Tertiary            string `json:"tertiary" toml:"tertiary"`
	TertiaryContainer   string `json:"tertiary_container" toml:"tertiary_container"`
	OnTertiary          string `json:"on_tertiary" toml:"on_tertiary"`
	OnTertiaryContainer string `json:"on_tertiary_container" toml:"on_tertiary_container"`

	// background and surface family
	Background       string `json:"background" toml:"background"`
	OnBackground     string `json:"on_background" toml:"on_background"`
	Surface          string `json:"surface" toml:"surface"`
	OnSurface        string `json:"on_surface" toml:"on_surface"`
	SurfaceVariant   string `json:"surface_variant" toml:"surface_variant"`
	OnSurfaceVariant string `json:"on_surface_variant" toml:"on_surface_variant"`

	// utility roles
	Error   string `json:"error" toml:"error"`
	OnError string `json:"on_error" toml:"on_error"`
	Outline string `json:"outline" toml:"outline"`
	Shadow  string `json:"shadow" toml:"shadow"`
}

// Validate returns an error wrapping [ErrValidation] if any role of
// the palette is empty.
func (p Palette) Validate() error {
	for _, r := range []struct {
		name, val string
	}{
		{"primary", p.Primary}, {"primary_container", p.PrimaryContainer},
		{"on_primary", p.OnPrimary}, {"on_primary_container", p.OnPrimaryContainer},
		{"secondary", p.Secondary}, {"secondary_container", p.SecondaryContainer},
		{"on_secondary", p.OnSecondary}, {"on_secondary_container", p.OnSecondaryContainer},
		{"tertiary", p.Tertiary}, {"tertiary_container", p.TertiaryContainer},
		{"on_tertiary", p.OnTertiary}, {"on_tertiary_container", p.OnTertiaryContainer},
		{"background", p.Background}, {"on_background", p.OnBackground},
		{"surface", p.Surface}, {"on_surface", p.OnSurface},
		{"surface_variant", p.SurfaceVariant}, {"on_surface_variant", p.OnSurfaceVariant},
		{"error", p.Error}, {"on_error", p.OnError},
		{"outline", p.Outline}, {"shadow", p.Shadow},
	} {
		if r.val == "" {
			return fmt.Errorf("theme: palette role %q is empty: %w", r.name, ErrValidation)
		}
	}
	return nil
}

// Neutral hues that the background family is blended toward:
// blue-purple in dark mode (the classic #1a1a2e family) and a slightly
// warmer hue in light mode.
const (
	neutralHueDark  float32 = 0.63
	neutralHueLight float32 = 0.55
)

// Synthesize derives a complete [Palette] from one source color using
// a fixed color-theory recipe: the primary is the source clamped into a
// vibrant saturation/lightness band, secondary and tertiary accents are
// hue rotations of it, and the background family is the primary's hue
// blended toward a neutral with very low saturation. The recipe
// constants are exact design decisions, not tunables.
//
// The result is a pure function of the source color and the dark flag.
// It returns an error wrapping [colors.ErrFormat] if the source is not
// a valid hex color.
func Synthesize(source string, dark bool) (Palette, error) {
	src, err := hsl.FromHex(source)
	if err != nil {
		return Palette{}, err
	}
	if dark {
		return synthesizeDark(source, src), nil
	}
	return synthesizeLight(source, src), nil
}

func synthesizeDark(source string, src hsl.HSL) Palette {
	var p Palette

	// vibrant accent: at least 60% saturation, lightness in 45-60%
	p.Primary = setSat(source, math32.Max(0.6, src.S))
	p.Primary = setLight(p.Primary, math32.Max(0.45, math32.Min(0.60, src.L)))
	p.PrimaryContainer = setSat(setLight(p.Primary, 0.18), 0.5)
	p.OnPrimary = "#000000"
	p.OnPrimaryContainer = setLight(p.Primary, 0.85)

	p.Secondary = setLight(setSat(rotate(p.Primary, 60), 0.65), 0.55)
	p.SecondaryContainer = setSat(setLight(p.Secondary, 0.16), 0.45)
	p.OnSecondary = "#000000"
	p.OnSecondaryContainer = setLight(p.Secondary, 0.85)

	p.Tertiary = setLight(setSat(rotate(p.Primary, -60), 0.70), 0.58)
	p.TertiaryContainer = setSat(setLight(p.Tertiary, 0.17), 0.48)
	p.OnTertiary = "#000000"
	p.OnTertiaryContainer = setLight(p.Tertiary, 0.85)

	bg := blendToward(p.Primary, neutralHueDark, 0.7)
	p.Background = setLight(setSat(bg, 0.08), 0.11)
	p.OnBackground = "#e6e6e6"
	p.Surface = setLight(setSat(bg, 0.10), 0.14)
	p.OnSurface = "#e6e6e6"
	p.SurfaceVariant = setLight(setSat(blendToward(p.Primary, neutralHueDark, 0.5), 0.22), 0.16)
	p.OnSurfaceVariant = "#c4c4c4"

	p.Error = "#cf6679"
	p.OnError = "#000000"
	p.Outline = setLight(setSat(p.Primary, 0.35), 0.28)
	p.Shadow = "#000000"
	return p
}

func synthesizeLight(source string, src hsl.HSL) Palette {
	var p Palette

	p.Primary = setSat(source, math32.Max(0.7, src.S))
	p.Primary = setLight(p.Primary, math32.Max(0.40, math32.Min(0.55, src.L)))
	p.PrimaryContainer = setSat(setLight(p.Primary, 0.85), 0.4)
	p.OnPrimary = "#ffffff"
	p.OnPrimaryContainer = setLight(p.Primary, 0.20)

	p.Secondary = setLight(setSat(rotate(p.Primary, 60), 0.65), 0.48)
	p.SecondaryContainer = setSat(setLight(p.Secondary, 0.88), 0.35)
	p.OnSecondary = "#ffffff"
	p.OnSecondaryContainer = setLight(p.Secondary, 0.18)

	p.Tertiary = setLight(setSat(rotate(p.Primary, -60), 0.70), 0.50)
	p.TertiaryContainer = setSat(setLight(p.Tertiary, 0.90), 0.32)
	p.OnTertiary = "#ffffff"
	p.OnTertiaryContainer = setLight(p.Tertiary, 0.16)

	// light mode backgrounds carry only a very subtle tint
	bg := blendToward(p.Primary, neutralHueLight, 0.85)
	p.Background = setLight(setSat(bg, 0.02), 0.98)
	p.OnBackground = "#1a1a1a"
	p.Surface = setLight(setSat(bg, 0.03), 0.95)
	p.OnSurface = "#1a1a1a"
	p.SurfaceVariant = setLight(setSat(blendToward(p.Primary, neutralHueLight, 0.75), 0.08), 0.90)
	p.OnSurfaceVariant = "#4a4a4a"

	p.Error = "#b00020"
	p.OnError = "#ffffff"
	p.Outline = setLight(setSat(p.Primary, 0.30), 0.55)
	p.Shadow = "#000000"
	return p
}

// The recipe helpers below drop the hsl transform errors: every input
// they see is the output of a prior transform on an already-validated
// color, so the error path is unreachable.

func setSat(hex string, v float32) string {
	s, _ := hsl.SetSaturation(hex, v)
	return s
}

func setLight(hex string, v float32) string {
	s, _ := hsl.SetLightness(hex, v)
	return s
}

func rotate(hex string, degrees float32) string {
	s, _ := hsl.RotateHue(hex, degrees)
	return s
}

func blendToward(hex string, neutralHue, factor float32) string {
	s, _ := hsl.BlendHueToward(hex, neutralHue, factor)
	return s
}
