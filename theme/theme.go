// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"github.com/glazekit/glaze/colors/hsl"
)

// Theme is the full, UI-ready style value consumed by presentation
// code: color tiers for backgrounds, borders and text, the three
// accent groups, status colors, and spacing metrics. A Theme is an
// immutable value; it is replaced wholesale, never mutated in place.
type Theme struct {

	// background tiers
	BgPrimary   string `json:"bg_primary" toml:"bg_primary"`
	BgSecondary string `json:"bg_secondary" toml:"bg_secondary"`
	BgTertiary  string `json:"bg_tertiary" toml:"bg_tertiary"`

	// surface tiers for elevated elements
	Surface        string `json:"surface" toml:"surface"`
	SurfaceVariant string `json:"surface_variant" toml:"surface_variant"`
	SurfaceDim     string `json:"surface_dim" toml:"surface_dim"`

	// border tiers
	Border         string `json:"border" toml:"border"`
	BorderFocus    string `json:"border_focus" toml:"border_focus"`
	BorderHover    string `json:"border_hover" toml:"border_hover"`
	Outline        string `json:"outline" toml:"outline"`
	OutlineVariant string `json:"outline_variant" toml:"outline_variant"`

	// text tiers
	TextPrimary   string `json:"text_primary" toml:"text_primary"`
	TextSecondary string `json:"text_secondary" toml:"text_secondary"`
	TextTertiary  string `json:"text_tertiary" toml:"text_tertiary"`
	TextDark      string `json:"text_dark" toml:"text_dark"`
	TextDisabled  string `json:"text_disabled" toml:"text_disabled"`

	// primary accent group
	Accent          string `json:"accent" toml:"accent"`
	AccentHover     string `json:"accent_hover" toml:"accent_hover"`
	AccentPressed   string `json:"accent_pressed" toml:"accent_pressed"`
	AccentContainer string `json:"accent_container" toml:"accent_container"`
	AccentText      string `json:"accent_text" toml:"accent_text"`
	AccentHoverText string `json:"accent_hover_text" toml:"accent_hover_text"`

	// secondary accent group
	Secondary          string `json:"secondary" toml:"secondary"`
	SecondaryHover     string `json:"secondary_hover" toml:"secondary_hover"`
	SecondaryPressed   string `json:"secondary_pressed" toml:"secondary_pressed"`
	SecondaryContainer string `json:"secondary_container" toml:"secondary_container"`

	// tertiary accent group
	Tertiary          string `json:"tertiary" toml:"tertiary"`
	TertiaryHover     string `json:"tertiary_hover" toml:"tertiary_hover"`
	TertiaryPressed   string `json:"tertiary_pressed" toml:"tertiary_pressed"`
	TertiaryContainer string `json:"tertiary_container" toml:"tertiary_container"`

	// status colors; always fixed constants so semantic alerts stay
	// stable across arbitrary wallpapers
	Success   string `json:"success" toml:"success"`
	SuccessBg string `json:"success_bg" toml:"success_bg"`
	Warning   string `json:"warning" toml:"warning"`
	WarningBg string `json:"warning_bg" toml:"warning_bg"`
	Danger    string `json:"danger" toml:"danger"`
	DangerBg  string `json:"danger_bg" toml:"danger_bg"`
	Info      string `json:"info" toml:"info"`
	InfoBg    string `json:"info_bg" toml:"info_bg"`

	// selection and overlays
	SelectionBg    string `json:"selection_bg" toml:"selection_bg"`
	HoverOverlay   string `json:"hover_overlay" toml:"hover_overlay"`
	PressedOverlay string `json:"pressed_overlay" toml:"pressed_overlay"`

	// corner radii
	BorderRadius   string `json:"border_radius" toml:"border_radius"`
	BorderRadiusSm string `json:"border_radius_sm" toml:"border_radius_sm"`
	BorderRadiusLg string `json:"border_radius_lg" toml:"border_radius_lg"`

	// spacing metrics
	Spacing   int `json:"spacing" toml:"spacing"`
	SpacingSm int `json:"spacing_sm" toml:"spacing_sm"`
	SpacingLg int `json:"spacing_lg" toml:"spacing_lg"`
	SpacingXl int `json:"spacing_xl" toml:"spacing_xl"`

	// padding metrics for buttons and inputs
	PaddingV  int `json:"padding_v" toml:"padding_v"`
	PaddingH  int `json:"padding_h" toml:"padding_h"`
	PaddingSm int `json:"padding_sm" toml:"padding_sm"`
	PaddingLg int `json:"padding_lg" toml:"padding_lg"`

	// table colors
	TableHeaderBg   string `json:"table_header_bg" toml:"table_header_bg"`
	TableRowAlt     string `json:"table_row_alt" toml:"table_row_alt"`
	TableRowHover   string `json:"table_row_hover" toml:"table_row_hover"`
	ShadowColor     string `json:"shadow_color" toml:"shadow_color"`
	ShadowElevation string `json:"shadow_elevation" toml:"shadow_elevation"`
}

// Default returns the built-in dark theme that is active before any
// palette has been generated.
func Default() Theme {
	return Theme{
		BgPrimary:   "#1a1a2e",
		BgSecondary: "#16213e",
		BgTertiary:  "#0f172a",

		Surface:        "#16213e",
		SurfaceVariant: "#1e2a4a",
		SurfaceDim:     "#0f172a",

		Border:         "#0f3460",
		BorderFocus:    "#e94560",
		BorderHover:    "#1e4d7b",
		Outline:        "#4a5568",
		OutlineVariant: "#2d3748",

		TextPrimary:   "#eee",
		TextSecondary: "#888",
		TextTertiary:  "#666",
		TextDark:      "#333",
		TextDisabled:  "#555",

		Accent:          "#e94560",
		AccentHover:     "#ff6b6b",
		AccentPressed:   "#c73e54",
		AccentContainer: "#2d1520",
		AccentText:      "#ffffff",
		AccentHoverText: "#ffffff",

		Secondary:          "#64b5f6",
		SecondaryHover:     "#90caf9",
		SecondaryPressed:   "#42a5f5",
		SecondaryContainer: "#1a2f3a",

		Tertiary:          "#9c27b0",
		TertiaryHover:     "#ba68c8",
		TertiaryPressed:   "#8e24aa",
		TertiaryContainer: "#2a1a2e",

		Success:   "#4caf50",
		SuccessBg: "#e8f5e9",
		Warning:   "#ff9800",
		WarningBg: "#fff3e0",
		Danger:    "#d32f2f",
		DangerBg:  "#ffebee",
		Info:      "#2196f3",
		InfoBg:    "#e3f2fd",

		SelectionBg:    "#e3f2fd",
		HoverOverlay:   "rgba(255, 255, 255, 0.05)",
		PressedOverlay: "rgba(0, 0, 0, 0.1)",
		BorderRadius:   "8px",
		BorderRadiusSm: "6px",
		BorderRadiusLg: "12px",

		Spacing:   16,
		SpacingSm: 8,
		SpacingLg: 24,
		SpacingXl: 32,

		PaddingV:  8,
		PaddingH:  14,
		PaddingSm: 6,
		PaddingLg: 12,

		TableHeaderBg:   "#1e2a4a",
		TableRowAlt:     "#1e2a4a",
		TableRowHover:   "#253559",
		ShadowColor:     "rgba(0, 0, 0, 0.3)",
		ShadowElevation: "rgba(0, 0, 0, 0.2)",
	}
}

// FromPalette maps a [Palette] onto the full [Theme] field set.
// Accents come straight from the palette with brightness-shifted hover
// and pressed states; derived tiers (tertiary background, disabled
// text, outline variant) are brightness adjustments of their base
// roles; status colors stay at their fixed defaults. It returns an
// error wrapping [colors.ErrFormat] if the palette holds a malformed
// color.
func FromPalette(p Palette) (Theme, error) {
	b := adjuster{}
	t := Theme{
		BgPrimary:   p.Background,
		BgSecondary: p.Surface,
		BgTertiary:  b.adjust(p.Background, 0.8),

		Surface:        p.Surface,
		SurfaceVariant: p.SurfaceVariant,
		SurfaceDim:     b.adjust(p.Surface, 0.85),

		Border:         p.Outline,
		BorderFocus:    p.Primary,
		BorderHover:    b.adjust(p.Outline, 1.3),
		Outline:        p.Outline,
		OutlineVariant: b.adjust(p.Outline, 0.7),

		TextPrimary:   p.OnBackground,
		TextSecondary: p.OnSurfaceVariant,
		TextTertiary:  b.adjust(p.OnSurfaceVariant, 0.8),
		TextDark:      p.OnPrimaryContainer,
		TextDisabled:  b.adjust(p.OnSurfaceVariant, 0.5),

		Accent:          p.Primary,
		AccentHover:     b.adjust(p.Primary, 1.2),
		AccentPressed:   b.adjust(p.Primary, 0.8),
		AccentContainer: p.PrimaryContainer,
		AccentText:      p.OnPrimary,
		AccentHoverText: p.OnPrimary,

		Secondary:          p.Secondary,
		SecondaryHover:     b.adjust(p.Secondary, 1.2),
		SecondaryPressed:   b.adjust(p.Secondary, 0.8),
		SecondaryContainer: p.SecondaryContainer,

		Tertiary:          p.Tertiary,
		TertiaryHover:     b.adjust(p.Tertiary, 1.2),
		TertiaryPressed:   b.adjust(p.Tertiary, 0.8),
		TertiaryContainer: p.TertiaryContainer,

		Success:   "#4caf50",
		SuccessBg: "#e8f5e9",
		Warning:   "#ff9800",
		WarningBg: "#fff3e0",
		Danger:    "#d32f2f",
		DangerBg:  "#ffebee",
		Info:      "#2196f3",
		InfoBg:    "#e3f2fd",

		SelectionBg:    p.PrimaryContainer,
		HoverOverlay:   "rgba(255, 255, 255, 0.05)",
		PressedOverlay: "rgba(0, 0, 0, 0.1)",
		BorderRadius:   "8px",
		BorderRadiusSm: "6px",
		BorderRadiusLg: "12px",

		Spacing:   16,
		SpacingSm: 8,
		SpacingLg: 24,
		SpacingXl: 32,

		PaddingV:  8,
		PaddingH:  14,
		PaddingSm: 6,
		PaddingLg: 12,

		TableHeaderBg:   p.SurfaceVariant,
		TableRowAlt:     p.SurfaceVariant,
		TableRowHover:   b.adjust(p.SurfaceVariant, 1.2),
		ShadowColor:     "rgba(0, 0, 0, 0.3)",
		ShadowElevation: "rgba(0, 0, 0, 0.2)",
	}
	if b.err != nil {
		return Theme{}, b.err
	}
	return t, nil
}

// adjuster applies brightness adjustments while collecting the first
// error, so FromPalette reads as one literal instead of error plumbing.
type adjuster struct {
	err error
}

func (b *adjuster) adjust(hex string, factor float32) string {
	s, err := hsl.AdjustBrightness(hex, factor)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return hex
	}
	return s
}
