// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matugen adapts the matugen command-line tool as an external
// color engine: it invokes the tool on a wallpaper image or seed
// color, parses its JSON output, and maps its semantic roles onto the
// glaze [theme.Theme] field set.
//
// matugen provides the scheme flavors the local synthesizer does not
// (see [theme.Schemes]). Install it with `paru -S matugen-bin` or
// `cargo install matugen`.
package matugen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/glazekit/glaze/base/exec"
	"github.com/glazekit/glaze/theme"
)

// Tool is the name of the external binary probed for on PATH.
const Tool = "matugen"

var (
	// ErrUnavailable is returned when the matugen binary is not
	// discoverable on PATH.
	ErrUnavailable = errors.New("matugen is not installed (paru -S matugen-bin or cargo install matugen)")

	// ErrSubprocess is returned when matugen ran but exited non-zero
	// or produced output that could not be parsed.
	ErrSubprocess = errors.New("matugen failed")
)

// Runner abstracts the subprocess invocation so tests can substitute a
// fake for the real binary.
type Runner interface {
	Output(cmd string, args ...string) (string, error)
}

// Engine invokes matugen. The zero value is not usable; construct
// with [New].
type Engine struct {

	// Runner executes the tool; defaults to a [exec.Config].
	Runner Runner

	// LookPath is the availability probe; defaults to [exec.LookPath].
	LookPath func(name string) (string, error)
}

// New returns an [Engine] wired to the real binary.
func New() *Engine {
	return &Engine{
		Runner:   &exec.Config{},
		LookPath: exec.LookPath,
	}
}

// Available reports whether the matugen binary is discoverable on
// PATH. It gates every external-engine call and drives auto backend
// resolution.
func (e *Engine) Available() bool {
	_, err := e.LookPath(Tool)
	return err == nil
}

// Available reports availability using the real PATH probe.
func Available() bool {
	_, err := exec.LookPath(Tool)
	return err == nil
}

// Options select what matugen generates.
type Options struct {

	// ImagePath is the wallpaper to derive colors from.
	// Exactly one of ImagePath and Color must be set.
	ImagePath string

	// Color is a seed hex color, with or without a leading #.
	Color string

	// Scheme is the palette flavor; bare or "scheme-" prefixed.
	// Empty means [theme.DefaultScheme].
	Scheme string

	// Dark selects the dark variant of each generated role.
	Dark bool
}

func (o Options) mode() string {
	if o.Dark {
		return "dark"
	}
	return "light"
}

// Colors runs matugen and returns its role-keyed color map for the
// requested mode. It returns an error wrapping [theme.ErrValidation]
// for missing input or an unknown scheme, [ErrUnavailable] if the
// binary is absent, and [ErrSubprocess] if the tool fails or emits
// unparseable output.
func (e *Engine) Colors(opts Options) (map[string]string, error) {
	if opts.ImagePath == "" && opts.Color == "" {
		return nil, fmt.Errorf("matugen: must provide either an image path or a color: %w", theme.ErrValidation)
	}
	scheme := opts.Scheme
	if scheme == "" {
		scheme = theme.DefaultScheme
	}
	scheme, err := theme.NormalizeScheme(scheme)
	if err != nil {
		return nil, err
	}
	if !e.Available() {
		return nil, ErrUnavailable
	}

	mode := opts.mode()
	var args []string
	if opts.ImagePath != "" {
		args = []string{"image", opts.ImagePath, "-t", scheme, "-m", mode, "-j", "hex"}
	} else {
		hex := opts.Color
		if !strings.HasPrefix(hex, "#") {
			hex = "#" + hex
		}
		args = []string{"color", "hex", hex, "-t", scheme, "-m", mode, "-j", "hex"}
	}

	out, err := e.Runner.Output(Tool, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubprocess, err)
	}

	// matugen emits {"colors": {role: {"dark": hex, "light": hex, "default": hex}}}
	var payload struct {
		Colors map[string]map[string]string `json:"colors"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		return nil, fmt.Errorf("%w: unparseable output: %v", ErrSubprocess, err)
	}
	if len(payload.Colors) == 0 {
		return nil, fmt.Errorf("%w: output has no colors", ErrSubprocess)
	}
	roles := make(map[string]string, len(payload.Colors))
	for role, variants := range payload.Colors {
		hex, ok := variants[mode]
		if !ok {
			return nil, fmt.Errorf("%w: role %q has no %s variant", ErrSubprocess, role, mode)
		}
		roles[role] = hex
	}
	return roles, nil
}

// GenerateTheme runs matugen and maps its roles onto a full
// [theme.Theme]. Backgrounds depend on the mode: dark mode forces a
// pure OLED-black primary background tier and derives the others from
// matugen's surface containers, while light mode uses the surface
// roles directly. Status colors stay fixed for functional consistency.
func (e *Engine) GenerateTheme(opts Options) (theme.Theme, error) {
	c, err := e.Colors(opts)
	if err != nil {
		return theme.Theme{}, err
	}

	r := roleMap{roles: c}
	var bgPrimary, surfaceDim, hoverOverlay string
	if opts.Dark {
		bgPrimary = "#000000"
		surfaceDim = "#000000"
		hoverOverlay = "rgba(255, 255, 255, 0.05)"
	} else {
		bgPrimary = r.get("surface")
		surfaceDim = r.get("surface_dim")
		hoverOverlay = "rgba(0, 0, 0, 0.05)"
	}

	t := theme.Theme{
		BgPrimary:   bgPrimary,
		BgSecondary: r.get("surface_container_lowest"),
		BgTertiary:  r.get("surface_container_low"),

		Surface:        r.get("surface_container_low"),
		SurfaceVariant: r.get("surface_container"),
		SurfaceDim:     surfaceDim,

		Border:         r.get("outline_variant"),
		BorderFocus:    r.get("primary"),
		BorderHover:    r.get("outline"),
		Outline:        r.get("outline"),
		OutlineVariant: r.get("outline_variant"),

		TextPrimary:   r.get("on_surface"),
		TextSecondary: r.get("on_surface_variant"),
		TextTertiary:  r.get("outline"),
		TextDark:      r.get("on_primary_container"),
		TextDisabled:  r.get("outline_variant"),

		// tonal button style: container background at rest, full
		// primary on hover for strong feedback
		Accent:          r.get("primary_container"),
		AccentHover:     r.get("primary"),
		AccentPressed:   r.get("primary_container"),
		AccentContainer: r.get("primary_container"),
		AccentText:      r.get("on_primary_container"),
		AccentHoverText: r.get("on_primary"),

		Secondary:          r.get("secondary"),
		SecondaryHover:     r.get("secondary_fixed_dim"),
		SecondaryPressed:   r.get("secondary_container"),
		SecondaryContainer: r.get("secondary_container"),

		Tertiary:          r.get("tertiary"),
		TertiaryHover:     r.get("tertiary_fixed_dim"),
		TertiaryPressed:   r.get("tertiary_container"),
		TertiaryContainer: r.get("tertiary_container"),

		Success:   "#4caf50",
		SuccessBg: "#e8f5e9",
		Warning:   "#ff9800",
		WarningBg: "#fff3e0",
		Danger:    r.get("error"),
		DangerBg:  r.get("error_container"),
		Info:      "#2196f3",
		InfoBg:    "#e3f2fd",

		SelectionBg:    r.get("primary_container"),
		HoverOverlay:   hoverOverlay,
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

		TableHeaderBg:   r.get("surface_container"),
		TableRowAlt:     r.get("surface_container_lowest"),
		TableRowHover:   r.get("surface_container_low"),
		ShadowColor:     r.get("shadow"),
		ShadowElevation: r.get("scrim"),
	}
	if r.missing != "" {
		return theme.Theme{}, fmt.Errorf("%w: output is missing role %q", ErrSubprocess, r.missing)
	}
	return t, nil
}

// roleMap records the first missing role instead of failing each
// lookup, so the Theme literal above stays flat.
type roleMap struct {
	roles   map[string]string
	missing string
}

func (r *roleMap) get(role string) string {
	hex, ok := r.roles[role]
	if !ok && r.missing == "" {
		r.missing = role
	}
	return hex
}
