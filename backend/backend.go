// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package backend selects between the two palette-generation engines —
// the built-in HSL synthesizer and the external matugen tool — and
// exposes the single Generate entry point that the rest of glaze
// themes through.
package backend

import (
	"fmt"
	"log/slog"

	"github.com/glazekit/glaze/colors/extract"
	"github.com/glazekit/glaze/matugen"
	"github.com/glazekit/glaze/theme"
)

// Backend identifies a palette-generation engine.
type Backend string

const (
	// Auto resolves to External when the matugen binary is
	// available, and Local otherwise.
	Auto Backend = "auto"

	// External is the matugen engine; it supports all schemes but
	// requires the binary to be installed.
	External Backend = "external"

	// Local is the built-in synthesizer; always available, but it
	// implements only the default scheme.
	Local Backend = "local"
)

// ParseBackend converts a string into a [Backend], returning an error
// wrapping [theme.ErrValidation] for unrecognized values.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case Auto, External, Local:
		return Backend(s), nil
	}
	return "", fmt.Errorf("backend: unknown backend %q (valid: auto, external, local): %w",
		s, theme.ErrValidation)
}

// Options select what to generate a theme from.
type Options struct {

	// ImagePath is the wallpaper whose dominant color seeds the
	// palette. One of ImagePath and Color must be set; ImagePath
	// wins when both are.
	ImagePath string

	// Color is a seed hex color used directly.
	Color string

	// Scheme is the palette flavor; bare or "scheme-" prefixed,
	// empty means [theme.DefaultScheme]. Only the external engine
	// honors it; the local engine warns and ignores it.
	Scheme string

	// Dark selects dark-mode output.
	Dark bool
}

// Selector resolves a requested backend and runs the chosen engine.
type Selector struct {

	// Engine is the external engine; nil means a default
	// [matugen.New] engine on the real binary.
	Engine *matugen.Engine

	// Cell receives the generated theme; nil means [theme.Main].
	Cell *theme.Cell
}

func (s *Selector) engine() *matugen.Engine {
	if s.Engine == nil {
		s.Engine = matugen.New()
	}
	return s.Engine
}

func (s *Selector) cell() *theme.Cell {
	if s.Cell == nil {
		return theme.Main
	}
	return s.Cell
}

// Info reports the availability of each concrete backend.
func (s *Selector) Info() map[Backend]bool {
	return map[Backend]bool{
		External: s.engine().Available(),
		Local:    true,
	}
}

// Generate produces a theme from the given options using the
// requested backend and installs it as the current theme in the
// selector's cell, returning the theme and which engine actually ran.
//
// It returns an error wrapping [theme.ErrValidation] when neither an
// image nor a color is given or the scheme is unknown, and
// [matugen.ErrUnavailable] when External is requested explicitly but
// the binary is absent — there is no silent fallback, and the current
// theme is left untouched on every failure path.
func (s *Selector) Generate(opts Options, b Backend) (theme.Theme, Backend, error) {
	if opts.ImagePath == "" && opts.Color == "" {
		return theme.Theme{}, "", fmt.Errorf("backend: must provide either an image path or a color: %w",
			theme.ErrValidation)
	}
	scheme := opts.Scheme
	if scheme == "" {
		scheme = theme.DefaultScheme
	}
	scheme, err := theme.NormalizeScheme(scheme)
	if err != nil {
		return theme.Theme{}, "", err
	}

	resolved := b
	if b == Auto {
		if s.engine().Available() {
			resolved = External
		} else {
			resolved = Local
		}
	}

	var t theme.Theme
	switch resolved {
	case External:
		t, err = s.engine().GenerateTheme(matugen.Options{
			ImagePath: opts.ImagePath,
			Color:     opts.Color,
			Scheme:    scheme,
			Dark:      opts.Dark,
		})
	case Local:
		t, err = s.generateLocal(opts, scheme)
	default:
		return theme.Theme{}, "", fmt.Errorf("backend: unknown backend %q: %w", b, theme.ErrValidation)
	}
	if err != nil {
		return theme.Theme{}, "", err
	}

	s.cell().Set(t)
	return t, resolved, nil
}

// generateLocal runs the built-in pipeline: dominant color extraction
// when theming from an image, then the HSL palette synthesizer.
func (s *Selector) generateLocal(opts Options, scheme string) (theme.Theme, error) {
	if scheme != theme.DefaultScheme {
		slog.Warn("backend: local engine ignores the scheme parameter; install matugen for scheme support",
			"scheme", scheme)
	}
	seed := opts.Color
	if opts.ImagePath != "" {
		var err error
		seed, err = extract.DominantColor(opts.ImagePath)
		if err != nil {
			return theme.Theme{}, err
		}
	}
	p, err := theme.Synthesize(seed, opts.Dark)
	if err != nil {
		return theme.Theme{}, err
	}
	return theme.FromPalette(p)
}

// Generate runs [Selector.Generate] on a default selector: the real
// matugen probe and the process-wide [theme.Main] cell.
func Generate(opts Options, b Backend) (theme.Theme, Backend, error) {
	return (&Selector{}).Generate(opts, b)
}

// Info reports backend availability for the real matugen probe.
func Info() map[Backend]bool {
	return (&Selector{}).Info()
}
