// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matugen

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glazekit/glaze/theme"
)

// fakeRunner records the invocation and plays back canned output.
type fakeRunner struct {
	out     string
	err     error
	gotCmd  string
	gotArgs []string
}

func (f *fakeRunner) Output(cmd string, args ...string) (string, error) {
	f.gotCmd = cmd
	f.gotArgs = args
	return f.out, f.err
}

func found(name string) (string, error)    { return "/usr/bin/" + name, nil }
func notFound(name string) (string, error) { return "", errors.New("not found") }

// themeRoles is every role the theme mapping reads.
var themeRoles = []string{
	"surface", "surface_dim",
	"surface_container_lowest", "surface_container_low", "surface_container",
	"outline", "outline_variant",
	"primary", "primary_container", "on_primary", "on_primary_container",
	"on_surface", "on_surface_variant",
	"secondary", "secondary_fixed_dim", "secondary_container",
	"tertiary", "tertiary_fixed_dim", "tertiary_container",
	"error", "error_container", "shadow", "scrim",
}

// fixture builds a matugen JSON payload with distinct dark and light
// values per role.
func fixture(t *testing.T) string {
	t.Helper()
	colors := map[string]map[string]string{}
	for i, role := range themeRoles {
		colors[role] = map[string]string{
			"dark":    fmt.Sprintf("#%06x", i),
			"light":   fmt.Sprintf("#%06x", i+0x100000),
			"default": fmt.Sprintf("#%06x", i+0x200000),
		}
	}
	data, err := json.Marshal(map[string]any{"colors": colors})
	require.NoError(t, err)
	return string(data)
}

func darkValue(role string) string {
	for i, r := range themeRoles {
		if r == role {
			return fmt.Sprintf("#%06x", i)
		}
	}
	return ""
}

func lightValue(role string) string {
	for i, r := range themeRoles {
		if r == role {
			return fmt.Sprintf("#%06x", i+0x100000)
		}
	}
	return ""
}

func TestColorsFromColor(t *testing.T) {
	run := &fakeRunner{out: fixture(t)}
	e := &Engine{Runner: run, LookPath: found}

	got, err := e.Colors(Options{Color: "e94560", Dark: true})
	require.NoError(t, err)

	assert.Equal(t, Tool, run.gotCmd)
	assert.Equal(t,
		[]string{"color", "hex", "#e94560", "-t", "scheme-tonal-spot", "-m", "dark", "-j", "hex"},
		run.gotArgs)
	assert.Equal(t, darkValue("primary"), got["primary"])
	assert.Len(t, got, len(themeRoles))
}

func TestColorsFromImage(t *testing.T) {
	run := &fakeRunner{out: fixture(t)}
	e := &Engine{Runner: run, LookPath: found}

	got, err := e.Colors(Options{ImagePath: "/tmp/wall.png", Scheme: "vibrant"})
	require.NoError(t, err)

	// bare scheme names are normalized, and light mode selects the
	// light variants
	assert.Equal(t,
		[]string{"image", "/tmp/wall.png", "-t", "scheme-vibrant", "-m", "light", "-j", "hex"},
		run.gotArgs)
	assert.Equal(t, lightValue("primary"), got["primary"])
}

func TestColorsValidation(t *testing.T) {
	e := &Engine{Runner: &fakeRunner{}, LookPath: found}

	_, err := e.Colors(Options{})
	assert.ErrorIs(t, err, theme.ErrValidation)

	_, err = e.Colors(Options{Color: "#fff000", Scheme: "not-a-scheme"})
	assert.ErrorIs(t, err, theme.ErrValidation)
}

func TestColorsUnavailable(t *testing.T) {
	run := &fakeRunner{out: fixture(t)}
	e := &Engine{Runner: run, LookPath: notFound}

	_, err := e.Colors(Options{Color: "#e94560"})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, run.gotCmd, "tool must not run when unavailable")
}

func TestColorsSubprocessFailures(t *testing.T) {
	// non-zero exit
	e := &Engine{Runner: &fakeRunner{err: errors.New("exit status 1")}, LookPath: found}
	_, err := e.Colors(Options{Color: "#e94560"})
	assert.ErrorIs(t, err, ErrSubprocess)

	// garbage on stdout
	e = &Engine{Runner: &fakeRunner{out: "segfault"}, LookPath: found}
	_, err = e.Colors(Options{Color: "#e94560"})
	assert.ErrorIs(t, err, ErrSubprocess)

	// well-formed JSON with no colors
	e = &Engine{Runner: &fakeRunner{out: `{"colors": {}}`}, LookPath: found}
	_, err = e.Colors(Options{Color: "#e94560"})
	assert.ErrorIs(t, err, ErrSubprocess)

	// role missing the requested mode
	e = &Engine{Runner: &fakeRunner{out: `{"colors": {"primary": {"light": "#ffffff"}}}`}, LookPath: found}
	_, err = e.Colors(Options{Color: "#e94560", Dark: true})
	assert.ErrorIs(t, err, ErrSubprocess)
}

func TestGenerateThemeDark(t *testing.T) {
	e := &Engine{Runner: &fakeRunner{out: fixture(t)}, LookPath: found}

	th, err := e.GenerateTheme(Options{ImagePath: "/tmp/wall.png", Dark: true})
	require.NoError(t, err)

	// dark mode forces the OLED-black background tier
	assert.Equal(t, "#000000", th.BgPrimary)
	assert.Equal(t, "#000000", th.SurfaceDim)
	assert.Equal(t, darkValue("surface_container_lowest"), th.BgSecondary)
	assert.Equal(t, darkValue("surface_container_low"), th.BgTertiary)
	assert.Equal(t, darkValue("primary_container"), th.Accent)
	assert.Equal(t, darkValue("primary"), th.AccentHover)
	assert.Equal(t, darkValue("on_primary_container"), th.AccentText)
	assert.Equal(t, darkValue("error"), th.Danger)
	assert.Equal(t, darkValue("scrim"), th.ShadowElevation)

	// status colors stay fixed regardless of the wallpaper
	assert.Equal(t, "#4caf50", th.Success)
	assert.Equal(t, "#ff9800", th.Warning)
	assert.Equal(t, "#2196f3", th.Info)
}

func TestGenerateThemeLight(t *testing.T) {
	e := &Engine{Runner: &fakeRunner{out: fixture(t)}, LookPath: found}

	th, err := e.GenerateTheme(Options{ImagePath: "/tmp/wall.png"})
	require.NoError(t, err)

	// light mode uses the engine's surface roles directly
	assert.Equal(t, lightValue("surface"), th.BgPrimary)
	assert.Equal(t, lightValue("surface_dim"), th.SurfaceDim)
	assert.Equal(t, "rgba(0, 0, 0, 0.05)", th.HoverOverlay)
}

func TestGenerateThemeMissingRole(t *testing.T) {
	colors := map[string]map[string]string{}
	for _, role := range themeRoles {
		if role == "scrim" {
			continue
		}
		colors[role] = map[string]string{"dark": "#123456"}
	}
	data, err := json.Marshal(map[string]any{"colors": colors})
	require.NoError(t, err)

	e := &Engine{Runner: &fakeRunner{out: string(data)}, LookPath: found}
	_, err = e.GenerateTheme(Options{ImagePath: "/tmp/wall.png", Dark: true})
	assert.ErrorIs(t, err, ErrSubprocess)
	assert.ErrorContains(t, err, "scrim")
}
