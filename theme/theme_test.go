// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glazekit/glaze/colors"
	"github.com/glazekit/glaze/colors/hsl"
)

func TestDefault(t *testing.T) {
	d := Default()
	assert.Equal(t, "#1a1a2e", d.BgPrimary)
	assert.Equal(t, "#e94560", d.Accent)
	assert.Equal(t, "#4caf50", d.Success)
	assert.Equal(t, 16, d.Spacing)
	assert.Equal(t, "8px", d.BorderRadius)
}

func TestFromPalette(t *testing.T) {
	p, err := Synthesize("#336699", true)
	require.NoError(t, err)
	th, err := FromPalette(p)
	require.NoError(t, err)

	// direct mappings
	assert.Equal(t, p.Background, th.BgPrimary)
	assert.Equal(t, p.Surface, th.BgSecondary)
	assert.Equal(t, p.Primary, th.Accent)
	assert.Equal(t, p.PrimaryContainer, th.AccentContainer)
	assert.Equal(t, p.OnPrimary, th.AccentText)
	assert.Equal(t, p.Secondary, th.Secondary)
	assert.Equal(t, p.Tertiary, th.Tertiary)
	assert.Equal(t, p.OnBackground, th.TextPrimary)
	assert.Equal(t, p.Outline, th.Border)
	assert.Equal(t, p.Primary, th.BorderFocus)
	assert.Equal(t, p.PrimaryContainer, th.SelectionBg)
	assert.Equal(t, p.SurfaceVariant, th.TableHeaderBg)

	// derived tiers are brightness adjustments of their base roles
	wantTertiaryBg, err := hsl.AdjustBrightness(p.Background, 0.8)
	require.NoError(t, err)
	assert.Equal(t, wantTertiaryBg, th.BgTertiary)
	wantHover, err := hsl.AdjustBrightness(p.Primary, 1.2)
	require.NoError(t, err)
	assert.Equal(t, wantHover, th.AccentHover)

	// status colors never follow the palette
	assert.Equal(t, "#4caf50", th.Success)
	assert.Equal(t, "#ff9800", th.Warning)
	assert.Equal(t, "#d32f2f", th.Danger)
	assert.Equal(t, "#2196f3", th.Info)

	// spacing stays at the defaults
	assert.Equal(t, 16, th.Spacing)
	assert.Equal(t, 14, th.PaddingH)
}

func TestFromPaletteMalformed(t *testing.T) {
	p, err := Synthesize("#336699", true)
	require.NoError(t, err)
	p.Background = "not-a-color"
	_, err = FromPalette(p)
	assert.ErrorIs(t, err, colors.ErrFormat)
}

func TestCell(t *testing.T) {
	c := NewCell()
	assert.Equal(t, Default(), c.Get())

	p, err := Synthesize("#e94560", true)
	require.NoError(t, err)
	th, err := FromPalette(p)
	require.NoError(t, err)
	c.Set(th)
	assert.Equal(t, th, c.Get())
}

func TestCurrent(t *testing.T) {
	old := Current()
	defer SetCurrent(old)

	p, err := Synthesize("#8a2be2", false)
	require.NoError(t, err)
	th, err := FromPalette(p)
	require.NoError(t, err)
	SetCurrent(th)
	assert.Equal(t, th, Current())
}
