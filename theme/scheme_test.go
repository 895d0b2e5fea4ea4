// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemes(t *testing.T) {
	s := Schemes()
	require.Len(t, s, 9)
	assert.Equal(t, DefaultScheme, s[0])
	assert.Equal(t, "scheme-neutral", s[8])

	// returned slice is a copy
	s[0] = "mutated"
	assert.Equal(t, DefaultScheme, Schemes()[0])
}

func TestSchemeDisplayNames(t *testing.T) {
	names := SchemeDisplayNames()
	require.Len(t, names, 9)
	assert.Equal(t, "Vibrant", names["scheme-vibrant"])
	assert.Equal(t, "Tonal Spot (Default)", names[DefaultScheme])
}

func TestNormalizeScheme(t *testing.T) {
	got, err := NormalizeScheme("vibrant")
	require.NoError(t, err)
	assert.Equal(t, "scheme-vibrant", got)

	got, err = NormalizeScheme("scheme-vibrant")
	require.NoError(t, err)
	assert.Equal(t, "scheme-vibrant", got)

	got, err = NormalizeScheme(DefaultScheme)
	require.NoError(t, err)
	assert.Equal(t, DefaultScheme, got)

	_, err = NormalizeScheme("not-a-scheme")
	assert.ErrorIs(t, err, ErrValidation)

	// matching is case-sensitive
	_, err = NormalizeScheme("Vibrant")
	assert.ErrorIs(t, err, ErrValidation)
}
