// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"strings"
)

// DefaultScheme is the scheme used when the caller does not ask for a
// specific one. It is the standard balanced Material You flavor.
const DefaultScheme = "scheme-tonal-spot"

// schemes is the fixed, ordered set of palette flavors understood by
// the external matugen engine. The local synthesizer implements only
// the default flavor and ignores this value.
var schemes = []string{
	"scheme-tonal-spot",
	"scheme-vibrant",
	"scheme-expressive",
	"scheme-rainbow",
	"scheme-fruit-salad",
	"scheme-fidelity",
	"scheme-content",
	"scheme-monochrome",
	"scheme-neutral",
}

// schemeDisplayNames maps scheme identifiers to the names shown in a
// selection control.
var schemeDisplayNames = map[string]string{
	"scheme-tonal-spot":  "Tonal Spot (Default)",
	"scheme-vibrant":     "Vibrant",
	"scheme-expressive":  "Expressive",
	"scheme-rainbow":     "Rainbow",
	"scheme-fruit-salad": "Fruit Salad",
	"scheme-fidelity":    "Fidelity",
	"scheme-content":     "Content",
	"scheme-monochrome":  "Monochrome",
	"scheme-neutral":     "Neutral",
}

// Schemes returns the ordered list of recognized scheme identifiers.
func Schemes() []string {
	s := make([]string, len(schemes))
	copy(s, schemes)
	return s
}

// SchemeDisplayNames returns a copy of the scheme identifier to
// display name mapping.
func SchemeDisplayNames() map[string]string {
	m := make(map[string]string, len(schemeDisplayNames))
	for k, v := range schemeDisplayNames {
		m[k] = v
	}
	return m
}

// NormalizeScheme resolves a scheme name to its full "scheme-" form,
// accepting both bare names ("vibrant") and full ones
// ("scheme-vibrant"). Matching is case-sensitive. Unrecognized names
// return an error wrapping [ErrValidation].
func NormalizeScheme(scheme string) (string, error) {
	if _, ok := schemeDisplayNames[scheme]; ok {
		return scheme, nil
	}
	full := "scheme-" + scheme
	if _, ok := schemeDisplayNames[full]; ok {
		return full, nil
	}
	return "", fmt.Errorf("theme: unknown scheme %q (valid: %s): %w",
		scheme, strings.Join(schemes, ", "), ErrValidation)
}
