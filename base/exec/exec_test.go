// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputMissingBinary(t *testing.T) {
	_, err := Output("glaze-test-no-such-binary")
	assert.Error(t, err)
}

func TestLookPathMissingBinary(t *testing.T) {
	_, err := LookPath("glaze-test-no-such-binary")
	assert.Error(t, err)
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("exit status 1")
	e := &Error{Cmd: "matugen image x.png", Stderr: "no such file", Err: base}
	assert.Contains(t, e.Error(), "no such file")
	assert.Contains(t, e.Error(), "matugen")
	assert.ErrorIs(t, e, base)

	e = &Error{Cmd: "matugen", Err: base}
	assert.Equal(t, "exec: matugen: exit status 1", e.Error())
}
