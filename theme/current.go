// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

// Cell holds one current [Theme], replaced wholesale by [Cell.Set].
// It provides no locking: the expected access pattern is a single GUI
// event loop, and concurrent users must add their own synchronization
// around Get and Set.
type Cell struct {
	theme Theme
}

// NewCell returns a [Cell] seeded with [Default].
func NewCell() *Cell {
	return &Cell{theme: Default()}
}

// Get returns the theme currently held by the cell.
func (c *Cell) Get() Theme {
	return c.theme
}

// Set replaces the theme held by the cell.
func (c *Cell) Set(t Theme) {
	c.theme = t
}

// Main is the process-wide current theme, read by presentation code on
// every stylesheet regeneration. [Current] and [SetCurrent] operate on
// it; code that wants an isolated theme slot (tests, previews) should
// carry its own [Cell] instead.
var Main = NewCell()

// Current returns the theme held by [Main].
func Current() Theme {
	return Main.Get()
}

// SetCurrent replaces the theme held by [Main].
func SetCurrent(t Theme) {
	Main.Set(t)
}
