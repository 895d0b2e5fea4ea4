// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx wires [log/slog] verbosity for glaze commands: a single
// process-wide user level that the CLI flags raise or lower.
package logx

import (
	"log/slog"
	"os"
)

// userLevel is the process-wide log level, adjustable at runtime
// through [SetUserLevel].
var userLevel = &slog.LevelVar{}

// Init installs a text handler on the default slog logger at the
// current user level. It is called once from main.
func Init() {
	userLevel.Set(defaultUserLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: userLevel,
	})))
}

// UserLevel returns the current process-wide log level.
func UserLevel() slog.Level {
	return userLevel.Level()
}

// SetUserLevel sets the process-wide log level.
func SetUserLevel(level slog.Level) {
	userLevel.Set(level)
}
