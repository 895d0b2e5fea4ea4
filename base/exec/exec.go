// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec runs external commands with captured output, as a small
// effectful collaborator that higher layers can replace with a fake in
// tests. It exists so the color-engine adapter never shells out
// directly.
package exec

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a command run when the [Config] does not set
// its own. Palette generation may legitimately take a few seconds on
// large wallpapers, so this is a generous ceiling, not a probe timeout.
const DefaultTimeout = 60 * time.Second

// Config holds the execution settings for commands run through it.
// The zero value is usable and runs commands in the current directory
// with [DefaultTimeout].
type Config struct {

	// Dir is the directory to execute commands in; empty means the
	// current directory.
	Dir string

	// Env is extra environment, appended to the parent environment.
	Env []string

	// Timeout bounds each command run; 0 means [DefaultTimeout].
	Timeout time.Duration
}

// Error is returned when a command exits non-zero, carrying whatever
// the command wrote to stderr.
type Error struct {
	Cmd    string
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("exec: %s: %v", e.Cmd, e.Err)
	}
	return fmt.Sprintf("exec: %s: %v: %s", e.Cmd, e.Err, e.Stderr)
}

func (e *Error) Unwrap() error { return e.Err }

// Output runs the given command and returns its stdout with the
// trailing newline trimmed. A non-zero exit or timeout returns an
// [*Error] with the captured stderr.
func (c *Config) Output(cmd string, args ...string) (string, error) {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	slog.Debug("exec: running", "cmd", cmd, "args", args)
	ec := exec.CommandContext(ctx, cmd, args...)
	ec.Dir = c.Dir
	if len(c.Env) > 0 {
		ec.Env = append(ec.Environ(), c.Env...)
	}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	ec.Stdout = stdout
	ec.Stderr = stderr
	if err := ec.Run(); err != nil {
		return "", &Error{
			Cmd:    ec.String(),
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return strings.TrimSuffix(stdout.String(), "\n"), nil
}

// Output calls [Config.Output] on a zero Config.
func Output(cmd string, args ...string) (string, error) {
	return (&Config{}).Output(cmd, args...)
}

// LookPath reports the full path of the given executable if it is
// discoverable on PATH. It is the availability probe used before
// selecting an external tool; unlike [Config.Output] it never blocks.
func LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
