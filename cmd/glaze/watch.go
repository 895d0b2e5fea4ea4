// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/glazekit/glaze/backend"
)

// debounceDelay coalesces the burst of filesystem events that image
// editors and wallpaper tools emit when replacing a file.
const debounceDelay = 250 * time.Millisecond

func runWatch(cmd *cobra.Command, args []string) error {
	opts, b, err := generateOptions()
	if err != nil {
		return err
	}
	if opts.ImagePath == "" {
		return fmt.Errorf("watch requires --image")
	}

	regenerate := func() {
		t, used, err := backend.Generate(opts, b)
		if err != nil {
			slog.Error("watch: theme generation failed", "err", err)
			return
		}
		slog.Info("watch: theme regenerated", "backend", used)
		if outPath != "" {
			if err := writeTheme(outPath, t); err != nil {
				slog.Error("watch: writing theme failed", "path", outPath, "err", err)
			}
		}
	}
	regenerate()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// watch the directory, not the file: most tools replace the
	// wallpaper by rename, which drops a direct file watch
	dir := filepath.Dir(opts.ImagePath)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	slog.Info("watch: watching wallpaper", "path", opts.ImagePath)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	var debounce *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(opts.ImagePath) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			regenerate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch: watcher error", "err", err)
		case <-sig:
			return nil
		}
	}
}
