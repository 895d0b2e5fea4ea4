// Copyright (c) 2025, Glaze Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glaze generates Material You themes from wallpaper images or
// seed colors, previews them in the terminal, and exports them as TOML
// or JSON for consumption by UI code.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/glazekit/glaze/backend"
	"github.com/glazekit/glaze/base/logx"
	"github.com/glazekit/glaze/theme"
)

var (
	imagePath   string
	seedColor   string
	schemeName  string
	mode        string
	backendName string
	outPath     string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "glaze",
	Short: "glaze – Material You theme generation",
	Long:  "Glaze derives complete UI color themes from a wallpaper image or a seed color,\nusing either its built-in palette synthesizer or the external matugen engine.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logx.SetUserLevel(slog.LevelDebug)
		}
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a theme from an image or color",
	RunE:  runGenerate,
}

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List the available color schemes",
	Run:   runSchemes,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a wallpaper and regenerate the theme on change",
	RunE:  runWatch,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	for _, cmd := range []*cobra.Command{generateCmd, watchCmd} {
		cmd.Flags().StringVar(&imagePath, "image", "", "Wallpaper image to derive the theme from")
		cmd.Flags().StringVar(&seedColor, "color", "", "Seed hex color (e.g. '#e94560')")
		cmd.Flags().StringVar(&schemeName, "scheme", theme.DefaultScheme, "Color scheme (external backend only)")
		cmd.Flags().StringVar(&mode, "mode", "dark", "Theme mode: dark or light")
		cmd.Flags().StringVar(&backendName, "backend", "auto", "Backend: auto, external, or local")
		cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the theme to a .toml or .json file")
	}

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(schemesCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	logx.Init()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateOptions() (backend.Options, backend.Backend, error) {
	var dark bool
	switch mode {
	case "dark":
		dark = true
	case "light":
		dark = false
	default:
		return backend.Options{}, "", fmt.Errorf("unknown mode %q (valid: dark, light)", mode)
	}
	b, err := backend.ParseBackend(backendName)
	if err != nil {
		return backend.Options{}, "", err
	}
	img := imagePath
	if img != "" {
		if img, err = homedir.Expand(img); err != nil {
			return backend.Options{}, "", err
		}
	}
	return backend.Options{
		ImagePath: img,
		Color:     seedColor,
		Scheme:    schemeName,
		Dark:      dark,
	}, b, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, b, err := generateOptions()
	if err != nil {
		return err
	}
	t, used, err := backend.Generate(opts, b)
	if err != nil {
		return err
	}
	printTheme(t, used)
	if outPath != "" {
		if err := writeTheme(outPath, t); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", outPath)
	}
	return nil
}

func runSchemes(cmd *cobra.Command, args []string) {
	names := theme.SchemeDisplayNames()
	for _, s := range theme.Schemes() {
		fmt.Printf("%-22s %s\n", s, names[s])
	}
}

// printTheme renders the main theme roles as terminal swatches.
func printTheme(t theme.Theme, used backend.Backend) {
	profile := termenv.ColorProfile()
	fmt.Printf("theme generated (backend: %s)\n\n", used)
	for _, role := range []struct {
		name, hex string
	}{
		{"bg_primary", t.BgPrimary},
		{"bg_secondary", t.BgSecondary},
		{"bg_tertiary", t.BgTertiary},
		{"surface", t.Surface},
		{"surface_variant", t.SurfaceVariant},
		{"accent", t.Accent},
		{"accent_hover", t.AccentHover},
		{"accent_container", t.AccentContainer},
		{"secondary", t.Secondary},
		{"tertiary", t.Tertiary},
		{"text_primary", t.TextPrimary},
		{"text_secondary", t.TextSecondary},
		{"border", t.Border},
		{"outline", t.Outline},
		{"danger", t.Danger},
	} {
		swatch := termenv.String("      ").Background(profile.Color(role.hex))
		fmt.Printf("  %s %-18s %s\n", swatch, role.name, role.hex)
	}
}

// writeTheme exports the theme to the given path; the extension picks
// the format.
func writeTheme(path string, t theme.Theme) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		data, err = toml.Marshal(t)
	case ".json":
		data, err = json.MarshalIndent(t, "", "  ")
	default:
		return fmt.Errorf("unsupported theme format %q (use .toml or .json)", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
