// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Settings file for the hexnav demo. TOML on disk, defaults
// merged on load, typed accessors resolving the string enums.

// Package config loads and saves the hexnav settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/framegrace/hexview/hexview"
	"github.com/framegrace/hexview/scroll"
)

const configName = "hexnav.toml"

// Settings is the on-disk configuration. Unset fields keep their
// defaults; unknown keys are ignored.
type Settings struct {
	// Columns is the virtual grid width.
	Columns uint64 `toml:"columns"`
	// Step is "cell" or "pixel".
	Step string `toml:"step"`
	// Padding is "compact" or "spacious".
	Padding string `toml:"padding"`
	// Theme is "dark" or "light".
	Theme string `toml:"theme"`
	// WheelSwap is "auto", "always" or "never".
	WheelSwap string `toml:"wheel_swap"`
	// LogFile receives demo logs; empty disables logging.
	LogFile string `toml:"log_file"`

	Navigation NavigationSettings `toml:"navigation"`
	Colors     ColorSettings      `toml:"colors"`
}

// NavigationSettings selects the viewport-follow policy per axis:
// "lazy", "start", "center" or "end".
type NavigationSettings struct {
	Horizontal string `toml:"horizontal"`
	Vertical   string `toml:"vertical"`
}

// ColorSettings override single theme colors as "#rrggbb" strings. Empty
// strings keep the theme's value.
type ColorSettings struct {
	Background string `toml:"background"`
	Text       string `toml:"text"`
	Header     string `toml:"header"`
	HeaderText string `toml:"header_text"`
	Border     string `toml:"border"`
	Accent     string `toml:"accent"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		Columns:   32,
		Step:      "cell",
		Padding:   "compact",
		Theme:     "dark",
		WheelSwap: "auto",
		Navigation: NavigationSettings{
			Horizontal: "lazy",
			Vertical:   "lazy",
		},
	}
}

// Path is the settings file location under the user config directory.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hexnav", configName), nil
}

// Load reads the settings at path, merged over the defaults. A missing
// file yields the defaults without error.
func Load(path string) (Settings, error) {
	s := Defaults()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("load config: %w", err)
	}
	return s, nil
}

// Save writes the settings to path, creating parent directories.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// ResolveStep maps the step enum.
func (s Settings) ResolveStep() (hexview.Step, error) {
	switch s.Step {
	case "", "cell":
		return hexview.StepCell, nil
	case "pixel":
		return hexview.StepPixel, nil
	default:
		return hexview.StepCell, fmt.Errorf("unknown step %q", s.Step)
	}
}

// ResolvePadding maps the padding enum.
func (s Settings) ResolvePadding() (hexview.PaddingSettings, error) {
	switch s.Padding {
	case "", "compact":
		return hexview.CompactPadding(), nil
	case "spacious":
		return hexview.SpaciousPadding(), nil
	default:
		return hexview.CompactPadding(), fmt.Errorf("unknown padding %q", s.Padding)
	}
}

// ResolveWheelSwap maps the wheel_swap enum.
func (s Settings) ResolveWheelSwap() (scroll.WheelAxisSwap, error) {
	switch s.WheelSwap {
	case "", "auto":
		return scroll.SwapAuto, nil
	case "always":
		return scroll.SwapAlways, nil
	case "never":
		return scroll.SwapNever, nil
	default:
		return scroll.SwapAuto, fmt.Errorf("unknown wheel_swap %q", s.WheelSwap)
	}
}

// ResolveNavigation maps one axis' navigation enum.
func ResolveNavigation(name string) (hexview.Navigation, error) {
	switch name {
	case "", "lazy":
		return hexview.Lazy(), nil
	case "start":
		return hexview.Aligned(hexview.AlignStart), nil
	case "center":
		return hexview.Aligned(hexview.AlignCenter), nil
	case "end":
		return hexview.Aligned(hexview.AlignEnd), nil
	default:
		return hexview.Lazy(), fmt.Errorf("unknown navigation %q", name)
	}
}
