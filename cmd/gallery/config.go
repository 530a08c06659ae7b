// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotchain/widgets/dialog"
	"github.com/dotchain/widgets/menu"
	"gopkg.in/yaml.v3"
)

// Config is the optional gallery.yaml file.
type Config struct {
	Date   string       `yaml:"date,omitempty"`
	Menu   MenuConfig   `yaml:"menu"`
	Dialog DialogConfig `yaml:"dialog"`
}

// MenuConfig describes the sample menu. An item of "-" is a divider.
type MenuConfig struct {
	Items    []string `yaml:"items,omitempty"`
	Location string   `yaml:"location,omitempty"`
	Open     bool     `yaml:"open,omitempty"`
}

// DialogConfig describes the sample dialog.
type DialogConfig struct {
	Title     string         `yaml:"title,omitempty"`
	Text      string         `yaml:"text,omitempty"`
	Buttons   []ButtonConfig `yaml:"buttons,omitempty"`
	Open      bool           `yaml:"open,omitempty"`
	TrapFocus bool           `yaml:"trap_focus,omitempty"`
}

// ButtonConfig describes one dialog button.
type ButtonConfig struct {
	Text    string `yaml:"text"`
	Default bool   `yaml:"default,omitempty"`
	Cancel  bool   `yaml:"cancel,omitempty"`
}

// Resolved holds the configuration with defaults applied.
type Resolved struct {
	Date         time.Time
	MenuItems    []string
	MenuLocation menu.Location
	MenuOpen     bool
	Title        string
	Text         string
	Buttons      []dialog.Button
	DialogOpen   bool
	TrapFocus    bool
}

// LoadOptional reads the config file if present.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Resolve applies defaults. now is used when no date is configured.
func Resolve(cfg *Config, now time.Time) (*Resolved, error) {
	r := &Resolved{
		Date:         now,
		MenuItems:    cfg.Menu.Items,
		MenuLocation: menu.Location(strings.ToLower(strings.TrimSpace(cfg.Menu.Location))),
		MenuOpen:     cfg.Menu.Open,
		Title:        strings.TrimSpace(cfg.Dialog.Title),
		Text:         cfg.Dialog.Text,
		DialogOpen:   cfg.Dialog.Open,
		TrapFocus:    cfg.Dialog.TrapFocus,
	}

	if s := strings.TrimSpace(cfg.Date); s != "" {
		d, err := time.ParseInLocation("2006-01-02", s, now.Location())
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", s, err)
		}
		r.Date = d
	}

	switch r.MenuLocation {
	case "":
		r.MenuLocation = menu.BottomLeft
	case menu.BottomLeft, menu.BottomRight:
	default:
		return nil, fmt.Errorf("invalid menu location %q (want %s or %s)", cfg.Menu.Location, menu.BottomLeft, menu.BottomRight)
	}

	if len(r.MenuItems) == 0 {
		r.MenuItems = []string{"Home", "-", "Logout"}
	}
	if r.Title == "" {
		r.Title = "Dialog"
	}

	for _, b := range cfg.Dialog.Buttons {
		r.Buttons = append(r.Buttons, dialog.Button{Text: b.Text, Default: b.Default, Cancel: b.Cancel})
	}

	return r, nil
}
