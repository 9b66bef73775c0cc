// Package config loads and persists user configuration for dockpane.
// Configuration lives in TOML under the XDG config directory; missing files
// and missing keys fall back to the defaults below.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "dockpane"

// Config is the root of the user configuration file.
type Config struct {
	Theme       string      `toml:"theme"`
	Appearance  Appearance  `toml:"appearance"`
	Keybindings Keybindings `toml:"keybindings"`
}

// Appearance groups visual options.
type Appearance struct {
	BorderStyle    string `toml:"border_style"`     // "rounded", "normal", "thick"
	TabBarPosition string `toml:"tab_bar_position"` // "top" or "bottom"
	ShowTitles     bool   `toml:"show_titles"`
}

// Keybindings maps action names to the keys that trigger them. Keys the
// user leaves unset keep their defaults.
type Keybindings struct {
	LeaderKey string              `toml:"leader_key"`
	Panes     map[string][]string `toml:"panes"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		Theme: "",
		Appearance: Appearance{
			BorderStyle:    "rounded",
			TabBarPosition: "top",
			ShowTitles:     true,
		},
		Keybindings: Keybindings{
			LeaderKey: "ctrl+b",
			Panes: map[string][]string{
				"split_right":     {"v"},
				"split_down":      {"s"},
				"new_tab":         {"n"},
				"close_item":      {"x"},
				"next_tab":        {"tab"},
				"prev_tab":        {"shift+tab"},
				"focus_next":      {"l"},
				"focus_prev":      {"h"},
				"toggle_maximise": {"f"},
				"popout":          {"p"},
				"save_layout":     {"w"},
				"toggle_help":     {"?"},
				"quit":            {"q"},
			},
		},
	}
}

// ConfigPath returns the path the user config is read from and saved to.
func ConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(AppName, "config.toml"))
}

// LayoutPath returns the path of the persisted layout file.
func LayoutPath() (string, error) {
	return xdg.DataFile(filepath.Join(AppName, "layout.toml"))
}

// LoadUserConfig reads the user config, filling unset keys from the
// defaults. A missing file is not an error; it yields the defaults.
func LoadUserConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	mergeDefaultKeybindings(cfg)
	return cfg, nil
}

// Save writes the config back to its canonical path.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// mergeDefaultKeybindings fills in actions the user config omits so every
// action stays reachable.
func mergeDefaultKeybindings(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.Keybindings.LeaderKey == "" {
		cfg.Keybindings.LeaderKey = defaults.Keybindings.LeaderKey
	}
	if cfg.Keybindings.Panes == nil {
		cfg.Keybindings.Panes = defaults.Keybindings.Panes
		return
	}
	for action, keys := range defaults.Keybindings.Panes {
		if _, ok := cfg.Keybindings.Panes[action]; !ok {
			cfg.Keybindings.Panes[action] = keys
		}
	}
}
