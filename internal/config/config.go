// Package config handles global camlc configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "CAMLC_CONFIG"

// Config represents the global camlc configuration.
type Config struct {
	// PageURL is the default page URL used for runtime-parameter
	// substitution when --page-url is not given.
	PageURL string `toml:"page_url"`

	// Library is the path of the saved-query database. Empty means the
	// default location under the user data directory.
	Library string `toml:"library"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown
	// rendering. Supported values are ANSI color codes ("0" to "255") or
	// hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered markdown
	// code blocks. Example values: "monokai", "dracula", "github", "nord".
	CodeTheme string `toml:"code_theme"`
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the config file path.
// Honors $CAMLC_CONFIG, then ~/.config/camlc/config.toml (XDG style),
// then the OS-specific user config directory.
func DefaultPath() string {
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}

	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "camlc", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "camlc", "config.toml")
	}

	// Last resort fallback
	return filepath.Join(".", "config.toml")
}

// LibraryPath returns the saved-query database path, resolving the default
// location when the config does not set one.
func (c *Config) LibraryPath() string {
	if c.Library != "" {
		return c.Library
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "camlc", "library.db")
	}
	return filepath.Join(".", "library.db")
}
