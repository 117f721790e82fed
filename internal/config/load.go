package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-input/internal/input"
)

// Load loads configuration with priority: defaults < file < flags.
// Bindings from the file replace the default binding of the same action;
// actions the file does not mention keep their defaults.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if _, err := cfg.InputBindings(); err != nil {
		return nil, fmt.Errorf("invalid bindings: %w", err)
	}

	return cfg, nil
}

// InputBindings resolves the configured bindings into input sources.
func (c *Config) InputBindings() (map[string][]input.Source, error) {
	return input.BuildBindings(c.Bindings)
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./input.yaml",
		filepath.Join(ConfigDir(), "input.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "MidgardInput")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "MidgardInput")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "midgard-input")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "midgard-input")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
