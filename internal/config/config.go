package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardtags/internal/tagtable"
)

// Config represents the application configuration
type Config struct {
	Layout    string              `toml:"layout"`
	Indent    bool                `toml:"indent"`
	Overrides []tagtable.Override `toml:"override"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	overrides := make([]tagtable.Override, len(tagtable.DefaultOverrides))
	copy(overrides, tagtable.DefaultOverrides)

	return &Config{
		Layout:    tagtable.LayoutUpdated.Name,
		Overrides: overrides,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardtags", "config.toml")
}

// Load loads the config file at path. A missing file yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	config := Config{Layout: tagtable.LayoutUpdated.Name}
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &config, nil
}

// Save writes config to path, creating its directory
func Save(path string, config *Config) error {
	if path == "" {
		path = GetConfigFilePath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return file.Close()
}

// ParsedLayout returns the row layout named in the config
func (c *Config) ParsedLayout() (tagtable.Layout, error) {
	return tagtable.ParseLayout(c.Layout)
}
