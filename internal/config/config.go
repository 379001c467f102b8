// Package config loads and saves the user's gridview settings: a small
// TOML file in the platform config directory holding display defaults.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents global gridview settings stored in the user's config
// directory.
type Config struct {
	Table  TableConfig  `toml:"table"`
	Output OutputConfig `toml:"output"`
}

// TableConfig contains display defaults for the interactive table.
type TableConfig struct {
	PerPage   int   `toml:"per_page" desc:"Default entries per page"`
	PageSizes []int `toml:"page_sizes" desc:"Choices offered by the page-size selector"`
}

// OutputConfig contains output behavior settings.
type OutputConfig struct {
	NoColor bool `toml:"no_color" desc:"Disable colored output"`
}

// Default returns a new config with default values.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			PerPage:   10,
			PageSizes: []int{10, 25, 50, 100},
		},
	}
}

// Path returns the path to the config file.
// Follows XDG Base Directory spec on Linux, platform conventions elsewhere.
func Path() string {
	var configDir string

	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, "Library", "Application Support", "gridview")
	case "windows":
		configDir = filepath.Join(os.Getenv("APPDATA"), "gridview")
	default: // Linux and others - follow XDG
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			configDir = filepath.Join(xdg, "gridview")
		} else {
			home, _ := os.UserHomeDir()
			configDir = filepath.Join(home, ".config", "gridview")
		}
	}

	return filepath.Join(configDir, "config.toml")
}

// Load reads the config file, falling back to defaults if it doesn't
// exist. Missing values get their defaults applied.
func Load() (*Config, error) {
	cfg := Default()

	configPath := Path()
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, err
		}
	}

	defaults := Default()
	if cfg.Table.PerPage == 0 {
		cfg.Table.PerPage = defaults.Table.PerPage
	}
	if len(cfg.Table.PageSizes) == 0 {
		cfg.Table.PageSizes = defaults.Table.PageSizes
	}

	return cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func Save(cfg *Config) error {
	configPath := Path()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
