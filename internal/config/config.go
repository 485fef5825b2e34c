package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataSource    = "data/questions.json"
	DefaultPageSize      = 12
	DefaultSearchDelayMS = 300
	DefaultLogLevel      = "info"
)

// Config holds CLI configuration stored at ~/.qbank/config.
type Config struct {
	DataSource    string `yaml:"data_source"`
	PageSize      int    `yaml:"page_size"`
	StoreDir      string `yaml:"store_dir"`
	SearchDelayMS int    `yaml:"search_delay_ms"`
	LogLevel      string `yaml:"log_level"`
	VimKeys       bool   `yaml:"vim_keys"`
}

// Dir returns the qbank home directory.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".qbank")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataSource:    DefaultDataSource,
		PageSize:      DefaultPageSize,
		StoreDir:      filepath.Join(Dir(), "store"),
		SearchDelayMS: DefaultSearchDelayMS,
		LogLevel:      DefaultLogLevel,
	}
}

// Load reads and parses the config file.
// A missing file yields defaults together with an error wrapping os.ErrNotExist.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), fmt.Errorf("config not found: %w", err)
		}
		return nil, fmt.Errorf("stat config: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// normalize fills zero or invalid fields with defaults.
func (c *Config) normalize() {
	c.DataSource = strings.TrimSpace(c.DataSource)
	if c.DataSource == "" {
		c.DataSource = DefaultDataSource
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.SearchDelayMS < 0 {
		c.SearchDelayMS = DefaultSearchDelayMS
	}
	if strings.TrimSpace(c.StoreDir) == "" {
		c.StoreDir = filepath.Join(Dir(), "store")
	}
	c.StoreDir = expandHome(c.StoreDir)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
