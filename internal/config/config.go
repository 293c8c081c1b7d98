// Package config loads the assistant configuration from a YAML file,
// falling back to workspace defaults when no file exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DataDirName is the per-user directory holding the databases and
	// the config file.
	DataDirName = ".loqa-assistant"
	// ConfigFile is the config file name inside the data directory.
	ConfigFile = "config.yaml"
)

// Repository is one entry in the repository catalog: the repository
// name plus the technology keywords that imply it.
type Repository struct {
	Name  string   `yaml:"name"`
	Hints []string `yaml:"hints,omitempty"`
}

// Config is the assistant configuration.
type Config struct {
	// DataDir holds the SQLite databases.
	DataDir string `yaml:"data_dir"`
	// WorkspaceRoot contains the repository checkouts task files are
	// written into.
	WorkspaceRoot string `yaml:"workspace_root"`
	// DefaultRepository receives tasks when no repository can be
	// inferred.
	DefaultRepository string `yaml:"default_repository"`
	// Repositories is the inference catalog.
	Repositories []Repository `yaml:"repositories"`

	ActiveRetentionDays int `yaml:"active_retention_days"`
	DraftRetentionDays  int `yaml:"draft_retention_days"`
}

// Default returns the built-in configuration for the loqa workspace.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		DataDir:           filepath.Join(home, DataDirName),
		WorkspaceRoot:     filepath.Join(home, "loqa"),
		DefaultRepository: "loqa",
		Repositories: []Repository{
			{Name: "loqa"},
			{Name: "loqa-hub", Hints: []string{"hub", "backend", "api", "server"}},
			{Name: "loqa-commander", Hints: []string{"dashboard", "vue", "ui", "frontend"}},
			{Name: "loqa-relay", Hints: []string{"relay", "audio", "capture"}},
			{Name: "loqa-proto", Hints: []string{"proto", "grpc", "protocol"}},
			{Name: "loqa-skills", Hints: []string{"skill", "plugin"}},
			{Name: "www-loqalabs-com", Hints: []string{"website", "docs", "marketing"}},
		},
		ActiveRetentionDays: 7,
		DraftRetentionDays:  30,
	}
}

// Load reads the config file from the default data directory. A missing
// file is not an error — the defaults apply.
func Load() (*Config, error) {
	cfg := Default()
	path := filepath.Join(cfg.DataDir, ConfigFile)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return parse(data, path)
}

// LoadFile reads the config from an explicit path. Unlike Load, a
// missing file is an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return parse(data, path)
}

// parse unmarshals YAML over the defaults, then re-defaults any field
// the file blanked out so callers never see an empty value.
func parse(data []byte, path string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	def := Default()
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.WorkspaceRoot == "" {
		cfg.WorkspaceRoot = def.WorkspaceRoot
	}
	if cfg.DefaultRepository == "" {
		cfg.DefaultRepository = def.DefaultRepository
	}
	if len(cfg.Repositories) == 0 {
		cfg.Repositories = def.Repositories
	}
	if cfg.ActiveRetentionDays <= 0 {
		cfg.ActiveRetentionDays = def.ActiveRetentionDays
	}
	if cfg.DraftRetentionDays <= 0 {
		cfg.DraftRetentionDays = def.DraftRetentionDays
	}
	return cfg, nil
}

// ActiveRetention returns the active-interview retention window.
func (c *Config) ActiveRetention() time.Duration {
	return time.Duration(c.ActiveRetentionDays) * 24 * time.Hour
}

// DraftRetention returns the draft retention window.
func (c *Config) DraftRetention() time.Duration {
	return time.Duration(c.DraftRetentionDays) * 24 * time.Hour
}
