// ABOUTME: Configuration for moodlog: engine endpoint, model, data paths.
// ABOUTME: YAML file under XDG config, with env overrides for data location.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable settings.
type Config struct {
	// Engine is the base URL of the local model server.
	Engine string `yaml:"engine"`
	// Model is the model the classifier loads.
	Model string `yaml:"model"`
	// AutoLoad starts the model load when the write command begins,
	// instead of waiting for an explicit `moodlog ai load`.
	AutoLoad bool `yaml:"auto_load"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Engine:   "http://localhost:11434",
		Model:    "llama3.2:1b",
		AutoLoad: true,
	}
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "moodlog")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DataDir returns the directory holding the database and draft store.
func DataDir() string {
	if dir := os.Getenv("MOODLOG_DATA_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(xdg.DataHome, "moodlog")
}

// DraftDir returns the pending-draft store location.
func DraftDir() string {
	return filepath.Join(DataDir(), "drafts")
}

// Load reads configuration from disk, returning defaults if none exists.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes configuration to disk.
func Save(cfg *Config) error {
	if err := os.MkdirAll(ConfigDir(), 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath(), data, 0600)
}
