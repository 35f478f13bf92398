package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"mpw"
)

const (
	// EnvPath overrides the config file location.
	EnvPath = "MPW_CONFIG"

	dirName  = "mpw"
	fileName = "config.toml"
)

// Config holds the defaults applied when a flag is not given.
type Config struct {
	FullName string `toml:"full_name,omitempty"`
	Template string `toml:"template,omitempty"`

	// Counter 0 means unset; the command falls back to mpw.DefaultCounter.
	Counter uint32 `toml:"counter,omitempty,omitzero"`
}

// DefaultPath returns $MPW_CONFIG, or config.toml under the user's config
// directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// Load reads the file at path. A missing file yields an empty Config.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed. The file is
// readable by the owner only.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return file.Close()
}

// Validate checks that the template, when set, is a known one.
func (c *Config) Validate() error {
	if c.Template == "" {
		return nil
	}
	if _, err := mpw.ParseTemplate(c.Template); err != nil {
		return err
	}
	return nil
}
