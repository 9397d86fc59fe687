// Package config loads optional defaults for xtree from a YAML file.
// Command-line flags that the user sets explicitly override these values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mj1618/xtree/internal/model"
	"gopkg.in/yaml.v3"
)

// Config mirrors the config file. Pointer fields distinguish "not set"
// from the zero value.
type Config struct {
	Display  string          `yaml:"display,omitempty"`
	Style    string          `yaml:"style,omitempty"`
	Format   string          `yaml:"format,omitempty"`
	Recurse  *bool           `yaml:"recurse,omitempty"`
	MaxDepth *int            `yaml:"max_depth,omitempty"`
	Show     map[string]bool `yaml:"show,omitempty"`
}

// DefaultPath returns $XDG_CONFIG_HOME/xtree/config.yaml (or the OS equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "xtree", "config.yaml"), nil
}

// Load reads the config at path. A missing file yields an empty Config
// unless required is set.
func Load(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML config document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if _, err := cfg.Toggles(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Toggles converts the show section into model.Toggles. Categories not
// listed stay unmentioned.
func (c *Config) Toggles() (model.Toggles, error) {
	toggles := make(model.Toggles, len(c.Show))
	for name, on := range c.Show {
		cat, err := model.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("show: %w", err)
		}
		toggles[cat] = on
	}
	return toggles, nil
}
