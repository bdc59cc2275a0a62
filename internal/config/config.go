// Package config loads optional cra2parcel settings from the environment and
// a project-local config file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// DirEnv overrides the project directory.
const DirEnv = "CRA2PARCEL_DIR"

// ConfigFiles are tried in order; the first one present wins.
var ConfigFiles = []string{".cra2parcel.yaml", ".cra2parcel.yml", ".cra2parcel.toml"}

// Config holds the user-tunable settings.
type Config struct {
	// Dir is the project directory to migrate.
	Dir string `yaml:"dir" toml:"dir"`

	// Theme names the prompt theme.
	Theme string `yaml:"theme,omitempty" toml:"theme,omitempty"`

	// AssumeYes skips the confirmation prompt.
	AssumeYes bool `yaml:"assume-yes,omitempty" toml:"assume-yes,omitempty"`
}

// Default returns the conventional settings: the current directory, the
// default theme, and a confirmation prompt.
func Default() *Config {
	return &Config{Dir: "."}
}

// LoadConfigFn is swapped in tests.
var LoadConfigFn = loadConfig

func loadConfig() (*Config, error) {
	cfg, err := loadFile()
	if err != nil {
		return nil, err
	}

	// Highest priority: ENV variable
	if envDir := os.Getenv(DirEnv); envDir != "" {
		cleanDir := filepath.Clean(envDir)
		if strings.Contains(cleanDir, "..") {
			return nil, fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", DirEnv)
		}
		cfg.Dir = cleanDir
	}

	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	return cfg, nil
}

// loadFile decodes the first config file found in the working directory.
// Unknown keys are rejected.
func loadFile() (*Config, error) {
	for _, name := range ConfigFiles {
		data, err := os.ReadFile(name)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read config file %q: %w", name, err)
		}

		cfg := Default()
		if strings.HasSuffix(name, ".toml") {
			decoder := toml.NewDecoder(bytes.NewReader(data))
			decoder.DisallowUnknownFields()
			if err := decoder.Decode(cfg); err != nil {
				return nil, fmt.Errorf("invalid config file %q: %w", name, err)
			}
		} else {
			decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
			if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("invalid config file %q: %w", name, err)
			}
		}
		return cfg, nil
	}

	return Default(), nil
}
