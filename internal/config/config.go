// Package config loads library-wide settings for statestore.
//
// Settings are layered: built-in defaults, then an optional YAML file named by
// STATESTORE_CONFIG_FILE, then individual environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// EnvDevelopment enables developer diagnostics.
	EnvDevelopment = "development"
	// EnvProduction silences developer diagnostics.
	EnvProduction = "production"
)

// Config holds the settings that influence diagnostics.
type Config struct {
	Env      string `yaml:"env" env:"STATESTORE_ENV"`
	LogLevel string `yaml:"log_level" env:"STATESTORE_LOG_LEVEL"`
	File     string `yaml:"-" env:"STATESTORE_CONFIG_FILE"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Env:      EnvDevelopment,
		LogLevel: "warn",
	}
}

// Production reports whether developer diagnostics should be suppressed.
func (c Config) Production() bool {
	return strings.EqualFold(c.Env, EnvProduction)
}

// Load resolves the configuration from the file and the environment.
// Environment variables win over values read from the file.
func Load() (Config, error) {
	cfg := Default()
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.File == "" {
		return cfg, nil
	}

	fromFile, err := LoadFile(cfg.File)
	if err != nil {
		return cfg, err
	}
	fromFile.File = cfg.File
	if err := ParseEnv(&fromFile); err != nil {
		return cfg, err
	}
	return fromFile, nil
}

// LoadFile reads a YAML configuration file on top of the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("config file %q: %w", path, os.ErrNotExist)
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return cfg, nil
}

// ParseEnv overlays environment variables onto target.
// Unset variables leave the corresponding fields untouched.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
