package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = ".zabbix-import.yaml"

// Config holds the settings shared by every command.
type Config struct {
	// Version forces a format version. Empty means detect it.
	Version  string `mapstructure:"version"`
	Source   string `mapstructure:"source"` // xml, json or yaml; empty means by extension
	LogLevel string `mapstructure:"log_level"`
	Output   string `mapstructure:"output"` // yaml or json
	Listen   string `mapstructure:"listen"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Output:   "yaml",
		Listen:   ":8080",
	}
}

// Load reads a configuration file (YAML or JSON) over the defaults.
// A missing file is not an error unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &raw)
	} else {
		// Default to YAML
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return cfg, cfg.Validate()
}

// Decode copies raw settings into cfg, rejecting unknown keys.
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.Source {
	case "", "xml", "json", "yaml":
	default:
		return fmt.Errorf("unknown source %q", c.Source)
	}
	switch c.Output {
	case "yaml", "json":
	default:
		return fmt.Errorf("unknown output %q", c.Output)
	}
	return nil
}
