package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings read from the configuration file. Command
// line flags take precedence over it.
type Config struct {
	Prompt string `toml:"prompt"`
	Debug  bool   `toml:"debug"`
	Silent bool   `toml:"silent"`
}

// defaultConfigPath returns $LED_CONFIG, or led/config.toml in the
// user's configuration directory.
func defaultConfigPath() string {
	if path, ok := os.LookupEnv("LED_CONFIG"); ok {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "led", "config.toml")
}

// loadConfig reads the configuration file at path. Unless required is
// set, a missing file is not an error and yields the zero Config.
// Unknown keys are rejected.
func loadConfig(path string, required bool) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return cfg, fmt.Errorf("unknown key in %s:\n%s", path, serr.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return cfg, fmt.Errorf("parse error in %s at line %d, column %d: %w", path, row, col, err)
		}
		return cfg, fmt.Errorf("parse error in %s: %w", path, err)
	}
	return cfg, nil
}
