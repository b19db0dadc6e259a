package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the default values of the subcommand options. Options given
// on the command line take precedence.
type Config struct {
	Capitalize   bool `yaml:"capitalize" toml:"capitalize"`
	IncludeSpace bool `yaml:"include_space" toml:"include_space"`
	IgnoreCase   bool `yaml:"ignore_case" toml:"ignore_case"`
	Progress     bool `yaml:"progress" toml:"progress"`
}

func DefaultConfig() Config {
	return Config{
		Capitalize:   true,
		IncludeSpace: true,
		Progress:     true,
	}
}

// LoadConfig reads the config file at path. Files ending in ".toml" are
// parsed as TOML, everything else as YAML. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
