// Package config provides configuration file support for matchderef.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"golang.org/x/tools/go/analysis"
	"gopkg.in/yaml.v3"

	"github.com/spechtlabs/matchderef/matchderef"
)

// ConfigFileNames are the configuration file names searched for, in order.
var ConfigFileNames = []string{".matchderef.yaml", ".matchderef.yml", ".matchderef.toml"}

// Config represents the matchderef configuration.
type Config struct {
	// Analyzers configures which analyzers are enabled/disabled.
	// Use "default: false" to disable all by default, then enable specific ones.
	Analyzers map[string]bool `yaml:"analyzers" toml:"analyzers"`

	// Levels sets the diagnostic level per analyzer.
	Levels map[string]matchderef.Level `yaml:"levels" toml:"levels"`
}

// Load attempts to load configuration from the current directory or any
// parent directory up to the filesystem root.
func Load() (*Config, error) {
	path, err := findConfigFile()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return &Config{
			Analyzers: map[string]bool{"default": true},
		}, nil
	}

	return LoadFrom(path)
}

// LoadFrom loads configuration from the specified path. Files ending in
// .toml are decoded as TOML, everything else as YAML.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	if filepath.Ext(path) == ".toml" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if cfg.Analyzers == nil {
		cfg.Analyzers = map[string]bool{"default": true}
	}

	return &cfg, nil
}

func findConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, name := range ConfigFileNames {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// FilterAnalyzers returns only the analyzers that are enabled according to the config.
func (c *Config) FilterAnalyzers(all []*analysis.Analyzer) []*analysis.Analyzer {
	if c == nil || c.Analyzers == nil {
		return all
	}

	var enabled []*analysis.Analyzer
	for _, a := range all {
		if c.IsEnabled(a.Name) {
			enabled = append(enabled, a)
		}
	}

	return enabled
}

// IsEnabled checks if a specific analyzer is enabled.
func (c *Config) IsEnabled(name string) bool {
	if c == nil || c.Analyzers == nil {
		return true
	}

	if val, ok := c.Analyzers[name]; ok {
		return val
	}

	if val, ok := c.Analyzers["default"]; ok {
		return val
	}

	return true
}

// LevelFor returns the configured level for the named analyzer, or fallback
// when none is set.
func (c *Config) LevelFor(name string, fallback matchderef.Level) matchderef.Level {
	if c == nil {
		return fallback
	}

	if l, ok := c.Levels[name]; ok {
		return l
	}

	return fallback
}

// Apply pushes configured levels into the "level" flag of each analyzer.
// Flags given later on the command line still take precedence.
func (c *Config) Apply(analyzers []*analysis.Analyzer) error {
	if c == nil {
		return nil
	}

	for _, a := range analyzers {
		l, ok := c.Levels[a.Name]
		if !ok {
			continue
		}
		if a.Flags.Lookup("level") == nil {
			return fmt.Errorf("analyzer %s has no configurable level", a.Name)
		}
		if err := a.Flags.Set("level", l.String()); err != nil {
			return fmt.Errorf("analyzer %s: %w", a.Name, err)
		}
	}

	return nil
}
