// Package matchderef provides golangci-lint v2 module plugin integration.
//
// To use matchderef with golangci-lint, build a custom binary:
//
//  1. Create a .custom-gcl.yml file referencing this module
//  2. Run: golangci-lint custom
//  3. Use the generated ./custom-gcl binary
//
// and configure it in .golangci.yml:
//
//	linters:
//	  settings:
//	    custom:
//	      matchderef:
//	        type: module
//	        settings:
//	          level: deny
//
// See https://golangci-lint.run/plugins/module-plugins/ for more details.
package matchderef

import (
	"fmt"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/spechtlabs/matchderef/analyzers"
	"github.com/spechtlabs/matchderef/internal/config"
	rule "github.com/spechtlabs/matchderef/matchderef"
)

//nolint:gochecknoinits // Required for golangci-lint module plugin registration
func init() {
	register.Plugin(rule.Name, New)
}

// Settings configures the plugin.
type Settings struct {
	// Level is the diagnostic level: allow, warn, deny or forbid.
	Level string `json:"level"`

	// DisabledAnalyzers is a list of analyzer names to disable.
	DisabledAnalyzers []string `json:"disabled-analyzers"`
}

// Config converts the settings into a configuration.
func (s Settings) Config() (*config.Config, error) {
	cfg := &config.Config{
		Analyzers: map[string]bool{"default": true},
	}

	for _, name := range s.DisabledAnalyzers {
		cfg.Analyzers[name] = false
	}

	// The registry hands out shared analyzers, so the level is always set
	// to keep one plugin instance from leaking its level into the next.
	level := rule.Warn
	if s.Level != "" {
		l, err := rule.ParseLevel(s.Level)
		if err != nil {
			return nil, fmt.Errorf("matchderef settings: %w", err)
		}
		level = l
	}
	cfg.Levels = map[string]rule.Level{rule.Name: level}

	return cfg, nil
}

type plugin struct {
	cfg *config.Config
}

// New creates a new matchderef plugin instance.
func New(conf any) (register.LinterPlugin, error) {
	s, err := register.DecodeSettings[Settings](conf)
	if err != nil {
		return nil, err
	}

	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}

	return &plugin{cfg: cfg}, nil
}

// BuildAnalyzers returns the list of analyzers to run.
func (p *plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	enabled := p.cfg.FilterAnalyzers(analyzers.All())
	if err := p.cfg.Apply(enabled); err != nil {
		return nil, err
	}

	return enabled, nil
}

// GetLoadMode returns the load mode required by the analyzers.
// matchderef only looks at syntax.
func (p *plugin) GetLoadMode() string {
	return register.LoadModeSyntax
}
