// Command matchderef reports switch statements that dereference their tag.
//
// Usage:
//
//	# Standalone
//	matchderef ./...
//
//	# Raise the level for this run
//	matchderef -matchderef.level=deny ./...
//
// Configuration:
//
// Create a .matchderef.yaml (or .matchderef.toml) file in your project root:
//
//	analyzers:
//	  matchderef: true
//	levels:
//	  matchderef: forbid
//
// Levels are allow, warn, deny and forbid. At allow nothing is reported;
// //nolint:matchderef comments silence warn and deny but not forbid.
// Command-line flags override the configuration file.
package main

import (
	"fmt"
	"os"

	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/spechtlabs/matchderef/analyzers"
	"github.com/spechtlabs/matchderef/internal/config"
	"github.com/spechtlabs/matchderef/internal/version"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-version" || os.Args[1] == "--version" || os.Args[1] == "version") {
		fmt.Println(version.Info())
		fmt.Println("https://github.com/SpechtLabs/matchderef")
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "matchderef: error loading config: %v\n", err)
		os.Exit(1)
	}

	enabledAnalyzers := cfg.FilterAnalyzers(analyzers.All())

	if len(enabledAnalyzers) == 0 {
		fmt.Fprintf(os.Stderr, "matchderef: no analyzers enabled (check your .matchderef.yaml configuration)\n")
		os.Exit(1)
	}

	if err := cfg.Apply(enabledAnalyzers); err != nil {
		fmt.Fprintf(os.Stderr, "matchderef: error applying config: %v\n", err)
		os.Exit(1)
	}

	multichecker.Main(enabledAnalyzers...)
}
