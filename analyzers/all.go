// Package analyzers provides a registry of all matchderef analyzers.
//
// This package exports all analyzers in a single slice for convenient use
// with multichecker and plugin systems.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/spechtlabs/matchderef/matchderef"
)

// All returns all available analyzers.
func All() []*analysis.Analyzer {
	return Style()
}

// Style returns analyzers focused on idiomatic style.
func Style() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		matchderef.Analyzer,
	}
}
