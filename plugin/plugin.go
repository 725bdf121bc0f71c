//go:build ignore
// +build ignore

// Package main provides a legacy golangci-lint plugin for matchderef.
//
// Build as a plugin:
//
//	go build -buildmode=plugin -o matchderef.so ./plugin
//
// Then configure golangci-lint:
//
//	linters-settings:
//	  custom:
//	    matchderef:
//	      path: ./matchderef.so
//	      description: flags switch statements that dereference their tag
//	      original-url: github.com/spechtlabs/matchderef
//
// NOTE: This file is excluded from normal builds. Use -buildmode=plugin explicitly.
package main

import (
	"golang.org/x/tools/go/analysis"

	"github.com/spechtlabs/matchderef/analyzers"
)

// AnalyzerPlugin exports the analyzers for the golangci-lint plugin system.
var AnalyzerPlugin analyzerPlugin

type analyzerPlugin struct{}

// GetAnalyzers returns all matchderef analyzers for the plugin system.
func (analyzerPlugin) GetAnalyzers() []*analysis.Analyzer {
	return analyzers.All()
}

// main is a no-op; this package is meant to be built with -buildmode=plugin.
func main() {}
