// Package matchderef provides an analyzer that flags switch statements whose
// tag is a pointer dereference.
//
// Switching on *p works, but it hides the fact that every case compares
// against the pointee. The analyzer reports the dereference and points at
// the first case's patterns, where a pointer/box pattern should be used
// instead.
package matchderef

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/spechtlabs/matchderef/internal/nolint"
)

// Name is the rule name used in flags, configuration and nolint directives.
const Name = "matchderef"

const Doc = `flag switch statements that dereference their tag

This analyzer detects:
1. switch *p { ... }
2. switch (*p) { ... }
3. switch **p { ... } (reported once, at the outermost dereference)

The diagnostic is anchored at the dereferenced tag. A related note spans the
patterns of the first case clause, which is where a pointer/box pattern
should start.

Flags:
    -level=allow|warn|deny|forbid   (default warn)

At allow nothing is reported. //nolint:matchderef on the switch line or the
line above lowers warn and deny to allow; forbid cannot be lowered.

Bad pattern:
    switch *five {
    case 5, 6, 7:
        ...
    }`

// Analyzer is the matchderef analyzer at the default warn level.
var Analyzer = New(Warn)

// New creates an analyzer that reports at the given level.
// The level can still be changed through the analyzer's -level flag.
func New(level Level) *analysis.Analyzer {
	r := &runner{level: level}

	a := &analysis.Analyzer{
		Name:     Name,
		Doc:      Doc,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      r.run,
	}

	a.Flags.Var(&r.level, "level", "diagnostic level: allow, warn, deny or forbid")

	return a
}

type runner struct {
	level Level
}

func (r *runner) run(pass *analysis.Pass) (interface{}, error) {
	level := r.level
	if !level.Enabled() {
		return nil, nil
	}

	reporter := nolint.NewReporter(pass)
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.SwitchStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		for _, d := range Inspect(n, level) {
			if level == Forbid {
				pass.Report(d)
				continue
			}
			reporter.Report(d)
		}
	})

	return nil, nil
}
