package matchderef

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/astutil"
)

const (
	derefMessage = "Dereferencing in a match expression is discouraged"
	noteMessage  = "Consider using a pointer/box pattern here and in all other match arms."
)

// Span is a half-open source range [Lo, Hi).
type Span struct {
	Lo, Hi token.Pos
}

// SpanOf returns the span covered by n.
func SpanOf(n ast.Node) Span { return Span{Lo: n.Pos(), Hi: n.End()} }

// Pos implements [analysis.Range].
func (s Span) Pos() token.Pos { return s.Lo }

// End implements [analysis.Range].
func (s Span) End() token.Pos { return s.Hi }

// Inspect checks a single node and returns the diagnostics for it.
//
// Only expression switches whose tag is a pointer dereference are reported.
// The tag's top-level operator is the only thing examined, so **p yields
// a single diagnostic covering **p.
//
// Diagnostics carry their severity as the level name ("warn", "deny" or
// "forbid") in the Category field, since analysis.Diagnostic has no
// severity of its own.
func Inspect(node ast.Node, level Level) []analysis.Diagnostic {
	sw, ok := node.(*ast.SwitchStmt)
	if !ok || sw.Tag == nil {
		return nil
	}

	scrutinee := sw.Tag
	if _, ok := astutil.Unparen(scrutinee).(*ast.StarExpr); !ok {
		return nil
	}

	if !level.Enabled() {
		return nil
	}

	d := analysis.Diagnostic{
		Pos:      scrutinee.Pos(),
		End:      scrutinee.End(),
		Category: level.String(),
		Message:  derefMessage,
	}

	if arm := firstArm(sw.Body); arm != nil {
		span := UnifySpan(arm.List)
		d.Related = []analysis.RelatedInformation{{
			Pos:     span.Lo,
			End:     span.Hi,
			Message: noteMessage,
		}}
	}

	return []analysis.Diagnostic{d}
}

// firstArm returns the first case clause that has patterns.
// default clauses have none and are skipped.
func firstArm(body *ast.BlockStmt) *ast.CaseClause {
	if body == nil {
		return nil
	}

	for _, stmt := range body.List {
		if cc, ok := stmt.(*ast.CaseClause); ok && len(cc.List) > 0 {
			return cc
		}
	}

	return nil
}

// UnifySpan returns the span from the start of the first pattern to the end
// of the last one. A single pattern yields its own span.
//
// patterns must not be empty; an empty arm means the syntax tree is broken
// and UnifySpan panics rather than invent a position.
func UnifySpan(patterns []ast.Expr) Span {
	if len(patterns) == 0 {
		panic("matchderef: UnifySpan called with an arm without patterns")
	}

	return Span{
		Lo: patterns[0].Pos(),
		Hi: patterns[len(patterns)-1].End(),
	}
}
