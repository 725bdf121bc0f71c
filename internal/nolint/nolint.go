// Package nolint reads the source annotations that lower a rule's level.
//
// Supported comment formats:
//
//	//nolint                        - suppress every rule on this line
//	//nolint:all                    - same as above
//	//nolint:golint-sl              - every rule of the golint-sl family
//	//nolint:matchderef             - suppress a specific rule
//	//nolint:matchderef,other       - suppress several rules
//	// nolint:matchderef            - space after // is allowed
//	//nolint:matchderef // reason   - trailing explanation is ignored
//
// Comments apply to their own line. A comment that stands alone on its line
// also applies to the line that follows; a trailing comment does not.
package nolint

import (
	"go/ast"
	"go/token"
	"regexp"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// nolintRegex matches nolint directives in comments. The rule list is optional.
var nolintRegex = regexp.MustCompile(`^//\s*nolint(?::([a-zA-Z0-9_,-]+))?(?:\s|$)`)

// Directive represents a parsed nolint directive.
type Directive struct {
	Line       int      // Line number where the directive appears
	Analyzers  []string // Rules to suppress (empty means all)
	Standalone bool     // No code precedes the comment on its line
}

// familyNames suppress every rule when listed in a directive.
var familyNames = map[string]bool{
	"all":       true,
	"golint-sl": true,
}

// FileDirectives holds all nolint directives for a file, indexed by line number.
type FileDirectives struct {
	// A directive on line N applies to line N, and to N+1 when standalone.
	byLine map[int]*Directive
}

// ParseFile extracts all nolint directives from a file's comments.
func ParseFile(file *ast.File, fset *token.FileSet) *FileDirectives {
	fd := &FileDirectives{
		byLine: make(map[int]*Directive),
	}

	var codeEnds map[int]token.Pos

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			d := parseComment(c.Text)
			if d == nil {
				continue
			}
			if codeEnds == nil {
				codeEnds = earliestCodeEnds(file, fset)
			}

			line := fset.Position(c.Pos()).Line
			d.Line = line
			end, ok := codeEnds[line]
			d.Standalone = !ok || end > c.Pos()
			fd.byLine[line] = d
		}
	}

	return fd
}

// earliestCodeEnds maps each line to the earliest end position of a syntax node
// ending on it. A comment positioned after that end trails code.
func earliestCodeEnds(file *ast.File, fset *token.FileSet) map[int]token.Pos {
	ends := make(map[int]token.Pos)

	ast.Inspect(file, func(n ast.Node) bool {
		switch n.(type) {
		case nil, *ast.File:
			return n != nil
		case *ast.CommentGroup, *ast.Comment:
			return false
		}

		end := n.End()
		line := fset.Position(end).Line
		if prev, ok := ends[line]; !ok || end < prev {
			ends[line] = end
		}

		return true
	})

	return ends
}

func parseComment(text string) *Directive {
	matches := nolintRegex.FindStringSubmatch(text)
	if matches == nil {
		return nil
	}

	var analyzers []string
	for _, name := range strings.Split(matches[1], ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			analyzers = append(analyzers, name)
		}
	}

	return &Directive{
		Analyzers: analyzers,
	}
}

// IsSuppressed checks if a diagnostic on the given line is suppressed for
// the specified rule.
func (fd *FileDirectives) IsSuppressed(line int, analyzerName string) bool {
	if fd == nil {
		return false
	}

	if d := fd.byLine[line]; d != nil && d.matches(analyzerName) {
		return true
	}

	if d := fd.byLine[line-1]; d != nil && d.Standalone && d.matches(analyzerName) {
		return true
	}

	return false
}

func (d *Directive) matches(analyzerName string) bool {
	if len(d.Analyzers) == 0 {
		return true
	}

	for _, name := range d.Analyzers {
		if familyNames[name] || name == analyzerName {
			return true
		}
	}

	return false
}

// Reporter answers suppression queries for all files of a pass.
type Reporter struct {
	Pass         *analysis.Pass
	Directives   map[string]*FileDirectives // filename -> directives
	AnalyzerName string
}

// NewReporter creates a nolint-aware reporter for the given pass.
func NewReporter(pass *analysis.Pass) *Reporter {
	r := &Reporter{
		Pass:         pass,
		Directives:   make(map[string]*FileDirectives),
		AnalyzerName: pass.Analyzer.Name,
	}

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		r.Directives[filename] = ParseFile(file, pass.Fset)
	}

	return r
}

// IsSuppressed reports whether a nolint directive covers pos.
func (r *Reporter) IsSuppressed(pos token.Pos) bool {
	position := r.Pass.Fset.Position(pos)

	return r.Directives[position.Filename].IsSuppressed(position.Line, r.AnalyzerName)
}

// Report reports d unless it is suppressed.
func (r *Reporter) Report(d analysis.Diagnostic) {
	if r.IsSuppressed(d.Pos) {
		return
	}

	r.Pass.Report(d)
}
