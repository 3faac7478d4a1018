/*
File    : ziget/sema/errors.go
Package : sema
*/
package sema

import (
	"fmt"

	"github.com/Zeph16/ziget/ast"
)

// Diagnostic is one semantic error or warning, positioned like a parser
// Error so the CLI boundary can render both the same way.
type Diagnostic struct {
	Line    int
	Column  int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
}

func (a *Analyzer) errorAt(p ast.Pos, format string, args ...interface{}) {
	a.errors = append(a.errors, Diagnostic{Line: p.Line, Column: p.Column, Message: fmt.Sprintf(format, args...)})
}

func (a *Analyzer) warnAt(p ast.Pos, format string, args ...interface{}) {
	a.warnings = append(a.warnings, Diagnostic{Line: p.Line, Column: p.Column, Message: fmt.Sprintf(format, args...)})
}
