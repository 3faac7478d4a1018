/*
File    : ziget/parser/errors.go
Package : parser
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/Zeph16/ziget/lexer"
)

// Error is one accumulated parse diagnostic, carrying the position of the
// offending token so the CLI boundary can render "line:column: message".
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e Error) String() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// addError appends a diagnostic at the current token's position and
// returns nothing — callers synchronize immediately afterward, per
// spec §4.2 ("on any sub-parse failure it appends a diagnostic and
// synchronizes").
func (p *Parser) addError(format string, args ...interface{}) {
	p.errors = append(p.errors, Error{
		Line:    p.cur.Line,
		Column:  p.cur.Column,
		Message: fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any diagnostic has been accumulated.
func (p *Parser) HasErrors() bool {
	return len(p.errors) > 0
}

// Errors returns the accumulated diagnostics in source-traversal order.
func (p *Parser) Errors() []Error {
	return p.errors
}

// ErrorString concatenates all accumulated diagnostics, one per line, for
// callers (like cmd) that want a single block of text to report.
func (p *Parser) ErrorString() string {
	lines := make([]string, len(p.errors))
	for i, e := range p.errors {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}

// synchronizeStatement skips tokens until ';' is found (inclusive) or EOF,
// the recovery point spec §4.2 specifies for a failed statement parse
// inside a block.
func (p *Parser) synchronizeStatement() {
	for p.cur.Kind != lexer.SEMICOLON && p.cur.Kind != lexer.EOF {
		p.advance()
	}
	if p.cur.Kind == lexer.SEMICOLON {
		p.advance()
	}
}

// synchronizeProcedure skips tokens until the next 'procedure' keyword (not
// consumed) or EOF, the recovery point for a failed top-level procedure
// parse.
func (p *Parser) synchronizeProcedure() {
	for p.cur.Kind != lexer.PROCEDURE && p.cur.Kind != lexer.EOF {
		p.advance()
	}
}
