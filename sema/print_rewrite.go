/*
File    : ziget/sema/print_rewrite.go
Package : sema
*/
package sema

import (
	"strings"

	"github.com/Zeph16/ziget/ast"
)

// conversionFor maps a value's type to the C-style printf conversion the
// emitter will lower it to. Void has no conversion — printing a void
// value is always a semantic error, never an emitter concern.
func conversionFor(t ast.Type) (string, bool) {
	switch t {
	case ast.NumberType:
		return "%.2f", true
	case ast.BooleanType:
		return "%d", true
	case ast.StringType:
		return "%s", true
	default:
		return "", false
	}
}

// rewritePrint is the analyzer's special case for calls to the built-in,
// variadic `print`: it replaces call.Args in place with exactly one
// format-string literal followed by the value arguments, so the emitter
// never has to understand placeholders at all — by the time IR emission
// sees a print call, it is just a normal call to printf.
func (a *Analyzer) rewritePrint(call *ast.ProcCall, scopeID int) ast.Type {
	a.table.MarkUsed(RootID, "print")

	if len(call.Args) == 0 {
		a.errorAt(call.Pos, "print() requires at least one argument.")
		return ast.Void
	}

	if lit, ok := call.Args[0].(*ast.Literal); ok && lit.Kind == ast.StringLit {
		a.rewritePrintWithFormat(call, lit, scopeID)
	} else {
		a.rewritePrintSynthesized(call, scopeID)
	}
	return ast.Void
}

// rewritePrintWithFormat handles print("...{}...", args...): the first
// argument is a format template. Each `{}` consumes the next remaining
// argument; non-placeholder text is copied through verbatim.
func (a *Analyzer) rewritePrintWithFormat(call *ast.ProcCall, format *ast.Literal, scopeID int) {
	values := call.Args[1:]
	argTypes := make([]ast.Type, len(values))
	for i, v := range values {
		argTypes[i] = a.analyzeExpr(v, scopeID)
	}

	var buf strings.Builder
	src := format.Str
	consumed := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '{' && i+1 < len(src) && src[i+1] == '}' {
			if consumed < len(argTypes) {
				conv, ok := conversionFor(argTypes[consumed])
				if !ok {
					a.errorAt(values[consumed].Position(), "Cannot print void type.")
				} else {
					buf.WriteString(conv)
				}
			}
			consumed++
			i++
			continue
		}
		buf.WriteByte(src[i])
	}
	buf.WriteByte('\n')

	if consumed != len(values) {
		a.errorAt(call.Pos, "print format string expects %d placeholder(s), found %d argument(s).", consumed, len(values))
	}

	newFormat := &ast.Literal{Kind: ast.StringLit, Str: buf.String(), Pos: format.Pos}
	call.Args = append([]ast.Expr{newFormat}, values...)
}

// rewritePrintSynthesized handles print(args...) where the first argument
// is not itself a string literal: every argument is a value to print, and
// a new format string is synthesized and prepended ahead of them.
func (a *Analyzer) rewritePrintSynthesized(call *ast.ProcCall, scopeID int) {
	values := call.Args
	parts := make([]string, len(values))
	for i, v := range values {
		t := a.analyzeExpr(v, scopeID)
		conv, ok := conversionFor(t)
		if !ok {
			a.errorAt(v.Position(), "Cannot print void type.")
			conv = "%s"
		}
		parts[i] = conv
	}
	format := strings.Join(parts, " ") + "\n"
	newFormat := &ast.Literal{Kind: ast.StringLit, Str: format, Pos: call.Pos}
	call.Args = append([]ast.Expr{newFormat}, values...)
}
