/*
File    : ziget/ir/module.go
Package : ir
*/

// Package ir lowers an analyzed *ast.Program into a textual low-level
// intermediate representation module, modeled as plain structs with
// strings.Builder-backed text accumulation rather than bindings to a
// real LLVM C API — the module this package produces is handed off
// whole to an external toolchain, never built in-process.
package ir

import (
	"fmt"
	"strings"

	"github.com/Zeph16/ziget/ast"
)

// stringConstant is one module-level NUL-terminated global produced by a
// string literal.
type stringConstant struct {
	name  string
	value string
}

// Module is the whole textual LLIR program: a fixed printf declaration,
// the string constant pool, and the user + main functions in source
// order.
type Module struct {
	strings   []stringConstant
	functions []*Function
	strSeq    int
}

// NewModule creates an empty module.
func NewModule() *Module {
	return &Module{}
}

// internString registers value as a module-level constant (deduplicating
// identical literals) and returns the name of the global it was assigned.
func (m *Module) internString(value string) string {
	for _, sc := range m.strings {
		if sc.value == value {
			return sc.name
		}
	}
	name := fmt.Sprintf("@.str.%d", m.strSeq)
	m.strSeq++
	m.strings = append(m.strings, stringConstant{name: name, value: value})
	return name
}

// addFunction appends fn to the module's function list, preserving the
// source order the emitter walked the program in.
func (m *Module) addFunction(fn *Function) {
	m.functions = append(m.functions, fn)
}

// String renders the complete module as LLIR text.
func (m *Module) String() string {
	var b strings.Builder

	b.WriteString("declare i32 @printf(i8*, ...)\n\n")

	for _, sc := range m.strings {
		fmt.Fprintf(&b, "%s = constant [%d x i8] c\"%s\\00\"\n", sc.name, len(sc.value)+1, llvmEscape(sc.value))
	}
	if len(m.strings) > 0 {
		b.WriteString("\n")
	}

	for i, fn := range m.functions {
		if i > 0 {
			b.WriteString("\n")
		}
		fn.writeTo(&b)
	}

	return b.String()
}

// llvmEscape renders s the way LLVM IR string constants expect: printable
// ASCII passes through unchanged, everything else (including '"' and
// '\\') becomes a two-digit uppercase hex escape.
func llvmEscape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c < 0x7f && c != '"' && c != '\\' {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "\\%02X", c)
	}
	return b.String()
}

// llType maps a language Type to its LLIR lowering, per spec §3: Number
// is a 64-bit float, Boolean a 1-bit integer, String a byte pointer.
func llType(t ast.Type) string {
	switch t {
	case ast.NumberType:
		return "double"
	case ast.BooleanType:
		return "i1"
	case ast.StringType:
		return "i8*"
	default:
		return "void"
	}
}
