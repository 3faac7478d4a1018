/*
File    : ziget/ir/emitter.go
Package : ir
*/
package ir

import "github.com/Zeph16/ziget/ast"

// Emit lowers a fully analyzed program (print calls already rewritten,
// implicit returns already appended) into a textual LLIR module. User
// procedures are emitted in source order, followed by main, matching the
// ordering guarantee spec §5 makes for emitted functions.
func Emit(prog *ast.Program) *Module {
	m := NewModule()
	for _, proc := range prog.Procedures {
		m.addFunction(emitProcedure(m, proc.Name, proc.Params, proc.ReturnType, proc.Body))
	}
	if prog.Main != nil {
		m.addFunction(emitProcedure(m, "main", nil, ast.Void, prog.Main.Body))
	}
	return m
}

// emitProcedure builds one Function: an entry block that allocates and
// stores each parameter's slot, followed by the lowered body.
func emitProcedure(m *Module, name string, params []ast.Parameter, retType ast.Type, body *ast.Block) *Function {
	f := newFunction(name, params, retType)
	f.pushScope()

	entry := f.newBlock("entry")
	f.positionAt(entry)
	for _, p := range params {
		slot := "%" + p.Name + ".addr"
		f.cur.emit("%s = alloca %s", slot, llType(p.Type))
		f.cur.emit("store %s %%%s, %s* %s", llType(p.Type), p.Name, llType(p.Type), slot)
		f.declareVariable(p.Name, variable{slot: slot, typ: p.Type})
	}

	emitBlock(m, f, body)
	f.ret(retType, defaultValueIR(retType))

	f.popScope()
	return f
}

// defaultValueIR is the constant lowering ret falls back to for a block
// that ended without branching to an explicit return — unreachable for
// well-formed input since sema always appends an implicit return, but
// kept as a safe terminator rather than leaving a block open.
func defaultValueIR(t ast.Type) string {
	switch t {
	case ast.NumberType:
		return "0.0"
	case ast.BooleanType:
		return "0"
	default:
		return ""
	}
}
