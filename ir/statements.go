/*
File    : ziget/ir/statements.go
Package : ir
*/
package ir

import "github.com/Zeph16/ziget/ast"

// emitBlock lowers a block's statements in order into f's current
// insertion point, pushing and popping a fresh variable scope around it.
func emitBlock(m *Module, f *Function, b *ast.Block) {
	f.pushScope()
	for _, stmt := range b.Statements {
		emitStatement(m, f, stmt)
	}
	f.popScope()
}

func emitStatement(m *Module, f *Function, stmt ast.Statement) {
	if f.cur.terminated {
		return
	}
	switch s := stmt.(type) {
	case *ast.VarDecl:
		emitVarDecl(m, f, s)
	case *ast.Assign:
		emitAssign(m, f, s)
	case *ast.ExprStmt:
		emitExpr(m, f, s.Expr)
	case *ast.Return:
		emitReturn(m, f, s)
	case *ast.Loop:
		emitLoop(m, f, s)
	case *ast.Conditional:
		emitConditional(m, f, s)
	case *ast.Break:
		emitBreak(f)
	case *ast.Continue:
		emitContinue(f)
	}
}

func emitVarDecl(m *Module, f *Function, s *ast.VarDecl) {
	declType := s.ResolvedType
	value := emitExpr(m, f, s.Initializer)

	slot := "%" + s.Name + ".addr"
	f.cur.emit("%s = alloca %s", slot, llType(declType))
	f.cur.emit("store %s %s, %s* %s", llType(declType), value, llType(declType), slot)
	f.declareVariable(s.Name, variable{slot: slot, typ: declType})
}

func emitAssign(m *Module, f *Function, s *ast.Assign) {
	value := emitExpr(m, f, s.Value)
	v, ok := f.lookupVariable(s.Name)
	if !ok {
		panic("ir: assignment to unknown variable '" + s.Name + "' — semantic analysis should have rejected this")
	}
	f.cur.emit("store %s %s, %s* %s", llType(v.typ), value, llType(v.typ), v.slot)
}

func emitReturn(m *Module, f *Function, s *ast.Return) {
	if s.Value == nil {
		f.ret(ast.Void, "")
		return
	}
	value := emitExpr(m, f, s.Value)
	f.ret(inferredType(s.Value), value)
}

// emitLoop implements the unconditional-loop lowering: two fresh blocks
// (header, exit), an unconditional entry branch, the header/exit pair
// pushed onto the loop stack for the duration of the body, an
// unconditional back-edge, then the exit block becomes the new insertion
// point.
func emitLoop(m *Module, f *Function, s *ast.Loop) {
	header := f.newBlock("loop")
	exit := f.newBlock("afterloop")

	f.br(header.name)

	f.positionAt(header)
	f.pushLoop(header.name, exit.name)
	emitBlock(m, f, s.Body)
	f.br(header.name)
	f.popLoop()

	f.positionAt(exit)
}

// emitConditional implements the `then`/`else`/`merge` lowering. An else
// block is always created, even with no `otherwise` clause, so both arms
// of the branch instruction always have a real target; an empty else
// block just falls through to merge.
func emitConditional(m *Module, f *Function, s *ast.Conditional) {
	cond := emitExpr(m, f, s.Condition)

	thenBlock := f.newBlock("then")
	elseBlock := f.newBlock("else")
	merge := f.newBlock("merge")

	f.condBr(cond, thenBlock.name, elseBlock.name)

	f.positionAt(thenBlock)
	emitBlock(m, f, s.Consequence)
	f.br(merge.name)

	f.positionAt(elseBlock)
	if s.Alternative != nil {
		emitBlock(m, f, s.Alternative)
	}
	f.br(merge.name)

	f.positionAt(merge)
}

func emitBreak(f *Function) {
	loop, ok := f.currentLoop()
	if !ok {
		panic("ir: 'leave' outside a loop — semantic analysis should have rejected this")
	}
	f.br(loop.exit)
}

func emitContinue(f *Function) {
	loop, ok := f.currentLoop()
	if !ok {
		panic("ir: 'repeat' outside a loop — semantic analysis should have rejected this")
	}
	f.br(loop.header)
}
