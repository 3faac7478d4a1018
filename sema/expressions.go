/*
File    : ziget/sema/expressions.go
Package : sema
*/
package sema

import "github.com/Zeph16/ziget/ast"

// analyzeExpr synthesizes e's type bottom-up, recording errors on
// mismatch but always returning a best-effort type so the caller can
// keep going rather than short-circuit the whole pass on first failure.
func (a *Analyzer) analyzeExpr(e ast.Expr, scopeID int) ast.Type {
	switch n := e.(type) {
	case *ast.Literal:
		return a.literalType(n)
	case *ast.Variable:
		return a.analyzeVariable(n, scopeID)
	case *ast.BinaryOp:
		t := a.analyzeBinaryOp(n, scopeID)
		n.ResolvedType = t
		return t
	case *ast.UnaryOp:
		t := a.analyzeUnaryOp(n, scopeID)
		n.ResolvedType = t
		return t
	case *ast.ProcCall:
		t := a.analyzeProcCall(n, scopeID)
		n.ResolvedType = t
		return t
	default:
		return ast.Void
	}
}

func (a *Analyzer) literalType(lit *ast.Literal) ast.Type {
	switch lit.Kind {
	case ast.NumberLit:
		return ast.NumberType
	case ast.BoolLit:
		return ast.BooleanType
	case ast.StringLit:
		return ast.StringType
	default:
		return ast.Void
	}
}

func (a *Analyzer) analyzeVariable(v *ast.Variable, scopeID int) ast.Type {
	sym, owner, ok := a.table.LookUp(scopeID, v.Name)
	if !ok || sym.Kind != VariableSymbol {
		a.errorAt(v.Pos, "Undeclared variable '%s'.", v.Name)
		return ast.Void
	}
	a.table.MarkUsed(owner, v.Name)
	v.ResolvedType = sym.Type
	return sym.Type
}

func (a *Analyzer) analyzeBinaryOp(b *ast.BinaryOp, scopeID int) ast.Type {
	left := a.analyzeExpr(b.Left, scopeID)
	right := a.analyzeExpr(b.Right, scopeID)

	switch b.Op {
	case ast.Plus, ast.Minus, ast.Star, ast.Slash, ast.Pct:
		if left != ast.NumberType || right != ast.NumberType {
			a.errorAt(b.Pos, "Operator '%s' requires Number operands, found %s and %s.", b.Op, left, right)
			return left
		}
		return ast.NumberType
	case ast.Lt, ast.Gt, ast.Le, ast.Ge:
		if left != ast.NumberType || right != ast.NumberType {
			a.errorAt(b.Pos, "Operator '%s' requires Number operands, found %s and %s.", b.Op, left, right)
			return left
		}
		return ast.BooleanType
	case ast.And, ast.Or:
		if left != ast.BooleanType || right != ast.BooleanType {
			a.errorAt(b.Pos, "Operator '%s' requires Boolean operands, found %s and %s.", b.Op, left, right)
			return left
		}
		return ast.BooleanType
	case ast.Is, ast.Isnt:
		numeric := left == ast.NumberType && right == ast.NumberType
		boolean := left == ast.BooleanType && right == ast.BooleanType
		if !numeric && !boolean {
			a.errorAt(b.Pos, "Operator '%s' requires matching Number or Boolean operands, found %s and %s.", b.Op, left, right)
			return left
		}
		return ast.BooleanType
	default:
		return left
	}
}

func (a *Analyzer) analyzeUnaryOp(u *ast.UnaryOp, scopeID int) ast.Type {
	operand := a.analyzeExpr(u.Operand, scopeID)
	if operand != ast.NumberType {
		a.errorAt(u.Pos, "Operator '-' requires a Number operand, found %s.", operand)
	}
	return ast.NumberType
}

func (a *Analyzer) analyzeProcCall(call *ast.ProcCall, scopeID int) ast.Type {
	if call.Name == "print" {
		return a.rewritePrint(call, scopeID)
	}

	sym, owner, ok := a.table.LookUp(scopeID, call.Name)
	if !ok || sym.Kind != ProcedureSymbol {
		a.errorAt(call.Pos, "Undeclared procedure '%s'.", call.Name)
		for _, arg := range call.Args {
			a.analyzeExpr(arg, scopeID)
		}
		return ast.Void
	}
	a.table.MarkUsed(owner, call.Name)

	if len(call.Args) != len(sym.ParamTypes) {
		a.errorAt(call.Pos, "Procedure '%s' expects %d argument(s), found %d.", call.Name, len(sym.ParamTypes), len(call.Args))
	}
	for i, arg := range call.Args {
		argType := a.analyzeExpr(arg, scopeID)
		if i < len(sym.ParamTypes) && argType != sym.ParamTypes[i] {
			a.errorAt(arg.Position(), "Type mismatch: expected %s, found %s for argument %d of '%s'.", sym.ParamTypes[i], argType, i+1, call.Name)
		}
	}
	return sym.Type
}
