/*
File    : ziget/ir/expressions.go
Package : ir
*/
package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Zeph16/ziget/ast"
)

// inferredType reads back the type the semantic analyzer annotated e
// with, so the emitter never has to re-run type synthesis.
func inferredType(e ast.Expr) ast.Type {
	switch n := e.(type) {
	case *ast.Literal:
		switch n.Kind {
		case ast.NumberLit:
			return ast.NumberType
		case ast.BoolLit:
			return ast.BooleanType
		case ast.StringLit:
			return ast.StringType
		}
	case *ast.Variable:
		return n.ResolvedType
	case *ast.BinaryOp:
		return n.ResolvedType
	case *ast.UnaryOp:
		return n.ResolvedType
	case *ast.ProcCall:
		return n.ResolvedType
	}
	return ast.Void
}

// emitExpr lowers e and returns the LLIR value (a register name or an
// inline constant) that holds its result.
func emitExpr(m *Module, f *Function, e ast.Expr) string {
	switch n := e.(type) {
	case *ast.Literal:
		return emitLiteral(m, f, n)
	case *ast.Variable:
		return emitVariable(f, n)
	case *ast.BinaryOp:
		return emitBinaryOp(m, f, n)
	case *ast.UnaryOp:
		return emitUnaryOp(m, f, n)
	case *ast.ProcCall:
		return emitProcCall(m, f, n)
	default:
		return "0"
	}
}

func emitLiteral(m *Module, f *Function, lit *ast.Literal) string {
	switch lit.Kind {
	case ast.NumberLit:
		return strconv.FormatFloat(lit.Num, 'g', -1, 64)
	case ast.BoolLit:
		if lit.Bool {
			return "1"
		}
		return "0"
	case ast.StringLit:
		global := m.internString(lit.Str)
		temp := f.newTemp()
		f.cur.emit("%s = getelementptr [%d x i8], [%d x i8]* %s, i64 0, i64 0", temp, len(lit.Str)+1, len(lit.Str)+1, global)
		return temp
	default:
		return "0"
	}
}

func emitVariable(f *Function, v *ast.Variable) string {
	variable, ok := f.lookupVariable(v.Name)
	if !ok {
		panic("ir: reference to unknown variable '" + v.Name + "' — semantic analysis should have rejected this")
	}
	temp := f.newTemp()
	f.cur.emit("%s = load %s, %s* %s", temp, llType(variable.typ), llType(variable.typ), variable.slot)
	return temp
}

func emitBinaryOp(m *Module, f *Function, b *ast.BinaryOp) string {
	left := emitExpr(m, f, b.Left)
	right := emitExpr(m, f, b.Right)
	temp := f.newTemp()

	switch b.Op {
	case ast.Plus:
		f.cur.emit("%s = fadd double %s, %s", temp, left, right)
	case ast.Minus:
		f.cur.emit("%s = fsub double %s, %s", temp, left, right)
	case ast.Star:
		f.cur.emit("%s = fmul double %s, %s", temp, left, right)
	case ast.Slash:
		f.cur.emit("%s = fdiv double %s, %s", temp, left, right)
	case ast.Pct:
		f.cur.emit("%s = frem double %s, %s", temp, left, right)
	case ast.Lt:
		f.cur.emit("%s = fcmp olt double %s, %s", temp, left, right)
	case ast.Gt:
		f.cur.emit("%s = fcmp ogt double %s, %s", temp, left, right)
	case ast.Le:
		f.cur.emit("%s = fcmp ole double %s, %s", temp, left, right)
	case ast.Ge:
		f.cur.emit("%s = fcmp oge double %s, %s", temp, left, right)
	case ast.And:
		f.cur.emit("%s = and i1 %s, %s", temp, left, right)
	case ast.Or:
		f.cur.emit("%s = or i1 %s, %s", temp, left, right)
	case ast.Is, ast.Isnt:
		return emitEquality(f, b, left, right, temp)
	}
	return temp
}

// emitEquality handles is/isnt, which accept either Number or Boolean
// operands (spec §4.3) and so need the operand type to pick between a
// float and an integer compare.
func emitEquality(f *Function, b *ast.BinaryOp, left, right, temp string) string {
	operandType := inferredType(b.Left)
	if operandType == ast.NumberType {
		op := "oeq"
		if b.Op == ast.Isnt {
			op = "one"
		}
		f.cur.emit("%s = fcmp %s double %s, %s", temp, op, left, right)
		return temp
	}
	op := "eq"
	if b.Op == ast.Isnt {
		op = "ne"
	}
	f.cur.emit("%s = icmp %s i1 %s, %s", temp, op, left, right)
	return temp
}

func emitUnaryOp(m *Module, f *Function, u *ast.UnaryOp) string {
	operand := emitExpr(m, f, u.Operand)
	temp := f.newTemp()
	f.cur.emit("%s = fneg double %s", temp, operand)
	return temp
}

// emitProcCall lowers a call to printf (for the rewritten built-in print)
// or to a named user procedure.
func emitProcCall(m *Module, f *Function, call *ast.ProcCall) string {
	if call.Name == "print" {
		return emitPrintCall(m, f, call)
	}

	args := make([]string, len(call.Args))
	for i, a := range call.Args {
		args[i] = fmt.Sprintf("%s %s", llType(inferredType(a)), emitExpr(m, f, a))
	}
	if call.ResolvedType == ast.Void {
		f.cur.emit("call void @%s(%s)", call.Name, joinArgs(args))
		return ""
	}
	temp := f.newTemp()
	f.cur.emit("%s = call %s @%s(%s)", temp, llType(call.ResolvedType), call.Name, joinArgs(args))
	return temp
}

func emitPrintCall(m *Module, f *Function, call *ast.ProcCall) string {
	args := make([]string, len(call.Args))
	for i, a := range call.Args {
		args[i] = fmt.Sprintf("%s %s", llType(inferredType(a)), emitExpr(m, f, a))
	}
	temp := f.newTemp()
	f.cur.emit("%s = call i32 (i8*, ...) @printf(%s)", temp, joinArgs(args))
	return ""
}

func joinArgs(args []string) string {
	return strings.Join(args, ", ")
}
