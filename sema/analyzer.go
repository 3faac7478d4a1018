/*
File    : ziget/sema/analyzer.go
Package : sema
*/
package sema

import "github.com/Zeph16/ziget/ast"

// Analyzer performs the single structural pass described in the
// statement/expression analysis files of this package: scope-forest
// construction on the way down, bottom-up type synthesis, print-call
// rewriting, and implicit-return insertion.
type Analyzer struct {
	table *SymbolTable

	errors   []Diagnostic
	warnings []Diagnostic

	inLoop            int
	currentReturnType ast.Type
}

// Result bundles everything a caller (the cmd package, or a test) needs
// out of a completed analysis pass.
type Result struct {
	Table    *SymbolTable
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// printSymbol is the built-in print procedure's nominal signature. Its
// real arity is variadic; callers match against it only to mark the
// symbol used and to keep print a normal entry in the root scope rather
// than a special case in the call-resolution code path.
var printSymbol = &Symbol{Name: "print", Kind: ProcedureSymbol, Type: ast.Void, Used: true}

// Analyze runs the full sequence over prog and returns the populated
// symbol table plus any accumulated diagnostics. Errors being non-empty
// means the program is not semantically valid; warnings never block
// continuing to IR emission.
func Analyze(prog *ast.Program) Result {
	a := &Analyzer{table: NewSymbolTable()}

	a.table.Bind(RootID, printSymbol)

	for _, proc := range prog.Procedures {
		a.declareProcedure(proc)
	}
	for _, proc := range prog.Procedures {
		a.analyzeProcedure(proc)
	}
	if prog.Main != nil {
		a.currentReturnType = ast.Void
		scopeID := a.table.NewScope(RootID)
		a.analyzeBlockIn(prog.Main.Body, scopeID)
		a.appendImplicitReturn(prog.Main.Body, ast.Void)
	}

	for _, sym := range a.table.Unused() {
		switch sym.Kind {
		case VariableSymbol:
			a.warnings = append(a.warnings, Diagnostic{Message: "Variable '" + sym.Name + "' is declared but never used."})
		case ProcedureSymbol:
			a.warnings = append(a.warnings, Diagnostic{Message: "Procedure '" + sym.Name + "' is declared but never used."})
		}
	}

	return Result{Table: a.table, Errors: a.errors, Warnings: a.warnings}
}

// declareProcedure registers proc's name and signature in the root scope.
// Redeclaration (including colliding with the built-in print) is an
// error but does not stop the rest of the pass from running.
func (a *Analyzer) declareProcedure(proc *ast.Procedure) {
	paramTypes := make([]ast.Type, len(proc.Params))
	for i, p := range proc.Params {
		paramTypes[i] = p.Type
	}
	sym := &Symbol{Name: proc.Name, Kind: ProcedureSymbol, Type: proc.ReturnType, ParamTypes: paramTypes, Used: false}
	if !a.table.Bind(RootID, sym) {
		a.errorAt(proc.Pos, "Procedure '%s' is already declared.", proc.Name)
	}
}

// analyzeProcedure analyzes one user procedure's body in a fresh child
// scope of root, with its parameters pre-bound as initialized variables.
func (a *Analyzer) analyzeProcedure(proc *ast.Procedure) {
	scopeID := a.table.NewScope(RootID)
	for _, param := range proc.Params {
		a.table.Bind(scopeID, &Symbol{Name: param.Name, Kind: VariableSymbol, Type: param.Type, Used: false, Initialized: true})
	}
	a.currentReturnType = proc.ReturnType
	a.analyzeBlockIn(proc.Body, scopeID)
	a.appendImplicitReturn(proc.Body, proc.ReturnType)
}

// appendImplicitReturn guarantees proc's body AST ends in a Return node,
// so the IR emitter never has to reason about a fallthrough exit.
func (a *Analyzer) appendImplicitReturn(body *ast.Block, retType ast.Type) {
	body.Statements = append(body.Statements, &ast.Return{Value: ast.DefaultValue(retType)})
}
