/*
File    : ziget/sema/analyzer_test.go
Package : sema
*/
package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zeph16/ziget/ast"
	"github.com/Zeph16/ziget/lexer"
	"github.com/Zeph16/ziget/parser"
)

func analyze(t *testing.T, src string) Result {
	t.Helper()
	prog, perrs := parser.Parse(lexer.New(src).Tokenize())
	require.Empty(t, perrs)
	return Analyze(prog)
}

func TestAnalyze_HelloWorldRewritesPrint(t *testing.T) {
	prog, perrs := parser.Parse(lexer.New(`procedure main { print("Hello, world!"); }`).Tokenize())
	require.Empty(t, perrs)
	res := Analyze(prog)
	require.Empty(t, res.Errors)

	call := prog.Main.Body.Statements[0].(*ast.ExprStmt).Expr.(*ast.ProcCall)
	require.Len(t, call.Args, 1)
	lit := call.Args[0].(*ast.Literal)
	assert.Equal(t, "Hello, world!\n", lit.Str)
}

func TestAnalyze_PlaceholderInterpolation(t *testing.T) {
	prog, perrs := parser.Parse(lexer.New(`procedure main { define x -> number := 2 + 3 * 4; print("x = {}", x); }`).Tokenize())
	require.Empty(t, perrs)
	res := Analyze(prog)
	require.Empty(t, res.Errors)

	call := prog.Main.Body.Statements[1].(*ast.ExprStmt).Expr.(*ast.ProcCall)
	format := call.Args[0].(*ast.Literal)
	assert.Equal(t, "x = %.2f\n", format.Str)
	require.Len(t, call.Args, 2)
}

func TestAnalyze_SynthesizedFormatForNonLiteralFirstArg(t *testing.T) {
	res := analyze(t, `procedure add(a -> number, b -> number) -> number { yield a + b; } procedure main { print(add(2, 3)); }`)
	require.Empty(t, res.Errors)
}

func TestAnalyze_ProcedureCallTypeChecking(t *testing.T) {
	prog, perrs := parser.Parse(lexer.New(`
		procedure add(a -> number, b -> number) -> number { yield a + b; }
		procedure main { print("{}", add(2, 3)); }
	`).Tokenize())
	require.Empty(t, perrs)
	res := Analyze(prog)
	assert.Empty(t, res.Errors)
}

func TestAnalyze_TypeErrorOnMismatchedInitializer(t *testing.T) {
	res := analyze(t, `procedure main { define x -> number := "hi"; }`)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0].Message, "Type mismatch: expected Number, found String for variable 'x'.")
}

func TestAnalyze_UnusedVariableWarning(t *testing.T) {
	res := analyze(t, `procedure main { define y -> number := 1; }`)
	require.Empty(t, res.Errors)
	require.NotEmpty(t, res.Warnings)
	found := false
	for _, w := range res.Warnings {
		if w.Message == "Variable 'y' is declared but never used." {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAnalyze_AssigningVoidCallResultIsTypeError(t *testing.T) {
	res := analyze(t, `
		procedure doNothing { yield; }
		procedure main { define x -> number := 1; x := doNothing(); }
	`)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0].Message, "Type mismatch: expected Number, found Void for variable 'x'.")
}

func TestAnalyze_ReturningVoidCallResultIsTypeError(t *testing.T) {
	res := analyze(t, `
		procedure doNothing { yield; }
		procedure f -> number { yield doNothing(); }
		procedure main { print("{}", f()); }
	`)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0].Message, "Type mismatch: expected Number, found Void for return value.")
}

func TestAnalyze_PassingVoidCallResultAsArgumentIsTypeError(t *testing.T) {
	res := analyze(t, `
		procedure doNothing { yield; }
		procedure add(a -> number, b -> number) -> number { yield a + b; }
		procedure main { print("{}", add(doNothing(), 1)); }
	`)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0].Message, "Type mismatch: expected Number, found Void for argument 1 of 'add'.")
}

func TestAnalyze_UnusedProcedureWarning(t *testing.T) {
	res := analyze(t, `procedure unused -> number { yield 1; } procedure main { print("hi"); }`)
	require.Empty(t, res.Errors)
	require.NotEmpty(t, res.Warnings)
	found := false
	for _, w := range res.Warnings {
		if w.Message == "Procedure 'unused' is declared but never used." {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAnalyze_LeaveOutsideLoopIsError(t *testing.T) {
	res := analyze(t, `procedure main { leave; }`)
	require.NotEmpty(t, res.Errors)
	assert.Equal(t, "'leave' statement used outside of a loop.", res.Errors[0].Message)
}

func TestAnalyze_LeaveInsideLoopIsFine(t *testing.T) {
	res := analyze(t, `
		procedure main {
			define i -> number := 0;
			loop {
				when i >= 3 { leave; }
				i := i + 1;
			}
			print("{}", i);
		}
	`)
	assert.Empty(t, res.Errors)
}

func TestAnalyze_ConditionMustBeBoolean(t *testing.T) {
	res := analyze(t, `procedure main { when 1 { print("x"); } }`)
	require.NotEmpty(t, res.Errors)
}

func TestAnalyze_UndeclaredVariableIsError(t *testing.T) {
	res := analyze(t, `procedure main { print("{}", x); }`)
	require.NotEmpty(t, res.Errors)
}

func TestAnalyze_RedeclarationInSameScopeIsError(t *testing.T) {
	res := analyze(t, `procedure main { define x -> number := 1; define x -> number := 2; }`)
	require.NotEmpty(t, res.Errors)
}

func TestAnalyze_ShadowingInNestedScopeIsAllowed(t *testing.T) {
	res := analyze(t, `
		procedure main {
			define x -> number := 1;
			when yes {
				define x -> number := 2;
				print("{}", x);
			}
			print("{}", x);
		}
	`)
	assert.Empty(t, res.Errors)
}

func TestAnalyze_UnreachableCodeAfterReturn(t *testing.T) {
	res := analyze(t, `procedure f -> number { yield 1; print("never"); } procedure main { print("{}", f()); }`)
	require.NotEmpty(t, res.Warnings)
	assert.Equal(t, "Unreachable code detected.", res.Warnings[0].Message)
}

func TestAnalyze_ArityMismatchIsError(t *testing.T) {
	res := analyze(t, `procedure add(a -> number, b -> number) -> number { yield a + b; } procedure main { print("{}", add(2)); }`)
	require.NotEmpty(t, res.Errors)
}

func TestAnalyze_PrintEmptyArgsIsError(t *testing.T) {
	res := analyze(t, `procedure main { print(); }`)
	require.NotEmpty(t, res.Errors)
}

func TestAnalyze_PlaceholderArityMismatchIsError(t *testing.T) {
	res := analyze(t, `procedure main { print("{} {}", 1); }`)
	require.NotEmpty(t, res.Errors)
}
