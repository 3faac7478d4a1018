/*
File    : ziget/ir/emitter_test.go
Package : ir
*/
package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zeph16/ziget/lexer"
	"github.com/Zeph16/ziget/parser"
	"github.com/Zeph16/ziget/sema"
)

func compileToIR(t *testing.T, src string) string {
	t.Helper()
	prog, perrs := parser.Parse(lexer.New(src).Tokenize())
	require.Empty(t, perrs)
	res := sema.Analyze(prog)
	require.Empty(t, res.Errors)
	return Emit(prog).String()
}

func TestEmit_HelloWorldHasPrintfCallAndStringConstant(t *testing.T) {
	out := compileToIR(t, `procedure main { print("Hello, world!"); }`)
	assert.Contains(t, out, "declare i32 @printf(i8*, ...)")
	assert.Contains(t, out, `c"Hello, world!\0A\00"`)
	assert.Contains(t, out, "call i32 (i8*, ...) @printf")
	assert.Contains(t, out, "define void @main()")
	assert.Contains(t, out, "ret void")
}

func TestEmit_ArithmeticUsesFloatingPointOps(t *testing.T) {
	out := compileToIR(t, `procedure main { define x -> number := 2 + 3 * 4; print("x = {}", x); }`)
	assert.Contains(t, out, "fmul double")
	assert.Contains(t, out, "fadd double")
	assert.Contains(t, out, "alloca double")
}

func TestEmit_ProcedureWithReturn(t *testing.T) {
	out := compileToIR(t, `
		procedure add(a -> number, b -> number) -> number { yield a + b; }
		procedure main { print("{}", add(2, 3)); }
	`)
	assert.Contains(t, out, "define double @add(double %a, double %b)")
	assert.Contains(t, out, "call double @add(")
}

func TestEmit_LoopCreatesHeaderAndExitBlocks(t *testing.T) {
	out := compileToIR(t, `
		procedure main {
			define i -> number := 0;
			loop {
				when i >= 3 { leave; }
				i := i + 1;
			}
			print("{}", i);
		}
	`)
	assert.Contains(t, out, "loop0:")
	assert.Contains(t, out, "afterloop1:")
	assert.Contains(t, out, "br label %loop0")
}

func TestEmit_ConditionalCreatesThenElseMerge(t *testing.T) {
	out := compileToIR(t, `procedure main { when yes { print("a"); } otherwise { print("b"); } }`)
	assert.Contains(t, out, "then")
	assert.Contains(t, out, "else")
	assert.Contains(t, out, "merge")
	assert.Contains(t, out, "br i1")
}

func TestEmit_StringConstantsAreDeduplicated(t *testing.T) {
	out := compileToIR(t, `procedure main { print("same"); print("same"); }`)
	assert.Equal(t, 1, countOccurrences(out, "constant ["))
}

func countOccurrences(s, substr string) int {
	count := 0
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			count++
		}
	}
	return count
}
