/*
File    : ziget/ir/function.go
Package : ir
*/
package ir

import (
	"fmt"
	"strings"

	"github.com/Zeph16/ziget/ast"
)

// basicBlock is one labeled block of instructions. terminated tracks
// whether a br/ret has already been written to it, so callers never
// accidentally append a second terminator to the same block.
type basicBlock struct {
	name       string
	buf        strings.Builder
	terminated bool
}

func (b *basicBlock) emit(format string, args ...interface{}) {
	b.buf.WriteString("  ")
	fmt.Fprintf(&b.buf, format, args...)
	b.buf.WriteByte('\n')
}

// variable is one declared slot: the pointer register it was allocated
// into, and the language-level type it holds.
type variable struct {
	slot string
	typ  ast.Type
}

// loopFrame is one entry of the loop-exit-block stack: the header block
// `repeat` branches back to, and the exit block `leave` branches to.
// Nested loops push a frame on entry and pop it on exit, so a `leave`
// inside an inner loop never clobbers an outer loop's exit target — the
// stack discipline that a single mutable pair of fields cannot provide.
type loopFrame struct {
	header string
	exit   string
}

// Function is one LLIR function under construction: an ordered list of
// basic blocks, the block currently receiving new instructions, a
// per-scope variable-slot stack, and the enclosing loop stack.
type Function struct {
	name       string
	params     []ast.Parameter
	returnType ast.Type

	blocks []*basicBlock
	cur    *basicBlock

	scopes    []map[string]variable
	loopStack []loopFrame

	valueSeq int
	blockSeq int
}

func newFunction(name string, params []ast.Parameter, returnType ast.Type) *Function {
	return &Function{name: name, params: params, returnType: returnType}
}

// newBlock allocates a fresh block named prefixN (N counts every block of
// the function, starting at 0 with "entry0") and appends it to the
// function's block list in creation order — the order basic blocks are
// printed in, regardless of how control flow later jumps between them.
func (f *Function) newBlock(prefix string) *basicBlock {
	name := fmt.Sprintf("%s%d", prefix, f.blockSeq)
	f.blockSeq++
	b := &basicBlock{name: name}
	f.blocks = append(f.blocks, b)
	return b
}

// positionAt makes b the insertion point for subsequent emission.
func (f *Function) positionAt(b *basicBlock) {
	f.cur = b
}

func (f *Function) newTemp() string {
	name := fmt.Sprintf("%%t%d", f.valueSeq)
	f.valueSeq++
	return name
}

func (f *Function) pushScope() {
	f.scopes = append(f.scopes, map[string]variable{})
}

func (f *Function) popScope() {
	f.scopes = f.scopes[:len(f.scopes)-1]
}

func (f *Function) declareVariable(name string, v variable) {
	f.scopes[len(f.scopes)-1][name] = v
}

func (f *Function) lookupVariable(name string) (variable, bool) {
	for i := len(f.scopes) - 1; i >= 0; i-- {
		if v, ok := f.scopes[i][name]; ok {
			return v, true
		}
	}
	return variable{}, false
}

func (f *Function) pushLoop(header, exit string) {
	f.loopStack = append(f.loopStack, loopFrame{header: header, exit: exit})
}

func (f *Function) popLoop() {
	f.loopStack = f.loopStack[:len(f.loopStack)-1]
}

func (f *Function) currentLoop() (loopFrame, bool) {
	if len(f.loopStack) == 0 {
		return loopFrame{}, false
	}
	return f.loopStack[len(f.loopStack)-1], true
}

// br writes an unconditional branch, a no-op if the current block already
// has a terminator (emitting past a terminator would produce invalid IR,
// and can happen when the appended implicit return follows a body that
// already ended in an explicit one).
func (f *Function) br(target string) {
	if f.cur.terminated {
		return
	}
	f.cur.emit("br label %%%s", target)
	f.cur.terminated = true
}

func (f *Function) condBr(cond, thenLabel, elseLabel string) {
	if f.cur.terminated {
		return
	}
	f.cur.emit("br i1 %s, label %%%s, label %%%s", cond, thenLabel, elseLabel)
	f.cur.terminated = true
}

func (f *Function) ret(typ ast.Type, value string) {
	if f.cur.terminated {
		return
	}
	if typ == ast.Void {
		f.cur.emit("ret void")
	} else {
		f.cur.emit("ret %s %s", llType(typ), value)
	}
	f.cur.terminated = true
}

// writeTo renders the complete function definition, in block-creation
// order, to b.
func (f *Function) writeTo(b *strings.Builder) {
	params := make([]string, len(f.params))
	for i, p := range f.params {
		params[i] = fmt.Sprintf("%s %%%s", llType(p.Type), p.Name)
	}
	fmt.Fprintf(b, "define %s @%s(%s) {\n", llType(f.returnType), f.name, strings.Join(params, ", "))
	for _, blk := range f.blocks {
		fmt.Fprintf(b, "%s:\n", blk.name)
		b.WriteString(blk.buf.String())
	}
	b.WriteString("}\n")
}
