/*
File    : ziget/cmd/run.go
Package : cmd
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/Zeph16/ziget/ast"
	"github.com/Zeph16/ziget/diag"
	"github.com/Zeph16/ziget/ir"
	"github.com/Zeph16/ziget/lexer"
	"github.com/Zeph16/ziget/parser"
	"github.com/Zeph16/ziget/sema"
)

// paths bundles every file path a single compilation reads or writes,
// all derived from the input file's stem (spec.md §6).
type paths struct {
	input      string
	tokens     string
	tree       string
	symbols    string
	ir         string
	assembly   string
	object     string
	executable string
}

func derivePaths(opts *Options) paths {
	s := stem(opts.InputFile)
	return paths{
		input:      opts.InputFile,
		tokens:     s + "-tokens.txt",
		tree:       s + "-tree.txt",
		symbols:    s + "-symbol_tables.txt",
		ir:         s + ".ll",
		assembly:   s + ".s",
		object:     s + ".o",
		executable: opts.Output,
	}
}

// Run executes the full compilation pipeline for a single invocation and
// returns the process exit code. Per spec.md §6's observable quirk, a
// missing input file is reported but exits 0, not a failure code.
func Run(opts *Options, r *diag.Reporter) int {
	if opts.InputFile == "" {
		r.Error("no input file given")
		return 1
	}
	if _, err := os.Stat(opts.InputFile); err != nil {
		r.Error("input file does not exist")
		return 0
	}

	clangPath := os.Getenv("ZIGET_CLANG_PATH")
	if clangPath == "" {
		r.Error("ZIGET_CLANG_PATH is not set; a C-family driver binary is required to assemble and link")
		return 1
	}

	p := derivePaths(opts)

	source, err := os.ReadFile(p.input)
	if err != nil {
		r.Error("could not read file '%s': %v", p.input, err)
		return 1
	}

	r.Info("Lexing input...")
	tokens := lexer.New(string(source)).Tokenize()
	if lexer.HasInvalid(tokens) {
		for _, t := range tokens {
			if t.Kind == lexer.INVALID {
				r.Errorf("LEX", fmt.Sprintf("%d:%d: invalid token %q", t.Line, t.Column, t.Lexeme))
			}
		}
		return 1
	}
	if opts.DumpLexer {
		if err := writeTokenDump(p.tokens, tokens); err != nil {
			r.Error("%v", err)
			return 1
		}
		r.Info("Tokens written to %s", p.tokens)
	}

	r.Info("Parsing tokens...")
	prog, perrs := parser.Parse(tokens)
	if len(perrs) > 0 {
		for _, e := range perrs {
			r.Errorf("PARSE", e.String())
		}
		return 1
	}

	r.Info("Analyzing parse tree...")
	result := sema.Analyze(prog)
	for _, w := range result.Warnings {
		r.Warnf("SEMANTIC", w.String())
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			r.Errorf("SEMANTIC", e.String())
		}
		return 1
	}

	if opts.DumpParser {
		if err := os.WriteFile(p.tree, []byte(ast.Print(prog)), 0o644); err != nil {
			r.Error("%v", err)
			return 1
		}
		r.Info("Parse tree written to %s", p.tree)
	}
	if opts.DumpSymbol {
		if err := os.WriteFile(p.symbols, []byte(result.Table.String()), 0o644); err != nil {
			r.Error("%v", err)
			return 1
		}
		r.Info("Symbol tables written to %s", p.symbols)
	}

	r.Info("Generating intermediate code...")
	module := ir.Emit(prog)
	if err := os.WriteFile(p.ir, []byte(module.String()), 0o644); err != nil {
		r.Error("%v", err)
		return 1
	}
	r.Info("IR written to %s", p.ir)

	r.Info("Generating machine code...")
	if err := compileAndLink(clangPath, p, r); err != nil {
		r.Error("%v", err)
		return 1
	}
	r.Info("Compiled successfully to %s!", p.executable)
	return 0
}
