/*
File    : ziget/cmd/flags.go
Package : cmd
*/

// Package cmd is the command-line dispatcher: flag parsing, pipeline
// orchestration, dump-file writing, and external toolchain invocation.
// It is the only package in this module that reads the process
// environment; it returns exit codes to main, which calls os.Exit.
package cmd

import (
	"strings"

	"github.com/spf13/pflag"
)

// Options is the parsed command line for a single-file compilation.
type Options struct {
	InputFile string
	Output    string

	DumpParser bool
	DumpLexer  bool
	DumpSymbol bool
}

// ParseArgs parses args (excluding the program name) into Options. The
// long/short dual-form flags mirror spec.md §6 exactly:
// --output/-o, --parser-output/-p, --lexer-output/-l, --symbol-output/-s.
func ParseArgs(args []string) (*Options, error) {
	fs := pflag.NewFlagSet("ziget", pflag.ContinueOnError)

	output := fs.StringP("output", "o", "a.out", "output executable path")
	dumpParser := fs.BoolP("parser-output", "p", false, "dump the parse tree")
	dumpLexer := fs.BoolP("lexer-output", "l", false, "dump the token list")
	dumpSymbol := fs.BoolP("symbol-output", "s", false, "dump the symbol-table forest")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := &Options{
		Output:     *output,
		DumpParser: *dumpParser,
		DumpLexer:  *dumpLexer,
		DumpSymbol: *dumpSymbol,
	}

	if fs.NArg() > 0 {
		opts.InputFile = fs.Arg(0)
	}

	if opts.Output == "a.out" && opts.InputFile != "" {
		opts.Output = stem(opts.InputFile) + ".out"
	}

	return opts, nil
}

// stem strips a trailing ".zg" extension from path without touching any
// directory component, so dump files land next to the input file, e.g.
// "samples/hello.zg" -> "samples/hello".
func stem(path string) string {
	return strings.TrimSuffix(path, ".zg")
}
