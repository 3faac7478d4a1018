/*
File    : ziget/diag/reporter.go
Package : diag
*/

// Package diag renders compiler diagnostics to a writer with the same
// red/yellow/cyan color convention the teacher's CLI output uses:
// red for errors, yellow for warnings, cyan for informational lines.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter writes colorized diagnostic lines to an underlying writer.
// Whether escape codes are written is decided by fatih/color's
// package-level NoColor setting (set when the process's stdout is not a
// terminal), not by the writer itself.
type Reporter struct {
	out io.Writer

	red    *color.Color
	yellow *color.Color
	cyan   *color.Color
}

// New creates a Reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		cyan:   color.New(color.FgCyan),
	}
}

// Error prints one error-level diagnostic line, prefixed "[ERROR]".
func (r *Reporter) Error(format string, args ...interface{}) {
	r.red.Fprintf(r.out, "[ERROR] %s\n", fmt.Sprintf(format, args...))
}

// Warn prints one warning-level diagnostic line, prefixed "[WARNING]".
func (r *Reporter) Warn(format string, args ...interface{}) {
	r.yellow.Fprintf(r.out, "[WARNING] %s\n", fmt.Sprintf(format, args...))
}

// Info prints one informational line in cyan, with no level prefix — used
// for phase/progress messages rather than diagnostics proper.
func (r *Reporter) Info(format string, args ...interface{}) {
	r.cyan.Fprintf(r.out, "%s\n", fmt.Sprintf(format, args...))
}

// Errorf is a convenience for reporting a single pre-positioned
// diagnostic that already carries a "line:column: " prefix, e.g. from
// parser.Error or sema.Diagnostic's String() method.
func (r *Reporter) Errorf(stage string, positioned string) {
	r.red.Fprintf(r.out, "[%s ERROR] %s\n", stage, positioned)
}

// Warnf mirrors Errorf for warning-level positioned diagnostics.
func (r *Reporter) Warnf(stage string, positioned string) {
	r.yellow.Fprintf(r.out, "[%s WARNING] %s\n", stage, positioned)
}
