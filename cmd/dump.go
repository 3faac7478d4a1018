/*
File    : ziget/cmd/dump.go
Package : cmd
*/
package cmd

import (
	"os"
	"strings"

	"github.com/Zeph16/ziget/lexer"
)

// writeTokenDump writes one line per token, "line:column kind lexeme",
// using lexer.Token's own String() rendering.
func writeTokenDump(path string, tokens []lexer.Token) error {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
