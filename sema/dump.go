/*
File    : ziget/sema/dump.go
Package : sema
*/
package sema

import (
	"fmt"
	"strings"
)

// String renders the whole symbol-table forest as one block per scope:
// its parent, its bindings (kind/type/used/initialized), and its
// children ids — the CLI's --symbol-output dump format.
func (t *SymbolTable) String() string {
	var b strings.Builder
	for _, s := range t.scopes {
		fmt.Fprintf(&b, "Scope %d (parent=%s, children=%v)\n", s.id, parentLabel(s.parentID), s.children)
		for _, name := range s.order {
			sym := s.symbols[name]
			fmt.Fprintf(&b, "  %s %s: type=%s used=%t initialized=%t\n", symbolKindLabel(sym.Kind), sym.Name, sym.Type, sym.Used, sym.Initialized)
		}
	}
	return b.String()
}

func parentLabel(id int) string {
	if id == -1 {
		return "none"
	}
	return fmt.Sprintf("%d", id)
}

func symbolKindLabel(k SymbolKind) string {
	if k == ProcedureSymbol {
		return "procedure"
	}
	return "variable"
}
