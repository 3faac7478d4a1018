/*
File    : ziget/parser/precedence.go
Package : parser
*/
package parser

import (
	"github.com/Zeph16/ziget/ast"
	"github.com/Zeph16/ziget/lexer"
)

// precedence is the binding strength used by the Pratt-style expression
// climber in parser_expressions.go; higher binds tighter. := and -> are
// intentionally absent — they sit outside expression grammar entirely
// (precedence 0, spec §3) and are never consulted by parseExpr.
var precedence = map[lexer.TokenKind]int{
	lexer.OP_OR:    1,
	lexer.OP_AND:   2,
	lexer.OP_IS:    3,
	lexer.OP_ISNT:  3,
	lexer.OP_LT:    4,
	lexer.OP_GT:    4,
	lexer.OP_LE:    4,
	lexer.OP_GE:    4,
	lexer.OP_PLUS:  5,
	lexer.OP_MINUS: 5,
	lexer.OP_STAR:  6,
	lexer.OP_SLASH: 6,
	lexer.OP_PCT:   6,
}

// operatorOf maps a binary operator token to its ast.Operator. Only
// tokens present in precedence ever reach this function; unary '-' is
// built directly as ast.Minus in parseUnary.
func operatorOf(kind lexer.TokenKind) ast.Operator {
	return ast.Operator(kind)
}

// isBinaryOperator reports whether kind can start the infix part of a
// BinaryExpr production.
func isBinaryOperator(kind lexer.TokenKind) bool {
	_, ok := precedence[kind]
	return ok
}
