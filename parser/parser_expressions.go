/*
File    : ziget/parser/parser_expressions.go
Package : parser
*/
package parser

import (
	"strconv"

	"github.com/Zeph16/ziget/ast"
	"github.com/Zeph16/ziget/lexer"
)

// parseExpr is the Pratt-style precedence climber:
//
//	BinaryExpr(p) := UnaryExpr { op(prec>=p) BinaryExpr(prec+1) }
//
// Equal-precedence operators associate left since each iteration of the
// loop re-climbs at prec+1, never prec, so a same-precedence operator to
// the right is never absorbed into the right-hand recursion.
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parseUnary()
	if left == nil {
		return nil
	}
	for isBinaryOperator(p.cur.Kind) && precedence[p.cur.Kind] >= minPrec {
		opTok := p.cur
		prec := precedence[opTok.Kind]
		p.advance()
		right := p.parseExpr(prec + 1)
		if right == nil {
			return nil
		}
		left = &ast.BinaryOp{Op: operatorOf(opTok.Kind), Left: left, Right: right, Pos: ast.Pos{Line: opTok.Line, Column: opTok.Column}}
	}
	return left
}

// parseUnary parses:
//
//	UnaryExpr := '-' UnaryExpr | Primary
func (p *Parser) parseUnary() ast.Expr {
	if p.curIs(lexer.OP_MINUS) {
		pos := p.curPos()
		p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &ast.UnaryOp{Op: ast.Minus, Operand: operand, Pos: pos}
	}
	return p.parsePrimary()
}

// parsePrimary parses:
//
//	Primary := ident [ '(' ArgList ')' ] | number | string | bool | '(' Expr ')'
func (p *Parser) parsePrimary() ast.Expr {
	pos := p.curPos()
	switch p.cur.Kind {
	case lexer.IDENTIFIER:
		name := p.cur.Lexeme
		p.advance()
		if p.curIs(lexer.LEFT_PAREN) {
			p.advance()
			var args []ast.Expr
			if !p.curIs(lexer.RIGHT_PAREN) {
				args = p.parseArgList()
			}
			if !p.expect(lexer.RIGHT_PAREN) {
				return nil
			}
			return &ast.ProcCall{Name: name, Args: args, Pos: pos}
		}
		return &ast.Variable{Name: name, Pos: pos}

	case lexer.NUMBER_LIT:
		lexeme := p.cur.Lexeme
		p.advance()
		val, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			p.addError("invalid number literal %q", lexeme)
			return nil
		}
		return &ast.Literal{Kind: ast.NumberLit, Num: val, Pos: pos}

	case lexer.STRING_LIT:
		lexeme := p.cur.Lexeme
		p.advance()
		return &ast.Literal{Kind: ast.StringLit, Str: lexeme, Pos: pos}

	case lexer.BOOL_LIT:
		lexeme := p.cur.Lexeme
		p.advance()
		return &ast.Literal{Kind: ast.BoolLit, Bool: lexeme == "yes", Pos: pos}

	case lexer.LEFT_PAREN:
		p.advance()
		expr := p.parseExpr(0)
		if expr == nil {
			return nil
		}
		if !p.expect(lexer.RIGHT_PAREN) {
			return nil
		}
		return expr

	default:
		p.addError("unexpected token %q in expression", p.cur.Lexeme)
		return nil
	}
}

// parseArgList parses:
//
//	ArgList := Expr { ',' Expr }
func (p *Parser) parseArgList() []ast.Expr {
	var args []ast.Expr
	first := p.parseExpr(0)
	if first == nil {
		return nil
	}
	args = append(args, first)
	for p.curIs(lexer.COMMA) {
		p.advance()
		arg := p.parseExpr(0)
		if arg == nil {
			return args
		}
		args = append(args, arg)
	}
	return args
}
