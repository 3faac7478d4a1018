/*
File    : ziget/parser/parser_statements.go
Package : parser
*/
package parser

import (
	"github.com/Zeph16/ziget/ast"
	"github.com/Zeph16/ziget/lexer"
)

// parseStatement parses one Statement production, synchronizing at the
// next ';' on failure. The identifier/':=' lookahead disambiguates Assign
// from a bare expression statement (spec §4.2) since both start with an
// identifier.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.curIs(lexer.DEFINE):
		return p.parseVarDecl()
	case p.curIs(lexer.YIELD):
		return p.parseReturn()
	case p.curIs(lexer.LOOP):
		return p.parseLoop()
	case p.curIs(lexer.WHEN):
		return p.parseConditional()
	case p.curIs(lexer.LEAVE):
		pos := p.curPos()
		p.advance()
		if !p.expect(lexer.SEMICOLON) {
			p.synchronizeStatement()
			return nil
		}
		return &ast.Break{Pos: pos}
	case p.curIs(lexer.REPEAT):
		pos := p.curPos()
		p.advance()
		if !p.expect(lexer.SEMICOLON) {
			p.synchronizeStatement()
			return nil
		}
		return &ast.Continue{Pos: pos}
	case p.curIs(lexer.IDENTIFIER) && p.peekIs(lexer.OP_ASSIGN):
		return p.parseAssign()
	default:
		return p.parseExprStmt()
	}
}

// parseVarDecl parses:
//
//	VarDecl := 'define' ident [ '->' Type ] ':=' Expr ';'
func (p *Parser) parseVarDecl() ast.Statement {
	pos := p.curPos()
	p.advance() // 'define'

	if !p.curIs(lexer.IDENTIFIER) {
		p.addError("expected variable name, found %q", p.cur.Lexeme)
		p.synchronizeStatement()
		return nil
	}
	name := p.cur.Lexeme
	p.advance()

	var declType *ast.Type
	if p.curIs(lexer.OP_ARROW) {
		p.advance()
		t, ok := p.parseType()
		if !ok {
			p.synchronizeStatement()
			return nil
		}
		declType = &t
	}

	if !p.expect(lexer.OP_ASSIGN) {
		p.synchronizeStatement()
		return nil
	}
	value := p.parseExpr(0)
	if value == nil {
		p.synchronizeStatement()
		return nil
	}
	if !p.expect(lexer.SEMICOLON) {
		p.synchronizeStatement()
		return nil
	}
	return &ast.VarDecl{Name: name, Type: declType, Initializer: value, Pos: pos}
}

// parseAssign parses:
//
//	Assign := ident ':=' Expr ';'
func (p *Parser) parseAssign() ast.Statement {
	pos := p.curPos()
	name := p.cur.Lexeme
	p.advance() // ident
	p.advance() // ':='

	value := p.parseExpr(0)
	if value == nil {
		p.synchronizeStatement()
		return nil
	}
	if !p.expect(lexer.SEMICOLON) {
		p.synchronizeStatement()
		return nil
	}
	return &ast.Assign{Name: name, Value: value, Pos: pos}
}

// parseReturn parses:
//
//	Return := 'yield' [ Expr ] ';'
func (p *Parser) parseReturn() ast.Statement {
	pos := p.curPos()
	p.advance() // 'yield'

	if p.curIs(lexer.SEMICOLON) {
		p.advance()
		return &ast.Return{Pos: pos}
	}
	value := p.parseExpr(0)
	if value == nil {
		p.synchronizeStatement()
		return nil
	}
	if !p.expect(lexer.SEMICOLON) {
		p.synchronizeStatement()
		return nil
	}
	return &ast.Return{Value: value, Pos: pos}
}

// parseLoop parses:
//
//	Loop := 'loop' Block
func (p *Parser) parseLoop() ast.Statement {
	pos := p.curPos()
	p.advance() // 'loop'
	body := p.parseBlock()
	if body == nil {
		p.synchronizeStatement()
		return nil
	}
	return &ast.Loop{Body: body, Pos: pos}
}

// parseConditional parses:
//
//	Cond := 'when' Expr Block [ 'otherwise' Block ]
func (p *Parser) parseConditional() ast.Statement {
	pos := p.curPos()
	p.advance() // 'when'

	cond := p.parseExpr(0)
	if cond == nil {
		p.synchronizeStatement()
		return nil
	}
	consequence := p.parseBlock()
	if consequence == nil {
		p.synchronizeStatement()
		return nil
	}
	var alternative *ast.Block
	if p.curIs(lexer.OTHERWISE) {
		p.advance()
		alternative = p.parseBlock()
		if alternative == nil {
			p.synchronizeStatement()
			return nil
		}
	}
	return &ast.Conditional{Condition: cond, Consequence: consequence, Alternative: alternative, Pos: pos}
}

// parseExprStmt parses a bare expression statement, the fallthrough
// production for any statement that is neither a keyword-led form nor an
// identifier-followed-by-':='.
func (p *Parser) parseExprStmt() ast.Statement {
	pos := p.curPos()
	expr := p.parseExpr(0)
	if expr == nil {
		p.synchronizeStatement()
		return nil
	}
	if !p.expect(lexer.SEMICOLON) {
		p.synchronizeStatement()
		return nil
	}
	return &ast.ExprStmt{Expr: expr, Pos: pos}
}
