/*
File    : ziget/parser/parser.go
Package : parser
*/

// Package parser implements the recursive-descent, Pratt-precedence parser
// that turns a lexer.Token stream into an *ast.Program. Errors are
// accumulated rather than fatal: a failed sub-parse appends a diagnostic
// and synchronizes at the nearest recovery point (';' inside a block,
// 'procedure' at the top level) so a single file can be checked for many
// mistakes in one pass, mirroring the teacher's Errors []string idiom.
package parser

import (
	"github.com/Zeph16/ziget/ast"
	"github.com/Zeph16/ziget/lexer"
)

// Parser walks a fixed token slice with a one-token lookahead (peek),
// rather than pulling from the lexer on demand — the whole program is
// tokenized up front by the cmd layer, so there is no streaming concern.
type Parser struct {
	tokens []lexer.Token
	pos    int

	cur  lexer.Token
	peek lexer.Token

	errors []Error
}

// New constructs a Parser over a complete token stream, which must end
// with an EOF token (as lexer.Tokenize produces).
func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens}
	p.advance()
	p.advance()
	return p
}

// advance shifts cur <- peek and reads the next token from the stream,
// holding on EOF once reached.
func (p *Parser) advance() {
	p.cur = p.peek
	if p.pos < len(p.tokens) {
		p.peek = p.tokens[p.pos]
		p.pos++
	} else {
		p.peek = lexer.Token{Kind: lexer.EOF}
	}
}

func (p *Parser) curIs(kind lexer.TokenKind) bool  { return p.cur.Kind == kind }
func (p *Parser) peekIs(kind lexer.TokenKind) bool { return p.peek.Kind == kind }

// expect checks cur against kind, advances past it, and returns false
// (recording an error) on mismatch.
func (p *Parser) expect(kind lexer.TokenKind) bool {
	if p.cur.Kind != kind {
		p.addError("expected %s, found %q", kind, p.cur.Lexeme)
		return false
	}
	p.advance()
	return true
}

func (p *Parser) curPos() ast.Pos {
	return ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
}

// Parse is the grammar's start production:
//
//	Program := { Procedure } EOF
//
// exactly one of the parsed procedures must be named "main" taking no
// parameters and returning Void; Parse rewrites that one into the
// Program's dedicated MainProcedure slot. A missing main is a single
// fatal diagnostic appended after the loop, not a per-procedure one.
func Parse(tokens []lexer.Token) (*ast.Program, []Error) {
	p := New(tokens)
	prog := &ast.Program{}

	var mainProc *ast.Procedure
	for !p.curIs(lexer.EOF) {
		if !p.curIs(lexer.PROCEDURE) {
			p.addError("expected 'procedure', found %q", p.cur.Lexeme)
			p.synchronizeProcedure()
			continue
		}
		proc := p.parseProcedure()
		if proc == nil {
			continue
		}
		if proc.Name == "main" {
			if mainProc != nil {
				p.errors = append(p.errors, Error{
					Line: proc.Pos.Line, Column: proc.Pos.Column,
					Message: "duplicate 'main' procedure",
				})
				continue
			}
			if len(proc.Params) != 0 {
				p.errors = append(p.errors, Error{
					Line: proc.Pos.Line, Column: proc.Pos.Column,
					Message: "'main' must take no parameters",
				})
			}
			if proc.ReturnType != ast.Void {
				p.errors = append(p.errors, Error{
					Line: proc.Pos.Line, Column: proc.Pos.Column,
					Message: "'main' must return Void",
				})
			}
			mainProc = proc
			continue
		}
		prog.Procedures = append(prog.Procedures, proc)
	}

	if mainProc == nil {
		p.errors = append(p.errors, Error{Message: "missing required 'main' procedure"})
	} else {
		prog.Main = &ast.MainProcedure{Body: mainProc.Body, Pos: mainProc.Pos}
	}

	return prog, p.errors
}

// parseProcedure parses:
//
//	Procedure := "procedure" ident [ "(" Params ")" ] [ "->" Type ] Block
//
// both the parameter list and the return-type arrow are optional: a
// parameterless, Void-returning procedure (like main) writes neither.
func (p *Parser) parseProcedure() *ast.Procedure {
	pos := p.curPos()
	p.advance() // 'procedure'

	if !p.curIs(lexer.IDENTIFIER) {
		p.addError("expected procedure name, found %q", p.cur.Lexeme)
		p.synchronizeProcedure()
		return nil
	}
	name := p.cur.Lexeme
	p.advance()

	var params []ast.Parameter
	if p.curIs(lexer.LEFT_PAREN) {
		p.advance()
		if !p.curIs(lexer.RIGHT_PAREN) {
			params = p.parseParams()
		}
		if !p.expect(lexer.RIGHT_PAREN) {
			p.synchronizeProcedure()
			return nil
		}
	}

	retType := ast.Void
	if p.curIs(lexer.OP_ARROW) {
		p.advance()
		t, ok := p.parseType()
		if !ok {
			p.synchronizeProcedure()
			return nil
		}
		retType = t
	}

	body := p.parseBlock()
	if body == nil {
		p.synchronizeProcedure()
		return nil
	}

	return &ast.Procedure{Name: name, Params: params, ReturnType: retType, Body: body, Pos: pos}
}

// parseParams parses:
//
//	Params := Param { "," Param }
func (p *Parser) parseParams() []ast.Parameter {
	var params []ast.Parameter
	param, ok := p.parseParam()
	if ok {
		params = append(params, param)
	}
	for p.curIs(lexer.COMMA) {
		p.advance()
		param, ok := p.parseParam()
		if ok {
			params = append(params, param)
		}
	}
	return params
}

// parseParam parses:
//
//	Param := Identifier "->" Type
func (p *Parser) parseParam() (ast.Parameter, bool) {
	pos := p.curPos()
	if !p.curIs(lexer.IDENTIFIER) {
		p.addError("expected parameter name, found %q", p.cur.Lexeme)
		return ast.Parameter{}, false
	}
	name := p.cur.Lexeme
	p.advance()

	if !p.expect(lexer.OP_ARROW) {
		return ast.Parameter{}, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.Parameter{}, false
	}
	return ast.Parameter{Name: name, Type: typ, Pos: pos}, true
}

// parseType parses one of the three type keywords.
func (p *Parser) parseType() (ast.Type, bool) {
	switch p.cur.Kind {
	case lexer.NUMBER:
		p.advance()
		return ast.NumberType, true
	case lexer.BOOLEAN:
		p.advance()
		return ast.BooleanType, true
	case lexer.STRING:
		p.advance()
		return ast.StringType, true
	default:
		p.addError("expected a type (number/boolean/string), found %q", p.cur.Lexeme)
		return ast.Void, false
	}
}

// parseBlock parses:
//
//	Block := "{" { Statement } "}"
func (p *Parser) parseBlock() *ast.Block {
	pos := p.curPos()
	if !p.expect(lexer.LEFT_BRACE) {
		return nil
	}
	block := &ast.Block{Pos: pos}
	for !p.curIs(lexer.RIGHT_BRACE) && !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.expect(lexer.RIGHT_BRACE)
	return block
}
