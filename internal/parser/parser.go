package parser

import (
	"github.com/funvibe/altlisp/internal/ast"
	"github.com/funvibe/altlisp/internal/diagnostics"
	"github.com/funvibe/altlisp/internal/pipeline"
	"github.com/funvibe/altlisp/internal/token"
)

type Parser struct {
	stream pipeline.TokenStream
	ctx    *pipeline.PipelineContext

	curToken token.Token
}

func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.stream.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) addError(code diagnostics.ErrorCode, tok token.Token, format string, args ...interface{}) {
	err := diagnostics.NewError(code, tok, format, args...)
	err.File = p.ctx.FilePath
	p.ctx.Errors = append(p.ctx.Errors, err)
}

// ParseProgram reads expressions until EOF. Stray closing delimiters are
// reported and skipped so that one mistake yields one diagnostic.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{File: p.ctx.FilePath}

	for !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.RPAREN, token.RBRACE:
			p.addError(diagnostics.ErrP003, p.curToken, "unexpected '%s' with no matching opening delimiter", p.curToken.Lexeme)
			p.nextToken()
			continue
		}
		if expr := p.parseExpression(); expr != nil {
			program.Expressions = append(program.Expressions, expr)
		}
	}

	return program
}

// parseExpression parses the expression starting at curToken and leaves
// curToken on the first token after it.
func (p *Parser) parseExpression() ast.Expression {
	tok := p.curToken

	switch tok.Type {
	case token.INT:
		p.nextToken()
		return &ast.NumberLiteral{Token: tok}
	case token.FLOAT:
		p.nextToken()
		return &ast.NumberLiteral{Token: tok, IsFloat: true}
	case token.SYMBOL:
		p.nextToken()
		return &ast.SymbolLiteral{Token: tok, Value: tok.Lexeme}
	case token.STRING:
		p.nextToken()
		value, _ := tok.Literal.(string)
		return &ast.StringLiteral{Token: tok, Value: value}
	case token.COMMENT:
		p.nextToken()
		return &ast.Comment{Token: tok, Text: tok.Lexeme}
	case token.LPAREN:
		elements := p.parseList(token.RPAREN)
		return &ast.SExpression{Token: tok, Elements: elements}
	case token.LBRACE:
		elements := p.parseList(token.RBRACE)
		return &ast.QExpression{Token: tok, Elements: elements}
	case token.ILLEGAL:
		// Already reported by the lexer.
		p.nextToken()
		return nil
	}

	p.addError(diagnostics.ErrP001, tok, "unexpected token %s", tok.Type)
	p.nextToken()
	return nil
}

func (p *Parser) parseList(closing token.TokenType) []ast.Expression {
	open := p.curToken
	p.nextToken()

	var elements []ast.Expression
	for {
		switch p.curToken.Type {
		case closing:
			p.nextToken()
			return elements
		case token.EOF:
			p.addError(diagnostics.ErrP002, open, "unterminated list, expected '%s'", closing)
			return elements
		case token.RPAREN, token.RBRACE:
			p.addError(diagnostics.ErrP001, p.curToken, "expected '%s', got '%s'", closing, p.curToken.Lexeme)
			p.nextToken()
			return elements
		}
		if expr := p.parseExpression(); expr != nil {
			elements = append(elements, expr)
		}
	}
}
