package ast

import (
	"strings"

	"github.com/funvibe/altlisp/internal/token"
)

// Node is the base interface for all parse tree nodes.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
	String() string
}

// Expression is a Node that can appear inside a program or a list.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node of every tree the parser produces.
type Program struct {
	File        string
	Expressions []Expression
}

func (p *Program) TokenLiteral() string {
	if len(p.Expressions) > 0 {
		return p.Expressions[0].TokenLiteral()
	}
	return ""
}

func (p *Program) GetToken() token.Token {
	if len(p.Expressions) > 0 {
		return p.Expressions[0].GetToken()
	}
	return token.Token{}
}

func (p *Program) String() string {
	return joinExpressions(p.Expressions)
}

// NumberLiteral keeps the raw digits; conversion to a runtime number
// happens in the reader so that range errors become values.
type NumberLiteral struct {
	Token   token.Token
	IsFloat bool
}

func (nl *NumberLiteral) expressionNode()       {}
func (nl *NumberLiteral) TokenLiteral() string  { return nl.Token.Lexeme }
func (nl *NumberLiteral) GetToken() token.Token { return nl.Token }
func (nl *NumberLiteral) String() string        { return nl.Token.Lexeme }

type SymbolLiteral struct {
	Token token.Token
	Value string
}

func (sl *SymbolLiteral) expressionNode()       {}
func (sl *SymbolLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *SymbolLiteral) GetToken() token.Token { return sl.Token }
func (sl *SymbolLiteral) String() string        { return sl.Value }

// StringLiteral holds the unescaped text without the surrounding quotes.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }
func (sl *StringLiteral) String() string        { return sl.Token.Lexeme }

// Comment is kept in the tree so tooling can see it; the reader drops it.
type Comment struct {
	Token token.Token
	Text  string
}

func (c *Comment) expressionNode()       {}
func (c *Comment) TokenLiteral() string  { return c.Token.Lexeme }
func (c *Comment) GetToken() token.Token { return c.Token }
func (c *Comment) String() string        { return c.Text }

// SExpression is a parenthesised list: ( ... )
type SExpression struct {
	Token    token.Token // the '(' token
	Elements []Expression
}

func (se *SExpression) expressionNode()       {}
func (se *SExpression) TokenLiteral() string  { return se.Token.Lexeme }
func (se *SExpression) GetToken() token.Token { return se.Token }
func (se *SExpression) String() string {
	return "(" + joinExpressions(se.Elements) + ")"
}

// QExpression is a braced list: { ... }
type QExpression struct {
	Token    token.Token // the '{' token
	Elements []Expression
}

func (qe *QExpression) expressionNode()       {}
func (qe *QExpression) TokenLiteral() string  { return qe.Token.Lexeme }
func (qe *QExpression) GetToken() token.Token { return qe.Token }
func (qe *QExpression) String() string {
	return "{" + joinExpressions(qe.Elements) + "}"
}

func joinExpressions(exprs []Expression) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		if _, ok := e.(*Comment); ok {
			continue
		}
		parts = append(parts, e.String())
	}
	return strings.Join(parts, " ")
}
