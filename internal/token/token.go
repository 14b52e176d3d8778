package token

import "fmt"

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	INT     TokenType = "INT"
	FLOAT   TokenType = "FLOAT"
	SYMBOL  TokenType = "SYMBOL"
	STRING  TokenType = "STRING"
	COMMENT TokenType = "COMMENT"

	LPAREN TokenType = "("
	RPAREN TokenType = ")"
	LBRACE TokenType = "{"
	RBRACE TokenType = "}"
)

// Token is a single lexical unit. Lexeme is the raw source text; Literal holds
// the decoded value (int64 for INT, float64 for FLOAT, unescaped text for
// STRING, the error message for ILLEGAL).
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, t.Lexeme, t.Line, t.Column)
}
