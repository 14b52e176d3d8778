package lexer

import "github.com/funvibe/altlisp/internal/token"

// TokenStream buffers the lexer output so the parser can peek.
type TokenStream struct {
	tokens []token.Token
	pos    int
}

func NewTokenStream(l *Lexer) *TokenStream {
	ts := &TokenStream{}
	for {
		tok := l.NextToken()
		ts.tokens = append(ts.tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return ts
}

// Next returns the next token; once exhausted it keeps returning EOF.
func (ts *TokenStream) Next() token.Token {
	if ts.pos >= len(ts.tokens) {
		return ts.tokens[len(ts.tokens)-1]
	}
	tok := ts.tokens[ts.pos]
	ts.pos++
	return tok
}
