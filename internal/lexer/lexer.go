package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/altlisp/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
	eof          bool // input exhausted; a NUL byte in the input is not the end
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.eof = true
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch {
	case l.eof:
		tok = token.Token{Type: token.EOF, Lexeme: "", Line: l.line, Column: l.column}
	case l.ch == '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case l.ch == ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case l.ch == '{':
		tok = newToken(token.LBRACE, l.ch, l.line, l.column)
	case l.ch == '}':
		tok = newToken(token.RBRACE, l.ch, l.line, l.column)
	case l.ch == ';':
		return l.readComment()
	case l.ch == '"':
		return l.readString()
	case isDigit(l.ch) || (l.ch == '-' && isDigit(l.peekChar())):
		return l.readNumber()
	case isSymbolChar(l.ch):
		line, col := l.line, l.column
		sym := l.readSymbol()
		return token.Token{Type: token.SYMBOL, Lexeme: sym, Literal: sym, Line: line, Column: col}
	default:
		tok = token.Token{Type: token.ILLEGAL, Lexeme: string(l.ch), Literal: "unexpected character " + describeChar(l.ch), Line: l.line, Column: l.column}
	}

	l.readChar()
	return tok
}

func (l *Lexer) readSymbol() string {
	position := l.position
	for isSymbolChar(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads -?[0-9]+ with an optional .[0-9]+ fraction. Range
// checking is left to the reader.
func (l *Lexer) readNumber() token.Token {
	startLine, startCol := l.line, l.column
	position := l.position
	isFloat := false

	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar() // .
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	lexeme := l.input[position:l.position]
	if isFloat {
		return token.Token{Type: token.FLOAT, Lexeme: lexeme, Literal: lexeme, Line: startLine, Column: startCol}
	}
	return token.Token{Type: token.INT, Lexeme: lexeme, Literal: lexeme, Line: startLine, Column: startCol}
}

func (l *Lexer) readComment() token.Token {
	startLine, startCol := l.line, l.column
	position := l.position
	for l.ch != '\n' && l.ch != '\r' && !l.eof {
		l.readChar()
	}
	text := l.input[position:l.position]
	return token.Token{Type: token.COMMENT, Lexeme: text, Literal: text, Line: startLine, Column: startCol}
}

// readString consumes a double-quoted literal and unescapes it once.
func (l *Lexer) readString() token.Token {
	startLine, startCol := l.line, l.column
	position := l.position
	var sb strings.Builder

	for {
		l.readChar()
		if l.eof {
			lexeme := l.input[position:l.position]
			return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: "unterminated string", Line: startLine, Column: startCol}
		}
		if l.ch == '"' {
			break
		}
		if l.ch == '\\' {
			l.readChar()
			if l.eof {
				continue
			}
			if r, ok := unescape(l.ch); ok {
				sb.WriteRune(r)
			} else {
				sb.WriteRune('\\')
				sb.WriteRune(l.ch)
			}
			continue
		}
		sb.WriteRune(l.ch)
	}

	l.readChar() // closing quote
	lexeme := l.input[position:l.position]
	return token.Token{Type: token.STRING, Lexeme: lexeme, Literal: sb.String(), Line: startLine, Column: startCol}
}

func unescape(ch rune) (rune, bool) {
	switch ch {
	case 'a':
		return '\a', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'v':
		return '\v', true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	case '0':
		return 0, true
	}
	return 0, false
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// describeChar spells control characters as Go escapes.
func describeChar(ch rune) string {
	if unicode.IsPrint(ch) {
		return string(ch)
	}
	q := strconv.QuoteRune(ch)
	return q[1 : len(q)-1]
}

func newToken(tokenType token.TokenType, ch rune, line, col int) token.Token {
	literal := string(ch)
	return token.Token{Type: tokenType, Lexeme: literal, Literal: literal, Line: line, Column: col}
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// isSymbolChar matches [a-zA-Z0-9_+\-*\/\\=<>!&].
func isSymbolChar(ch rune) bool {
	switch {
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', isDigit(ch):
		return true
	}
	return strings.ContainsRune("_+-*/\\=<>!&", ch)
}
