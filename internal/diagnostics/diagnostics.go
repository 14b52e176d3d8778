// Package diagnostics carries positioned errors produced by the lexer, the
// parser and the driver.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/altlisp/internal/token"
)

type ErrorCode string

const (
	ErrL001 ErrorCode = "L001" // illegal character or malformed literal
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // unterminated list
	ErrP003 ErrorCode = "P003" // unbalanced closing delimiter
	ErrR001 ErrorCode = "R001" // runtime error surfaced by the driver
)

type DiagnosticError struct {
	Code    ErrorCode
	File    string
	Token   token.Token
	Message string
}

func NewError(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &DiagnosticError{Code: code, Token: tok, Message: msg}
}

func (e *DiagnosticError) Error() string {
	file := e.File
	if file == "" {
		file = "<stdin>"
	}
	if e.Token.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %s", file, e.Token.Line, e.Token.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", file, e.Code, e.Message)
}
