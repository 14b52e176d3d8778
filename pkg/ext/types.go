// Package ext exposes the runtime value types to Go code that implements
// native builtins outside this module.
package ext

import (
	"fmt"

	"github.com/funvibe/altlisp/internal/evaluator"
)

// Value types aliases
type Value = evaluator.Value
type Number = evaluator.Number
type Symbol = evaluator.Symbol
type String = evaluator.String
type Error = evaluator.Error
type Builtin = evaluator.Builtin
type BuiltinFunction = evaluator.BuiltinFunction
type Lambda = evaluator.Lambda
type Object = evaluator.Object
type Instance = evaluator.Instance
type SExpr = evaluator.SExpr
type QExpr = evaluator.QExpr
type Environment = evaluator.Environment
type Evaluator = evaluator.Evaluator

// Helpers for creating values

func NewError(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func NewInteger(i int64) *Number { return evaluator.NewInteger(i) }
func NewFloat(f float64) *Number { return evaluator.NewFloat(f) }
func NewString(s string) *String { return evaluator.NewString(s) }
func NewSymbol(s string) *Symbol { return evaluator.NewSymbol(s) }

// List builds a Q-expression from values.
func List(values ...Value) *QExpr {
	return &QExpr{Cells: values}
}

// Unit is the empty S-expression returned by side-effecting builtins.
func Unit() *SExpr {
	return evaluator.EmptySExpr()
}

// ToValue converts common Go scalars. Anything else is reported as an
// Error value.
func ToValue(val interface{}) Value {
	if val == nil {
		return Unit()
	}

	switch v := val.(type) {
	case Value:
		return v
	case int:
		return NewInteger(int64(v))
	case int64:
		return NewInteger(v)
	case float64:
		return NewFloat(v)
	case bool:
		if v {
			return NewInteger(1)
		}
		return NewInteger(0)
	case string:
		return NewString(v)
	case []Value:
		return List(v...)
	case error:
		return NewError("%s", v.Error())
	}

	return NewError("unsupported Go value of type %T", val)
}

// Format renders v the way the REPL prints it.
func Format(v Value) string {
	return evaluator.DefaultPrinter.Print(v)
}
