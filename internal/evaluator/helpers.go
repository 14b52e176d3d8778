package evaluator

import "fmt"

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// NewError builds an Error value for host code such as embedded builtins.
func NewError(format string, a ...interface{}) *Error {
	return newError(format, a...)
}

func isError(v Value) bool {
	if v != nil {
		return v.Type() == ERROR_VAL
	}
	return false
}

// Argument checks shared by the builtins. Argument indices in messages are
// zero-based.

func checkCount(name string, args []Value, n int) *Error {
	if len(args) != n {
		return newError("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
			name, len(args), n)
	}
	return nil
}

func checkMinCount(name string, args []Value, n int) *Error {
	if len(args) < n {
		return newError("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
			name, len(args), n)
	}
	return nil
}

func checkType(name string, args []Value, i int, expected ValueType) *Error {
	if i >= len(args) {
		return newError("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
			name, len(args), i+1)
	}
	if args[i].Type() != expected {
		return newError("Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
			name, i, args[i].Type(), expected)
	}
	return nil
}

func checkNotEmpty(name string, args []Value, i int) *Error {
	if q, ok := args[i].(*QExpr); ok && len(q.Cells) == 0 {
		return newError("Function '%s' passed {} for argument %d.", name, i)
	}
	return nil
}

// checkSymbols requires every cell of list to be a Symbol.
func checkSymbols(name string, list *QExpr) *Error {
	for _, c := range list.Cells {
		if c.Type() != SYMBOL_VAL {
			return newError("Function '%s' cannot define non-symbol. Got %s, Expected %s.",
				name, c.Type(), SYMBOL_VAL)
		}
	}
	return nil
}
