package evaluator

import (
	"fmt"
	"io"
	"strings"

	"github.com/funvibe/altlisp/internal/config"
)

// IOBuiltins returns print, error and load.
func IOBuiltins() map[string]*Builtin {
	return map[string]*Builtin{
		config.PrintFuncName: {Fn: builtinPrint, Name: config.PrintFuncName},
		config.ErrorFuncName: {Fn: builtinError, Name: config.ErrorFuncName},
		config.LoadFuncName:  {Fn: builtinLoad, Name: config.LoadFuncName},
	}
}

func (e *Evaluator) out() io.Writer {
	if e.Out == nil {
		return io.Discard
	}
	return e.Out
}

func builtinPrint(e *Evaluator, env *Environment, args ...Value) Value {
	var sb strings.Builder
	for _, a := range args {
		sb.WriteString(e.Format(a))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	_, _ = io.WriteString(e.out(), sb.String())
	return EmptySExpr()
}

func builtinError(e *Evaluator, env *Environment, args ...Value) Value {
	name := config.ErrorFuncName
	if err := checkCount(name, args, 1); err != nil {
		return err
	}
	if err := checkType(name, args, 0, STRING_VAL); err != nil {
		return err
	}
	return &Error{Message: args[0].(*String).Value}
}

// builtinLoad evaluates each top-level form of a file in env. Errors from
// individual forms are printed and do not stop the load; a file that
// cannot be read or parsed is returned as an Error.
func builtinLoad(e *Evaluator, env *Environment, args ...Value) Value {
	name := config.LoadFuncName
	if err := checkCount(name, args, 1); err != nil {
		return err
	}
	if err := checkType(name, args, 0, STRING_VAL); err != nil {
		return err
	}
	if e.Loader == nil {
		return newError("Could not load Library %s", "no source loader configured")
	}

	forms, err := e.Loader.LoadFile(args[0].(*String).Value)
	if err != nil {
		return newError("Could not load Library %s", err)
	}

	for _, form := range forms {
		if res := e.Eval(env, form); isError(res) {
			fmt.Fprintln(e.out(), e.Format(res))
		}
	}
	return EmptySExpr()
}
