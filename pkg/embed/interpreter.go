// Package altlisp embeds the interpreter in Go programs.
package altlisp

import (
	"fmt"
	"io"
	"reflect"

	"github.com/funvibe/altlisp/internal/evaluator"
	"github.com/funvibe/altlisp/internal/reader"
	"github.com/funvibe/altlisp/pkg/ext"
)

// Interpreter wraps a root environment and an evaluator and provides a
// high-level embedding API.
type Interpreter struct {
	eval       *evaluator.Evaluator
	env        *evaluator.Environment
	loader     *reader.Loader
	marshaller *Marshaller
}

// New creates an interpreter with the builtins installed.
func New() *Interpreter {
	loader := reader.NewLoader()
	eval := evaluator.New()
	eval.Loader = loader
	return &Interpreter{
		eval:       eval,
		env:        evaluator.MakeRootEnvironment(),
		loader:     loader,
		marshaller: NewMarshaller(),
	}
}

// SetOutput redirects print and load diagnostics.
func (in *Interpreter) SetOutput(w io.Writer) {
	in.eval.Out = w
}

// SetFloatPrecision sets the digits printed after the decimal point.
func (in *Interpreter) SetFloatPrecision(p int) {
	in.eval.Printer = &evaluator.Printer{FloatPrecision: p}
}

// Bind registers a Go function under name in the root environment.
func (in *Interpreter) Bind(name string, fn interface{}) error {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return fmt.Errorf("bind %s: expected a function, got %T", name, fn)
	}
	in.env.Define(name, in.marshaller.wrapFunc(name, v))
	return nil
}

// Define registers a native builtin written against the ext types. Unlike
// Bind it receives the raw argument values and the caller's environment.
func (in *Interpreter) Define(name string, fn ext.BuiltinFunction) {
	in.env.Define(name, &ext.Builtin{Name: name, Fn: fn})
}

// Set defines a global variable from a Go value.
// Use this for data. For functions, prefer Bind.
func (in *Interpreter) Set(name string, val interface{}) error {
	obj, err := in.marshaller.ToValue(val)
	if err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}
	in.env.Define(name, obj)
	return nil
}

// Get retrieves a global variable as a Go value.
func (in *Interpreter) Get(name string) (interface{}, error) {
	obj, ok := in.env.Get(name)
	if !ok {
		return nil, fmt.Errorf("variable '%s' not found", name)
	}
	return in.marshaller.FromValue(obj, nil)
}

// Call applies the function bound to funcName to args.
func (in *Interpreter) Call(funcName string, args ...interface{}) (interface{}, error) {
	fn, ok := in.env.Get(funcName)
	if !ok {
		return nil, fmt.Errorf("function '%s' not found", funcName)
	}
	if fn.Type() != evaluator.FUNCTION_VAL {
		return nil, fmt.Errorf("'%s' is %s, not a function", funcName, fn.Type())
	}

	values := make([]evaluator.Value, len(args))
	for i, arg := range args {
		v, err := in.marshaller.ToValue(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		values[i] = v
	}

	return in.result(in.eval.Apply(in.env, fn, values))
}

// Eval evaluates every top-level form of code in order and returns the
// last result. The first Error result stops evaluation and is returned
// as the error.
func (in *Interpreter) Eval(code string) (interface{}, error) {
	v, err := in.EvalValue(code)
	if err != nil {
		return nil, err
	}
	return in.result(v)
}

// EvalValue is Eval without conversion to Go.
func (in *Interpreter) EvalValue(code string) (evaluator.Value, error) {
	program, err := reader.ReadString(code, "<eval>")
	if err != nil {
		return nil, err
	}
	return in.run(program.Cells)
}

// LoadFile evaluates a source file form by form, stopping at the first
// Error.
func (in *Interpreter) LoadFile(path string) error {
	forms, err := in.loader.LoadFile(path)
	if err != nil {
		return err
	}
	if _, err := in.run(forms); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Format renders v as the REPL would print it.
func (in *Interpreter) Format(v evaluator.Value) string {
	return in.eval.Format(v)
}

func (in *Interpreter) run(forms []evaluator.Value) (evaluator.Value, error) {
	var last evaluator.Value = evaluator.EmptySExpr()
	for _, form := range forms {
		last = in.eval.Eval(in.env, form)
		if e, ok := last.(*evaluator.Error); ok {
			return last, e
		}
	}
	return last, nil
}

func (in *Interpreter) result(v evaluator.Value) (interface{}, error) {
	if e, ok := v.(*evaluator.Error); ok {
		return nil, e
	}
	return in.marshaller.FromValue(v, nil)
}
