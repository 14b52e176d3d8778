package evaluator

import (
	"io"
	"os"
)

// SourceLoader reads a source file into its top-level forms. It is the
// collaborator behind the load builtin.
type SourceLoader interface {
	LoadFile(path string) ([]Value, error)
}

type Evaluator struct {
	Out io.Writer
	// Loader for the load builtin; nil disables file loading
	Loader SourceLoader
	// Printer used by print and by load when reporting errors
	Printer *Printer
}

func New() *Evaluator {
	return &Evaluator{
		Out:     os.Stdout,
		Printer: DefaultPrinter,
	}
}

// Eval evaluates v in env and takes ownership of v. Symbols resolve to a
// copy of their binding, S-expressions are applied, and everything else
// evaluates to itself.
func (e *Evaluator) Eval(env *Environment, v Value) Value {
	switch node := v.(type) {
	case *Symbol:
		val, ok := env.Get(node.Name)
		if !ok {
			return newError("Unbound Symbol '%s'", node.Name)
		}
		return val
	case *SExpr:
		return e.evalSExpr(env, node)
	}
	return v
}

func (e *Evaluator) evalSExpr(env *Environment, list *SExpr) Value {
	for i, cell := range list.Cells {
		list.Cells[i] = e.Eval(env, cell)
	}
	for _, cell := range list.Cells {
		if isError(cell) {
			return cell
		}
	}

	switch len(list.Cells) {
	case 0:
		return list
	case 1:
		return e.Eval(env, list.Cells[0])
	}

	f := list.Cells[0]
	args := list.Cells[1:]

	switch fn := f.(type) {
	case *Object:
		return e.callObject(fn, args)
	case *Instance:
		return e.callInstance(fn, args)
	case *Builtin, *Lambda:
		return e.Apply(env, fn, args)
	}
	return newError("S-Expression starts with incorrect type. Got %s, Expected %s.",
		f.Type(), FUNCTION_VAL)
}

// EvalForms evaluates each form on its own, the way load does, and
// returns the results in order.
func (e *Evaluator) EvalForms(env *Environment, forms []Value) []Value {
	results := make([]Value, 0, len(forms))
	for _, form := range forms {
		results = append(results, e.Eval(env, form))
	}
	return results
}

func (e *Evaluator) printer() *Printer {
	if e.Printer == nil {
		return DefaultPrinter
	}
	return e.Printer
}

// Format renders v with the evaluator's printer.
func (e *Evaluator) Format(v Value) string {
	return e.printer().Print(v)
}
