package evaluator

import "github.com/funvibe/altlisp/internal/config"

// ListBuiltins returns the Q-expression primitives.
func ListBuiltins() map[string]*Builtin {
	return map[string]*Builtin{
		config.ListFuncName: {Fn: builtinList, Name: config.ListFuncName},
		config.HeadFuncName: {Fn: builtinHead, Name: config.HeadFuncName},
		config.TailFuncName: {Fn: builtinTail, Name: config.TailFuncName},
		config.EvalFuncName: {Fn: builtinEval, Name: config.EvalFuncName},
		config.JoinFuncName: {Fn: builtinJoin, Name: config.JoinFuncName},
	}
}

func builtinList(e *Evaluator, env *Environment, args ...Value) Value {
	return &QExpr{Cells: args}
}

func builtinHead(e *Evaluator, env *Environment, args ...Value) Value {
	name := config.HeadFuncName
	if err := checkCount(name, args, 1); err != nil {
		return err
	}
	if err := checkType(name, args, 0, QEXPR_VAL); err != nil {
		return err
	}
	if err := checkNotEmpty(name, args, 0); err != nil {
		return err
	}
	q := args[0].(*QExpr)
	return &QExpr{Cells: q.Cells[:1:1]}
}

func builtinTail(e *Evaluator, env *Environment, args ...Value) Value {
	name := config.TailFuncName
	if err := checkCount(name, args, 1); err != nil {
		return err
	}
	if err := checkType(name, args, 0, QEXPR_VAL); err != nil {
		return err
	}
	if err := checkNotEmpty(name, args, 0); err != nil {
		return err
	}
	q := args[0].(*QExpr)
	q.pop(0)
	return q
}

func builtinEval(e *Evaluator, env *Environment, args ...Value) Value {
	name := config.EvalFuncName
	if err := checkCount(name, args, 1); err != nil {
		return err
	}
	if err := checkType(name, args, 0, QEXPR_VAL); err != nil {
		return err
	}
	return e.Eval(env, args[0].(*QExpr).ToSExpr())
}

func builtinJoin(e *Evaluator, env *Environment, args ...Value) Value {
	name := config.JoinFuncName
	if err := checkMinCount(name, args, 1); err != nil {
		return err
	}
	for i := range args {
		if err := checkType(name, args, i, QEXPR_VAL); err != nil {
			return err
		}
	}

	var cells []Value
	for _, a := range args {
		cells = append(cells, a.(*QExpr).Cells...)
	}
	return &QExpr{Cells: cells}
}
