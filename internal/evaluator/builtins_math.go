package evaluator

import "github.com/funvibe/altlisp/internal/config"

// MathBuiltins returns arithmetic, conditional and comparison builtins.
func MathBuiltins() map[string]*Builtin {
	return map[string]*Builtin{
		config.AddFuncName: {Fn: arithBuiltin(config.AddFuncName), Name: config.AddFuncName},
		config.SubFuncName: {Fn: arithBuiltin(config.SubFuncName), Name: config.SubFuncName},
		config.MulFuncName: {Fn: arithBuiltin(config.MulFuncName), Name: config.MulFuncName},
		config.DivFuncName: {Fn: arithBuiltin(config.DivFuncName), Name: config.DivFuncName},
		config.IfFuncName:  {Fn: builtinIf, Name: config.IfFuncName},
		config.EqFuncName:  {Fn: equalityBuiltin(config.EqFuncName), Name: config.EqFuncName},
		config.NeFuncName:  {Fn: equalityBuiltin(config.NeFuncName), Name: config.NeFuncName},
		config.GtFuncName:  {Fn: orderBuiltin(config.GtFuncName), Name: config.GtFuncName},
		config.LtFuncName:  {Fn: orderBuiltin(config.LtFuncName), Name: config.LtFuncName},
		config.GeFuncName:  {Fn: orderBuiltin(config.GeFuncName), Name: config.GeFuncName},
		config.LeFuncName:  {Fn: orderBuiltin(config.LeFuncName), Name: config.LeFuncName},
	}
}

// arithBuiltin folds the operator left to right over its arguments. A
// single argument to - is negated.
func arithBuiltin(op string) BuiltinFunction {
	return func(e *Evaluator, env *Environment, args ...Value) Value {
		if err := checkMinCount(op, args, 1); err != nil {
			return err
		}
		for i := range args {
			if err := checkType(op, args, i, NUMBER_VAL); err != nil {
				return err
			}
		}

		x := args[0].(*Number)
		if op == config.SubFuncName && len(args) == 1 {
			return x.Negate()
		}

		for _, a := range args[1:] {
			y := a.(*Number)
			if op == config.DivFuncName && y.IsZero() {
				return newError("Division By Zero.")
			}
			x = arith(op, x, y)
		}
		return x
	}
}

func builtinIf(e *Evaluator, env *Environment, args ...Value) Value {
	name := config.IfFuncName
	if err := checkCount(name, args, 3); err != nil {
		return err
	}
	if err := checkType(name, args, 0, NUMBER_VAL); err != nil {
		return err
	}
	if err := checkType(name, args, 1, QEXPR_VAL); err != nil {
		return err
	}
	if err := checkType(name, args, 2, QEXPR_VAL); err != nil {
		return err
	}

	branch := args[2].(*QExpr)
	if args[0].(*Number).Truthy() {
		branch = args[1].(*QExpr)
	}
	return e.Eval(env, branch.ToSExpr())
}

func orderBuiltin(op string) BuiltinFunction {
	return func(e *Evaluator, env *Environment, args ...Value) Value {
		if err := checkCount(op, args, 2); err != nil {
			return err
		}
		if err := checkType(op, args, 0, NUMBER_VAL); err != nil {
			return err
		}
		if err := checkType(op, args, 1, NUMBER_VAL); err != nil {
			return err
		}
		return boolToNumber(orderHolds(op, args[0].(*Number), args[1].(*Number)))
	}
}

func equalityBuiltin(op string) BuiltinFunction {
	return func(e *Evaluator, env *Environment, args ...Value) Value {
		if err := checkCount(op, args, 2); err != nil {
			return err
		}
		eq := ValuesEqual(args[0], args[1])
		if op == config.NeFuncName {
			eq = !eq
		}
		return boolToNumber(eq)
	}
}
