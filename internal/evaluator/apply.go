package evaluator

const variadicMarker = "&"

// Apply calls a builtin or closure with args, which it consumes. env is
// the caller's environment; a fully applied closure evaluates its body
// with env as the parent of its captured environment.
func (e *Evaluator) Apply(env *Environment, f Value, args []Value) Value {
	switch fn := f.(type) {
	case *Builtin:
		return fn.Fn(e, env, args...)
	case *Lambda:
		return e.applyLambda(env, fn, args)
	}
	return newError("S-Expression starts with incorrect type. Got %s, Expected %s.",
		f.Type(), FUNCTION_VAL)
}

func (e *Evaluator) applyLambda(env *Environment, fn *Lambda, args []Value) Value {
	given := len(args)
	total := len(fn.Formals.Cells)

	for len(args) > 0 {
		if len(fn.Formals.Cells) == 0 {
			return newError("Function passed too many arguments. Got %d, Expected %d.", given, total)
		}

		formal := fn.Formals.pop(0)
		name, ok := formalName(formal)
		if !ok {
			return newError("Cannot define non-symbol. Got %s, Expected %s.", formal.Type(), SYMBOL_VAL)
		}

		if name == variadicMarker {
			if len(fn.Formals.Cells) != 1 {
				return functionFormatError()
			}
			rest, ok := formalName(fn.Formals.pop(0))
			if !ok {
				return functionFormatError()
			}
			fn.Env.Set(rest, &QExpr{Cells: args})
			args = nil
			break
		}

		fn.Env.Set(name, args[0])
		args = args[1:]
	}

	// A trailing "& rest" with nothing left to collect binds an empty list.
	if len(fn.Formals.Cells) > 0 {
		if name, _ := formalName(fn.Formals.Cells[0]); name == variadicMarker {
			if len(fn.Formals.Cells) != 2 {
				return functionFormatError()
			}
			fn.Formals.pop(0)
			rest, ok := formalName(fn.Formals.pop(0))
			if !ok {
				return functionFormatError()
			}
			fn.Env.Set(rest, &QExpr{})
		}
	}

	if len(fn.Formals.Cells) == 0 {
		fn.Env.SetOuter(env)
		body := fn.Body.copyList()
		return e.Eval(fn.Env, body.ToSExpr())
	}
	return fn.Copy()
}

func formalName(v Value) (string, bool) {
	if sym, ok := v.(*Symbol); ok {
		return sym.Name, true
	}
	return "", false
}

func functionFormatError() *Error {
	return newError("Function format invalid. Symbol '%s' not followed by single symbol.", variadicMarker)
}

// callObject binds args positionally to the object's unconsumed slots. The
// result is always a copy of the object; slots are never evaluated here.
func (e *Evaluator) callObject(obj *Object, args []Value) Value {
	given := len(args)
	total := len(obj.Unbound.Cells)

	for _, arg := range args {
		if len(obj.Unbound.Cells) == 0 {
			return newError("Too many arguments passed to object. Got %d, Expected %d.", given, total)
		}
		slot := obj.Unbound.pop(0)
		name, ok := slotTarget(slot)
		if !ok {
			return newError("Object slot %s has no symbol to bind.", e.Format(slot))
		}
		obj.Env.Set(name, arg)
	}
	return obj.Copy()
}

// slotTarget is the binding name of a slot: the slot itself when it is a
// Symbol, otherwise the first Symbol among its cells.
func slotTarget(slot Value) (string, bool) {
	var cells []Value
	switch s := slot.(type) {
	case *Symbol:
		return s.Name, true
	case *SExpr:
		cells = s.Cells
	case *QExpr:
		cells = s.Cells
	}
	for _, c := range cells {
		if sym, ok := c.(*Symbol); ok {
			return sym.Name, true
		}
	}
	return "", false
}

// callInstance handles (inst -> {member} args...). The member is looked up
// in the instance's own frame only. Numbers are returned as they are and
// functions are applied to the remaining args with the instance frame as
// caller environment.
func (e *Evaluator) callInstance(inst *Instance, args []Value) Value {
	if len(args) < 2 {
		return newError("Instance '%s' passed incorrect number of arguments. Got %d, Expected at least %d.",
			inst.Name, len(args), 2)
	}

	target, ok := args[1].(*QExpr)
	if !ok {
		return newError("Instance '%s' passed incorrect type for argument 1. Got %s, Expected %s.",
			inst.Name, args[1].Type(), QEXPR_VAL)
	}
	if len(target.Cells) == 0 {
		return newError("Instance '%s' passed {} for argument 1.", inst.Name)
	}
	member, ok := target.Cells[0].(*Symbol)
	if !ok {
		return newError("Instance '%s' passed incorrect type for member. Got %s, Expected %s.",
			inst.Name, target.Cells[0].Type(), SYMBOL_VAL)
	}

	val, ok := inst.Env.GetLocal(member.Name)
	if !ok {
		return newError("Unbound Symbol '%s'", member.Name)
	}

	switch m := val.(type) {
	case *Number:
		return m
	case *Builtin, *Lambda:
		return e.Apply(inst.Env, m, args[2:])
	}
	return newError("Instance member '%s' has incorrect type. Got %s, Expected %s or %s.",
		member.Name, val.Type(), NUMBER_VAL, FUNCTION_VAL)
}
