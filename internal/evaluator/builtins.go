package evaluator

import (
	"fmt"

	"github.com/funvibe/altlisp/internal/config"
)

func init() {
	table := builtinTable()
	for _, name := range config.BuiltinNames {
		if _, ok := table[name]; !ok {
			panic(fmt.Sprintf("builtin %q has no implementation", name))
		}
	}
}

func builtinTable() map[string]*Builtin {
	table := make(map[string]*Builtin)
	for _, group := range []map[string]*Builtin{
		VariableBuiltins(),
		ListBuiltins(),
		MathBuiltins(),
		IOBuiltins(),
	} {
		for name, b := range group {
			table[name] = b
		}
	}
	return table
}

// RegisterBuiltins installs every builtin into env in a fixed order.
func RegisterBuiltins(env *Environment) {
	table := builtinTable()
	for _, name := range config.BuiltinNames {
		env.Set(name, table[name])
	}
}

// MakeRootEnvironment returns a fresh root frame holding the builtins.
func MakeRootEnvironment() *Environment {
	env := NewEnvironment()
	RegisterBuiltins(env)
	return env
}

// VariableBuiltins covers functions, objects and bindings.
func VariableBuiltins() map[string]*Builtin {
	return map[string]*Builtin{
		config.LambdaFuncName:   {Fn: builtinLambda, Name: config.LambdaFuncName},
		config.ObjectFuncName:   {Fn: builtinObject, Name: config.ObjectFuncName},
		config.InstanceFuncName: {Fn: builtinInstance, Name: config.InstanceFuncName},
		config.MemberFuncName:   {Fn: builtinMember, Name: config.MemberFuncName},
		config.DefFuncName:      {Fn: builtinDef, Name: config.DefFuncName},
		config.PutFuncName:      {Fn: builtinPut, Name: config.PutFuncName},
	}
}

func builtinLambda(e *Evaluator, env *Environment, args ...Value) Value {
	name := config.LambdaFuncName
	if err := checkCount(name, args, 2); err != nil {
		return err
	}
	if err := checkType(name, args, 0, QEXPR_VAL); err != nil {
		return err
	}
	if err := checkType(name, args, 1, QEXPR_VAL); err != nil {
		return err
	}
	formals := args[0].(*QExpr)
	for _, c := range formals.Cells {
		if c.Type() != SYMBOL_VAL {
			return newError("Cannot define non-symbol. Got %s, Expected %s.", c.Type(), SYMBOL_VAL)
		}
	}
	return NewLambda(formals, args[1].(*QExpr))
}

func builtinObject(e *Evaluator, env *Environment, args ...Value) Value {
	name := config.ObjectFuncName
	if err := checkCount(name, args, 1); err != nil {
		return err
	}
	if err := checkType(name, args, 0, QEXPR_VAL); err != nil {
		return err
	}
	slots := args[0].(*QExpr)
	for i, c := range slots.Cells {
		if c.Type() != SEXPR_VAL {
			return newError("Function '%s' passed incorrect type for slot %d. Got %s, Expected %s.",
				name, i, c.Type(), SEXPR_VAL)
		}
	}
	return NewObject(slots)
}

// builtinInstance creates one instance per requested name. Each instance
// starts from a copy of the caller's environment, runs every declared slot
// in it once for effect, and is then defined globally.
func builtinInstance(e *Evaluator, env *Environment, args ...Value) Value {
	name := config.InstanceFuncName
	if err := checkCount(name, args, 2); err != nil {
		return err
	}
	if err := checkType(name, args, 0, OBJECT_VAL); err != nil {
		return err
	}
	if err := checkType(name, args, 1, QEXPR_VAL); err != nil {
		return err
	}
	if err := checkNotEmpty(name, args, 1); err != nil {
		return err
	}
	obj := args[0].(*Object)
	names := args[1].(*QExpr)
	if err := checkSymbols(name, names); err != nil {
		return err
	}

	for _, n := range names.Cells {
		inst := &Instance{
			Name:  n.(*Symbol).Name,
			Slots: obj.Slots.copyList(),
			Env:   env.Copy(),
		}
		for _, slot := range inst.Slots.Cells {
			e.Eval(inst.Env, slot.Copy())
		}
		env.Define(inst.Name, inst)
	}
	return EmptySExpr()
}

// builtinMember is the marker placed between an instance and its member
// list, as in (inst -> {field}). It does nothing on its own.
func builtinMember(e *Evaluator, env *Environment, args ...Value) Value {
	return newError("Function '%s' is a member marker and cannot be called directly.", config.MemberFuncName)
}

func builtinDef(e *Evaluator, env *Environment, args ...Value) Value {
	return builtinVar(env, config.DefFuncName, args)
}

func builtinPut(e *Evaluator, env *Environment, args ...Value) Value {
	return builtinVar(env, config.PutFuncName, args)
}

// builtinVar binds symbols to values: def writes to the root frame, = to
// the current one.
func builtinVar(env *Environment, name string, args []Value) Value {
	if err := checkType(name, args, 0, QEXPR_VAL); err != nil {
		return err
	}
	syms := args[0].(*QExpr)
	if err := checkSymbols(name, syms); err != nil {
		return err
	}
	if len(syms.Cells) != len(args)-1 {
		return newError("Function '%s' passed too many arguments for symbols. Got %d, Expected %d.",
			name, len(syms.Cells), len(args)-1)
	}

	for i, s := range syms.Cells {
		sym := s.(*Symbol)
		if name == config.DefFuncName {
			env.Define(sym.Name, args[i+1])
		} else {
			env.Set(sym.Name, args[i+1])
		}
	}
	return EmptySExpr()
}
