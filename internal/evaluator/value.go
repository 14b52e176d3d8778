package evaluator

type ValueType string

// The type names double as the names shown in error messages.
const (
	NUMBER_VAL   ValueType = "Number"
	SYMBOL_VAL   ValueType = "Symbol"
	STRING_VAL   ValueType = "String"
	ERROR_VAL    ValueType = "Error"
	FUNCTION_VAL ValueType = "Function"
	OBJECT_VAL   ValueType = "Object"
	INSTANCE_VAL ValueType = "Instance"
	SEXPR_VAL    ValueType = "S-Expression"
	QEXPR_VAL    ValueType = "Q-Expression"
)

// Value is every runtime datum. A Value owns everything it points to
// except an Environment's outer link; Copy returns a fully independent
// value, and the evaluator never lets two live values share contents.
type Value interface {
	Type() ValueType
	Inspect() string
	Copy() Value
}

// Symbol is an unevaluated identifier.
type Symbol struct {
	Name string
}

func NewSymbol(name string) *Symbol { return &Symbol{Name: name} }

func (s *Symbol) Type() ValueType { return SYMBOL_VAL }
func (s *Symbol) Inspect() string { return s.Name }
func (s *Symbol) Copy() Value     { return &Symbol{Name: s.Name} }

type String struct {
	Value string
}

func NewString(s string) *String { return &String{Value: s} }

func (s *String) Type() ValueType { return STRING_VAL }
func (s *String) Inspect() string { return DefaultPrinter.Print(s) }
func (s *String) Copy() Value     { return &String{Value: s.Value} }

// Error is a first-class value, not a control-flow signal.
type Error struct {
	Message string
}

func (e *Error) Type() ValueType { return ERROR_VAL }
func (e *Error) Inspect() string { return "Error: " + e.Message }
func (e *Error) Copy() Value     { return &Error{Message: e.Message} }

// Error lets an *Error travel as a Go error across host boundaries.
func (e *Error) Error() string { return e.Message }

// BuiltinFunction receives ownership of args.
type BuiltinFunction func(e *Evaluator, env *Environment, args ...Value) Value

// Builtin is a native operation. Builtins are immutable, so copies share
// the pointer and equality is pointer identity.
type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() ValueType { return FUNCTION_VAL }
func (b *Builtin) Inspect() string { return "<builtin>" }
func (b *Builtin) Copy() Value     { return b }

// Lambda is a user closure. Formals holds Symbols, possibly with a
// trailing "& rest" pair; Env holds the arguments bound so far.
type Lambda struct {
	Formals *QExpr
	Body    *QExpr
	Env     *Environment
}

func NewLambda(formals, body *QExpr) *Lambda {
	return &Lambda{Formals: formals, Body: body, Env: NewEnvironment()}
}

func (l *Lambda) Type() ValueType { return FUNCTION_VAL }
func (l *Lambda) Inspect() string { return DefaultPrinter.Print(l) }
func (l *Lambda) Copy() Value {
	return &Lambda{
		Formals: l.Formals.copyList(),
		Body:    l.Body.copyList(),
		Env:     l.Env.Copy(),
	}
}

// Object is a reusable template. Slots is the declared slot list and never
// changes; Unbound is what positional calls have not consumed yet.
type Object struct {
	Slots   *QExpr
	Unbound *QExpr
	Env     *Environment
}

func NewObject(slots *QExpr) *Object {
	return &Object{Slots: slots, Unbound: slots.copyList(), Env: NewEnvironment()}
}

func (o *Object) Type() ValueType { return OBJECT_VAL }
func (o *Object) Inspect() string { return DefaultPrinter.Print(o) }
func (o *Object) Copy() Value {
	return &Object{
		Slots:   o.Slots.copyList(),
		Unbound: o.Unbound.copyList(),
		Env:     o.Env.Copy(),
	}
}

// Instance is created by the instance builtin from an Object.
type Instance struct {
	Name  string
	Slots *QExpr
	Env   *Environment
}

func (i *Instance) Type() ValueType { return INSTANCE_VAL }
func (i *Instance) Inspect() string { return DefaultPrinter.Print(i) }
func (i *Instance) Copy() Value {
	return &Instance{Name: i.Name, Slots: i.Slots.copyList(), Env: i.Env.Copy()}
}

// SExpr is the evaluable list form.
type SExpr struct {
	Cells []Value
}

func (s *SExpr) Type() ValueType { return SEXPR_VAL }
func (s *SExpr) Inspect() string { return DefaultPrinter.Print(s) }
func (s *SExpr) Copy() Value     { return &SExpr{Cells: copyCells(s.Cells)} }

// QExpr is the literal list form; it is never evaluated implicitly.
type QExpr struct {
	Cells []Value
}

func (q *QExpr) Type() ValueType { return QEXPR_VAL }
func (q *QExpr) Inspect() string { return DefaultPrinter.Print(q) }
func (q *QExpr) Copy() Value     { return q.copyList() }

func (q *QExpr) copyList() *QExpr {
	return &QExpr{Cells: copyCells(q.Cells)}
}

// pop removes and returns the i-th cell.
func (q *QExpr) pop(i int) Value {
	v := q.Cells[i]
	q.Cells = append(q.Cells[:i:i], q.Cells[i+1:]...)
	return v
}

func copyCells(cells []Value) []Value {
	if cells == nil {
		return nil
	}
	out := make([]Value, len(cells))
	for i, c := range cells {
		out[i] = c.Copy()
	}
	return out
}

// EmptySExpr is the unit value returned by side-effecting builtins.
func EmptySExpr() *SExpr { return &SExpr{} }

// ToQExpr reinterprets an S-expression's cells as a Q-expression.
func (s *SExpr) ToQExpr() *QExpr { return &QExpr{Cells: s.Cells} }

// ToSExpr reinterprets a Q-expression's cells as an S-expression.
func (q *QExpr) ToSExpr() *SExpr { return &SExpr{Cells: q.Cells} }
