package evaluator

import (
	"math"
	"testing"
)

func TestEnvironmentCopiesOnSetAndGet(t *testing.T) {
	env := NewEnvironment()
	list := &QExpr{Cells: []Value{NewInteger(1), NewInteger(2)}}
	env.Set("xs", list)

	// Mutating the original after Set must not reach the binding.
	list.Cells[0] = NewInteger(99)

	got, ok := env.Get("xs")
	if !ok {
		t.Fatal("xs not bound")
	}
	if s := DefaultPrinter.Print(got); s != "{1 2}" {
		t.Fatalf("binding = %s, want {1 2}", s)
	}

	// Nor may mutating a lookup result.
	got.(*QExpr).Cells = nil
	again, _ := env.Get("xs")
	if s := DefaultPrinter.Print(again); s != "{1 2}" {
		t.Fatalf("binding after mutation = %s, want {1 2}", s)
	}
}

func TestEnvironmentShadowingAndDefine(t *testing.T) {
	root := NewEnvironment()
	root.Set("x", NewInteger(1))

	inner := NewEnclosedEnvironment(root)
	inner.Set("x", NewInteger(2))

	if v, _ := inner.Get("x"); v.(*Number).Int != 2 {
		t.Errorf("inner x = %d, want 2", v.(*Number).Int)
	}
	if v, _ := root.Get("x"); v.(*Number).Int != 1 {
		t.Errorf("root x = %d, want 1", v.(*Number).Int)
	}

	inner.Define("y", NewInteger(3))
	if _, ok := inner.GetLocal("y"); ok {
		t.Error("Define bound y in the inner frame")
	}
	if v, ok := root.GetLocal("y"); !ok || v.(*Number).Int != 3 {
		t.Errorf("root y = %v, %v; want 3", v, ok)
	}

	if inner.Root() != root {
		t.Error("Root did not return the outermost frame")
	}
}

func TestEnvironmentNamesKeepOrder(t *testing.T) {
	env := NewEnvironment()
	env.Set("b", NewInteger(1))
	env.Set("a", NewInteger(2))
	env.Set("b", NewInteger(3))

	names := env.Names()
	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Fatalf("Names() = %v, want [b a]", names)
	}
	if env.Len() != 2 {
		t.Errorf("Len() = %d, want 2", env.Len())
	}
}

func TestEnvironmentCopyIsIndependent(t *testing.T) {
	outer := NewEnvironment()
	env := NewEnclosedEnvironment(outer)
	env.Set("x", NewInteger(1))

	c := env.Copy()
	c.Set("x", NewInteger(2))
	c.Set("y", NewInteger(3))

	if v, _ := env.Get("x"); v.(*Number).Int != 1 {
		t.Errorf("original x = %d, want 1", v.(*Number).Int)
	}
	if _, ok := env.GetLocal("y"); ok {
		t.Error("copy leaked y into the original")
	}
	if c.Outer() != outer {
		t.Error("copy lost its outer link")
	}
}

func TestLambdaCopyIsDeep(t *testing.T) {
	fn := NewLambda(
		&QExpr{Cells: []Value{NewSymbol("x"), NewSymbol("y")}},
		&QExpr{Cells: []Value{NewSymbol("+"), NewSymbol("x"), NewSymbol("y")}},
	)
	fn.Env.Set("z", NewInteger(1))

	c := fn.Copy().(*Lambda)
	c.Formals.pop(0)
	c.Env.Set("z", NewInteger(2))

	if len(fn.Formals.Cells) != 2 {
		t.Errorf("original formals = %d cells, want 2", len(fn.Formals.Cells))
	}
	if v, _ := fn.Env.Get("z"); v.(*Number).Int != 1 {
		t.Errorf("original z = %d, want 1", v.(*Number).Int)
	}
}

func TestBuiltinCopySharesPointer(t *testing.T) {
	b := &Builtin{Name: "f"}
	if b.Copy() != Value(b) {
		t.Error("Builtin.Copy returned a new value")
	}
}

func TestCompareNumbers(t *testing.T) {
	tests := []struct {
		x, y *Number
		want int
	}{
		{NewInteger(1), NewInteger(2), -1},
		{NewInteger(2), NewInteger(2), 0},
		{NewInteger(3), NewFloat(2.5), 1},
		{NewFloat(1.0), NewInteger(1), 0},
		{NewFloat(-0.5), NewFloat(0.5), -1},
	}
	for _, tt := range tests {
		if got := CompareNumbers(tt.x, tt.y); got != tt.want {
			t.Errorf("CompareNumbers(%s, %s) = %d, want %d",
				DefaultPrinter.Print(tt.x), DefaultPrinter.Print(tt.y), got, tt.want)
		}
	}
}

func TestNaNIsUnordered(t *testing.T) {
	nan := NewFloat(math.NaN())
	one := NewInteger(1)
	if NumbersEqual(nan, nan) {
		t.Error("NaN == NaN")
	}
	for _, op := range []string{">", "<", ">=", "<="} {
		if orderHolds(op, nan, one) || orderHolds(op, one, nan) {
			t.Errorf("NaN ordered by %s", op)
		}
	}
}

func TestArith(t *testing.T) {
	tests := []struct {
		op   string
		x, y *Number
		want string
	}{
		{"+", NewInteger(1), NewInteger(2), "3"},
		{"-", NewInteger(1), NewInteger(2), "-1"},
		{"*", NewInteger(4), NewFloat(0.5), "2.000000"},
		{"/", NewInteger(7), NewInteger(2), "3"},
		{"/", NewInteger(7), NewFloat(2), "3.500000"},
		{"+", NewInteger(math.MaxInt64), NewInteger(1), "-9223372036854775808"},
	}
	for _, tt := range tests {
		got := DefaultPrinter.Print(arith(tt.op, tt.x, tt.y))
		if got != tt.want {
			t.Errorf("arith(%s) = %s, want %s", tt.op, got, tt.want)
		}
	}
}

func TestPrinter(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"integer", NewInteger(-7), "-7"},
		{"float", NewFloat(1.5), "1.500000"},
		{"string escapes", NewString("a\"b\n\t\\"), `"a\"b\n\t\\"`},
		{"error", &Error{Message: "boom"}, "Error: boom"},
		{"builtin", &Builtin{Name: "+"}, "<builtin>"},
		{"sexpr", &SExpr{Cells: []Value{NewSymbol("+"), NewInteger(1)}}, "(+ 1)"},
		{"empty qexpr", &QExpr{}, "{}"},
		{"instance", &Instance{Name: "i", Slots: &QExpr{}, Env: NewEnvironment()}, "Instance: i"},
		{"object", NewObject(&QExpr{Cells: []Value{&SExpr{Cells: []Value{NewSymbol("x")}}}}), "Object: {(x)}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultPrinter.Print(tt.value); got != tt.want {
				t.Errorf("Print = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrinterPrecision(t *testing.T) {
	p := &Printer{FloatPrecision: 2}
	if got := p.Print(NewFloat(3.14159)); got != "3.14" {
		t.Errorf("Print = %q, want 3.14", got)
	}
	p = &Printer{FloatPrecision: 0}
	if got := p.Print(NewFloat(2.5)); got != "2" {
		t.Errorf("Print = %q, want 2", got)
	}
}

func TestBuiltinNamesAllRegistered(t *testing.T) {
	env := MakeRootEnvironment()
	for _, name := range env.Names() {
		v, _ := env.GetLocal(name)
		if v.Type() != FUNCTION_VAL {
			t.Errorf("%s is %s, want Function", name, v.Type())
		}
	}
	if env.Len() != len(builtinTable()) {
		t.Errorf("root has %d bindings, table has %d", env.Len(), len(builtinTable()))
	}
}

func pointObject() *Object {
	return NewObject(&QExpr{Cells: []Value{
		&SExpr{Cells: []Value{NewSymbol("x")}},
		&SExpr{Cells: []Value{NewSymbol("y")}},
	}})
}

func TestObjectCallBindsSlots(t *testing.T) {
	e := New()
	res := e.callObject(pointObject(), []Value{NewInteger(1), NewInteger(2)})
	obj, ok := res.(*Object)
	if !ok {
		t.Fatalf("call returned %s, want an Object", DefaultPrinter.Print(res))
	}

	for name, want := range map[string]int64{"x": 1, "y": 2} {
		v, ok := obj.Env.GetLocal(name)
		if !ok {
			t.Fatalf("%s not bound", name)
		}
		if v.(*Number).Int != want {
			t.Errorf("%s = %d, want %d", name, v.(*Number).Int, want)
		}
	}
	if len(obj.Unbound.Cells) != 0 {
		t.Errorf("unbound slots = %s, want none", DefaultPrinter.Print(obj.Unbound))
	}
	if len(obj.Slots.Cells) != 2 {
		t.Errorf("declared slots changed to %s", DefaultPrinter.Print(obj.Slots))
	}
}

func TestObjectCallIsIncremental(t *testing.T) {
	e := New()
	partial := e.callObject(pointObject(), []Value{NewInteger(1)}).(*Object)
	if len(partial.Unbound.Cells) != 1 {
		t.Fatalf("unbound after one arg = %s", DefaultPrinter.Print(partial.Unbound))
	}

	res := e.callObject(partial, []Value{NewInteger(2), NewInteger(3)})
	want := "Error: Too many arguments passed to object. Got 2, Expected 1."
	if got := DefaultPrinter.Print(res); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestObjectCopyIsDeep(t *testing.T) {
	e := New()
	obj := e.callObject(pointObject(), []Value{NewInteger(1)}).(*Object)

	c := obj.Copy().(*Object)
	c.Env.Set("x", NewInteger(99))
	c.Slots.pop(0)
	c.Unbound.Cells = nil
	c.Slots.Cells[0].(*SExpr).Cells[0] = NewSymbol("z")

	if v, _ := obj.Env.GetLocal("x"); v.(*Number).Int != 1 {
		t.Errorf("original x = %d, want 1", v.(*Number).Int)
	}
	if got := DefaultPrinter.Print(obj.Slots); got != "{(x) (y)}" {
		t.Errorf("original slots = %s, want {(x) (y)}", got)
	}
	if got := DefaultPrinter.Print(obj.Unbound); got != "{(y)}" {
		t.Errorf("original unbound = %s, want {(y)}", got)
	}
}
