package evaluator

import (
	"math/big"

	"github.com/nukata/goarith"
)

type NumberKind int

const (
	IntegerKind NumberKind = iota
	FloatKind
)

func (k NumberKind) String() string {
	if k == FloatKind {
		return "Float"
	}
	return "Integer"
}

// Number is the numeric tower: an int64 or a float64, never both.
type Number struct {
	Kind  NumberKind
	Int   int64
	Float float64
}

func NewInteger(i int64) *Number { return &Number{Kind: IntegerKind, Int: i} }
func NewFloat(f float64) *Number { return &Number{Kind: FloatKind, Float: f} }

func (n *Number) Type() ValueType { return NUMBER_VAL }
func (n *Number) Inspect() string { return DefaultPrinter.Print(n) }
func (n *Number) IsFloat() bool   { return n.Kind == FloatKind }
func (n *Number) IsInteger() bool { return n.Kind == IntegerKind }

func (n *Number) Copy() Value {
	c := *n
	return &c
}

// AsFloat widens the number to float64.
func (n *Number) AsFloat() float64 {
	if n.Kind == FloatKind {
		return n.Float
	}
	return float64(n.Int)
}

// IsZero reports a zero divisor in either representation.
func (n *Number) IsZero() bool {
	if n.Kind == FloatKind {
		return n.Float == 0
	}
	return n.Int == 0
}

// Truthy is the condition rule used by if: nonzero is true.
func (n *Number) Truthy() bool { return !n.IsZero() }

func (n *Number) Negate() *Number {
	if n.Kind == FloatKind {
		return NewFloat(-n.Float)
	}
	return NewInteger(-n.Int)
}

// arith combines two numbers. Two integers stay integer with native
// wrap-around; anything involving a float is computed in float64. The
// caller checks for a zero divisor first.
func arith(op string, x, y *Number) *Number {
	if x.Kind == IntegerKind && y.Kind == IntegerKind {
		switch op {
		case "+":
			return NewInteger(x.Int + y.Int)
		case "-":
			return NewInteger(x.Int - y.Int)
		case "*":
			return NewInteger(x.Int * y.Int)
		case "/":
			return NewInteger(x.Int / y.Int)
		}
		return nil
	}

	a, b := x.AsFloat(), y.AsFloat()
	switch op {
	case "+":
		return NewFloat(a + b)
	case "-":
		return NewFloat(a - b)
	case "*":
		return NewFloat(a * b)
	case "/":
		return NewFloat(a / b)
	}
	return nil
}

func toArith(n *Number) goarith.Number {
	if n.Kind == FloatKind {
		return goarith.AsNumber(n.Float)
	}
	return goarith.AsNumber(big.NewInt(n.Int))
}

// CompareNumbers returns -1, 0 or 1. Mixed operands compare by value, so
// 1 and 1.0 are equal.
func CompareNumbers(x, y *Number) int {
	if x.Kind == IntegerKind && y.Kind == IntegerKind {
		switch {
		case x.Int < y.Int:
			return -1
		case x.Int > y.Int:
			return 1
		}
		return 0
	}
	return toArith(x).Cmp(toArith(y))
}

func isNaN(n *Number) bool {
	return n.Kind == FloatKind && n.Float != n.Float
}

// NumbersEqual compares the widened values.
func NumbersEqual(x, y *Number) bool {
	if isNaN(x) || isNaN(y) {
		return false
	}
	return CompareNumbers(x, y) == 0
}

// orderHolds evaluates one of the ordering operators. NaN is unordered.
func orderHolds(op string, x, y *Number) bool {
	if isNaN(x) || isNaN(y) {
		return false
	}
	c := CompareNumbers(x, y)
	switch op {
	case ">":
		return c > 0
	case "<":
		return c < 0
	case ">=":
		return c >= 0
	case "<=":
		return c <= 0
	}
	return false
}

func boolToNumber(b bool) *Number {
	if b {
		return NewInteger(1)
	}
	return NewInteger(0)
}
