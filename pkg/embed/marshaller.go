package altlisp

import (
	"fmt"
	"math"
	"reflect"

	"github.com/funvibe/altlisp/internal/evaluator"
)

var (
	valueType = reflect.TypeOf((*evaluator.Value)(nil)).Elem()
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// Marshaller handles conversion between Go and AltLisp values.
type Marshaller struct{}

func NewMarshaller() *Marshaller {
	return &Marshaller{}
}

// ToValue converts a Go value to an AltLisp Value. nil becomes the empty
// S-expression, bools become 1 or 0, slices become Q-expressions and
// functions become builtins.
func (m *Marshaller) ToValue(val interface{}) (evaluator.Value, error) {
	if val == nil {
		return evaluator.EmptySExpr(), nil
	}
	// A typed nil pointer, such as a nil *evaluator.Number, is treated as nil.
	if rv := reflect.ValueOf(val); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return evaluator.EmptySExpr(), nil
	}

	// Check if already a Value
	if v, ok := val.(evaluator.Value); ok {
		return v, nil
	}
	if err, ok := val.(error); ok {
		return evaluator.NewError("%s", err.Error()), nil
	}

	v := reflect.ValueOf(val)
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() {
		return evaluator.EmptySExpr(), nil
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return evaluator.NewInteger(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("unsigned value %d overflows Integer", u)
		}
		return evaluator.NewInteger(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return evaluator.NewFloat(v.Float()), nil
	case reflect.Bool:
		if v.Bool() {
			return evaluator.NewInteger(1), nil
		}
		return evaluator.NewInteger(0), nil
	case reflect.String:
		return evaluator.NewString(v.String()), nil
	case reflect.Slice, reflect.Array:
		return m.sliceToList(v)
	case reflect.Func:
		return m.wrapFunc("<host>", v), nil
	}
	return nil, fmt.Errorf("unsupported Go type for conversion: %s", v.Type())
}

// FromValue converts an AltLisp Value to a Go value.
// targetType is optional; if provided, tries to convert to that type.
// Functions, objects and instances are returned as Values.
func (m *Marshaller) FromValue(val evaluator.Value, targetType reflect.Type) (interface{}, error) {
	if val == nil {
		return nil, nil
	}

	if targetType != nil && targetType == valueType {
		return val, nil
	}

	switch v := val.(type) {
	case *evaluator.Number:
		return m.numberToGo(v, targetType)
	case *evaluator.String:
		return v.Value, nil
	case *evaluator.Symbol:
		return v.Name, nil
	case *evaluator.Error:
		return error(v), nil
	case *evaluator.QExpr:
		return m.listToSlice(v.Cells, targetType)
	case *evaluator.SExpr:
		if len(v.Cells) == 0 && (targetType == nil || targetType.Kind() != reflect.Slice) {
			return nil, nil
		}
		return m.listToSlice(v.Cells, targetType)
	}
	return val, nil
}

func (m *Marshaller) numberToGo(n *evaluator.Number, targetType reflect.Type) (interface{}, error) {
	if targetType != nil {
		switch targetType.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if n.IsFloat() {
				return reflect.ValueOf(n.Float).Convert(targetType).Interface(), nil
			}
			return reflect.ValueOf(n.Int).Convert(targetType).Interface(), nil
		case reflect.Float32, reflect.Float64:
			return reflect.ValueOf(n.AsFloat()).Convert(targetType).Interface(), nil
		case reflect.Bool:
			return n.Truthy(), nil
		}
	}
	if n.IsFloat() {
		return n.Float, nil
	}
	return n.Int, nil
}

func (m *Marshaller) sliceToList(v reflect.Value) (*evaluator.QExpr, error) {
	cells := make([]evaluator.Value, v.Len())
	for i := 0; i < v.Len(); i++ {
		val, err := m.ToValue(v.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		cells[i] = val
	}
	return &evaluator.QExpr{Cells: cells}, nil
}

func (m *Marshaller) listToSlice(cells []evaluator.Value, targetType reflect.Type) (interface{}, error) {
	// If targetType is nil, default to []interface{}
	elemType := reflect.TypeOf((*interface{})(nil)).Elem()
	if targetType != nil && targetType.Kind() == reflect.Slice {
		elemType = targetType.Elem()
	}

	slice := reflect.MakeSlice(reflect.SliceOf(elemType), 0, len(cells))
	for _, c := range cells {
		val, err := m.FromValue(c, elemType)
		if err != nil {
			return nil, err
		}
		rv, err := assignable(val, elemType)
		if err != nil {
			return nil, err
		}
		slice = reflect.Append(slice, rv)
	}
	return slice.Interface(), nil
}

// assignable turns val into a reflect.Value usable where t is expected.
func assignable(val interface{}, t reflect.Type) (reflect.Value, error) {
	if val == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(val)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	// reflect converts integers to strings as runes; a number is never a
	// string argument.
	if t.Kind() == reflect.String && rv.Kind() != reflect.String {
		return reflect.Value{}, fmt.Errorf("cannot convert %s to %s", rv.Type(), t)
	}
	if rv.Type().ConvertibleTo(t) {
		return rv.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot convert %s to %s", rv.Type(), t)
}

// wrapFunc exposes a Go function as a builtin. A trailing error result
// that is non-nil becomes an Error value; more than one other result is
// returned as a Q-expression.
func (m *Marshaller) wrapFunc(name string, fn reflect.Value) *evaluator.Builtin {
	fnType := fn.Type()
	return &evaluator.Builtin{
		Name: name,
		Fn: func(e *evaluator.Evaluator, env *evaluator.Environment, args ...evaluator.Value) evaluator.Value {
			numIn := fnType.NumIn()
			isVariadic := fnType.IsVariadic()

			if isVariadic {
				if len(args) < numIn-1 {
					return evaluator.NewError("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
						name, len(args), numIn-1)
				}
			} else if len(args) != numIn {
				return evaluator.NewError("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
					name, len(args), numIn)
			}

			goArgs := make([]reflect.Value, len(args))
			for i, arg := range args {
				var target reflect.Type
				if isVariadic && i >= numIn-1 {
					target = fnType.In(numIn - 1).Elem()
				} else {
					target = fnType.In(i)
				}
				val, err := m.FromValue(arg, target)
				if err != nil {
					return evaluator.NewError("Function '%s' argument %d: %s", name, i, err)
				}
				rv, err := assignable(val, target)
				if err != nil {
					return evaluator.NewError("Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
						name, i, arg.Type(), target)
				}
				goArgs[i] = rv
			}

			results := fn.Call(goArgs)

			if n := len(results); n > 0 && fnType.Out(n-1) == errorType {
				if errVal := results[n-1]; !errVal.IsNil() {
					return evaluator.NewError("%s", errVal.Interface().(error).Error())
				}
				results = results[:n-1]
			}

			switch len(results) {
			case 0:
				return evaluator.EmptySExpr()
			case 1:
				v, err := m.ToValue(results[0].Interface())
				if err != nil {
					return evaluator.NewError("Function '%s' result: %s", name, err)
				}
				return v
			}
			cells := make([]evaluator.Value, len(results))
			for i, res := range results {
				v, err := m.ToValue(res.Interface())
				if err != nil {
					return evaluator.NewError("Function '%s' result %d: %s", name, i, err)
				}
				cells[i] = v
			}
			return &evaluator.QExpr{Cells: cells}
		},
	}
}
