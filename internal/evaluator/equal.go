package evaluator

// ValuesEqual performs a deep equality check between two values.
func ValuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Type() != b.Type() {
		return false
	}

	switch aVal := a.(type) {
	case *Number:
		if bVal, ok := b.(*Number); ok {
			return NumbersEqual(aVal, bVal)
		}
	case *Symbol:
		if bVal, ok := b.(*Symbol); ok {
			return aVal.Name == bVal.Name
		}
	case *String:
		if bVal, ok := b.(*String); ok {
			return aVal.Value == bVal.Value
		}
	case *Error:
		if bVal, ok := b.(*Error); ok {
			return aVal.Message == bVal.Message
		}
	case *Builtin:
		// Builtins are only equal to themselves.
		return a == b
	case *Lambda:
		if bVal, ok := b.(*Lambda); ok {
			return cellsEqual(aVal.Formals.Cells, bVal.Formals.Cells) &&
				cellsEqual(aVal.Body.Cells, bVal.Body.Cells)
		}
	case *Object:
		if bVal, ok := b.(*Object); ok {
			return cellsEqual(aVal.Slots.Cells, bVal.Slots.Cells) &&
				cellsEqual(aVal.Unbound.Cells, bVal.Unbound.Cells)
		}
	case *Instance:
		if bVal, ok := b.(*Instance); ok {
			return aVal.Name == bVal.Name && cellsEqual(aVal.Slots.Cells, bVal.Slots.Cells)
		}
	case *SExpr:
		if bVal, ok := b.(*SExpr); ok {
			return cellsEqual(aVal.Cells, bVal.Cells)
		}
	case *QExpr:
		if bVal, ok := b.(*QExpr); ok {
			return cellsEqual(aVal.Cells, bVal.Cells)
		}
	}

	return false
}

func cellsEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ValuesEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
