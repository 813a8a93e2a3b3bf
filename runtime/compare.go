package runtime

// Compare orders two values of the same orderable kind (Number or Str). ok is
// false for any other pairing.
func Compare(left, right Value) (cmp int, ok bool) {
	switch l := left.(type) {
	case Number:
		r, isNum := right.(Number)
		if !isNum {
			return 0, false
		}
		switch {
		case l < r:
			return -1, true
		case l > r:
			return 1, true
		}
		return 0, true
	case Str:
		r, isStr := right.(Str)
		if !isStr {
			return 0, false
		}
		switch {
		case l < r:
			return -1, true
		case l > r:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// Equal reports equality for Number, Str and Bool pairs of the same kind.
// ok is false when the pairing has no defined equality.
func Equal(left, right Value) (equal bool, ok bool) {
	if l, isBool := left.(Bool); isBool {
		r, bothBool := right.(Bool)
		if !bothBool {
			return false, false
		}
		return l == r, true
	}
	cmp, ok := Compare(left, right)
	return cmp == 0, ok
}

// Orderable reports whether every value is a Number, or every value is a Str.
func Orderable(values []Value) bool {
	if len(values) == 0 {
		return true
	}
	first := values[0].Kind()
	if first != KindNumber && first != KindString {
		return false
	}
	for _, v := range values[1:] {
		if v.Kind() != first {
			return false
		}
	}
	return true
}
