package lambda

// DecodeNumeral reads a native integer out of a normal form shaped like a
// Church numeral, (f: (x: f (f ... (f x)))). The second result is false
// when the term has any other shape.
func DecodeNumeral(t Term) (int, bool) {
	outer, ok := t.(Abs)
	if !ok {
		return 0, false
	}
	inner, ok := outer.Body.(Abs)
	if !ok {
		return 0, false
	}

	// Walk the application spine, counting applications of the step
	// variable until the seed variable is reached.
	n := 0
	body := inner.Body
	for {
		switch v := body.(type) {
		case Var:
			if v.Name != inner.Arg {
				return 0, false
			}
			return n, true
		case App:
			fn, ok := v.Fun.(Var)
			if !ok || fn.Name != outer.Arg || outer.Arg == inner.Arg {
				return 0, false
			}
			n++
			body = v.Arg
		default:
			return 0, false
		}
	}
}

// DecodeBool reads a native bool out of a normal form shaped like a
// selector, (a: (b: a)) or (a: (b: b)).
func DecodeBool(t Term) (bool, bool) {
	outer, ok := t.(Abs)
	if !ok {
		return false, false
	}
	inner, ok := outer.Body.(Abs)
	if !ok {
		return false, false
	}
	v, ok := inner.Body.(Var)
	if !ok {
		return false, false
	}
	// The inner binder shadows the outer one when the names collide.
	switch v.Name {
	case inner.Arg:
		return false, true
	case outer.Arg:
		return true, true
	}
	return false, false
}
