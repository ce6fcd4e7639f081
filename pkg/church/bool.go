// Package church encodes data purely as behavior: booleans, pairs, and
// natural numbers are represented as function values, never as structs or
// native tags. A boolean is a two-way selector, a pair is "apply a function
// to my components", and a numeral n is "apply a step function n times".
//
// Everything here is untyped (any) on purpose. A Church numeral is one
// value usable at every step/seed type at once; Go generics cannot express
// that, and Predecessor in particular needs the same numeral applied at
// pair-of-numeral type.
package church

// Bool is a two-argument selector: true yields the first argument, false
// the second. Both arguments are received already evaluated, so callers
// that need to guard a diverging branch must pass thunks (see If).
type Bool func(a, b any) any

// True selects its first argument.
func True(a, _ any) any {
	return a
}

// False selects its second argument.
func False(_, b any) any {
	return b
}

// Not flips a boolean by swapping which argument it hands back.
func Not(c Bool) Bool {
	return func(a, b any) any {
		return c(b, a)
	}
}

// And yields c's second operand when c is true, c itself when false.
func And(c, d Bool) Bool {
	return c(d, c).(Bool)
}

// If selects a branch with c and forces only that branch. This is the
// strict-host escape hatch: Go evaluates call arguments eagerly, so a
// recursive branch handed to a Bool directly would be evaluated before the
// selection happened.
func If(c Bool, then, otherwise func() any) any {
	return c(then, otherwise).(func() any)()
}
