package church

import "errors"

// Numeral represents the natural number n as the action of applying step
// to seed n times. The numeral itself is the iteration; there is no count
// stored anywhere.
type Numeral func(step func(any) any, seed any) any

// Zero applies step no times: the seed passes through untouched.
func Zero(_ func(any) any, seed any) any {
	return seed
}

// Successor applies step once more than n does.
func Successor(n Numeral) Numeral {
	return func(step func(any) any, seed any) any {
		return step(n(step, seed))
	}
}

// Add runs n's applications of step on top of k's.
// Equivalently, Add(n, k) is n applications of Successor to k.
func Add(n, k Numeral) Numeral {
	return func(step func(any) any, seed any) any {
		return n(step, k(step, seed))
	}
}

// The small literals, each one Successor deeper than the last.
var (
	One   = Successor(Zero)
	Two   = Successor(One)
	Three = Successor(Two)
	Four  = Successor(Three)
	Five  = Successor(Four)
)

// ErrNegative is returned by ToNumeral for negative input: naturals have
// no negative representation.
var ErrNegative = errors.New("church: no numeral for negative integer")

// ToNumeral builds the numeral for a native integer by composing Successor
// n times over Zero. This, with FromNumeral, is the only boundary between
// the encoding and host arithmetic.
func ToNumeral(n int) (Numeral, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	m := Numeral(Zero)
	for i := 0; i < n; i++ {
		m = Successor(m)
	}
	return m, nil
}

// FromNumeral projects a numeral back to a native integer by stepping with
// native increment from 0.
func FromNumeral(n Numeral) int {
	return n(func(x any) any { return x.(int) + 1 }, 0).(int)
}
