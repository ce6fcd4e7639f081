package church

import "github.com/vic/fixpoint/pkg/comb"

// Fibonacci computes the 1-indexed Fibonacci numeral:
// fib(0) = fib(1) = 1, fib(n) = fib(n-1) + fib(n-2).
//
// The recursion is anonymous, built with comb.Y over an ordinary
// generator; arithmetic and the base-case test run entirely inside the
// encoding. Both branches go through If as thunks so the recursive arm is
// never evaluated when the base case selects the other one.
func Fibonacci(n Numeral) Numeral {
	fib := comb.Y(func(self func(Numeral) Numeral) func(Numeral) Numeral {
		return func(a Numeral) Numeral {
			return If(LessOrEqual(a, One),
				func() any { return One },
				func() any {
					return Add(self(Predecessor(a)), self(Predecessor(Predecessor(a))))
				},
			).(Numeral)
		}
	})
	return fib(n)
}
