// Package comb derives anonymous recursion from first-class functions.
//
// Nothing in this package is recursive by name: the fixed-point
// constructions thread self-reference entirely through function arguments,
// via controlled self-application. Two families are provided. SelfApply is
// the uncurried form, where the generator receives itself explicitly and is
// responsible for passing itself along on every recursive call. Y is the
// curried form, where the generator receives the finished recursive
// function and calls it like any other.
package comb

// Identity returns its argument unchanged. The I combinator.
func Identity[A any](a A) A {
	return a
}

// Const returns a function that ignores its argument and yields a.
// The K combinator.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Compose is right-to-left composition: Compose(f, g)(x) == f(g(x)).
// The B combinator.
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Rec is an almost-recursive function: it computes R from A, given itself
// as an extra first argument. A Rec makes its recursive calls as
// self(self, x), carrying the self-reference along by hand.
type Rec[A, R any] func(self Rec[A, R], a A) R

// SelfApply ties a Rec to itself, producing an ordinary function of one
// argument. This is the M combinator, M(f) = f(f), eta-expanded over the
// argument so that building the function performs no application at all:
// f first meets itself when the result is called.
func SelfApply[A, R any](f Rec[A, R]) func(A) R {
	return func(a A) R {
		return f(f, a)
	}
}

// selfFn is the self-application carrier for Y. Applying one to itself
// yields the recursive function being constructed.
type selfFn[A, R any] func(selfFn[A, R]) func(A) R

// Y is the fixed-point combinator. Given a generator that maps a function
// to one unrolling of itself, Y(gen) is the function fix satisfying
// fix = gen(fix), with no named binding for fix anywhere.
//
// Go evaluates arguments eagerly, so the classic λf.(λx.f(x x))(λx.f(x x))
// would force x(x) forever before gen ever ran. The m(m) here is kept
// behind the argument binder and only unfolds when the recursive function
// is actually called, one layer per call.
func Y[A, R any](gen func(func(A) R) func(A) R) func(A) R {
	w := func(m selfFn[A, R]) func(A) R {
		return func(a A) R {
			return gen(m(m))(a)
		}
	}
	return w(w)
}
