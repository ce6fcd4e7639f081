package church

// Predecessor computes n-1, with Predecessor(Zero) = Zero.
//
// A numeral only knows how to iterate forward, so the trick is to iterate
// a pair: the shift step maps (a, b) to (b, b+1). Starting from (0, 0),
// n shifts land on (n-1, n) for n >= 1, and zero shifts leave (0, 0);
// the first component is the answer either way.
func Predecessor(n Numeral) Numeral {
	shift := func(p any) any {
		b := Second(p.(Pair)).(Numeral)
		return MakePair(b, Successor(b))
	}
	start := MakePair(Numeral(Zero), Numeral(Zero))
	return First(n(shift, start).(Pair)).(Numeral)
}

// Subtract computes n-k as k applications of Predecessor to n, bottoming
// out at Zero rather than going negative.
func Subtract(n, k Numeral) Numeral {
	step := func(m any) any {
		return Predecessor(m.(Numeral))
	}
	return k(step, n).(Numeral)
}

// IsZero steps with a function that always yields False: only the zero
// numeral leaves the True seed untouched.
func IsZero(n Numeral) Bool {
	step := func(any) any {
		return Bool(False)
	}
	return n(step, Bool(True)).(Bool)
}

// LessOrEqual holds when n-k bottoms out at zero.
func LessOrEqual(n, k Numeral) Bool {
	return IsZero(Subtract(n, k))
}
