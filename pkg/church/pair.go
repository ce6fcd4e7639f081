package church

// Pair holds two values by closing over them: applying the pair to a
// combining function applies that function to the components, in order.
type Pair func(sel func(a, b any) any) any

// MakePair builds the pair (a, b).
func MakePair(a, b any) Pair {
	return func(sel func(a, b any) any) any {
		return sel(a, b)
	}
}

// First projects the first component. A pair applied to the true selector
// is exactly its first component.
func First(p Pair) any {
	return p(True)
}

// Second projects the second component via the false selector.
func Second(p Pair) any {
	return p(False)
}
