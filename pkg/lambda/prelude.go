package lambda

// The prelude: the whole encoding layer as terms, in dependency order.
// Each definition may reference the ones before it. fix is the plain Y
// combinator; under normal order the unguarded x x is harmless because it
// only unfolds when the recursion actually demands another layer.
var preludeSource = []struct {
	name string
	src  string
}{
	{"true", "a: b: a"},
	{"false", "a: b: b"},
	{"not", "c: c false true"},
	{"and", "a: b: a b a"},
	{"if", "c: t: e: c t e"},
	{"pair", "a: b: f: f a b"},
	{"fst", "p: p true"},
	{"snd", "p: p false"},
	{"zero", "f: x: x"},
	{"succ", "n: f: x: f (n f x)"},
	{"add", "n: k: f: x: n f (k f x)"},
	{"one", "succ zero"},
	{"two", "succ one"},
	{"three", "succ two"},
	{"four", "succ three"},
	{"five", "succ four"},
	{"shift", "p: pair (snd p) (succ (snd p))"},
	{"pred", "n: fst (n shift (pair zero zero))"},
	{"sub", "n: k: k pred n"},
	{"iszero", "n: n (w: false) true"},
	{"leq", "n: k: iszero (sub n k)"},
	{"fix", "f: (x: f (x x)) (x: f (x x))"},
	{"even", "fix (self: n: (iszero n) true (not (self (pred n))))"},
	{"fib", "fix (self: a: (leq a one) one (add (self (pred a)) (self (pred (pred a)))))"},
}

type preludeDef struct {
	name string
	term Term
}

var prelude = parsePrelude()

func parsePrelude() []preludeDef {
	defs := make([]preludeDef, 0, len(preludeSource))
	for _, d := range preludeSource {
		term, err := Parse(d.src)
		if err != nil {
			panic("lambda: bad prelude definition " + d.name + ": " + err.Error())
		}
		defs = append(defs, preludeDef{name: d.name, term: term})
	}
	return defs
}

// PreludeNames lists the prelude bindings in definition order.
func PreludeNames() []string {
	names := make([]string, len(prelude))
	for i, d := range prelude {
		names[i] = d.name
	}
	return names
}

// WithPrelude wraps t in let bindings for the prelude names it actually
// uses. Definitions whose names do not occur free in t (directly or via a
// later definition) are left out.
func WithPrelude(t Term) Term {
	for i := len(prelude) - 1; i >= 0; i-- {
		d := prelude[i]
		if FreeIn(d.name, t) {
			t = Let{Name: d.name, Val: d.term, Body: t}
		}
	}
	return t
}

// ParseProgram parses src and resolves prelude names in the result.
func ParseProgram(src string) (Term, error) {
	t, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return WithPrelude(t), nil
}
