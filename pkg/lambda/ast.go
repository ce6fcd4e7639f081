package lambda

import "fmt"

// Term is a lambda calculus term.
type Term interface {
	String() string
}

// Var is a variable occurrence.
type Var struct {
	Name string
}

func (v Var) String() string {
	return v.Name
}

// Abs is an abstraction, written (x: body).
type Abs struct {
	Arg  string
	Body Term
}

func (a Abs) String() string {
	return fmt.Sprintf("(%s: %s)", a.Arg, a.Body)
}

// App is an application.
type App struct {
	Fun Term
	Arg Term
}

func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

// Let binds a name in a body; sugar for application:
// let x = v in b  ==  ((x: b) v)
type Let struct {
	Name string
	Val  Term
	Body Term
}

func (l Let) String() string {
	return fmt.Sprintf("let %s = %s; %s", l.Name, l.Val, l.Body)
}

// Desugar rewrites every Let in t into its application form.
func Desugar(t Term) Term {
	switch v := t.(type) {
	case Abs:
		return Abs{Arg: v.Arg, Body: Desugar(v.Body)}
	case App:
		return App{Fun: Desugar(v.Fun), Arg: Desugar(v.Arg)}
	case Let:
		return App{
			Fun: Abs{Arg: v.Name, Body: Desugar(v.Body)},
			Arg: Desugar(v.Val),
		}
	default:
		return t
	}
}

// FreeIn reports whether name occurs free in t.
func FreeIn(name string, t Term) bool {
	switch v := t.(type) {
	case Var:
		return v.Name == name
	case Abs:
		return v.Arg != name && FreeIn(name, v.Body)
	case App:
		return FreeIn(name, v.Fun) || FreeIn(name, v.Arg)
	case Let:
		return FreeIn(name, v.Val) ||
			(v.Name != name && FreeIn(name, v.Body))
	default:
		return false
	}
}

// AlphaEqual reports structural equality of two terms up to renaming of
// bound variables. Lets are desugared before comparison.
func AlphaEqual(a, b Term) bool {
	return alphaEq(Desugar(a), Desugar(b), nil, nil, 0)
}

// alphaEq numbers binders by the depth they were introduced at, so two
// bound occurrences match iff they point at the same binder position.
func alphaEq(a, b Term, envA, envB map[string]int, depth int) bool {
	switch av := a.(type) {
	case Var:
		bv, ok := b.(Var)
		if !ok {
			return false
		}
		ia, boundA := envA[av.Name]
		ib, boundB := envB[bv.Name]
		if boundA != boundB {
			return false
		}
		if boundA {
			return ia == ib
		}
		return av.Name == bv.Name
	case Abs:
		bv, ok := b.(Abs)
		if !ok {
			return false
		}
		return alphaEq(av.Body, bv.Body,
			extend(envA, av.Arg, depth), extend(envB, bv.Arg, depth), depth+1)
	case App:
		bv, ok := b.(App)
		if !ok {
			return false
		}
		return alphaEq(av.Fun, bv.Fun, envA, envB, depth) &&
			alphaEq(av.Arg, bv.Arg, envA, envB, depth)
	default:
		return false
	}
}

func extend(env map[string]int, name string, depth int) map[string]int {
	next := make(map[string]int, len(env)+1)
	for k, v := range env {
		next[k] = v
	}
	next[name] = depth
	return next
}
