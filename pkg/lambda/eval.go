package lambda

import (
	"errors"
	"fmt"
	"os"
)

var traceSteps = os.Getenv("FIXPOINT_TRACE") != ""

// DefaultMaxSteps bounds reduction when the caller sets no limit. Terms
// like (x: x x) (y: y y) never reach a normal form; the limit turns that
// divergence into ErrStepLimit instead of a hang.
const DefaultMaxSteps = 1_000_000

// ErrStepLimit is returned by Normalize when the step limit is exhausted
// before a normal form is reached.
var ErrStepLimit = errors.New("lambda: no normal form within step limit")

// Stats counts the work done by an Evaluator.
type Stats struct {
	// Beta is the number of beta reductions performed.
	Beta uint64
	// Renames is the number of alpha renames needed to avoid capture.
	Renames uint64
}

// Evaluator reduces terms to normal form under normal order: the
// leftmost-outermost redex fires first, so arguments are substituted
// unevaluated and an unused argument is never reduced at all. That is what
// lets the plain Y combinator run here without thunk guards.
type Evaluator struct {
	// MaxSteps caps beta reductions per Normalize call; zero means
	// DefaultMaxSteps.
	MaxSteps uint64

	stats Stats
	fresh int
}

// NewEvaluator returns an evaluator with the default step limit.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Stats reports the counters accumulated across Normalize calls.
func (e *Evaluator) Stats() Stats {
	return e.stats
}

// Normalize reduces t to beta normal form. On ErrStepLimit the term
// reached after the last step is returned alongside the error.
func (e *Evaluator) Normalize(t Term) (Term, error) {
	t = Desugar(t)
	limit := e.MaxSteps
	if limit == 0 {
		limit = DefaultMaxSteps
	}
	for steps := uint64(0); ; {
		next, reduced := e.step(t)
		if !reduced {
			return t, nil
		}
		t = next
		steps++
		e.stats.Beta++
		if traceSteps {
			fmt.Fprintf(os.Stderr, "step %d: %s\n", steps, t)
		}
		if steps >= limit {
			return t, ErrStepLimit
		}
	}
}

// Normalize reduces t with a fresh evaluator and the default step limit.
func Normalize(t Term) (Term, error) {
	return NewEvaluator().Normalize(t)
}

// step performs one leftmost-outermost beta reduction, reporting whether
// any redex was found.
func (e *Evaluator) step(t Term) (Term, bool) {
	switch v := t.(type) {
	case App:
		if fn, ok := v.Fun.(Abs); ok {
			return e.subst(fn.Body, fn.Arg, v.Arg), true
		}
		if next, ok := e.step(v.Fun); ok {
			return App{Fun: next, Arg: v.Arg}, true
		}
		if next, ok := e.step(v.Arg); ok {
			return App{Fun: v.Fun, Arg: next}, true
		}
		return t, false
	case Abs:
		if next, ok := e.step(v.Body); ok {
			return Abs{Arg: v.Arg, Body: next}, true
		}
		return t, false
	default:
		return t, false
	}
}

// subst replaces free occurrences of name in t with val, renaming binders
// that would capture a free variable of val.
func (e *Evaluator) subst(t Term, name string, val Term) Term {
	switch v := t.(type) {
	case Var:
		if v.Name == name {
			return val
		}
		return v
	case Abs:
		if v.Arg == name {
			return v
		}
		if FreeIn(v.Arg, val) && FreeIn(name, v.Body) {
			renamed := e.freshName(v.Arg, v.Body, val, Var{Name: name})
			e.stats.Renames++
			body := e.subst(v.Body, v.Arg, Var{Name: renamed})
			return Abs{Arg: renamed, Body: e.subst(body, name, val)}
		}
		return Abs{Arg: v.Arg, Body: e.subst(v.Body, name, val)}
	case App:
		return App{
			Fun: e.subst(v.Fun, name, val),
			Arg: e.subst(v.Arg, name, val),
		}
	case Let:
		return e.subst(Desugar(v), name, val)
	default:
		return t
	}
}

// freshName derives a name from base that is free in none of avoid.
func (e *Evaluator) freshName(base string, avoid ...Term) string {
	for {
		candidate := fmt.Sprintf("%s%d", base, e.fresh)
		e.fresh++
		clash := false
		for _, t := range avoid {
			if FreeIn(candidate, t) {
				clash = true
				break
			}
		}
		if !clash {
			return candidate
		}
	}
}
