package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalize(t *testing.T, src string) Term {
	t.Helper()
	term, err := Parse(src)
	require.NoError(t, err)
	normal, err := Normalize(term)
	require.NoError(t, err)
	return normal
}

func assertNormalizesTo(t *testing.T, src, want string) {
	t.Helper()
	normal := normalize(t, src)
	expected, err := Parse(want)
	require.NoError(t, err)
	assert.True(t, AlphaEqual(normal, expected), "%s normalized to %s, want %s", src, normal, want)
}

// TestIdentityFunction: (x: x) is already in normal form.
func TestIdentityFunction(t *testing.T) {
	assertNormalizesTo(t, "(x: x)", "(x: x)")
	assertNormalizesTo(t, "((x: x) a)", "a")
}

// TestKCombinator: applying K twice selects the first argument and erases
// the second without reducing it.
func TestKCombinator(t *testing.T) {
	assertNormalizesTo(t, "(((x: (y: x)) a) b)", "a")

	// The discarded argument may even be divergent: normal order never
	// touches it.
	assertNormalizesTo(t, "(((x: (y: x)) a) ((x: x x) (y: y y)))", "a")
}

// TestSCombinator: S K K is the identity.
func TestSCombinator(t *testing.T) {
	assertNormalizesTo(t,
		"((((x: (y: (z: ((x z) (y z))))) (a: (b: a))) (c: (d: c))) e)",
		"e")
}

func TestBooleanTerms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"NOT true", "((b: ((b (x: (y: y))) (x: (y: x)))) (x: (y: x)))", false},
		{"NOT false", "((b: ((b (x: (y: y))) (x: (y: x)))) (x: (y: y)))", true},
		{"AND true true", "(((a: (b: ((a b) a))) (x: (y: x))) (x: (y: x)))", true},
		{"AND true false", "(((a: (b: ((a b) a))) (x: (y: x))) (x: (y: y)))", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeBool(normalize(t, tt.input))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPairTerms(t *testing.T) {
	// pair = x: y: f: f x y; fst selects via K, snd via K I.
	assertNormalizesTo(t,
		"((p: (p (x: (y: x)))) (((x: (y: (f: ((f x) y)))) a) b))", "a")
	assertNormalizesTo(t,
		"((p: (p (x: (y: y)))) (((x: (y: (f: ((f x) y)))) a) b))", "b")
}

func TestChurchNumeralNormalForms(t *testing.T) {
	for _, src := range []string{
		"(f: (x: x))",
		"(f: (x: (f x)))",
		"(f: (x: (f (f x))))",
	} {
		term, err := Parse(src)
		require.NoError(t, err)
		normal, err := Normalize(term)
		require.NoError(t, err)
		assert.True(t, AlphaEqual(term, normal), "%s is already a normal form", src)
	}
}

// TestAlphaCapture: substituting under a binder that reuses a free
// variable name must rename the binder, not capture.
func TestAlphaCapture(t *testing.T) {
	// ((x: (y: x)) y) is "const y"; naive substitution would produce
	// (y: y), the identity.
	assertNormalizesTo(t, "((x: (y: x)) y)", "(z: y)")
}

// TestOmegaHitsStepLimit: (x: x x) (y: y y) reduces forever; the limit
// must turn that into ErrStepLimit, not a hang.
func TestOmegaHitsStepLimit(t *testing.T) {
	term, err := Parse("((x: (x x)) (y: (y y)))")
	require.NoError(t, err)

	eval := NewEvaluator()
	eval.MaxSteps = 500
	_, err = eval.Normalize(term)
	require.ErrorIs(t, err, ErrStepLimit)
	assert.Equal(t, uint64(500), eval.Stats().Beta)
}

func TestLetDesugarsToApplication(t *testing.T) {
	assertNormalizesTo(t, "let id = x: x; id a", "a")
	assertNormalizesTo(t, "let k = a: b: a; w = c: c in k w e", "(c: c)")
}

func TestStatsCount(t *testing.T) {
	eval := NewEvaluator()
	term, err := Parse("((x: x) a)")
	require.NoError(t, err)
	_, err = eval.Normalize(term)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), eval.Stats().Beta)
}
