package lambda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"identity", "(x: x)", "(x: x)"},
		{"unparenthesized abs", "x: x", "(x: x)"},
		{"k combinator", "x: y: x", "(x: (y: x))"},
		{"application", "f a", "(f a)"},
		{"left assoc app", "f a b c", "(((f a) b) c)"},
		{"abs extends right", "f x: y z", "(f (x: (y z)))"},
		{"numeral zero", "0", "(f: (x: x))"},
		{"numeral two", "2", "(f: (x: (f (f x))))"},
		{"comment", "f a # trailing comment", "(f a)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, term.String())
		})
	}
}

func TestParseLet(t *testing.T) {
	inForm, err := Parse("let id = x: x in id a")
	require.NoError(t, err)
	semiForm, err := Parse("let id = x: x; id a")
	require.NoError(t, err)
	assert.True(t, AlphaEqual(inForm, semiForm))

	multi, err := Parse("let k = a: b: a; w = x: x x in k w")
	require.NoError(t, err)
	outer, ok := multi.(Let)
	require.True(t, ok)
	assert.Equal(t, "k", outer.Name)
	inner, ok := outer.Body.(Let)
	require.True(t, ok)
	assert.Equal(t, "w", inner.Name)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"(x: x",
		"let x in y",
		"let = y in z",
		"f a )",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.Error(t, err)
		})
	}
}

// Printing a term and reparsing it must give the same term back.
func TestParseStringRoundTrip(t *testing.T) {
	for _, input := range []string{
		"(x: x)",
		"x: y: x",
		"(f: (x: f (f x)))",
		"(x: x x) (y: y y)",
		"let id = x: x; id id",
		"f x: y z",
	} {
		t.Run(input, func(t *testing.T) {
			term, err := Parse(input)
			require.NoError(t, err)
			again, err := Parse(term.String())
			require.NoError(t, err)
			assert.True(t, AlphaEqual(term, again), "reparse of %q changed the term", term)
		})
	}
}

func TestNumeralTerm(t *testing.T) {
	for n := 0; n <= 8; n++ {
		got, ok := DecodeNumeral(NumeralTerm(n))
		require.True(t, ok)
		require.Equal(t, n, got)
	}
}
