package church

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Fibonacci is 1-indexed: fib(0) = fib(1) = 1.
func TestFibonacci(t *testing.T) {
	want := []int{1, 1, 2, 3, 5, 8, 13}
	for n, expected := range want {
		got := FromNumeral(Fibonacci(mustNumeral(t, n)))
		require.Equal(t, expected, got, "fib(%d)", n)
	}
}

func TestFibonacciOfFive(t *testing.T) {
	require.Equal(t, 8, FromNumeral(Fibonacci(Five)))
}
