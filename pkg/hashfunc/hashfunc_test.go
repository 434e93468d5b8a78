package hashfunc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivision(t *testing.T) {
	tests := []struct {
		name string
		k, m, n int
		want    int
	}{
		{"scenario A home(2)", 2, 10, 10, 2},
		{"scenario A home(12)", 12, 10, 10, 2},
		{"m differs from N", 1, 113, 120, 1},
		{"negative key", -2, 10, 10, 2},
		{"zero key", 0, 41, 120, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Division(tt.k, tt.m, tt.n)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.Less(t, got, tt.n)
		})
	}
}

func TestDivisionHandlesIntMin(t *testing.T) {
	got := Division(math.MinInt64, 120, 120)
	assert.GreaterOrEqual(t, got, 0)
	assert.Less(t, got, 120)
}

// TestFibonacciDeterminism pins down Scenario F from spec.md §8: with
// A = 0x9E3779B97F4A7C15 and N=120, fibonacciHash(1), (2), (3) must be
// identical across every conforming implementation.
func TestFibonacciDeterminism(t *testing.T) {
	tests := []struct {
		k    int
		want int
	}{
		{1, 85},
		{2, 34},
		{3, 119},
	}

	for _, tt := range tests {
		got := Fibonacci(tt.k, 120)
		assert.Equal(t, tt.want, got, "fibonacci(%d, 120)", tt.k)
	}
}

func TestFibonacciHandlesIntMin(t *testing.T) {
	got := Fibonacci(math.MinInt64, 120)
	assert.GreaterOrEqual(t, got, 0)
	assert.Less(t, got, 120)
}

func TestFibonacciIsPureAndRepeatable(t *testing.T) {
	a := Fibonacci(42, 120)
	b := Fibonacci(42, 120)
	assert.Equal(t, a, b)
}
