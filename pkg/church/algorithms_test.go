package church

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/betanf/betanf/pkg/lambda"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{n: 0, want: 1},
		{n: 1, want: 1},
		{n: 2, want: 2},
		{n: 3, want: 6},
	}

	for _, tt := range tests {
		result := normalize(t, lambda.Ap(Fact(), Nat(tt.n)))
		require.Equal(t, tt.want, natValue(t, result), "FACT %d", tt.n)
	}
}

func TestFibonacci(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{n: 0, want: 0},
		{n: 1, want: 1},
		{n: 2, want: 1},
		{n: 3, want: 2},
		{n: 4, want: 3},
	}

	for _, tt := range tests {
		result := normalize(t, lambda.Ap(Fibo(), Nat(tt.n)))
		require.Equal(t, tt.want, natValue(t, result), "FIBO %d", tt.n)
	}
}
