package church

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/betanf/betanf/pkg/lambda"
)

func TestNat(t *testing.T) {
	require.Equal(t, Zero().Render(), Nat(0).Render())
	require.Equal(t, Zero().Render(), Nat(-3).Render())
	require.Equal(t, One().Render(), Nat(1).Render())
	require.Equal(t, "(\\f.(\\x.[f [f [f x]]]))", Nat(3).Render())
}

func TestSuccessor(t *testing.T) {
	for n := 0; n < 4; n++ {
		result := normalize(t, lambda.Ap(Succ(), Nat(n)))
		require.Equal(t, n+1, natValue(t, result))
	}
}

func TestPlusTwoTwoRendersFour(t *testing.T) {
	result := normalize(t, lambda.Ap(Plus(), Nat(2), Nat(2)))
	require.Equal(t, "(\\f.(\\x.[f [f [f [f x]]]]))", result.Render())
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		term lambda.Term
		want int
	}{
		{name: "2+3", term: lambda.Ap(Plus(), Nat(2), Nat(3)), want: 5},
		{name: "0+2", term: lambda.Ap(Plus(), Zero(), Nat(2)), want: 2},
		{name: "2*3", term: lambda.Ap(Mult(), Nat(2), Nat(3)), want: 6},
		{name: "3*0", term: lambda.Ap(Mult(), Nat(3), Zero()), want: 0},
		{name: "2^3", term: lambda.Ap(Pow(), Nat(2), Nat(3)), want: 8},
		{name: "pred 3", term: lambda.Ap(Pred(), Nat(3)), want: 2},
		{name: "pred 0", term: lambda.Ap(Pred(), Zero()), want: 0},
		{name: "5-2", term: lambda.Ap(Sub(), Nat(5), Nat(2)), want: 3},
		{name: "2-5 truncates", term: lambda.Ap(Sub(), Nat(2), Nat(5)), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, natValue(t, normalize(t, tt.term)))
		})
	}
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		name string
		term lambda.Term
		want bool
	}{
		{name: "iszero 0", term: lambda.Ap(IsZero(), Zero()), want: true},
		{name: "iszero 1", term: lambda.Ap(IsZero(), One()), want: false},
		{name: "2<=3", term: lambda.Ap(Leq(), Nat(2), Nat(3)), want: true},
		{name: "3<=3", term: lambda.Ap(Leq(), Nat(3), Nat(3)), want: true},
		{name: "4<=3", term: lambda.Ap(Leq(), Nat(4), Nat(3)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireBool(t, tt.term, tt.want)
		})
	}
}
