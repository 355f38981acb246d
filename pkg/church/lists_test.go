package church

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/betanf/betanf/pkg/lambda"
)

func TestPairAccessors(t *testing.T) {
	pair := lambda.Ap(Pair(), v("a"), v("b"))

	require.Equal(t, "a", normalize(t, lambda.Ap(First(), pair)).Render())
	require.Equal(t, "b", normalize(t, lambda.Ap(Second(), pair)).Render())
}

func TestIsNil(t *testing.T) {
	requireBool(t, lambda.Ap(IsNil(), Nil()), true)
	requireBool(t, lambda.Ap(IsNil(), lambda.Ap(Cons(), v("a"), Nil())), false)
}

func TestHeadAndTail(t *testing.T) {
	// [a, b]
	list := lambda.Ap(Cons(), v("a"), lambda.Ap(Cons(), v("b"), Nil()))

	require.Equal(t, "a", normalize(t, lambda.Ap(Head(), list)).Render())

	tail := lambda.Ap(Tail(), list)
	require.Equal(t, "b", normalize(t, lambda.Ap(Head(), tail)).Render())
	requireBool(t, lambda.Ap(IsNil(), lambda.Ap(Tail(), tail)), true)
}

func TestIndex(t *testing.T) {
	list := lambda.Ap(Cons(), v("a"), lambda.Ap(Cons(), v("b"), lambda.Ap(Cons(), v("c"), Nil())))

	tests := []struct {
		name  string
		index lambda.Term
		want  string
	}{
		{name: "index 0", index: Zero(), want: "a"},
		{name: "index 1", index: One(), want: "b"},
		{name: "index 2", index: Nat(2), want: "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalize(t, lambda.Ap(Index(), list, tt.index))
			require.Equal(t, tt.want, result.Render())
		})
	}
}
