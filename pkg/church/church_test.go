package church

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/betanf/betanf/pkg/lambda"
)

// normalize runs a term to beta-normal form. Catalogue terms all converge,
// but the cap keeps a broken encoding from hanging the suite.
func normalize(t *testing.T, term lambda.Term) lambda.Term {
	t.Helper()
	result, stats := lambda.Normalize(term, lambda.WithMaxSteps(1_000_000))
	require.Less(t, stats.Steps, uint64(1_000_000), "term did not normalize")
	return result
}

// natValue decodes a normalized Church numeral, whatever its binder names.
func natValue(t *testing.T, term lambda.Term) int {
	t.Helper()

	outer, ok := term.(lambda.Abs)
	require.True(t, ok, "expected numeral, got %s", term.Render())
	inner, ok := outer.Body.(lambda.Abs)
	require.True(t, ok, "expected numeral, got %s", term.Render())

	count := 0
	body := inner.Body
	for {
		switch s := body.(type) {
		case lambda.Var:
			require.Equal(t, inner.Param.Name, s.Name, "numeral body ends in wrong variable: %s", term.Render())
			return count
		case lambda.App:
			fn, ok := s.Fun.(lambda.Var)
			require.True(t, ok, "not a numeral: %s", term.Render())
			require.Equal(t, outer.Param.Name, fn.Name, "not a numeral: %s", term.Render())
			count++
			body = s.Arg
		default:
			t.Fatalf("not a numeral: %s", term.Render())
		}
	}
}

// requireBool asserts that term normalizes to the Church boolean want.
func requireBool(t *testing.T, term lambda.Term, want bool) {
	t.Helper()
	expected := False()
	if want {
		expected = True()
	}
	require.Equal(t, expected.Render(), normalize(t, term).Render())
}

func TestBuildersReturnFreshTrees(t *testing.T) {
	a, b := Fact(), Fact()
	require.True(t, lambda.Equal(a, b))

	// Normalizing one copy must leave the other untouched.
	before := b.Render()
	_, _ = lambda.Normalize(lambda.Ap(a, Nat(2)), lambda.WithMaxSteps(1_000_000))
	require.Equal(t, before, b.Render())
}
