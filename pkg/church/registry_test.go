package church

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/betanf/betanf/pkg/lambda"
)

func TestLookup(t *testing.T) {
	term, ok := Lookup("FACT")
	require.True(t, ok)
	require.NotNil(t, term)

	_, ok = Lookup("NO_SUCH_TERM")
	require.False(t, ok)
}

func TestLookupReturnsFreshTerms(t *testing.T) {
	a, ok := Lookup("Y")
	require.True(t, ok)
	b, ok := Lookup("Y")
	require.True(t, ok)
	require.True(t, lambda.Equal(a, b))
}

func TestNames(t *testing.T) {
	names := Names()
	require.Len(t, names, 49)
	require.True(t, sort.StringsAreSorted(names))

	for _, name := range names {
		term, ok := Lookup(name)
		require.True(t, ok, "name %q not resolvable", name)
		require.NotNil(t, term, "builder for %q returned nil", name)
	}
}

func TestExpand(t *testing.T) {
	parsed, err := lambda.Parse("NOT TRUE")
	require.NoError(t, err)

	requireBool(t, Expand(parsed), false)
}

func TestExpandLeavesUnknownNamesAlone(t *testing.T) {
	parsed, err := lambda.Parse("foo bar")
	require.NoError(t, err)

	expanded := Expand(parsed)
	require.True(t, lambda.Equal(parsed, expanded))
}

func TestExpandRespectsShadowing(t *testing.T) {
	parsed, err := lambda.Parse(`\TRUE.TRUE x`)
	require.NoError(t, err)

	// TRUE is bound by the abstraction, so it is not a catalogue
	// reference inside the body.
	expanded := Expand(parsed)
	require.True(t, lambda.Equal(parsed, expanded))
}

func TestExpandedExpressionEvaluates(t *testing.T) {
	parsed, err := lambda.Parse("FACT (SUCC (SUCC ONE))")
	require.NoError(t, err)

	result := normalize(t, Expand(parsed))
	require.Equal(t, 6, natValue(t, result))
}
