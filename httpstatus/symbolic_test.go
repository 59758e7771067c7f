package httpstatus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolicMatcherMatchesEverySymbolInTable(t *testing.T) {
	for _, e := range statusEntries {
		m, err := newSymbolicMatcher(e.symbol)
		require.NoError(t, err)
		assert.True(t, m.Matches(responseWithStatus(e.code)), "symbol %q should match %d", e.symbol, e.code)

		m, err = newSymbolicMatcher(e.symbol)
		require.NoError(t, err)
		assert.False(t, m.Matches(responseWithStatus(e.code+1)), "symbol %q should not match %d", e.symbol, e.code+1)
	}
}

func TestSymbolicMatcherRejectsUnknownSymbol(t *testing.T) {
	_, err := newSymbolicMatcher("not_a_real_status")
	require.Error(t, err)
	_, ok := err.(*InvalidStatusError)
	assert.True(t, ok, "expected *InvalidStatusError, got %T", err)
}

func TestSymbolicMatcherFailureMessages(t *testing.T) {
	m, err := newSymbolicMatcher("created")
	require.NoError(t, err)
	require.False(t, m.Matches(responseWithStatus(200)))
	assert.Equal(t, "expected the response to have status code created (201) but it was ok (200)",
		m.FailureMessage())

	m, err = newSymbolicMatcher("created")
	require.NoError(t, err)
	require.True(t, m.Matches(responseWithStatus(201)))
	assert.Equal(t, "expected the response not to have status code created (201) but it did",
		m.FailureMessageWhenNegated())
}

func TestSymbolicMatcherShowsBareCodeWhenActualHasNoSymbol(t *testing.T) {
	m, err := newSymbolicMatcher("ok")
	require.NoError(t, err)
	require.False(t, m.Matches(responseWithStatus(299)))
	assert.Equal(t, "expected the response to have status code ok (200) but it was 299", m.FailureMessage())
}

func TestSymbolicMatcherReverseLookupIsStableForSharedCodes(t *testing.T) {
	// 302 and 422 each have two symbols; an actual code with multiple names
	// must always render as the first table entry.
	for code, displayed := range map[int]string{
		302: "found (302)",
		422: "unprocessable_entity (422)",
	} {
		m, err := newSymbolicMatcher("ok")
		require.NoError(t, err)
		require.False(t, m.Matches(responseWithStatus(code)))
		assert.Contains(t, m.FailureMessage(), displayed)
	}
}

func TestSymbolicMatcherWithInvalidCandidate(t *testing.T) {
	m, err := newSymbolicMatcher("ok")
	require.NoError(t, err)
	assert.False(t, m.Matches(12345))
	assert.Equal(t, "expected a response object, but an instance of int was received", m.FailureMessage())
}
