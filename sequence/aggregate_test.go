package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wehappit/nsequence/sequence"
)

// TestSumUpToNthTerm_Accumulation verifies direct accumulation: the sum of
// 2x+3 for x in 0..10 is 143.
func TestSumUpToNthTerm_Accumulation(t *testing.T) {
	seq, err := sequence.New(linear)
	require.NoError(t, err)

	sum, err := seq.SumUpToNthTerm(10)
	require.NoError(t, err)
	assert.Equal(t, 143.0, sum)
}

// TestSumUpToNthTerm_NonPositive verifies that n < 1 is rejected.
func TestSumUpToNthTerm_NonPositive(t *testing.T) {
	seq, err := sequence.New(linear)
	require.NoError(t, err)

	_, err = seq.SumUpToNthTerm(0)
	assert.ErrorIs(t, err, sequence.ErrNonPositivePosition)

	_, err = seq.SumUpToNthTerm(-3)
	assert.ErrorIs(t, err, sequence.ErrNonPositivePosition)
}

// TestSumUpToNthTerm_ClosedForm verifies that a configured SumFunc
// short-circuits the accumulation.
func TestSumUpToNthTerm_ClosedForm(t *testing.T) {
	seq, err := sequence.New(linear, sequence.WithSumFunc(func(n int) float64 {
		k := float64(n)
		return (k + 1) * (6 + 2*k) / 2 // arithmetic closed form for 2x+3
	}))
	require.NoError(t, err)

	sum, err := seq.SumUpToNthTerm(10)
	require.NoError(t, err)
	assert.Equal(t, 143.0, sum, "closed form must agree with direct accumulation")
}

// TestCountTermsBetweenIndices verifies inclusive counting, including the
// degenerate single-index case.
func TestCountTermsBetweenIndices(t *testing.T) {
	seq, err := sequence.New(
		linear,
		sequence.WithIndexingFunc(func(p int) int { return 3*p + 7 }),
		sequence.WithIndexingInverseFunc(func(i int) int { return (i - 7) / 3 }),
	)
	require.NoError(t, err)

	count, err := seq.CountTermsBetweenIndices(7, 19) // positions 0 and 4
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	count, err = seq.CountTermsBetweenIndices(13, 13)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "a single index spans exactly one term")

	// Argument order must not matter.
	count, err = seq.CountTermsBetweenIndices(19, 7)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

// TestCountTermsBetweenTerms verifies the inversion-backed count and its
// failure modes.
func TestCountTermsBetweenTerms(t *testing.T) {
	seq, err := sequence.New(double, sequence.WithInverseFunc(halve))
	require.NoError(t, err)

	count, err := seq.CountTermsBetweenTerms(4, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	_, err = seq.CountTermsBetweenTerms(4, 9) // 9 is not a term
	assert.ErrorIs(t, err, sequence.ErrInexactTerm)

	plain, err := sequence.New(double)
	require.NoError(t, err)
	_, err = plain.CountTermsBetweenTerms(4, 10)
	assert.ErrorIs(t, err, sequence.ErrInversionUnavailable)
}

// TestTermsBetweenTerms verifies the range listing: for f(x) = 2x with
// inverse y/2, the terms between 4 and 10 are [4, 6, 8, 10], ascending
// regardless of argument order.
func TestTermsBetweenTerms(t *testing.T) {
	seq, err := sequence.New(double, sequence.WithInverseFunc(halve))
	require.NoError(t, err)

	terms, err := seq.TermsBetweenTerms(4, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6, 8, 10}, terms)

	terms, err = seq.TermsBetweenTerms(10, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6, 8, 10}, terms, "ascending order regardless of argument order")
}

// TestTermsBetweenPositions verifies the position-level range listing.
func TestTermsBetweenPositions(t *testing.T) {
	seq, err := sequence.New(double)
	require.NoError(t, err)

	assert.Equal(t, []float64{4, 6, 8}, seq.TermsBetweenPositions(2, 4))
	assert.Equal(t, []float64{4, 6, 8}, seq.TermsBetweenPositions(4, 2))
	assert.Equal(t, []float64{6}, seq.TermsBetweenPositions(3, 3))
}

// TestAt verifies sequence-protocol element access with negative indexing
// and bounds enforcement.
func TestAt(t *testing.T) {
	seq, err := sequence.New(double, sequence.WithPositionLimit(10))
	require.NoError(t, err)

	term, err := seq.At(3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, term)

	term, err = seq.At(-1)
	require.NoError(t, err)
	assert.Equal(t, 18.0, term, "-1 addresses the last reachable position")

	_, err = seq.At(10)
	assert.ErrorIs(t, err, sequence.ErrPositionOutOfRange)

	_, err = seq.At(-11)
	assert.ErrorIs(t, err, sequence.ErrPositionOutOfRange)
}

// TestSlice verifies standard slice semantics: steps, negative bounds,
// clamping, descending order and the zero-step rejection.
func TestSlice(t *testing.T) {
	seq, err := sequence.New(double, sequence.WithPositionLimit(10))
	require.NoError(t, err)

	terms, err := seq.Slice(2, 6, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6, 8, 10}, terms)

	terms, err = seq.Slice(0, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 6, 12, 18}, terms)

	terms, err = seq.Slice(-3, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{14, 16, 18}, terms, "negative start counts back from Len")

	terms, err = seq.Slice(5, 1, -2)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 6}, terms, "negative step walks descending, stop exclusive")

	terms, err = seq.Slice(0, 100, 1)
	require.NoError(t, err)
	assert.Len(t, terms, 10, "out-of-range stop clamps to Len")

	_, err = seq.Slice(0, 5, 0)
	assert.ErrorIs(t, err, sequence.ErrZeroStep)
}
