package sequence_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wehappit/nsequence/sequence"
)

// TestNthTerm_Direct verifies direct, unvalidated evaluation, including at
// negative positions.
func TestNthTerm_Direct(t *testing.T) {
	seq, err := sequence.New(linear)
	require.NoError(t, err)

	assert.Equal(t, 13.0, seq.NthTerm(5))
	assert.Equal(t, 3.0, seq.NthTerm(0))
	assert.Equal(t, -1.0, seq.NthTerm(-2), "negative positions are not rejected")
}

// TestIndexOfTerm_Inversion verifies the O(1) inversion path.
func TestIndexOfTerm_Inversion(t *testing.T) {
	seq, err := sequence.New(linear, sequence.WithInverseFunc(linearInverse))
	require.NoError(t, err)

	index, err := seq.IndexOfTerm(13)
	require.NoError(t, err)
	assert.Equal(t, 5, index)
}

// TestIndexOfTerm_InversionConsistency verifies the invariant
// IndexOfTerm(NthTerm(n)) == IndexOfPosition(n) for an exact inverse.
func TestIndexOfTerm_InversionConsistency(t *testing.T) {
	seq, err := sequence.New(
		linear,
		sequence.WithInverseFunc(linearInverse),
		sequence.WithIndexingFunc(func(p int) int { return 2 * p }),
		sequence.WithIndexingInverseFunc(func(i int) int { return i / 2 }),
	)
	require.NoError(t, err)

	for n := 0; n < 25; n++ {
		index, err := seq.IndexOfTerm(seq.NthTerm(n))
		require.NoError(t, err)
		assert.Equal(t, seq.IndexOfPosition(n), index, "at position %d", n)
	}
}

// TestIndexOfTerm_InversionUnavailable verifies that the inversion path on a
// non-invertible sequence fails with ErrInversionUnavailable.
func TestIndexOfTerm_InversionUnavailable(t *testing.T) {
	seq, err := sequence.New(linear)
	require.NoError(t, err)

	_, err = seq.IndexOfTerm(13)
	assert.ErrorIs(t, err, sequence.ErrInversionUnavailable)
}

// TestIndexOfTerm_InexactTerm verifies that a value between terms fails the
// exactness check.
func TestIndexOfTerm_InexactTerm(t *testing.T) {
	seq, err := sequence.New(linear, sequence.WithInverseFunc(linearInverse))
	require.NoError(t, err)

	_, err = seq.IndexOfTerm(14) // between f(5)=13 and f(6)=15
	assert.ErrorIs(t, err, sequence.ErrInexactTerm)
}

// TestIndexOfTerm_AllowInexact verifies the sentinel downgrade: misses
// return NoIndex with a nil error instead of failing.
func TestIndexOfTerm_AllowInexact(t *testing.T) {
	seq, err := sequence.New(linear, sequence.WithInverseFunc(linearInverse))
	require.NoError(t, err)

	index, err := seq.IndexOfTerm(14, sequence.AllowInexact())
	require.NoError(t, err)
	assert.Equal(t, sequence.NoIndex, index)
}

// TestIndexOfTerm_NeighborOutsideInverseDomain verifies both miss modes for
// a value the inverse maps to NaN: an error under exactness, the NoIndex
// sentinel under AllowInexact — never a garbage index.
func TestIndexOfTerm_NeighborOutsideInverseDomain(t *testing.T) {
	seq, err := sequence.New(
		func(p int) float64 { return 2 * math.Pow(2, float64(p)) },
		sequence.WithInverseFunc(func(v float64) float64 { return math.Log2(v / 2) }),
	)
	require.NoError(t, err)

	_, err = seq.IndexOfTerm(-5)
	assert.ErrorIs(t, err, sequence.ErrInexactTerm)

	index, err := seq.IndexOfTerm(-5, sequence.AllowInexact())
	require.NoError(t, err)
	assert.Equal(t, sequence.NoIndex, index)
}

// TestIndexOfTerm_Scan verifies the bounded linear-search fallback for
// non-invertible sequences.
func TestIndexOfTerm_Scan(t *testing.T) {
	quartic := func(p int) float64 {
		x := float64(p)
		return x*x*x*x + 9
	}
	seq, err := sequence.New(quartic, sequence.WithPositionLimit(1000))
	require.NoError(t, err)

	index, err := seq.IndexOfTerm(quartic(7), sequence.WithoutInversion())
	require.NoError(t, err)
	assert.Equal(t, 7, index)
}

// TestIndexOfTerm_ScanMiss verifies both miss modes of the scan path.
func TestIndexOfTerm_ScanMiss(t *testing.T) {
	seq, err := sequence.New(linear, sequence.WithPositionLimit(100))
	require.NoError(t, err)

	_, err = seq.IndexOfTerm(4, sequence.WithoutInversion()) // even: never a term
	assert.ErrorIs(t, err, sequence.ErrTermNotFound)

	index, err := seq.IndexOfTerm(4, sequence.WithoutInversion(), sequence.AllowInexact())
	require.NoError(t, err)
	assert.Equal(t, sequence.NoIndex, index)
}

// TestIndexOfTerm_ScanTranslatesIndex verifies that the scan path reports
// the external index, not the raw position.
func TestIndexOfTerm_ScanTranslatesIndex(t *testing.T) {
	seq, err := sequence.New(
		linear,
		sequence.WithIndexingFunc(func(p int) int { return p + 100 }),
		sequence.WithPositionLimit(100),
	)
	require.NoError(t, err)

	index, err := seq.IndexOfTerm(13, sequence.WithoutInversion())
	require.NoError(t, err)
	assert.Equal(t, 105, index, "position 5 translated through the indexing function")
}
