package binning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/quantfold/binmetrics/binning"
)

// TestResolve_UniformFive verifies that an integer spec synthesizes equally
// spaced boundaries covering [0,1] inclusive.
func TestResolve_UniformFive(t *testing.T) {
	got, err := binning.Uniform(5).Resolve()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, got, "Uniform(5) must yield 5 equally spaced points")
}

// TestResolve_UniformTwo verifies the smallest valid uniform grid.
func TestResolve_UniformTwo(t *testing.T) {
	got, err := binning.Uniform(2).Resolve()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, got)
}

// TestResolve_Default verifies the 100-point default grid and its endpoints.
func TestResolve_Default(t *testing.T) {
	got, err := binning.Default().Resolve()
	require.NoError(t, err)
	assert.Len(t, got, binning.DefaultNumThresholds)
	assert.Equal(t, 0.0, got[0], "grid must start at exactly 0")
	assert.Equal(t, 1.0, got[len(got)-1], "grid must end at exactly 1")
}

// TestResolve_ExplicitEcho verifies that a valid explicit grid is returned
// unchanged, as a copy that does not alias the caller's slice.
func TestResolve_ExplicitEcho(t *testing.T) {
	in := []float64{0, 0.25, 0.75, 1}
	got, err := binning.Explicit(in...).Resolve()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.75, 1}, got)

	in[1] = 0.99 // mutating the input must not reach the resolved grid
	assert.Equal(t, 0.25, got[1], "resolved grid must be a defensive copy")
}

// TestResolve_CountTooSmall verifies that non-positive counts fail with
// ErrThresholdCount.
func TestResolve_CountTooSmall(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := binning.Uniform(n).Resolve()
		assert.ErrorIs(t, err, binning.ErrThresholdCount, "Uniform(%d) must be rejected", n)
	}
}

// TestResolve_UniformOne verifies that a one-point grid resolves to [0] and
// is then rejected by the last-endpoint check, like a one-point linspace.
func TestResolve_UniformOne(t *testing.T) {
	_, err := binning.Uniform(1).Resolve()
	assert.ErrorIs(t, err, binning.ErrThresholdLastValue)
}

// TestResolve_EmptyExplicit verifies that an empty explicit grid is rejected.
func TestResolve_EmptyExplicit(t *testing.T) {
	_, err := binning.Explicit().Resolve()
	assert.ErrorIs(t, err, binning.ErrThresholdCount)
}

// TestResolve_NotSorted verifies that any adjacent descent is rejected and
// that the message names the offending pair.
func TestResolve_NotSorted(t *testing.T) {
	_, err := binning.Explicit(0.1, 0.2, 0.5, 0.7, 0.6).Resolve()
	require.ErrorIs(t, err, binning.ErrThresholdNotSorted)
	assert.ErrorContains(t, err, "0.7 then 0.6")
}

// TestResolve_Duplicates verifies that the ordering check is strict: ties
// are rejected as unsorted.
func TestResolve_Duplicates(t *testing.T) {
	_, err := binning.Explicit(0, 0.5, 0.5, 1).Resolve()
	assert.ErrorIs(t, err, binning.ErrThresholdNotSorted)
}

// TestResolve_OutOfRange verifies that boundaries outside [0,1] are rejected
// with the offending value in the message.
func TestResolve_OutOfRange(t *testing.T) {
	_, err := binning.Explicit(-0.1, 0.2, 0.5, 0.7).Resolve()
	require.ErrorIs(t, err, binning.ErrThresholdOutOfRange)
	assert.ErrorContains(t, err, "-0.1")
}

// TestResolve_FirstNotZero verifies the first-endpoint check.
func TestResolve_FirstNotZero(t *testing.T) {
	_, err := binning.Explicit(0.1, 0.2, 0.5, 1.0).Resolve()
	require.ErrorIs(t, err, binning.ErrThresholdFirstValue)
	assert.ErrorContains(t, err, "0.1")
}

// TestResolve_LastNotOne verifies the last-endpoint check.
func TestResolve_LastNotOne(t *testing.T) {
	_, err := binning.Explicit(0, 0.2, 0.5, 0.9).Resolve()
	require.ErrorIs(t, err, binning.ErrThresholdLastValue)
	assert.ErrorContains(t, err, "0.9")
}

// TestResolve_FromMatrixRejectsWide verifies that a two-dimensional grid
// container fails with ErrThresholdRank before any value checks run.
func TestResolve_FromMatrixRejectsWide(t *testing.T) {
	m := mat.NewDense(2, 4, []float64{
		-0.1, 0.2, 0.5, 0.7,
		0.0, 0.4, 0.6, 1.0,
	})
	_, err := binning.FromMatrix(m).Resolve()
	require.ErrorIs(t, err, binning.ErrThresholdRank)
	assert.ErrorContains(t, err, "2x4")
}

// TestResolve_FromVector verifies that vectors and row/column matrices are
// accepted as one-dimensional grids.
func TestResolve_FromVector(t *testing.T) {
	want := []float64{0, 0.25, 0.75, 1}

	v := mat.NewVecDense(4, []float64{0, 0.25, 0.75, 1})
	got, err := binning.FromMatrix(v).Resolve()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	row := mat.NewDense(1, 4, []float64{0, 0.25, 0.75, 1})
	got, err = binning.FromMatrix(row).Resolve()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestResolve_FromNilMatrix verifies that a nil container is reported as a
// rank problem rather than panicking.
func TestResolve_FromNilMatrix(t *testing.T) {
	_, err := binning.FromMatrix(nil).Resolve()
	assert.ErrorIs(t, err, binning.ErrThresholdRank)
}
