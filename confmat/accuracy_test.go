package confmat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/confgrid/confmat"
)

// mustMatrix builds a Matrix or fails the test.
func mustMatrix(t *testing.T, counts [][]int) *confmat.Matrix {
	t.Helper()
	m, err := confmat.New(counts, confmat.DefaultOptions())
	require.NoError(t, err)

	return m
}

// m3 is the 3×3 reference scenario: trace 43, total 55.
func m3(t *testing.T) *confmat.Matrix {
	return mustMatrix(t, [][]int{
		{10, 2, 1},
		{2, 15, 3},
		{4, 0, 18},
	})
}

// m5 is a 5×5 scenario with total 558 and off-band (k=1) mass 28.
func m5(t *testing.T) *confmat.Matrix {
	return mustMatrix(t, [][]int{
		{100, 8, 3, 0, 1},
		{7, 95, 6, 2, 0},
		{4, 9, 88, 7, 3},
		{0, 3, 8, 102, 9},
		{2, 1, 9, 11, 80},
	})
}

// TestBandAccuracy_ExactDiagonal verifies the k=0 statistic equals the
// classic trace-over-total accuracy and the 1/n chance baseline.
func TestBandAccuracy_ExactDiagonal(t *testing.T) {
	m := m3(t)

	got, err := m.BandAccuracy(0)
	require.NoError(t, err)
	require.InDelta(t, 43.0/55.0, got.Accuracy, 1e-12)
	require.InDelta(t, 1.0/3.0, got.Expected, 1e-12)

	// k=0 accuracy must always equal Trace/Total.
	require.InDelta(t, float64(m.Trace())/float64(m.Total()), got.Accuracy, 1e-12)
}

// TestBandAccuracy_FullBand verifies that k=n−1 captures everything.
func TestBandAccuracy_FullBand(t *testing.T) {
	for _, m := range []*confmat.Matrix{m3(t), m5(t)} {
		got, err := m.BandAccuracy(m.N() - 1)
		require.NoError(t, err)
		require.Equal(t, 1.0, got.Accuracy)
		require.Equal(t, 1.0, got.Expected)
	}
}

// TestBandAccuracy_FiveByFive checks the k=1 tolerance scenario:
// 530/558 ≈ 0.9498 against a 0.52 chance baseline.
func TestBandAccuracy_FiveByFive(t *testing.T) {
	got, err := m5(t).BandAccuracy(1)
	require.NoError(t, err)
	require.InDelta(t, 530.0/558.0, got.Accuracy, 1e-12)
	require.InDelta(t, 0.9498, got.Accuracy, 5e-5)
	require.InDelta(t, 0.52, got.Expected, 1e-12)
}

// TestBandAccuracy_ExpectedMonotone verifies Expected is non-decreasing in k.
func TestBandAccuracy_ExpectedMonotone(t *testing.T) {
	m := m5(t)
	prev := -1.0
	for k := 0; k < m.N(); k++ {
		got, err := m.BandAccuracy(k)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got.Expected, prev, "Expected must not decrease at k=%d", k)
		prev = got.Expected
	}
}

// TestBandAccuracy_AccuracyMonotone verifies Accuracy is non-decreasing in k:
// widening the band can only add mass.
func TestBandAccuracy_AccuracyMonotone(t *testing.T) {
	m := m5(t)
	prev := -1.0
	for k := 0; k < m.N(); k++ {
		got, err := m.BandAccuracy(k)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got.Accuracy, prev, "Accuracy must not decrease at k=%d", k)
		prev = got.Accuracy
	}
}

// TestBandAccuracy_Errors rejects out-of-range half-widths.
func TestBandAccuracy_Errors(t *testing.T) {
	m := m3(t)

	_, err := m.BandAccuracy(-1)
	require.ErrorIs(t, err, confmat.ErrBandWidth)

	_, err = m.BandAccuracy(m.N())
	require.ErrorIs(t, err, confmat.ErrBandWidth)
}

// TestBandAccuracy_SingleClass covers the degenerate 1×1 matrix, where the
// only admissible band is k=0 and both statistics are 1.
func TestBandAccuracy_SingleClass(t *testing.T) {
	m := mustMatrix(t, [][]int{{7}})

	got, err := m.BandAccuracy(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, got.Accuracy)
	require.Equal(t, 1.0, got.Expected)
}
