package confmat

// BandAccuracy computes the tolerance-banded accuracy statistic for band
// half-width k.
//
// Accuracy is the empirical probability mass the band captures:
//
//	Σ over cells with |i−j| ≤ k of count/total.
//
// Expected is the mass a uniform-random row/column assignment places in the
// same band. Of the n² equally likely cell pairs, exactly (n−k−1)(n−k) lie
// outside the band (counting the two symmetric staircase triangles), hence
//
//	Expected = 1 − (n−k−1)(n−k)/n².
//
// Edge cases: k=0 gives Expected = 1/n (chance of hitting the exact
// diagonal); k=n−1 gives Accuracy = Expected = 1 (the band covers the
// whole matrix).
//
// Returns ErrBandWidth when k < 0 or k > n−1.
//
// Complexity: O(n·k) time, O(1) memory. Purely deterministic arithmetic.
func (m *Matrix) BandAccuracy(k int) (BandAccuracy, error) {
	if err := ValidateBandWidth(m.n, k); err != nil {
		return BandAccuracy{}, err
	}

	inBand := 0
	for i := 0; i < m.n; i++ {
		lo, hi := i-k, i+k
		if lo < 0 {
			lo = 0
		}
		if hi > m.n-1 {
			hi = m.n - 1
		}
		for j := lo; j <= hi; j++ {
			inBand += m.counts[i][j]
		}
	}

	off := float64((m.n - k - 1) * (m.n - k))

	return BandAccuracy{
		Accuracy: float64(inBand) / float64(m.total),
		Expected: 1 - off/float64(m.n*m.n),
	}, nil
}

// Trace returns the sum of the main-diagonal counts, i.e. the number of
// exactly correct classifications.
func (m *Matrix) Trace() int {
	t := 0
	for i := 0; i < m.n; i++ {
		t += m.counts[i][i]
	}

	return t
}
