package confmat

import "fmt"

// New validates and deep-copies counts into an immutable Matrix.
//
// Behavior:
//  1. Reject empty input and ragged/non-square rows (ErrInvalidMatrix).
//  2. Reject negative entries; accumulate the total (ErrInvalidMatrix).
//  3. Reject an all-zero matrix: percentage and color encodings divide by
//     the total, so total > 0 is a construction invariant (ErrInvalidMatrix).
//  4. Copy opts.Labels or generate class_1..class_n (ErrInvalidLabels on
//     length mismatch).
//
// The input slices are never retained; mutating them after New has no
// effect on the returned Matrix.
func New(counts [][]int, opts Options) (*Matrix, error) {
	n := len(counts)
	if n == 0 {
		return nil, fmt.Errorf("%w: matrix has no rows", ErrInvalidMatrix)
	}

	m := &Matrix{n: n, counts: make([][]int, n)}
	for i, row := range counts {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidMatrix, i, len(row), n)
		}
		m.counts[i] = make([]int, n)
		for j, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("%w: negative count %d at (%d,%d)", ErrInvalidMatrix, c, i, j)
			}
			m.counts[i][j] = c
			m.total += c
		}
	}
	if m.total == 0 {
		return nil, fmt.Errorf("%w: total count must be positive", ErrInvalidMatrix)
	}

	labels, err := normalizeLabels(opts.Labels, n)
	if err != nil {
		return nil, err
	}
	m.labels = labels

	return m, nil
}

// normalizeLabels copies the provided labels or generates defaults.
func normalizeLabels(labels []string, n int) ([]string, error) {
	out := make([]string, n)
	if len(labels) == 0 {
		for i := range out {
			out[i] = fmt.Sprintf("class_%d", i+1)
		}
		return out, nil
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%w: got %d labels for dimension %d", ErrInvalidLabels, len(labels), n)
	}
	copy(out, labels)

	return out, nil
}

// N returns the matrix dimension.
func (m *Matrix) N() int { return m.n }

// Total returns the sum of all counts. Always positive for a built Matrix.
func (m *Matrix) Total() int { return m.total }

// Count returns the count at (row i, col j).
// Out-of-range indices are a programmer error and panic.
func (m *Matrix) Count(i, j int) int {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("confmat: index (%d,%d) out of range for %d×%d matrix", i, j, m.n, m.n))
	}

	return m.counts[i][j]
}

// Fraction returns Count(i,j)/Total as the cell's probability mass.
func (m *Matrix) Fraction(i, j int) float64 {
	return float64(m.Count(i, j)) / float64(m.total)
}

// Labels returns a copy of the class labels, index-aligned with rows and
// columns.
func (m *Matrix) Labels() []string {
	out := make([]string, m.n)
	copy(out, m.labels)

	return out
}

// Counts returns a deep copy of the underlying counts.
func (m *Matrix) Counts() [][]int {
	out := make([][]int, m.n)
	for i, row := range m.counts {
		out[i] = make([]int, m.n)
		copy(out[i], row)
	}

	return out
}

// InBand reports whether cell (i,j) lies in the diagonal band of
// half-width k, i.e. |i−j| ≤ k.
func InBand(i, j, k int) bool {
	d := i - j
	if d < 0 {
		d = -d
	}

	return d <= k
}

// ValidateBandWidth checks 0 ≤ k ≤ n−1 and returns ErrBandWidth otherwise.
// Shared by the statistics here and the rendering path in heatgrid.
func ValidateBandWidth(n, k int) error {
	if k < 0 || k > n-1 {
		return fmt.Errorf("%w: k=%d, want 0 ≤ k ≤ %d", ErrBandWidth, k, n-1)
	}

	return nil
}
