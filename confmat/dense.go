package confmat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FromDense builds a Matrix from a gonum dense matrix of float counts,
// as produced by numeric pipelines that accumulate confusion counts in a
// mat.Dense. Every entry must be a finite non-negative integer value;
// anything else is rejected with ErrInvalidMatrix (the data model is
// strictly integer counts, never rates).
func FromDense(d *mat.Dense, opts Options) (*Matrix, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil dense matrix", ErrInvalidMatrix)
	}
	r, c := d.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: dense matrix is %d×%d, want square", ErrInvalidMatrix, r, c)
	}

	counts := make([][]int, r)
	for i := 0; i < r; i++ {
		counts[i] = make([]int, c)
		for j := 0; j < c; j++ {
			v := d.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
				return nil, fmt.Errorf("%w: non-integer count %v at (%d,%d)", ErrInvalidMatrix, v, i, j)
			}
			counts[i][j] = int(v)
		}
	}

	return New(counts, opts)
}
