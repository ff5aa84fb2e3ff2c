// Package confmat: core types, options, and sentinel errors.
package confmat

import "errors"

// Sentinel errors for confusion-matrix construction and statistics.
// All public APIs return these sentinels (possibly wrapped with context);
// callers match them via errors.Is.
var (
	// ErrInvalidMatrix indicates the counts are not a usable confusion matrix:
	// empty, non-square, a negative or non-integer entry, or a zero total.
	ErrInvalidMatrix = errors.New("confmat: invalid confusion matrix")

	// ErrInvalidLabels indicates the label count differs from the dimension.
	ErrInvalidLabels = errors.New("confmat: labels length must equal matrix dimension")

	// ErrBandWidth indicates a band half-width outside [0, n−1].
	ErrBandWidth = errors.New("confmat: band half-width out of range")
)

// Options contains tunable parameters for matrix construction.
type Options struct {
	// Labels names the n classes, applied symmetrically to rows and columns.
	// When empty, labels default to class_1..class_n.
	Labels []string
}

// DefaultOptions returns Options with default settings: generated labels.
func DefaultOptions() Options {
	return Options{}
}

// Matrix is an immutable n×n confusion matrix of non-negative integer
// counts. Row i is the actual class, column j the predicted class.
// Construct via New or FromDense; the zero value is not usable.
type Matrix struct {
	n      int
	total  int
	counts [][]int
	labels []string
}

// BandAccuracy holds the tolerance-banded accuracy statistic for one
// matrix and band half-width.
type BandAccuracy struct {
	// Accuracy is the empirical probability mass inside the band:
	// Σ_{|i−j|≤k} count / total.
	Accuracy float64

	// Expected is the band mass under uniform-random classification:
	// 1 − (n−k−1)(n−k)/n².
	Expected float64
}
