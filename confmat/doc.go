// Package confmat defines the confusion-matrix data model and its
// tolerance-banded accuracy statistics.
//
// What:
//
//   - Matrix wraps a validated n×n grid of non-negative integer counts with
//     one class label per row/column index (rows = actual class, columns =
//     predicted class). It is immutable once built.
//   - BandAccuracy computes the probability mass captured by the diagonal
//     band {(i,j): |i−j| ≤ k}, together with the closed-form mass a
//     uniform-random classifier would place in the same band.
//   - FromDense adapts a gonum mat.Dense of float counts, rejecting
//     non-integer, negative, or non-finite entries.
//
// Why:
//
//   - Ordinal classification: predictions one class off are often "close
//     enough"; the band half-width k makes that tolerance explicit.
//   - Chance baseline: Expected answers "how much band mass would random
//     guessing capture?", so Accuracy can be judged against it.
//
// Invariants (enforced at construction, assumed everywhere else):
//
//   - n ≥ 1, all rows of length n, every count ≥ 0, total > 0.
//   - len(labels) == n (defaulting to class_1..class_n when absent).
//   - 0 ≤ k ≤ n−1 for every band operation.
//
// Complexity:
//
//   - New/FromDense: O(n²) time and memory (deep copy).
//   - BandAccuracy:  O(n·k) time, O(1) memory.
//
// Errors:
//
//   - ErrInvalidMatrix: non-square, empty, negative/non-integer counts, or
//     an all-zero matrix (total must be positive).
//   - ErrInvalidLabels: label count does not match the dimension.
//   - ErrBandWidth: band half-width outside [0, n−1].
package confmat
