// Package matrix provides the square single-precision distance matrix shared by
// every kernel in this module.
//
// The matrix package provides:
//
//   - Dense, an n×n float32 matrix backed by ONE contiguous row-major slice
//     (element (i,j) at offset n*i + j). Kernels operate on the raw slice
//     returned by Data(); everything else goes through the bounds-checked
//     At/Set accessors.
//   - Distance-policy constructors: NewUnreachable (0 diagonal, +Inf elsewhere)
//     and InitDistancesInPlace (adjacency 0 → +Inf).
//   - Validators used by kernels and drivers: nil, shape, flat-buffer length
//     and aliasing checks.
//
// +Inf denotes "no path known"; n = 0 is a legal, empty matrix.
//
// See the examples in this package for usage patterns.
package matrix
