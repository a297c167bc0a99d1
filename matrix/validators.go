// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the checks kernels and
//    drivers run before touching raw buffers.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap uniformly and tests can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.
//  - Shape and alias checks are O(1); symmetry is O(n²) on the upper triangle.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Shape → Alias.

package matrix

import (
	"fmt"
	"unsafe"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal order.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.n != b.n {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFlat checks that buf can hold an n×n row-major matrix exactly.
//
// Errors: ErrBadShape if n < 0, ErrDimensionMismatch if len(buf) != n².
// Complexity: O(1).
func ValidateFlat(buf []float32, n int) error {
	if n < 0 {
		return validatorErrorf("ValidateFlat", ErrBadShape)
	}
	if len(buf) != n*n {
		return validatorErrorf("ValidateFlat", ErrDimensionMismatch)
	}

	return nil
}

// ValidateNoAlias returns ErrAliased when the two buffers share any element.
// Empty buffers never alias.
// Complexity: O(1).
func ValidateNoAlias(dst, src []float32) error {
	if Overlaps(dst, src) {
		return validatorErrorf("ValidateNoAlias", ErrAliased)
	}

	return nil
}

// Overlaps reports whether a and b share at least one element of memory.
func Overlaps(a, b []float32) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	const size = unsafe.Sizeof(float32(0))
	pa := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	pb := uintptr(unsafe.Pointer(unsafe.SliceData(b)))

	return pa < pb+uintptr(len(b))*size && pb < pa+uintptr(len(a))*size
}

// ValidateStepOperands runs the composite check for a min-plus step
// r = d ⊗ d: both non-nil, same order, disjoint storage.
// Complexity: O(1).
func ValidateStepOperands(r, d *Dense) error {
	if err := ValidateNotNil(r); err != nil {
		return err
	}
	if err := ValidateNotNil(d); err != nil {
		return err
	}
	if err := ValidateSameShape(r, d); err != nil {
		return err
	}

	return ValidateNoAlias(r.data, d.data)
}

// ValidateSymmetric checks m[i,j] == m[j,i] for all i<j (bitwise, NaN == NaN).
// Complexity: O(n²/2).
func ValidateSymmetric(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	n := m.n
	var i, j int
	var a, b float32
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, b = m.data[i*n+j], m.data[j*n+i]
			if a != b && (a == a || b == b) {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
