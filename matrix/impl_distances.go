// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Convert adjacency (0 = no edge, w = weight) into the distance policy
//     expected by min-plus kernels: diag 0, missing edges +Inf.
//
// Contract:
//   - Works in place; O(n²); fixed row-major traversal.

package matrix

import "math"

const opInitDistances = "InitDistancesInPlace"

// InitDistancesInPlace converts adjacency (0 / w) → distance matrix in place:
//
//	diag = 0; off-diagonal 0 → +Inf; non-zero → unchanged.
//
// Errors: ErrNilMatrix.
// Complexity: O(n²).
func InitDistancesInPlace(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opInitDistances, err)
	}

	inf := float32(math.Inf(1))
	n := m.n
	data := m.data
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			if i == j {
				// Distance from a node to itself is zero.
				data[base+j] = 0
				continue
			}
			if data[base+j] == 0 {
				// No direct edge: "no path" until a kernel finds one.
				data[base+j] = inf
			}
		}
	}

	return nil
}
