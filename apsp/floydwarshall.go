// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Dense float32 Floyd–Warshall with deterministic loop order, used as an
//     independent oracle for Closure.
//
// Contract:
//   - +Inf means "no path"; the diagonal MUST be <= 0 before calling.

package apsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tropical/matrix"
)

const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes all-pairs shortest paths in place on d.
//
// Determinism:
//   - Loop order is fixed (k → i → j); relaxation only on strict improvement.
//
// Errors:
//   - matrix.ErrNilMatrix; ErrNegativeCycle if a diagonal cell ends negative
//     (d then holds partially relaxed values).
//
// Complexity: Time O(n³), Extra space O(1).
func FloydWarshall(d *matrix.Dense) error {
	if err := matrix.ValidateNotNil(d); err != nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, err)
	}

	n := d.N()
	data := d.Data()

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float32
	)
	for k = 0; k < n; k++ { // intermediate vertex
		baseK = k * n
		for i = 0; i < n; i++ { // source
			ik = data[i*n+k]
			if math.IsInf(float64(ik), 1) { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ { // destination
				kj = data[baseK+j]
				if math.IsInf(float64(kj), 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	for i = 0; i < n; i++ {
		if data[i*n+i] < 0 {
			return fmt.Errorf("%s: node %d: %w", opFloydWarshall, i, ErrNegativeCycle)
		}
	}

	return nil
}
