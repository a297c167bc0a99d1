// SPDX-License-Identifier: MIT
// Package: minplus
//
// Purpose:
//   - The reference min-plus squaring kernel over raw row-major buffers.
//
// Contract:
//   - r and d hold n² float32 values each and do not overlap.
//   - Every cell of r is written exactly once; d is never written.

package minplus

import "math"

// Min returns b if b < a, else a.
//
// This is the minimum every kernel in this module must reproduce:
//   - NaN in b never wins (b < a is false); NaN in a is kept.
//   - Ties keep a, so Min(+0, -0) == +0 and Min(-0, +0) == -0.
//
// The builtin min is not used because it propagates NaN from either side.
func Min(a, b float32) float32 {
	if b < a {
		return b
	}

	return a
}

// Step computes r = d ⊗ d (min-plus) with rows split across GOMAXPROCS
// workers of a shared, lazily created pool.
//
// n == 0 is a no-op. See the package doc for preconditions.
func Step(r, d []float32, n int) {
	defaultKernel().Step(r, d, n)
}

// StepSerial computes r = d ⊗ d on the calling goroutine.
func StepSerial(r, d []float32, n int) {
	StepRows(r, d, n, 0, n)
}

// StepRows computes rows [lo, hi) of r = d ⊗ d and touches no other row of r.
// It is the unit of work each parallel worker runs.
//
// Loop order is fixed (i → j → k) and the reduction over k is sequential.
// No allocations inside the loops.
func StepRows(r, d []float32, n, lo, hi int) {
	inf := float32(math.Inf(1))

	var (
		i, j, k int     // loop indices
		baseI   int     // offset of row i
		v       float32 // running minimum for (i,j)
		x, y    float32 // d[i,k], d[k,j]
	)
	for i = lo; i < hi; i++ {
		baseI = n * i
		for j = 0; j < n; j++ {
			v = inf
			for k = 0; k < n; k++ {
				x = d[baseI+k]
				y = d[n*k+j]
				v = Min(v, x+y)
			}
			r[baseI+j] = v
		}
	}
}
