// SPDX-License-Identifier: MIT

package verify

import "math"

// Reference computes r = d ⊗ d (min-plus) with float64 accumulation and rounds
// each cell to float32 once at the end. It follows the kernel's minimum rule
// (a candidate replaces the running value only when strictly smaller, so NaN
// candidates are ignored) and shares no code with package minplus.
//
// Same preconditions as minplus.Step: len(r), len(d) >= n², no overlap.
// Complexity: O(n³).
func Reference(r, d []float32, n int) {
	var (
		i, j, k int
		best, c float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			best = math.Inf(1)
			for k = 0; k < n; k++ {
				c = float64(d[n*i+k]) + float64(d[n*k+j])
				if c < best {
					best = c
				}
			}
			r[n*i+j] = float32(best)
		}
	}
}
