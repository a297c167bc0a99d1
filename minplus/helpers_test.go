// SPDX-License-Identifier: MIT

package minplus_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/stretchr/testify/require"
)

var (
	inf  = float32(math.Inf(1))
	ninf = float32(math.Inf(-1))
	nan  = float32(math.NaN())
)

// flatten turns a literal square fixture into a row-major buffer.
func flatten(t testing.TB, rows [][]float32) []float32 {
	t.Helper()
	n := len(rows)
	out := make([]float32, 0, n*n)
	for _, r := range rows {
		require.Len(t, r, n)
		out = append(out, r...)
	}

	return out
}

// randomDistances fills an n×n buffer deterministically: diag 0, each
// off-diagonal edge present with probability p and weight in [lo, hi),
// +Inf otherwise.
func randomDistances(n int, p float64, lo, hi float32, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	d := make([]float32, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				d[n*i+j] = 0
			case rng.Float64() < p:
				d[n*i+j] = lo + (hi-lo)*rng.Float32()
			default:
				d[n*i+j] = inf
			}
		}
	}

	return d
}

// bruteForce64 recomputes the min-plus square in float64 with a plain
// comparison loop, independent of the package under test.
func bruteForce64(d []float32, n int) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			best := math.Inf(1)
			for k := 0; k < n; k++ {
				c := float64(d[n*i+k]) + float64(d[n*k+j])
				if c < best {
					best = c
				}
			}
			out[n*i+j] = best
		}
	}

	return out
}

// mustWrap wraps a flat buffer into a *matrix.Dense.
func mustWrap(t testing.TB, n int, data []float32) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(n, data)
	require.NoError(t, err)

	return m
}
