// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense and validator tests.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/stretchr/testify/require"
)

// inf is the float32 "no path" sentinel.
var inf = float32(math.Inf(1))

// MustDense ALLOCATES an n×n *Dense or fails the test.
func MustDense(t *testing.T, n int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, opts...)
	require.NoError(t, err, "NewDense(%d)", n)

	return m
}

// MustFrom wraps rows (a literal square fixture) into a *Dense or fails the test.
func MustFrom(t *testing.T, rows [][]float32) *matrix.Dense {
	t.Helper()
	n := len(rows)
	flat := make([]float32, 0, n*n)
	for i, r := range rows {
		require.Len(t, r, n, "row %d must have %d columns", i, n)
		flat = append(flat, r...)
	}
	m, err := matrix.NewDenseFrom(n, flat)
	require.NoError(t, err)

	return m
}
