// SPDX-License-Identifier: MIT

package gen_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tropical/gen"
	"github.com/katalvlaran/tropical/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := gen.Random(40, gen.WithSeed(7), gen.WithDensity(0.3))
	require.NoError(t, err)
	b, err := gen.Random(40, gen.WithSeed(7), gen.WithDensity(0.3))
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed ⇒ same matrix")

	c, err := gen.Random(40, gen.WithSeed(8), gen.WithDensity(0.3))
	require.NoError(t, err)
	assert.False(t, a.Equal(c), "different seeds should differ")

	z, err := gen.Random(40, gen.WithSeed(0), gen.WithDensity(0.3))
	require.NoError(t, err)
	d, err := gen.Random(40, gen.WithSeed(gen.DefaultSeed), gen.WithDensity(0.3))
	require.NoError(t, err)
	assert.True(t, z.Equal(d), "seed 0 maps to DefaultSeed")
}

func TestRandom_Shape(t *testing.T) {
	t.Parallel()

	const n = 30
	m, err := gen.Random(n, gen.WithWeightRange(2, 5), gen.WithDensity(0.6))
	require.NoError(t, err)

	edges := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := m.At(i, j)
			switch {
			case i == j:
				assert.Zero(t, v)
			case math.IsInf(float64(v), 1):
			default:
				edges++
				assert.GreaterOrEqual(t, v, float32(2))
				assert.Less(t, v, float32(5))
			}
		}
	}
	assert.Greater(t, edges, 0)
	assert.Less(t, edges, n*(n-1))
}

func TestRandom_DensityExtremes(t *testing.T) {
	t.Parallel()

	empty, err := gen.Random(10, gen.WithDensity(0))
	require.NoError(t, err)
	want, _ := matrix.NewUnreachable(10)
	assert.True(t, want.Equal(empty))

	full, err := gen.Random(10, gen.WithDensity(1), gen.WithWeightRange(3, 3))
	require.NoError(t, err)
	for i, v := range full.Data() {
		if i%11 == 0 {
			assert.Zero(t, v)
		} else {
			assert.Equal(t, float32(3), v)
		}
	}
}

func TestRandom_Symmetric(t *testing.T) {
	t.Parallel()

	m, err := gen.Random(25, gen.WithSymmetric(), gen.WithDensity(0.4), gen.WithWeightRange(-1, 1))
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateSymmetric(m))
}

func TestRandom_Errors(t *testing.T) {
	t.Parallel()

	_, err := gen.Random(-1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = gen.Random(3, gen.WithDensity(1.5))
	assert.ErrorIs(t, err, gen.ErrInvalidDensity)
	_, err = gen.Random(3, gen.WithDensity(math.NaN()))
	assert.ErrorIs(t, err, gen.ErrInvalidDensity)
	_, err = gen.Random(3, gen.WithWeightRange(2, 1))
	assert.ErrorIs(t, err, gen.ErrInvalidRange)
	_, err = gen.Random(3, gen.WithWeightRange(0, float32(math.Inf(1))))
	assert.ErrorIs(t, err, gen.ErrInvalidRange)

	m, err := gen.Random(0)
	require.NoError(t, err)
	assert.Zero(t, m.N())
}

func TestWeightAt_HalfOpen(t *testing.T) {
	t.Parallel()

	top := math.Nextafter32(1, 0) // largest value rng.Float32 can return
	cases := []struct{ lo, hi float32 }{
		{1, 2}, {3, 7}, {-5, 50}, {0.1, 0.3}, {0, 1}, {-1e30, 1e30},
	}
	for _, tc := range cases {
		for _, u := range []float32{0, 0.5, top} {
			w := gen.WeightAt(tc.lo, tc.hi, u)
			assert.GreaterOrEqual(t, w, tc.lo, "[%v,%v) u=%v", tc.lo, tc.hi, u)
			assert.Less(t, w, tc.hi, "[%v,%v) u=%v", tc.lo, tc.hi, u)
		}
		assert.Equal(t, tc.lo, gen.WeightAt(tc.lo, tc.hi, 0))
	}
	assert.Equal(t, float32(4), gen.WeightAt(4, 4, top), "empty range gives the constant")
}
