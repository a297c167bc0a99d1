// SPDX-License-Identifier: MIT

package minplus_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tropical/minplus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepFuncs runs every entry point over the same fixtures.
var stepFuncs = map[string]func(r, d []float32, n int){
	"Step":       minplus.Step,
	"StepSerial": minplus.StepSerial,
	"Kernel(3)": func(r, d []float32, n int) {
		k := minplus.NewKernel(minplus.WithWorkers(3))
		defer k.Close()
		k.Step(r, d, n)
	},
}

func TestStep_Golden3x3(t *testing.T) {
	t.Parallel()

	d := flatten(t, [][]float32{
		{0, 5, inf},
		{inf, 0, 3},
		{2, inf, 0},
	})
	want := flatten(t, [][]float32{
		{0, 5, 8},
		{5, 0, 3},
		{2, 7, 0},
	})

	for name, step := range stepFuncs {
		t.Run(name, func(t *testing.T) {
			r := make([]float32, 9)
			step(r, d, 3)
			assert.Equal(t, want, r)
		})
	}
}

func TestStep_EmptyIsNoop(t *testing.T) {
	t.Parallel()

	for name, step := range stepFuncs {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() { step(nil, nil, 0) })

			// Extra capacity past n² must stay untouched.
			r := []float32{42}
			step(r, []float32{1}, 0)
			assert.Equal(t, float32(42), r[0])
		})
	}
}

func TestStep_SingleNode(t *testing.T) {
	t.Parallel()

	for _, v := range []float32{0, 3.5, -2, inf} {
		r := make([]float32, 1)
		minplus.Step(r, []float32{v}, 1)
		assert.Equal(t, v+v, r[0], "only candidate is k=0: d[0,0]+d[0,0]")
	}
}

func TestStep_AllUnreachableStaysInf(t *testing.T) {
	t.Parallel()

	const n = 4
	d := make([]float32, n*n)
	for i := range d {
		d[i] = inf
	}
	r := make([]float32, n*n)
	minplus.Step(r, d, n)
	for i, v := range r {
		assert.True(t, math.IsInf(float64(v), 1), "cell %d = %v", i, v)
	}
}

func TestStep_NegativeWeights(t *testing.T) {
	t.Parallel()

	d := flatten(t, [][]float32{
		{0, -1, 4},
		{inf, 0, -2},
		{1, inf, 0},
	})
	r := make([]float32, 9)
	minplus.Step(r, d, 3)

	want := flatten(t, [][]float32{
		{0, -1, -3},
		{-1, 0, -2},
		{1, 0, 0},
	})
	assert.Equal(t, want, r)
}

func TestStep_MatchesFloat64BruteForce(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		n    int
		p    float64
		lo   float32
		hi   float32
		seed int64
	}{
		{n: 5, p: 0.5, lo: 0, hi: 10, seed: 1},
		{n: 17, p: 0.3, lo: 1, hi: 100, seed: 2},
		{n: 33, p: 0.8, lo: -5, hi: 50, seed: 3},
		{n: 64, p: 1.0, lo: 0, hi: 1, seed: 4},
	} {
		d := randomDistances(tc.n, tc.p, tc.lo, tc.hi, tc.seed)
		r := make([]float32, tc.n*tc.n)
		minplus.Step(r, d, tc.n)
		want := bruteForce64(d, tc.n)

		for idx := range r {
			got, exp := float64(r[idx]), want[idx]
			if math.IsInf(exp, 1) {
				require.True(t, math.IsInf(got, 1), "n=%d cell %d: got %v want +Inf", tc.n, idx, got)
				continue
			}
			require.InDelta(t, exp, got, 1e-5*math.Max(1, math.Abs(exp)), "n=%d cell %d", tc.n, idx)
		}
	}
}

func TestMin_Semantics(t *testing.T) {
	t.Parallel()

	negZero := float32(math.Copysign(0, -1))

	assert.Equal(t, float32(1), minplus.Min(1, 2))
	assert.Equal(t, float32(1), minplus.Min(2, 1))
	assert.Equal(t, float32(3), minplus.Min(3, nan), "NaN candidate never wins")
	assert.True(t, math.IsNaN(float64(minplus.Min(nan, 3))), "NaN accumulator is kept")
	assert.False(t, math.Signbit(float64(minplus.Min(0, negZero))), "tie keeps the accumulator (+0)")
	assert.True(t, math.Signbit(float64(minplus.Min(negZero, 0))), "tie keeps the accumulator (-0)")
	assert.Equal(t, ninf, minplus.Min(inf, ninf))
}

func TestStep_NaNCandidatesAreIgnored(t *testing.T) {
	t.Parallel()

	d := flatten(t, [][]float32{
		{0, nan},
		{1, 0},
	})
	r := make([]float32, 4)
	minplus.Step(r, d, 2)

	assert.Equal(t, float32(0), r[0], "0+0 beats NaN+1")
	assert.True(t, math.IsInf(float64(r[1]), 1), "every candidate NaN ⇒ cell stays +Inf")
	assert.Equal(t, float32(1), r[2])
	assert.Equal(t, float32(0), r[3])
	for i, v := range r {
		assert.False(t, math.IsNaN(float64(v)), "kernel never writes NaN (cell %d)", i)
	}
}

func TestStep_InfPlusNegInfIsIgnored(t *testing.T) {
	t.Parallel()

	d := flatten(t, [][]float32{
		{ninf, inf},
		{ninf, 5},
	})
	r := make([]float32, 4)
	minplus.Step(r, d, 2)

	// (0,0): -Inf + -Inf, then Inf + -Inf = NaN (skipped).
	assert.Equal(t, ninf, r[0])
	// (0,1): -Inf + Inf = NaN (skipped), then Inf + 5.
	assert.Equal(t, inf, r[1])
	// (1,0): -Inf + -Inf, then 5 + -Inf.
	assert.Equal(t, ninf, r[2])
	// (1,1): -Inf + Inf = NaN (skipped), then 5 + 5.
	assert.Equal(t, float32(10), r[3])
}

func TestStep_SignedZeroTieKeepsFirst(t *testing.T) {
	t.Parallel()

	negZero := float32(math.Copysign(0, -1))
	// (0,0): k=0 → +0 + +0 = +0; k=1 → -0 + -0 = -0. Tie: the k=0 value stays.
	d := []float32{0, negZero, negZero, 0}
	r := make([]float32, 4)
	minplus.Step(r, d, 2)

	assert.Zero(t, r[0])
	assert.False(t, math.Signbit(float64(r[0])), "first (k=0) operand wins ties")
}
