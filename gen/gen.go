// SPDX-License-Identifier: MIT
// Package gen builds deterministic random distance matrices for tests,
// benchmarks and the command-line harness.
//
// Canonical model:
//   - Erdős–Rényi-like directed graph: each off-diagonal edge (i,j) is present
//     independently with probability Density and weighs Lo + (Hi-Lo)*U, U in [0,1).
//   - Missing edges are +Inf; the diagonal is 0.
//   - WithSymmetric samples i<j only and mirrors the weight into (j,i).
//
// Determinism:
//   - Same seed and options ⇒ identical matrix on every platform: trials run in
//     fixed (i asc, j asc) order from a single math/rand source.
//   - Seed 0 maps to a fixed default seed; no time-based sources.
package gen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/tropical/matrix"
)

const (
	// DefaultSeed replaces a zero seed.
	DefaultSeed int64 = 1
	// DefaultDensity is the edge probability.
	DefaultDensity = 0.5
	// DefaultLo and DefaultHi bound edge weights.
	DefaultLo float32 = 0
	DefaultHi float32 = 1
)

const methodRandom = "Random"

var (
	// ErrInvalidDensity is returned when the density is outside [0, 1].
	ErrInvalidDensity = errors.New("gen: density must be in [0, 1]")
	// ErrInvalidRange is returned when Lo > Hi or a bound is not finite.
	ErrInvalidRange = errors.New("gen: invalid weight range")
)

// Option configures Random.
type Option func(*config)

type config struct {
	seed      int64
	density   float64
	lo, hi    float32
	symmetric bool
}

// WithSeed fixes the random stream.
func WithSeed(seed int64) Option { return func(c *config) { c.seed = seed } }

// WithDensity sets the edge probability p.
func WithDensity(p float64) Option { return func(c *config) { c.density = p } }

// WithWeightRange sets edge weights to uniform [lo, hi). lo == hi gives
// constant weights; negative bounds are allowed.
func WithWeightRange(lo, hi float32) Option {
	return func(c *config) { c.lo, c.hi = lo, hi }
}

// WithSymmetric produces an undirected graph (symmetric matrix).
func WithSymmetric() Option { return func(c *config) { c.symmetric = true } }

// Random returns an n×n distance matrix sampled from the model above.
//
// Errors: matrix.ErrBadShape (n < 0), ErrInvalidDensity, ErrInvalidRange.
// Complexity: O(n²).
func Random(n int, opts ...Option) (*matrix.Dense, error) {
	c := config{seed: DefaultSeed, density: DefaultDensity, lo: DefaultLo, hi: DefaultHi}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if !(c.density >= 0 && c.density <= 1) {
		return nil, fmt.Errorf("%s: p=%v: %w", methodRandom, c.density, ErrInvalidDensity)
	}
	if isNonFinite(c.lo) || isNonFinite(c.hi) || c.lo > c.hi {
		return nil, fmt.Errorf("%s: [%v,%v): %w", methodRandom, c.lo, c.hi, ErrInvalidRange)
	}
	if c.seed == 0 {
		c.seed = DefaultSeed
	}

	m, err := matrix.NewUnreachable(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}
	rng := rand.New(rand.NewSource(c.seed))
	data := m.Data()
	var i, j int
	var w float32
	for i = 0; i < n; i++ {
		j = 0
		if c.symmetric {
			j = i + 1
		}
		for ; j < n; j++ {
			if i == j || rng.Float64() >= c.density {
				continue
			}
			w = weightAt(c.lo, c.hi, rng.Float32())
			data[n*i+j] = w
			if c.symmetric {
				data[n*j+i] = w
			}
		}
	}

	return m, nil
}

// weightAt maps u in [0,1) onto [lo, hi). The product is formed in float64 and
// a result that rounds up to hi is pulled back to the float32 just below it.
func weightAt(lo, hi, u float32) float32 {
	if lo == hi {
		return lo
	}
	w := float32(float64(lo) + (float64(hi)-float64(lo))*float64(u))
	if w >= hi {
		w = math.Nextafter32(hi, lo)
	}

	return w
}

func isNonFinite(v float32) bool {
	return math.IsNaN(float64(v)) || math.IsInf(float64(v), 0)
}
