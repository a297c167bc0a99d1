// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - APSP closure by repeated min-plus squaring on top of minplus.Kernel.
//
// Contract:
//   - +Inf means "no edge"; the input is never modified.
//   - The diagonal is clamped to min(d[i,i], 0) before the first round so that
//     every square keeps the shorter paths it already had.

package apsp

import (
	"context"
	"fmt"
	"math/bits"
	"time"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/minplus"
)

const opClosure = "Closure"

// Stats describes one Closure run.
type Stats struct {
	N         int           // matrix order
	Rounds    int           // squarings performed
	Converged bool          // a round reproduced its input exactly
	Elapsed   time.Duration // wall time spent in the kernel rounds
}

// RoundsFor returns the number of squarings that cover every simple path
// (and every simple cycle) of an n-node graph: ⌈log2 n⌉, 0 for n <= 1.
func RoundsFor(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len(uint(n - 1))
}

// Closure returns the all-pairs shortest-path distances of d.
//
// Implementation:
//   - Stage 1: clone d and clamp the diagonal to <= 0.
//   - Stage 2: square with minplus until a round changes nothing or
//     RoundsFor(n) (or WithMaxRounds) rounds ran; ctx is checked between rounds.
//   - Stage 3: any negative diagonal cell ⇒ ErrNegativeCycle.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNegativeCycle, ctx.Err().
//
// The returned Stats are valid even when an error is returned.
func Closure(ctx context.Context, d *matrix.Dense, opts ...Option) (*matrix.Dense, Stats, error) {
	if err := matrix.ValidateNotNil(d); err != nil {
		return nil, Stats{}, fmt.Errorf("%s: %w", opClosure, err)
	}
	o := gatherOptions(opts...)

	n := d.N()
	stats := Stats{N: n}
	rounds := o.maxRounds
	if rounds < 0 {
		rounds = RoundsFor(n)
	}

	k := o.kernel
	if k == nil {
		k = minplus.NewKernel(o.workers...)
		defer k.Close()
	}

	cur := d.Clone()
	data := cur.Data()
	for i := 0; i < n; i++ {
		data[n*i+i] = minplus.Min(data[n*i+i], 0)
	}
	next, err := matrix.NewDense(n)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", opClosure, err)
	}

	start := time.Now()
	for round := 1; round <= rounds; round++ {
		if err = ctx.Err(); err != nil {
			stats.Elapsed = time.Since(start)
			return nil, stats, fmt.Errorf("%s: round %d: %w", opClosure, round, err)
		}

		k.Step(next.Data(), cur.Data(), n)
		stats.Rounds = round
		cur, next = next, cur

		changed := !cur.Equal(next)
		o.logger.DebugContext(ctx, "min-plus squaring round",
			"n", n,
			"round", round,
			"changed", changed,
		)
		if !changed {
			stats.Converged = true
			break
		}
	}
	stats.Elapsed = time.Since(start)

	data = cur.Data()
	for i := 0; i < n; i++ {
		if data[n*i+i] < 0 {
			return nil, stats, fmt.Errorf("%s: node %d: %w", opClosure, i, ErrNegativeCycle)
		}
	}

	return cur, stats, nil
}
