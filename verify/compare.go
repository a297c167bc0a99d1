// SPDX-License-Identifier: MIT
// Package: verify
//
// Purpose:
//   - Cell-by-cell comparison of two n×n result buffers, split into contiguous
//     row ranges scanned concurrently; the merged Report is independent of
//     the split.

package verify

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tropical/internal/workerpool"
	"github.com/katalvlaran/tropical/matrix"
)

const opCompare = "Compare"

// Mismatch is one differing cell.
type Mismatch struct {
	I, J      int
	Want, Got float32
}

// Report summarizes a comparison.
type Report struct {
	N          int        // matrix order
	Cells      int        // cells compared (n²)
	Mismatches int        // cells failing the match rule
	MaxAbsErr  float64    // largest |want-got| over finite pairs
	First      []Mismatch // first mismatches in row-major order, capped
}

// OK reports whether every cell matched.
func (r Report) OK() bool { return r.Mismatches == 0 }

// String renders a one-line summary plus one line per recorded mismatch.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "n=%d cells=%d mismatches=%d max_abs_err=%g", r.N, r.Cells, r.Mismatches, r.MaxAbsErr)
	for _, m := range r.First {
		fmt.Fprintf(&b, "\n  [%d,%d] want=%g got=%g", m.I, m.J, m.Want, m.Got)
	}

	return b.String()
}

// Compare checks got against want cell by cell.
//
// Errors:
//   - matrix.ErrBadShape / matrix.ErrDimensionMismatch for malformed buffers;
//   - ctx.Err() if ctx is done before the scan finishes;
//   - ErrMismatch (with the full Report) if any cell differs.
func Compare(ctx context.Context, want, got []float32, n int, opts ...Option) (Report, error) {
	if err := matrix.ValidateFlat(want, n); err != nil {
		return Report{}, fmt.Errorf("%s: want: %w", opCompare, err)
	}
	if err := matrix.ValidateFlat(got, n); err != nil {
		return Report{}, fmt.Errorf("%s: got: %w", opCompare, err)
	}
	o := gatherOptions(opts...)
	workers := o.workers
	if workers == DefaultWorkers {
		workers = runtime.GOMAXPROCS(0)
	}

	ranges := workerpool.Split(n, workers)
	parts := make([]Report, len(ranges))
	g, gctx := errgroup.WithContext(ctx)
	for idx, rg := range ranges {
		g.Go(func() error {
			return scanRows(gctx, want, got, n, rg[0], rg[1], &o, &parts[idx])
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("%s: %w", opCompare, err)
	}

	rep := Report{N: n, Cells: n * n}
	for _, p := range parts {
		rep.Mismatches += p.Mismatches
		rep.MaxAbsErr = math.Max(rep.MaxAbsErr, p.MaxAbsErr)
		for _, m := range p.First {
			if len(rep.First) < o.maxMismatches {
				rep.First = append(rep.First, m)
			}
		}
	}
	if !rep.OK() {
		return rep, fmt.Errorf("%s: %d of %d cells: %w", opCompare, rep.Mismatches, rep.Cells, ErrMismatch)
	}

	return rep, nil
}

// CompareDense is Compare over two matrices of equal order.
func CompareDense(ctx context.Context, want, got *matrix.Dense, opts ...Option) (Report, error) {
	if err := matrix.ValidateNotNil(want); err != nil {
		return Report{}, fmt.Errorf("%s: %w", opCompare, err)
	}
	if err := matrix.ValidateNotNil(got); err != nil {
		return Report{}, fmt.Errorf("%s: %w", opCompare, err)
	}
	if err := matrix.ValidateSameShape(want, got); err != nil {
		return Report{}, fmt.Errorf("%s: %w", opCompare, err)
	}

	return Compare(ctx, want.Data(), got.Data(), want.N(), opts...)
}

// scanRows compares rows [lo, hi) into out; ctx is polled once per row.
func scanRows(ctx context.Context, want, got []float32, n, lo, hi int, o *Options, out *Report) error {
	var (
		i, j, off int
		w, g      float32
	)
	for i = lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j = 0; j < n; j++ {
			off = n*i + j
			w, g = want[off], got[off]
			ok, diff := cellMatch(w, g, o.abs, o.rel)
			if diff > out.MaxAbsErr {
				out.MaxAbsErr = diff
			}
			if ok {
				continue
			}
			out.Mismatches++
			if len(out.First) < o.maxMismatches {
				out.First = append(out.First, Mismatch{I: i, J: j, Want: w, Got: g})
			}
		}
	}

	return nil
}

// cellMatch applies the package match rule. diff is |w-g| for finite pairs
// and 0 otherwise.
func cellMatch(w, g float32, abs, rel float64) (bool, float64) {
	wNaN, gNaN := w != w, g != g
	if wNaN || gNaN {
		return wNaN && gNaN, 0
	}
	w64, g64 := float64(w), float64(g)
	if math.IsInf(w64, 0) || math.IsInf(g64, 0) {
		return w == g, 0
	}
	diff := math.Abs(w64 - g64)
	limit := abs + rel*math.Max(math.Abs(w64), math.Abs(g64))

	return diff <= limit, diff
}
