// SPDX-License-Identifier: MIT
// Package: minplus
//
// Purpose:
//   - Reusable kernel that owns a persistent worker pool, so repeated squaring
//     (APSP drivers, benchmarks) does not respawn goroutines per call.

package minplus

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/tropical/internal/workerpool"
	"github.com/katalvlaran/tropical/matrix"
)

const opStepMatrix = "StepMatrix"

// Kernel computes min-plus squares on a fixed set of workers.
// It is safe for concurrent use, and Close may be called while Steps are
// running; Close releases the workers.
type Kernel struct {
	pool *workerpool.Pool
}

// NewKernel creates a Kernel. Without WithWorkers it uses GOMAXPROCS workers.
func NewKernel(opts ...Option) *Kernel {
	o := gatherOptions(opts...)

	return &Kernel{pool: workerpool.New(o.workers)}
}

var defaultKernel = sync.OnceValue(func() *Kernel { return NewKernel() })

// Workers reports how many row ranges a Step is split into at most.
func (k *Kernel) Workers() int {
	return k.pool.Workers()
}

// Close stops the workers. Step keeps working afterwards, sequentially.
func (k *Kernel) Close() {
	k.pool.Close()
}

// Step computes r = d ⊗ d over raw buffers; see the package doc for
// preconditions. Rows are split into contiguous ranges, one per worker.
func (k *Kernel) Step(r, d []float32, n int) {
	if n <= 0 {
		return
	}
	k.pool.ParallelFor(n, func(lo, hi int) {
		StepRows(r, d, n, lo, hi)
	})
}

// StepMatrix computes r = d ⊗ d after validating the operands.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrAliased.
func (k *Kernel) StepMatrix(r, d *matrix.Dense) error {
	if err := matrix.ValidateStepOperands(r, d); err != nil {
		return fmt.Errorf("%s: %w", opStepMatrix, err)
	}
	k.Step(r.Data(), d.Data(), d.N())

	return nil
}

// StepMatrix is the validated one-shot entry point. Without options it runs on
// the shared default kernel; WithWorkers(1) runs serially; other worker counts
// use a short-lived kernel.
func StepMatrix(r, d *matrix.Dense, opts ...Option) error {
	o := gatherOptions(opts...)
	switch o.workers {
	case DefaultWorkers:
		return defaultKernel().StepMatrix(r, d)
	case 1:
		if err := matrix.ValidateStepOperands(r, d); err != nil {
			return fmt.Errorf("%s: %w", opStepMatrix, err)
		}
		StepSerial(r.Data(), d.Data(), d.N())

		return nil
	default:
		k := NewKernel(opts...)
		defer k.Close()

		return k.StepMatrix(r, d)
	}
}
