// SPDX-License-Identifier: MIT

package verify

import "math"

// Defaults (single source of truth).
const (
	DefaultAbsTolerance  = 0.0
	DefaultRelTolerance  = 0.0
	DefaultMaxMismatches = 16
	DefaultWorkers       = 0 // 0 ⇒ GOMAXPROCS
)

const (
	panicToleranceInvalid     = "verify: WithTolerance: tolerances must be finite and >= 0"
	panicMaxMismatchesInvalid = "verify: WithMaxMismatches: k must be >= 0"
	panicWorkersInvalid       = "verify: WithWorkers: workers must be >= 1"
)

// Option configures Compare.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	abs, rel      float64
	maxMismatches int
	workers       int
}

// WithTolerance sets the absolute and relative tolerance for finite cells.
// Panics on negative or non-finite values.
func WithTolerance(abs, rel float64) Option {
	if !isFiniteNonNeg(abs) || !isFiniteNonNeg(rel) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.abs, o.rel = abs, rel }
}

// WithMaxMismatches caps how many mismatching cells Report.First records.
// Counting is never capped.
func WithMaxMismatches(k int) Option {
	if k < 0 {
		panic(panicMaxMismatchesInvalid)
	}

	return func(o *Options) { o.maxMismatches = k }
}

// WithWorkers sets how many row ranges are scanned concurrently.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		abs:           DefaultAbsTolerance,
		rel:           DefaultRelTolerance,
		maxMismatches: DefaultMaxMismatches,
		workers:       DefaultWorkers,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func isFiniteNonNeg(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
