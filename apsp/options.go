// SPDX-License-Identifier: MIT

package apsp

import (
	"log/slog"

	"github.com/katalvlaran/tropical/minplus"
)

const panicMaxRoundsInvalid = "apsp: WithMaxRounds: rounds must be >= 0"

// Option configures Closure.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	kernel    *minplus.Kernel // nil ⇒ Closure owns a kernel for the call
	workers   []minplus.Option
	logger    *slog.Logger
	maxRounds int // < 0 ⇒ derived from n
}

// WithKernel reuses an existing kernel (and its workers). Closure never
// closes a kernel it did not create.
func WithKernel(k *minplus.Kernel) Option {
	return func(o *Options) { o.kernel = k }
}

// WithWorkers sets the worker count of the kernel Closure creates.
// Ignored together with WithKernel. Panics if workers < 1.
func WithWorkers(workers int) Option {
	w := minplus.WithWorkers(workers)

	return func(o *Options) { o.workers = []minplus.Option{w} }
}

// WithLogger receives one debug record per squaring round.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxRounds caps the number of squarings. 0 returns the input with its
// diagonal clamped to <= 0. Panics if rounds < 0.
func WithMaxRounds(rounds int) Option {
	if rounds < 0 {
		panic(panicMaxRoundsInvalid)
	}

	return func(o *Options) { o.maxRounds = rounds }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:    slog.New(slog.DiscardHandler),
		maxRounds: -1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
