// SPDX-License-Identifier: MIT

package minplus

// DefaultWorkers selects GOMAXPROCS workers when no WithWorkers option is given.
const DefaultWorkers = 0

const panicWorkersInvalid = "minplus: WithWorkers: workers must be >= 1"

// Option configures a Kernel or a StepMatrix call.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int // 0 ⇒ GOMAXPROCS
}

// WithWorkers fixes the number of row ranges computed concurrently.
// workers == 1 runs the whole product on the calling goroutine.
// Panics if workers < 1 (programmer error).
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
