// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Numeric policy is per instance and preserved by Clone.
//   - +Inf is ALWAYS legal: it is the "no path" sentinel of distance matrices.
//     Only NaN can be rejected, and only when WithValidateNaN is in effect.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaN toggles NaN rejection in Set and Fill.
	// Off by default: kernels must be able to observe NaN inputs to document
	// their propagation behavior.
	DefaultValidateNaN = false

	// DefaultCopyData controls whether NewDenseFrom copies the caller's slice.
	// false ⇒ the Dense wraps the caller's buffer (zero-copy interop).
	DefaultCopyData = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaN bool // DefaultValidateNaN
	copyData    bool // DefaultCopyData
}

// WithValidateNaN makes Set and Fill reject NaN with ErrNaN.
//
// Notes:
//   - The flag propagates only on creation and is carried by Clone.
func WithValidateNaN() Option {
	return func(o *Options) { o.validateNaN = true }
}

// WithNoValidateNaN disables NaN rejection (default).
func WithNoValidateNaN() Option {
	return func(o *Options) { o.validateNaN = false }
}

// WithCopy makes NewDenseFrom copy the input slice instead of wrapping it.
//
// AI-Hints:
//   - Use when the caller keeps mutating its buffer after construction.
func WithCopy() Option {
	return func(o *Options) { o.copyData = true }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaN: DefaultValidateNaN,
		copyData:    DefaultCopyData,
	}
}

// gatherOptions applies opts in order over the defaults; nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
