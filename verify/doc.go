// Package verify provides the differential-testing side of the kernel
// harness: a higher-precision reference min-plus product and a parallel,
// cancellable cell-by-cell comparison of two result matrices.
//
// Match rule for a (want, got) cell pair:
//
//   - NaN matches only NaN;
//   - an infinity matches only the same infinity;
//   - finite values match when |want-got| <= Abs + Rel*max(|want|, |got|).
//
// Defaults are an exact match (Abs = Rel = 0), which is what two kernels with
// the same float32 semantics must produce.
package verify
