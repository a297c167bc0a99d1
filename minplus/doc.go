// Package minplus computes one min-plus ("tropical") product of a square
// distance matrix with itself:
//
//	r[i][j] = min over k of (d[i][k] + d[k][j])
//
// It is the reference kernel for all-pairs shortest paths by repeated
// squaring: simple, obviously correct, and the baseline that faster variants
// (blocked, vectorized, tiled) are differentially tested against.
//
// Numeric semantics:
//
//   - Matrices are float32, row-major, element (i,j) at offset n*i + j.
//   - Each cell starts at +Inf ("no path found yet").
//   - Candidates d[i][k] + d[k][j] are float32 additions, k = 0..n-1 in order,
//     so +Inf absorbs finite values and +Inf + (-Inf) is NaN.
//   - The running minimum is Min(acc, cand): cand replaces acc only when
//     cand < acc. NaN candidates are therefore ignored and on ties the lower
//     k wins (+0 followed by -0 keeps +0). A cell whose every candidate is NaN
//     or +Inf stays +Inf; the kernel never writes NaN.
//
// Parallelism:
//
//	Rows are independent. Step splits [0, n) into contiguous row ranges, one
//	per worker; the input is shared read-only and every worker writes only its
//	own rows of r. The reduction over k inside a row is always sequential, so
//	results are bit-identical for any worker count.
//
// Preconditions of the raw API (Step, StepSerial, StepRows): n >= 0,
// len(d) >= n², len(r) >= n², and r and d must not overlap. They are not
// checked; use StepMatrix for a validated entry point.
//
// Complexity: O(n³) time, O(1) extra space.
package minplus
