// Package apsp drives the min-plus kernel to a full all-pairs shortest-path
// closure by repeated squaring, and ships an in-place Floyd–Warshall
// reference for differential checks.
//
// Squaring D (with a zero diagonal) k times yields the best paths of at most
// 2^k edges, so ⌈log2 n⌉ rounds suffice unless a round reaches a fixed point
// first. The kernel itself never checks for negative cycles; Closure does, by
// inspecting the diagonal once squaring stops.
//
//	dist, stats, err := apsp.Closure(ctx, d, apsp.WithWorkers(8))
//	if errors.Is(err, apsp.ErrNegativeCycle) {
//	    // distances are meaningless
//	}
//
// Complexity: O(n³ log n) time for Closure, O(n³) for FloydWarshall;
// Closure allocates two n×n buffers, FloydWarshall none.
package apsp
