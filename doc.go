// Package tropical computes min-plus ("tropical") products of dense
// single-precision distance matrices.
//
// One squaring step replaces every cell with the cheapest two-hop route:
//
//	r[i][j] = min over k of d[i][k] + d[k][j]
//
// +Inf marks an unreachable pair. Repeating the step log2(n) times yields
// all-pairs shortest paths.
//
// Under the hood the repository is organized as:
//
//	matrix/       Dense n×n float32 storage, options, validators
//	minplus/      the baseline kernel (serial, row-parallel, reusable Kernel)
//	apsp/         repeated-squaring closure and a Floyd–Warshall reference
//	verify/       float64 reference product and tolerance-aware comparison
//	gen/          seeded random distance matrices
//	distio/       binary matrix dump format with optional zstd compression
//	cmd/minplus/  timing and verification harness
//
// Quick start:
//
//	d, _ := gen.Random(512, gen.WithDensity(0.3))
//	r, _ := matrix.NewDense(d.N())
//	_ = minplus.StepMatrix(r, d)
package tropical
