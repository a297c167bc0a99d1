// SPDX-License-Identifier: MIT

// Package cpuinfo reports the SIMD features of the host CPU so benchmark logs
// can tell which instruction sets a timing was taken on.
package cpuinfo

import (
	"log/slog"
	"runtime"
	"strings"
)

// Features lists the detected instruction-set extensions relevant to float32
// min/add kernels.
type Features struct {
	Arch string
	// x86-64
	SSE41, AVX2, FMA, AVX512F bool
	// arm64
	ASIMD, SVE bool
}

var detected = detect()

// Detect returns the features of the running CPU. The result is computed once.
func Detect() Features { return detected }

// Names returns the enabled features in a fixed order.
func (f Features) Names() []string {
	var out []string
	add := func(on bool, name string) {
		if on {
			out = append(out, name)
		}
	}
	add(f.SSE41, "sse4.1")
	add(f.AVX2, "avx2")
	add(f.FMA, "fma")
	add(f.AVX512F, "avx512f")
	add(f.ASIMD, "asimd")
	add(f.SVE, "sve")

	return out
}

// String renders "arch[feat,feat]".
func (f Features) String() string {
	return f.Arch + "[" + strings.Join(f.Names(), ",") + "]"
}

// LogValue implements slog.LogValuer.
func (f Features) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("arch", f.Arch),
		slog.Int("cpus", runtime.NumCPU()),
		slog.String("features", strings.Join(f.Names(), ",")),
	)
}
