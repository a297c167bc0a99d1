// SPDX-License-Identifier: MIT

//go:build amd64

package cpuinfo

import "golang.org/x/sys/cpu"

func detect() Features {
	return Features{
		Arch:    "amd64",
		SSE41:   cpu.X86.HasSSE41,
		AVX2:    cpu.X86.HasAVX2,
		FMA:     cpu.X86.HasFMA,
		AVX512F: cpu.X86.HasAVX512F,
	}
}
