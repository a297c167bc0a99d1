// SPDX-License-Identifier: MIT

//go:build arm64

package cpuinfo

import "golang.org/x/sys/cpu"

func detect() Features {
	return Features{
		Arch:  "arm64",
		ASIMD: cpu.ARM64.HasASIMD,
		SVE:   cpu.ARM64.HasSVE,
	}
}
