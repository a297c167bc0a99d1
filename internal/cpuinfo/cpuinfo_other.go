// SPDX-License-Identifier: MIT

//go:build !amd64 && !arm64

package cpuinfo

import "runtime"

func detect() Features {
	return Features{Arch: runtime.GOARCH}
}
