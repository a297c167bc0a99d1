// SPDX-License-Identifier: MIT

package apsp

import "errors"

// ErrNegativeCycle indicates that the input graph contains a cycle of negative
// total weight, so shortest distances are unbounded.
var ErrNegativeCycle = errors.New("apsp: negative cycle detected")
