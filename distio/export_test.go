// SPDX-License-Identifier: MIT

package distio

// CheckOrder exposes checkOrder so the size limit can be tested without
// allocating a MaxOrder² matrix.
var CheckOrder = checkOrder
