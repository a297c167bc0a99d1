// SPDX-License-Identifier: MIT

package gen

// WeightAt exposes weightAt to the external test package.
var WeightAt = weightAt
