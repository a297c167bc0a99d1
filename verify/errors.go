// SPDX-License-Identifier: MIT

package verify

import "errors"

// ErrMismatch is returned by Compare when at least one cell does not match.
var ErrMismatch = errors.New("verify: matrices differ")
