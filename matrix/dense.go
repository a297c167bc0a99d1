// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, square, float32) & safe accessors.
//
// Purpose:
//   - Own a single contiguous buffer of n² float32 values with the explicit
//     index formula n*i + j, the layout every min-plus kernel variant shares.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Kernels take Data() and index it directly; the accessors are for
//     fixtures, harnesses and diagnostics.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone: O(n²); Equal: O(n²).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxFill = "Fill"
	ctxRow  = "Row"
)

const (
	opNewDense     = "NewDense"
	opNewDenseFrom = "NewDenseFrom"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaN)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square row-major matrix of float32 values.
//   - n is the order (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order (offset = n*i + j).
//   - validateNaN enables optional NaN rejection in Set/Fill.
type Dense struct {
	n           int       // order (>= 0)
	data        []float32 // contiguous row-major storage (len == n*n)
	validateNaN bool      // numeric guard: reject NaN in Set/Fill when true
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an n×n zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate n >= 0; else ErrBadShape.
//   - Stage 2: allocate zero-filled buffer and resolve numeric policy.
//
// Behavior highlights:
//   - n == 0 is legal and yields an empty matrix (the kernels treat it as a no-op).
//
// Errors:
//   - ErrBadShape (n < 0).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDense(n int, opts ...Option) (*Dense, error) {
	if n < 0 {
		return nil, matrixErrorf(opNewDense, ErrBadShape)
	}
	o := gatherOptions(opts...)

	return &Dense{
		n:           n,
		data:        make([]float32, n*n),
		validateNaN: o.validateNaN,
	}, nil
}

// NewDenseFrom builds an n×n Dense over a flat row-major slice of length n².
//
// Behavior highlights:
//   - Zero-copy by default: the Dense shares data with the caller. Use WithCopy
//     for an independent buffer.
//   - Under WithValidateNaN the input is scanned once and NaN is rejected.
//
// Errors:
//   - ErrBadShape (n < 0), ErrDimensionMismatch (len(data) != n²), ErrNaN.
//
// Complexity:
//   - Time O(1) wrap or O(n²) copy/scan, Space O(0) or O(n²).
func NewDenseFrom(n int, data []float32, opts ...Option) (*Dense, error) {
	if n < 0 {
		return nil, matrixErrorf(opNewDenseFrom, ErrBadShape)
	}
	if len(data) != n*n {
		return nil, fmt.Errorf("%s: len=%d, want %d: %w", opNewDenseFrom, len(data), n*n, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	if o.validateNaN {
		if idx := indexOfNaN(data); idx >= 0 {
			return nil, denseErrorf(opNewDenseFrom, idx/n, idx%n, ErrNaN)
		}
	}
	buf := data
	if o.copyData {
		buf = make([]float32, len(data))
		copy(buf, data)
	}

	return &Dense{n: n, data: buf, validateNaN: o.validateNaN}, nil
}

// NewUnreachable returns the n×n distance matrix of a graph with no edges:
// 0 on the diagonal and +Inf everywhere else. It is the fixed point of
// min-plus squaring.
// Complexity: O(n²).
func NewUnreachable(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, opts...)
	if err != nil {
		return nil, err
	}
	inf := float32(math.Inf(1))
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			if i != j {
				m.data[base+j] = inf
			}
		}
	}

	return m, nil
}

// N returns the matrix order. Complexity: O(1).
func (m *Dense) N() int { return m.n }

// Rows returns the row count (== N). Complexity: O(1).
func (m *Dense) Rows() int { return m.n }

// Cols returns the column count (== N). Complexity: O(1).
func (m *Dense) Cols() int { return m.n }

// Data exposes the row-major backing slice (len == N²).
// Writes through it bypass the numeric policy.
func (m *Dense) Data() []float32 { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: n*i + j.
	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float32, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaN for NaN under WithValidateNaN.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float32) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaN && v != v {
		return denseErrorf(ctxSet, row, col, ErrNaN)
	}
	m.data[off] = v

	return nil
}

// Row returns row i as a sub-slice of the backing buffer (no copy).
func (m *Dense) Row(i int) ([]float32, error) {
	if i < 0 || i >= m.n {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.n : (i+1)*m.n], nil
}

// Fill overwrites the whole matrix from a row-major slice of length N².
// The matrix is left untouched when an error is returned.
func (m *Dense) Fill(data []float32) error {
	if len(data) != len(m.data) {
		return fmt.Errorf("Dense.%s: len=%d, want %d: %w", ctxFill, len(data), len(m.data), ErrDimensionMismatch)
	}
	if m.validateNaN {
		if idx := indexOfNaN(data); idx >= 0 {
			return denseErrorf(ctxFill, idx/m.n, idx%m.n, ErrNaN)
		}
	}
	copy(m.data, data)

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	cp := make([]float32, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp, validateNaN: m.validateNaN}
}

// Equal reports whether m and o have the same order and bit-identical cells,
// except that any NaN equals any NaN. +0 and -0 are treated as different.
// Complexity: O(n²).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	var a, b float32
	for i := range m.data {
		a, b = m.data[i], o.data[i]
		if a != a && b != b {
			continue
		}
		if math.Float32bits(a) != math.Float32bits(b) {
			return false
		}
	}

	return true
}

// String renders rows as "[a, b, c]\n" lines for diagnostics, cells in the
// shortest float32 form ("%g"). Not for hot paths.
func (m *Dense) String() string {
	var (
		b          strings.Builder
		num        []byte // scratch for one formatted cell
		i, j, base int
	)
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			num = strconv.AppendFloat(num[:0], float64(m.data[base+j]), 'g', -1, 32)
			b.Write(num)
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// indexOfNaN returns the first NaN offset in data, or -1.
func indexOfNaN(data []float32) int {
	for i, v := range data {
		if v != v {
			return i
		}
	}

	return -1
}
