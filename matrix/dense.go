// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer unchecked fast paths (Get, Row) for solver hot loops whose indices were
//     validated once up front.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Get: O(1); Row: O(1); Clone: O(r*c).
package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices,
// preserving the sentinel via %w.
//
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - finiteOnly rejects NaN/±Inf in Set when true.
type Dense struct {
	r, c       int       // row and column counts (> 0)
	data       []float64 // contiguous row-major storage (len == r*c)
	finiteOnly bool      // numeric guard for Set
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Set on the returned matrix rejects NaN and ±Inf (ErrNaNInf).
//
// Errors:
//   - ErrInvalidDimensions if rows<=0 or cols<=0.
//
// Complexity: O(r*c) time and space.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the buffer deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:          rows,
		c:          cols,
		data:       buf,
		finiteOnly: true,
	}, nil
}

// NewSquare is shorthand for NewDense(n, n).
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Size returns the order of a square matrix (Rows()). Solver code calls it
// after the shape was validated as square.
func (m *Dense) Size() int { return m.r }

// indexOf validates (row, col) and returns the flat offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.finiteOnly && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Get is the unchecked counterpart of At. Out-of-range indices panic like a
// slice access; callers use it only after validating the shape.
func (m *Dense) Get(row, col int) float64 { return m.data[row*m.c+col] }

// Row returns the backing slice of row i (no copy). Callers must treat it as
// read-only.
func (m *Dense) Row(i int) []float64 { return m.data[i*m.c : (i+1)*m.c] }

// Clone returns a deep copy (new buffer, same numeric policy).
//
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.CloneDense()
}

// CloneDense is Clone with the concrete return type.
func (m *Dense) CloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:          m.r,
		c:          m.c,
		data:       cp,
		finiteOnly: m.finiteOnly,
	}
}

// IsSymmetric reports whether m is square and |a_ij − a_ji| ≤ tol for all i<j.
//
// Complexity: O(n²).
func (m *Dense) IsSymmetric(tol float64) bool {
	if m.r != m.c {
		return false
	}
	var (
		i, j int
		diff float64
	)
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			diff = m.data[i*m.c+j] - m.data[j*m.c+i]
			if diff < 0 {
				diff = -diff
			}
			if diff > tol {
				return false
			}
		}
	}

	return true
}

// Equal reports whether a and b have the same shape and bit-identical entries.
//
// Complexity: O(r*c).
func (m *Dense) Equal(b *Dense) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	var i int
	for i = range m.data {
		if math.Float64bits(m.data[i]) != math.Float64bits(b.data[i]) {
			return false
		}
	}

	return true
}

// String renders the matrix one row per line, e.g. "[0, 1]\n[1, 0]\n".
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
