// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with call-site
// context via %w); tests match them with errors.Is. No function panics on
// user-triggered error conditions.
package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required (coordinates, Set under the finite-only policy).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
