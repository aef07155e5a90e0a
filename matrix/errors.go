// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Accessors and validators return these sentinels (optionally wrapped
// with coordinates via %w) and tests check them via errors.Is. No public method
// panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so that wrapped chains stay
// greppable. Return sentinels directly where no context exists; otherwise wrap
// with fmt.Errorf("ctx: %w", ErrX).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a destination container whose shape differs from the expected one.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative entry where non-negative values are required.
	ErrNegative = errors.New("matrix: negative value encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRagged indicates that a row-slice literal has rows of unequal length.
	ErrRagged = errors.New("matrix: ragged rows")
)
