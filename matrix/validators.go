// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep algorithms minimal by delegating nil/shape/value checks here.
//   - Return sentinel errors wrapped with a validator tag (and coordinates for
//     value checks) so call sites can match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; value scans run row-major and
//     report the first offending cell.
//
// Note:
//   - Each validator documents what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures both dimensions are positive.
// Assumes m is not nil.
// Complexity: O(1).
func ValidateShape(m Matrix) error {
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}

	return nil
}

// ValidateFinite scans m and rejects the first NaN or ±Inf entry.
// Assumes m is not nil.
//
// Errors: ErrNaNInf wrapped with the coordinates of the offending cell,
// or the error of a failing At.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	return scanValues(m, "ValidateFinite", func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}

		return nil
	})
}

// ValidateNonNegative scans m and rejects the first entry < 0.
// Assumes m is not nil. NaN is not reported here; pair with ValidateFinite.
//
// Errors: ErrNegative wrapped with the coordinates of the offending cell.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	return scanValues(m, "ValidateNonNegative", func(v float64) error {
		if v < 0 {
			return ErrNegative
		}

		return nil
	})
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen[T Element](x []T, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// scanValues applies check to every element row-major, stopping at the first failure.
func scanValues(m Matrix, tag string, check func(v float64) error) error {
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return fmt.Errorf("%s: (%d,%d)=%g: %w", tag, i, j, v, err)
			}
		}
	}

	return nil
}
