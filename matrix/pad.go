// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// PadSquare embeds m into the top-left corner of an n×n zero matrix where
// n = max(m.Rows(), m.Cols()). Padding cells are 0.
//
// Implementation:
//   - Stage 1: validate m (non-nil, positive shape).
//   - Stage 2: allocate the square Dense and open a View over its r×c corner.
//   - Stage 3: copy m through the view so every value passes the finite-only policy.
//
// The result never aliases m.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf, or any error from m.At.
//
// Complexity: Time O(n²), Space O(n²).
func PadSquare(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := ValidateShape(m); err != nil {
		return nil, err
	}

	rows, cols := m.Rows(), m.Cols()
	n := max(rows, cols)
	sq, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	clip, err := sq.View(0, 0, rows, cols)
	if err != nil {
		return nil, err
	}
	if err = CopyInto[float64](clip, m); err != nil {
		return nil, fmt.Errorf("PadSquare: %w", err)
	}

	return sq, nil
}

// CopyInto copies every element of src into dst. Shapes must match exactly.
//
// Errors:
//   - ErrDimensionMismatch (wrapped) on shape mismatch; any At/Set error otherwise.
func CopyInto[T Element](dst, src Grid[T]) error {
	if dst.Rows() != src.Rows() || dst.Cols() != src.Cols() {
		return fmt.Errorf("CopyInto: %dx%d <- %dx%d: %w",
			dst.Rows(), dst.Cols(), src.Rows(), src.Cols(), ErrDimensionMismatch)
	}

	var i, j int
	var v T
	var err error
	for i = 0; i < src.Rows(); i++ {
		for j = 0; j < src.Cols(); j++ {
			if v, err = src.At(i, j); err != nil {
				return err
			}
			if err = dst.Set(i, j, v); err != nil {
				return err
			}
		}
	}

	return nil
}
