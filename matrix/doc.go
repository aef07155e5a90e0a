// SPDX-License-Identifier: MIT

// Package matrix provides the dense, bounds-checked 2D containers that the
// matching solver is written against.
//
// What:
//
//   - Grid[T]: the adapter capability (Rows, Cols, At, Set) for float32,
//     float64, int32 and uint8 elements.
//   - Matrix: Grid[float64] plus Clone; the weight-matrix input type.
//   - Dense: row-major float64 Matrix with a finite-only Set policy,
//     no-copy windows (View) and deterministic visitors (Do, Apply).
//   - Table[T]: row-major generic grid for match vectors and masks.
//   - Gonum: a Matrix view over gonum's *mat.Dense (FromGonum / ToGonum).
//   - PadSquare: embed an r×c matrix into a max(r,c)² zero matrix.
//
// Errors:
//
//   - ErrInvalidDimensions  non-positive shape or bad window
//   - ErrOutOfRange         index outside bounds (At/Set never panic)
//   - ErrDimensionMismatch  incompatible shapes
//   - ErrNaNInf             NaN/±Inf where finite values are required
//   - ErrNegative           negative value where non-negative is required
//   - ErrNilMatrix          nil matrix argument
//   - ErrRagged             row literal with unequal row lengths
//
// All sentinels are returned wrapped with method/coordinate context;
// match them with errors.Is.
package matrix
