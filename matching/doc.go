// SPDX-License-Identifier: MIT

// Package matching computes maximum-weight bipartite matchings with the
// potential (dual-variable) form of the Kuhn–Munkres algorithm.
//
// What:
//
//   - MaxWeight: pair the rows of a weight matrix (sources, e.g. trackers)
//     with its columns (targets, e.g. detections) so that the total weight of
//     the pairs is maximal. Rectangular input is embedded into a square zero
//     matrix first; the surplus side is matched to phantom participants and
//     reported as Unmatched.
//   - MaxWeightAll: solve many independent matrices on a bounded worker pool.
//
// How:
//
//	potentials   u[i] = max_j C[i][j],  v[j] = max_i C[i][j]
//	invariant    u[i] + v[j] >= C[i][j]   (tight pairs are admissible)
//	per row i    DFS over admissible edges for an augmenting path;
//	             on failure: delta = min slack of unvisited columns,
//	             visited rows u -= delta, visited cols v += delta,
//	             unvisited slack -= delta; retry.
//
// Weights must be finite and non-negative. Minimum-cost problems are solved
// by transforming the costs into affinities before calling (e.g. max-c or
// 1/c); there is no minimizing mode.
//
// Options:
//
//   - WithEpsilon(eps)     zero-gap tolerance of the admissibility test (1e-4)
//   - WithMinWeight(w)     report pairs lighter than w as Unmatched (gating)
//
// Very large weights (n*max(C) beyond about 3e10) widen the tolerance to
// 16*n float64 rounding units of max(C), so the solve stays total at any
// finite magnitude.
//
// Errors:
//
//   - ErrNilWeights      nil matrix
//   - ErrEmptyWeights    zero-sized matrix
//   - ErrInvalidWeight   NaN, ±Inf or negative weight (wraps the matrix sentinel)
//
// Complexity:
//
//   - Time O(n³) typical, O(n⁴) worst case, n = max(rows, cols); Memory O(n²).
//
// Concurrency: a solve is sequential and owns all of its state. Distinct
// solves share nothing and may run in parallel.
package matching
