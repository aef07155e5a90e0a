// SPDX-License-Identifier: MIT

// Package kmatch pairs two groups of items (for example existing trackers and
// fresh detections) so that the total affinity of the chosen pairs is as large
// as possible, with every item used at most once.
//
// The work is split across two library packages and one command:
//
//	matrix/      Dense, Table and Gonum storage, validators, square padding
//	matching/    MaxWeight (Kuhn–Munkres with dual potentials) and MaxWeightAll
//	cmd/kmatch/  demonstration driver: solve one table or benchmark many
//
// Quick start:
//
//	w, _ := matrix.NewDenseFrom([][]float64{{10, 2}, {6, 2}})
//	res, err := matching.MaxWeight(w)
//	// res.ColToRow == []int{0, 1}, res.Total == 12
//
// Rectangular tables are supported; participants without a partner are
// reported as matching.Unmatched.
package kmatch
