// SPDX-License-Identifier: MIT
package matching_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/kmatch/matching"
	"github.com/katalvlaran/kmatch/matrix"
)

// ExampleMaxWeight pairs two trackers (rows) with two detections (columns).
//
//	        det0  det1
//	trk0 [   10     2 ]
//	trk1 [    6     2 ]
//
// trk0→det0 + trk1→det1 = 12 beats trk0→det1 + trk1→det0 = 8.
func ExampleMaxWeight() {
	w, err := matrix.NewDenseFrom([][]float64{
		{10, 2},
		{6, 2},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := matching.MaxWeight(w)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("column -> row:", res.ColToRow)
	fmt.Println("total:", res.Total)

	// Output:
	// column -> row: [0 1]
	// total: 12
}

// ExampleMaxWeight_rectangular shows three trackers competing for two
// detections; the leftover tracker is reported as -1 in RowToCol.
func ExampleMaxWeight_rectangular() {
	w, _ := matrix.NewDenseFrom([][]float64{
		{1, 10},
		{10, 1},
		{5, 5},
	})

	res, _ := matching.MaxWeight(w)
	for _, p := range res.Pairs() {
		fmt.Printf("trk%d -> det%d (%g)\n", p.Row, p.Col, p.Weight)
	}
	fmt.Println("row -> column:", res.RowToCol)

	// Output:
	// trk1 -> det0 (10)
	// trk0 -> det1 (10)
	// row -> column: [1 0 -1]
}

// ExampleWithMinWeight gates weak associations after solving.
func ExampleWithMinWeight() {
	w, _ := matrix.NewDenseFrom([][]float64{
		{0.9, 0.1},
		{0.2, 0.05},
	})

	res, _ := matching.MaxWeight(w, matching.WithMinWeight(0.1))
	fmt.Println("column -> row:", res.ColToRow)

	// Output:
	// column -> row: [0 -1]
}

// ExampleMaxWeightAll solves independent frames on a bounded pool.
func ExampleMaxWeightAll() {
	a, _ := matrix.NewDenseFrom([][]float64{{3, 1}, {1, 3}})
	b, _ := matrix.NewDenseFrom([][]float64{{1, 3}, {3, 1}})

	out, err := matching.MaxWeightAll(context.Background(), []matrix.Matrix{a, b}, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, res := range out {
		fmt.Println(i, res.ColToRow, res.Total)
	}

	// Output:
	// 0 [0 1] 6
	// 1 [1 0] 6
}
