// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/antstar/matrix"
	"gonum.org/v1/gonum/spatial/r2"
)

// ExampleNewEuclidean builds the distance matrix of a 3-4-5 triangle.
func ExampleNewEuclidean() {
	d, err := matrix.NewEuclidean([]r2.Vec{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(d)
	// Output:
	// [0, 3, 5]
	// [3, 0, 4]
	// [5, 4, 0]
}
