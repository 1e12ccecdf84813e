package aco_test

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/antstar/aco"
	"github.com/katalvlaran/antstar/matrix"
)

// ExampleColony_Optimize runs the standalone colony on a unit square.
func ExampleColony_Optimize() {
	d, _ := matrix.NewEuclidean([]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	c, _ := aco.New(d, aco.BaselineConfig(), rand.New(rand.NewSource(42)))

	_, cost, err := c.Optimize(0, 50)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cost=%.1f\n", cost)
	// Output: cost=4.0
}
