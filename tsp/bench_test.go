package tsp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/antstar/tsp"
)

func benchmarkSolve(b *testing.B, mode tsp.Mode, n int) {
	cities := randomCities(n, 1)
	opts := optsFor(mode)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(context.Background(), cities, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_MST_n10(b *testing.B)    { benchmarkSolve(b, tsp.ModeMST, 10) }
func BenchmarkSolve_Hybrid_n10(b *testing.B) { benchmarkSolve(b, tsp.ModeHybrid, 10) }

func BenchmarkNearestNeighbor_n200(b *testing.B) {
	d := distOf(b, randomCities(200, 2))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := tsp.NearestNeighbor(d, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTwoOpt_n200(b *testing.B) {
	d := distOf(b, randomCities(200, 3))
	seed, _, err := tsp.NearestNeighbor(d, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = tsp.TwoOpt(context.Background(), d, seed, epsTiny, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTourCost_n200(b *testing.B) {
	d := distOf(b, randomCities(200, 4))
	tour, _, err := tsp.NearestNeighbor(d, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = tsp.TourCost(d, tour); err != nil {
			b.Fatal(err)
		}
	}
}
