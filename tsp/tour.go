// Package tsp - tour utilities.
//
// A tour is a closed vertex sequence of length n+1 with tour[0] == tour[n] ==
// start and every vertex of [0, n) exactly once in positions [0, n). These
// helpers check, re-base and compare such tours.
package tsp

import (
	"strconv"
	"strings"
)

// ValidateTour enforces the closed Hamiltonian-cycle invariants above.
//
// Errors: ErrDimensionMismatch, ErrStartOutOfRange.
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	var (
		seen = make([]bool, n)
		i    int
		v    int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// RotateTourToStart returns a fresh closed copy shifted so that it begins and
// ends at start. The input may be closed (first == last) or an open cycle of n
// distinct vertices.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	if len(tour) == 0 {
		return nil, ErrDimensionMismatch
	}
	n := len(tour)
	if n > 1 && tour[0] == tour[n-1] {
		n--
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	pivot := IndexOf(tour[:n], start)
	if pivot == -1 {
		return nil, ErrDimensionMismatch
	}
	out := make([]int, n+1)
	for i := 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	out[n] = start

	return out, nil
}

// CanonicalizeOrientationInPlace reverses the interior [1, n-1] when the right
// neighbor of the start is larger than the left one, giving each cyclic order
// a single representative.
//
// Complexity: O(n) time, O(1) space.
func CanonicalizeOrientationInPlace(tour []int) error {
	if len(tour) < 3 {
		return ErrDimensionMismatch
	}
	n := len(tour) - 1
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if n >= 3 && tour[1] > tour[n-1] {
		return reverseArcInPlace(tour, 1, n-1)
	}

	return nil
}

// reverseArcInPlace reverses tour[i..k] inclusive. Requires a closed tour and
// 1 ≤ i < k ≤ n-1. This is the 2-opt move primitive.
//
// Complexity: O(k-i).
func reverseArcInPlace(tour []int, i, k int) error {
	n := len(tour) - 1
	if n < 2 || tour[0] != tour[n] || i < 1 || k > n-1 || i >= k {
		return ErrDimensionMismatch
	}
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}

	return nil
}

// IndexOf returns the first position of v in s, or -1.
func IndexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

// CopyTour returns an independent copy.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// SameCycle reports whether two closed tours describe the same cycle, ignoring
// the starting vertex and the direction of travel.
//
// Complexity: O(n).
func SameCycle(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	n := len(a) - 1
	if a[0] != a[n] || b[0] != b[n] {
		return false
	}
	p := IndexOf(b[:n], a[0])
	if p == -1 {
		return false
	}

	forward, backward := true, true
	for i := 0; i < n && (forward || backward); i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[(p-i+n)%n] {
			backward = false
		}
	}

	return forward || backward
}

// FormatTour renders a tour as "0 → 3 → 1 → 2 → 0".
func FormatTour(tour []int) string {
	parts := make([]string, len(tour))
	for i, v := range tour {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " → ")
}
