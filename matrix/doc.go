// SPDX-License-Identifier: MIT

// Package matrix provides the dense distance storage shared by the solver packages.
//
// The package is intentionally small:
//
//   - Matrix: the minimal read/write surface (Rows, Cols, At, Set, Clone) used by
//     validators and tour utilities.
//   - Dense: a row-major, flat-slice implementation with checked accessors
//     (At/Set return sentinel errors, never panic) and unchecked fast paths
//     (Get, Row) for hot loops that already validated their indices.
//   - NewEuclidean: the distance model. It turns a list of planar points into an
//     n×n symmetric matrix of Euclidean distances with an exact zero diagonal.
//
// Determinism:
//   - Construction never depends on map iteration or randomness; building the
//     same points twice yields bit-identical buffers.
//
// Complexity quicksheet:
//   - NewDense O(r·c); At/Set/Get O(1); Clone O(r·c); NewEuclidean O(n²).
package matrix
