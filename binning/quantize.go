// SPDX-License-Identifier: MIT
// Package binning: floor-snap quantization of scores onto a resolved grid.

package binning

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Quantize maps every score to the greatest grid boundary that does not
// exceed it. A score landing exactly on a boundary maps to that boundary;
// scores below the first boundary clamp to it, scores above the last clamp
// to the last. The grid must already be resolved (ascending, non-empty);
// use Spec.Resolve to obtain one.
//
// The result is a fresh slice, every element a member of thresholds.
// Complexity: O(len(scores) · log len(thresholds)).
//
// Quantize panics on an empty grid. Resolve never returns one, so an empty
// grid is a programmer error, not a user-input failure.
func Quantize(scores, thresholds []float64) []float64 {
	if len(thresholds) == 0 {
		panic("binning: empty threshold grid, resolve a Spec first")
	}

	out := make([]float64, len(scores))
	for i, s := range scores {
		out[i] = snap(s, thresholds)
	}

	return out
}

// QuantizeMatrix applies Quantize row by row to a batched score container
// and collects the result into a fresh dense matrix of the same shape.
// The input is never mutated. Like Quantize, it panics on an empty grid.
func QuantizeMatrix(m mat.Matrix, thresholds []float64) *mat.Dense {
	if len(thresholds) == 0 {
		panic("binning: empty threshold grid, resolve a Spec first")
	}

	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		out.SetRow(r, Quantize(mat.Row(nil, r, m), thresholds))
	}

	return out
}

// snap locates the bucket left edge for a single score via binary search.
func snap(s float64, t []float64) float64 {
	i := sort.SearchFloat64s(t, s) // first index with t[i] >= s
	switch {
	case i == len(t):
		return t[len(t)-1] // above the grid: clamp to the top boundary
	case t[i] == s || i == 0:
		return t[i] // exact boundary hit, or below the grid
	default:
		return t[i-1] // strictly inside a bucket: its left edge
	}
}
