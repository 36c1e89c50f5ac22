// Package binning resolves threshold grids and quantizes classifier scores
// onto them. It is the preprocessing stage of binned metrics: once scores
// are snapped to a small, fixed set of boundary values, downstream curve
// computations run in memory proportional to the grid, not the stream.
//
// ⚙️ Two operations:
//
//	thresholds, err := binning.Uniform(5).Resolve()
//	// thresholds = [0 0.25 0.5 0.75 1]
//
//	q := binning.Quantize([]float64{0.2, 0.3, 0.4, 0.5}, thresholds)
//	// every q[i] is the greatest boundary not exceeding the score
//
// A grid is valid when it is strictly ascending, lies inside [0, 1], starts
// at exactly 0 and ends at exactly 1. Each violation is reported with its
// own sentinel error so callers can match via errors.Is; messages carry the
// offending values for debuggability.
//
// Resolved grids are fresh slices: they never alias caller memory and are
// safe to share read-only across concurrent tasks.
//
// Performance:
//
//   - Resolve:  O(t) validation over t boundaries
//   - Quantize: O(n log t) via binary search per score
package binning
