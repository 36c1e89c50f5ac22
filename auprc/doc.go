// Package auprc computes the Area Under the Precision-Recall Curve for
// binary classifiers, exactly or on a binned score grid, batched by task.
//
// 🚀 What is AUPRC?
//
//	A ranking-quality metric robust to class imbalance: sort predictions by
//	descending score, walk the ranking accumulating true/false positives,
//	and integrate precision as a step function over recall.
//
// Two engines, one contract:
//
//   - BinaryAUPRC       — the exact rank-based primitive over raw scores.
//   - BinaryBinnedAUPRC — scores are first snapped onto a threshold grid
//     (see package binning), then the exact primitive runs on the snapped
//     values. Binning is strictly preprocessing: the result equals
//     BinaryAUPRC of the quantized scores, within float tolerance.
//
// ⚙️ Usage:
//
//	input := mat.NewVecDense(4, []float64{0.2, 0.8, 0.5, 0.9})
//	target := mat.NewVecDense(4, []float64{0, 1, 0, 1})
//
//	opts := auprc.DefaultBinnedOptions()
//	opts.Threshold = binning.Uniform(5)
//
//	res, thresholds, err := auprc.BinaryBinnedAUPRC(input, target, &opts)
//	// res = [1], thresholds = [0 0.25 0.5 0.75 1]
//
// Inputs travel as gonum/mat containers: a mat.Vector or a 1×N matrix for a
// single task, an exact numTasks×batchSize matrix for batches. Targets are
// binary indicators (0/1). Results always come back as one value per task;
// single-task callers read element 0.
//
// Semantics worth knowing:
//
//   - Ties share one curve point: items with equal score are consumed
//     jointly before precision/recall are emitted.
//   - A task with zero positive targets scores exactly 0.0, never NaN.
//   - All validation is fail-fast with distinct sentinel errors; nothing is
//     computed for invalid inputs.
//
// Performance: O(batchSize · log batchSize) per task, dominated by the sort.
// Tasks are independent and share nothing mutable.
package auprc
