// SPDX-License-Identifier: MIT

package auprc

import (
	"gonum.org/v1/gonum/mat"

	"github.com/quantfold/binmetrics/binning"
)

// BinnedOptions configures the binned engine.
//
// Fields:
//   - NumTasks  — number of independent tasks in the batch, as in Options.
//   - Threshold — the grid specification: binning.Uniform(n),
//     binning.Explicit(...) or binning.FromMatrix(...). The zero Spec is
//     invalid; DefaultBinnedOptions selects the 100-point uniform grid.
type BinnedOptions struct {
	NumTasks  int
	Threshold binning.Spec
}

// DefaultBinnedOptions returns the single-task configuration with the
// default 100-point uniform grid.
func DefaultBinnedOptions() BinnedOptions {
	return BinnedOptions{NumTasks: 1, Threshold: binning.Default()}
}

// BinaryBinnedAUPRC computes the binned area under the precision-recall
// curve per task: scores are snapped onto the resolved threshold grid, then
// the exact walk of BinaryAUPRC runs on the snapped values. The resolved
// grid is echoed back for downstream plotting or inspection.
//
// The pipeline is resolve -> validate -> quantize -> exact walk, with all
// validation complete before any quantization. Binning is strictly
// preprocessing: for any valid inputs,
//
//	BinaryBinnedAUPRC(x, y, T) == BinaryAUPRC(binning.QuantizeMatrix(x, T), y)
//
// within floating-point tolerance. Inputs are never mutated; the call keeps
// no state between invocations.
//
// Errors: ErrTaskCount, ErrShapeMismatch, ErrUnsupportedShape, and the
// binning.ErrThreshold* sentinels from grid resolution.
func BinaryBinnedAUPRC(input, target mat.Matrix, opts *BinnedOptions) (auprc, thresholds []float64, err error) {
	if opts == nil {
		def := DefaultBinnedOptions()
		opts = &def
	}

	if err = checkNumTasks(opts.NumTasks); err != nil {
		return nil, nil, err
	}

	thresholds, err = opts.Threshold.Resolve()
	if err != nil {
		return nil, nil, err
	}

	scores, labels, err := taskRows(input, target, opts.NumTasks)
	if err != nil {
		return nil, nil, err
	}

	auprc = make([]float64, len(scores))
	for i := range scores {
		auprc[i] = auprcTask(binning.Quantize(scores[i], thresholds), labels[i])
	}

	return auprc, thresholds, nil
}
