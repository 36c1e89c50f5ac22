// SPDX-License-Identifier: MIT

package auprc

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Options configures the exact engine.
//
// Fields:
//   - NumTasks — number of independent binary-classification tasks in the
//     batch. 1 accepts a vector or a 1xN matrix; k > 1 requires an exact
//     kxN matrix.
type Options struct {
	NumTasks int
}

// DefaultOptions returns the single-task configuration.
func DefaultOptions() Options {
	return Options{NumTasks: 1}
}

// BinaryAUPRC computes the exact area under the precision-recall curve for
// each task, from raw scores and binary targets.
//
// Per task:
//  1. (score, label) pairs are ranked by descending score;
//  2. equal scores form one group, consumed jointly, so tie order between
//     items never changes the result;
//  3. after each group, precision = tp/(tp+fp) and recall = tp/totalPos
//     contribute one curve point;
//  4. the area is the precision step function integrated over recall,
//     starting from recall 0.
//
// A task with no positive targets scores 0.0 rather than NaN. Inputs are
// never mutated. The result always holds one value per task.
//
// Errors: ErrTaskCount, ErrShapeMismatch, ErrUnsupportedShape.
func BinaryAUPRC(input, target mat.Matrix, opts *Options) ([]float64, error) {
	if opts == nil {
		def := DefaultOptions()
		opts = &def
	}

	scores, labels, err := taskRows(input, target, opts.NumTasks)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(scores))
	for i := range scores {
		out[i] = auprcTask(scores[i], labels[i])
	}

	return out, nil
}

// auprcTask runs the ranked precision-recall walk for one task.
// Complexity: O(n log n) for the sort, O(n) for the walk.
func auprcTask(scores, labels []float64) float64 {
	totalPos := floats.Sum(labels)
	if totalPos == 0 {
		return 0 // no positives: the curve is empty, area defined as 0
	}

	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })

	var tp, fp, area, prevRecall float64
	for i := 0; i < len(idx); {
		// Consume the whole group of equal scores before emitting the point.
		group := scores[idx[i]]
		for ; i < len(idx) && scores[idx[i]] == group; i++ {
			tp += labels[idx[i]]
			fp += 1 - labels[idx[i]]
		}
		precision := tp / (tp + fp)
		recall := tp / totalPos
		area += (recall - prevRecall) * precision
		prevRecall = recall
	}

	return area
}
