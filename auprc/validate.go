// SPDX-License-Identifier: MIT
// Package auprc: task-count and shape validation over gonum containers.
// Validation runs before any computation; on failure nothing is quantized
// and nothing is sorted.

package auprc

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// checkNumTasks rejects task counts smaller than 1.
func checkNumTasks(numTasks int) error {
	if numTasks < 1 {
		return fmt.Errorf("%w, got %d", ErrTaskCount, numTasks)
	}

	return nil
}

// shapeOf renders a container shape for error messages: vectors as [n],
// matrices as [r x c].
func shapeOf(m mat.Matrix) string {
	if v, ok := m.(mat.Vector); ok {
		return fmt.Sprintf("[%d]", v.Len())
	}
	r, c := m.Dims()

	return fmt.Sprintf("[%dx%d]", r, c)
}

// vecSlice copies a vector into a flat slice, honoring any stride.
func vecSlice(v mat.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}

// taskRows validates the container pair against the task layout and splits
// both into per-task rows. The returned slices are fresh copies: engines
// never mutate caller memory.
//
// Accepted layouts:
//   - NumTasks == 1: a mat.Vector (one-dimensional) or a 1xN matrix;
//   - NumTasks  > 1: exactly a NumTasks x batchSize matrix.
func taskRows(input, target mat.Matrix, numTasks int) (scores, labels [][]float64, err error) {
	if err = checkNumTasks(numTasks); err != nil {
		return nil, nil, err
	}

	inVec, inIsVec := input.(mat.Vector)
	tgVec, tgIsVec := target.(mat.Vector)

	ir, ic := input.Dims()
	tr, tc := target.Dims()
	if ir != tr || ic != tc || inIsVec != tgIsVec {
		return nil, nil, fmt.Errorf("%w, got shapes %s and %s",
			ErrShapeMismatch, shapeOf(input), shapeOf(target))
	}

	if numTasks == 1 {
		switch {
		case inIsVec:
			return [][]float64{vecSlice(inVec)}, [][]float64{vecSlice(tgVec)}, nil
		case ir == 1:
			return [][]float64{mat.Row(nil, 0, input)}, [][]float64{mat.Row(nil, 0, target)}, nil
		default:
			return nil, nil, fmt.Errorf(
				"%w: with NumTasks = 1, input and target must be one-dimensional or 1xN, got shapes %s and %s",
				ErrUnsupportedShape, shapeOf(input), shapeOf(target))
		}
	}

	if inIsVec || ir != numTasks {
		return nil, nil, fmt.Errorf(
			"%w: with NumTasks = %d, input and target must be %dxN, got shapes %s and %s",
			ErrUnsupportedShape, numTasks, numTasks, shapeOf(input), shapeOf(target))
	}

	scores = make([][]float64, numTasks)
	labels = make([][]float64, numTasks)
	for r := 0; r < numTasks; r++ {
		scores[r] = mat.Row(nil, r, input)
		labels[r] = mat.Row(nil, r, target)
	}

	return scores, labels, nil
}
