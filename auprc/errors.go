// SPDX-License-Identifier: MIT
// Package auprc: sentinel error set.
// All validation failures return these sentinels wrapped with the offending
// values or shapes; callers and tests match them via errors.Is. Threshold
// grid failures surface unwrapped from package binning.

package auprc

import "errors"

var (
	// ErrTaskCount is returned when NumTasks is smaller than 1.
	ErrTaskCount = errors.New("auprc: NumTasks must be at least 1")

	// ErrShapeMismatch is returned when input and target shapes differ.
	// The message names both observed shapes.
	ErrShapeMismatch = errors.New("auprc: input and target must have the same shape")

	// ErrUnsupportedShape is returned when the shared shape does not fit the
	// task layout: with NumTasks == 1 inputs must be one-dimensional or 1xN,
	// with NumTasks > 1 they must be exactly NumTasks x batchSize.
	ErrUnsupportedShape = errors.New("auprc: unsupported input shape")
)
