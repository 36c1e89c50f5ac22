// SPDX-License-Identifier: MIT
// Package binning: threshold grid specification types.

package binning

import "gonum.org/v1/gonum/mat"

// DefaultNumThresholds is the grid size used when a caller does not specify
// a threshold grid of its own: 100 uniformly spaced boundaries over [0,1].
const DefaultNumThresholds = 100

// specKind discriminates the three ways a grid can be described.
type specKind int

const (
	uniformSpec specKind = iota
	explicitSpec
	matrixSpec
)

// Spec describes a threshold grid before resolution: either a count of
// uniformly spaced boundaries or an explicit boundary sequence. A Spec is
// a value type; construct one with Uniform, Explicit or FromMatrix and
// call Resolve to obtain (and validate) the canonical ascending slice.
//
// The zero Spec is Uniform(0) and fails Resolve with ErrThresholdCount;
// use Default() for the ready-to-use 100-point grid.
type Spec struct {
	kind   specKind
	count  int
	values []float64
	matrix mat.Matrix
}

// Uniform specifies a grid of n equally spaced boundaries covering [0, 1]
// inclusive. Uniform(5) resolves to [0, 0.25, 0.5, 0.75, 1].
func Uniform(n int) Spec {
	return Spec{kind: uniformSpec, count: n}
}

// Explicit specifies the grid boundaries directly. Resolve validates them
// (strictly ascending, inside [0,1], endpoints exactly 0 and 1) and returns
// a defensive copy.
func Explicit(values ...float64) Spec {
	return Spec{kind: explicitSpec, values: values}
}

// FromMatrix specifies grid boundaries held in a gonum container. The
// container must be one-dimensional: a mat.Vector, a 1×N row or an N×1
// column. Anything wider fails Resolve with ErrThresholdRank.
func FromMatrix(m mat.Matrix) Spec {
	return Spec{kind: matrixSpec, matrix: m}
}

// Default returns the DefaultNumThresholds-point uniform grid spec.
func Default() Spec {
	return Uniform(DefaultNumThresholds)
}
