// SPDX-License-Identifier: MIT
// Package binning: sentinel error set and grid resolution.
// All validation failures return these sentinels (wrapped with the offending
// values); tests and callers match them via errors.Is.

package binning

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrThresholdCount is returned when an integer grid spec asks for
	// fewer than one boundary, or an explicit spec is empty.
	ErrThresholdCount = errors.New("binning: threshold count must be at least 1")

	// ErrThresholdRank is returned when an explicit grid held in a matrix
	// is not one-dimensional.
	ErrThresholdRank = errors.New("binning: threshold must be one-dimensional")

	// ErrThresholdNotSorted is returned when the grid is not strictly
	// ascending (any adjacent tie or descent).
	ErrThresholdNotSorted = errors.New("binning: threshold must be sorted ascending")

	// ErrThresholdOutOfRange is returned when a boundary lies outside [0, 1].
	ErrThresholdOutOfRange = errors.New("binning: threshold values must be in the range [0, 1]")

	// ErrThresholdFirstValue is returned when the first boundary is not exactly 0.
	ErrThresholdFirstValue = errors.New("binning: first threshold value must be 0")

	// ErrThresholdLastValue is returned when the last boundary is not exactly 1.
	ErrThresholdLastValue = errors.New("binning: last threshold value must be 1")
)

// Resolve validates the spec and returns the canonical ascending boundary
// slice. The result is always freshly allocated: it never aliases caller
// memory, so it can be shared read-only across tasks.
//
// Validation is fail-fast in a fixed order: rank (matrix specs only),
// strict ordering, range, first endpoint, last endpoint. A uniform spec of
// one point resolves to [0], like a one-point linspace, and is then caught
// by the last-endpoint check.
func (s Spec) Resolve() ([]float64, error) {
	switch s.kind {
	case uniformSpec:
		if s.count < 1 {
			return nil, fmt.Errorf("%w, got %d", ErrThresholdCount, s.count)
		}
		t := make([]float64, s.count)
		if s.count > 1 {
			floats.Span(t, 0, 1)
			// Pin the endpoints: the grid contract requires exactly 0 and 1,
			// independent of rounding in the step multiplication.
			t[0], t[s.count-1] = 0, 1
		}
		if err := validateGrid(t); err != nil {
			return nil, err
		}

		return t, nil

	case explicitSpec:
		t := append([]float64(nil), s.values...) // defensive copy
		if err := validateGrid(t); err != nil {
			return nil, err
		}

		return t, nil

	default: // matrixSpec
		t, err := flatten(s.matrix)
		if err != nil {
			return nil, err
		}
		if err = validateGrid(t); err != nil {
			return nil, err
		}

		return t, nil
	}
}

// flatten extracts a one-dimensional boundary slice from a gonum container,
// rejecting anything with two non-trivial dimensions.
func flatten(m mat.Matrix) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("%w, got nil matrix", ErrThresholdRank)
	}
	r, c := m.Dims()
	switch {
	case r == 1:
		return mat.Row(nil, 0, m), nil
	case c == 1:
		return mat.Col(nil, 0, m), nil
	default:
		return nil, fmt.Errorf("%w, got a %dx%d matrix", ErrThresholdRank, r, c)
	}
}

// validateGrid enforces the grid invariants on an already-flat slice:
// strictly ascending, all values in [0,1], endpoints exactly 0 and 1.
func validateGrid(t []float64) error {
	if len(t) == 0 {
		return fmt.Errorf("%w, got an empty sequence", ErrThresholdCount)
	}
	for i := 1; i < len(t); i++ {
		if t[i] <= t[i-1] {
			return fmt.Errorf("%w, got %v then %v at index %d", ErrThresholdNotSorted, t[i-1], t[i], i)
		}
	}
	for i, v := range t {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w, got %v at index %d", ErrThresholdOutOfRange, v, i)
		}
	}
	if t[0] != 0 {
		return fmt.Errorf("%w, got %v", ErrThresholdFirstValue, t[0])
	}
	if t[len(t)-1] != 1 {
		return fmt.Errorf("%w, got %v", ErrThresholdLastValue, t[len(t)-1])
	}

	return nil
}
