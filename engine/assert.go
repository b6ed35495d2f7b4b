// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/statevec/tensor"
)

// AssertClose returns nil when |value[i] − target[i]| ≤ atol + rtol·|target[i]|
// for every i, and an ErrNotClose error naming the first offending index
// otherwise. Lengths must match (ErrShape); tolerances must be finite.
func AssertClose(value, target []complex128, rtol, atol float64) error {
	i, err := tensor.CloseIndex(value, target, rtol, atol)
	if err != nil {
		if errors.Is(err, tensor.ErrDimensionMismatch) {
			return fmt.Errorf("AssertClose: %w: %w", ErrShape, err)
		}
		return fmt.Errorf("AssertClose: %w", err)
	}
	if i >= 0 {
		return fmt.Errorf("AssertClose: index %d: got %v, want %v (rtol=%g, atol=%g): %w",
			i, value[i], target[i], rtol, atol, ErrNotClose)
	}

	return nil
}
