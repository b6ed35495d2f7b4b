// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
	"math/cmplx"
)

// CloseIndex returns the first index i where |a[i]-b[i]| > atol + rtol·|b[i]|,
// or -1 when every element satisfies the relation.
// NaN is never close to anything.
//
// Policy:
//   - a and b must have equal lengths (ErrDimensionMismatch otherwise).
//   - rtol, atol must be finite; negative values are treated as |rtol|, |atol|.
//
// Complexity: O(n) time, O(1) space.
func CloseIndex(a, b []complex128, rtol, atol float64) (int, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return -1, fmt.Errorf("CloseIndex: %w", ErrNaNInf)
	}
	if len(a) != len(b) {
		return -1, fmt.Errorf("CloseIndex: len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for i := range a {
		diff := cmplx.Abs(a[i] - b[i])
		// written as !(diff <= bound) so NaN fails the check
		if !(diff <= atol+rtol*cmplx.Abs(b[i])) {
			return i, nil
		}
	}

	return -1, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol·|b|.
// Returns (true, nil) if all elements satisfy the relation.
// Complexity: O(n).
func AllClose(a, b []complex128, rtol, atol float64) (bool, error) {
	i, err := CloseIndex(a, b, rtol, atol)
	if err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}

	return i < 0, nil
}

// Norm2 returns the Euclidean norm sqrt(Σ|x_i|²).
// Complexity: O(n).
func Norm2(x []complex128) float64 {
	var acc float64
	for _, v := range x {
		re, im := real(v), imag(v)
		acc += re*re + im*im
	}

	return math.Sqrt(acc)
}

// InnerProduct returns <a|b> = Σ conj(a_i)·b_i.
// Complexity: O(n).
func InnerProduct(a, b []complex128) (complex128, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("InnerProduct: len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	var acc complex128
	for i, v := range a {
		acc += cmplx.Conj(v) * b[i]
	}

	return acc, nil
}
