// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/axis checks here.
//  - Return sentinels tagged with the validator name so call sites can wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Rank → Square).

package tensor

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the tensor reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(t *Dense) error {
	if t == nil {
		return validatorErrorf("ValidateNotNil", ErrNilTensor)
	}

	return nil
}

// ValidateMatrix ensures t is a non-nil rank-2 tensor.
// Complexity: O(1).
func ValidateMatrix(t *Dense) error {
	if err := ValidateNotNil(t); err != nil {
		return validatorErrorf("ValidateMatrix", err)
	}
	if t.Rank() != 2 {
		return validatorErrorf("ValidateMatrix", ErrNotMatrix)
	}

	return nil
}

// ValidateSquare ensures t is a non-nil square matrix.
// Complexity: O(1).
func ValidateSquare(t *Dense) error {
	if err := ValidateMatrix(t); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if t.shape[0] != t.shape[1] {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidatePermutation ensures perm is a bijection on [0, rank).
// Complexity: O(rank) time and space.
func ValidatePermutation(perm []int, rank int) error {
	if len(perm) != rank {
		return validatorErrorf("ValidatePermutation", ErrBadPermutation)
	}
	seen := make([]bool, rank)
	for _, p := range perm {
		if p < 0 || p >= rank || seen[p] {
			return validatorErrorf("ValidatePermutation", ErrBadPermutation)
		}
		seen[p] = true
	}

	return nil
}

// ValidateAxes ensures axes is non-empty, distinct and within [0, rank).
// Complexity: O(rank) time and space.
func ValidateAxes(axes []int, rank int) error {
	if len(axes) == 0 || len(axes) > rank {
		return validatorErrorf("ValidateAxes", ErrBadAxes)
	}
	seen := make([]bool, rank)
	for _, a := range axes {
		if a < 0 || a >= rank || seen[a] {
			return validatorErrorf("ValidateAxes", ErrBadAxes)
		}
		seen[a] = true
	}

	return nil
}

// ValidateVecLen ensures the vector length matches n.
// Complexity: O(1).
func ValidateVecLen(x []complex128, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
