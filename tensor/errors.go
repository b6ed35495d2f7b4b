// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// All kernels return these sentinels (wrapped with a call-site tag) and tests
// check them via errors.Is. No kernel panics on user-triggered conditions.

package tensor

import "errors"

// Every message is prefixed with "tensor: ..." for grep-ability. Wrap with
// fmt.Errorf("Tag: %w", ErrX) at the detection site; callers use errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (non-positive dimension, more than one -1 in Reshape, size overflow).
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrDimensionMismatch indicates incompatible sizes between operands,
	// e.g. FromSlice with len(data) != product(shape), or MatMul with a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrOutOfRange indicates that an index or slice bound is outside valid bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrBadPermutation signals that an axis permutation is not a bijection on [0, rank).
	ErrBadPermutation = errors.New("tensor: invalid axis permutation")

	// ErrBadAxes signals empty, duplicated or out-of-range contraction axes.
	ErrBadAxes = errors.New("tensor: invalid contraction axes")

	// ErrNilTensor indicates that a nil *Dense (receiver or argument) was used.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrNotMatrix signals that a rank-2 operand was required.
	ErrNotMatrix = errors.New("tensor: operand is not a matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("tensor: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf tolerance where a finite value is required.
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")
)
