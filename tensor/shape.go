// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
)

// maxElements caps the element count so that offsets stay in int range and
// the byte size (16·N) cannot overflow on 64-bit platforms.
const maxElements = math.MaxInt / 16

// shapeErrorf tags a shape-helper error with the offending shape.
func shapeErrorf(tag string, shape []int, err error) error {
	return fmt.Errorf("%s%v: %w", tag, shape, err)
}

// numel returns the product of dims, validating every dim is > 0.
// A rank-0 shape has exactly one element.
// Complexity: O(rank).
func numel(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, shapeErrorf("numel", shape, ErrBadShape)
		}
		if n > maxElements/d {
			return 0, shapeErrorf("numel", shape, ErrBadShape) // would overflow
		}
		n *= d
	}

	return n, nil
}

// rowMajorStrides returns strides where the last axis is contiguous.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}

	return strides
}

// cloneInts returns an independent copy (nil stays nil-safe as empty).
func cloneInts(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)

	return out
}

// BinaryShape returns n axes of size 2: the tensor shape of an n-qubit state
// or, with n = 2k, of a k-qubit operator.
func BinaryShape(n int) []int {
	if n < 0 {
		n = 0
	}
	shape := make([]int, n)
	for i := range shape {
		shape[i] = 2
	}

	return shape
}

// resolveReshape replaces a single -1 in shape with the inferred dimension.
// Complexity: O(rank).
func resolveReshape(total int, shape []int) ([]int, error) {
	out := cloneInts(shape)
	infer := -1
	known := 1
	for i, d := range out {
		switch {
		case d == -1:
			if infer >= 0 {
				return nil, shapeErrorf("Reshape", shape, ErrBadShape) // two unknowns
			}
			infer = i
		case d <= 0:
			return nil, shapeErrorf("Reshape", shape, ErrBadShape)
		default:
			known *= d
		}
	}
	if infer >= 0 {
		if known == 0 || total%known != 0 {
			return nil, shapeErrorf("Reshape", shape, ErrDimensionMismatch)
		}
		out[infer] = total / known
	}
	n, err := numel(out)
	if err != nil {
		return nil, err
	}
	if n != total {
		return nil, shapeErrorf("Reshape", shape, ErrDimensionMismatch)
	}

	return out, nil
}
