// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"slices"
)

// Slice returns the view t[start:end] along the leading axis.
// The view shares t's buffer; its capacity is clipped so appends on the
// view's Data can never write into the remainder of t.
// Requires rank ≥ 1 and 0 ≤ start < end ≤ Dim(0).
// Complexity: O(rank).
func Slice(t *Dense, start, end int) (*Dense, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, fmt.Errorf("Slice: %w", err)
	}
	if t.Rank() == 0 {
		return nil, fmt.Errorf("Slice: rank 0: %w", ErrOutOfRange)
	}
	if start < 0 || end > t.shape[0] || start >= end {
		return nil, fmt.Errorf("Slice[%d:%d] of %d: %w", start, end, t.shape[0], ErrOutOfRange)
	}

	stride := t.strides[0]
	shape := cloneInts(t.shape)
	shape[0] = end - start
	lo, hi := start*stride, end*stride

	return &Dense{
		shape:   shape,
		strides: rowMajorStrides(shape),
		data:    t.data[lo:hi:hi],
	}, nil
}

// Concatenate joins parts along the leading axis into a new tensor.
// All parts must share rank ≥ 1 and every trailing dimension.
// Complexity: O(N) copy.
func Concatenate(parts ...*Dense) (*Dense, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("Concatenate: %w", ErrNilTensor)
	}
	for _, p := range parts {
		if err := ValidateNotNil(p); err != nil {
			return nil, fmt.Errorf("Concatenate: %w", err)
		}
	}
	first := parts[0]
	if first.Rank() == 0 {
		return nil, fmt.Errorf("Concatenate: rank 0: %w", ErrDimensionMismatch)
	}

	lead := 0
	total := 0
	for i, p := range parts {
		if p.Rank() != first.Rank() || !slices.Equal(p.shape[1:], first.shape[1:]) {
			return nil, fmt.Errorf("Concatenate: part %d shape %v vs %v: %w", i, p.shape, first.shape, ErrDimensionMismatch)
		}
		lead += p.shape[0]
		total += len(p.data)
	}

	shape := cloneInts(first.shape)
	shape[0] = lead
	data := make([]complex128, 0, total)
	for _, p := range parts {
		data = append(data, p.data...) // leading axis is outermost: parts are contiguous blocks
	}

	return &Dense{shape: shape, strides: rowMajorStrides(shape), data: data}, nil
}
