// SPDX-License-Identifier: MIT

// Package tensor - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major buffer with the explicit offset formula
//     Σ idx[a]·stride[a], where the last axis has stride 1.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support no-copy views (Reshape, Slice) that share the backing buffer.
//
// Complexity quicksheet:
//   - New: O(N) zero-init; At/Set: O(rank); Clone: O(N); Reshape: O(rank).

package tensor

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFrom     = "FromSlice"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxReshape  = "Reshape"
	ctxIdentity = "Identity"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context.
func denseErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// Dense is a row-major complex tensor.
//   - shape holds the per-axis sizes (rank == len(shape); rank 0 is a scalar).
//   - strides holds row-major strides (last axis contiguous).
//   - data is a flat buffer of length product(shape).
type Dense struct {
	shape   []int
	strides []int
	data    []complex128
}

var _ fmt.Stringer = (*Dense)(nil)

// New creates a zero tensor of the given shape.
// Stage 1 (Validate): every dim > 0 and the element count fits.
// Stage 2 (Prepare): allocate the flat buffer (make zero-fills it).
// Complexity: O(N) time and memory.
func New(shape ...int) (*Dense, error) {
	n, err := numel(shape)
	if err != nil {
		return nil, denseErrorf(ctxNew, err)
	}

	return &Dense{
		shape:   cloneInts(shape),
		strides: rowMajorStrides(shape),
		data:    make([]complex128, n),
	}, nil
}

// FromSlice wraps data as a tensor of the given shape WITHOUT copying.
// Mutations through the tensor are visible in data and vice versa.
// Returns ErrDimensionMismatch when len(data) != product(shape).
// Complexity: O(rank).
func FromSlice(data []complex128, shape ...int) (*Dense, error) {
	n, err := numel(shape)
	if err != nil {
		return nil, denseErrorf(ctxFrom, err)
	}
	if len(data) != n {
		return nil, denseErrorf(ctxFrom, ErrDimensionMismatch)
	}

	return &Dense{
		shape:   cloneInts(shape),
		strides: rowMajorStrides(shape),
		data:    data,
	}, nil
}

// Matrix builds a rows×cols tensor from row slices (copying them).
// Handy for literal gate matrices.
func Matrix(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, denseErrorf("Matrix", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	m, err := New(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, denseErrorf("Matrix", ErrDimensionMismatch) // ragged input
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, denseErrorf(ctxIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Shape returns a copy of the per-axis sizes.
func (t *Dense) Shape() []int { return cloneInts(t.shape) }

// Rank returns the number of axes.
func (t *Dense) Rank() int { return len(t.shape) }

// Len returns the total number of elements.
func (t *Dense) Len() int { return len(t.data) }

// Dim returns the size of axis a, or 0 when a is out of range.
func (t *Dense) Dim(a int) int {
	if a < 0 || a >= len(t.shape) {
		return 0
	}

	return t.shape[a]
}

// Data returns the backing buffer in row-major order. It is NOT a copy.
func (t *Dense) Data() []complex128 { return t.data }

// offset computes the flat offset of idx or returns ErrOutOfRange.
func (t *Dense) offset(method string, idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, denseErrorf(method, ErrOutOfRange)
	}
	off := 0
	for a, i := range idx {
		if i < 0 || i >= t.shape[a] {
			return 0, fmt.Errorf("Dense.%s%v: %w", method, idx, ErrOutOfRange)
		}
		off += i * t.strides[a]
	}

	return off, nil
}

// At returns the element at idx (one index per axis).
// Complexity: O(rank).
func (t *Dense) At(idx ...int) (complex128, error) {
	off, err := t.offset(ctxAt, idx)
	if err != nil {
		return 0, err
	}

	return t.data[off], nil
}

// Set assigns v at idx.
// Complexity: O(rank).
func (t *Dense) Set(v complex128, idx ...int) error {
	off, err := t.offset(ctxSet, idx)
	if err != nil {
		return err
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy.
// Complexity: O(N).
func (t *Dense) Clone() *Dense {
	data := make([]complex128, len(t.data))
	copy(data, t.data)

	return &Dense{shape: cloneInts(t.shape), strides: cloneInts(t.strides), data: data}
}

// Reshape returns a view with a new shape over the same buffer.
// At most one dimension may be -1 and is inferred from the element count.
// Complexity: O(rank); no data is copied.
func (t *Dense) Reshape(shape ...int) (*Dense, error) {
	resolved, err := resolveReshape(len(t.data), shape)
	if err != nil {
		return nil, denseErrorf(ctxReshape, err)
	}

	return &Dense{shape: resolved, strides: rowMajorStrides(resolved), data: t.data}, nil
}

// String implements fmt.Stringer. Matrices print row by row; other ranks
// print their shape followed by the flat buffer.
func (t *Dense) String() string {
	var sb strings.Builder
	if len(t.shape) != 2 {
		fmt.Fprintf(&sb, "Dense%v", t.shape)
		sb.WriteString(_fmtRowOpen)
		for i, v := range t.data {
			if i > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString(_fmtRowClose)

		return sb.String()
	}
	r, c := t.shape[0], t.shape[1]
	for i := 0; i < r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", t.data[i*c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
