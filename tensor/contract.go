// SPDX-License-Identifier: MIT

// Package tensor - generalized contraction of an operator against named axes.
//
// Contract evaluates the einsum
//
//	out[…, o1, …, ok, …] = Σ_{i1…ik} op[o1…ok, i1…ik] · t[…, i1, …, ik, …]
//
// where the o/i legs sit at positions axes[0..k-1] of t. Every other axis of
// t is a free (batch) axis and passes through untouched. Flattened, op is a
// D×D row-major matrix with D = Π dim(axes), rows indexed by the output legs
// and columns by the input legs, axes[0] being the most significant leg.

package tensor

import "fmt"

const ctxContract = "Contract"

// contractErrorf tags contraction failures with shapes for diagnostics.
func contractErrorf(op, t *Dense, axes []int, err error) error {
	return fmt.Errorf("%s(op%v, t%v, axes%v): %w", ctxContract, op.shape, t.shape, axes, err)
}

// Contract applies op to the axes of t and returns a new tensor of t's shape.
//
// Implementation:
//   - Stage 1 (Validate): non-nil operands, distinct in-range axes, op rank 2k
//     with both leg groups matching dim(axes).
//   - Stage 2 (Prepare): precompute the D offsets of one axes-block relative to
//     its base offset, and the odometer over the free axes.
//   - Stage 3 (Execute): for every free multi-index gather the D inputs, skip
//     all-zero blocks, and scatter op·block into the output.
//
// Behavior highlights:
//   - t is never written; the result is freshly allocated.
//   - All-zero blocks are skipped only when op is finite; a NaN or Inf in op
//     reaches every block, so 0·NaN propagates as in a dense product.
//   - Scratch beyond the result is O(D).
//
// Complexity: O(N·D) time where N = Len(t).
func Contract(op, t *Dense, axes []int) (*Dense, error) {
	if err := ValidateNotNil(op); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxContract, err)
	}
	if err := ValidateNotNil(t); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxContract, err)
	}
	if err := ValidateAxes(axes, t.Rank()); err != nil {
		return nil, contractErrorf(op, t, axes, err)
	}
	k := len(axes)
	if op.Rank() != 2*k {
		return nil, contractErrorf(op, t, axes, ErrDimensionMismatch)
	}
	D := 1
	for a, ax := range axes {
		d := t.shape[ax]
		if op.shape[a] != d || op.shape[k+a] != d {
			return nil, contractErrorf(op, t, axes, ErrDimensionMismatch)
		}
		D *= d
	}

	// Offsets of the D elements of one block, enumerated row-major over axes.
	offs := blockOffsets(t, axes)

	// Free axes in ascending order drive the outer odometer.
	isTarget := make([]bool, t.Rank())
	for _, ax := range axes {
		isTarget[ax] = true
	}
	free := make([]int, 0, t.Rank()-k)
	for ax := range t.shape {
		if !isTarget[ax] {
			free = append(free, ax)
		}
	}

	out, err := New(t.shape...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxContract, err)
	}
	mat := op.data
	skipZero := allFinite(mat)
	in := make([]complex128, D)
	idx := make([]int, len(free))
	base := 0
	blocks := len(t.data) / D
	for b := 0; b < blocks; b++ {
		nonzero := false
		for j, o := range offs {
			in[j] = t.data[base+o]
			if in[j] != 0 {
				nonzero = true
			}
		}
		if nonzero || !skipZero {
			for i := 0; i < D; i++ {
				row := mat[i*D : (i+1)*D]
				var acc complex128
				for j, v := range in {
					acc += row[j] * v
				}
				out.data[base+offs[i]] = acc
			}
		}
		// advance the free-axis odometer (last free axis fastest)
		for f := len(free) - 1; f >= 0; f-- {
			ax := free[f]
			idx[f]++
			base += t.strides[ax]
			if idx[f] < t.shape[ax] {
				break
			}
			base -= t.strides[ax] * t.shape[ax]
			idx[f] = 0
		}
	}

	return out, nil
}

// blockOffsets enumerates Σ sub[a]·stride[axes[a]] for every sub-index over
// the contracted axes, in row-major order with axes[0] most significant.
// Complexity: O(D).
func blockOffsets(t *Dense, axes []int) []int {
	offs := []int{0}
	for _, ax := range axes {
		d, s := t.shape[ax], t.strides[ax]
		next := make([]int, 0, len(offs)*d)
		for _, o := range offs {
			for i := 0; i < d; i++ {
				next = append(next, o+i*s)
			}
		}
		offs = next
	}

	return offs
}
