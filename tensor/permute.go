// SPDX-License-Identifier: MIT

package tensor

import "fmt"

// InversePermutation returns inv such that inv[perm[i]] = i.
// Transposing by perm and then by inv restores the original axis order.
// Complexity: O(rank).
func InversePermutation(perm []int) ([]int, error) {
	if err := ValidatePermutation(perm, len(perm)); err != nil {
		return nil, fmt.Errorf("InversePermutation: %w", err)
	}
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}

	return inv, nil
}

// isIdentity reports whether perm maps every axis to itself.
func isIdentity(perm []int) bool {
	for i, p := range perm {
		if p != i {
			return false
		}
	}

	return true
}

// Transpose returns a copy of t with permuted axes: output axis i is input
// axis perm[i] (numpy semantics).
//
// Implementation:
//   - Stage 1: validate perm against t's rank.
//   - Stage 2: walk the output buffer sequentially while an odometer over the
//     output multi-index tracks the matching input offset incrementally.
//
// Complexity: O(N) time, O(N + rank) space. The identity permutation is a Clone.
func Transpose(t *Dense, perm []int) (*Dense, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	rank := t.Rank()
	if err := ValidatePermutation(perm, rank); err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	if isIdentity(perm) {
		return t.Clone(), nil
	}

	outShape := make([]int, rank)
	srcStrides := make([]int, rank) // input stride seen by each output axis
	for i, p := range perm {
		outShape[i] = t.shape[p]
		srcStrides[i] = t.strides[p]
	}
	out, err := New(outShape...)
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}

	idx := make([]int, rank)
	src := 0
	for k := range out.data {
		out.data[k] = t.data[src]
		// advance the odometer; the last output axis moves fastest
		for a := rank - 1; a >= 0; a-- {
			idx[a]++
			src += srcStrides[a]
			if idx[a] < outShape[a] {
				break
			}
			src -= srcStrides[a] * outShape[a]
			idx[a] = 0
		}
	}

	return out, nil
}
