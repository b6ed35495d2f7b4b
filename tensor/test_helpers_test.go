// SPDX-License-Identifier: MIT
// Package tensor_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures (seeded random tensors).
//   - Provide a naive index-by-index contraction used as the reference oracle.

package tensor_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/statevec/tensor"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// mustNew allocates a zero tensor or fails the test.
func mustNew(tb testing.TB, shape ...int) *tensor.Dense {
	tb.Helper()
	d, err := tensor.New(shape...)
	require.NoError(tb, err)

	return d
}

// mustMatrix builds a matrix from literal rows or fails the test.
func mustMatrix(tb testing.TB, rows [][]complex128) *tensor.Dense {
	tb.Helper()
	m, err := tensor.Matrix(rows)
	require.NoError(tb, err)

	return m
}

// randomDense fills a tensor of the given shape with seeded values in [-1,1)².
func randomDense(tb testing.TB, seed int64, shape ...int) *tensor.Dense {
	tb.Helper()
	d := mustNew(tb, shape...)
	rng := rand.New(rand.NewSource(seed))
	data := d.Data()
	for i := range data {
		data[i] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
	}

	return d
}

// unravel converts a flat row-major offset into a multi-index.
func unravel(off int, shape []int) []int {
	idx := make([]int, len(shape))
	for a := len(shape) - 1; a >= 0; a-- {
		idx[a] = off % shape[a]
		off /= shape[a]
	}

	return idx
}

// ravel converts a multi-index into a flat row-major offset.
func ravel(idx, shape []int) int {
	off := 0
	for a, i := range idx {
		off = off*shape[a] + i
	}

	return off
}

// naiveContract evaluates the contraction one output element at a time.
func naiveContract(tb testing.TB, op, t *tensor.Dense, axes []int) []complex128 {
	tb.Helper()
	shape := t.Shape()
	D := 1
	dims := make([]int, len(axes))
	for a, ax := range axes {
		dims[a] = shape[ax]
		D *= shape[ax]
	}
	opData := op.Data()
	in := t.Data()
	out := make([]complex128, len(in))
	for off := range out {
		idx := unravel(off, shape)
		row := 0
		for a, ax := range axes {
			row = row*dims[a] + idx[ax]
		}
		var acc complex128
		for j := 0; j < D; j++ {
			sub := unravel(j, dims)
			src := append([]int(nil), idx...)
			for a, ax := range axes {
				src[ax] = sub[a]
			}
			acc += opData[row*D+j] * in[ravel(src, shape)]
		}
		out[off] = acc
	}

	return out
}

// requireClose asserts element-wise closeness with a uniform tolerance.
func requireClose(tb testing.TB, want, got []complex128) {
	tb.Helper()
	ok, err := tensor.AllClose(got, want, 0, tol)
	require.NoError(tb, err)
	require.True(tb, ok, "want %v\n got %v", want, got)
}
