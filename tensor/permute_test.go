// SPDX-License-Identifier: MIT

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/statevec/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInversePermutation(t *testing.T) {
	inv, err := tensor.InversePermutation([]int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, inv)

	_, err = tensor.InversePermutation([]int{0, 0})
	require.ErrorIs(t, err, tensor.ErrBadPermutation)
}

func TestTranspose_Matrix(t *testing.T) {
	m := mustMatrix(t, [][]complex128{{1, 2, 3}, {4, 5, 6}})
	tr, err := tensor.Transpose(m, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, tr.Shape())
	assert.Equal(t, []complex128{1, 4, 2, 5, 3, 6}, tr.Data())
}

func TestTranspose_MatchesIndexMapping(t *testing.T) {
	shape := []int{2, 3, 2, 2}
	d := randomDense(t, 7, shape...)
	perm := []int{2, 0, 3, 1}
	tr, err := tensor.Transpose(d, perm)
	require.NoError(t, err)

	outShape := tr.Shape()
	for off, v := range tr.Data() {
		oi := unravel(off, outShape)
		src := make([]int, len(shape))
		for i, p := range perm {
			src[p] = oi[i]
		}
		want, err := d.At(src...)
		require.NoError(t, err)
		require.Equal(t, want, v, "offset %d", off)
	}
}

func TestTranspose_RoundTrip(t *testing.T) {
	d := randomDense(t, 3, 2, 2, 2, 2, 2)
	perms := [][]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{1, 3, 0, 4, 2},
		{2, 0, 1, 4, 3},
	}
	for _, p := range perms {
		inv, err := tensor.InversePermutation(p)
		require.NoError(t, err)
		fwd, err := tensor.Transpose(d, p)
		require.NoError(t, err)
		back, err := tensor.Transpose(fwd, inv)
		require.NoError(t, err)
		assert.Equal(t, d.Data(), back.Data(), "perm %v", p)
	}
}

func TestTranspose_DoesNotAlias(t *testing.T) {
	d := randomDense(t, 5, 2, 2)
	same, err := tensor.Transpose(d, []int{0, 1})
	require.NoError(t, err)
	same.Data()[0] = 100
	assert.NotEqual(t, complex(100, 0), d.Data()[0])
}

func TestTranspose_Errors(t *testing.T) {
	d := mustNew(t, 2, 2)
	_, err := tensor.Transpose(d, []int{0})
	require.ErrorIs(t, err, tensor.ErrBadPermutation)
	_, err = tensor.Transpose(d, []int{0, 2})
	require.ErrorIs(t, err, tensor.ErrBadPermutation)
	_, err = tensor.Transpose(nil, []int{0})
	require.ErrorIs(t, err, tensor.ErrNilTensor)
}
