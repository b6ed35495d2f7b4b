// SPDX-License-Identifier: MIT

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/statevec/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice_ViewOnLeadingAxis(t *testing.T) {
	d := randomDense(t, 11, 4, 2, 2)
	s, err := tensor.Slice(d, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, s.Shape())
	assert.Equal(t, d.Data()[4:12], s.Data())

	// shares the buffer
	s.Data()[0] = 77
	assert.Equal(t, complex(77, 0), d.Data()[4])
	// capacity is clipped so appends cannot clobber the remainder
	assert.Equal(t, len(s.Data()), cap(s.Data()))
}

func TestSlice_Bounds(t *testing.T) {
	d := mustNew(t, 4, 2)
	for _, b := range [][2]int{{-1, 2}, {0, 5}, {2, 2}, {3, 1}} {
		_, err := tensor.Slice(d, b[0], b[1])
		require.ErrorIs(t, err, tensor.ErrOutOfRange, "bounds %v", b)
	}
	_, err := tensor.Slice(mustNew(t), 0, 1)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
}

func TestConcatenate_InvertsSlicing(t *testing.T) {
	d := randomDense(t, 13, 8, 2)
	a, err := tensor.Slice(d, 0, 7)
	require.NoError(t, err)
	b, err := tensor.Slice(d, 7, 8)
	require.NoError(t, err)

	joined, err := tensor.Concatenate(a, b)
	require.NoError(t, err)
	assert.Equal(t, d.Shape(), joined.Shape())
	assert.Equal(t, d.Data(), joined.Data())

	// the result owns its buffer
	joined.Data()[0] = 1000
	assert.NotEqual(t, complex(1000, 0), d.Data()[0])
}

func TestConcatenate_Errors(t *testing.T) {
	_, err := tensor.Concatenate()
	require.ErrorIs(t, err, tensor.ErrNilTensor)
	_, err = tensor.Concatenate(mustNew(t, 2, 2), mustNew(t, 2, 3))
	require.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	_, err = tensor.Concatenate(mustNew(t, 2, 2), mustNew(t, 4))
	require.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	_, err = tensor.Concatenate(mustNew(t, 2), nil)
	require.ErrorIs(t, err, tensor.ErrNilTensor)
}
