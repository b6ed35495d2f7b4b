// SPDX-License-Identifier: MIT

package engine_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/statevec/engine"
	"github.com/katalvlaran/statevec/gates"
	"github.com/katalvlaran/statevec/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlOrder_Examples(t *testing.T) {
	cases := []struct {
		controls, targets []int
		n                 int
		order, adjusted   []int
	}{
		{nil, []int{2}, 3, []int{0, 1, 2}, []int{2}},
		{[]int{0}, []int{1}, 2, []int{0, 1}, []int{0}},
		{[]int{1}, []int{0}, 2, []int{1, 0}, []int{0}},
		{[]int{3, 1}, []int{2, 0, 4}, 5, []int{1, 3, 0, 2, 4}, []int{1, 0, 2}},
		{[]int{2}, []int{0, 3}, 4, []int{2, 0, 1, 3}, []int{0, 2}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("C%v/T%v/n%d", tc.controls, tc.targets, tc.n), func(t *testing.T) {
			p, err := engine.ControlOrder(tc.controls, tc.targets, tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.order, p.Order)
			assert.Equal(t, tc.adjusted, p.Targets)
		})
	}
}

// Every control subset with |C| < n: Order∘Inverse is the identity, the
// adjusted targets point back at the original qubits, and transposing a
// tensor there and back is lossless.
func TestControlOrder_RoundTripExhaustive(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for mask := 0; mask < 1<<n; mask++ {
			var controls, targets []int
			for q := 0; q < n; q++ {
				if mask>>q&1 == 1 {
					controls = append(controls, q)
				} else {
					targets = append(targets, q)
				}
			}
			if len(controls) == n {
				continue
			}
			p, err := engine.ControlOrder(controls, targets, n)
			require.NoError(t, err)
			for i := 0; i < n; i++ {
				require.Equal(t, i, p.Order[p.Inverse[i]])
				require.Equal(t, i, p.Inverse[p.Order[i]])
			}
			m := len(controls)
			for i, tq := range targets {
				require.Equal(t, tq, p.Order[m+p.Targets[i]], "n=%d C=%v", n, controls)
			}
			if n <= 5 {
				psi := randomState(int64(mask), n)
				d, err := tensor.FromSlice(psi, tensor.BinaryShape(n)...)
				require.NoError(t, err)
				fwd, err := tensor.Transpose(d, p.Order)
				require.NoError(t, err)
				back, err := tensor.Transpose(fwd, p.Inverse)
				require.NoError(t, err)
				require.Equal(t, psi, back.Data())
			}
		}
	}
}

func TestControlOrder_Deterministic(t *testing.T) {
	a, err := engine.ControlOrder([]int{4, 0, 2}, []int{1}, 6)
	require.NoError(t, err)
	b, err := engine.ControlOrder([]int{4, 0, 2}, []int{1}, 6)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, []int{0, 2, 4, 1, 3, 5}, a.Order)
}

func TestControlOrder_Errors(t *testing.T) {
	_, err := engine.ControlOrder(nil, nil, -1)
	require.ErrorIs(t, err, engine.ErrInvalidQubitCount)
	_, err = engine.ControlOrder([]int{3}, []int{0}, 3)
	require.ErrorIs(t, err, engine.ErrQubitOutOfRange)
	_, err = engine.ControlOrder([]int{0}, []int{-1}, 3)
	require.ErrorIs(t, err, engine.ErrQubitOutOfRange)
	_, err = engine.ControlOrder([]int{1, 1}, []int{0}, 3)
	require.ErrorIs(t, err, gates.ErrOverlap)
	_, err = engine.ControlOrder([]int{1}, []int{1}, 3)
	require.ErrorIs(t, err, gates.ErrOverlap)
}
