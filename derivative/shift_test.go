// SPDX-License-Identifier: MIT

package derivative_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/statevec/circuit"
	"github.com/katalvlaran/statevec/derivative"
	"github.com/katalvlaran/statevec/engine"
	"github.com/katalvlaran/statevec/gates"
	"github.com/katalvlaran/statevec/hamiltonian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-10

func mustCircuit(t *testing.T, n int, gs ...gates.Gate) *circuit.Circuit {
	t.Helper()
	c, err := circuit.New(n)
	require.NoError(t, err)
	require.NoError(t, c.Add(gs...))

	return c
}

func TestParameterShift_SingleRotation(t *testing.T) {
	e := engine.New()
	h, err := hamiltonian.Z(1)
	require.NoError(t, err)
	for _, theta := range []float64{0, 0.3, math.Pi / 2, 2.2, -1.7} {
		for _, g := range []gates.Gate{gates.RY(0, theta), gates.RX(0, theta)} {
			c := mustCircuit(t, 1, g)
			// E(θ) = −cos θ
			d, err := derivative.ParameterShift(context.Background(), e, c, h, 0, nil)
			require.NoError(t, err)
			assert.InDelta(t, math.Sin(theta), d, tol, "%s(%g)", g.Name(), theta)
		}
	}
}

func TestParameterShift_TwoParameters(t *testing.T) {
	e := engine.New()
	h, err := hamiltonian.Z(1)
	require.NoError(t, err)
	a, b := 0.4, -1.1
	c := mustCircuit(t, 1, gates.RY(0, a), gates.RX(0, b))
	before := c.Parameters()

	// E = −cos a · cos b
	da, err := derivative.ParameterShift(context.Background(), e, c, h, 0, nil)
	require.NoError(t, err)
	db, err := derivative.ParameterShift(context.Background(), e, c, h, 1, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(a)*math.Cos(b), da, tol)
	assert.InDelta(t, math.Cos(a)*math.Sin(b), db, tol)
	assert.Equal(t, before, c.Parameters())

	grad, err := derivative.Gradient(context.Background(), e, c, h, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{da, db}, grad, tol)
}

func TestParameterShift_MatchesFiniteDifference(t *testing.T) {
	e := engine.New()
	h, err := hamiltonian.TFIM(3, 0.8)
	require.NoError(t, err)
	c := mustCircuit(t, 3,
		gates.H(0), gates.RY(1, 0.3), gates.CNOT(0, 1),
		gates.RZ(2, 1.2), gates.RX(0, -0.4), gates.CNOT(1, 2), gates.Phase(2, 0.9), gates.H(2),
	)
	initial, err := e.BasisState(3, 0b001)
	require.NoError(t, err)

	energy := func(params []float64) float64 {
		cp := c.Copy()
		require.NoError(t, cp.SetParameters(params))
		psi, err := e.Execute(context.Background(), cp, initial)
		require.NoError(t, err)
		v, err := h.Expectation(psi)
		require.NoError(t, err)
		return v
	}
	const step = 1e-5
	for i := range c.Parameters() {
		plus, minus := c.Parameters(), c.Parameters()
		plus[i] += step
		minus[i] -= step
		fd := (energy(plus) - energy(minus)) / (2 * step)
		d, err := derivative.ParameterShift(context.Background(), e, c, h, i, initial)
		require.NoError(t, err)
		assert.InDelta(t, fd, d, 1e-6, "parameter %d", i)
	}
}

func TestParameterShift_Errors(t *testing.T) {
	e := engine.New()
	ctx := context.Background()
	h1, err := hamiltonian.Z(1)
	require.NoError(t, err)
	h2, err := hamiltonian.Z(2)
	require.NoError(t, err)

	_, err = derivative.ParameterShift(ctx, e, mustCircuit(t, 1, gates.U3(0, 1, 2, 3)), h1, 0, nil)
	require.ErrorIs(t, err, gates.ErrNoGenerator)
	_, err = derivative.ParameterShift(ctx, e, mustCircuit(t, 2, gates.CRX(0, 1, 0.2)), h2, 0, nil)
	require.ErrorIs(t, err, gates.ErrNoGenerator)
	_, err = derivative.ParameterShift(ctx, e, mustCircuit(t, 1, gates.RX(0, 1)), h1, 1, nil)
	require.ErrorIs(t, err, circuit.ErrParameterIndex)
	_, err = derivative.ParameterShift(ctx, e, mustCircuit(t, 1, gates.RX(0, 1)), h2, 0, nil)
	require.ErrorIs(t, err, derivative.ErrQubitMismatch)
	_, err = derivative.ParameterShift(ctx, nil, mustCircuit(t, 1), h1, 0, nil)
	require.ErrorIs(t, err, derivative.ErrNilArgument)
	_, err = derivative.Gradient(ctx, e, nil, h1, nil)
	require.ErrorIs(t, err, derivative.ErrNilArgument)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = derivative.ParameterShift(cancelled, e, mustCircuit(t, 1, gates.RY(0, 1)), h1, 0, nil)
	require.ErrorIs(t, err, context.Canceled)
}
