// SPDX-License-Identifier: MIT

package quantuminfo_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/statevec/engine"
	"github.com/katalvlaran/statevec/gates"
	"github.com/katalvlaran/statevec/quantuminfo"
	"github.com/katalvlaran/statevec/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireMomentNear compares a moment operator to want entry by entry.
func requireMomentNear(t *testing.T, want []complex128, got *tensor.Dense, delta float64) {
	t.Helper()
	data := got.Data()
	require.Len(t, data, len(want))
	for i := range want {
		assert.InDelta(t, real(want[i]), real(data[i]), delta, "re[%d]", i)
		assert.InDelta(t, imag(want[i]), imag(data[i]), delta, "im[%d]", i)
	}
}

func TestHaarIntegral_FirstMoment(t *testing.T) {
	m, err := quantuminfo.HaarIntegral(1, 1, 4000, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, m.Shape())

	tr, err := tensor.Trace(m)
	require.NoError(t, err)
	assert.InDelta(t, 1, real(tr), 1e-12)
	herm, err := tensor.IsHermitian(m, 1e-12)
	require.NoError(t, err)
	assert.True(t, herm)

	// E[|ψ><ψ|] = I/d
	requireMomentNear(t, []complex128{0.5, 0, 0, 0.5}, m, 0.03)
}

func TestHaarIntegral_SecondMoment(t *testing.T) {
	m, err := quantuminfo.HaarIntegral(1, 2, 4000, 5)
	require.NoError(t, err)
	// (I + SWAP)/6 on two copies of one qubit
	s := complex(1.0/6, 0)
	want := []complex128{
		2 * s, 0, 0, 0,
		0, s, s, 0,
		0, s, s, 0,
		0, 0, 0, 2 * s,
	}
	requireMomentNear(t, want, m, 0.03)
}

func TestHaarIntegral_Deterministic(t *testing.T) {
	a, err := quantuminfo.HaarIntegral(2, 1, 16, 9)
	require.NoError(t, err)
	b, err := quantuminfo.HaarIntegral(2, 1, 16, 9)
	require.NoError(t, err)
	assert.Equal(t, a.Data(), b.Data())

	c, err := quantuminfo.HaarIntegral(2, 1, 16, 10)
	require.NoError(t, err)
	assert.NotEqual(t, a.Data(), c.Data())
}

func TestPQCIntegral_FixedCircuit(t *testing.T) {
	// no parameters: every sample is |+>, so the integral is exact
	c := mustCircuit(t, 1, gates.H(0))
	m, err := quantuminfo.PQCIntegral(context.Background(), engine.New(), c, 2, 8, 1)
	require.NoError(t, err)
	q := complex(0.25, 0)
	want := []complex128{q, q, q, q, q, q, q, q, q, q, q, q, q, q, q, q}
	requireMomentNear(t, want, m, 1e-12)
}

func TestPQCIntegral_SingleRotation(t *testing.T) {
	// RY(θ)|0> = cos(θ/2)|0> + sin(θ/2)|1>, θ uniform: E = I/2
	c := mustCircuit(t, 1, gates.RY(0, 0))
	before := c.Parameters()
	m, err := quantuminfo.PQCIntegral(context.Background(), engine.New(), c, 1, 3000, 4)
	require.NoError(t, err)
	requireMomentNear(t, []complex128{0.5, 0, 0, 0.5}, m, 0.05)
	assert.Equal(t, before, c.Parameters())

	// real amplitudes only
	for _, v := range m.Data() {
		assert.InDelta(t, 0, imag(v), 1e-15)
	}
}

func TestIntegrals_Errors(t *testing.T) {
	_, err := quantuminfo.HaarIntegral(0, 1, 1, 1)
	require.ErrorIs(t, err, quantuminfo.ErrInvalidQubitCount)
	_, err = quantuminfo.HaarIntegral(1, 0, 1, 1)
	require.ErrorIs(t, err, quantuminfo.ErrMoment)
	_, err = quantuminfo.HaarIntegral(4, 3, 1, 1)
	require.ErrorIs(t, err, quantuminfo.ErrIntegralSize)
	_, err = quantuminfo.HaarIntegral(1, 1, 0, 1)
	require.ErrorIs(t, err, quantuminfo.ErrSamples)

	c := mustCircuit(t, 2, gates.H(0), gates.CNOT(0, 1))
	_, err = quantuminfo.PQCIntegral(context.Background(), nil, c, 1, 1, 1)
	require.ErrorIs(t, err, quantuminfo.ErrNilArgument)
	_, err = quantuminfo.PQCIntegral(context.Background(), engine.New(), c, math.MaxInt32, 1, 1)
	require.ErrorIs(t, err, quantuminfo.ErrIntegralSize)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = quantuminfo.PQCIntegral(ctx, engine.New(), c, 1, 4, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPurity_NonSquare(t *testing.T) {
	rect, err := tensor.New(2, 3)
	require.NoError(t, err)
	_, err = quantuminfo.Purity(rect)
	require.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}
