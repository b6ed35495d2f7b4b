// SPDX-License-Identifier: MIT
// Package engine_test contains test helpers
//
// Purpose:
//   - Seeded random states and unitaries.
//   - A bit-indexing reference simulator that applies a gate the textbook
//     way, used as the oracle for the tensor path.

package engine_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/statevec/engine"
	"github.com/katalvlaran/statevec/gates"
	"github.com/katalvlaran/statevec/tensor"
	"github.com/stretchr/testify/require"
)

const tol = 1e-10

// randomState returns a normalized seeded n-qubit state.
func randomState(seed int64, n int) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex128, 1<<n)
	for i := range out {
		out[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	norm := complex(tensor.Norm2(out), 0)
	for i := range out {
		out[i] /= norm
	}

	return out
}

// randomU3 returns a seeded single-qubit rotation on q.
func randomU3(rng *rand.Rand, q int) gates.Uncontrolled {
	return gates.U3(q, rng.Float64()*math.Pi, rng.Float64()*2*math.Pi, rng.Float64()*2*math.Pi)
}

// randomTwoQubit returns a seeded entangling 2-qubit unitary on (a, b):
// (U3 ⊗ U3) · CNOT.
func randomTwoQubit(tb testing.TB, seed int64, a, b int) gates.Uncontrolled {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	k, err := tensor.Kron(randomU3(rng, 0).Matrix(), randomU3(rng, 0).Matrix())
	require.NoError(tb, err)
	cx := gates.CNOT(0, 1)
	id, err := tensor.Identity(2)
	require.NoError(tb, err)
	cxm, err := tensor.BlockDiag(id, cx.Matrix())
	require.NoError(tb, err)
	m, err := tensor.MatMul(k, cxm)
	require.NoError(tb, err)
	g, err := gates.Unitary(m, a, b)
	require.NoError(tb, err)

	return g
}

// bit returns the value of qubit q in basis index idx (qubit 0 = MSB).
func bit(idx, q, n int) int { return (idx >> (n - 1 - q)) & 1 }

// naiveApply applies g by enumerating basis states.
func naiveApply(g gates.Gate, state []complex128, n int) []complex128 {
	u := g.Matrix()
	d := u.Dim(0)
	ud := u.Data()
	targets, controls := g.Targets(), g.Controls()
	out := make([]complex128, len(state))
	for idx, amp := range state {
		active := true
		for _, c := range controls {
			if bit(idx, c, n) == 0 {
				active = false
				break
			}
		}
		if !active {
			out[idx] += amp
			continue
		}
		col := 0
		for _, t := range targets {
			col = col<<1 | bit(idx, t, n)
		}
		for row := 0; row < d; row++ {
			dst := idx
			for j, t := range targets {
				shift := n - 1 - t
				b := (row >> (len(targets) - 1 - j)) & 1
				dst = dst&^(1<<shift) | b<<shift
			}
			out[dst] += ud[row*d+col] * amp
		}
	}

	return out
}

// mustApply applies g or fails the test.
func mustApply(tb testing.TB, e *engine.Engine, g gates.Gate, state []complex128, n int) []complex128 {
	tb.Helper()
	out, err := e.ApplyGate(g, state, n)
	require.NoError(tb, err)

	return out
}

// requireClose asserts closeness through engine.AssertClose.
func requireClose(tb testing.TB, want, got []complex128) {
	tb.Helper()
	require.NoError(tb, engine.AssertClose(got, want, 0, tol))
}

// program is a minimal engine.Program.
type program struct {
	n  int
	gs []gates.Gate
}

func (p program) NumQubits() int     { return p.n }
func (p program) Gates() []gates.Gate { return p.gs }
