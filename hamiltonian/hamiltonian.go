// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"fmt"

	"github.com/katalvlaran/statevec/tensor"
)

// MaxQubits bounds dense observables: a 2^12×2^12 complex matrix is 256 MiB.
const MaxQubits = 12

// DefaultEpsilon is the Hermiticity tolerance applied by New.
const DefaultEpsilon = 1e-9

// Hamiltonian is a dense Hermitian operator on n qubits.
type Hamiltonian struct {
	n      int
	matrix *tensor.Dense
}

// New wraps a copy of m as an n-qubit observable. m must be 2^n×2^n and
// Hermitian within DefaultEpsilon.
func New(n int, m *tensor.Dense) (*Hamiltonian, error) {
	if n < 1 || n > MaxQubits {
		return nil, fmt.Errorf("hamiltonian.New: n=%d: %w", n, ErrInvalidQubitCount)
	}
	if err := tensor.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("hamiltonian.New: %w: %w", ErrShape, err)
	}
	if m.Dim(0) != 1<<n {
		return nil, fmt.Errorf("hamiltonian.New: %d×%d for %d qubits: %w", m.Dim(0), m.Dim(1), n, ErrShape)
	}
	ok, err := tensor.IsHermitian(m, DefaultEpsilon)
	if err != nil {
		return nil, fmt.Errorf("hamiltonian.New: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("hamiltonian.New: %w", ErrNotHermitian)
	}

	return &Hamiltonian{n: n, matrix: m.Clone()}, nil
}

// NumQubits returns n.
func (h *Hamiltonian) NumQubits() int { return h.n }

// Matrix returns a copy of the dense operator.
func (h *Hamiltonian) Matrix() *tensor.Dense { return h.matrix.Clone() }

// Apply returns H|ψ>.
// Complexity: O(4^n).
func (h *Hamiltonian) Apply(state []complex128) ([]complex128, error) {
	if len(state) != 1<<h.n {
		return nil, fmt.Errorf("Apply: len %d for %d qubits: %w", len(state), h.n, ErrStateLength)
	}

	return tensor.MatVec(h.matrix, state)
}

// Expectation returns Re <ψ|H|ψ>. The state is not normalized first.
// Complexity: O(4^n).
func (h *Hamiltonian) Expectation(state []complex128) (float64, error) {
	hpsi, err := h.Apply(state)
	if err != nil {
		return 0, fmt.Errorf("Expectation: %w", err)
	}
	v, err := tensor.InnerProduct(state, hpsi)
	if err != nil {
		return 0, fmt.Errorf("Expectation: %w", err)
	}

	return real(v), nil
}
