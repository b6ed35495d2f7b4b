// SPDX-License-Identifier: MIT

package hamiltonian

import "errors"

var (
	// ErrInvalidQubitCount indicates a register size a model cannot be built
	// for (n < 1, n < 2 for two-body models, or above MaxQubits).
	ErrInvalidQubitCount = errors.New("hamiltonian: invalid qubit count")

	// ErrShape indicates a matrix that is not 2^n×2^n.
	ErrShape = errors.New("hamiltonian: matrix shape does not match qubit count")

	// ErrNotHermitian indicates a matrix that differs from its adjoint.
	ErrNotHermitian = errors.New("hamiltonian: matrix is not Hermitian")

	// ErrStateLength indicates a state whose length is not 2^n.
	ErrStateLength = errors.New("hamiltonian: state length does not match qubit count")
)
