// SPDX-License-Identifier: MIT
// Package engine: sentinel error set.
// Engine methods wrap these with the operation name; lower-level sentinels
// from tensor and gates stay reachable through errors.Is as well.

package engine

import "errors"

var (
	// ErrInvalidQubitCount indicates a negative qubit count.
	ErrInvalidQubitCount = errors.New("engine: invalid qubit count")

	// ErrAllocation indicates a register whose 2^n amplitudes exceed the
	// configured limit (see WithMaxQubits).
	ErrAllocation = errors.New("engine: state too large to allocate")

	// ErrStateLength indicates a state vector whose length is not 2^n.
	ErrStateLength = errors.New("engine: state length does not match qubit count")

	// ErrQubitOutOfRange indicates a gate touching a qubit ≥ n.
	ErrQubitOutOfRange = errors.New("engine: qubit index out of range")

	// ErrShape indicates a gate matrix that does not fit its qubits, or an
	// operator/axes mismatch during contraction.
	ErrShape = errors.New("engine: invalid gate shape")

	// ErrNotUnitary indicates a gate matrix rejected by the unitarity check
	// (only when WithValidateUnitary is enabled).
	ErrNotUnitary = errors.New("engine: gate matrix is not unitary")

	// ErrUnsupported indicates a request outside what an operation handles,
	// e.g. ControlMatrix on a gate without exactly one control.
	ErrUnsupported = errors.New("engine: unsupported operation")

	// ErrThreads indicates a thread count the backend cannot honor.
	ErrThreads = errors.New("engine: unsupported thread count")

	// ErrNotClose indicates AssertClose found an element outside tolerance.
	ErrNotClose = errors.New("engine: values not close")
)
