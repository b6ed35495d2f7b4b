// SPDX-License-Identifier: MIT
// Package gates: sentinel error set.
// Wrap with fmt.Errorf("Tag: %w", ErrX) at the detection site; callers use errors.Is.

package gates

import "errors"

var (
	// ErrBadMatrix indicates a matrix that is nil, not square, or not
	// 2^k×2^k for the declared k target qubits.
	ErrBadMatrix = errors.New("gates: invalid gate matrix")

	// ErrBadQubits indicates a missing target list or a negative qubit index.
	ErrBadQubits = errors.New("gates: invalid qubit indices")

	// ErrOverlap indicates a qubit listed twice, or shared by controls and targets.
	ErrOverlap = errors.New("gates: overlapping qubit indices")

	// ErrParameterCount indicates WithParameters received the wrong number of values.
	ErrParameterCount = errors.New("gates: wrong number of parameters")

	// ErrNoGenerator indicates the gate has no single-eigenvalue generator
	// (fixed gates, U3, controlled rotations).
	ErrNoGenerator = errors.New("gates: gate has no generator eigenvalue")
)
