// SPDX-License-Identifier: MIT

package dbf

import "errors"

var (
	// ErrNilHamiltonian indicates a nil starting Hamiltonian.
	ErrNilHamiltonian = errors.New("dbf: nil hamiltonian")

	// ErrUnknownGenerator indicates a Generator value outside the defined set.
	ErrUnknownGenerator = errors.New("dbf: unknown generator")

	// ErrNoDiagonal indicates a generator that needs D was called without one.
	ErrNoDiagonal = errors.New("dbf: generator requires a diagonal operator")

	// ErrShape indicates D does not match the Hamiltonian's dimension.
	ErrShape = errors.New("dbf: operator shape mismatch")

	// ErrLookAhead indicates a look-ahead below 1.
	ErrLookAhead = errors.New("dbf: look-ahead must be at least 1")

	// ErrStepRange indicates an empty, reversed or non-finite step interval,
	// or fewer than two grid points.
	ErrStepRange = errors.New("dbf: invalid step search range")

	// ErrZeroState indicates a zero vector where a state is required.
	ErrZeroState = errors.New("dbf: zero state")
)
