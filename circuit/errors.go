// SPDX-License-Identifier: MIT

package circuit

import "errors"

var (
	// ErrInvalidQubitCount indicates a negative register size.
	ErrInvalidQubitCount = errors.New("circuit: invalid qubit count")

	// ErrQubitOutOfRange indicates a gate touching a qubit ≥ NumQubits.
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrParameterCount indicates SetParameters received the wrong number of values.
	ErrParameterCount = errors.New("circuit: wrong number of parameters")

	// ErrParameterIndex indicates a flat parameter index outside [0, len(Parameters())).
	ErrParameterIndex = errors.New("circuit: parameter index out of range")
)
