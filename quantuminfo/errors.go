// SPDX-License-Identifier: MIT

package quantuminfo

import "errors"

var (
	// ErrStateLength indicates a state whose length is not 2^n, or two
	// states of different lengths.
	ErrStateLength = errors.New("quantuminfo: state length mismatch")

	// ErrQubitOutOfRange indicates a qubit index outside [0, n).
	ErrQubitOutOfRange = errors.New("quantuminfo: qubit index out of range")

	// ErrInvalidQubitCount indicates n < 1 where at least one qubit is required.
	ErrInvalidQubitCount = errors.New("quantuminfo: invalid qubit count")

	// ErrBase indicates a logarithm base that is not finite and > 1.
	ErrBase = errors.New("quantuminfo: invalid logarithm base")

	// ErrSamples indicates a non-positive sample count.
	ErrSamples = errors.New("quantuminfo: sample count must be positive")

	// ErrMoment indicates a tensor power t < 1.
	ErrMoment = errors.New("quantuminfo: moment must be at least 1")

	// ErrIntegralSize indicates a moment operator wider than MaxIntegralQubits.
	ErrIntegralSize = errors.New("quantuminfo: integral operator too large")

	// ErrNilArgument indicates a nil executor or circuit.
	ErrNilArgument = errors.New("quantuminfo: nil argument")
)
