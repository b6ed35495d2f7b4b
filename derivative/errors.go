// SPDX-License-Identifier: MIT

package derivative

import "errors"

var (
	// ErrNilArgument indicates a nil executor, circuit or observable.
	ErrNilArgument = errors.New("derivative: nil argument")

	// ErrQubitMismatch indicates an observable sized for a different register.
	ErrQubitMismatch = errors.New("derivative: observable and circuit qubit counts differ")
)
