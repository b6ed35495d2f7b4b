// SPDX-License-Identifier: MIT

// Package engine: functional configuration. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic only on nonsensical values,
//   - gatherOptions, which resolves a list of options over the defaults.

package engine

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/statevec/tensor"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxQubits caps register size: 2^28 amplitudes are 4 GiB.
	DefaultMaxQubits = 28

	// DefaultValidateUnitary toggles the U†U = I check on every ApplyGate.
	DefaultValidateUnitary = false

	// DefaultEpsilon is the tolerance of the unitarity check.
	DefaultEpsilon = 1e-9

	// DefaultLogPrefix tags every record written by the engine logger.
	DefaultLogPrefix = "statevec"
)

// maxSupportedQubits is the largest n whose 2^n amplitudes stay below the
// tensor element limit on 64-bit platforms.
const maxSupportedQubits = 58

// ---------- Internal panic messages ----------

const (
	panicNilBackend     = "engine: WithBackend: backend must be non-nil"
	panicNilLogger      = "engine: WithLogger: logger must be non-nil"
	panicMaxQubits      = "engine: WithMaxQubits: n must be in [0, 58]"
	panicEpsilonInvalid = "engine: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective engine configuration.
type Options struct {
	backend         tensor.Backend
	logger          *log.Logger
	maxQubits       int
	validateUnitary bool
	eps             float64
}

// WithBackend selects the numeric backend.
func WithBackend(b tensor.Backend) Option {
	if b == nil {
		panic(panicNilBackend)
	}

	return func(o *Options) { o.backend = b }
}

// WithLogger routes engine records to l. The default logger discards.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithMaxQubits sets the largest register the engine will allocate or accept.
func WithMaxQubits(n int) Option {
	if n < 0 || n > maxSupportedQubits {
		panic(panicMaxQubits)
	}

	return func(o *Options) { o.maxQubits = n }
}

// WithValidateUnitary makes ApplyGate reject gate matrices with
// max|U†U − I| > eps.
func WithValidateUnitary(on bool) Option {
	return func(o *Options) { o.validateUnitary = on }
}

// WithEpsilon sets the unitarity tolerance.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		backend:         tensor.NewCPU(),
		logger:          log.NewWithOptions(io.Discard, log.Options{Prefix: DefaultLogPrefix}),
		maxQubits:       DefaultMaxQubits,
		validateUnitary: DefaultValidateUnitary,
		eps:             DefaultEpsilon,
	}
}

// gatherOptions applies opts over the defaults; last writer wins.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
