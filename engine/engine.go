// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/statevec/tensor"
)

// Engine applies gates to statevectors on a fixed backend. An Engine holds
// no state between calls apart from its configuration, so a single value
// may serve concurrent callers that each own their state buffer. SetThreads
// is the only mutator and must not race with other calls.
type Engine struct {
	opts    Options
	threads int
}

// New returns an engine configured by opts over the documented defaults.
func New(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...), threads: 1}
}

// Backend returns the numeric backend in use.
func (e *Engine) Backend() tensor.Backend { return e.opts.backend }

// Logger returns the engine logger.
func (e *Engine) Logger() *log.Logger { return e.opts.logger }

// MaxQubits returns the configured register limit.
func (e *Engine) MaxQubits() int { return e.opts.maxQubits }

// Threads returns the configured thread count.
func (e *Engine) Threads() int { return e.threads }

// SetThreads configures the number of threads the backend may use.
// k must be at least 1 and at most the backend's MaxThreads; the CPU
// backend accepts only 1.
func (e *Engine) SetThreads(k int) error {
	limit := e.opts.backend.MaxThreads()
	if k < 1 || k > limit {
		return fmt.Errorf("SetThreads(%d): backend %q supports 1..%d: %w", k, e.opts.backend.Name(), limit, ErrThreads)
	}
	e.threads = k

	return nil
}

// ToNumeric copies a backend tensor into a plain flat slice in row-major
// order. A nil tensor yields nil.
func (e *Engine) ToNumeric(x *tensor.Dense) []complex128 {
	if x == nil {
		return nil
	}
	out := make([]complex128, x.Len())
	copy(out, x.Data())

	return out
}
