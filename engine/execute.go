// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/statevec/gates"
)

// Program is an ordered gate list on a fixed register.
// circuit.Circuit satisfies it.
type Program interface {
	NumQubits() int
	Gates() []gates.Gate
}

// Execute applies every gate of p in order to initial, or to |0…0> when
// initial is nil, and returns the final state. initial is not modified.
//
// Cancellation is checked between gates; a gate that has started always
// completes. On any error no state is returned.
func (e *Engine) Execute(ctx context.Context, p Program, initial []complex128) ([]complex128, error) {
	n := p.NumQubits()
	var (
		state []complex128
		err   error
	)
	if initial == nil {
		state, err = e.ZeroState(n)
	} else {
		err = e.validateState("Execute", initial, n)
		state = slices.Clone(initial)
	}
	if err != nil {
		return nil, err
	}

	gs := p.Gates()
	logger := e.opts.logger.With("run", uuid.NewString(), "qubits", n, "backend", e.opts.backend.Name())
	logger.Info("execute started", "gates", len(gs))
	start := time.Now()

	for i, g := range gs {
		if err := ctx.Err(); err != nil {
			logger.Warn("execute cancelled", "applied", i, "err", err)
			return nil, fmt.Errorf("Execute: after %d of %d gates: %w", i, len(gs), err)
		}
		state, err = e.ApplyGate(g, state, n)
		if err != nil {
			logger.Error("gate failed", "index", i, "gate", g.Name(), "err", err)
			return nil, fmt.Errorf("Execute: gate %d: %w", i, err)
		}
		logger.Debug("gate applied", "index", i, "gate", g.Name(), "qubits", g.Qubits())
	}
	logger.Info("execute finished", "gates", len(gs), "elapsed", time.Since(start))

	return state, nil
}
