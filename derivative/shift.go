// SPDX-License-Identifier: MIT

package derivative

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/statevec/circuit"
	"github.com/katalvlaran/statevec/engine"
	"github.com/katalvlaran/statevec/hamiltonian"
	"golang.org/x/sync/errgroup"
)

// Executor runs a program from an initial state; *engine.Engine implements it.
type Executor interface {
	Execute(ctx context.Context, p engine.Program, initial []complex128) ([]complex128, error)
}

// ParameterShift returns ∂<H>/∂θ_index for circuit c started from initial
// (nil means |0…0>).
//
// Implementation:
//   - Stage 1 (Validate): non-nil inputs, matching qubit counts, the gate
//     owning index reports a generator eigenvalue r.
//   - Stage 2 (Shift): two copies of c with θ_index ± π/(4r).
//   - Stage 3 (Evaluate): run both copies concurrently and combine
//     r·(forward − backward).
//
// Errors: circuit.ErrParameterIndex, gates.ErrNoGenerator, anything the
// executor or observable returns, or ctx.Err().
func ParameterShift(ctx context.Context, exec Executor, c *circuit.Circuit, h *hamiltonian.Hamiltonian, index int, initial []complex128) (float64, error) {
	if exec == nil || c == nil || h == nil {
		return 0, fmt.Errorf("ParameterShift: %w", ErrNilArgument)
	}
	if h.NumQubits() != c.NumQubits() {
		return 0, fmt.Errorf("ParameterShift: observable %d vs circuit %d: %w", h.NumQubits(), c.NumQubits(), ErrQubitMismatch)
	}
	g, err := c.ParametrizedGate(index)
	if err != nil {
		return 0, fmt.Errorf("ParameterShift: %w", err)
	}
	r, err := g.GeneratorEigenvalue()
	if err != nil {
		return 0, fmt.Errorf("ParameterShift: parameter %d: %w", index, err)
	}
	s := math.Pi / (4 * r)

	shifted := func(delta float64) (*circuit.Circuit, error) {
		params := c.Parameters()
		params[index] += delta
		cp := c.Copy()
		if err := cp.SetParameters(params); err != nil {
			return nil, err
		}
		return cp, nil
	}
	fwdCircuit, err := shifted(s)
	if err != nil {
		return 0, fmt.Errorf("ParameterShift: %w", err)
	}
	bwdCircuit, err := shifted(-s)
	if err != nil {
		return 0, fmt.Errorf("ParameterShift: %w", err)
	}

	var forward, backward float64
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		v, err := expectation(gctx, exec, fwdCircuit, h, initial)
		forward = v
		return err
	})
	grp.Go(func() error {
		v, err := expectation(gctx, exec, bwdCircuit, h, initial)
		backward = v
		return err
	})
	if err := grp.Wait(); err != nil {
		return 0, fmt.Errorf("ParameterShift: %w", err)
	}

	return r * (forward - backward), nil
}

// Gradient returns the parameter-shift derivative for every trainable
// parameter of c, evaluated concurrently.
func Gradient(ctx context.Context, exec Executor, c *circuit.Circuit, h *hamiltonian.Hamiltonian, initial []complex128) ([]float64, error) {
	if c == nil {
		return nil, fmt.Errorf("Gradient: %w", ErrNilArgument)
	}
	grad := make([]float64, len(c.Parameters()))
	grp, gctx := errgroup.WithContext(ctx)
	for i := range grad {
		grp.Go(func() error {
			d, err := ParameterShift(gctx, exec, c, h, i, initial)
			grad[i] = d
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("Gradient: %w", err)
	}

	return grad, nil
}

func expectation(ctx context.Context, exec Executor, c *circuit.Circuit, h *hamiltonian.Hamiltonian, initial []complex128) (float64, error) {
	psi, err := exec.Execute(ctx, c, initial)
	if err != nil {
		return 0, err
	}

	return h.Expectation(psi)
}
