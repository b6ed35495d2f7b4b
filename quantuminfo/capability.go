// SPDX-License-Identifier: MIT

package quantuminfo

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/statevec/circuit"
	"github.com/katalvlaran/statevec/engine"
	"golang.org/x/sync/errgroup"
)

// Executor runs a program from an initial state; *engine.Engine implements it.
type Executor interface {
	Execute(ctx context.Context, p engine.Program, initial []complex128) ([]complex128, error)
}

// EntanglingCapability estimates how much entanglement a parametrized
// circuit produces on average: 2·E_θ[Q(U(θ)|0…0>)] with Q the Meyer-Wallach
// measure and θ drawn uniformly from [−π, π) per parameter.
//
// Implementation:
//   - Stage 1 (Validate): non-nil exec and c, samples > 0.
//   - Stage 2 (Sample): sample i uses a stream derived from (seed, i), so the
//     estimate depends only on seed, never on scheduling. seed==0 maps to 1.
//   - Stage 3 (Evaluate): samples run on up to GOMAXPROCS goroutines; the
//     first failure cancels the rest.
//
// c itself is never modified. A circuit without parameters is evaluated
// once per sample like any other.
//
// Complexity: samples × (Execute + O(n·2^n)).
func EntanglingCapability(ctx context.Context, exec Executor, c *circuit.Circuit, samples int, seed int64) (float64, error) {
	if exec == nil || c == nil {
		return 0, fmt.Errorf("EntanglingCapability: %w", ErrNilArgument)
	}
	if samples <= 0 {
		return 0, fmt.Errorf("EntanglingCapability: samples=%d: %w", samples, ErrSamples)
	}
	states, err := sampleStates(ctx, exec, c, samples, seed)
	if err != nil {
		return 0, fmt.Errorf("EntanglingCapability: %w", err)
	}

	q := make([]float64, samples)
	for i, psi := range states {
		if q[i], err = MeyerWallach(psi, c.NumQubits()); err != nil {
			return 0, fmt.Errorf("EntanglingCapability: %w", err)
		}
	}

	var sum float64
	for _, v := range q {
		sum += v
	}

	return 2 * sum / float64(samples), nil
}

// sampleStates runs c once per sample with parameters drawn uniformly from
// [−π, π) and returns the final states in sample order. c is not modified.
func sampleStates(ctx context.Context, exec Executor, c *circuit.Circuit, samples int, seed int64) ([][]complex128, error) {
	k := len(c.Parameters())
	states := make([][]complex128, samples)
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < samples; i++ {
		grp.Go(func() error {
			cp := c.Copy()
			if err := cp.SetParameters(uniformAngles(sampleRNG(seed, i), k)); err != nil {
				return err
			}
			psi, err := exec.Execute(gctx, cp, nil)
			states[i] = psi
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return states, nil
}
