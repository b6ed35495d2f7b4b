// SPDX-License-Identifier: MIT

package dbf

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/katalvlaran/statevec/tensor"
	"golang.org/x/sync/errgroup"
)

// Loss returns the off-diagonal norm reached after lookAhead steps of size
// step with the configured generator. The flow itself is not advanced.
// Complexity: O(lookAhead·d³).
func (f *Flow) Loss(step float64, lookAhead int, d *tensor.Dense) (float64, error) {
	if lookAhead < 1 {
		return 0, fmt.Errorf("Loss: look-ahead %d: %w", lookAhead, ErrLookAhead)
	}
	h := f.h
	for i := 0; i < lookAhead; i++ {
		next, err := advance(h, f.opts.generator, step, d)
		if err != nil {
			return 0, fmt.Errorf("Loss(%g): %w", step, err)
		}
		h = next
	}

	return offDiagonalNorm(h), nil
}

// BestStep returns the step in [lo, hi] with the smallest Loss on an
// evals-point uniform grid (both ends included). Grid points are evaluated
// concurrently on up to GOMAXPROCS goroutines; ties go to the smaller step,
// so the result is deterministic.
//
// Errors: ErrStepRange for non-finite or reversed bounds or evals < 2,
// ErrLookAhead, any generator error, or ctx.Err().
//
// Complexity: O(evals·lookAhead·d³) work.
func (f *Flow) BestStep(ctx context.Context, lo, hi float64, evals, lookAhead int, d *tensor.Dense) (float64, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || hi <= lo || evals < 2 {
		return 0, fmt.Errorf("BestStep([%g, %g], %d): %w", lo, hi, evals, ErrStepRange)
	}
	if lookAhead < 1 {
		return 0, fmt.Errorf("BestStep: look-ahead %d: %w", lookAhead, ErrLookAhead)
	}

	steps := make([]float64, evals)
	losses := make([]float64, evals)
	width := (hi - lo) / float64(evals-1)
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))
	for i := range steps {
		steps[i] = lo + float64(i)*width
		if i == evals-1 {
			steps[i] = hi
		}
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := f.Loss(steps[i], lookAhead, d)
			losses[i] = v
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return 0, fmt.Errorf("BestStep: %w", err)
	}

	best := 0
	for i, v := range losses {
		if v < losses[best] {
			best = i
		}
	}
	f.opts.logger.Debug("step search", "lo", lo, "hi", hi, "evals", evals, "step", steps[best], "loss", losses[best])

	return steps[best], nil
}
