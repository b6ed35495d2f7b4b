// SPDX-License-Identifier: MIT

package quantuminfo

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/statevec/circuit"
	"github.com/katalvlaran/statevec/tensor"
)

// MaxIntegralQubits caps n·t for the moment operators below; the result is
// a dense 2^(n·t) × 2^(n·t) matrix.
const MaxIntegralQubits = 10

// HaarIntegral estimates ∫ (|ψ><ψ|)^{⊗t} dψ over Haar-random n-qubit pure
// states from samples draws. Sample i uses the stream derived from
// (seed, i); seed==0 maps to the default stream.
//
// The exact value is Π_sym/binom(2^n+t−1, t), e.g. (I + SWAP)/(d(d+1)) for
// t = 2, so the estimate is the reference an expressibility study compares
// PQCIntegral against.
//
// Complexity: samples × O(4^(n·t)).
func HaarIntegral(n, t, samples int, seed int64) (*tensor.Dense, error) {
	if err := checkMoment("HaarIntegral", n, t, samples); err != nil {
		return nil, err
	}
	d := 1 << n
	acc, err := newMoment(n, t)
	if err != nil {
		return nil, fmt.Errorf("HaarIntegral: %w", err)
	}
	for i := 0; i < samples; i++ {
		if err := addMoment(acc, haarState(sampleRNG(seed, i), d), t); err != nil {
			return nil, fmt.Errorf("HaarIntegral: %w", err)
		}
	}

	return tensor.Scale(acc, complex(1/float64(samples), 0))
}

// PQCIntegral estimates ∫ (|ψ_θ><ψ_θ|)^{⊗t} dθ for the states a
// parametrized circuit prepares from |0…0>, with every parameter drawn
// uniformly from [−π, π). Circuit runs are concurrent and seeded as in
// EntanglingCapability; the accumulation is sequential in sample order, so
// the result depends only on seed.
//
// Complexity: samples × (Execute + O(4^(n·t))).
func PQCIntegral(ctx context.Context, exec Executor, c *circuit.Circuit, t, samples int, seed int64) (*tensor.Dense, error) {
	if exec == nil || c == nil {
		return nil, fmt.Errorf("PQCIntegral: %w", ErrNilArgument)
	}
	n := c.NumQubits()
	if err := checkMoment("PQCIntegral", n, t, samples); err != nil {
		return nil, err
	}
	states, err := sampleStates(ctx, exec, c, samples, seed)
	if err != nil {
		return nil, fmt.Errorf("PQCIntegral: %w", err)
	}
	acc, err := newMoment(n, t)
	if err != nil {
		return nil, fmt.Errorf("PQCIntegral: %w", err)
	}
	for _, psi := range states {
		if err := addMoment(acc, psi, t); err != nil {
			return nil, fmt.Errorf("PQCIntegral: %w", err)
		}
	}

	return tensor.Scale(acc, complex(1/float64(samples), 0))
}

func checkMoment(op string, n, t, samples int) error {
	if n < 1 {
		return fmt.Errorf("%s: n=%d: %w", op, n, ErrInvalidQubitCount)
	}
	if t < 1 {
		return fmt.Errorf("%s: t=%d: %w", op, t, ErrMoment)
	}
	if n*t > MaxIntegralQubits {
		return fmt.Errorf("%s: n·t=%d exceeds %d: %w", op, n*t, MaxIntegralQubits, ErrIntegralSize)
	}
	if samples <= 0 {
		return fmt.Errorf("%s: samples=%d: %w", op, samples, ErrSamples)
	}

	return nil
}

func newMoment(n, t int) (*tensor.Dense, error) {
	D := 1 << (n * t)
	return tensor.New(D, D)
}

// addMoment adds v·v† to acc with v = ψ^{⊗t}.
func addMoment(acc *tensor.Dense, psi []complex128, t int) error {
	col, err := tensor.FromSlice(psi, len(psi), 1)
	if err != nil {
		return err
	}
	v := col
	for k := 1; k < t; k++ {
		if v, err = tensor.Kron(v, col); err != nil {
			return err
		}
	}
	vec := v.Data()
	D := len(vec)
	if acc.Dim(0) != D {
		return fmt.Errorf("moment %d vs state power %d: %w", acc.Dim(0), D, ErrStateLength)
	}
	data := acc.Data()
	for i, a := range vec {
		if a == 0 {
			continue
		}
		row := data[i*D : (i+1)*D]
		for j, b := range vec {
			row[j] += a * complex(real(b), -imag(b))
		}
	}

	return nil
}

// haarState draws a Haar-random pure state: i.i.d. complex Gaussian
// amplitudes, normalized.
func haarState(rng *rand.Rand, d int) []complex128 {
	psi := make([]complex128, d)
	var norm float64
	for i := range psi {
		re, im := rng.NormFloat64(), rng.NormFloat64()
		psi[i] = complex(re, im)
		norm += re*re + im*im
	}
	inv := complex(1/math.Sqrt(norm), 0)
	for i := range psi {
		psi[i] *= inv
	}

	return psi
}
