// SPDX-License-Identifier: MIT

package quantuminfo

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/statevec/tensor"
)

// Fidelity returns |<a|b>|² for pure states.
// Complexity: O(N).
func Fidelity(a, b []complex128) (float64, error) {
	ip, err := tensor.InnerProduct(a, b)
	if err != nil {
		return 0, fmt.Errorf("Fidelity: %w: %w", ErrStateLength, err)
	}
	abs := cmplx.Abs(ip)

	return abs * abs, nil
}

// Infidelity returns 1 − Fidelity(a, b).
func Infidelity(a, b []complex128) (float64, error) {
	f, err := Fidelity(a, b)
	if err != nil {
		return 0, fmt.Errorf("Infidelity: %w", err)
	}

	return 1 - f, nil
}

// TraceDistance returns ½‖|a><a| − |b><b|‖₁ = √(1 − |<a|b>|²) for
// normalized pure states. Rounding below zero is clamped.
func TraceDistance(a, b []complex128) (float64, error) {
	f, err := Fidelity(a, b)
	if err != nil {
		return 0, fmt.Errorf("TraceDistance: %w", err)
	}

	return math.Sqrt(math.Max(0, 1-f)), nil
}

// Probabilities returns |ψ_i|² for every basis state.
func Probabilities(state []complex128) []float64 {
	out := make([]float64, len(state))
	for i, v := range state {
		re, im := real(v), imag(v)
		out[i] = re*re + im*im
	}

	return out
}

// checkQubit validates len(state) == 2^n and 0 ≤ q < n.
func checkQubit(op string, state []complex128, n, q int) error {
	if n < 1 || n > 62 {
		return fmt.Errorf("%s: n=%d: %w", op, n, ErrInvalidQubitCount)
	}
	if len(state) != 1<<n {
		return fmt.Errorf("%s: len %d for %d qubits: %w", op, len(state), n, ErrStateLength)
	}
	if q < 0 || q >= n {
		return fmt.Errorf("%s: qubit %d of %d: %w", op, q, n, ErrQubitOutOfRange)
	}

	return nil
}

// QubitProbabilities returns (P(q=0), P(q=1)) for qubit q.
// Complexity: O(N).
func QubitProbabilities(state []complex128, n, q int) ([2]float64, error) {
	var out [2]float64
	if err := checkQubit("QubitProbabilities", state, n, q); err != nil {
		return out, err
	}
	shift := n - 1 - q
	for i, v := range state {
		re, im := real(v), imag(v)
		out[(i>>shift)&1] += re*re + im*im
	}

	return out, nil
}

// ReducedDensityMatrix traces out every qubit except q and returns the 2×2
// matrix ρ[a][b] = Σ_rest ψ(…a…)·conj(ψ(…b…)).
// Complexity: O(N).
func ReducedDensityMatrix(state []complex128, n, q int) (*tensor.Dense, error) {
	if err := checkQubit("ReducedDensityMatrix", state, n, q); err != nil {
		return nil, err
	}
	bit := 1 << (n - 1 - q)
	var r00, r01, r11 complex128
	for i := range state {
		if i&bit != 0 {
			continue
		}
		a0, a1 := state[i], state[i|bit]
		r00 += a0 * cmplx.Conj(a0)
		r01 += a0 * cmplx.Conj(a1)
		r11 += a1 * cmplx.Conj(a1)
	}
	rho, err := tensor.FromSlice([]complex128{r00, r01, cmplx.Conj(r01), r11}, 2, 2)
	if err != nil {
		return nil, fmt.Errorf("ReducedDensityMatrix: %w", err)
	}

	return rho, nil
}

// Purity returns Re tr(ρ²).
// Complexity: O(d³) for a d×d ρ.
func Purity(rho *tensor.Dense) (float64, error) {
	sq, err := tensor.MatMul(rho, rho)
	if err != nil {
		return 0, fmt.Errorf("Purity: %w", err)
	}
	tr, err := tensor.Trace(sq)
	if err != nil {
		return 0, fmt.Errorf("Purity: %w", err)
	}

	return real(tr), nil
}

// EntanglementEntropy returns the von Neumann entropy −Σ λ log_base λ of
// the reduced state of qubit q. base must be finite and > 1; use 2 for bits.
// Complexity: O(N).
func EntanglementEntropy(state []complex128, n, q int, base float64) (float64, error) {
	if math.IsNaN(base) || math.IsInf(base, 0) || base <= 1 {
		return 0, fmt.Errorf("EntanglementEntropy: base %g: %w", base, ErrBase)
	}
	rho, err := ReducedDensityMatrix(state, n, q)
	if err != nil {
		return 0, fmt.Errorf("EntanglementEntropy: %w", err)
	}
	d := rho.Data()
	tr := real(d[0] + d[3])
	det := real(d[0]*d[3] - d[1]*d[2])
	disc := math.Sqrt(math.Max(0, tr*tr-4*det))
	var s float64
	for _, l := range [2]float64{(tr + disc) / 2, (tr - disc) / 2} {
		if l > 1e-15 {
			s -= l * math.Log(l)
		}
	}

	return s / math.Log(base), nil
}

// MeyerWallach returns Q = 1 − (1/n)·Σ_k tr(ρ_k²) over every single-qubit
// reduced state. Product states give 0, a Bell pair gives ½.
// Complexity: O(n·N).
func MeyerWallach(state []complex128, n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("MeyerWallach: n=%d: %w", n, ErrInvalidQubitCount)
	}
	var sum float64
	for k := 0; k < n; k++ {
		rho, err := ReducedDensityMatrix(state, n, k)
		if err != nil {
			return 0, fmt.Errorf("MeyerWallach: %w", err)
		}
		p, err := Purity(rho)
		if err != nil {
			return 0, fmt.Errorf("MeyerWallach: %w", err)
		}
		sum += p
	}

	return 1 - sum/float64(n), nil
}
