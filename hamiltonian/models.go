// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"fmt"

	"github.com/katalvlaran/statevec/tensor"
)

var (
	pauliI = [][]complex128{{1, 0}, {0, 1}}
	pauliX = [][]complex128{{0, 1}, {1, 0}}
	pauliY = [][]complex128{{0, -1i}, {1i, 0}}
	pauliZ = [][]complex128{{1, 0}, {0, -1}}
)

// multikron returns factors[0] ⊗ factors[1] ⊗ … ⊗ factors[n-1].
func multikron(factors [][][]complex128) (*tensor.Dense, error) {
	acc, err := tensor.Identity(1)
	if err != nil {
		return nil, err
	}
	for _, f := range factors {
		m, err := tensor.Matrix(f)
		if err != nil {
			return nil, err
		}
		if acc, err = tensor.Kron(acc, m); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// spinSum returns Σ_i ⊗_j (σ if on(i, j) else I) over an n-qubit chain.
func spinSum(n int, sigma [][]complex128, on func(i, j int) bool) (*tensor.Dense, error) {
	var sum *tensor.Dense
	factors := make([][][]complex128, n)
	for i := 0; i < n; i++ {
		for j := range factors {
			factors[j] = pauliI
			if on(i, j) {
				factors[j] = sigma
			}
		}
		term, err := multikron(factors)
		if err != nil {
			return nil, err
		}
		if sum == nil {
			sum = term
			continue
		}
		if sum, err = tensor.Add(sum, term); err != nil {
			return nil, err
		}
	}

	return sum, nil
}

// site: term i acts on qubit i alone.
func site(n int) func(i, j int) bool {
	return func(i, j int) bool { return i == j%n }
}

// bond: term i acts on the periodic pair (i−1, i), so every nearest
// neighbour pair appears once for n ≥ 3. For n = 2 the pair (0,1) is
// counted from both sides; for n = 1 both ends are the same site, so a bond
// term reduces to σ on that site.
func bond(n int) func(i, j int) bool {
	return func(i, j int) bool { return i == j%n || i == (j+1)%n }
}

func checkModelSize(name string, n, min int) error {
	if n < min || n > MaxQubits {
		return fmt.Errorf("%s(%d): need %d..%d qubits: %w", name, n, min, MaxQubits, ErrInvalidQubitCount)
	}

	return nil
}

// onebody builds −Σ σ_i.
func onebody(name string, n int, sigma [][]complex128) (*Hamiltonian, error) {
	if err := checkModelSize(name, n, 1); err != nil {
		return nil, err
	}
	sum, err := spinSum(n, sigma, site(n))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	m, err := tensor.Scale(sum, -1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &Hamiltonian{n: n, matrix: m}, nil
}

// X is the non-interacting field −Σ X_i.
func X(n int) (*Hamiltonian, error) { return onebody("X", n, pauliX) }

// Y is the non-interacting field −Σ Y_i.
func Y(n int) (*Hamiltonian, error) { return onebody("Y", n, pauliY) }

// Z is the non-interacting field −Σ Z_i.
func Z(n int) (*Hamiltonian, error) { return onebody("Z", n, pauliZ) }

// XXZ is the periodic Heisenberg XXZ chain with anisotropy delta.
func XXZ(n int, delta float64) (*Hamiltonian, error) {
	if err := checkModelSize("XXZ", n, 1); err != nil {
		return nil, err
	}
	hx, err := spinSum(n, pauliX, bond(n))
	if err != nil {
		return nil, fmt.Errorf("XXZ: %w", err)
	}
	hy, err := spinSum(n, pauliY, bond(n))
	if err != nil {
		return nil, fmt.Errorf("XXZ: %w", err)
	}
	hz, err := spinSum(n, pauliZ, bond(n))
	if err != nil {
		return nil, fmt.Errorf("XXZ: %w", err)
	}
	if hz, err = tensor.Scale(hz, complex(delta, 0)); err != nil {
		return nil, fmt.Errorf("XXZ: %w", err)
	}
	m, err := tensor.Add(hx, hy)
	if err != nil {
		return nil, fmt.Errorf("XXZ: %w", err)
	}
	if m, err = tensor.Add(m, hz); err != nil {
		return nil, fmt.Errorf("XXZ: %w", err)
	}

	return &Hamiltonian{n: n, matrix: m}, nil
}

// TFIM is the periodic transverse-field Ising chain with field h.
func TFIM(n int, h float64) (*Hamiltonian, error) {
	if err := checkModelSize("TFIM", n, 1); err != nil {
		return nil, err
	}
	zz, err := spinSum(n, pauliZ, bond(n))
	if err != nil {
		return nil, fmt.Errorf("TFIM: %w", err)
	}
	m := zz
	if h != 0 {
		x, err := spinSum(n, pauliX, site(n))
		if err != nil {
			return nil, fmt.Errorf("TFIM: %w", err)
		}
		if x, err = tensor.Scale(x, complex(h, 0)); err != nil {
			return nil, fmt.Errorf("TFIM: %w", err)
		}
		if m, err = tensor.Add(zz, x); err != nil {
			return nil, fmt.Errorf("TFIM: %w", err)
		}
	}
	if m, err = tensor.Scale(m, -1); err != nil {
		return nil, fmt.Errorf("TFIM: %w", err)
	}

	return &Hamiltonian{n: n, matrix: m}, nil
}
