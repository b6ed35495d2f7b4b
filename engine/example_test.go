// SPDX-License-Identifier: MIT

package engine_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/statevec/engine"
	"github.com/katalvlaran/statevec/gates"
)

// ExampleEngine_ApplyGate prepares a Bell state.
func ExampleEngine_ApplyGate() {
	eng := engine.New()
	psi, _ := eng.ZeroState(2)
	psi, _ = eng.ApplyGate(gates.H(0), psi, 2)
	psi, _ = eng.ApplyGate(gates.CNOT(0, 1), psi, 2)

	for i, a := range psi {
		fmt.Printf("|%02b> %.4f\n", i, real(a))
	}
	// Output:
	// |00> 0.7071
	// |01> 0.0000
	// |10> 0.0000
	// |11> 0.7071
}

// ExampleEngine_ControlMatrix promotes a controlled X to its 4×4 form.
func ExampleEngine_ControlMatrix() {
	eng := engine.New()
	m, err := eng.ControlMatrix(gates.CNOT(0, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m)
	// Output:
	// [(1+0i), (0+0i), (0+0i), (0+0i)]
	// [(0+0i), (1+0i), (0+0i), (0+0i)]
	// [(0+0i), (0+0i), (0+0i), (1+0i)]
	// [(0+0i), (0+0i), (1+0i), (0+0i)]
}

// ExampleControlOrder shows the axis bookkeeping for a doubly controlled gate.
func ExampleControlOrder() {
	p, _ := engine.ControlOrder([]int{3, 1}, []int{2}, 4)
	fmt.Println(p.Order, p.Targets, p.Inverse)
	// Output: [1 3 0 2] [1] [2 0 3 1]
}

// ExampleEngine_Execute runs a gate list against |000>.
func ExampleEngine_Execute() {
	eng := engine.New()
	prog := program{n: 3, gs: []gates.Gate{gates.X(0), gates.X(1), gates.Toffoli(0, 1, 2)}}
	psi, err := eng.Execute(context.Background(), prog, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, a := range psi {
		if a != 0 {
			fmt.Printf("|%03b>\n", i)
		}
	}
	// Output: |111>
}
