// Package circuit holds an ordered gate list on a fixed number of qubits
// together with the flat view of its trainable parameters.
//
// A Circuit satisfies engine.Program, so it runs with
//
//	psi, err := eng.Execute(ctx, c, nil)
//
// Parameters are numbered in gate order: every parametrized gate contributes
// its values, in its own order, to one flat slice. SetParameters writes the
// slice back, rebuilding the affected gates; ParametrizedGate maps a flat
// index back to the gate that owns it.
package circuit
