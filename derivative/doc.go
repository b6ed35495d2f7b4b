// Package derivative computes exact gradients of circuit expectation values
// with the parameter-shift rule.
//
// For a parameter θ carried by a gate exp(−iθG) whose generator G has the
// two eigenvalues ±r, the derivative of E(θ) = <ψ(θ)|H|ψ(θ)> is
//
//	∂E/∂θ = r · (E(θ + s) − E(θ − s)),  s = π / (4r)
//
// Both shifted circuits are independent copies and are evaluated
// concurrently; the input circuit is never modified.
package derivative
