// Package pauli provides a symbolic representation of weighted sums of
// Pauli operators (Ising Hamiltonians).
//
// 🚀 What is a Pauli operator?
//
//	A Term is a tensor product of single-qubit Pauli factors (I, X, Y, Z),
//	one factor per qubit. An Operator is an ordered list of real-weighted
//	Terms over a fixed qubit count. Combinatorial cost functions embed into
//	this form as diagonal (Z-and-identity only) operators.
//
// ✨ Key features:
//   - Term construction from Z/X factor masks or qubit index lists
//   - Operator construction with per-term length validation
//   - Term order preserved exactly as supplied (bit-exact reproduction
//     of encoder output)
//   - Eval: diagonal expectation value on a computational basis state
//
// The package never manipulates operators algebraically: no products,
// no simplification, no matrix forms. Consumers that need spectra or
// ground states build them on top of Eval (see the eigen package).
//
// Complexity: Term construction O(n); Operator.Eval O(terms·n).
package pauli
