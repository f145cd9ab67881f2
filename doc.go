// Package aqua turns combinatorial optimization problems into Ising
// Hamiltonians for quantum and quantum-inspired solvers — and back.
//
// 🚀 What is this?
//
//	A small, self-contained toolkit around one translation:
//		• Encode a Set Packing instance into a weighted sum of Pauli-Z
//		  operators plus a constant energy shift
//		• Feed the operator to any solver that minimizes Ising energies
//		• Decode the solver's state vector or counts into a binary
//		  assignment, complement it and verify the packing
//
// ✨ Why choose it?
//
//   - Bit-exact encoding – term order, coefficients and shift match the
//     reference transcription, test vector for test vector
//   - Honest edge cases – strict number-file contract, documented
//     zero-count behavior, no silent "fixes" of the sign bookkeeping
//   - Exact cross-checks – a diagonal eigensolver and a MaxSAT reference
//     solver confirm the encoding end to end
//
// Everything is organized under four subpackages:
//
//	pauli/      — symbolic Pauli terms & weighted-sum operators
//	setpacking/ — the translator: encode, generate, decode, verify
//	eigen/      — exhaustive diagonal ground-state search (small n)
//	exact/      — classical optimum via gophersat MaxSAT
//
// Quick sketch:
//
//	subsets := []setpacking.Subset{{1, 2}, {2, 3}, {4, 5}}
//	op, shift := setpacking.Hamiltonian(subsets)
//	// ... minimize op + shift with your favorite solver ...
//	x, _ := setpacking.SampleMostLikely(op.NumQubits(), state)
//	sol := setpacking.Solution(x)
//	ok := setpacking.CheckDisjoint(sol, subsets)
//
// Dive into the setpacking package docs for the encoding details and the
// deliberate quirks preserved for compatibility.
package aqua
