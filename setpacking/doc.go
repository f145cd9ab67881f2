// Package setpacking translates Set Packing instances into Ising
// Hamiltonians and decodes solver output back into verified packings.
//
// 🚀 What is Set Packing?
//
//	Given a family of subsets, select as many as possible so that no two
//	selected subsets share an element. The selection is encoded into n
//	binary variables (one per subset) and embedded into an n-qubit cost
//	operator that a quantum or quantum-inspired solver can minimize.
//
// ✨ The pipeline:
//   - RandomNumberList / ReadNumbersFromFile — generate or load companion
//     problem weights (one decimal integer per line).
//   - Hamiltonian — build the weighted Pauli-term operator and its constant
//     energy shift from the subset family.
//   - SampleMostLikely — collapse a solver's state vector or counts map to
//     the most probable binary assignment.
//   - Solution — complement the assignment into the selected-subset
//     indicator (the encoding marks *excluded* subsets; see Hamiltonian).
//   - CheckDisjoint — verify the decoded selection is pairwise disjoint.
//
// Encoding (minimization form, x_i ∈ {0,1}, substitution x_i = (1-z_i)/2):
//
//	H = A·Ha + B·Hb,  A = 10 (hard),  B = 1 (soft)
//	Ha = Σ_{S_i ∩ S_j ≠ ∅} x_i·x_j   (disjointness penalty)
//	Hb = -Σ_i x_i                    (reward larger selections)
//
// The exact coefficient and shift bookkeeping — including the positive
// single-qubit penalty coefficients and the resulting complemented decode —
// is kept bit-compatible with the reference transcription; see Hamiltonian.
//
// All functions are pure except the two file helpers; there is no shared
// state and nothing here is concurrent.
package setpacking
