package setpacking

import "github.com/artix41/qiskit-aqua/pauli"

// penaltyWeight is the hard disjointness-constraint weight A. It must
// dominate the per-subset objective weight (B = 1): violating one pair
// costs A while selecting one more subset gains at most 1.
const penaltyWeight = 10.0

// Hamiltonian builds the n-qubit Ising cost operator for the given subset
// family, together with the constant energy shift pulled out of the
// binary-to-spin substitution x_i = (1-z_i)/2.
//
// For every unordered pair of intersecting subsets (outer i from 0..n-1,
// inner j from 0..i-1) the penalty A·x_i·x_j expands into three terms with
// coefficient A/4 — Z_iZ_j, Z_i and Z_j — plus A/4 of shift. A second pass
// over all i adds the objective term -Z_i/2 and -1/2 of shift.
//
// The single-qubit penalty coefficients are +A/4, not the -A/4 a textbook
// QUBO expansion would give; as a consequence the minimizing assignment
// marks *excluded* subsets and the decoded bit vector must be complemented
// with Solution before verification. This bookkeeping is kept exactly as
// the reference transcription computes it: in terms of the complemented
// indicator s = 1-x the total energy is Σ A·s_i·s_j - Σ s_i, so the ground
// state still decodes to an optimal packing.
//
// Term order is deterministic and preserved by the returned operator.
// The empty family yields a zero-term operator and shift 0.
func Hamiltonian(subsets []Subset) (*pauli.Operator, float64) {
	n := len(subsets)
	var (
		terms []pauli.WeightedTerm
		shift float64
	)

	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if !subsets[i].Intersects(subsets[j]) {
				continue
			}
			terms = append(terms,
				pauli.WeightedTerm{Coeff: penaltyWeight * 0.25, Term: zTerm(n, i, j)},
				pauli.WeightedTerm{Coeff: penaltyWeight * 0.25, Term: zTerm(n, i)},
				pauli.WeightedTerm{Coeff: penaltyWeight * 0.25, Term: zTerm(n, j)},
			)
			shift += penaltyWeight * 0.25
		}
	}

	for i := 0; i < n; i++ {
		terms = append(terms, pauli.WeightedTerm{Coeff: -0.5, Term: zTerm(n, i)})
		shift += -0.5
	}

	op, _ := pauli.NewOperator(n, terms) // every term spans exactly n qubits
	moduleLogger().Debug("encoded set packing instance",
		"qubits", n, "terms", op.Len(), "shift", shift)

	return op, shift
}

// zTerm builds an n-qubit Z term on the given loop indices, which are in
// [0, n) by construction.
func zTerm(n int, qubits ...int) pauli.Term {
	term, _ := pauli.ZTerm(n, qubits...)

	return term
}
