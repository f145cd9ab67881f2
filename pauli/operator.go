package pauli

// WeightedTerm is one summand of an Operator: a real coefficient
// attached to a Pauli term.
type WeightedTerm struct {
	Coeff float64
	Term  Term
}

// Operator is an ordered weighted sum of Pauli terms over a fixed qubit
// count. Term order is semantically insignificant but preserved exactly
// as supplied, so encoders can be checked against bit-exact term
// sequences.
type Operator struct {
	n     int
	terms []WeightedTerm
}

// NewOperator builds an operator over n qubits from the given terms.
// Returns ErrQubitCount for n < 0 and ErrTermLength if any term does
// not span exactly n qubits. The term slice is copied.
func NewOperator(n int, terms []WeightedTerm) (*Operator, error) {
	if n < 0 {
		return nil, ErrQubitCount
	}
	for _, wt := range terms {
		if wt.Term.Len() != n {
			return nil, ErrTermLength
		}
	}
	tc := make([]WeightedTerm, len(terms))
	copy(tc, terms)

	return &Operator{n: n, terms: tc}, nil
}

// NumQubits returns the qubit count the operator acts on.
func (op *Operator) NumQubits() int { return op.n }

// Len returns the number of weighted terms.
func (op *Operator) Len() int { return len(op.terms) }

// Terms returns the weighted terms in construction order.
// The returned slice is a copy and may be modified freely.
func (op *Operator) Terms() []WeightedTerm {
	tc := make([]WeightedTerm, len(op.terms))
	copy(tc, op.terms)

	return tc
}

// IsDiagonal reports whether every term is diagonal (I/Z factors only).
func (op *Operator) IsDiagonal() bool {
	for _, wt := range op.terms {
		if !wt.Term.IsDiagonal() {
			return false
		}
	}

	return true
}

// Eval computes the expectation value of a diagonal operator on the
// computational basis state described by bits (bits[i] is the value of
// qubit i). Each Z factor on qubit i contributes the eigenvalue 1-2*bits[i]
// to its term's product.
//
// Returns ErrBitLength when len(bits) != NumQubits, ErrBitValue for
// entries outside {0, 1}, and ErrNotDiagonal if any term carries an X or
// Y factor. The constant shift separated out by an encoder is not part
// of the operator and must be added by the caller.
func (op *Operator) Eval(bits []int) (float64, error) {
	if len(bits) != op.n {
		return 0, ErrBitLength
	}
	for _, b := range bits {
		if b != 0 && b != 1 {
			return 0, ErrBitValue
		}
	}

	var energy float64
	for _, wt := range op.terms {
		if !wt.Term.IsDiagonal() {
			return 0, ErrNotDiagonal
		}
		sign := 1.0
		for i := 0; i < op.n; i++ {
			if wt.Term.z[i] && bits[i] == 1 {
				sign = -sign
			}
		}
		energy += wt.Coeff * sign
	}

	return energy, nil
}
