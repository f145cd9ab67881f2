package pauli

// Factor is a single-qubit Pauli factor of a tensor-product term.
type Factor byte

const (
	// I is the identity factor.
	I Factor = iota
	// X is the Pauli-X factor.
	X
	// Y is the Pauli-Y factor.
	Y
	// Z is the Pauli-Z factor.
	Z
)

// factorLabels maps a Factor to its one-letter label.
var factorLabels = [...]byte{I: 'I', X: 'X', Y: 'Y', Z: 'Z'}

// String returns the one-letter label of the factor ("I", "X", "Y" or "Z").
func (f Factor) String() string {
	if int(f) >= len(factorLabels) {
		return "?"
	}

	return string(factorLabels[f])
}

// Term is a tensor product of single-qubit Pauli factors over a fixed
// number of qubits. It is stored as two boolean masks: z[i] set means a
// Z component on qubit i, x[i] an X component; both set means Y.
//
// A Term is immutable after construction and safe to copy by value.
type Term struct {
	z, x []bool
}

// NewTerm builds a Term from Z and X factor masks. A nil x mask means
// no X components (the term is then diagonal). If both masks are given
// they must have equal length, otherwise ErrMaskLength is returned.
func NewTerm(z, x []bool) (Term, error) {
	if x != nil && len(x) != len(z) {
		return Term{}, ErrMaskLength
	}
	zc := make([]bool, len(z))
	copy(zc, z)
	var xc []bool
	if x != nil {
		xc = make([]bool, len(x))
		copy(xc, x)
	}

	return Term{z: zc, x: xc}, nil
}

// ZTerm returns the n-qubit term with Pauli-Z factors on the given qubits
// and identity elsewhere. Returns ErrQubitCount for n < 0 and ErrQubitIndex
// for any index outside [0, n).
func ZTerm(n int, qubits ...int) (Term, error) {
	if n < 0 {
		return Term{}, ErrQubitCount
	}
	z := make([]bool, n)
	for _, q := range qubits {
		if q < 0 || q >= n {
			return Term{}, ErrQubitIndex
		}
		z[q] = true
	}

	return Term{z: z}, nil
}

// Len returns the number of qubits the term spans.
func (t Term) Len() int { return len(t.z) }

// Factor returns the Pauli factor acting on qubit i.
// The index must be in [0, Len()).
func (t Term) Factor(i int) Factor {
	zi := t.z[i]
	xi := t.x != nil && t.x[i]
	switch {
	case zi && xi:
		return Y
	case zi:
		return Z
	case xi:
		return X
	default:
		return I
	}
}

// IsDiagonal reports whether every factor is I or Z.
func (t Term) IsDiagonal() bool {
	for i := range t.x {
		if t.x[i] {
			return false
		}
	}

	return true
}

// Equal reports whether both terms have identical factors on every qubit.
func (t Term) Equal(u Term) bool {
	if t.Len() != u.Len() {
		return false
	}
	for i := 0; i < t.Len(); i++ {
		if t.Factor(i) != u.Factor(i) {
			return false
		}
	}

	return true
}

// String renders the term as one letter per qubit, qubit 0 leftmost.
// Example: ZTerm(3, 0, 2) renders as "ZIZ".
func (t Term) String() string {
	b := make([]byte, t.Len())
	for i := range b {
		b[i] = factorLabels[t.Factor(i)]
	}

	return string(b)
}
