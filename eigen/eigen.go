package eigen

import (
	"errors"
	"math"

	"github.com/artix41/qiskit-aqua/pauli"
)

// MaxQubits bounds the exhaustive 2^n scan.
const MaxQubits = 24

var (
	// ErrTooManyQubits indicates an operator too large for exhaustive search.
	ErrTooManyQubits = errors.New("eigen: qubit count exceeds exhaustive-search limit")
	// ErrQubitCount indicates a negative qubit count.
	ErrQubitCount = errors.New("eigen: qubit count must be non-negative")
	// ErrIndexRange indicates a basis state index outside [0, 2^n).
	ErrIndexRange = errors.New("eigen: basis state index out of range")
)

// Result is a located eigenvalue: the basis state index and its energy
// including the encoder's constant shift.
type Result struct {
	Index  int
	Energy float64
}

// Ground returns the minimum-energy computational basis state of a
// diagonal operator, with shift added to every energy. Ties resolve to
// the lowest index. Returns ErrTooManyQubits above MaxQubits and
// pauli.ErrNotDiagonal for operators with X or Y factors.
func Ground(op *pauli.Operator, shift float64) (Result, error) {
	n := op.NumQubits()
	if n > MaxQubits {
		return Result{}, ErrTooManyQubits
	}

	best := Result{Index: 0, Energy: math.Inf(1)}
	bits := make([]int, n)
	size := 1 << uint(n)
	for k := 0; k < size; k++ {
		decodeBits(k, bits)
		e, err := op.Eval(bits)
		if err != nil {
			return Result{}, err
		}
		if e+shift < best.Energy {
			best = Result{Index: k, Energy: e + shift}
		}
	}

	return best, nil
}

// Energies returns the full diagonal spectrum, indexed by basis state,
// with shift added to every entry. Same guards as Ground.
func Energies(op *pauli.Operator, shift float64) ([]float64, error) {
	n := op.NumQubits()
	if n > MaxQubits {
		return nil, ErrTooManyQubits
	}

	spectrum := make([]float64, 1<<uint(n))
	bits := make([]int, n)
	for k := range spectrum {
		decodeBits(k, bits)
		e, err := op.Eval(bits)
		if err != nil {
			return nil, err
		}
		spectrum[k] = e + shift
	}

	return spectrum, nil
}

// BasisVector returns the length-2^n one-hot amplitude vector for basis
// state k: the shape a state-vector decoder consumes for an exact result.
func BasisVector(n, k int) ([]float64, error) {
	if n < 0 {
		return nil, ErrQubitCount
	}
	if n > MaxQubits {
		return nil, ErrTooManyQubits
	}
	if k < 0 || k >= 1<<uint(n) {
		return nil, ErrIndexRange
	}

	vec := make([]float64, 1<<uint(n))
	vec[k] = 1

	return vec, nil
}

// decodeBits fills bits with basis state k, least-significant bit first.
func decodeBits(k int, bits []int) {
	for i := range bits {
		bits[i] = k & 1
		k >>= 1
	}
}
