package pauli

import "errors"

var (
	// ErrMaskLength indicates the Z and X factor masks differ in length.
	ErrMaskLength = errors.New("pauli: z and x masks must have equal length")
	// ErrQubitCount indicates a negative qubit count.
	ErrQubitCount = errors.New("pauli: qubit count must be non-negative")
	// ErrQubitIndex indicates a qubit index outside [0, n).
	ErrQubitIndex = errors.New("pauli: qubit index out of range")
	// ErrTermLength indicates a term whose length differs from the operator's qubit count.
	ErrTermLength = errors.New("pauli: term length does not match operator qubit count")
	// ErrNotDiagonal indicates an X or Y factor where only I/Z are supported.
	ErrNotDiagonal = errors.New("pauli: operator has non-diagonal (X or Y) factors")
	// ErrBitLength indicates a basis state whose length differs from the qubit count.
	ErrBitLength = errors.New("pauli: basis state length does not match qubit count")
	// ErrBitValue indicates a basis state entry outside {0, 1}.
	ErrBitValue = errors.New("pauli: basis state entries must be 0 or 1")
)
