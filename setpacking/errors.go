package setpacking

import "errors"

var (
	// ErrNegativeCount indicates a negative instance size.
	ErrNegativeCount = errors.New("setpacking: number count must be non-negative")
	// ErrNonIntegerLine indicates a number-file line that parses as a float
	// but is not integer-valued. This is a contract violation: the file
	// format is one decimal integer per line.
	ErrNonIntegerLine = errors.New("setpacking: number file line is not integer-valued")
	// ErrQubitCount indicates a negative qubit count.
	ErrQubitCount = errors.New("setpacking: qubit count must be non-negative")
	// ErrStateSize indicates a dense state whose length is not 2^n.
	ErrStateSize = errors.New("setpacking: dense state length must equal 2^n")
	// ErrNilState indicates a nil State value.
	ErrNilState = errors.New("setpacking: state must be Dense or Counts")
)
