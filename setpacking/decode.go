package setpacking

import "math"

// SampleMostLikely collapses solver output over n variables to the most
// likely binary assignment.
//
// A Dense state must have length 2^n (otherwise ErrStateSize). A Counts
// state is first materialized into a dense length-2^n distribution by
// looking up every n-bit key and normalizing by the total count; a zero
// total divides by zero and is deliberately left unguarded (the NaN
// distribution's argmax is then index 0, since no NaN comparison wins).
//
// The selected index is the first maximum of the absolute magnitudes
// (ties break toward the lowest index). It is decoded least-significant
// bit first: bit i of the index is the value of variable i.
func SampleMostLikely(n int, state State) ([]int, error) {
	if n < 0 {
		return nil, ErrQubitCount
	}

	var vec []float64
	switch s := state.(type) {
	case Dense:
		if len(s) != 1<<uint(n) {
			return nil, ErrStateSize
		}
		vec = s
	case Counts:
		vec = densify(n, s)
	default:
		return nil, ErrNilState
	}

	k := argmaxAbs(vec)
	x := make([]int, n)
	for i := 0; i < n; i++ {
		x[i] = k & 1
		k >>= 1
	}

	return x, nil
}

// Solution complements a binary assignment elementwise (1-x), turning the
// Hamiltonian's "excluded" bits into the selected-subset indicator.
// It is an involution: Solution(Solution(x)) == x.
func Solution(x []int) []int {
	sol := make([]int, len(x))
	for i, v := range x {
		sol[i] = 1 - v
	}

	return sol
}

// densify expands a counts map into a normalized length-2^n distribution.
func densify(n int, counts Counts) []float64 {
	size := 1 << uint(n)
	vec := make([]float64, size)
	var total float64
	for i := 0; i < size; i++ {
		c := counts[bitString(i, n)]
		vec[i] = c
		total += c
	}
	for i := range vec {
		vec[i] /= total
	}

	return vec
}

// bitString renders k as an n-bit binary string, most-significant bit
// first (the key format solvers report counts under).
func bitString(k, n int) string {
	b := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		b[i] = byte('0' + k&1)
		k >>= 1
	}

	return string(b)
}

// argmaxAbs returns the first index of maximum absolute value.
func argmaxAbs(vec []float64) int {
	best, bestAbs := 0, math.Abs(vec[0])
	for i := 1; i < len(vec); i++ {
		if a := math.Abs(vec[i]); a > bestAbs {
			best, bestAbs = i, a
		}
	}

	return best
}
