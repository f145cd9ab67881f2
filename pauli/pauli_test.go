package pauli_test

import (
	"testing"

	"github.com/artix41/qiskit-aqua/pauli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestZTerm_Factors verifies factor placement, rendering and diagonality
// for a Z-only term.
func TestZTerm_Factors(t *testing.T) {
	term, err := pauli.ZTerm(3, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, term.Len(), "term must span all 3 qubits")
	assert.Equal(t, pauli.Z, term.Factor(0))
	assert.Equal(t, pauli.I, term.Factor(1))
	assert.Equal(t, pauli.Z, term.Factor(2))
	assert.Equal(t, "ZIZ", term.String())
	assert.True(t, term.IsDiagonal(), "Z-only terms are diagonal")
}

// TestZTerm_Validation checks the sentinel errors for bad qubit counts
// and out-of-range indices.
func TestZTerm_Validation(t *testing.T) {
	_, err := pauli.ZTerm(-1)
	assert.ErrorIs(t, err, pauli.ErrQubitCount, "negative qubit count must error")

	_, err = pauli.ZTerm(2, 2)
	assert.ErrorIs(t, err, pauli.ErrQubitIndex, "index == n is out of range")

	_, err = pauli.ZTerm(2, -1)
	assert.ErrorIs(t, err, pauli.ErrQubitIndex, "negative index is out of range")
}

// TestNewTerm_AllFactors builds a term with every factor kind and checks
// the Y = Z∧X convention.
func TestNewTerm_AllFactors(t *testing.T) {
	z := []bool{false, false, true, true}
	x := []bool{false, true, true, false}
	term, err := pauli.NewTerm(z, x)
	require.NoError(t, err)

	assert.Equal(t, "IXYZ", term.String())
	assert.False(t, term.IsDiagonal(), "X/Y factors make the term non-diagonal")
}

// TestNewTerm_MaskLength verifies mismatched masks are rejected.
func TestNewTerm_MaskLength(t *testing.T) {
	_, err := pauli.NewTerm([]bool{true}, []bool{true, false})
	assert.ErrorIs(t, err, pauli.ErrMaskLength)
}

// TestNewTerm_NilXMask confirms a nil X mask means a diagonal term.
func TestNewTerm_NilXMask(t *testing.T) {
	term, err := pauli.NewTerm([]bool{true, false}, nil)
	require.NoError(t, err)

	assert.Equal(t, "ZI", term.String())
	assert.True(t, term.IsDiagonal())
}

// TestTerm_Equal checks factor-wise equality across construction paths.
func TestTerm_Equal(t *testing.T) {
	a, err := pauli.ZTerm(3, 1)
	require.NoError(t, err)
	b, err := pauli.NewTerm([]bool{false, true, false}, nil)
	require.NoError(t, err)
	c, err := pauli.ZTerm(3, 2)
	require.NoError(t, err)
	d, err := pauli.ZTerm(2, 1)
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same factors, different constructors")
	assert.False(t, a.Equal(c), "different qubit")
	assert.False(t, a.Equal(d), "different length")
}
