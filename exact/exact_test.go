package exact_test

import (
	"testing"

	"github.com/artix41/qiskit-aqua/eigen"
	"github.com/artix41/qiskit-aqua/exact"
	"github.com/artix41/qiskit-aqua/setpacking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cardinality counts selected subsets in an indicator vector.
func cardinality(sol []int) int {
	var c int
	for _, v := range sol {
		c += v
	}

	return c
}

// TestMaxPacking_SampleInstance: the optimum picks two disjoint subsets
// out of {1,2}, {2,3}, {4,5}.
func TestMaxPacking_SampleInstance(t *testing.T) {
	subsets := []setpacking.Subset{{1, 2}, {2, 3}, {4, 5}}

	sol, err := exact.MaxPacking(subsets)
	require.NoError(t, err)
	require.Len(t, sol, 3)

	assert.Equal(t, 2, cardinality(sol))
	assert.True(t, setpacking.CheckDisjoint(sol, subsets))
}

// TestMaxPacking_AllOverlapping: mutually intersecting subsets admit
// exactly one selection.
func TestMaxPacking_AllOverlapping(t *testing.T) {
	subsets := []setpacking.Subset{{1}, {1, 2}, {1, 3}}

	sol, err := exact.MaxPacking(subsets)
	require.NoError(t, err)
	assert.Equal(t, 1, cardinality(sol))
	assert.True(t, setpacking.CheckDisjoint(sol, subsets))
}

// TestMaxPacking_AllDisjoint: a disjoint family is selected in full.
func TestMaxPacking_AllDisjoint(t *testing.T) {
	subsets := []setpacking.Subset{{1}, {2}, {3}, {4}}

	sol, err := exact.MaxPacking(subsets)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1}, sol)
}

// TestMaxPacking_Empty: the empty family yields the empty selection.
func TestMaxPacking_Empty(t *testing.T) {
	sol, err := exact.MaxPacking(nil)
	require.NoError(t, err)
	assert.Empty(t, sol)
}

// TestMaxPacking_MatchesIsingGround runs the full pipeline on small
// instances: the Ising ground state, decoded and complemented, must be a
// disjoint packing of the same cardinality as the MaxSAT optimum.
func TestMaxPacking_MatchesIsingGround(t *testing.T) {
	instances := [][]setpacking.Subset{
		{{1, 2}, {2, 3}, {4, 5}},
		{{1}, {1}, {1}},
		{{1, 2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 1}},
		{{1}, {2}, {3}},
		{{1, 2}, {2, 3}, {3, 4}, {4, 1}, {5}},
	}

	for _, subsets := range instances {
		n := len(subsets)

		op, shift := setpacking.Hamiltonian(subsets)
		ground, err := eigen.Ground(op, shift)
		require.NoError(t, err)

		vec, err := eigen.BasisVector(n, ground.Index)
		require.NoError(t, err)
		x, err := setpacking.SampleMostLikely(n, setpacking.Dense(vec))
		require.NoError(t, err)
		decoded := setpacking.Solution(x)

		optimal, err := exact.MaxPacking(subsets)
		require.NoError(t, err)

		assert.True(t, setpacking.CheckDisjoint(decoded, subsets),
			"ground state of %v must decode to a disjoint packing", subsets)
		assert.Equal(t, cardinality(optimal), cardinality(decoded),
			"ground state of %v must match the exact optimum", subsets)
	}
}
