package exact

import (
	"errors"
	"strconv"

	"github.com/crillab/gophersat/maxsat"

	"github.com/artix41/qiskit-aqua/setpacking"
)

// ErrUnsolvable indicates the solver reported no model. Set packing always
// admits the empty selection, so this only signals a solver-level failure.
var ErrUnsolvable = errors.New("exact: solver found no model")

// MaxPacking computes an optimal set packing and returns the selection
// indicator (1 = subset selected), index-aligned with the input and with
// the output of setpacking.Solution.
func MaxPacking(subsets []setpacking.Subset) ([]int, error) {
	n := len(subsets)
	sol := make([]int, n)
	if n == 0 {
		return sol, nil
	}

	names := make([]string, n)
	for i := range names {
		names[i] = "s" + strconv.Itoa(i)
	}

	constrs := make([]maxsat.Constr, 0, n)
	for _, name := range names {
		constrs = append(constrs, maxsat.SoftClause(maxsat.Var(name)))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if subsets[i].Intersects(subsets[j]) {
				constrs = append(constrs, maxsat.HardClause(maxsat.Not(names[i]), maxsat.Not(names[j])))
			}
		}
	}

	model, _ := maxsat.New(constrs...).Solve()
	if model == nil {
		return nil, ErrUnsolvable
	}

	for i, name := range names {
		if model[name] {
			sol[i] = 1
		}
	}

	return sol, nil
}
