package setpacking

// CheckDisjoint reports whether the solution vector selects pairwise
// disjoint subsets. sol is the selected-subset indicator (see Solution)
// and must cover every subset index; subsets[i] is considered selected
// when sol[i] == 1.
//
// Selected subsets are compared pairwise in selection order and the first
// overlap decides. Zero or one selected subsets are vacuously disjoint.
func CheckDisjoint(sol []int, subsets []Subset) bool {
	selected := make([]Subset, 0, len(subsets))
	for i := range subsets {
		if sol[i] == 1 {
			selected = append(selected, subsets[i])
		}
	}

	for i := range selected {
		for j := 0; j < i; j++ {
			if selected[i].Intersects(selected[j]) {
				return false
			}
		}
	}

	return true
}
