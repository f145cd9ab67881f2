package setpacking

// Subset is one subset of a Set Packing instance: a collection of element
// identifiers. Duplicate elements are tolerated and treated as a set.
// Index i in a []Subset family names both the subset and the binary
// decision variable x_i.
type Subset []int

// set materializes the subset as a membership map.
func (s Subset) set() map[int]struct{} {
	m := make(map[int]struct{}, len(s))
	for _, e := range s {
		m[e] = struct{}{}
	}

	return m
}

// Intersects reports whether the two subsets share at least one element.
func (s Subset) Intersects(u Subset) bool {
	// Probe the smaller side against the larger one's membership map.
	if len(s) > len(u) {
		s, u = u, s
	}
	m := u.set()
	for _, e := range s {
		if _, ok := m[e]; ok {
			return true
		}
	}

	return false
}

// State is solver output consumed by SampleMostLikely: either a dense
// amplitude/probability vector or a sparse counts map. The interface is
// sealed; Dense and Counts are its only implementations.
type State interface {
	isState()
}

// Dense is an amplitude or probability vector of length 2^n, indexed by
// the integer value of the n-bit assignment (bit i of the index is the
// value of variable i, least-significant bit first).
type Dense []float64

func (Dense) isState() {}

// Counts maps n-bit binary-string keys (most-significant bit first, as
// solvers report measurement outcomes) to observation counts. Missing
// keys count as zero. During decoding the counts are normalized by their
// total; a zero total is deliberately not guarded and yields a NaN
// distribution whose argmax is index 0.
type Counts map[string]float64

func (Counts) isState() {}
