package layout

// Bound is an optional integer limit. The zero value is unbounded, which
// behaves as -infinity for a lower bound and +infinity for an upper bound.
type Bound struct {
	N   int
	Set bool
}

// Unbounded returns a Bound with no limit.
func Unbounded() Bound {
	return Bound{}
}

// Limit returns a Bound fixed at n.
func Limit(n int) Bound {
	return Bound{N: n, Set: true}
}

// Clamp restricts v to the range [lo, hi].
// If lo > hi, lo wins (matches CSS behavior).
func Clamp(lo Bound, v int, hi Bound) int {
	if hi.Set && v > hi.N {
		v = hi.N
	}
	if lo.Set && v < lo.N {
		v = lo.N
	}
	return v
}
