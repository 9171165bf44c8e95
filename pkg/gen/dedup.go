package gen

// dedupSizeHintCap bounds map preallocation so a huge requested edge count
// does not reserve gigabytes up front; the map still grows as needed.
const dedupSizeHintCap = 1 << 20

type pairKey struct {
	src, dst int64
}

// DedupGuard tracks already-emitted (src, dst) pairs for generators that
// guarantee edge uniqueness. Memory grows with the number of accepted edges,
// so streaming generators must not use it. Not safe for concurrent use; a
// generator run owns its guard exclusively.
type DedupGuard struct {
	seen map[pairKey]struct{}
}

// NewDedupGuard creates a guard sized for roughly hint edges.
func NewDedupGuard(hint int64) *DedupGuard {
	if hint < 0 {
		hint = 0
	}
	if hint > dedupSizeHintCap {
		hint = dedupSizeHintCap
	}
	return &DedupGuard{seen: make(map[pairKey]struct{}, hint)}
}

// TryInsert records the ordered pair and returns true on first occurrence,
// false if the pair was already recorded.
func (d *DedupGuard) TryInsert(src, dst int64) bool {
	k := pairKey{src, dst}
	if _, dup := d.seen[k]; dup {
		return false
	}
	d.seen[k] = struct{}{}
	return true
}

// Len returns the number of recorded pairs.
func (d *DedupGuard) Len() int {
	return len(d.seen)
}
