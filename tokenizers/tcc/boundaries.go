package tcc

import "sort"

// Boundaries is the set of rune offsets at which a cluster ends, for one text.
// For a non-empty text it always contains 0 and the text length; for an empty text it is empty.
type Boundaries struct {
	ends []int
	set  []bool
}

// Contains reports whether p is a cluster boundary.
func (b Boundaries) Contains(p int) bool {
	return p >= 0 && p < len(b.set) && b.set[p]
}

// Next returns the smallest boundary strictly greater than p, or -1 if there is none.
func (b Boundaries) Next(p int) int {
	i := sort.SearchInts(b.ends, p+1)
	if i == len(b.ends) {
		return -1
	}
	return b.ends[i]
}

// Ends returns the boundaries in increasing order. The slice must not be modified.
func (b Boundaries) Ends() []int {
	return b.ends
}

// Len returns the number of boundaries.
func (b Boundaries) Len() int {
	return len(b.ends)
}
