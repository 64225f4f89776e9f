package lattice

import (
	"container/heap"

	"k8s.io/klog/v2"
)

// DefaultMaxEdges is the safe mode budget: the number of edges an unresolved span may accumulate
// before the scan forces a cut.
const DefaultMaxEdges = 50

// ScanOptions configures Scan.
type ScanOptions struct {
	// MaxEdges enables safe mode when positive: once the span since the last cut holds more than
	// MaxEdges edges, a cut is forced at the pending offset reachable with the fewest tokens.
	MaxEdges int

	// MergeUnknown makes unknown tokens extend to the next offset where a word can start
	// (see Lattice.UnknownRun) instead of covering a single cluster.
	MergeUnknown bool
}

// Stats counts the work done by Scan.
type Stats struct {
	Pops       int // offsets taken from the frontier
	Edges      int // lattice edges added
	Chunks     int // chunks emitted
	Unknown    int // unknown chunks emitted
	ForcedCuts int // safe mode cuts
}

// Work is the total operation count: pops plus edges.
func (s Stats) Work() int {
	return s.Pops + s.Edges
}

// Chunk is a span [Start, End) of the text delimited by two synchronization points.
//
// Every admissible parse of the text built from Chunk edges goes from Start to End. A Chunk is only
// valid during the emit callback of Scan.
type Chunk struct {
	Start, End int

	// Unknown is set for spans without any dictionary parse; the whole span is one token.
	Unknown bool

	// Forced is set when the chunk was cut by the safe mode budget.
	Forced bool

	adj [][]int
}

// Edges returns the ends of the edges starting at p that stay within the chunk.
func (c Chunk) Edges(p int) []int {
	if c.Unknown || p < c.Start || p >= c.End {
		return nil
	}
	ends := c.adj[p]
	for i, e := range ends {
		if e > c.End {
			return ends[:i]
		}
	}
	return ends
}

// offsetHeap is a min-heap of offsets.
type offsetHeap []int

func (h offsetHeap) Len() int           { return len(h) }
func (h offsetHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h offsetHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *offsetHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *offsetHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]
	return x
}

// frontier is the set of pending offsets of the current span, with the fewest-token distance from
// the span start of each discovered offset.
type frontier struct {
	pending offsetHeap
	queued  []bool
	dist    []int // tokens from the span start, -1 if not discovered in this span
	lastLen []int // shortest final token among the fewest-token paths
}

func newFrontier(n int) *frontier {
	f := &frontier{
		queued:  make([]bool, n+1),
		dist:    make([]int, n+1),
		lastLen: make([]int, n+1),
	}
	for i := range f.dist {
		f.dist[i] = -1
	}
	return f
}

func (f *frontier) push(p int) {
	if !f.queued[p] {
		f.queued[p] = true
		heap.Push(&f.pending, p)
	}
}

func (f *frontier) pop() int {
	p := heap.Pop(&f.pending).(int)
	f.queued[p] = false
	return p
}

// restart empties the frontier and starts a new span at p.
func (f *frontier) restart(p int) {
	for _, q := range f.pending {
		f.queued[q] = false
		f.dist[q] = -1
	}
	f.pending = f.pending[:0]
	f.dist[p] = 0
	f.lastLen[p] = 0
	f.push(p)
}

func (f *frontier) relax(p, e int) {
	d := f.dist[p] + 1
	switch {
	case f.dist[e] < 0 || d < f.dist[e]:
		f.dist[e] = d
		f.lastLen[e] = e - p
	case d == f.dist[e] && e-p < f.lastLen[e]:
		f.lastLen[e] = e - p
	}
}

// cheapest returns the pending offset with the fewest tokens from the span start; ties go to the
// shortest final token, then to the smallest offset.
func (f *frontier) cheapest() int {
	best := -1
	for _, p := range f.pending {
		if best < 0 {
			best = p
			continue
		}
		switch {
		case f.dist[p] < f.dist[best]:
			best = p
		case f.dist[p] > f.dist[best]:
		case f.lastLen[p] < f.lastLen[best]:
			best = p
		case f.lastLen[p] == f.lastLen[best] && p < best:
			best = p
		}
	}
	return best
}

// Scan walks the lattice from left to right and calls emit for each chunk, in order. The chunks are
// contiguous and cover the whole text.
//
// Offsets are taken from the frontier in increasing order. When a single offset remains pending,
// every parse goes through it and the span up to it is emitted. When nothing is pending, no dictionary
// word starts at the current offset and an unknown chunk is emitted.
func Scan(lat *Lattice, opts ScanOptions, emit func(Chunk)) Stats {
	var stats Stats
	n := lat.Len()
	if n == 0 {
		return stats
	}
	adj := make([][]int, n+1)
	f := newFrontier(n)
	f.restart(0)
	spanStart, spanEdges := 0, 0
	var buf []int

	for f.pending.Len() > 0 && f.pending[0] < n {
		p := f.pop()
		stats.Pops++
		buf = lat.Edges(p, buf[:0])
		for _, e := range buf {
			adj[p] = append(adj[p], e)
			f.relax(p, e)
			f.push(e)
		}
		stats.Edges += len(buf)
		spanEdges += len(buf)

		switch f.pending.Len() {
		case 0:
			// Nothing reachable: p is the span start.
			end := lat.Fallback(p)
			if opts.MergeUnknown {
				end = lat.UnknownRun(p)
			}
			emit(Chunk{Start: p, End: end, Unknown: true})
			stats.Chunks++
			stats.Unknown++
			spanStart, spanEdges = end, 0
			f.restart(end)

		case 1:
			end := f.pending[0]
			emit(Chunk{Start: spanStart, End: end, adj: adj})
			stats.Chunks++
			spanStart, spanEdges = end, 0
			f.restart(end)

		default:
			if opts.MaxEdges <= 0 || spanEdges <= opts.MaxEdges {
				continue
			}
			end := f.cheapest()
			if klog.V(4).Enabled() {
				klog.Infof("safe mode: %d edges pending from offset %d, forcing a cut at %d", spanEdges, spanStart, end)
			}
			emit(Chunk{Start: spanStart, End: end, Forced: true, adj: adj})
			stats.Chunks++
			stats.ForcedCuts++
			spanStart, spanEdges = end, 0
			f.restart(end)
		}
	}
	return stats
}
