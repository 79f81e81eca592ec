package traversal

import (
	"container/heap"

	"github.com/turnforge/hexengine/feature"
	"github.com/turnforge/hexengine/hex"
)

// DefaultCostLimit is the costLimit used when a caller has no bound of its
// own; it equals feature.LARGE, the value Dijkstra reports for unreached
// hexes.
const DefaultCostLimit = feature.LARGE

// Reachability runs Dijkstra's algorithm over an Evaluator's move costs.
type Reachability struct {
	eval *Evaluator
}

// NewReachability returns a Reachability engine driven by eval.
func NewReachability(eval *Evaluator) *Reachability {
	return &Reachability{eval: eval}
}

// Dijkstra computes, for every hex of the underlying map, the minimum total
// move cost from source, stopping once the cheapest unfinished hex costs
// more than costLimit. Every hex whose distance is at most costLimit gets
// its exact distance; a hex beyond the limit keeps whatever tentative
// distance the search had assigned it (an upper bound, above costLimit),
// and a hex never reached carries feature.LARGE. Uses a binary min-heap
// with lazy-decrease-key: every improvement pushes a fresh entry and a
// popped entry for an already-finalized hex is simply discarded, rather than
// searching the heap for the stale one. Complexity is O((N+M) log N) where N
// is the hex count and M = 6N. Never mutates the underlying map.
func (r *Reachability) Dijkstra(source hex.Hex, costLimit int) map[hex.Hex]int {
	hexes := r.eval.Hexes()
	dist := make(map[hex.Hex]int, len(hexes))
	for _, h := range hexes {
		dist[h] = feature.LARGE
	}
	dist[source] = 0

	visited := make(map[hex.Hex]bool, len(hexes))
	pq := make(hexPQ, 0, len(hexes))
	heap.Init(&pq)
	heap.Push(&pq, &hexItem{h: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*hexItem)
		u, d := item.h, item.dist

		if visited[u] {
			continue
		}
		if d > costLimit {
			break
		}
		visited[u] = true

		for _, dir := range r.eval.ValidNeighbours(u) {
			v := hex.Neighbour(u, dir)
			if visited[v] {
				continue
			}
			w := r.eval.Cost(u, dir)
			newDist := d + w
			if newDist >= dist[v] {
				continue
			}
			dist[v] = newDist
			heap.Push(&pq, &hexItem{h: v, dist: newDist})
		}
	}

	return dist
}

// hexItem is a (hex, distance) pair held in the priority queue.
type hexItem struct {
	h    hex.Hex
	dist int
}

// hexPQ is a min-heap of *hexItem ordered by ascending dist, implementing
// the lazy-decrease-key pattern: stale entries are left in place and
// discarded on pop once their hex is visited.
type hexPQ []*hexItem

func (pq hexPQ) Len() int            { return len(pq) }
func (pq hexPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq hexPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *hexPQ) Push(x interface{}) { *pq = append(*pq, x.(*hexItem)) }
func (pq *hexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
