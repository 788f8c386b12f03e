package search

// nodePQ is a min-heap of nodes ordered by f = g + h, with ties broken by
// insertion order (FIFO among equal f) so repeated runs expand states in
// the same sequence. Used with container/heap under a lazy decrease-key
// strategy: better paths push duplicates and stale entries are skipped on
// pop.
type nodePQ[S comparable] []*node[S]

func (pq nodePQ[S]) Len() int { return len(pq) }

func (pq nodePQ[S]) Less(i, j int) bool {
	if pq[i].f() != pq[j].f() {
		return pq[i].f() < pq[j].f()
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[S]) Push(x any) { *pq = append(*pq, x.(*node[S])) }

func (pq *nodePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
