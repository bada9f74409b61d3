package centrality

import "container/heap"

// pqItem is one priority-queue entry: a candidate relaxation of vertex
// carrying predecessor as the vertex that produced it, at tentative
// distance key. Styled after dijkstra.nodeItem, extended with the
// predecessor tag the weighted SSSP variant needs (dijkstra's own runner
// keeps predecessors in a separate map instead, since it doesn't need to
// rebuild sigma/P on tie vs. strict-improvement the way this engine does).
type pqItem struct {
	key       float64
	vertex    int32
	predIndex int32
}

// minHeap is a container/heap min-heap of pqItem ordered by key ascending.
// Like dijkstra.nodePQ, it uses lazy decrease-key: a relaxation pushes a new
// entry rather than mutating an existing one; stale entries for
// already-finalized vertices are discarded on pop (see sssp_weighted.go).
type minHeap []pqItem

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(pqItem)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// priorityQueue wraps minHeap with Insert/ExtractMin names matching the
// spec's vocabulary, and a reset that keeps the backing array across
// sources within a worker block.
type priorityQueue struct {
	h minHeap
}

func newPriorityQueue(capacity int) *priorityQueue {
	return &priorityQueue{h: make(minHeap, 0, capacity)}
}

func (pq *priorityQueue) reset() {
	pq.h = pq.h[:0]
}

func (pq *priorityQueue) insert(key float64, vertex, predIndex int32) {
	heap.Push(&pq.h, pqItem{key: key, vertex: vertex, predIndex: predIndex})
}

// extractMin removes and returns the minimum entry. ok is false iff empty.
func (pq *priorityQueue) extractMin() (item pqItem, ok bool) {
	if pq.h.Len() == 0 {
		return pqItem{}, false
	}
	return heap.Pop(&pq.h).(pqItem), true
}

func (pq *priorityQueue) empty() bool { return pq.h.Len() == 0 }
