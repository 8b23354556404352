package triangles

import "container/heap"

// RankedNode pairs a node with a score for a top-N ranking (grounded on
// the teacher's pagerank.go RankedNode/rankedNodeHeap pattern).
type RankedNode struct {
	NodeID uint32
	Score  float64
}

type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int            { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool  { return h[i].Score < h[j].Score }
func (h rankedNodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *rankedNodeHeap) Push(x any)         { *h = append(*h, x.(RankedNode)) }
func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// topNodes returns the n highest-scoring nodes, descending, via an
// O(len(scores) log n) min-heap of size n.
func topNodes(scores []int, n int) []RankedNode {
	if n <= 0 {
		return nil
	}
	h := make(rankedNodeHeap, 0, n)
	heap.Init(&h)
	for id, score := range scores {
		rn := RankedNode{NodeID: uint32(id), Score: float64(score)}
		if h.Len() < n {
			heap.Push(&h, rn)
		} else if rn.Score > h[0].Score {
			heap.Pop(&h)
			heap.Push(&h, rn)
		}
	}
	result := make([]RankedNode, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedNode)
	}
	return result
}
