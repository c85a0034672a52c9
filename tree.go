package huff

import "container/heap"

// node is either a leaf carrying one byte value or an internal node
// carrying the combined frequency of its two children.
type node struct {
	freq  uint64
	seq   int // arrival order into the queue; tie-break for equal frequencies
	value byte
	leaf  bool
	left  *node
	right *node
}

type nodeQueue []*node

func (q nodeQueue) Len() int { return len(q) }

// Equal frequencies fall back to arrival order, FIFO. The tree shape is
// never transmitted, only the frequencies are, so encoder and decoder
// must derive bit-identical trees from the same table.
func (q nodeQueue) Less(i, j int) bool {
	if q[i].freq != q[j].freq {
		return q[i].freq < q[j].freq
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(*node)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return n
}

// buildTree seeds the queue with one leaf per nonzero byte value, in
// ascending value order, and repeatedly merges the two lowest-frequency
// nodes until one remains. The first-extracted node becomes the left
// child. Returns nil for an all-zero table; a one-entry table yields a
// bare leaf root.
func buildTree(t *freqTable) *node {
	q := make(nodeQueue, 0, 256)
	seq := 0
	for v := 0; v < 256; v++ {
		if t.counts[v] == 0 {
			continue
		}
		q = append(q, &node{freq: t.counts[v], seq: seq, value: byte(v), leaf: true})
		seq++
	}
	if len(q) == 0 {
		return nil
	}
	heap.Init(&q)
	for q.Len() > 1 {
		l := heap.Pop(&q).(*node)
		r := heap.Pop(&q).(*node)
		heap.Push(&q, &node{freq: l.freq + r.freq, seq: seq, left: l, right: r})
		seq++
	}
	return q[0]
}
