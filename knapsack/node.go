package knapsack

import "github.com/RoaringBitmap/roaring/v2"

// node is a partial solution: the first level+1 items of the ratio order are
// fixed (in or out), the rest are free. A node is exclusively owned by the
// frontier until popped and is never mutated once pushed — children are
// fresh nodes. The selection bitmap is copy-on-write: the include child
// clones it, the exclude child shares it.
type node struct {
	id     int64
	level  int
	bound  float64
	value  float64
	weight int
	sel    *roaring.Bitmap // original item indices currently selected
}

// info returns the read-only snapshot handed to Comparators.
func (n *node) info() NodeInfo {
	return NodeInfo{ID: n.id, Level: n.level, Bound: n.bound, Value: n.value, UsedWeight: n.weight}
}

// frontier is the ordered node collection of the search loop: a binary heap
// under a pluggable Comparator, in the manner of a lazy priority queue.
type frontier struct {
	cmp   Comparator
	nodes []*node
}

func (f *frontier) Len() int { return len(f.nodes) }

func (f *frontier) Less(i, j int) bool {
	return f.cmp.Less(f.nodes[i].info(), f.nodes[j].info())
}

func (f *frontier) Swap(i, j int) {
	f.nodes[i], f.nodes[j] = f.nodes[j], f.nodes[i]
}

func (f *frontier) Push(x any) {
	f.nodes = append(f.nodes, x.(*node))
}

func (f *frontier) Pop() any {
	last := len(f.nodes) - 1
	n := f.nodes[last]
	f.nodes[last] = nil // release the reference; bitmaps may be large
	f.nodes = f.nodes[:last]

	return n
}
