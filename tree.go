package huffman

import (
	"container/heap"
	"math"

	"github.com/chronos-tachyon/assert"
)

// nilNode marks an absent child or an absent root.
const nilNode int32 = -1

// treeNode is one node of a Tree's arena.  Leaves hold a Symbol and no
// children; internal nodes hold two children and InvalidSymbol.  The weight
// of an internal node is the sum of its children's weights.
type treeNode struct {
	symbol Symbol
	weight uint64
	left   int32
	right  int32
}

// Tree is a Huffman prefix-code tree stored as a flat arena of nodes
// indexed by int32 ids.  A tree built from N ≥ 2 distinct symbols has
// exactly N leaves and N-1 internal nodes; a single-symbol table yields a
// tree whose root is the lone leaf, and an empty table yields a tree with
// no root at all.  A Tree is built once and read-only from then on.
type Tree struct {
	nodes []treeNode
	root  int32
}

// Empty reports whether the tree has no nodes, i.e. was built from an empty
// frequency table.
func (t *Tree) Empty() bool {
	return t.root == nilNode
}

// Len returns the total number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) isLeaf(id int32) bool {
	n := t.nodes[id]
	return n.left == nilNode && n.right == nilNode
}

func (t *Tree) addNode(n treeNode) int32 {
	id := int32(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

// BuildTree constructs the Huffman tree for the given frequency table by
// repeatedly merging the two minimum-weight nodes until one remains.
//
// The merge order is fully pinned down: the heap orders nodes by weight,
// breaking ties by arena id, and ids are assigned in a fixed order (leaves
// in ascending Symbol order, then merged nodes as they are created).  Two
// builds from equal tables therefore produce identical trees, which is what
// lets the decoder rebuild the encoder's exact tree from the container's
// frequency table alone.
func BuildTree(table FreqTable) *Tree {
	t := &Tree{root: nilNode}
	if len(table) == 0 {
		return t
	}

	t.nodes = make([]treeNode, 0, 2*len(table)-1)

	var h buildHeap
	h.list = make([]buildItem, 0, len(table))
	for _, sym := range table.Symbols() {
		count := table[sym]
		assert.Assertf(count > 0, "frequency table holds zero count for symbol %d", sym)
		id := t.addNode(treeNode{symbol: sym, weight: count, left: nilNode, right: nilNode})
		h.list = append(h.list, buildItem{id: id, weight: count})
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(buildItem)
		b := heap.Pop(&h).(buildItem)

		// Compute the merged weight using saturating addition.
		weight := a.weight + b.weight
		if weight < a.weight {
			weight = math.MaxUint64
		}

		id := t.addNode(treeNode{symbol: InvalidSymbol, weight: weight, left: a.id, right: b.id})
		heap.Push(&h, buildItem{id: id, weight: weight})
	}

	t.root = heap.Pop(&h).(buildItem).id
	return t
}

// type buildItem + type buildHeap {{{

type buildItem struct {
	id     int32
	weight uint64
}

type buildHeap struct {
	list []buildItem
}

func (h *buildHeap) Init() {
	heap.Init(h)
}

func (h *buildHeap) Len() int {
	return len(h.list)
}

func (h *buildHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *buildHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.id < b.id
}

func (h *buildHeap) Push(x interface{}) {
	h.list = append(h.list, x.(buildItem))
}

func (h *buildHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*buildHeap)(nil)

// }}}
