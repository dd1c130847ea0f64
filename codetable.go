package huffman

import (
	mathbits "math/bits"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol reachable in a tree to its prefix code.  The
// codes are root-to-leaf paths (0 descending left, 1 descending right), so
// no code is a prefix of another.
type CodeTable map[Symbol]Code

// DeriveCodes walks the tree depth-first and records the root-to-leaf path
// of every leaf as that symbol's code.
//
// Two degenerate shapes get explicit treatment.  An empty tree has no codes
// at all.  A tree whose root is itself a leaf has no path to accumulate, so
// the lone symbol is forced to the 1-bit code "0"; without that, every
// occurrence would encode to zero bits and the occurrence count could not
// be recovered.
func DeriveCodes(t *Tree) CodeTable {
	codes := make(CodeTable, (len(t.nodes)+1)/2)
	if t.root == nilNode {
		return codes
	}
	if t.isLeaf(t.root) {
		codes[t.nodes[t.root].symbol] = MakeCode(1, 0)
		return codes
	}

	// Iterative DFS over the arena.  We use stackItem.x to keep track of
	// where we are at each node:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// The stack holds only internal nodes, so its depth is the length of
	// the path accumulated so far.

	type stackItem struct {
		id int32
		x  byte
	}

	// A balanced tree stays within log2(nodes) depth; lopsided trees grow
	// the stack past the hint, which is fine.
	stack := make([]stackItem, 0, mathbits.Len(uint(len(t.nodes)))+1)
	stack = append(stack, stackItem{id: t.root})
	var pathBits uint64

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0, 1:
			n := t.nodes[top.id]
			child, bit := n.left, uint64(0)
			if x == 1 {
				child, bit = n.right, 1
			}
			assert.Assertf(child != nilNode, "internal node %d has only one child", top.id)

			size := byte(len(stack))
			assert.Assertf(size <= maxCodeSize, "code exceeds %d bits", maxCodeSize)
			childBits := pathBits<<1 | bit
			if t.isLeaf(child) {
				codes[t.nodes[child].symbol] = MakeCode(size, childBits)
			} else {
				pathBits = childBits
				stack = append(stack, stackItem{id: child})
			}
		case 2:
			pathBits >>= 1
			stack = stack[:len(stack)-1]
		}
	}
	return codes
}
