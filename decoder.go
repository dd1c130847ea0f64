package huffman

import (
	"bytes"

	"github.com/icza/bitio"
)

// DecodeSymbols walks the tree bit-by-bit to reconstruct the symbol
// sequence from a packed payload.  Exactly BitLen bits are consumed; any
// padding bits beyond that are ignored.
//
// A tree whose root is a leaf has no branch to take, so each encoded bit
// stands for one occurrence of the lone symbol and is emitted directly.
//
// Structurally invalid input is reported as a *MalformedStreamError: the
// payload being shorter than its recorded bit length, a traversal arriving
// at a node with only one child, or the bit sequence ending in the middle
// of a code.
func DecodeSymbols(p Payload, t *Tree) ([]Symbol, error) {
	if p.BitLen > uint64(len(p.Bits))*8 {
		return nil, &MalformedStreamError{
			BitOffset: uint64(len(p.Bits)) * 8,
			Reason:    "payload shorter than recorded bit length",
		}
	}

	if t.root == nilNode {
		if p.BitLen != 0 {
			return nil, &MalformedStreamError{BitOffset: 0, Reason: "nonempty payload for empty tree"}
		}
		return nil, nil
	}

	r := bitio.NewReader(bytes.NewReader(p.Bits))

	if t.isLeaf(t.root) {
		symbols := make([]Symbol, 0, p.BitLen)
		for pos := uint64(0); pos < p.BitLen; pos++ {
			if _, err := r.ReadBool(); err != nil {
				return nil, &MalformedStreamError{BitOffset: pos, Reason: "truncated payload"}
			}
			symbols = append(symbols, t.nodes[t.root].symbol)
		}
		return symbols, nil
	}

	var symbols []Symbol
	cur := t.root
	for pos := uint64(0); pos < p.BitLen; pos++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, &MalformedStreamError{BitOffset: pos, Reason: "truncated payload"}
		}

		next := t.nodes[cur].left
		if bit {
			next = t.nodes[cur].right
		}
		if next == nilNode {
			return nil, &MalformedStreamError{BitOffset: pos, Reason: "traversal reached a node with only one child"}
		}

		if t.isLeaf(next) {
			symbols = append(symbols, t.nodes[next].symbol)
			cur = t.root
		} else {
			cur = next
		}
	}
	if cur != t.root {
		return nil, &MalformedStreamError{BitOffset: p.BitLen, Reason: "bit sequence ends in the middle of a code"}
	}
	return symbols, nil
}
