package huffman

import (
	"fmt"
	"strconv"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low-order bits is the first bit of the sequence, so a Code
	// can be handed to a most-significant-bit-first bit writer as-is.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// maxCodeSize bounds the length of a single code so that it fits in
// Code.Bits.  A Huffman tree only reaches depth 65 when the leaf weights
// grow at least as fast as the Fibonacci sequence, which needs more input
// symbols than fit in memory.
const maxCodeSize = 64
