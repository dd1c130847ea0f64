package huffman

import (
	"math"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.  Internal tree nodes carry it in place of a
// symbol.
const InvalidSymbol = Symbol(-1)

// SymbolsOf maps each byte of data to one Symbol.  This is the alphabet used
// by Compress and Decompress; the rest of the package works over any
// non-negative Symbol alphabet.
func SymbolsOf(data []byte) []Symbol {
	symbols := make([]Symbol, len(data))
	for i, b := range data {
		symbols[i] = Symbol(b)
	}
	return symbols
}
