package huffman

import (
	"bytes"

	"github.com/icza/bitio"
)

// Payload is an encoded bit sequence together with its logical bit length.
// Bits are packed most-significant-bit-first; the final byte is zero-padded
// to a byte boundary, and BitLen is what separates real code bits from that
// padding on decode.
type Payload struct {
	Bits   []byte
	BitLen uint64
}

// byteLen returns the number of bytes needed to hold BitLen bits.
func (p Payload) byteLen() uint64 {
	return (p.BitLen + 7) / 8
}

// EncodeSymbols concatenates the code of each input symbol, in input order,
// into a packed bit sequence.  There are no separators between codes; the
// prefix-free property of the table is what keeps the stream decodable.
//
// A symbol with no entry in the table is reported as a *MissingCodeError.
func EncodeSymbols(symbols []Symbol, codes CodeTable) (Payload, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	var bitLen uint64
	for i, sym := range symbols {
		hc, found := codes[sym]
		if !found {
			return Payload{}, &MissingCodeError{Symbol: sym, Offset: i}
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return Payload{}, err
		}
		bitLen += uint64(hc.Size)
	}
	if err := w.Close(); err != nil {
		return Payload{}, err
	}
	return Payload{Bits: buf.Bytes(), BitLen: bitLen}, nil
}
