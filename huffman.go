package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Compress encodes data, treating each byte as one symbol, and returns the
// container holding its frequency table and packed payload.
func Compress(data []byte) *Container {
	symbols := SymbolsOf(data)
	freqs := CountSymbols(symbols)
	codes := DeriveCodes(BuildTree(freqs))
	payload, err := EncodeSymbols(symbols, codes)

	// The table was derived from this exact input, so every symbol has a
	// code.
	assert.Assertf(err == nil, "encode with freshly derived codes failed: %v", err)

	return &Container{Freqs: freqs, Payload: payload}
}

// Decompress rebuilds the coding tree from the container's frequency table,
// decodes the payload, and maps the symbols back to bytes.
//
// Structural problems in the payload surface as *MalformedStreamError; a
// decoded symbol outside the byte alphabet surfaces as
// *CorruptContainerError.
func Decompress(c *Container) ([]byte, error) {
	tree := BuildTree(c.Freqs)
	symbols, err := DecodeSymbols(c.Payload, tree)
	if err != nil {
		return nil, err
	}

	data := make([]byte, len(symbols))
	for i, sym := range symbols {
		if sym < 0 || sym > 0xFF {
			return nil, &CorruptContainerError{Reason: fmt.Sprintf("symbol %d is not a byte", sym)}
		}
		data[i] = byte(sym)
	}
	return data, nil
}
