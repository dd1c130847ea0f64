package huffman

import (
	"fmt"
)

// MissingCodeError reports an input symbol with no entry in the code table.
// It is an internal consistency failure: it can only happen when the table
// was not derived from the same input's frequency counts.
type MissingCodeError struct {
	Symbol Symbol
	Offset int // index of the offending symbol in the input
}

func (e *MissingCodeError) Error() string {
	return fmt.Sprintf("huffman: no code for symbol %d at input offset %d", e.Symbol, e.Offset)
}

// MalformedStreamError reports an encoded payload that the tree walk cannot
// resolve into symbols: the payload is truncated, ends in the middle of a
// code, or the tree it is decoded against is structurally invalid.
type MalformedStreamError struct {
	BitOffset uint64
	Reason    string
}

func (e *MalformedStreamError) Error() string {
	return fmt.Sprintf("huffman: malformed bit stream at bit %d: %s", e.BitOffset, e.Reason)
}

// CorruptContainerError reports a persisted container that cannot be parsed
// into a frequency table and an encoded payload.
type CorruptContainerError struct {
	Reason string
	Err    error
}

func (e *CorruptContainerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("huffman: corrupt container: %s: %v", e.Reason, e.Err)
	}
	return "huffman: corrupt container: " + e.Reason
}

func (e *CorruptContainerError) Unwrap() error {
	return e.Err
}
