package huffman

import (
	"sort"
)

// FreqTable maps each Symbol that appears in an input to its number of
// occurrences.  Symbols absent from the input have no entry, so an empty
// input yields an empty table.  A table is built once and read-only from
// then on.
type FreqTable map[Symbol]uint64

// CountSymbols tabulates the occurrence count of every symbol in the input.
// It is a single pass with no side effects.
func CountSymbols(symbols []Symbol) FreqTable {
	table := make(FreqTable)
	for _, sym := range symbols {
		table[sym]++
	}
	return table
}

// Symbols returns the table's symbols in ascending order.  Everything that
// needs a deterministic iteration order over the table goes through this.
func (t FreqTable) Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(t))
	for sym := range t {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}

// Total returns the total number of symbol occurrences, i.e. the length of
// the input the table was counted from.
func (t FreqTable) Total() uint64 {
	var total uint64
	for _, count := range t {
		total += count
	}
	return total
}
