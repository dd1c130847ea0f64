package huffman

import (
	"reflect"
	"testing"
)

func TestCountSymbols(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect FreqTable
	}

	testData := [...]testRow{
		{name: "empty", input: "", expect: FreqTable{}},
		{name: "single", input: "a", expect: FreqTable{'a': 1}},
		{name: "repeated", input: "aaaa", expect: FreqTable{'a': 4}},
		{name: "abracadabra", input: "abracadabra", expect: FreqTable{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}},
		{name: "binary", input: "\x00\x00\xff", expect: FreqTable{0x00: 2, 0xff: 1}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := CountSymbols(SymbolsOf([]byte(row.input)))
			if !reflect.DeepEqual(row.expect, actual) {
				t.Errorf("wrong table:\n\texpect: %v\n\tactual: %v", row.expect, actual)
			}
		})
	}
}

func TestFreqTable_Symbols(t *testing.T) {
	table := FreqTable{'z': 1, 'a': 3, 'm': 2}

	expect := []Symbol{'a', 'm', 'z'}
	actual := table.Symbols()
	if !reflect.DeepEqual(expect, actual) {
		t.Errorf("wrong order:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
}

func TestFreqTable_Total(t *testing.T) {
	table := CountSymbols(SymbolsOf([]byte("abracadabra")))

	if total := table.Total(); total != 11 {
		t.Errorf("expected total 11, got %d", total)
	}
	if total := (FreqTable{}).Total(); total != 0 {
		t.Errorf("expected total 0, got %d", total)
	}
}
