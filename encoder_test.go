package huffman

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeSymbols_Packing(t *testing.T) {
	codes := CodeTable{
		0: MakeCode(1, 0x0), // "0"
		1: MakeCode(2, 0x2), // "10"
		2: MakeCode(2, 0x3), // "11"
	}

	payload, err := EncodeSymbols([]Symbol{0, 1, 2, 0}, codes)
	if err != nil {
		t.Fatalf("EncodeSymbols failed: %v", err)
	}

	// "0" "10" "11" "0" packs MSB-first to 010110 followed by two pad
	// bits: 0b01011000.
	if payload.BitLen != 6 {
		t.Errorf("expected bit length 6, got %d", payload.BitLen)
	}
	if expect := []byte{0x58}; !bytes.Equal(expect, payload.Bits) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, payload.Bits)
	}
}

func TestEncodeSymbols_MultiByte(t *testing.T) {
	codes := CodeTable{7: MakeCode(3, 0x5)} // "101"

	payload, err := EncodeSymbols([]Symbol{7, 7, 7}, codes)
	if err != nil {
		t.Fatalf("EncodeSymbols failed: %v", err)
	}

	// "101101101" is 9 bits: 0b10110110, 0b1xxxxxxx.
	if payload.BitLen != 9 {
		t.Errorf("expected bit length 9, got %d", payload.BitLen)
	}
	if expect := []byte{0xb6, 0x80}; !bytes.Equal(expect, payload.Bits) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, payload.Bits)
	}
}

func TestEncodeSymbols_Empty(t *testing.T) {
	payload, err := EncodeSymbols(nil, CodeTable{})
	if err != nil {
		t.Fatalf("EncodeSymbols failed: %v", err)
	}

	if payload.BitLen != 0 {
		t.Errorf("expected bit length 0, got %d", payload.BitLen)
	}
	if len(payload.Bits) != 0 {
		t.Errorf("expected no bytes, got %#v", payload.Bits)
	}
}

func TestEncodeSymbols_MissingCode(t *testing.T) {
	codes := CodeTable{0: MakeCode(1, 0)}

	_, err := EncodeSymbols([]Symbol{0, 9, 0}, codes)

	var missing *MissingCodeError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingCodeError, got %v", err)
	}
	if missing.Symbol != 9 {
		t.Errorf("expected symbol 9, got %d", missing.Symbol)
	}
	if missing.Offset != 1 {
		t.Errorf("expected offset 1, got %d", missing.Offset)
	}
}
