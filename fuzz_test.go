package huffman

import (
	"bytes"
	"testing"
)

// FuzzRoundTrip drives the full pipeline: compress, serialize, parse,
// decompress, and compare against the original input.
func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("a"))
	f.Add([]byte("aaaa"))
	f.Add([]byte("abracadabra"))
	f.Add([]byte("hello世界"))
	f.Add([]byte("tab\there"))
	f.Add([]byte{0x00, 0xff, 0x00, 0xff, 0x80})

	f.Fuzz(func(t *testing.T, data []byte) {
		raw, err := Compress(data).MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary failed: %v", err)
		}

		c, err := ParseContainer(raw)
		if err != nil {
			t.Fatalf("ParseContainer failed: %v", err)
		}

		restored, err := Decompress(c)
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(data, restored) {
			t.Errorf("round trip mismatch: input %q, output %q", data, restored)
		}
	})
}
