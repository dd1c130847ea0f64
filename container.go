package huffman

import (
	"encoding/binary"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Container is the persisted artifact: the frequency table plus the encoded
// payload.  The table alone is enough to rebuild the exact tree the payload
// was encoded with, so nothing else needs to be stored.
//
// Binary layout, all integers big-endian:
//
//	magic "HUFC" | version (1 byte) | entry count (uint32)
//	entries: symbol (int32) then count (uint64), sorted by symbol
//	bit length (uint64) | payload byte length (uint64) | payload bytes
//	xxhash64 of everything above (uint64)
type Container struct {
	Freqs   FreqTable
	Payload Payload
}

const (
	containerMagic   = "HUFC"
	containerVersion = 1

	// magic + version + entry count + bit length + payload length + checksum
	containerMinLen = 4 + 1 + 4 + 8 + 8 + 8

	containerEntryLen = 4 + 8
)

// Ratio returns the number of payload bytes per input symbol, i.e. the
// compression ratio when each symbol was one input byte.  It is 0 for the
// empty input.
func (c *Container) Ratio() float64 {
	total := c.Freqs.Total()
	if total == 0 {
		return 0
	}
	return float64(c.Payload.byteLen()) / float64(total)
}

// MarshalBinary serializes the container, appending a xxhash64 checksum
// that ParseContainer verifies before trusting any field.
func (c *Container) MarshalBinary() ([]byte, error) {
	symbols := c.Freqs.Symbols()

	buf := make([]byte, 0, containerMinLen+containerEntryLen*len(symbols)+len(c.Payload.Bits))
	buf = append(buf, containerMagic...)
	buf = append(buf, containerVersion)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(symbols)))
	for _, sym := range symbols {
		buf = binary.BigEndian.AppendUint32(buf, uint32(sym))
		buf = binary.BigEndian.AppendUint64(buf, c.Freqs[sym])
	}
	buf = binary.BigEndian.AppendUint64(buf, c.Payload.BitLen)
	buf = binary.BigEndian.AppendUint64(buf, uint64(len(c.Payload.Bits)))
	buf = append(buf, c.Payload.Bits...)
	buf = binary.BigEndian.AppendUint64(buf, xxhash.Sum64(buf))
	return buf, nil
}

// WriteContainer serializes the container to w.  Write errors from w pass
// through untouched.
func WriteContainer(w io.Writer, c *Container) error {
	buf, err := c.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// ReadContainer reads all of r and parses it as a container.  Read errors
// from r pass through untouched; anything that fails after a successful
// read is a *CorruptContainerError.
func ReadContainer(r io.Reader) (*Container, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseContainer(raw)
}

// ParseContainer parses a serialized container.  Every failure mode — short
// record, bad magic or version, checksum mismatch, zero or out-of-order
// table entries, payload and bit length disagreement — is reported as a
// *CorruptContainerError.
func ParseContainer(raw []byte) (*Container, error) {
	if len(raw) < containerMinLen {
		return nil, &CorruptContainerError{Reason: "container too short"}
	}

	body, sum := raw[:len(raw)-8], binary.BigEndian.Uint64(raw[len(raw)-8:])
	if xxhash.Sum64(body) != sum {
		return nil, &CorruptContainerError{Reason: "checksum mismatch"}
	}

	if string(body[:4]) != containerMagic {
		return nil, &CorruptContainerError{Reason: "bad magic"}
	}
	if body[4] != containerVersion {
		return nil, &CorruptContainerError{Reason: "unsupported container version"}
	}

	numEntries := binary.BigEndian.Uint32(body[5:9])
	cursor := body[9:]
	if uint64(len(cursor)) < uint64(numEntries)*containerEntryLen+16 {
		return nil, &CorruptContainerError{Reason: "truncated frequency table"}
	}

	freqs := make(FreqTable, numEntries)
	prev := InvalidSymbol
	for i := uint32(0); i < numEntries; i++ {
		sym := Symbol(binary.BigEndian.Uint32(cursor[:4]))
		count := binary.BigEndian.Uint64(cursor[4:12])
		cursor = cursor[12:]

		if sym < 0 {
			return nil, &CorruptContainerError{Reason: "negative symbol in frequency table"}
		}
		if sym <= prev {
			return nil, &CorruptContainerError{Reason: "frequency table entries out of order"}
		}
		if count == 0 {
			return nil, &CorruptContainerError{Reason: "zero count in frequency table"}
		}
		freqs[sym] = count
		prev = sym
	}

	bitLen := binary.BigEndian.Uint64(cursor[:8])
	payloadLen := binary.BigEndian.Uint64(cursor[8:16])
	cursor = cursor[16:]

	if payloadLen != uint64(len(cursor)) {
		return nil, &CorruptContainerError{Reason: "payload length disagrees with container size"}
	}
	if payloadLen != (bitLen+7)/8 {
		return nil, &CorruptContainerError{Reason: "payload length disagrees with bit length"}
	}

	payload := Payload{BitLen: bitLen}
	if payloadLen > 0 {
		payload.Bits = append([]byte(nil), cursor...)
	}
	return &Container{Freqs: freqs, Payload: payload}, nil
}
