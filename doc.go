// Package huffman implements a lossless compressor built on Huffman coding:
// symbols that occur more often are assigned shorter prefix codes, and the
// original byte stream is reconstructed exactly from the packed bit stream.
//
// The persisted unit is the Container, which pairs the frequency table with
// the encoded payload.  The coding tree is not stored: both sides rebuild it
// deterministically from the frequency table, using a pinned tie-break rule
// for equal-weight merges.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
