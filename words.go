// abiguess: Ethereum ABI calldata signature guesser
// Copyright 2026 abiguess Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

import "github.com/holiman/uint256"

// word returns the 32-byte word of data starting at pos, or nil when the
// buffer is too short to hold one.
func word(data []byte, pos int) []byte {
	if pos < 0 || pos+32 > len(data) {
		return nil
	}
	return data[pos : pos+32]
}

// leadingZeroBytes counts the zero bytes at the start of b.
func leadingZeroBytes(b []byte) int {
	var n int
	for n < len(b) && b[n] == 0 {
		n++
	}
	return n
}

// trailingZeroBytes counts the zero bytes at the end of b.
func trailingZeroBytes(b []byte) int {
	var n int
	for n < len(b) && b[len(b)-1-n] == 0 {
		n++
	}
	return n
}

// wordInt interprets a 32-byte word as a big-endian unsigned integer and
// reports whether it is small enough to act as an offset or length within a
// buffer of the given size. Anything beyond the buffer can never be a valid
// pointer or length, so the uint64 cut-off loses nothing.
func wordInt(w []byte, limit int) (int, bool) {
	n := new(uint256.Int).SetBytes(w)
	if !n.IsUint64() {
		return 0, false
	}
	v := n.Uint64()
	if v > uint64(limit) {
		return 0, false
	}
	return int(v), true
}

// parseOffset reads the word at pos and decides whether it could be the
// pointer of a dynamic parameter: strictly forward of pos, strictly inside
// the buffer and on a word boundary. Passing the check is necessary but not
// sufficient, the decoder still branches on both interpretations.
func parseOffset(data []byte, pos int) (int, bool) {
	w := word(data, pos)
	if w == nil {
		return 0, false
	}
	off, ok := wordInt(w, len(data))
	if !ok {
		return 0, false
	}
	if off <= pos || off >= len(data) || off%32 != 0 {
		return 0, false
	}
	return off, true
}

// parseLength reads the word at off and decides whether it could be the
// length prefix of a dynamic region: the declared payload must fit behind
// the length word inside the buffer.
func parseLength(data []byte, off int) (int, bool) {
	w := word(data, off)
	if w == nil {
		return 0, false
	}
	length, ok := wordInt(w, len(data))
	if !ok {
		return 0, false
	}
	if off+32+length > len(data) {
		return 0, false
	}
	return length, true
}
