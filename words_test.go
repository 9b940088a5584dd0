// abiguess: Ethereum ABI calldata signature guesser
// Copyright 2026 abiguess Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// wordsOf builds a buffer of 32-byte big-endian words from small values.
func wordsOf(vals ...uint64) []byte {
	buf := make([]byte, 32*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint64(buf[i*32+24:i*32+32], v)
	}
	return buf
}

// Tests that word reads stay inside the buffer and return nil otherwise.
func TestWordRead(t *testing.T) {
	data := wordsOf(1, 2)

	if w := word(data, 0); !bytes.Equal(w, data[:32]) {
		t.Errorf("word 0 mismatch: have %x, want %x", w, data[:32])
	}
	if w := word(data, 32); !bytes.Equal(w, data[32:]) {
		t.Errorf("word 32 mismatch: have %x, want %x", w, data[32:])
	}
	if w := word(data, 33); w != nil {
		t.Errorf("ragged word read: have %x, want nil", w)
	}
	if w := word(data, -1); w != nil {
		t.Errorf("negative word read: have %x, want nil", w)
	}
}

// Tests the zero byte counters on both ends of a slice.
func TestZeroByteCounts(t *testing.T) {
	tests := []struct {
		blob     []byte
		leading  int
		trailing int
	}{
		{[]byte{}, 0, 0},
		{[]byte{0x00, 0x00}, 2, 2},
		{[]byte{0x00, 0x01, 0x00}, 1, 1},
		{[]byte{0x01, 0x00, 0x00}, 0, 2},
		{[]byte{0x01, 0x02, 0x03}, 0, 0},
	}
	for i, tt := range tests {
		if n := leadingZeroBytes(tt.blob); n != tt.leading {
			t.Errorf("test %d: leading zeros mismatch: have %d, want %d", i, n, tt.leading)
		}
		if n := trailingZeroBytes(tt.blob); n != tt.trailing {
			t.Errorf("test %d: trailing zeros mismatch: have %d, want %d", i, n, tt.trailing)
		}
	}
}

// Tests that only strictly forward, in-buffer, word aligned values pass the
// offset predicate.
func TestParseOffset(t *testing.T) {
	tests := []struct {
		data []byte
		pos  int
		off  int
		ok   bool
	}{
		{wordsOf(64, 0, 0), 0, 64, true},   // forward, aligned, inside
		{wordsOf(0, 32, 0), 32, 0, false},  // not strictly forward
		{wordsOf(33, 0, 0), 0, 0, false},   // not word aligned
		{wordsOf(96, 0, 0), 0, 0, false},   // points at the very end
		{wordsOf(128, 0, 0), 0, 0, false},  // points beyond the buffer
		{wordsOf(0, 0, 0), 64, 0, false},   // zero pointer
		{wordsOf(64, 0, 0), 96, 0, false},  // read past the buffer
	}
	for i, tt := range tests {
		off, ok := parseOffset(tt.data, tt.pos)
		if ok != tt.ok || off != tt.off {
			t.Errorf("test %d: offset mismatch: have %d/%v, want %d/%v", i, off, ok, tt.off, tt.ok)
		}
	}
	// A word beyond uint64 can never be a pointer
	huge := wordsOf(64, 0, 0)
	huge[0] = 0x01
	if _, ok := parseOffset(huge, 0); ok {
		t.Errorf("oversized offset accepted")
	}
}

// Tests that a length word is only accepted if the declared payload fits
// behind it inside the buffer.
func TestParseLength(t *testing.T) {
	tests := []struct {
		data   []byte
		off    int
		length int
		ok     bool
	}{
		{wordsOf(64, 0, 0), 0, 64, true},  // payload fills the buffer exactly
		{wordsOf(5, 0), 0, 5, true},       // payload inside the padding
		{wordsOf(65, 0, 0), 0, 0, false},  // payload overflows the buffer
		{wordsOf(0, 0), 0, 0, true},       // empty payload
		{wordsOf(0, 0), 64, 0, false},     // read past the buffer
	}
	for i, tt := range tests {
		length, ok := parseLength(tt.data, tt.off)
		if ok != tt.ok || length != tt.length {
			t.Errorf("test %d: length mismatch: have %d/%v, want %d/%v", i, length, ok, tt.length, tt.ok)
		}
	}
	huge := wordsOf(0, 0)
	huge[0] = 0x01
	if _, ok := parseLength(huge, 0); ok {
		t.Errorf("oversized length accepted")
	}
}
