// abiguess: Ethereum ABI calldata signature guesser
// Copyright 2026 abiguess Authors
// SPDX-License-Identifier: BSD-3-Clause

package tests

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/karalabe/abiguess"
)

// Tests that inputs too short to carry a selector are rejected.
func TestShortCalldata(t *testing.T) {
	for _, size := range []int{0, 1, 3} {
		if _, err := abiguess.GuessFragment(make([]byte, size)); !errors.Is(err, abiguess.ErrShortCalldata) {
			t.Errorf("size %d: error mismatch: have %v, want %v", size, err, abiguess.ErrShortCalldata)
		}
	}
}

// Tests that a buffer which cannot hold a whole parameter word fails the
// search instead of producing a bogus signature.
func TestRaggedBuffer(t *testing.T) {
	blob := bytes.Repeat([]byte{0xff}, 31)
	if _, err := abiguess.GuessData(blob); !errors.Is(err, abiguess.ErrNoCandidates) {
		t.Errorf("error mismatch: have %v, want %v", err, abiguess.ErrNoCandidates)
	}
}

// Tests that the zero byte payload guesses to zero parameters.
func TestEmptyPayload(t *testing.T) {
	types, err := abiguess.GuessData(nil)
	if err != nil {
		t.Fatalf("failed to guess empty payload: %v", err)
	}
	if len(types) != 0 {
		t.Errorf("parameter count mismatch: have %d, want 0", len(types))
	}
}

// Tests that an empty dynamic region keeps its ambiguity sentinel instead of
// forcing a choice between empty bytes, string and arrays.
func TestEmptyDynamicRegion(t *testing.T) {
	blob, err := hex.DecodeString(
		"0000000000000000000000000000000000000000000000000000000000000020" +
			"0000000000000000000000000000000000000000000000000000000000000000")
	if err != nil {
		panic(err)
	}
	types, err := abiguess.GuessData(blob)
	if err != nil {
		t.Fatalf("failed to guess empty region: %v", err)
	}
	if len(types) != 1 || types[0].String() != "()[]" {
		t.Errorf("type list mismatch: have %v, want [()[]]", types)
	}
}

// Tests the declared-length quirk: a byte string whose content ends in zero
// bytes does not match its length prefix against the padded payload, so the
// search falls back to a static reading of the buffer.
func TestZeroTailBytes(t *testing.T) {
	// offset 0x20, length 2, content "a\x00" right-padded
	blob, err := hex.DecodeString(
		"0000000000000000000000000000000000000000000000000000000000000020" +
			"0000000000000000000000000000000000000000000000000000000000000002" +
			"6100000000000000000000000000000000000000000000000000000000000000")
	if err != nil {
		panic(err)
	}
	types, err := abiguess.GuessData(blob)
	if err != nil {
		t.Fatalf("failed to guess payload: %v", err)
	}
	if len(types) != 1 || types[0].String() != "(uint256,uint256)" {
		t.Errorf("type list mismatch: have %v, want [(uint256,uint256)]", types)
	}
}
