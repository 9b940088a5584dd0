// abiguess: Ethereum ABI calldata signature guesser
// Copyright 2026 abiguess Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package abiguess infers the parameter types of ABI encoded calldata for
// which no signature is known. It searches the space of canonical layouts
// consistent with the bytes, validates every candidate against the
// go-ethereum ABI codec and refines the surviving word sized placeholders
// into narrower types based on the values they decoded to.
package abiguess

import "fmt"

// GuessData infers an ordered parameter type list for a bare ABI encoded
// tuple payload, without the function selector. The returned descriptors
// are guaranteed to decode the payload cleanly with the canonical codec;
// when the data is consistent with several signatures, the search prefers
// counted dynamic regions over uncounted ones over static words, and the
// tersest element type for arrays. ErrNoCandidates is returned when no
// layout fits.
//
// A zero byte payload is the valid encoding of zero parameters and yields
// an empty list.
func GuessData(data []byte) ([]*Type, error) {
	types := decodeTuple(data, 0, nil, len(data), -1, elemFree)
	if types == nil {
		return nil, ErrNoCandidates
	}
	vals, ok := probe(types, data)
	if !ok {
		return nil, ErrNoCandidates
	}
	return refineTypes(types, vals), nil
}

// GuessFragment splits a calldata blob into its 4-byte selector and ABI
// payload, infers the parameter types of the payload and wraps them into a
// synthetic function fragment named after the selector.
func GuessFragment(calldata []byte) (*Fragment, error) {
	if len(calldata) < 4 {
		return nil, ErrShortCalldata
	}
	inputs, err := GuessData(calldata[4:])
	if err != nil {
		return nil, err
	}
	frag := &Fragment{inputs: inputs}
	copy(frag.selector[:], calldata[:4])

	return frag, nil
}

// Fragment is a synthetic function fragment reconstructed from calldata: a
// guessed_<selector> name with the inferred parameter types.
type Fragment struct {
	selector [4]byte
	inputs   []*Type
}

// Selector returns the 4 calldata bytes the fragment was guessed from.
func (f *Fragment) Selector() [4]byte { return f.selector }

// Name returns the synthetic function name, guessed_ followed by the
// lowercase hex selector.
func (f *Fragment) Name() string {
	return fmt.Sprintf("guessed_%x", f.selector)
}

// Inputs returns the inferred parameter type descriptors.
func (f *Fragment) Inputs() []*Type { return f.inputs }

// String returns the canonical signature of the fragment.
func (f *Fragment) String() string {
	return f.Name() + "(" + formatTypes(f.inputs) + ")"
}
