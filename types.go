// abiguess: Ethereum ABI calldata signature guesser
// Copyright 2026 abiguess Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

import (
	"fmt"
	"strings"
)

// Kind is the structural class of a type descriptor.
type Kind uint8

const (
	// KindElementary is a leaf type: uintN, intN, bytesN, bytes, string,
	// address or bool.
	KindElementary Kind = iota

	// KindArray is a dynamic T[] or fixed size T[k] array.
	KindArray

	// KindTuple is an ordered (T1,...,Tn) composite.
	KindTuple
)

// Type is an immutable descriptor of an ABI parameter type. Descriptors are
// built via Elementary, Array, FixedArray and Tuple and never mutated after
// construction, so they may be shared freely across candidate lists.
type Type struct {
	kind  Kind
	name  string  // elementary type name
	size  int     // fixed array length, -1 when dynamic
	elem  *Type   // array element type
	comps []*Type // tuple component types
}

// Elementary returns the descriptor of a leaf type, e.g. "uint256".
func Elementary(name string) *Type {
	return &Type{kind: KindElementary, name: name}
}

// Array returns the descriptor of the dynamic array type elem[].
func Array(elem *Type) *Type {
	return &Type{kind: KindArray, size: -1, elem: elem}
}

// FixedArray returns the descriptor of the fixed size array type elem[size].
func FixedArray(elem *Type, size int) *Type {
	return &Type{kind: KindArray, size: size, elem: elem}
}

// Tuple returns the descriptor of the composite type (comps[0],...,comps[n]).
func Tuple(comps ...*Type) *Type {
	return &Type{kind: KindTuple, comps: comps}
}

// Kind returns the structural class of the descriptor.
func (t *Type) Kind() Kind { return t.kind }

// Elem returns the element descriptor of an array, nil for anything else.
func (t *Type) Elem() *Type {
	if t.kind != KindArray {
		return nil
	}
	return t.elem
}

// Size returns the length of a fixed size array and -1 for a dynamic array
// or any non-array descriptor.
func (t *Type) Size() int {
	if t.kind != KindArray {
		return -1
	}
	return t.size
}

// Components returns the component descriptors of a tuple, nil for anything
// else. The returned slice must not be modified.
func (t *Type) Components() []*Type {
	if t.kind != KindTuple {
		return nil
	}
	return t.comps
}

// String returns the canonical Solidity format of the descriptor: the bare
// name for elementary types, elem[] or elem[k] for arrays and a comma joined
// parenthesized list for tuples.
func (t *Type) String() string {
	switch t.kind {
	case KindArray:
		if t.size < 0 {
			return t.elem.String() + "[]"
		}
		return fmt.Sprintf("%s[%d]", t.elem, t.size)
	case KindTuple:
		return "(" + formatTypes(t.comps) + ")"
	default:
		return t.name
	}
}

// formatTypes joins the canonical formats of a descriptor list with commas.
func formatTypes(types []*Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ",")
}
