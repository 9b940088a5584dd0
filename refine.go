// abiguess: Ethereum ABI calldata signature guesser
// Copyright 2026 abiguess Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

import (
	"fmt"
	"reflect"
	"unicode/utf8"
)

// refineTypes narrows the generic word and byte string placeholders of an
// accepted candidate list using the concrete values they decoded to.
func refineTypes(types []*Type, vals []any) []*Type {
	refined := make([]*Type, len(types))
	for i, t := range types {
		refined[i] = refineType(t, reflect.ValueOf(vals[i]))
	}
	return refined
}

// refineType narrows a single descriptor based on the shape of its decoded
// value:
//
//   - a 32-byte word with 12 to 17 leading zero bytes reads as an address,
//     with more leading zeroes as a uint256, and with trailing zeroes as a
//     left aligned short bytesN
//   - a byte string holding valid UTF-8 reads as a string
//   - arrays refine every element and merge the outcomes back into a single
//     element type, tuples refine component-wise
func refineType(t *Type, v reflect.Value) *Type {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	switch t.kind {
	case KindElementary:
		switch t.name {
		case "bytes32":
			if !v.IsValid() || v.Kind() != reflect.Array || v.Len() != 32 {
				return t
			}
			w := make([]byte, 32)
			reflect.Copy(reflect.ValueOf(w), v)

			lz, tz := leadingZeroBytes(w), trailingZeroBytes(w)
			switch {
			case lz >= 12 && lz <= 17:
				return Elementary("address")
			case lz > 16:
				return Elementary("uint256")
			case tz > 0:
				return Elementary(fmt.Sprintf("bytes%d", 32-tz))
			default:
				return t
			}
		case "bytes":
			if b, ok := v.Interface().([]byte); ok && utf8.Valid(b) {
				return Elementary("string")
			}
			return t
		default:
			return t
		}
	case KindArray:
		if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) || v.Len() == 0 {
			return t
		}
		elems := make([]*Type, v.Len())
		for i := range elems {
			elems[i] = refineType(t.elem, v.Index(i))
		}
		merged := mergeTypes(elems)
		if t.size >= 0 {
			return FixedArray(merged, t.size)
		}
		return Array(merged)
	case KindTuple:
		if !v.IsValid() || v.Kind() != reflect.Struct || v.NumField() != len(t.comps) {
			return t
		}
		comps := make([]*Type, len(t.comps))
		for i, c := range t.comps {
			comps[i] = refineType(c, v.Field(i))
		}
		return Tuple(comps...)
	}
	return t
}

// mergeTypes folds a list of descriptors that must describe the same slot
// into a single one. Tuples merge component-wise and arrays merge their
// element type, anything else collapses through the widening order bytes,
// uint256, bytes32.
func mergeTypes(types []*Type) *Type {
	if len(types) == 0 {
		return nil
	}
	for _, t := range types {
		if t.kind == KindTuple {
			comps := make([]*Type, len(t.comps))
			for i := range comps {
				branch := make([]*Type, 0, len(types))
				for _, u := range types {
					if u.kind == KindTuple && i < len(u.comps) {
						branch = append(branch, u.comps[i])
					}
				}
				comps[i] = mergeTypes(branch)
			}
			return Tuple(comps...)
		}
	}
	for _, t := range types {
		if t.kind == KindArray {
			branch := make([]*Type, 0, len(types))
			for _, u := range types {
				if u.kind == KindArray {
					branch = append(branch, u.elem)
				}
			}
			return Array(mergeTypes(branch))
		}
	}
	seen := make(map[string]bool)
	for _, t := range types {
		seen[t.String()] = true
	}
	if len(seen) == 1 {
		return types[0]
	}
	switch {
	case seen["bytes"]:
		return Elementary("bytes")
	case seen["uint256"]:
		return Elementary("uint256")
	default:
		return Elementary("bytes32")
	}
}
