// abiguess: Ethereum ABI calldata signature guesser
// Copyright 2026 abiguess Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

// elemMode constrains the slots of a search frame when decoding an array
// payload. ABI arrays are homogeneous, so either every element is a counted
// dynamic region, every element is an uncounted dynamic region, or every
// element is static. A top level tuple mixes slots freely.
type elemMode uint8

const (
	elemFree      elemMode = iota // tuple frame, any mix of slot classes
	elemCounted                   // array of dynamic elements with length prefixes
	elemUncounted                 // array of dynamic elements without length prefixes
)

// param is one slot of a candidate parameter list: either a resolved type
// descriptor, or a dynamic placeholder still pointing into the buffer.
type param struct {
	typ    *Type
	dynoff int // placeholder pointer, -1 when resolved
	dynlen int // placeholder length, -1 when absent
}

func staticParam(t *Type) param     { return param{typ: t, dynoff: -1, dynlen: -1} }
func dynamicParam(off, n int) param { return param{dynoff: off, dynlen: n} }

// extend copies a parameter list and appends one slot, so sibling branches
// of the search never share a backing array.
func extend(list []param, p param) []param {
	next := make([]param, len(list), len(list)+1)
	copy(next, list)
	return append(next, p)
}

// decodeTuple searches for a well formed tuple interpretation of data. It
// walks the static region word by word, branching on whether the current
// slot is a counted dynamic pointer, an uncounted dynamic pointer or a
// static word, then resolves the collected placeholders left to right and
// asks the codec to validate the result. The first interpretation accepted
// by the codec wins; nil means the branch (and at the top level, the whole
// search) is exhausted.
//
// Every discovered pointer tightens endOfStatic: in a canonical layout the
// static region ends where the lowest dynamic region begins, so no further
// slots can live at or beyond a seen offset.
func decodeTuple(data []byte, idx int, collected []param, endOfStatic int, expectLen int, mode elemMode) []*Type {
	if off := idx * 32; off < endOfStatic {
		if ptr, ok := parseOffset(data, off); ok {
			// Counted dynamic region: a forward pointer whose target starts
			// with a plausible length word.
			if length, ok := parseLength(data, ptr); ok && mode != elemUncounted {
				next := extend(collected, dynamicParam(ptr, length))
				if types := decodeTuple(data, idx+1, next, min(endOfStatic, ptr), expectLen, mode); types != nil {
					return types
				}
			}
			// Uncounted dynamic region: a forward pointer straight to payload.
			if mode != elemCounted {
				next := extend(collected, dynamicParam(ptr, -1))
				if types := decodeTuple(data, idx+1, next, min(endOfStatic, ptr), expectLen, mode); types != nil {
					return types
				}
			}
		}
		// Static word, forbidden inside dynamic element arrays.
		if mode == elemFree {
			next := extend(collected, staticParam(Elementary("bytes32")))
			if types := decodeTuple(data, idx+1, next, endOfStatic, expectLen, mode); types != nil {
				return types
			}
		}
		return nil
	}
	// Static region exhausted, enforce the expected arity, resolve the
	// placeholders and let the codec arbitrate.
	if expectLen >= 0 && len(collected) != expectLen {
		return nil
	}
	types := make([]*Type, len(collected))
	for i, p := range collected {
		if p.dynoff < 0 {
			types[i] = p.typ
			continue
		}
		if types[i] = resolveDynamic(data, collected, i); types[i] == nil {
			return nil
		}
	}
	if _, ok := probe(types, data); !ok {
		return nil
	}
	return types
}

// resolveDynamic turns the i-th placeholder of a collected parameter list
// into a concrete type descriptor. The payload of the placeholder runs
// until the next placeholder's pointer, or for the trailing one, until the
// end of the buffer.
func resolveDynamic(data []byte, collected []param, i int) *Type {
	var (
		p        = collected[i]
		trailing = true
		end      = len(data)
	)
	for _, n := range collected[i+1:] {
		if n.dynoff >= 0 {
			trailing, end = false, n.dynoff
			break
		}
	}
	start := p.dynoff
	if p.dynlen >= 0 {
		start += 32
	}
	if start > end {
		return nil
	}
	payload := data[start:end]

	// Without a length prefix the region must hold a static tuple or a
	// static array, either way decodable as a fresh tuple of its own.
	if p.dynlen < 0 {
		inner := decodeTuple(payload, 0, nil, len(payload), -1, elemFree)
		if inner == nil {
			return nil
		}
		return Tuple(inner...)
	}
	length := p.dynlen

	// A zero length region is an empty byte string, an empty string or an
	// empty array of anything, with nothing left to tell them apart.
	if length == 0 {
		return Array(Tuple())
	}
	// Byte string: the length covers the payload, either exactly or up to
	// the right-padding of a word aligned region.
	if length == len(payload) || (len(payload)%32 == 0 && length == len(payload)-trailingZeroBytes(payload)) {
		return Elementary("bytes")
	}
	// Otherwise the region is an array of length elements. Collect every
	// interpretation whose elements agree and keep the one with the tersest
	// element type.
	var elems []*Type
	if types := decodeTuple(payload, 0, nil, len(payload), length, elemCounted); types != nil {
		if elem := uniform(types); elem != nil {
			elems = append(elems, elem)
		}
	}
	if types := decodeTuple(payload, 0, nil, len(payload), length, elemUncounted); types != nil {
		if elem := uniform(types); elem != nil {
			elems = append(elems, elem)
		}
	}
	if elem := decodeStaticArray(payload, length, trailing); elem != nil {
		elems = append(elems, elem)
	}
	best := shortest(elems)
	if best == nil {
		return nil
	}
	return Array(best)
}

// decodeStaticArray interprets payload as length equal sized static
// elements. Only the trailing dynamic region of a buffer may carry right-
// padding, so anywhere else the words must divide evenly.
func decodeStaticArray(payload []byte, length int, trailing bool) *Type {
	numWords := len(payload) / 32
	if numWords%length != 0 && !trailing {
		return nil
	}
	wordsPer := numWords / length
	if wordsPer == 0 {
		return nil
	}
	elems := make([]*Type, 0, length)
	for i := 0; i < length; i++ {
		sub := payload[i*wordsPer*32 : (i+1)*wordsPer*32]
		fields := decodeTuple(sub, 0, nil, len(sub), -1, elemFree)
		if fields == nil {
			return nil
		}
		if len(fields) == 1 {
			elems = append(elems, fields[0])
		} else {
			elems = append(elems, Tuple(fields...))
		}
	}
	return uniform(elems)
}

// uniform returns the shared descriptor of a list whose members all format
// identically, or nil when the list is empty or mixed.
func uniform(types []*Type) *Type {
	if len(types) == 0 {
		return nil
	}
	want := types[0].String()
	for _, t := range types[1:] {
		if t.String() != want {
			return nil
		}
	}
	return types[0]
}

// shortest picks the candidate with the tersest canonical format, earlier
// entries winning ties.
func shortest(types []*Type) *Type {
	var best *Type
	for _, t := range types {
		if best == nil || len(t.String()) < len(best.String()) {
			best = t
		}
	}
	return best
}
