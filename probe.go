// abiguess: Ethereum ABI calldata signature guesser
// Copyright 2026 abiguess Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// abiString returns the go-ethereum spelling of a descriptor, where tuples
// are written "tuple" and described by a separate component tree.
func abiString(t *Type) string {
	switch t.kind {
	case KindArray:
		if t.size < 0 {
			return abiString(t.elem) + "[]"
		}
		return fmt.Sprintf("%s[%d]", abiString(t.elem), t.size)
	case KindTuple:
		return "tuple"
	default:
		return t.name
	}
}

// abiComponents returns the component tree of the innermost tuple of a
// descriptor, or nil when there is none. go-ethereum insists on named tuple
// fields, so components get synthetic argN names.
func abiComponents(t *Type) []abi.ArgumentMarshaling {
	switch t.kind {
	case KindArray:
		return abiComponents(t.elem)
	case KindTuple:
		comps := make([]abi.ArgumentMarshaling, len(t.comps))
		for i, c := range t.comps {
			comps[i] = abi.ArgumentMarshaling{
				Name:       fmt.Sprintf("arg%d", i),
				Type:       abiString(c),
				Components: abiComponents(c),
			}
		}
		return comps
	default:
		return nil
	}
}

// arguments converts a descriptor list into a go-ethereum argument list
// suitable for decoding data against.
func arguments(types []*Type) (abi.Arguments, error) {
	args := make(abi.Arguments, 0, len(types))
	for _, t := range types {
		typ, err := abi.NewType(abiString(t), "", abiComponents(t))
		if err != nil {
			return nil, err
		}
		args = append(args, abi.Argument{Type: typ})
	}
	return args, nil
}

// probe asks the canonical ABI codec whether data decodes as a tuple of the
// candidate types, returning the decoded values on success. Every value is
// additionally formatted, forcing a full traversal of the result. A codec
// panic on a hostile candidate is a rejection, not a crash.
func probe(types []*Type, data []byte) (vals []any, ok bool) {
	defer func() {
		if recover() != nil {
			vals, ok = nil, false
		}
	}()
	args, err := arguments(types)
	if err != nil {
		return nil, false
	}
	vals, err = args.Unpack(data)
	if err != nil {
		return nil, false
	}
	for _, v := range vals {
		_ = fmt.Sprintf("%v", v)
	}
	return vals, true
}
