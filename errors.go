// abiguess: Ethereum ABI calldata signature guesser
// Copyright 2026 abiguess Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

import "errors"

// ErrNoCandidates is returned when the layout search is exhausted without a
// single type list that the canonical ABI codec accepts for the data.
var ErrNoCandidates = errors.New("abiguess: no consistent type list for data")

// ErrShortCalldata is returned when a calldata blob is too short to carry the
// 4-byte function selector.
var ErrShortCalldata = errors.New("abiguess: calldata shorter than selector")
