// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "github.com/pkg/errors"

var (
	// ErrEmptyInput is returned when there is nothing to build a tree from.
	ErrEmptyInput = errors.New("empty input")
	// ErrUnknownSymbol means the input holds a byte the code table has no code for.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrTruncatedStream means the bit stream ended in the middle of a code.
	ErrTruncatedStream = errors.New("truncated stream")
	// ErrMissingTree means no decoding tree is available.
	ErrMissingTree = errors.New("missing tree")
	// ErrMalformedHeader means the code lengths or sizes are inconsistent.
	ErrMalformedHeader = errors.New("malformed header")
	// ErrInvalidCode means a bit sequence does not lead to any leaf.
	ErrInvalidCode = errors.New("invalid code")
)
