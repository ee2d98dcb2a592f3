// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "github.com/pkg/errors"

// Decode walks t once per bit of payload, emitting a symbol and restarting
// at the root whenever a leaf is reached. Exactly bitCount bits are read;
// the padding after them is ignored. sizeHint preallocates the output.
func Decode(t *Tree, payload []byte, bitCount uint64, sizeHint int) ([]byte, error) {
	if t == nil || len(t.nodes) == 0 {
		return nil, ErrMissingTree
	}
	if avail := uint64(len(payload)) * 8; bitCount > avail {
		return nil, errors.Wrapf(ErrTruncatedStream, "need %d bits, have %d", bitCount, avail)
	}
	if sizeHint < 0 {
		sizeHint = 0
	}
	out := make([]byte, 0, sizeHint)

	root := t.root
	if t.isLeaf(root) {
		// single symbol: every code is "0"
		sym := t.nodes[root].symbol
		for i := uint64(0); i < bitCount; i++ {
			if payload[i>>3]>>(i&7)&1 != 0 {
				return nil, errors.Wrapf(ErrInvalidCode, "bit %d", i)
			}
			out = append(out, sym)
		}
		return out, nil
	}

	n := root
	for i := uint64(0); i < bitCount; i++ {
		if payload[i>>3]>>(i&7)&1 == 0 {
			n = t.nodes[n].left
		} else {
			n = t.nodes[n].right
		}
		if n == noChild {
			return nil, errors.Wrapf(ErrInvalidCode, "bit %d", i)
		}
		if t.isLeaf(n) {
			out = append(out, t.nodes[n].symbol)
			n = root
		}
	}
	if n != root {
		return nil, errors.Wrapf(ErrTruncatedStream, "stream ends inside a code after %d symbols", len(out))
	}
	return out, nil
}
