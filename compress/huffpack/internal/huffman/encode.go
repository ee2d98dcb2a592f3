// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "github.com/pkg/errors"

// Encode concatenates the code of every byte of data and packs the result
// LSB-first. It returns the packed bytes and the exact number of logical
// bits; the unused high bits of the last byte are zero.
func Encode(data []byte, codes *CodeTable) (payload []byte, bitCount uint64, err error) {
	if codes == nil {
		return nil, 0, errors.Wrap(ErrUnknownSymbol, "no code table")
	}
	for i, b := range data {
		l := codes[b].Len
		if l == 0 {
			return nil, 0, errors.Wrapf(ErrUnknownSymbol, "symbol %#02x at offset %d", b, i)
		}
		if l > MaxCodeLen {
			return nil, 0, errors.Errorf("huffman: code of symbol %#02x is %d bits long", b, l)
		}
		bitCount += uint64(l)
	}

	buf := BitBuf{output: make([]byte, 0, (bitCount+7)/8)}
	for _, b := range data {
		c := codes[b]
		buf.WriteBits(c.Bits, c.Len)
	}
	payload, _ = buf.Bytes()
	return payload, bitCount, nil
}
