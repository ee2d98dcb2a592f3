// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// BitBuf packs bits LSB-first: the first bit written lands in bit 0 of the
// first output byte.
type BitBuf struct {
	output []byte
	bits   uint64
	bitLen int
	count  uint64
}

// WriteBits appends the low count bits of code, bit 0 first.
// count must not exceed MaxCodeLen.
func (b *BitBuf) WriteBits(code uint64, count uint8) {
	b.bits |= code << b.bitLen
	b.bitLen += int(count)
	b.count += uint64(count)
	b.Sync()
}

// Sync moves every complete byte from the accumulator to the output.
func (b *BitBuf) Sync() {
	for b.bitLen >= 8 {
		b.output = append(b.output, byte(b.bits))
		b.bits >>= 8
		b.bitLen -= 8
	}
}

// flushLastByte writes the pending bits, zero-padding the high end.
func (b *BitBuf) flushLastByte() {
	b.Sync()
	if b.bitLen == 0 {
		return
	}
	b.output = append(b.output, byte(b.bits))
	b.bits = 0
	b.bitLen = 0
}

// Bytes flushes the buffer and returns the packed bytes and the number of
// logical bits written.
func (b *BitBuf) Bytes() ([]byte, uint64) {
	b.flushLastByte()
	return b.output, b.count
}
