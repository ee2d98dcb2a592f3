// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package container reads and writes the huffpack file layout:
//
//	magic    "HUFP"
//	version  1 byte
//	lengths  run-length coded code lengths of all 256 symbols
//	size     uvarint, original byte count
//	bits     uvarint, logical payload bit count
//	checksum xxhash64 of the original bytes, 8 bytes little endian
//	payload  ceil(bits/8) bytes
package container

import (
	"bytes"
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/txtcompress/huffpack/compress/huffpack/internal/huffman"
)

const (
	magic = "HUFP"
	// Version is the only layout version written and accepted.
	Version = 1
)

// ErrChecksum means the decoded bytes do not match the stored checksum.
var ErrChecksum = errors.New("checksum mismatch")

// Header holds everything needed to decode a payload.
type Header struct {
	Lengths  [256]uint8
	Size     uint64
	Bits     uint64
	Checksum uint64
}

// Checksum returns the checksum stored for data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Marshal appends h and payload to a new container.
func Marshal(h *Header, payload []byte) []byte {
	dst := make([]byte, 0, len(magic)+1+64+2*binary.MaxVarintLen64+8+len(payload))
	dst = append(dst, magic...)
	dst = append(dst, Version)
	dst = appendLengths(dst, &h.Lengths)
	dst = binary.AppendUvarint(dst, h.Size)
	dst = binary.AppendUvarint(dst, h.Bits)
	dst = binary.LittleEndian.AppendUint64(dst, h.Checksum)
	return append(dst, payload...)
}

// Parse splits a container into its header and payload and checks that the
// header fields agree with each other and with the payload length.
func Parse(data []byte) (*Header, []byte, error) {
	if len(data) < len(magic)+1 || !bytes.Equal(data[:len(magic)], []byte(magic)) {
		return nil, nil, errors.Wrap(huffman.ErrMissingTree, "not a huffpack container")
	}
	if v := data[len(magic)]; v != Version {
		return nil, nil, errors.Wrapf(huffman.ErrMissingTree, "unsupported version %d", v)
	}
	rest := data[len(magic)+1:]

	h := &Header{}
	n, err := readLengths(rest, &h.Lengths)
	if err != nil {
		return nil, nil, err
	}
	rest = rest[n:]
	if h.Size, n = binary.Uvarint(rest); n <= 0 {
		return nil, nil, errors.Wrap(huffman.ErrMissingTree, "bad size field")
	}
	rest = rest[n:]
	if h.Bits, n = binary.Uvarint(rest); n <= 0 {
		return nil, nil, errors.Wrap(huffman.ErrMissingTree, "bad bit count field")
	}
	rest = rest[n:]
	if len(rest) < 8 {
		return nil, nil, errors.Wrap(huffman.ErrMissingTree, "bad checksum field")
	}
	h.Checksum = binary.LittleEndian.Uint64(rest)
	rest = rest[8:]

	if err := h.validate(); err != nil {
		return nil, nil, err
	}
	need := (h.Bits + 7) / 8
	switch {
	case uint64(len(rest)) < need:
		return nil, nil, errors.Wrapf(huffman.ErrTruncatedStream, "payload has %d bytes, header needs %d", len(rest), need)
	case uint64(len(rest)) > need:
		return nil, nil, errors.Wrapf(huffman.ErrMalformedHeader, "payload has %d bytes, header needs %d", len(rest), need)
	}
	return h, rest, nil
}

// validate checks that every encoded symbol accounts for between the
// shortest and the longest code length worth of bits.
func (h *Header) validate() error {
	minLen, maxLen := uint64(0), uint64(0)
	for _, l := range h.Lengths {
		if l == 0 {
			continue
		}
		if minLen == 0 || uint64(l) < minLen {
			minLen = uint64(l)
		}
		if uint64(l) > maxLen {
			maxLen = uint64(l)
		}
	}
	if maxLen == 0 {
		return errors.Wrap(huffman.ErrMissingTree, "no code lengths")
	}
	if h.Size == 0 {
		return errors.Wrap(huffman.ErrMalformedHeader, "zero size")
	}
	if hi, lo := bits.Mul64(h.Size, minLen); hi != 0 || h.Bits < lo {
		return errors.Wrapf(huffman.ErrMalformedHeader, "%d bits cannot hold %d symbols", h.Bits, h.Size)
	}
	if hi, lo := bits.Mul64(h.Size, maxLen); hi == 0 && h.Bits > lo {
		return errors.Wrapf(huffman.ErrMalformedHeader, "%d bits exceed %d symbols", h.Bits, h.Size)
	}
	return nil
}
