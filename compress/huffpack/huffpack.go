// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffpack compresses byte sequences with a Huffman prefix code into
// a self-describing container.
//
// The container stores the canonical code lengths instead of the tree shape,
// the original size, the exact number of payload bits and a checksum, so
// Decompress needs nothing but the container.
package huffpack

import (
	"github.com/pkg/errors"

	"github.com/txtcompress/huffpack/compress/huffpack/internal/container"
	"github.com/txtcompress/huffpack/compress/huffpack/internal/huffman"
	"github.com/txtcompress/huffpack/internal/cpu"
)

type (
	// Tree is the decoding tree shared by the encoder and decoder.
	Tree = huffman.Tree
	// CodeTable maps every byte value to its code.
	CodeTable = huffman.CodeTable
)

var (
	ErrEmptyInput      = huffman.ErrEmptyInput
	ErrUnknownSymbol   = huffman.ErrUnknownSymbol
	ErrTruncatedStream = huffman.ErrTruncatedStream
	ErrMissingTree     = huffman.ErrMissingTree
	ErrMalformedHeader = huffman.ErrMalformedHeader
	ErrInvalidCode     = huffman.ErrInvalidCode
	ErrChecksum        = container.ErrChecksum
)

// parallelThreshold is the input size from which frequencies are counted
// by several goroutines.
const parallelThreshold = 1 << 20

// Compress encodes data and returns the container together with the tree
// the payload was encoded with. Empty input fails with ErrEmptyInput.
func Compress(data []byte) (out []byte, tree *Tree, err error) {
	if len(data) == 0 {
		return nil, nil, ErrEmptyInput
	}
	var freq *huffman.FrequencyTable
	if len(data) >= parallelThreshold && cpu.Workers > 1 {
		freq = huffman.CountFrequenciesParallel(data, cpu.Workers)
	} else {
		freq = huffman.CountFrequencies(data)
	}

	hdr := &container.Header{
		Size:     uint64(len(data)),
		Checksum: container.Checksum(data),
	}
	hdr.Lengths, err = codeLengths(freq)
	if err != nil {
		return nil, nil, err
	}
	tree, err = huffman.CanonicalTree(&hdr.Lengths)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "huffpack: canonical tree")
	}
	codes, err := huffman.GenerateCodes(tree)
	if err != nil {
		return nil, nil, err
	}
	payload, bitCount, err := huffman.Encode(data, codes)
	if err != nil {
		return nil, nil, err
	}
	hdr.Bits = bitCount
	return container.Marshal(hdr, payload), tree, nil
}

// codeLengths builds the Huffman tree for freq and returns its leaf depths,
// capped at huffman.MaxCodeLen.
func codeLengths(freq *huffman.FrequencyTable) (lengths [256]uint8, err error) {
	t, err := huffman.BuildTree(freq)
	if err != nil {
		return lengths, err
	}
	lengths, err = t.CodeLengths()
	if err != nil {
		return lengths, err
	}
	huffman.LimitLengths(freq, &lengths, huffman.MaxCodeLen)
	return lengths, nil
}

// Decompress rebuilds the tree from the container header and decodes the
// payload.
func Decompress(in []byte) ([]byte, error) {
	hdr, payload, err := container.Parse(in)
	if err != nil {
		return nil, err
	}
	tree, err := huffman.CanonicalTree(&hdr.Lengths)
	if err != nil {
		return nil, err
	}
	// Parse guarantees Size <= Bits <= 8*len(payload)
	out, err := huffman.Decode(tree, payload, hdr.Bits, int(hdr.Size))
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) != hdr.Size {
		return nil, errors.Wrapf(ErrMalformedHeader, "decoded %d bytes, header says %d", len(out), hdr.Size)
	}
	if container.Checksum(out) != hdr.Checksum {
		return nil, ErrChecksum
	}
	return out, nil
}

// Codes returns the code table of tree.
func Codes(tree *Tree) (*CodeTable, error) {
	return huffman.GenerateCodes(tree)
}
