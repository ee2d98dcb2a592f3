// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package container

import (
	"github.com/pkg/errors"

	"github.com/txtcompress/huffpack/compress/huffpack/internal/huffman"
)

// Code length tokens. Values up to huffman.MaxCodeLen are literal lengths;
// the two run tokens are followed by a count byte holding run-minRun.
const (
	repeatPrev = 0xf0 // repeat the previous length
	zeroRun    = 0xf1 // run of zero lengths

	minRun = 3
	maxRun = 255 + minRun
)

// appendLengths run-length codes the 256 code lengths.
func appendLengths(dst []byte, lengths *[256]uint8) []byte {
	for i := 0; i < len(lengths); {
		cur := lengths[i]
		run := 1
		for i+run < len(lengths) && lengths[i+run] == cur {
			run++
		}
		i += run
		if cur == 0 {
			dst = zeroRepeat(dst, run)
		} else {
			dst = numRepeat(dst, cur, run)
		}
	}
	return dst
}

func numRepeat(dst []byte, num byte, repeated int) []byte {
	dst = append(dst, num)
	repeated--
	for repeated != 0 {
		if repeated < minRun {
			for ; repeated > 0; repeated-- {
				dst = append(dst, num)
			}
			break
		}
		n := repeated
		if n > maxRun {
			n = maxRun
		}
		dst = append(dst, repeatPrev, byte(n-minRun))
		repeated -= n
	}
	return dst
}

func zeroRepeat(dst []byte, repeated int) []byte {
	for repeated != 0 {
		if repeated < minRun {
			for ; repeated > 0; repeated-- {
				dst = append(dst, 0)
			}
			break
		}
		n := repeated
		if n > maxRun {
			n = maxRun
		}
		dst = append(dst, zeroRun, byte(n-minRun))
		repeated -= n
	}
	return dst
}

// readLengths decodes the run-length coded code lengths at the start of src
// and returns the number of bytes consumed.
func readLengths(src []byte, lengths *[256]uint8) (int, error) {
	p := 0
	for i := 0; i < len(lengths); {
		if p >= len(src) {
			return p, errors.Wrap(huffman.ErrMissingTree, "code lengths cut short")
		}
		v := src[p]
		p++
		switch v {
		case repeatPrev, zeroRun:
			if p >= len(src) {
				return p, errors.Wrap(huffman.ErrMissingTree, "code lengths cut short")
			}
			n := int(src[p]) + minRun
			p++
			if i+n > len(lengths) {
				return p, errors.Wrapf(huffman.ErrMalformedHeader, "run of %d lengths overflows the table at %d", n, i)
			}
			fill := byte(0)
			if v == repeatPrev {
				if i == 0 {
					return p, errors.Wrap(huffman.ErrMalformedHeader, "repeat without a previous length")
				}
				fill = lengths[i-1]
			}
			for end := i + n; i < end; i++ {
				lengths[i] = fill
			}
		default:
			if v > huffman.MaxCodeLen {
				return p, errors.Wrapf(huffman.ErrMalformedHeader, "invalid code length token %#02x", v)
			}
			lengths[i] = v
			i++
		}
	}
	return p, nil
}
