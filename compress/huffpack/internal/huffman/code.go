// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// MaxCodeLen is the longest code the encoder accepts. A code plus the up to
// 7 bits still pending in the bit buffer must fit in 64 bits.
const MaxCodeLen = 56

// Code is a prefix code. Bits holds the path from the root with the first
// step in bit 0, which is also the order the bits are written in.
type Code struct {
	Bits uint64
	Len  uint8
}

// String renders the path as '0' (left) and '1' (right) characters.
func (c Code) String() string {
	var sb strings.Builder
	for i := uint8(0); i < c.Len; i++ {
		if c.Bits>>i&1 == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return sb.String()
}

// CodeTable maps every symbol to its code. A zero Len means the symbol has
// no code.
type CodeTable [256]Code

// GenerateCodes walks t and assigns every leaf the path leading to it,
// '0' for a left step and '1' for a right one. The sole symbol of a
// single-leaf tree gets the code "0".
func GenerateCodes(t *Tree) (*CodeTable, error) {
	if t == nil || len(t.nodes) == 0 {
		return nil, ErrMissingTree
	}
	codes := &CodeTable{}
	if t.isLeaf(t.root) {
		codes[t.nodes[t.root].symbol] = Code{Bits: 0, Len: 1}
		return codes, nil
	}
	type item struct {
		n    int32
		code Code
	}
	stack := []item{{n: t.root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.isLeaf(it.n) {
			codes[t.nodes[it.n].symbol] = it.code
			continue
		}
		if it.code.Len == MaxCodeLen {
			return nil, errors.Errorf("huffman: code longer than %d bits", MaxCodeLen)
		}
		if r := t.nodes[it.n].right; r != noChild {
			stack = append(stack, item{r, Code{Bits: it.code.Bits | 1<<it.code.Len, Len: it.code.Len + 1}})
		}
		if l := t.nodes[it.n].left; l != noChild {
			stack = append(stack, item{l, Code{Bits: it.code.Bits, Len: it.code.Len + 1}})
		}
	}
	return codes, nil
}

// checkLengths verifies that lengths describe a complete prefix code:
// a single length-1 entry, or lengths whose Kraft sum is exactly 1.
func checkLengths(lengths *[256]uint8) error {
	k := 0
	var kraft uint64
	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		if l > MaxCodeLen {
			return errors.Wrapf(ErrMalformedHeader, "symbol %#02x has code length %d", sym, l)
		}
		k++
		kraft += 1 << (MaxCodeLen - l)
	}
	switch {
	case k == 0:
		return errors.Wrap(ErrMissingTree, "no code lengths")
	case k == 1:
		if kraft != 1<<(MaxCodeLen-1) {
			return errors.Wrap(ErrMalformedHeader, "single symbol must have code length 1")
		}
	case kraft != 1<<MaxCodeLen:
		return errors.Wrap(ErrMalformedHeader, "code lengths do not form a complete prefix code")
	}
	return nil
}

// CanonicalCodes assigns canonical codes from code lengths: shorter codes
// first, ascending symbol order within a length.
func CanonicalCodes(lengths *[256]uint8) (*CodeTable, error) {
	if err := checkLengths(lengths); err != nil {
		return nil, err
	}
	var blCount [MaxCodeLen + 1]uint64
	maxBits := 0
	for _, l := range lengths {
		blCount[l]++
		if int(l) > maxBits {
			maxBits = int(l)
		}
	}
	blCount[0] = 0

	var nextCodes [MaxCodeLen + 1]uint64
	code := uint64(0)
	for b := 1; b <= maxBits; b++ {
		code = (code + blCount[b-1]) << 1
		nextCodes[b] = code
	}
	codes := &CodeTable{}
	for sym, l := range lengths {
		if l != 0 {
			codes[sym] = Code{Bits: bits.Reverse64(nextCodes[l]) >> (64 - l), Len: l}
			nextCodes[l]++
		}
	}
	return codes, nil
}

// CanonicalTree rebuilds the decoding tree of the canonical code described by
// lengths. The resulting tree carries no weights.
func CanonicalTree(lengths *[256]uint8) (*Tree, error) {
	codes, err := CanonicalCodes(lengths)
	if err != nil {
		return nil, err
	}
	k := 0
	for _, l := range lengths {
		if l != 0 {
			k++
		}
	}
	t := &Tree{nodes: make([]node, 0, 2*k-1)}
	if k == 1 {
		for sym, l := range lengths {
			if l != 0 {
				t.root = t.leaf(byte(sym), 0)
			}
		}
		return t, nil
	}

	t.root = t.internal(noChild, noChild)
	for sym, c := range codes {
		if c.Len == 0 {
			continue
		}
		n := t.root
		for i := uint8(0); i < c.Len; i++ {
			child := &t.nodes[n].left
			if c.Bits>>i&1 != 0 {
				child = &t.nodes[n].right
			}
			switch {
			case i == c.Len-1:
				if *child != noChild {
					return nil, errors.Wrapf(ErrMalformedHeader, "code of symbol %#02x collides", sym)
				}
				// t.leaf may grow t.nodes, so index again rather than keep child
				h := t.leaf(byte(sym), 0)
				t.setChild(n, c.Bits>>i&1, h)
			case *child == noChild:
				h := t.internal(noChild, noChild)
				t.setChild(n, c.Bits>>i&1, h)
				n = h
			default:
				if t.isLeaf(*child) {
					return nil, errors.Wrapf(ErrMalformedHeader, "code of symbol %#02x collides", sym)
				}
				n = *child
			}
		}
	}
	return t, nil
}

func (t *Tree) setChild(n int32, bit uint64, child int32) {
	if bit == 0 {
		t.nodes[n].left = child
	} else {
		t.nodes[n].right = child
	}
}
