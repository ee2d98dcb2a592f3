// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// trie is a binary trie built from code strings.
type trie struct {
	child [2]*trie
	end   bool
}

// requirePrefixFree inserts every code into a trie and fails if a code ends
// on a path another code continues through.
func requirePrefixFree(t *testing.T, codes *CodeTable) {
	t.Helper()
	root := &trie{}
	for sym, c := range codes {
		if c.Len == 0 {
			continue
		}
		n := root
		for i := uint8(0); i < c.Len; i++ {
			require.False(t, n.end, "a code is a prefix of symbol %#02x's code %s", sym, c)
			b := c.Bits >> i & 1
			if n.child[b] == nil {
				n.child[b] = &trie{}
			}
			n = n.child[b]
		}
		require.False(t, n.end, "duplicate code %s", c)
		require.Nil(t, n.child[0], "code of %#02x is a prefix of another", sym)
		require.Nil(t, n.child[1], "code of %#02x is a prefix of another", sym)
		n.end = true
	}
}

func randomFrequencies(rng *rand.Rand) *FrequencyTable {
	freq := &FrequencyTable{}
	k := rng.Intn(256) + 1
	for _, sym := range rng.Perm(256)[:k] {
		freq[sym] = uint64(rng.Intn(1<<uint(rng.Intn(20)))) + 1
	}
	return freq
}

func TestGenerateCodesPrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		freq := randomFrequencies(rng)
		tree, err := BuildTree(freq)
		require.NoError(t, err)
		codes, err := GenerateCodes(tree)
		require.NoError(t, err)
		requirePrefixFree(t, codes)
		for sym, c := range codes {
			require.Equal(t, freq[sym] != 0, c.Len != 0, "symbol %#02x", sym)
		}
	}
}

func TestGenerateCodesSingleLeaf(t *testing.T) {
	tree, err := BuildTree(CountFrequencies([]byte("aaaa")))
	require.NoError(t, err)
	codes, err := GenerateCodes(tree)
	require.NoError(t, err)
	require.Equal(t, "0", codes['a'].String())
	for sym, c := range codes {
		if sym != 'a' {
			require.Zero(t, c.Len)
		}
	}
}

func TestGenerateCodesMissingTree(t *testing.T) {
	_, err := GenerateCodes(nil)
	require.ErrorIs(t, err, ErrMissingTree)
}

func TestCanonicalTreeMatchesCodes(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		tree, err := BuildTree(randomFrequencies(rng))
		require.NoError(t, err)
		lengths, err := tree.CodeLengths()
		require.NoError(t, err)

		canonical, err := CanonicalCodes(&lengths)
		require.NoError(t, err)
		requirePrefixFree(t, canonical)

		ct, err := CanonicalTree(&lengths)
		require.NoError(t, err)
		walked, err := GenerateCodes(ct)
		require.NoError(t, err)
		require.Equal(t, canonical, walked)

		k := tree.Leaves()
		require.Equal(t, k, ct.Leaves())
		require.Equal(t, tree.InternalNodes(), ct.InternalNodes())
	}
}

func TestCanonicalCodesOrder(t *testing.T) {
	var lengths [256]uint8
	lengths['a'] = 2
	lengths['b'] = 1
	lengths['c'] = 3
	lengths['d'] = 3
	codes, err := CanonicalCodes(&lengths)
	require.NoError(t, err)
	require.Equal(t, "0", codes['b'].String())
	require.Equal(t, "10", codes['a'].String())
	require.Equal(t, "110", codes['c'].String())
	require.Equal(t, "111", codes['d'].String())
}

func TestCanonicalTreeLengths(t *testing.T) {
	for _, tc := range []struct {
		name string
		set  func(l *[256]uint8)
		want error
	}{
		{"empty", func(l *[256]uint8) {}, ErrMissingTree},
		{"single symbol", func(l *[256]uint8) { l[7] = 1 }, nil},
		{"single symbol too long", func(l *[256]uint8) { l[7] = 2 }, ErrMalformedHeader},
		{"incomplete", func(l *[256]uint8) { l[0], l[1], l[2] = 2, 2, 2 }, ErrMalformedHeader},
		{"oversubscribed", func(l *[256]uint8) { l[0], l[1], l[2] = 1, 1, 1 }, ErrMalformedHeader},
		{"too long", func(l *[256]uint8) { l[0], l[1] = 1, MaxCodeLen + 1 }, ErrMalformedHeader},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var lengths [256]uint8
			tc.set(&lengths)
			tree, err := CanonicalTree(&lengths)
			if tc.want == nil {
				require.NoError(t, err)
				require.Equal(t, 1, tree.Leaves())
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCodeString(t *testing.T) {
	require.Equal(t, "", Code{}.String())
	require.Equal(t, "011", Code{Bits: 0b110, Len: 3}.String())
}
